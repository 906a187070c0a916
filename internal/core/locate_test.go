package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/foodseed/internal/config"
)

func TestLocate_BrandedFirst(t *testing.T) {
	dir := t.TempDir()
	other := writeFile(t, dir, "other.csv", "brand_name\n")
	branded := writeFile(t, dir, "branded_food.csv", "brand_name\n")

	l := &Locator{Primary: dir, Pattern: "*.csv", Keywords: []string{"branded"}}
	got, err := l.Locate()
	require.NoError(t, err)

	assert.Equal(t, []string{branded, other}, got)
}

func TestLocate_PrimaryBeforeFallbacks(t *testing.T) {
	primary := t.TempDir()
	fb1 := t.TempDir()
	fb2 := t.TempDir()

	p := writeFile(t, primary, "foods.csv", "")
	f1Branded := writeFile(t, fb1, "Branded_Export.CSV.csv", "")
	f1Plain := writeFile(t, fb1, "a.csv", "")
	f2Branded := writeFile(t, fb2, "branded.csv", "")

	l := &Locator{
		Primary:   primary,
		Fallbacks: []string{fb1, filepath.Join(primary, "missing"), fb2},
		Pattern:   "*.csv",
		Keywords:  []string{"BRANDED"},
	}
	got, err := l.Locate()
	require.NoError(t, err)

	// The fallback directories form one set: keyword matches from every
	// fallback directory come before the plain ones.
	assert.Equal(t, []string{p, f1Branded, f2Branded, f1Plain}, got)
}

func TestLocate_SkipsNonRegularAndNonMatching(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "branded.csv"), 0o755))
	writeFile(t, dir, "notes.txt", "")
	good := writeFile(t, dir, "foods.csv", "")

	l := &Locator{Primary: dir, Pattern: "*.csv", Keywords: []string{"branded"}}
	got, err := l.Locate()
	require.NoError(t, err)

	assert.Equal(t, []string{good}, got)
}

func TestLocate_Deduplicates(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "foods.csv", "")

	l := &Locator{Primary: dir, Fallbacks: []string{dir, dir + string(filepath.Separator)}, Pattern: "*.csv"}
	got, err := l.Locate()
	require.NoError(t, err)

	assert.Equal(t, []string{f}, got)
}

func TestLocate_NothingFound(t *testing.T) {
	l := &Locator{
		Primary:   filepath.Join(t.TempDir(), "nope"),
		Fallbacks: []string{"", t.TempDir()},
		Pattern:   "*.csv",
	}
	got, err := l.Locate()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocate_BadPattern(t *testing.T) {
	l := &Locator{Primary: t.TempDir(), Pattern: "["}
	_, err := l.Locate()
	require.Error(t, err)
}

func TestNewLocator(t *testing.T) {
	l := NewLocator(config.SourceConfig{
		PrimaryDir:       "/in",
		FallbackDirs:     []string{"data"},
		Pattern:          "*.csv",
		PriorityKeywords: []string{"branded"},
	})
	assert.Equal(t, &Locator{Primary: "/in", Fallbacks: []string{"data"}, Pattern: "*.csv", Keywords: []string{"branded"}}, l)
}

func TestPrioritize_Stable(t *testing.T) {
	in := []string{"d/c.csv", "d/branded_2.csv", "d/a.csv", "d/branded_1.csv"}
	got := prioritize(in, []string{"branded"})
	assert.Equal(t, []string{"d/branded_2.csv", "d/branded_1.csv", "d/c.csv", "d/a.csv"}, got)

	assert.Equal(t, in, prioritize(in, nil))
}
