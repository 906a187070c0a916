package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/foodseed/internal/core"
)

// runCLI executes the root command with an isolated database and source
// layout and returns its standard output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd(false)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func isolate(t *testing.T) (dbPath, srcDir string) {
	t.Helper()
	dir := t.TempDir()
	srcDir = filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))

	t.Setenv("SOURCE_FALLBACK_DIRS", filepath.Join(dir, "missing"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DEMO_BCRYPT_COST", "4")
	return filepath.Join(dir, "db", "nutrition.db"), srcDir
}

func TestBootstrap_IngestsCSV(t *testing.T) {
	dbPath, srcDir := isolate(t)

	var b bytes.Buffer
	b.WriteString("brand_name,description,serving_size\n")
	for i := range 12 {
		fmt.Fprintf(&b, "Brand %d,Item %d,100\n", i, i)
	}
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "branded_food.csv"), b.Bytes(), 0o644))

	out, err := runCLI(t, "--database-url", dbPath, "--source-dir", srcDir, "--seed", "7")
	require.NoError(t, err)

	assert.Contains(t, out, "inserted:  12")
	assert.Contains(t, out, "foods:     12")
	assert.Contains(t, out, "5 favorites linked")
}

func TestBootstrap_FallsBackAndSkipsDemo(t *testing.T) {
	dbPath, srcDir := isolate(t)

	out, err := runCLI(t, "bootstrap", "--database-url", dbPath, "--source-dir", srcDir, "--skip-demo")
	require.NoError(t, err)

	assert.Contains(t, out, "source:    "+core.SourceFallback)
	assert.NotContains(t, out, "demo:")
}

func TestLocate_ListsPrioritizedCandidates(t *testing.T) {
	_, srcDir := isolate(t)
	for _, name := range []string{"a.csv", "branded_food.csv", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(srcDir, name), []byte("x"), 0o644))
	}

	out, err := runCLI(t, "locate", "--source-dir", srcDir)
	require.NoError(t, err)

	assert.Regexp(t, `(?s)branded_food\.csv.*a\.csv`, out)
	assert.NotContains(t, out, "notes.txt")
}

func TestReset_RequiresConfirmation(t *testing.T) {
	dbPath, _ := isolate(t)

	_, err := runCLI(t, "reset", "--database-url", dbPath)
	require.ErrorIs(t, err, errResetNotConfirmed)

	out, err := runCLI(t, "reset", "--database-url", dbPath, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog reset")
}

func TestMigrate_PrintsVersion(t *testing.T) {
	dbPath, _ := isolate(t)

	out, err := runCLI(t, "migrate", "--database-url", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "schema version 1 (sqlite3)")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 130, exitCode(fmt.Errorf("ingest: %w", context.Canceled)))
	assert.Equal(t, 1, exitCode(core.ErrNoData))
	assert.Equal(t, 1, exitCode(errors.New("boom")))
}
