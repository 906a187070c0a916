package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/JonMunkholm/foodseed/internal/config"
)

// Locator discovers candidate source files.
//
// The primary directory is searched first and its matches always precede
// those of the fallback directories, which are searched in order and treated
// as a single set. Within each set, files whose name contains one of the
// Keywords (case-insensitive) move ahead of the rest; otherwise directory
// listing order is kept.
type Locator struct {
	Primary   string
	Fallbacks []string
	Pattern   string
	Keywords  []string
}

// NewLocator builds a Locator from the source configuration.
func NewLocator(cfg config.SourceConfig) *Locator {
	return &Locator{
		Primary:   cfg.PrimaryDir,
		Fallbacks: cfg.FallbackDirs,
		Pattern:   cfg.Pattern,
		Keywords:  cfg.PriorityKeywords,
	}
}

// Locate returns the ordered candidate paths. Missing or unreadable
// directories contribute nothing; the only error is a malformed Pattern.
func (l *Locator) Locate() ([]string, error) {
	if _, err := filepath.Match(l.Pattern, ""); err != nil {
		return nil, fmt.Errorf("source pattern %q: %w", l.Pattern, err)
	}

	seen := make(map[string]struct{})

	primary := l.scan([]string{l.Primary}, seen)
	fallback := l.scan(l.Fallbacks, seen)

	return append(prioritize(primary, l.Keywords), prioritize(fallback, l.Keywords)...), nil
}

func (l *Locator) scan(dirs []string, seen map[string]struct{}) []string {
	var found []string

	for _, dir := range dirs {
		if dir == "" {
			continue
		}

		// os.ReadDir returns entries sorted by name
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if ok, _ := filepath.Match(l.Pattern, entry.Name()); !ok {
				continue
			}

			path := filepath.Join(dir, entry.Name())

			// Stat follows symlinks so a link to a regular file is accepted.
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}

			key := path
			if abs, err := filepath.Abs(path); err == nil {
				key = abs
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			found = append(found, path)
		}
	}

	return found
}

// prioritize is a stable partition: keyword matches first.
func prioritize(paths, keywords []string) []string {
	if len(keywords) == 0 {
		return paths
	}

	first := make([]string, 0, len(paths))
	var rest []string
	for _, p := range paths {
		if hasKeyword(filepath.Base(p), keywords) {
			first = append(first, p)
		} else {
			rest = append(rest, p)
		}
	}
	return append(first, rest...)
}

func hasKeyword(name string, keywords []string) bool {
	name = strings.ToLower(name)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(name, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
