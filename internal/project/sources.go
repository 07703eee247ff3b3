package project

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// SourceFiles returns the files below root matched by an include glob and by
// no exclude glob, as sorted absolute paths.
func (c *Config) SourceFiles(root string) ([]string, error) {
	fsys := os.DirFS(root)
	seen := make(map[string]bool)
	var out []string
	for _, pat := range c.Sources.Include {
		matches, err := doublestar.Glob(fsys, pat, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pat, err)
		}
		for _, m := range matches {
			if seen[m] || c.excluded(m) {
				continue
			}
			seen[m] = true
			out = append(out, filepath.Join(root, filepath.FromSlash(m)))
		}
	}
	slices.Sort(out)
	return out, nil
}

func (c *Config) excluded(rel string) bool {
	for _, pat := range c.Sources.Exclude {
		if ok, _ := doublestar.Match(pat, rel); ok {
			return true
		}
	}
	return false
}

// Matches reports whether the slash-separated path rel, relative to the
// project root, is one of the configured sources.
func (c *Config) Matches(rel string) bool {
	if c.excluded(rel) {
		return false
	}
	for _, pat := range c.Sources.Include {
		if ok, _ := doublestar.Match(pat, rel); ok {
			return true
		}
	}
	return false
}
