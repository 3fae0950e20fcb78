package components

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"

	"dostext/internal/config"
)

// PatternFilter lets the file dialog show files matching any of the
// configured glob patterns. "*.*" and "*" match every file.
type PatternFilter struct {
	patterns []string
}

func NewPatternFilter(types []config.FileType) *PatternFilter {
	f := &PatternFilter{}
	for _, ft := range types {
		f.patterns = append(f.patterns, strings.ToLower(strings.TrimSpace(ft.Pattern)))
	}
	return f
}

// Matches implements storage.FileFilter.
func (f *PatternFilter) Matches(uri fyne.URI) bool {
	return f.MatchesName(uri.Name())
}

func (f *PatternFilter) MatchesName(name string) bool {
	if len(f.patterns) == 0 {
		return true
	}
	name = strings.ToLower(name)
	for _, p := range f.patterns {
		if p == "*.*" || p == "*" {
			return true
		}
		if ok, err := filepath.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}
