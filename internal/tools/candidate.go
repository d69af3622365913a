package tools

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// SourceExt is the file extension that qualifies a file as a tool candidate.
const SourceExt = ".go"

// Candidate is a discovered tool source file awaiting registration.
type Candidate struct {
	// AbsPath locates the file on disk.
	AbsPath string

	// RelPath is the path relative to the tool root, with forward slashes.
	RelPath string

	// ModuleID is the dotted identity derived from RelPath, used in logs
	// and diagnostics ("weather/wind.go" -> "weather.wind").
	ModuleID string
}

// Walk enumerates tool candidates under root in deterministic lexicographic
// order. Files whose base name matches an exclusion pattern and directories
// whose name begins with "_" or "." are skipped. An empty root yields an
// empty slice; a missing root returns ErrRootMissing.
func Walk(root string, exclusions []string) ([]Candidate, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootMissing, root)
		}
		return nil, fmt.Errorf("stat tool root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrRootMissing, root)
	}

	var candidates []Candidate
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()
		if d.IsDir() {
			if p != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(name) != SourceExt || excluded(name, exclusions) {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		candidates = append(candidates, Candidate{
			AbsPath:  p,
			RelPath:  rel,
			ModuleID: moduleID(rel),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk tool root %s: %w", root, err)
	}

	return candidates, nil
}

func moduleID(rel string) string {
	return strings.ReplaceAll(strings.TrimSuffix(rel, SourceExt), "/", ".")
}

func excluded(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := path.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
