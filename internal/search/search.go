// Package search provides bounded text search across the workspace.
package search

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/taigrr/workspace-mcp/internal/pathfilter"
	"github.com/taigrr/workspace-mcp/internal/types"
)

// MaxMatches is the hard ceiling on total matches returned by one Grep
// call, counted across the entire walk.
const MaxMatches = 200

// Service provides text search over a workspace.
type Service struct {
	workspacePath string
	pathFilter    *pathfilter.PathFilter
}

// New creates a new Service rooted at workspacePath.
func New(workspacePath string, pf *pathfilter.PathFilter) *Service {
	absPath, _ := filepath.Abs(workspacePath)
	if pf == nil {
		pf = pathfilter.New(nil)
	}
	return &Service{
		workspacePath: absPath,
		pathFilter:    pf,
	}
}

// Grep walks dir depth-first and returns every line containing query as a
// literal, case-sensitive substring. Matches arrive in traversal order,
// ascending line number within a file, and stop the instant the global
// MaxMatches cap is reached. Unreadable and binary files are silently
// skipped; an unresolvable dir yields an empty result, never an error.
// The walk is single-threaded: parallelizing it would force the cap onto
// an atomic counter and break the traversal-order guarantee.
func (s *Service) Grep(query, dir string) []types.GrepMatch {
	matches := []types.GrepMatch{}

	if dir == "." {
		dir = ""
	}
	dir = strings.TrimPrefix(strings.TrimSpace(dir), "/")

	fullPath, err := filepath.Abs(filepath.Join(s.workspacePath, dir))
	if err != nil {
		return matches
	}
	if rel, relErr := filepath.Rel(s.workspacePath, fullPath); relErr != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return matches
	}

	filepath.WalkDir(fullPath, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}

		rel, relErr := filepath.Rel(s.workspacePath, p)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if p != fullPath && s.pathFilter.ShouldIgnore(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		content, readErr := os.ReadFile(p)
		if readErr != nil {
			return nil
		}
		if !utf8.Valid(content) {
			// Binary file, skip
			return nil
		}

		for i, line := range strings.Split(string(content), "\n") {
			if !strings.Contains(line, query) {
				continue
			}
			matches = append(matches, types.GrepMatch{
				FilePath:    rel,
				LineNumber:  i + 1,
				LineContent: line,
			})
			if len(matches) >= MaxMatches {
				return fs.SkipAll
			}
		}
		return nil
	})

	return matches
}
