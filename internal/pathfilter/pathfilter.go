// Package pathfilter decides which paths are excluded from listings and searches.
package pathfilter

import (
	"path"
	"strings"

	"github.com/taigrr/workspace-mcp/internal/types"
)

// PathFilter excludes build artifacts, VCS metadata, dependency trees,
// caches, and OS cruft from traversal and search results.
type PathFilter struct {
	ignoredDirs  map[string]struct{}
	ignoredFiles []string
}

// Directory names excluded wherever they appear as a full path segment.
var defaultIgnoredDirs = []string{
	".git",
	".hg",
	".svn",
	"node_modules",
	"__pycache__",
	".venv",
	"venv",
	".tox",
	".mypy_cache",
	".pytest_cache",
	".idea",
	"dist",
	"build",
	"target",
	".cache",
}

// Filename globs matched against the final path segment only.
var defaultIgnoredFiles = []string{
	".DS_Store",
	"Thumbs.db",
	"*.pyc",
	"*.pyo",
	"*.swp",
	"*.tmp",
	"*.so",
	"*.dylib",
	"*.class",
}

// New creates a new PathFilter with the given configuration.
func New(config *types.PathFilterConfig) *PathFilter {
	pf := &PathFilter{
		ignoredDirs:  make(map[string]struct{}, len(defaultIgnoredDirs)),
		ignoredFiles: append([]string{}, defaultIgnoredFiles...),
	}

	for _, dir := range defaultIgnoredDirs {
		pf.ignoredDirs[dir] = struct{}{}
	}

	if config != nil {
		for _, dir := range config.IgnoredDirs {
			pf.ignoredDirs[dir] = struct{}{}
		}
		pf.ignoredFiles = append(pf.ignoredFiles, config.IgnoredFiles...)
	}

	return pf
}

// ShouldIgnore reports whether p is excluded from listings and searches.
// Matching is anchored at path-segment boundaries: a file merely containing
// "git" in its name is never excluded, only an actual ".git" segment is.
// Absolute and relative paths both work; matching is case-sensitive.
func (pf *PathFilter) ShouldIgnore(p string) bool {
	// Normalize path separators (Windows compatibility)
	normalized := strings.ReplaceAll(p, "\\", "/")

	segments := strings.Split(normalized, "/")
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		if _, ok := pf.ignoredDirs[segment]; ok {
			return true
		}
	}

	base := segments[len(segments)-1]
	if base == "" {
		// Trailing slash: the final segment is the one before it.
		if len(segments) < 2 {
			return false
		}
		base = segments[len(segments)-2]
	}

	for _, pattern := range pf.ignoredFiles {
		if matched, err := path.Match(pattern, base); err == nil && matched {
			return true
		}
	}

	return false
}

// FilterPaths filters a slice of paths to only include non-ignored ones.
func (pf *PathFilter) FilterPaths(paths []string) []string {
	var kept []string
	for _, p := range paths {
		if !pf.ShouldIgnore(p) {
			kept = append(kept, p)
		}
	}
	return kept
}
