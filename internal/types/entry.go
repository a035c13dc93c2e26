// Package types defines all data structures used across the MCP server.
package types

// Entry type values used in FileEntry.Type.
const (
	EntryTypeFile      = "file"
	EntryTypeDirectory = "directory"
)

type (
	// FileEntry describes one discovered path in a directory listing.
	// A listing that fails its preconditions is returned as a single
	// entry with only Error set.
	FileEntry struct {
		Path  string `json:"path,omitempty"`
		Type  string `json:"type,omitempty"`
		Size  *int64 `json:"size,omitempty"` // nil for directories
		Depth int    `json:"depth,omitempty"`
		Error string `json:"error,omitempty"`
	}

	// PathFilterConfig contains configuration for the path filter.
	PathFilterConfig struct {
		IgnoredDirs  []string `json:"ignoredDirs,omitempty"  yaml:"ignoredDirs"`
		IgnoredFiles []string `json:"ignoredFiles,omitempty" yaml:"ignoredFiles"`
	}
)
