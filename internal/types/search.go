package types

type (
	// GrepMatch is one matching line found by a grep walk.
	GrepMatch struct {
		FilePath    string `json:"file_path"`
		LineNumber  int    `json:"line_number"` // 1-based
		LineContent string `json:"line_content"`
	}
)
