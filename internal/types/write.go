package types

type (
	// WriteFileParams contains parameters for writing a file.
	WriteFileParams struct {
		Path      string `json:"path"`
		Content   string `json:"content"`
		Overwrite bool   `json:"overwrite,omitempty"`
	}

	// WriteFileResult contains the result of a write operation.
	WriteFileResult struct {
		Success bool   `json:"success"`
		Path    string `json:"path"`
		Message string `json:"message"`
		Diff    string `json:"diff,omitempty"`
	}

	// EditFileParams contains parameters for an exact-string replacement.
	EditFileParams struct {
		Path       string `json:"path"`
		OldString  string `json:"oldString"`
		NewString  string `json:"newString"`
		ReplaceAll bool   `json:"replaceAll,omitempty"`
	}

	// EditFileResult contains the result of an edit operation.
	EditFileResult struct {
		Success    bool   `json:"success"`
		Path       string `json:"path"`
		Message    string `json:"message"`
		MatchCount int    `json:"matchCount,omitempty"`
		Diff       string `json:"diff,omitempty"`
	}

	// DeleteFileParams contains parameters for deleting a file.
	DeleteFileParams struct {
		Path        string `json:"path"`
		ConfirmPath string `json:"confirmPath"`
	}

	// DeleteFileResult contains the result of a delete operation.
	DeleteFileResult struct {
		Success bool   `json:"success"`
		Path    string `json:"path"`
		Message string `json:"message"`
	}
)
