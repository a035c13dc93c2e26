package types

type (
	// ReadResult is the outcome of reading a single file. Exactly one
	// variant is populated: Content/TotalLines on success, Error on
	// failure. Never both.
	ReadResult struct {
		Path       string `json:"path"`
		Content    string `json:"content,omitempty"`
		TotalLines int    `json:"total_lines,omitempty"`
		Error      string `json:"error,omitempty"`
	}
)

// Failed reports whether the read ended in an error variant.
func (r ReadResult) Failed() bool {
	return r.Error != ""
}
