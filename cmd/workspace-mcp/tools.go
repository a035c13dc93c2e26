package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/workspace-mcp/internal/types"
)

type (
	// ListFilesInput contains parameters for listing a directory.
	ListFilesInput struct {
		Directory string `json:"directory,omitempty" jsonschema:"Directory to list, relative to the workspace root (default: the root)"`
		Recursive *bool  `json:"recursive,omitempty" jsonschema:"Descend into subdirectories (default: true)"`
	}

	// ListFilesOutput contains the result of listing a directory.
	ListFilesOutput struct {
		Entries []types.FileEntry `json:"entries"`
		Total   int               `json:"total"`
	}

	// ReadFileInput contains parameters for reading a file.
	ReadFileInput struct {
		Path string `json:"path" jsonschema:"Path to the file relative to the workspace root"`
	}

	// ReadFileOutput contains the result of reading a file.
	ReadFileOutput struct {
		Path       string `json:"path"`
		Content    string `json:"content"`
		TotalLines int    `json:"total_lines"`
	}

	// GrepInput contains parameters for searching file contents.
	GrepInput struct {
		Query     string `json:"query" jsonschema:"Literal text to search for (case-sensitive, not a regex)"`
		Directory string `json:"directory,omitempty" jsonschema:"Directory to search, relative to the workspace root (default: the root)"`
	}

	// GrepOutput contains search matches, capped at 200 across the walk.
	GrepOutput struct {
		Matches   []types.GrepMatch `json:"matches"`
		Truncated bool              `json:"truncated,omitempty"`
	}

	// WriteFileInput contains parameters for writing a file.
	WriteFileInput struct {
		Path      string `json:"path" jsonschema:"Path to the file relative to the workspace root"`
		Content   string `json:"content" jsonschema:"Content of the file"`
		Overwrite bool   `json:"overwrite,omitempty" jsonschema:"Allow overwriting an existing file (default: false)"`
	}

	// WriteFileOutput contains the result of writing a file.
	WriteFileOutput struct {
		Success bool   `json:"success"`
		Path    string `json:"path"`
		Diff    string `json:"diff,omitempty"`
	}

	// EditFileInput contains parameters for editing a file.
	EditFileInput struct {
		Path       string `json:"path" jsonschema:"Path to the file relative to the workspace root"`
		OldString  string `json:"oldString" jsonschema:"Exact text to replace"`
		NewString  string `json:"newString" jsonschema:"New text to insert in place of oldString (empty deletes the match)"`
		ReplaceAll bool   `json:"replaceAll,omitempty" jsonschema:"If true, replace all occurrences of oldString"`
	}

	// EditFileOutput contains the result of editing a file.
	EditFileOutput struct {
		Success      bool   `json:"success"`
		Path         string `json:"path"`
		Replacements int    `json:"replacements,omitempty"`
		Diff         string `json:"diff,omitempty"`
	}

	// DeleteFileInput contains parameters for deleting a file.
	DeleteFileInput struct {
		Path    string `json:"path" jsonschema:"Path to the file relative to the workspace root"`
		Confirm string `json:"confirm" jsonschema:"Must be set to 'yes' to confirm deletion"`
	}

	// DeleteFileOutput contains the result of deleting a file.
	DeleteFileOutput struct {
		Success bool   `json:"success"`
		Path    string `json:"path"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_files",
		Description: "List files and directories under a path. Recursive by default; build artifacts, VCS metadata, and caches are filtered out. Entries carry relative paths, sizes, and nesting depth in traversal order.",
	}, handleListFiles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_file",
		Description: "Read a file's full text content verbatim, with its total line count. Large files are returned whole.",
	}, handleReadFile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "grep",
		Description: "Search file contents for a literal case-sensitive string. Returns matching lines with 1-based line numbers, capped at 200 matches across the whole tree. Binary and unreadable files are skipped.",
	}, handleGrep)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "write_file",
		Description: "Create or overwrite a file with the given content. Overwriting an existing file requires overwrite=true. Returns a line diff against the prior content.",
	}, handleWriteFile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "edit_file",
		Description: "Edit a file by replacing an exact string. oldString must match exactly; multiple occurrences require replaceAll=true. Returns a line diff of the change.",
	}, handleEditFile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_file",
		Description: "Delete a file from the workspace. Requires confirm='yes' for safety.",
	}, handleDeleteFile)
}
