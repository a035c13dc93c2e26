package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/workspace-mcp/internal/display"
	"github.com/taigrr/workspace-mcp/internal/search"
	"github.com/taigrr/workspace-mcp/internal/types"
)

func handleListFiles(ctx context.Context, req *mcp.CallToolRequest, input ListFilesInput) (*mcp.CallToolResult, ListFilesOutput, error) {
	recursive := true
	if input.Recursive != nil {
		recursive = *input.Recursive
	}

	entries := fileSystem.ListFiles(strings.TrimSpace(input.Directory), recursive)

	if len(entries) == 1 && entries[0].Error != "" {
		return &mcp.CallToolResult{IsError: true}, ListFilesOutput{},
			fmt.Errorf("%s", entries[0].Error)
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: display.RenderEntries(entries)},
		},
	}

	return result, ListFilesOutput{Entries: entries, Total: len(entries)}, nil
}

func handleReadFile(ctx context.Context, req *mcp.CallToolRequest, input ReadFileInput) (*mcp.CallToolResult, ReadFileOutput, error) {
	path := strings.TrimSpace(input.Path)

	read := fileSystem.ReadFile(path)
	if read.Failed() {
		return &mcp.CallToolResult{IsError: true}, ReadFileOutput{},
			fmt.Errorf("%s", read.Error)
	}

	return nil, ReadFileOutput{
		Path:       read.Path,
		Content:    read.Content,
		TotalLines: read.TotalLines,
	}, nil
}

func handleGrep(ctx context.Context, req *mcp.CallToolRequest, input GrepInput) (*mcp.CallToolResult, GrepOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return &mcp.CallToolResult{IsError: true}, GrepOutput{},
			fmt.Errorf("search query cannot be empty")
	}

	matches := searchService.Grep(input.Query, strings.TrimSpace(input.Directory))

	return nil, GrepOutput{
		Matches:   matches,
		Truncated: len(matches) >= search.MaxMatches,
	}, nil
}

func handleWriteFile(ctx context.Context, req *mcp.CallToolRequest, input WriteFileInput) (*mcp.CallToolResult, WriteFileOutput, error) {
	path := strings.TrimSpace(input.Path)

	result := fileSystem.WriteFile(types.WriteFileParams{
		Path:      path,
		Content:   input.Content,
		Overwrite: input.Overwrite,
	})
	if !result.Success {
		return &mcp.CallToolResult{IsError: true}, WriteFileOutput{Success: false, Path: path},
			fmt.Errorf("%s", result.Message)
	}

	return nil, WriteFileOutput{Success: true, Path: path, Diff: result.Diff}, nil
}

func handleEditFile(ctx context.Context, req *mcp.CallToolRequest, input EditFileInput) (*mcp.CallToolResult, EditFileOutput, error) {
	path := strings.TrimSpace(input.Path)

	result := fileSystem.EditFile(types.EditFileParams{
		Path:       path,
		OldString:  input.OldString,
		NewString:  input.NewString,
		ReplaceAll: input.ReplaceAll,
	})
	if !result.Success {
		return &mcp.CallToolResult{IsError: true}, EditFileOutput{Success: false, Path: path},
			fmt.Errorf("%s", result.Message)
	}

	replacements := 1
	if input.ReplaceAll {
		replacements = result.MatchCount
	}

	return nil, EditFileOutput{
		Success:      true,
		Path:         path,
		Replacements: replacements,
		Diff:         result.Diff,
	}, nil
}

func handleDeleteFile(ctx context.Context, req *mcp.CallToolRequest, input DeleteFileInput) (*mcp.CallToolResult, DeleteFileOutput, error) {
	path := strings.TrimSpace(input.Path)

	if input.Confirm != "yes" {
		return &mcp.CallToolResult{IsError: true}, DeleteFileOutput{Success: false, Path: path},
			fmt.Errorf("deletion not confirmed: set confirm='yes' to proceed")
	}

	result := fileSystem.DeleteFile(types.DeleteFileParams{
		Path:        path,
		ConfirmPath: path,
	})
	if !result.Success {
		return &mcp.CallToolResult{IsError: true}, DeleteFileOutput{Success: false, Path: path},
			fmt.Errorf("%s", result.Message)
	}

	return nil, DeleteFileOutput{Success: true, Path: path}, nil
}
