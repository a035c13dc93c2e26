// Package filesystem provides file system operations for the workspace.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/workspace-mcp/internal/diff"
	"github.com/taigrr/workspace-mcp/internal/pathfilter"
	"github.com/taigrr/workspace-mcp/internal/types"
)

// Service provides file system operations rooted at a workspace.
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

// ResolvePath resolves a relative path within the workspace and validates it.
func (s *Service) ResolvePath(relativePath string) (string, error) {
	relativePath = strings.TrimSpace(relativePath)
	relativePath = strings.TrimPrefix(relativePath, "/")

	fullPath := filepath.Join(s.workspacePath, relativePath)
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", err
	}

	// Security check: ensure path stays within the workspace
	relPath, err := filepath.Rel(s.workspacePath, absPath)
	if err != nil {
		return "", err
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	return absPath, nil
}

// ListFiles walks a directory and returns an inventory of its files and
// subdirectories. dir is relative to the workspace root; "" or "." means
// the root itself. Ignored subtrees are pruned before descent. Precondition
// failures come back as a single entry with only Error set; per-entry stat
// failures skip the entry and keep walking.
func (s *Service) ListFiles(dir string, recursive bool) []types.FileEntry {
	if dir == "." {
		dir = ""
	}

	display := dir
	if display == "" {
		display = "."
	}

	fullPath, err := s.ResolvePath(dir)
	if err != nil {
		return []types.FileEntry{{Error: err.Error()}}
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []types.FileEntry{{Error: fmt.Sprintf("directory %s does not exist", display)}}
		}
		return []types.FileEntry{{Error: fmt.Sprintf("failed to stat %s: %v", display, err)}}
	}
	if !info.IsDir() {
		return []types.FileEntry{{Error: fmt.Sprintf("%s is not a directory", display)}}
	}

	if !recursive {
		return s.listTopLevel(fullPath)
	}

	entries := []types.FileEntry{}
	// Walk order is parent before children; errors on individual entries
	// never abort the walk.
	filepath.WalkDir(fullPath, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if p == fullPath {
			return nil
		}

		rel, relErr := filepath.Rel(fullPath, p)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if s.pathFilter.ShouldIgnore(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		depth := strings.Count(rel, "/")

		if d.IsDir() {
			entries = append(entries, types.FileEntry{
				Path:  rel,
				Type:  types.EntryTypeDirectory,
				Depth: depth,
			})
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		fi, infoErr := d.Info()
		if infoErr != nil {
			return nil
		}
		size := fi.Size()
		entries = append(entries, types.FileEntry{
			Path:  rel,
			Type:  types.EntryTypeFile,
			Size:  &size,
			Depth: depth,
		})
		return nil
	})

	return entries
}

// listTopLevel returns only the regular files directly inside fullPath.
func (s *Service) listTopLevel(fullPath string) []types.FileEntry {
	entries := []types.FileEntry{}

	dirEntries, err := os.ReadDir(fullPath)
	if err != nil {
		return []types.FileEntry{{Error: fmt.Sprintf("failed to list directory: %v", err)}}
	}

	for _, entry := range dirEntries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}
		if s.pathFilter.ShouldIgnore(entry.Name()) {
			continue
		}
		fi, infoErr := entry.Info()
		if infoErr != nil {
			continue
		}
		size := fi.Size()
		entries = append(entries, types.FileEntry{
			Path: entry.Name(),
			Type: types.EntryTypeFile,
			Size: &size,
		})
	}

	return entries
}

// ReadFile reads a file's full text content. The result is always a value:
// either Content plus TotalLines, or Error, never both. Content is returned
// verbatim with no truncation or normalization, so very large files are
// read fully into memory.
func (s *Service) ReadFile(path string) types.ReadResult {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return types.ReadResult{Path: path, Error: err.Error()}
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.ReadResult{Path: path, Error: fmt.Sprintf("file %s does not exist", path)}
		}
		return types.ReadResult{Path: path, Error: fmt.Sprintf("failed to stat %s: %v", path, err)}
	}
	if !info.Mode().IsRegular() {
		return types.ReadResult{Path: path, Error: fmt.Sprintf("%s is not a file", path)}
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return types.ReadResult{Path: path, Error: fmt.Sprintf("permission denied: %s", path)}
		}
		return types.ReadResult{Path: path, Error: fmt.Sprintf("failed to read %s: %v", path, err)}
	}

	text := string(content)
	return types.ReadResult{
		Path:       path,
		Content:    text,
		TotalLines: len(strings.Split(text, "\n")),
	}
}

// WriteFile creates or overwrites a file in the workspace. Overwriting an
// existing file requires Overwrite=true. Parent directories are created as
// needed. The result carries a diff summary against the prior content.
func (s *Service) WriteFile(params types.WriteFileParams) types.WriteFileResult {
	path := params.Path

	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return types.WriteFileResult{
			Success: false,
			Path:    path,
			Message: fmt.Sprintf("Failed to resolve path: %v", err),
		}
	}

	if s.pathFilter.ShouldIgnore(path) {
		return types.WriteFileResult{
			Success: false,
			Path:    path,
			Message: fmt.Sprintf("Access denied: %s", path),
		}
	}

	existing := ""
	existed := false
	if info, statErr := os.Stat(fullPath); statErr == nil {
		existed = true
		if info.IsDir() {
			return types.WriteFileResult{
				Success: false,
				Path:    path,
				Message: fmt.Sprintf("Cannot write: %s is not a file", path),
			}
		}
		if !params.Overwrite {
			return types.WriteFileResult{
				Success: false,
				Path:    path,
				Message: fmt.Sprintf("File already exists: %s. Use overwrite=true to replace it.", path),
			}
		}
		if prev, readErr := os.ReadFile(fullPath); readErr == nil {
			existing = string(prev)
		}
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return types.WriteFileResult{
			Success: false,
			Path:    path,
			Message: fmt.Sprintf("Failed to create directory: %v", err),
		}
	}

	if err := os.WriteFile(fullPath, []byte(params.Content), 0o644); err != nil {
		return types.WriteFileResult{
			Success: false,
			Path:    path,
			Message: fmt.Sprintf("Failed to write file: %s - %v", path, err),
		}
	}

	action := "created"
	if existed {
		action = "overwrote"
	}
	return types.WriteFileResult{
		Success: true,
		Path:    path,
		Message: fmt.Sprintf("Successfully %s %s", action, path),
		Diff:    diff.Summary(path, existing, params.Content),
	}
}

// EditFile replaces an exact string in a file. Multiple occurrences require
// ReplaceAll; an empty NewString deletes the matched text.
func (s *Service) EditFile(params types.EditFileParams) types.EditFileResult {
	path := params.Path
	oldString := params.OldString
	newString := params.NewString

	if strings.TrimSpace(oldString) == "" {
		return types.EditFileResult{
			Success: false,
			Path:    path,
			Message: "oldString cannot be empty",
		}
	}

	if oldString == newString {
		return types.EditFileResult{
			Success: false,
			Path:    path,
			Message: "oldString and newString must be different",
		}
	}

	read := s.ReadFile(path)
	if read.Failed() {
		return types.EditFileResult{
			Success: false,
			Path:    path,
			Message: fmt.Sprintf("Failed to edit file: %s", read.Error),
		}
	}

	occurrences := strings.Count(read.Content, oldString)
	if occurrences == 0 {
		truncated := oldString
		if len(truncated) > 50 {
			truncated = truncated[:50] + "..."
		}
		return types.EditFileResult{
			Success:    false,
			Path:       path,
			Message:    fmt.Sprintf("String not found in file: %q", truncated),
			MatchCount: 0,
		}
	}

	if !params.ReplaceAll && occurrences > 1 {
		return types.EditFileResult{
			Success:    false,
			Path:       path,
			Message:    fmt.Sprintf("Found %d occurrences of the string. Use replaceAll=true to replace all occurrences, or provide a more specific string to match exactly one occurrence.", occurrences),
			MatchCount: occurrences,
		}
	}

	var updated string
	if params.ReplaceAll {
		updated = strings.ReplaceAll(read.Content, oldString, newString)
	} else {
		updated = strings.Replace(read.Content, oldString, newString, 1)
	}

	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return types.EditFileResult{
			Success: false,
			Path:    path,
			Message: fmt.Sprintf("Failed to resolve path: %v", err),
		}
	}

	if err := os.WriteFile(fullPath, []byte(updated), 0o644); err != nil {
		return types.EditFileResult{
			Success: false,
			Path:    path,
			Message: fmt.Sprintf("Failed to write file: %v", err),
		}
	}

	replaced := 1
	if params.ReplaceAll {
		replaced = occurrences
	}

	plural := ""
	if replaced > 1 {
		plural = "s"
	}

	return types.EditFileResult{
		Success:    true,
		Path:       path,
		Message:    fmt.Sprintf("Successfully replaced %d occurrence%s", replaced, plural),
		MatchCount: occurrences,
		Diff:       diff.Summary(path, read.Content, updated),
	}
}

// DeleteFile deletes a single file from the workspace.
func (s *Service) DeleteFile(params types.DeleteFileParams) types.DeleteFileResult {
	path := params.Path

	// Confirmation check - paths must match exactly
	if path != params.ConfirmPath {
		return types.DeleteFileResult{
			Success: false,
			Path:    path,
			Message: "Deletion cancelled: confirmation path does not match. For safety, both 'path' and 'confirmPath' must be identical.",
		}
	}

	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return types.DeleteFileResult{
			Success: false,
			Path:    path,
			Message: fmt.Sprintf("Failed to resolve path: %v", err),
		}
	}

	if info, statErr := os.Stat(fullPath); statErr == nil && info.IsDir() {
		return types.DeleteFileResult{
			Success: false,
			Path:    path,
			Message: fmt.Sprintf("Cannot delete: %s is not a file", path),
		}
	}

	if err := os.Remove(fullPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.DeleteFileResult{
				Success: false,
				Path:    path,
				Message: fmt.Sprintf("File not found: %s", path),
			}
		}
		if errors.Is(err, fs.ErrPermission) {
			return types.DeleteFileResult{
				Success: false,
				Path:    path,
				Message: fmt.Sprintf("Permission denied: %s", path),
			}
		}
		return types.DeleteFileResult{
			Success: false,
			Path:    path,
			Message: fmt.Sprintf("Failed to delete file: %s - %v", path, err),
		}
	}

	return types.DeleteFileResult{
		Success: true,
		Path:    path,
		Message: fmt.Sprintf("Successfully deleted file: %s. This action cannot be undone.", path),
	}
}

// GetWorkspacePath returns the absolute workspace root.
func (s *Service) GetWorkspacePath() string {
	return s.workspacePath
}
