package display

import (
	"strings"
	"testing"

	"github.com/taigrr/workspace-mcp/internal/types"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{5 * 1024 * 1024 * 1024, "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatSize(tt.size); got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.size, got, tt.want)
			}
		})
	}
}

func TestFileIcon(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"main.go", "🐹"},
		{"script.py", "🐍"},
		{"app.js", "📜"},
		{"README.md", "📝"},
		{"config.YAML", "⚙️"},
		{"unknown.xyz", "📄"},
		{"Makefile", "📄"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileIcon(tt.name); got != tt.want {
				t.Errorf("FileIcon(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestRenderEntries(t *testing.T) {
	t.Run("empty listing", func(t *testing.T) {
		if got := RenderEntries(nil); got != "(empty directory)" {
			t.Errorf("RenderEntries(nil) = %q, want \"(empty directory)\"", got)
		}
	})

	t.Run("tree with files and directories", func(t *testing.T) {
		size := int64(1536)
		entries := []types.FileEntry{
			{Path: "main.go", Type: types.EntryTypeFile, Size: &size, Depth: 0},
			{Path: "docs", Type: types.EntryTypeDirectory, Depth: 0},
			{Path: "docs/guide.md", Type: types.EntryTypeFile, Size: &size, Depth: 1},
		}

		got := RenderEntries(entries)
		lines := strings.Split(got, "\n")
		if len(lines) != 3 {
			t.Fatalf("RenderEntries() produced %d lines, want 3", len(lines))
		}
		if lines[0] != "🐹 main.go (1.5 KB)" {
			t.Errorf("line 0 = %q", lines[0])
		}
		if lines[1] != "📁 docs/" {
			t.Errorf("line 1 = %q", lines[1])
		}
		if lines[2] != "  📝 guide.md (1.5 KB)" {
			t.Errorf("line 2 = %q", lines[2])
		}
	})

	t.Run("error entry renders its message", func(t *testing.T) {
		entries := []types.FileEntry{{Error: "directory foo does not exist"}}
		if got := RenderEntries(entries); got != "directory foo does not exist" {
			t.Errorf("RenderEntries() = %q", got)
		}
	})
}
