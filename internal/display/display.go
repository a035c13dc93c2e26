// Package display provides pure formatting helpers for tool output.
// Nothing here touches the filesystem; every function maps a value to a
// display string so the scanning logic stays independently testable.
package display

import (
	"fmt"
	"path"
	"strings"

	"github.com/taigrr/workspace-mcp/internal/types"
)

// FormatSize renders a byte count in human-readable form.
func FormatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

var iconsByExtension = map[string]string{
	".go":   "🐹",
	".py":   "🐍",
	".js":   "📜",
	".ts":   "📜",
	".jsx":  "📜",
	".tsx":  "📜",
	".md":   "📝",
	".txt":  "📝",
	".json": "⚙️",
	".yaml": "⚙️",
	".yml":  "⚙️",
	".toml": "⚙️",
	".sh":   "🐚",
	".html": "🌐",
	".css":  "🎨",
	".sql":  "🗄️",
}

// FileIcon returns a display icon for a file name based on its extension.
func FileIcon(name string) string {
	if icon, ok := iconsByExtension[strings.ToLower(path.Ext(name))]; ok {
		return icon
	}
	return "📄"
}

// DirIcon is the display icon for directory entries.
const DirIcon = "📁"

// RenderEntries renders a listing as a depth-indented tree with icons and
// sizes, one entry per line. Error entries render their message verbatim.
func RenderEntries(entries []types.FileEntry) string {
	if len(entries) == 0 {
		return "(empty directory)"
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		if e.Error != "" {
			b.WriteString(e.Error)
			continue
		}

		b.WriteString(strings.Repeat("  ", e.Depth))
		name := path.Base(e.Path)
		if e.Type == types.EntryTypeDirectory {
			fmt.Fprintf(&b, "%s %s/", DirIcon, name)
			continue
		}
		fmt.Fprintf(&b, "%s %s", FileIcon(name), name)
		if e.Size != nil {
			fmt.Fprintf(&b, " (%s)", FormatSize(*e.Size))
		}
	}
	return b.String()
}
