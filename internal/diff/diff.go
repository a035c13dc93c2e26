// Package diff produces line-level summaries of file content changes.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Stats compares two strings and returns line-level diff counts.
func Stats(before, after string) (unchanged, added, removed int) {
	if before == after {
		return countLines(before), 0, 0
	}
	if before == "" {
		return 0, countLines(after), 0
	}
	if after == "" {
		return 0, 0, countLines(before)
	}

	for _, d := range lineDiffs(before, after) {
		lines := countLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			unchanged += lines
		case diffmatchpatch.DiffInsert:
			added += lines
		case diffmatchpatch.DiffDelete:
			removed += lines
		}
	}

	return unchanged, added, removed
}

// Summary renders a compact +/- line summary for a tool result. Equal
// regions are elided. Returns the empty string when nothing changed.
func Summary(path, before, after string) string {
	if before == after {
		return ""
	}

	_, added, removed := Stats(before, after)

	var b strings.Builder
	fmt.Fprintf(&b, "%s (+%d -%d)", path, added, removed)

	for _, d := range lineDiffs(before, after) {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		default:
			continue
		}
		for line := range strings.Lines(d.Text) {
			b.WriteString("\n")
			b.WriteString(prefix)
			b.WriteString(strings.TrimSuffix(line, "\n"))
		}
	}

	return b.String()
}

// lineDiffs runs a line-mode diff using the DiffLinesToChars /
// DiffCharsToLines pattern so hunks never split mid-line.
func lineDiffs(before, after string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	text1, text2, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(text1, text2, false)
	return dmp.DiffCharsToLines(diffs, lineArray)
}

// countLines returns the number of lines in a string. An empty string has
// 0 lines; a string without a trailing newline still counts its last line.
func countLines(content string) int {
	if content == "" {
		return 0
	}
	lines := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		lines++
	}
	return lines
}
