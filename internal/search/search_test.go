package search

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/taigrr/workspace-mcp/internal/pathfilter"
)

func setupTestWorkspace(t *testing.T) (string, *Service) {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "workspace-mcp-search-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	pf := pathfilter.New(nil)
	svc := New(tmpDir, pf)
	return tmpDir, svc
}

func cleanupTestWorkspace(t *testing.T, path string) {
	t.Helper()
	os.RemoveAll(path)
}

func mustWriteFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("Failed to create dir for %s: %v", rel, err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", rel, err)
	}
}

func TestService_Grep(t *testing.T) {
	t.Run("exact match reports line number and content", func(t *testing.T) {
		tmpDir, svc := setupTestWorkspace(t)
		defer cleanupTestWorkspace(t, tmpDir)

		mustWriteFile(t, tmpDir, "test.txt", "This is a test file\nwith multiple lines\nand a match here")

		matches := svc.Grep("match", "")
		if len(matches) != 1 {
			t.Fatalf("Grep() returned %d matches, want 1", len(matches))
		}
		if matches[0].LineNumber != 3 {
			t.Errorf("LineNumber = %d, want 3", matches[0].LineNumber)
		}
		if matches[0].LineContent != "and a match here" {
			t.Errorf("LineContent = %q, want \"and a match here\"", matches[0].LineContent)
		}
		if matches[0].FilePath != "test.txt" {
			t.Errorf("FilePath = %q, want \"test.txt\"", matches[0].FilePath)
		}
	})

	t.Run("no matches yields empty result", func(t *testing.T) {
		tmpDir, svc := setupTestWorkspace(t)
		defer cleanupTestWorkspace(t, tmpDir)

		mustWriteFile(t, tmpDir, "test.txt", "This is a test file\nwith multiple lines\nbut nothing relevant")

		if matches := svc.Grep("nonexistent", ""); len(matches) != 0 {
			t.Errorf("Grep() = %v, want empty", matches)
		}
	})

	t.Run("matching is case-sensitive and literal", func(t *testing.T) {
		tmpDir, svc := setupTestWorkspace(t)
		defer cleanupTestWorkspace(t, tmpDir)

		mustWriteFile(t, tmpDir, "test.txt", "Match here\nmatch there\na.c regex bait")

		matches := svc.Grep("match", "")
		if len(matches) != 1 {
			t.Fatalf("Grep() returned %d matches, want 1", len(matches))
		}
		if matches[0].LineNumber != 2 {
			t.Errorf("LineNumber = %d, want 2", matches[0].LineNumber)
		}

		// Dot must not act as a regex wildcard.
		if got := svc.Grep("a.c", ""); len(got) != 1 || got[0].LineContent != "a.c regex bait" {
			t.Errorf("literal query matched unexpectedly: %v", got)
		}
	})

	t.Run("global cap stops at 200 matches", func(t *testing.T) {
		tmpDir, svc := setupTestWorkspace(t)
		defer cleanupTestWorkspace(t, tmpDir)

		var b strings.Builder
		for i := range 250 {
			fmt.Fprintf(&b, "match %d\n", i)
		}
		mustWriteFile(t, tmpDir, "big.txt", b.String())

		matches := svc.Grep("match", "")
		if len(matches) != MaxMatches {
			t.Errorf("Grep() returned %d matches, want %d", len(matches), MaxMatches)
		}
	})

	t.Run("cap spans multiple files", func(t *testing.T) {
		tmpDir, svc := setupTestWorkspace(t)
		defer cleanupTestWorkspace(t, tmpDir)

		line := strings.Repeat("match\n", 150)
		mustWriteFile(t, tmpDir, "a.txt", line)
		mustWriteFile(t, tmpDir, "b.txt", line)

		matches := svc.Grep("match", "")
		if len(matches) != MaxMatches {
			t.Errorf("Grep() returned %d matches, want %d", len(matches), MaxMatches)
		}
	})

	t.Run("matches follow traversal order", func(t *testing.T) {
		tmpDir, svc := setupTestWorkspace(t)
		defer cleanupTestWorkspace(t, tmpDir)

		mustWriteFile(t, tmpDir, "a.txt", "needle first\nneedle second")
		mustWriteFile(t, tmpDir, "z.txt", "needle last")

		matches := svc.Grep("needle", "")
		if len(matches) != 3 {
			t.Fatalf("Grep() returned %d matches, want 3", len(matches))
		}
		if matches[0].FilePath != "a.txt" || matches[0].LineNumber != 1 {
			t.Errorf("first match = %+v, want a.txt:1", matches[0])
		}
		if matches[1].FilePath != "a.txt" || matches[1].LineNumber != 2 {
			t.Errorf("second match = %+v, want a.txt:2", matches[1])
		}
		if matches[2].FilePath != "z.txt" {
			t.Errorf("third match = %+v, want z.txt", matches[2])
		}
	})

	t.Run("binary files are silently skipped", func(t *testing.T) {
		tmpDir, svc := setupTestWorkspace(t)
		defer cleanupTestWorkspace(t, tmpDir)

		mustWriteFile(t, tmpDir, "good.txt", "a match here")
		mustWriteFile(t, tmpDir, "bad.bin", "match\xff\xfe\x00garbage")

		matches := svc.Grep("match", "")
		if len(matches) != 1 {
			t.Fatalf("Grep() returned %d matches, want 1", len(matches))
		}
		if matches[0].FilePath != "good.txt" {
			t.Errorf("FilePath = %q, want \"good.txt\"", matches[0].FilePath)
		}
	})

	t.Run("unreadable files are silently skipped", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("running as root; permission bits are not enforced")
		}
		tmpDir, svc := setupTestWorkspace(t)
		defer cleanupTestWorkspace(t, tmpDir)

		mustWriteFile(t, tmpDir, "good.txt", "a match here")
		mustWriteFile(t, tmpDir, "locked.txt", "a match here too")
		if err := os.Chmod(filepath.Join(tmpDir, "locked.txt"), 0o000); err != nil {
			t.Fatalf("Failed to chmod: %v", err)
		}

		matches := svc.Grep("match", "")
		if len(matches) != 1 {
			t.Fatalf("Grep() returned %d matches, want 1", len(matches))
		}
		if matches[0].FilePath != "good.txt" {
			t.Errorf("FilePath = %q, want \"good.txt\"", matches[0].FilePath)
		}
	})

	t.Run("ignored directories are not descended into", func(t *testing.T) {
		tmpDir, svc := setupTestWorkspace(t)
		defer cleanupTestWorkspace(t, tmpDir)

		mustWriteFile(t, tmpDir, "src/main.go", "needle in source")
		mustWriteFile(t, tmpDir, "node_modules/pkg/index.js", "needle in deps")
		mustWriteFile(t, tmpDir, ".git/config", "needle in vcs")

		matches := svc.Grep("needle", "")
		if len(matches) != 1 {
			t.Fatalf("Grep() returned %d matches, want 1: %v", len(matches), matches)
		}
		if matches[0].FilePath != "src/main.go" {
			t.Errorf("FilePath = %q, want \"src/main.go\"", matches[0].FilePath)
		}
	})

	t.Run("search scoped to a subdirectory", func(t *testing.T) {
		tmpDir, svc := setupTestWorkspace(t)
		defer cleanupTestWorkspace(t, tmpDir)

		mustWriteFile(t, tmpDir, "outside.txt", "needle outside")
		mustWriteFile(t, tmpDir, "sub/inside.txt", "needle inside")

		matches := svc.Grep("needle", "sub")
		if len(matches) != 1 {
			t.Fatalf("Grep() returned %d matches, want 1", len(matches))
		}
		if matches[0].FilePath != "sub/inside.txt" {
			t.Errorf("FilePath = %q, want \"sub/inside.txt\"", matches[0].FilePath)
		}
	})

	t.Run("nonexistent directory yields empty result", func(t *testing.T) {
		tmpDir, svc := setupTestWorkspace(t)
		defer cleanupTestWorkspace(t, tmpDir)

		if matches := svc.Grep("anything", "no-such-dir"); len(matches) != 0 {
			t.Errorf("Grep() = %v, want empty", matches)
		}
	})

	t.Run("escaping the workspace yields empty result", func(t *testing.T) {
		tmpDir, svc := setupTestWorkspace(t)
		defer cleanupTestWorkspace(t, tmpDir)

		if matches := svc.Grep("root", "../.."); len(matches) != 0 {
			t.Errorf("Grep() = %v, want empty", matches)
		}
	})

	t.Run("repeated calls return identical results", func(t *testing.T) {
		tmpDir, svc := setupTestWorkspace(t)
		defer cleanupTestWorkspace(t, tmpDir)

		mustWriteFile(t, tmpDir, "a.txt", "needle one\nneedle two")
		mustWriteFile(t, tmpDir, "sub/b.txt", "needle three")

		first := svc.Grep("needle", "")
		second := svc.Grep("needle", "")
		if !reflect.DeepEqual(first, second) {
			t.Errorf("repeated Grep differ:\n%v\n%v", first, second)
		}
	})
}
