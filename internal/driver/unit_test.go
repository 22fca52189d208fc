package driver

import (
	"os"
	"path/filepath"
	"testing"

	"fen/internal/source"
)

func TestListSourceFilesFindsOnlyFenFiles(t *testing.T) {
	root := t.TempDir()
	touch := func(rel string) {
		t.Helper()
		p := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, nil, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	touch("main.fen")
	touch("data/maybe.fen")
	touch("data/notes.txt")
	touch("README.md")

	files, err := ListSourceFiles(root)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{
		filepath.Join(root, "data", "maybe.fen"),
		filepath.Join(root, "main.fen"),
	}
	if len(files) != len(want) {
		t.Fatalf("got %d files: %v", len(files), files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestUnitPathSegments(t *testing.T) {
	interner := source.NewInterner()
	root := filepath.Join("proj", "src")
	path, err := UnitPath(interner, root, filepath.Join(root, "data", "maybe.fen"))
	if err != nil {
		t.Fatalf("unit path: %v", err)
	}
	if len(path) != 2 {
		t.Fatalf("got %d segments", len(path))
	}
	if interner.MustLookup(path[0]) != "data" || interner.MustLookup(path[1]) != "maybe" {
		t.Fatalf("segments = %q.%q", interner.MustLookup(path[0]), interner.MustLookup(path[1]))
	}
}
