package diag

import (
	"strings"
	"testing"

	"fen/internal/source"
)

func TestFormatShortOrdersAndRenders(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.fen", []byte("let x = 1\nlet y = 2\n"))

	later := NewError(ResNotFound, source.Span{File: id, Start: 14, End: 15}, "cannot find `y`")
	earlier := NewError(ResPrivateDefinition, source.Span{File: id, Start: 4, End: 5}, "`x` is private")

	out := FormatShort([]Diagnostic{later, earlier}, fs, false)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "error RES2003 main.fen:1:5") {
		t.Fatalf("first line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "error RES2001 main.fen:2:5") {
		t.Fatalf("second line = %q", lines[1])
	}
}

func TestFormatShortNotesAndSanitizing(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.fen", []byte("let x = 1\n"))

	d := NewError(ResDuplicatePattern, source.Span{File: id, Start: 4, End: 5}, "bound\ntwice")
	d.Notes = append(d.Notes, Note{Span: source.Span{File: id, Start: 0, End: 3}, Msg: "first bound here"})

	out := FormatShort([]Diagnostic{d}, fs, true)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected diagnostic plus note, got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "note RES2007 main.fen:1:1") {
		t.Fatalf("note line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "bound twice") {
		t.Fatalf("newlines must flatten to spaces, got %q", lines[1])
	}
}

func TestFormatShortEmptyInputs(t *testing.T) {
	fs := source.NewFileSet()
	if FormatShort(nil, fs, true) != "" {
		t.Fatal("no diagnostics must render as empty")
	}
	if FormatShort([]Diagnostic{NewError(ResNotFound, source.Span{}, "x")}, nil, true) != "" {
		t.Fatal("nil file set must render as empty")
	}
}
