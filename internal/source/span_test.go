package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 20}
	b := Span{File: 1, Start: 5, End: 15}

	got := a.Cover(b)
	if got.Start != 5 || got.End != 20 {
		t.Fatalf("cover produced %v", got)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Fatalf("cover across files must be a no-op, got %v", got)
	}
}

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("main.fen", []byte("let x = 1\nlet y = 2\n"))

	start, end := fs.Resolve(Span{File: id, Start: 14, End: 15})
	if start.Line != 2 || start.Col != 5 {
		t.Fatalf("unexpected start position %+v", start)
	}
	if end.Line != 2 || end.Col != 6 {
		t.Fatalf("unexpected end position %+v", end)
	}
}

func TestFileSetLatestWins(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("a.fen", []byte("one"))
	second := fs.AddVirtual("a.fen", []byte("two"))

	id, ok := fs.GetLatest("a.fen")
	if !ok || id != second {
		t.Fatalf("expected latest version %v, got %v (ok=%v)", second, id, ok)
	}
}
