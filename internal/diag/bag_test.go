package diag

import (
	"testing"

	"fen/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(NewError(ResNotFound, source.Span{}, "a")) {
		t.Fatalf("first add rejected")
	}
	if !bag.Add(NewError(ResNotFound, source.Span{}, "b")) {
		t.Fatalf("second add rejected")
	}
	if bag.Add(NewError(ResNotFound, source.Span{}, "c")) {
		t.Fatalf("expected add past the limit to be dropped")
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", bag.Len())
	}
}

func TestBagSortIsDeterministic(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewError(ResNotFound, source.Span{File: 1, Start: 30, End: 31}, "later"))
	bag.Add(NewError(ResPrivateDefinition, source.Span{File: 1, Start: 5, End: 6}, "earlier"))
	bag.Add(New(SevWarning, ResScopeMismatch, source.Span{File: 1, Start: 5, End: 6}, "same spot"))

	bag.Sort()

	items := bag.Items()
	if items[0].Message != "earlier" {
		t.Fatalf("expected error at offset 5 first, got %q", items[0].Message)
	}
	if items[1].Message != "same spot" {
		t.Fatalf("expected warning after error on the same span, got %q", items[1].Message)
	}
}

func TestBagMergeRaisesLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(ResNotFound, source.Span{}, "a"))
	b := NewBag(2)
	b.Add(NewError(ResNotFound, source.Span{}, "b"))
	b.Add(New(SevWarning, ResScopeMismatch, source.Span{}, "c"))

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("expected 3 items after merge, got %d", a.Len())
	}
	if !a.HasErrors() || !a.HasWarnings() {
		t.Fatal("merged bag must keep both severities visible")
	}
}

func TestBagDedupDropsSameCodeAndSpan(t *testing.T) {
	bag := NewBag(8)
	span := source.Span{File: 1, Start: 2, End: 3}
	bag.Add(NewError(ResNotFound, span, "first"))
	bag.Add(NewError(ResNotFound, span, "second"))
	bag.Add(NewError(ResPrivateDefinition, span, "different code"))

	bag.Dedup()
	if bag.Len() != 2 {
		t.Fatalf("expected 2 items after dedup, got %d", bag.Len())
	}
	if bag.Items()[0].Message != "first" {
		t.Fatal("dedup must keep the first occurrence")
	}
}

func TestDedupReporterSuppressesRepeats(t *testing.T) {
	bag := NewBag(8)
	rep := NewDedupReporter(BagReporter{Bag: bag})

	span := source.Span{File: 3, Start: 1, End: 2}
	rep.Report(ResAmbiguousImport, SevError, span, "ambiguous 'foo'", nil)
	rep.Report(ResAmbiguousImport, SevError, span, "ambiguous 'foo'", nil)
	rep.Report(ResAmbiguousImport, SevError, span, "ambiguous 'bar'", nil)

	if bag.Len() != 2 {
		t.Fatalf("expected 2 unique diagnostics, got %d", bag.Len())
	}
}

func TestReportBuilderEmitOnce(t *testing.T) {
	bag := NewBag(4)
	b := ReportError(BagReporter{Bag: bag}, ResNotFound, source.Span{}, "missing").
		WithNote(source.Span{File: 1}, "declared here")
	b.Emit()
	b.Emit()

	if bag.Len() != 1 {
		t.Fatalf("expected a single emission, got %d", bag.Len())
	}
	if len(bag.Items()[0].Notes) != 1 {
		t.Fatalf("expected the note to survive")
	}
}
