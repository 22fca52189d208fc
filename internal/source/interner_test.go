package source

import "testing"

func TestInternerDeduplicates(t *testing.T) {
	in := NewInterner()

	a := in.Intern("secret")
	b := in.Intern("secret")
	c := in.Intern("Secret")

	if a != b {
		t.Fatalf("expected same ID for equal strings, got %v and %v", a, b)
	}
	if a == c {
		t.Fatalf("expected distinct IDs for distinct strings")
	}
	if got := in.MustLookup(a); got != "secret" {
		t.Fatalf("lookup mismatch: %q", got)
	}
}

func TestInternerEmptyStringIsNoStringID(t *testing.T) {
	in := NewInterner()
	if id := in.Intern(""); id != NoStringID {
		t.Fatalf("empty string must intern to NoStringID, got %v", id)
	}
	if in.Len() != 1 {
		t.Fatalf("fresh interner must hold only the sentinel, len=%d", in.Len())
	}
}

func TestInternerBytes(t *testing.T) {
	in := NewInterner()
	a := in.InternBytes([]byte("when"))
	b := in.Intern("when")
	if a != b {
		t.Fatalf("byte and string interning disagree: %v vs %v", a, b)
	}
}
