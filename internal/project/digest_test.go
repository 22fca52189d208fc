package project

import "testing"

func TestHashStringsFraming(t *testing.T) {
	if HashStrings("ab", "c") == HashStrings("a", "bc") {
		t.Fatal("length framing failed to separate segmentations")
	}
	if HashStrings("a", "b") != HashStrings("a", "b") {
		t.Fatal("digest is not deterministic")
	}
}

func TestCombineDependsOnDepOrder(t *testing.T) {
	content := HashBytes([]byte("unit"))
	a := HashBytes([]byte("a"))
	b := HashBytes([]byte("b"))

	if Combine(content, a, b) == Combine(content, b, a) {
		t.Fatal("dependency order must change the combined digest")
	}
	if Combine(content, a, b) != Combine(content, a, b) {
		t.Fatal("combined digest is not deterministic")
	}
	if Combine(content).IsZero() {
		t.Fatal("combined digest of content alone should not be zero")
	}
}
