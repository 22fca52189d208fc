package resolver

import (
	"testing"

	"fen/internal/source"
)

func TestKaleidoscopeShadowingAndIndependence(t *testing.T) {
	in := source.NewInterner()
	x := in.Intern("x")
	k := NewKaleidoscope()

	k.Push(CapValue)
	k.Add(CapValue, x)
	if !k.Contains(CapValue, x) {
		t.Fatalf("expected x in value scope")
	}
	if k.Contains(CapType, x) {
		t.Fatalf("value binding leaked into type capability")
	}

	k.Push(CapValue)
	if !k.Contains(CapValue, x) {
		t.Fatalf("inner frame must see outer bindings")
	}
	k.Pop(CapValue)
	if !k.Contains(CapValue, x) {
		t.Fatalf("outer binding lost after popping inner frame")
	}
	k.Pop(CapValue)
	if k.Contains(CapValue, x) {
		t.Fatalf("binding survived its frame")
	}
}

func TestKaleidoscopePopEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on popping empty capability stack")
		}
	}()
	NewKaleidoscope().Pop(CapType)
}

func TestKaleidoscopeAddWithoutFramePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on add with no open frame")
		}
	}()
	in := source.NewInterner()
	NewKaleidoscope().Add(CapValue, in.Intern("a"))
}
