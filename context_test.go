package crabculator

import "testing"

func TestContextConstantsPreloaded(t *testing.T) {
	ctx := NewContext()
	v, ok := ctx.Lookup("pi")
	if !ok || v != Constants["pi"] {
		t.Fatalf("pi not preloaded: %v, %v", v, ok)
	}
}

func TestContextShadowing(t *testing.T) {
	ctx := NewContext()
	ctx.Set("pi", 0)
	v, ok := ctx.Lookup("pi")
	if !ok || v != 0 {
		t.Fatalf("shadow failed: %v, %v", v, ok)
	}
}

func TestContextResetRestoresBaseline(t *testing.T) {
	ctx := NewContext()
	ctx.Set("pi", 0)
	ctx.Set("x", 99)
	ctx.Reset()
	if v, _ := ctx.Lookup("pi"); v != Constants["pi"] {
		t.Errorf("pi not restored: %v", v)
	}
	if _, ok := ctx.Lookup("x"); ok {
		t.Errorf("x still present after Reset")
	}
}

func TestContextCloneIsIndependent(t *testing.T) {
	ctx := NewContext()
	ctx.Set("x", 1)
	clone := ctx.Clone()
	clone.Set("x", 2)
	if v, _ := ctx.Lookup("x"); v != 1 {
		t.Errorf("original mutated by clone: %v", v)
	}
}
