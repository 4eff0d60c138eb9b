package vmath

import (
	"math"
	"testing"
)

func TestVector2D_Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(-1, 2)

	if got := a.Add(b); got != V(2, 6) {
		t.Errorf("Add: got %v, want (2, 6)", got)
	}
	if got := a.Sub(b); got != V(4, 2) {
		t.Errorf("Sub: got %v, want (4, 2)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale: got %v, want (6, 8)", got)
	}
	if got := a.Div(2); got != V(1.5, 2) {
		t.Errorf("Div: got %v, want (1.5, 2)", got)
	}
	if got := a.Neg(); got != V(-3, -4) {
		t.Errorf("Neg: got %v, want (-3, -4)", got)
	}
	if got := a.Dot(b); got != 5 {
		t.Errorf("Dot: got %f, want 5", got)
	}
	if got := a.Cross(b); got != 10 {
		t.Errorf("Cross: got %f, want 10", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length: got %f, want 5", got)
	}
	if got := a.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared: got %f, want 25", got)
	}
	if got := a.DistanceSquared(b); got != 20 {
		t.Errorf("DistanceSquared: got %f, want 20", got)
	}
}

func TestVector2D_Rotate90(t *testing.T) {
	right := V(30, 0)

	// Left-to-right segment: left normal points up the screen (negative y)
	if got := right.Rotate90Left(); got != V(0, -30) {
		t.Errorf("Rotate90Left: got %v, want (0, -30)", got)
	}
	if got := right.Rotate90Right(); got != V(0, 30) {
		t.Errorf("Rotate90Right: got %v, want (0, 30)", got)
	}

	v := V(2, 7)
	if got := v.Rotate90Left().Rotate90Right(); got != v {
		t.Errorf("left then right should be identity, got %v", got)
	}
}

func TestVector2D_Normalize(t *testing.T) {
	n := V(0, 10).Normalize()
	if n != V(0, 1) {
		t.Errorf("got %v, want (0, 1)", n)
	}

	d := V(3, -4).Normalize()
	if math.Abs(d.Length()-1) > 1e-12 {
		t.Errorf("normalized length %f, want 1", d.Length())
	}

	if z := V(0, 0).Normalize(); z != V(0, 0) {
		t.Errorf("zero vector should stay zero, got %v", z)
	}
}
