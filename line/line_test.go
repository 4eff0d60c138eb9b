package line

import (
	"math"
	"slices"
	"testing"

	"github.com/lixenwraith/linerider/vmath"
)

func TestBuilder_Defaults(t *testing.T) {
	l := NewBuilder().Point(0, 5).Point(30, 5).Build()

	if l.ID != 0 || l.Flipped {
		t.Errorf("unexpected defaults: %+v", l)
	}
	if l.Type != NormalType() {
		t.Errorf("default type = %v, want normal", l.Type)
	}
	if l.ExtensionRatio != DefaultExtensionRatio {
		t.Errorf("default extension ratio = %f, want %f", l.ExtensionRatio, DefaultExtensionRatio)
	}
	if l.Ends[0].Location != vmath.V(0, 5) || l.Ends[1].Location != vmath.V(30, 5) {
		t.Errorf("ends = %v, want (0,5)->(30,5)", l.Ends)
	}
}

func TestBuilder_ExtendedAppliesToLastLocatedEnd(t *testing.T) {
	l := NewBuilder().Point(0, 0).Extended(true).Point(10, 0).Build()
	if !l.Ends[0].Extended || l.Ends[1].Extended {
		t.Errorf("only end 0 should be extended: %+v", l.Ends)
	}

	l = NewBuilder().Point(0, 0).Point(10, 0).Extended(true).Build()
	if l.Ends[0].Extended || !l.Ends[1].Extended {
		t.Errorf("only end 1 should be extended: %+v", l.Ends)
	}
}

func TestBuilder_ExtendedBeforePointPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic when Extended precedes Point")
		}
	}()
	NewBuilder().Extended(true)
}

func TestBuilder_ThirdPointOverwritesSecondEnd(t *testing.T) {
	l := NewBuilder().Point(0, 0).Point(1, 1).Point(2, 2).Build()
	if l.Ends[1].Location != vmath.V(2, 2) {
		t.Errorf("end 1 = %v, want (2, 2)", l.Ends[1].Location)
	}
}

func TestLine_EqualIgnoresExtensionRatio(t *testing.T) {
	a := NewBuilder().ID(1).Point(0, 0).Point(10, 0).ExtensionRatio(0.25).Build()
	b := NewBuilder().ID(1).Point(0, 0).Point(10, 0).ExtensionRatio(0.5).Build()
	if !a.Equal(b) {
		t.Error("lines differing only by extension ratio should be equal")
	}
	if a.Key() != b.Key() {
		t.Error("keys should match")
	}

	c := NewBuilder().ID(1).Point(0, 0).Point(10, 0).Flipped(true).Build()
	if a.Equal(c) {
		t.Error("flipped line should not equal unflipped line")
	}

	d := NewBuilder().ID(1).Point(0, 0).Point(10, 0).Type(AccelerateType(2)).Build()
	if a.Equal(d) {
		t.Error("accelerate line should not equal normal line")
	}
}

func TestCompare_OrdersByIDOnly(t *testing.T) {
	a := NewBuilder().ID(1).Point(0, 0).Point(10, 0).Build()
	b := NewBuilder().ID(1).Point(5, 5).Point(9, 9).Build()
	c := NewBuilder().ID(0).Point(5, 5).Point(9, 9).Build()

	if Compare(a, b) != 0 {
		t.Error("same id should compare equal")
	}
	if a.Equal(b) {
		t.Error("same id with different ends must not be Equal")
	}

	lines := []Line{a, c}
	slices.SortFunc(lines, Compare)
	if lines[0].ID != 0 {
		t.Errorf("sorted first id = %d, want 0", lines[0].ID)
	}
}

func TestLine_Perpendicular(t *testing.T) {
	horizontal := NewBuilder().Point(0, 5).Point(30, 5).Build()
	if got := horizontal.Perpendicular(); got != vmath.V(0, -1) {
		t.Errorf("perpendicular = %v, want (0, -1)", got)
	}

	wall := NewBuilder().Point(-7, 0).Point(-7, 10).Flipped(true).Build()
	if got := wall.Perpendicular(); got != vmath.V(-1, 0) {
		t.Errorf("flipped perpendicular = %v, want (-1, 0)", got)
	}
}

func TestLine_HitboxExtensions(t *testing.T) {
	tests := []struct {
		name        string
		line        Line
		left, right float64
	}{
		{"none", NewBuilder().Point(0, 0).Point(20, 0).Build(), 0, 0},
		{"left", NewBuilder().Point(0, 0).Extended(true).Point(20, 0).Build(), 5, 0},
		{"right", NewBuilder().Point(0, 0).Point(20, 0).Extended(true).Build(), 0, 5},
		{"clamped", NewBuilder().Point(0, 0).Extended(true).Point(100, 0).Extended(true).Build(), 10, 10},
		{"zero ratio", NewBuilder().ExtensionRatio(0).Point(0, 0).Extended(true).Point(20, 0).Build(), 0, 0},
	}
	for _, tt := range tests {
		left, right := tt.line.HitboxExtensions()
		if math.Abs(left-tt.left) > 1e-12 || math.Abs(right-tt.right) > 1e-12 {
			t.Errorf("%s: got (%f, %f), want (%f, %f)", tt.name, left, right, tt.left, tt.right)
		}
	}
}

func TestType_Collidable(t *testing.T) {
	if !NormalType().Collidable() || !AccelerateType(1).Collidable() {
		t.Error("normal and accelerate lines collide")
	}
	if SceneryType().Collidable() {
		t.Error("scenery lines never collide")
	}
	if AccelerateType(3).String() != "accelerate(3)" {
		t.Errorf("String() = %q", AccelerateType(3).String())
	}
}
