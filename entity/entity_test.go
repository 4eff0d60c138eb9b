package entity

import (
	"math"
	"testing"

	"github.com/lixenwraith/linerider/vmath"
)

func TestDefaultBoshSled_Shape(t *testing.T) {
	e := DefaultBoshSled()

	if len(e.Points) != int(PointCount) {
		t.Fatalf("got %d points, want %d", len(e.Points), PointCount)
	}
	if len(e.Bones) != 21 {
		t.Errorf("got %d bones, want 21", len(e.Bones))
	}
	if len(e.Joints) != 2 {
		t.Errorf("got %d joints, want 2", len(e.Joints))
	}

	nose := e.PointAt(SledNose)
	if nose.Location != vmath.V(15, 5) {
		t.Errorf("nose at %v, want (15, 5)", nose.Location)
	}
	if nose.Momentum != DefaultVelocity {
		t.Errorf("nose momentum %v, want %v", nose.Momentum, DefaultVelocity)
	}
	if nose.PreviousLocation != vmath.V(14.6, 5) {
		t.Errorf("nose previous %v, want (14.6, 5)", nose.PreviousLocation)
	}
}

func TestDefaultBoshSled_RestLengths(t *testing.T) {
	e := DefaultBoshSled()

	for _, b := range e.Bones {
		d := e.PointAt(b.P1).Location.Sub(e.PointAt(b.P2).Location).Length()
		want := d
		if b.Kind == BoneRepel {
			want = d * 0.5
		}
		if math.Abs(b.RestLength-want) > 1e-9 {
			t.Errorf("bone %s-%s rest %f, want %f", b.P1, b.P2, b.RestLength, want)
		}
		if b.Breakable() != (b.Kind == BoneMount) {
			t.Errorf("bone %s-%s breakable mismatch", b.P1, b.P2)
		}
	}
}

func TestNewBoshSled_Offset(t *testing.T) {
	e := NewBoshSled(vmath.V(100, -50), vmath.V(1, 2))

	peg := e.PointAt(SledPeg)
	if peg.Location != vmath.V(100, -50) {
		t.Errorf("peg at %v, want (100, -50)", peg.Location)
	}
	if peg.PreviousLocation != vmath.V(99, -52) {
		t.Errorf("peg previous %v, want (99, -52)", peg.PreviousLocation)
	}

	// Offsetting must not change constraint geometry
	base := DefaultBoshSled()
	for i := range e.Bones {
		if e.Bones[i] != base.Bones[i] {
			t.Errorf("bone %d differs after offset: %+v vs %+v", i, e.Bones[i], base.Bones[i])
		}
	}
}

func TestEntity_Split(t *testing.T) {
	e := DefaultBoshSled()
	rider, sled := e.Split()

	if len(rider.Points) != 6 || len(sled.Points) != 4 {
		t.Fatalf("split sizes rider=%d sled=%d, want 6 and 4", len(rider.Points), len(sled.Points))
	}
	for i := range rider.Points {
		if i.IsSled() {
			t.Errorf("rider carries sled point %s", i)
		}
	}
	for i := range sled.Points {
		if !i.IsSled() {
			t.Errorf("sled carries rider point %s", i)
		}
	}

	for _, half := range []Entity{rider, sled} {
		for _, b := range half.Bones {
			if b.Breakable() {
				t.Errorf("split half kept mount bone %s-%s", b.P1, b.P2)
			}
			if _, ok := half.Point(b.P1); !ok {
				t.Errorf("bone endpoint %s missing from its half", b.P1)
			}
			if _, ok := half.Point(b.P2); !ok {
				t.Errorf("bone endpoint %s missing from its half", b.P2)
			}
		}
	}

	if len(sled.Bones) != 6 {
		t.Errorf("sled bones = %d, want 6", len(sled.Bones))
	}
	if len(rider.Bones) != 7 {
		t.Errorf("rider bones = %d, want 7", len(rider.Bones))
	}
	if len(rider.Joints) != 0 || len(sled.Joints) != 1 {
		t.Errorf("joints rider=%d sled=%d, want 0 and 1", len(rider.Joints), len(sled.Joints))
	}

	// Source entity untouched
	if len(e.Points) != int(PointCount) {
		t.Error("split mutated the source entity")
	}
}

func TestEntity_CloneAndEqual(t *testing.T) {
	a := DefaultBoshSled()
	b := a.Clone()

	if !a.Equal(b) {
		t.Fatal("clone should be equal")
	}

	b.SetLocation(BoshButt, vmath.V(99, 99))
	if a.Equal(b) {
		t.Error("mutating clone should break equality")
	}
	if a.PointAt(BoshButt).Location != vmath.V(5, 0) {
		t.Error("mutating clone leaked into source")
	}

	c := DefaultBoshSled()
	if !a.Equal(c) {
		t.Error("two default sleds should be equal")
	}
}

func TestEntity_PointAtMissingPanics(t *testing.T) {
	_, sled := DefaultBoshSled().Split()

	if _, ok := sled.Point(BoshShoulder); ok {
		t.Fatal("sled should not have a shoulder")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for missing role")
		}
	}()
	sled.PointAt(BoshShoulder)
}

func TestEntity_AveragePosition(t *testing.T) {
	e := NewBuilder().
		Point(SledPeg, vmath.V(0, 0), 0).
		Point(SledTail, vmath.V(4, 2), 0).
		Build()

	if got := e.AveragePosition(); got != vmath.V(2, 1) {
		t.Errorf("average = %v, want (2, 1)", got)
	}

	empty := Entity{}
	if got := empty.AveragePosition(); got != (vmath.Vector2D{}) {
		t.Errorf("empty average = %v, want zero", got)
	}
}

func TestEntity_Indices(t *testing.T) {
	rider, _ := DefaultBoshSled().Split()
	indices := rider.Indices()
	want := []PointIndex{BoshButt, BoshShoulder, BoshRightHand, BoshLeftHand, BoshLeftFoot, BoshRightFoot}
	if len(indices) != len(want) {
		t.Fatalf("got %v, want %v", indices, want)
	}
	for i := range want {
		if indices[i] != want[i] {
			t.Errorf("index %d = %s, want %s", i, indices[i], want[i])
		}
	}
}

func TestBuilder_Misuse(t *testing.T) {
	tests := []struct {
		name  string
		build func()
	}{
		{"bone before point", func() {
			NewBuilder().Point(SledPeg, vmath.V(0, 0), 0).Bone(SledPeg, SledTail)
		}},
		{"duplicate point", func() {
			NewBuilder().Point(SledPeg, vmath.V(0, 0), 0).Point(SledPeg, vmath.V(1, 1), 0)
		}},
		{"joint over undeclared point", func() {
			NewBuilder().Point(SledPeg, vmath.V(0, 0), 0).
				Joint(Segment{SledPeg, SledRope}, Segment{SledPeg, SledTail})
		}},
		{"unknown index", func() {
			NewBuilder().Point(PointCount, vmath.V(0, 0), 0)
		}},
		{"mount bone within the rider", func() {
			NewBuilder().
				Point(BoshButt, vmath.V(5, 0), 0.8).
				Point(BoshShoulder, vmath.V(5, -5.5), 0.8).
				MountBone(BoshButt, BoshShoulder, MountEndurance)
		}},
		{"mount bone within the sled", func() {
			NewBuilder().
				Point(SledPeg, vmath.V(0, 0), 0.8).
				Point(SledTail, vmath.V(0, 5), 0).
				MountBone(SledPeg, SledTail, MountEndurance)
		}},
		{"use after build", func() {
			b := NewBuilder().Point(SledPeg, vmath.V(0, 0), 0)
			b.Build()
			b.Point(SledTail, vmath.V(0, 5), 0)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("expected panic")
				}
			}()
			tt.build()
		})
	}
}

func TestPointIndex_String(t *testing.T) {
	if SledNose.String() != "SledNose" {
		t.Errorf("got %q", SledNose.String())
	}
	if PointCount.String() != "PointIndex(10)" {
		t.Errorf("got %q", PointCount.String())
	}
}
