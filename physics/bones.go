package physics

import (
	"github.com/lixenwraith/linerider/entity"
	"github.com/lixenwraith/linerider/vmath"
)

// NextBoneLocations returns where the bone's endpoints move to satisfy its rest length
// Each end moves half the correction; repel bones only push apart
// Mount bones are inert once broken is set, and report ok=false when stretched past endurance
func NextBoneLocations(b entity.Bone, e entity.Entity, broken bool) (p1, p2 vmath.Vector2D, ok bool) {
	p1 = e.PointAt(b.P1).Location
	p2 = e.PointAt(b.P2).Location
	if b.Breakable() && broken {
		return p1, p2, true
	}

	delta := p1.Sub(p2)
	length := delta.Length()
	if b.Kind == entity.BoneRepel && length >= b.RestLength {
		return p1, p2, true
	}

	var diff float64
	if length != 0 {
		diff = (length - b.RestLength) / length * 0.5
	}
	if b.Breakable() && diff > b.Endurance*b.RestLength*0.5 {
		return p1, p2, false
	}

	shift := delta.Scale(diff)
	return p1.Sub(shift), p2.Add(shift), true
}

// ApplyBones runs one sequential pass over all bones in declaration order
// Any mount failure splits the entity after the pass completes
// The input entity is left untouched, the result owns a fresh point map
func ApplyBones(e entity.Entity) Result {
	e = e.Clone()
	broken := false
	for _, b := range e.Bones {
		p1, p2, ok := NextBoneLocations(b, e, broken)
		if !ok {
			broken = true
			continue
		}
		e.SetLocation(b.P1, p1)
		e.SetLocation(b.P2, p2)
	}

	if broken {
		rider, sled := e.Split()
		return Broken{Rider: rider, Sled: sled}
	}
	return Same{Entity: e}
}

// JointShouldBreak reports whether the two segments have folded past each other
func JointShouldBreak(j entity.Joint, e entity.Entity) bool {
	a := e.PointAt(j.A.To).Location.Sub(e.PointAt(j.A.From).Location)
	b := e.PointAt(j.B.To).Location.Sub(e.PointAt(j.B.From).Location)
	return a.Cross(b) < 0
}

// ApplyJoints splits the entity if any joint has folded
// An entity missing either half has nothing left to separate and is returned unchanged
func ApplyJoints(e entity.Entity) Result {
	if !e.HasRider() || !e.HasSled() {
		return Same{Entity: e}
	}
	for _, j := range e.Joints {
		if JointShouldBreak(j, e) {
			rider, sled := e.Split()
			return Broken{Rider: rider, Sled: sled}
		}
	}
	return Same{Entity: e}
}
