package entity

import (
	"fmt"
	"maps"
	"slices"

	"github.com/lixenwraith/linerider/vmath"
)

// Entity is a jointed body: a combined rider and sled, or one half after a split
type Entity struct {
	Points map[PointIndex]EntityPoint
	Bones  []Bone
	Joints []Joint
}

// Point returns the point for a role, ok is false when the entity lacks it
func (e Entity) Point(i PointIndex) (EntityPoint, bool) {
	p, ok := e.Points[i]
	return p, ok
}

// PointAt returns the point for a role
// Panics when the entity does not carry that role, like an out of range index
func (e Entity) PointAt(i PointIndex) EntityPoint {
	p, ok := e.Points[i]
	if !ok {
		panic(fmt.Sprintf("entity: no point %s", i))
	}
	return p
}

// SetLocation moves a point without touching its previous location or momentum
func (e *Entity) SetLocation(i PointIndex, loc vmath.Vector2D) {
	p := e.PointAt(i)
	p.Location = loc
	e.Points[i] = p
}

// Indices returns the roles present in ascending PointIndex order
// Iterate through this instead of ranging the map when float accumulation order matters
func (e Entity) Indices() []PointIndex {
	indices := make([]PointIndex, 0, len(e.Points))
	for i := PointIndex(0); i < PointCount; i++ {
		if _, ok := e.Points[i]; ok {
			indices = append(indices, i)
		}
	}
	return indices
}

// Clone returns a deep copy
func (e Entity) Clone() Entity {
	return Entity{
		Points: maps.Clone(e.Points),
		Bones:  slices.Clone(e.Bones),
		Joints: slices.Clone(e.Joints),
	}
}

// Equal reports value equality of points, bones and joints
func (e Entity) Equal(o Entity) bool {
	return maps.Equal(e.Points, o.Points) &&
		slices.Equal(e.Bones, o.Bones) &&
		slices.Equal(e.Joints, o.Joints)
}

// Split partitions the entity by role into rider and sled halves
// Bones and joints spanning both halves are dropped; the halves can never be rejoined
func (e Entity) Split() (rider, sled Entity) {
	rider = Entity{Points: make(map[PointIndex]EntityPoint)}
	sled = Entity{Points: make(map[PointIndex]EntityPoint)}

	for i, p := range e.Points {
		if i.IsSled() {
			sled.Points[i] = p
		} else {
			rider.Points[i] = p
		}
	}

	for _, b := range e.Bones {
		switch {
		case b.P1.IsSled() && b.P2.IsSled():
			sled.Bones = append(sled.Bones, b)
		case !b.P1.IsSled() && !b.P2.IsSled():
			rider.Bones = append(rider.Bones, b)
		}
	}

	for _, j := range e.Joints {
		ends := [4]PointIndex{j.A.From, j.A.To, j.B.From, j.B.To}
		sledCount := 0
		for _, i := range ends {
			if i.IsSled() {
				sledCount++
			}
		}
		switch sledCount {
		case len(ends):
			sled.Joints = append(sled.Joints, j)
		case 0:
			rider.Joints = append(rider.Joints, j)
		}
	}

	return rider, sled
}

// AveragePosition returns the mean point location, zero for an empty entity
func (e Entity) AveragePosition() vmath.Vector2D {
	var sum vmath.Vector2D
	indices := e.Indices()
	if len(indices) == 0 {
		return sum
	}
	for _, i := range indices {
		sum = sum.Add(e.Points[i].Location)
	}
	return sum.Div(float64(len(indices)))
}

// AverageMomentum returns the mean point momentum, zero for an empty entity
func (e Entity) AverageMomentum() vmath.Vector2D {
	var sum vmath.Vector2D
	indices := e.Indices()
	if len(indices) == 0 {
		return sum
	}
	for _, i := range indices {
		sum = sum.Add(e.Points[i].Momentum)
	}
	return sum.Div(float64(len(indices)))
}

// HasSled reports whether any sled role is present
func (e Entity) HasSled() bool {
	for i := range e.Points {
		if i.IsSled() {
			return true
		}
	}
	return false
}

// HasRider reports whether any rider role is present
func (e Entity) HasRider() bool {
	for i := range e.Points {
		if !i.IsSled() {
			return true
		}
	}
	return false
}

// CloneAll deep-copies a snapshot
func CloneAll(entities []Entity) []Entity {
	out := make([]Entity, len(entities))
	for i, e := range entities {
		out[i] = e.Clone()
	}
	return out
}
