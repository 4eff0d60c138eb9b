package entity

import (
	"fmt"

	"github.com/lixenwraith/linerider/vmath"
)

// Builder provides a fluent interface for constructing entities
// Rest lengths are measured from the declared point locations at the time a bone is added,
// so points must be declared before the bones and joints that reference them
//
// Malformed declarations panic: they are programmer errors, not runtime conditions
//
// Example usage:
//
//	e := entity.NewBuilder().
//		Point(entity.SledPeg, vmath.V(0, 0), 0.8).
//		Point(entity.SledTail, vmath.V(0, 5), 0).
//		Bone(entity.SledPeg, entity.SledTail).
//		Velocity(vmath.V(0.4, 0)).
//		Build()
type Builder struct {
	entity   Entity
	offset   vmath.Vector2D
	velocity vmath.Vector2D
	built    bool
}

// NewBuilder returns an empty builder
func NewBuilder() *Builder {
	return &Builder{
		entity: Entity{Points: make(map[PointIndex]EntityPoint)},
	}
}

func (b *Builder) checkOpen() {
	if b.built {
		panic("entity: builder already built")
	}
}

func (b *Builder) location(i PointIndex) vmath.Vector2D {
	p, ok := b.entity.Points[i]
	if !ok {
		panic(fmt.Sprintf("entity: %s referenced before it was declared", i))
	}
	return p.Location
}

// Point declares a role at a location; declaring the same role twice panics
func (b *Builder) Point(i PointIndex, loc vmath.Vector2D, friction float64) *Builder {
	b.checkOpen()
	if i >= PointCount {
		panic(fmt.Sprintf("entity: unknown point index %d", uint8(i)))
	}
	if _, dup := b.entity.Points[i]; dup {
		panic(fmt.Sprintf("entity: %s declared twice", i))
	}
	b.entity.Points[i] = EntityPoint{Location: loc, Friction: friction}
	return b
}

func (b *Builder) addBone(p1, p2 PointIndex, kind BoneKind, restScale, endurance float64) *Builder {
	b.checkOpen()
	rest := b.location(p1).Sub(b.location(p2)).Length() * restScale
	b.entity.Bones = append(b.entity.Bones, Bone{
		P1:         p1,
		P2:         p2,
		RestLength: rest,
		Kind:       kind,
		Endurance:  endurance,
	})
	return b
}

// Bone adds a rigid bone at the current distance between p1 and p2
func (b *Builder) Bone(p1, p2 PointIndex) *Builder {
	return b.addBone(p1, p2, BoneRigid, 1, 0)
}

// MountBone adds a breakable bone holding the rider on the sled
// The ends must sit on opposite halves, a split could not separate them otherwise
func (b *Builder) MountBone(p1, p2 PointIndex, endurance float64) *Builder {
	if p1.IsSled() == p2.IsSled() {
		panic(fmt.Sprintf("entity: mount bone %s-%s does not join rider and sled", p1, p2))
	}
	return b.addBone(p1, p2, BoneMount, 1, endurance)
}

// RepelBone adds a push-only bone with half the current distance as rest length
func (b *Builder) RepelBone(p1, p2 PointIndex) *Builder {
	return b.addBone(p1, p2, BoneRepel, 0.5, 0)
}

// Joint adds a fold check between two segments
func (b *Builder) Joint(a, c Segment) *Builder {
	b.checkOpen()
	for _, i := range [4]PointIndex{a.From, a.To, c.From, c.To} {
		b.location(i)
	}
	b.entity.Joints = append(b.entity.Joints, Joint{A: a, B: c})
	return b
}

// Offset translates every point at Build time
func (b *Builder) Offset(v vmath.Vector2D) *Builder {
	b.checkOpen()
	b.offset = v
	return b
}

// Velocity sets the initial velocity of every point at Build time
func (b *Builder) Velocity(v vmath.Vector2D) *Builder {
	b.checkOpen()
	b.velocity = v
	return b
}

// Build finalizes the entity; the builder cannot be reused afterwards
func (b *Builder) Build() Entity {
	b.checkOpen()
	b.built = true

	e := b.entity
	for i, p := range e.Points {
		p.Location = p.Location.Add(b.offset)
		p.PreviousLocation = p.Location.Sub(b.velocity)
		p.Momentum = b.velocity
		e.Points[i] = p
	}
	return e
}
