package entity

import (
	"fmt"

	"github.com/lixenwraith/linerider/vmath"
)

// PointIndex names an anatomical role; it is a stable key, not a slice offset
type PointIndex uint8

const (
	SledPeg PointIndex = iota
	SledTail
	SledNose
	SledRope
	BoshButt
	BoshShoulder
	BoshRightHand
	BoshLeftHand
	BoshLeftFoot
	BoshRightFoot

	PointCount
)

var pointNames = [PointCount]string{
	SledPeg:       "SledPeg",
	SledTail:      "SledTail",
	SledNose:      "SledNose",
	SledRope:      "SledRope",
	BoshButt:      "BoshButt",
	BoshShoulder:  "BoshShoulder",
	BoshRightHand: "BoshRightHand",
	BoshLeftHand:  "BoshLeftHand",
	BoshLeftFoot:  "BoshLeftFoot",
	BoshRightFoot: "BoshRightFoot",
}

func (i PointIndex) String() string {
	if i < PointCount {
		return pointNames[i]
	}
	return fmt.Sprintf("PointIndex(%d)", uint8(i))
}

// IsSled reports whether the role belongs to the sled half of a split
func (i PointIndex) IsSled() bool {
	return i <= SledRope
}

// EntityPoint is one simulated contact point
// Momentum is the velocity produced by the last integration step
type EntityPoint struct {
	Location         vmath.Vector2D `msgpack:"loc"`
	PreviousLocation vmath.Vector2D `msgpack:"prev"`
	Momentum         vmath.Vector2D `msgpack:"mom"`
	Friction         float64        `msgpack:"fric"`
}

// BoneKind selects the constraint behaviour of a bone
type BoneKind uint8

const (
	// BoneRigid holds its rest length in both directions
	BoneRigid BoneKind = iota
	// BoneMount holds its rest length until overstretched, then breaks the entity
	BoneMount
	// BoneRepel only pushes its ends apart when closer than the rest length
	BoneRepel
)

// Bone is a length constraint between two points
type Bone struct {
	P1, P2     PointIndex
	RestLength float64
	Kind       BoneKind
	Endurance  float64 // BoneMount only
}

// Breakable reports whether overstretching this bone splits the entity
func (b Bone) Breakable() bool {
	return b.Kind == BoneMount
}

// Segment is the directed vector between two points, used by joints
type Segment struct {
	From, To PointIndex
}

// Joint breaks the entity when segment B turns counter-clockwise of segment A
type Joint struct {
	A, B Segment
}
