package entity

import (
	"github.com/lixenwraith/linerider/vmath"
)

// Bosh sled tuning
const (
	MountEndurance = 0.057
)

// DefaultVelocity is the push every rider starts with
var DefaultVelocity = vmath.V(0.4, 0)

// DefaultBoshSled returns the standard rider on a sled at the origin with the default push
func DefaultBoshSled() Entity {
	return NewBoshSled(vmath.Vector2D{}, DefaultVelocity)
}

// NewBoshSled returns the standard rider on a sled translated by offset, moving at velocity
// Bone order is part of the simulation result and must not be rearranged
func NewBoshSled(offset, velocity vmath.Vector2D) Entity {
	return NewBuilder().
		Point(SledPeg, vmath.V(0, 0), 0.8).
		Point(SledTail, vmath.V(0, 5), 0).
		Point(SledNose, vmath.V(15, 5), 0).
		Point(SledRope, vmath.V(17.5, 0), 0).
		Point(BoshButt, vmath.V(5, 0), 0.8).
		Point(BoshShoulder, vmath.V(5, -5.5), 0.8).
		Point(BoshRightHand, vmath.V(11.5, -5), 0.1).
		Point(BoshLeftHand, vmath.V(11.5, -5), 0.1).
		Point(BoshLeftFoot, vmath.V(10, 5), 0).
		Point(BoshRightFoot, vmath.V(10, 5), 0).
		// Sled frame
		Bone(SledPeg, SledTail).
		Bone(SledTail, SledNose).
		Bone(SledNose, SledRope).
		Bone(SledRope, SledPeg).
		Bone(SledPeg, SledNose).
		Bone(SledRope, SledTail).
		// Seat
		MountBone(SledPeg, BoshButt, MountEndurance).
		MountBone(SledTail, BoshButt, MountEndurance).
		MountBone(SledNose, BoshButt, MountEndurance).
		// Body
		Bone(BoshShoulder, BoshButt).
		Bone(BoshShoulder, BoshLeftHand).
		Bone(BoshShoulder, BoshRightHand).
		Bone(BoshButt, BoshLeftFoot).
		Bone(BoshButt, BoshRightFoot).
		// Grip and stance
		MountBone(BoshShoulder, SledPeg, MountEndurance).
		MountBone(SledRope, BoshLeftHand, MountEndurance).
		MountBone(SledRope, BoshRightHand, MountEndurance).
		MountBone(BoshLeftFoot, SledNose, MountEndurance).
		MountBone(BoshRightFoot, SledNose, MountEndurance).
		RepelBone(BoshShoulder, BoshLeftFoot).
		RepelBone(BoshShoulder, BoshRightFoot).
		// Rider folded backwards over the sled, sled folded over itself
		Joint(Segment{From: BoshButt, To: BoshShoulder}, Segment{From: SledPeg, To: SledRope}).
		Joint(Segment{From: SledPeg, To: SledRope}, Segment{From: SledPeg, To: SledTail}).
		Offset(offset).
		Velocity(velocity).
		Build()
}
