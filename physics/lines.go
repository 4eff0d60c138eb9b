package physics

import (
	"math"

	"github.com/lixenwraith/linerider/entity"
	"github.com/lixenwraith/linerider/line"
)

// DistanceBelowLine returns how deep p sits inside the line's gravity well, or 0 when it does not
// The point must be moving into the line, lie within the extended span, and be less than wellHeight below it
func DistanceBelowLine(l line.Line, p entity.EntityPoint, wellHeight float64) float64 {
	perp := l.Perpendicular()
	if perp.Dot(p.Momentum) >= 0 {
		return 0
	}

	vec := l.Vector()
	length := vec.Length()
	if length == 0 {
		return 0
	}

	fromStart := p.Location.Sub(l.Ends[0].Location)
	along := fromStart.Dot(vec) / length
	left, right := l.HitboxExtensions()
	if along < -left || along > length+right {
		return 0
	}

	below := -perp.Dot(fromStart)
	if below > 0 && below < wellHeight {
		return below
	}
	return 0
}

// Collide snaps p back onto the line surface and applies friction and acceleration
// Friction drags the previous location toward the corrected location along the surface,
// so the next integration loses the normal velocity and some tangential speed
//
// Momentum is returned as integrated, normal component included: the velocity change
// lives in PreviousLocation, and later iterations of the same frame still see the point
// moving into the line so nearby wells keep catching it
func Collide(l line.Line, p entity.EntityPoint, depth float64) entity.EntityPoint {
	perp := l.Perpendicular()
	loc := p.Location.Add(perp.Scale(depth))
	prev := p.PreviousLocation

	f := p.Friction * depth
	dx := math.Abs(perp.Y) * f
	dy := math.Abs(perp.X) * f
	if prev.X > loc.X {
		dx = -dx
	}
	if prev.Y > loc.Y {
		dy = -dy
	}
	prev.X += dx
	prev.Y += dy

	if l.Type.Kind == line.KindAccelerate {
		dir := l.Vector().Normalize()
		if l.Flipped {
			dir = dir.Neg()
		}
		prev = prev.Sub(dir.Scale(AccelerationFactor * float64(l.Type.Amount)))
	}

	p.Location = loc
	p.PreviousLocation = prev
	return p
}

// ApplyGravityWells collides every point against the collidable lines near it, in source order
func ApplyGravityWells(e *entity.Entity, src LineSource, wellHeight float64) {
	for _, i := range e.Indices() {
		p := e.Points[i]
		for _, l := range src.LinesNear(p.Location) {
			if !l.Type.Collidable() {
				continue
			}
			if depth := DistanceBelowLine(l, p, wellHeight); depth > 0 {
				p = Collide(l, p, depth)
			}
		}
		e.Points[i] = p
	}
}
