package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector2D is a 2D float64 vector in track space, y grows downward
type Vector2D struct {
	X float64 `toml:"x" msgpack:"x"`
	Y float64 `toml:"y" msgpack:"y"`
}

// V is shorthand for Vector2D{X: x, Y: y}
func V(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

func fromMgl(v mgl64.Vec2) Vector2D { return Vector2D{X: v[0], Y: v[1]} }
func (v Vector2D) mgl() mgl64.Vec2   { return mgl64.Vec2{v.X, v.Y} }

func (v Vector2D) Add(o Vector2D) Vector2D      { return fromMgl(v.mgl().Add(o.mgl())) }
func (v Vector2D) Sub(o Vector2D) Vector2D      { return fromMgl(v.mgl().Sub(o.mgl())) }
func (v Vector2D) Scale(factor float64) Vector2D { return fromMgl(v.mgl().Mul(factor)) }
func (v Vector2D) Neg() Vector2D                { return Vector2D{X: -v.X, Y: -v.Y} }

// Div divides both components by d, no zero guard
func (v Vector2D) Div(d float64) Vector2D {
	return Vector2D{X: v.X / d, Y: v.Y / d}
}

// Dot returns x1*x2 + y1*y2
func (v Vector2D) Dot(o Vector2D) float64 {
	return v.mgl().Dot(o.mgl())
}

// Cross returns the z component of the 3D cross product
// Positive when o is clockwise from v in screen space (y down)
func (v Vector2D) Cross(o Vector2D) float64 {
	return v.X*o.Y - v.Y*o.X
}

// IsFinite reports whether neither component is NaN or infinite
func (v Vector2D) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

func (v Vector2D) Length() float64        { return v.mgl().Len() }
func (v Vector2D) LengthSquared() float64 { return v.mgl().LenSqr() }

// DistanceSquared returns |v - o|² without sqrt
func (v Vector2D) DistanceSquared(o Vector2D) float64 {
	return v.Sub(o).LengthSquared()
}

// Rotate90Left returns (y, -x)
// For a left-to-right segment this points up the screen
func (v Vector2D) Rotate90Left() Vector2D {
	return Vector2D{X: v.Y, Y: -v.X}
}

// Rotate90Right returns (-y, x)
func (v Vector2D) Rotate90Right() Vector2D {
	return Vector2D{X: -v.Y, Y: v.X}
}

// Normalize returns the unit vector, zero-safe
func (v Vector2D) Normalize() Vector2D {
	if v.X == 0 && v.Y == 0 {
		return Vector2D{}
	}
	return fromMgl(v.mgl().Normalize())
}
