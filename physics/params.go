package physics

import (
	"github.com/lixenwraith/linerider/line"
	"github.com/lixenwraith/linerider/vmath"
)

// Simulation constants
const (
	DefaultIterations        = 6
	DefaultGravityWellHeight = 10.0
	// AccelerationFactor scales an accelerate line's amount into a per-contact push
	AccelerationFactor = 0.1
)

// DefaultGravity is the per-frame gravity, y grows downward
var DefaultGravity = vmath.V(0, 0.175)

// Params holds the tunables of one frame step
type Params struct {
	Gravity           vmath.Vector2D
	Iterations        int
	GravityWellHeight float64
}

// DefaultParams returns the standard simulation parameters
func DefaultParams() Params {
	return Params{
		Gravity:           DefaultGravity,
		Iterations:        DefaultIterations,
		GravityWellHeight: DefaultGravityWellHeight,
	}
}

// LineSource supplies candidate lines for collision near a point
// Order of the returned lines is significant: collisions are applied in that order
type LineSource interface {
	LinesNear(point vmath.Vector2D) []line.Line
}

// LineSlice is a LineSource that returns every line for every query
type LineSlice []line.Line

func (s LineSlice) LinesNear(vmath.Vector2D) []line.Line { return s }
