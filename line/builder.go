package line

import (
	"github.com/lixenwraith/linerider/vmath"
)

// Builder constructs well-formed lines
// The first Point call locates end 0, every later call locates end 1
// Extended flags the most recently located end
//
// Example usage:
//
//	l := line.NewBuilder().ID(3).Point(0, 5).Extended(true).Point(30, 5).Build()
type Builder struct {
	firstLocated  bool
	secondLocated bool
	line          Line
}

// NewBuilder returns a builder for a normal, unflipped line with the default extension ratio
func NewBuilder() *Builder {
	return &Builder{
		line: Line{
			Type:           NormalType(),
			ExtensionRatio: DefaultExtensionRatio,
		},
	}
}

func (b *Builder) ID(id int64) *Builder {
	b.line.ID = id
	return b
}

func (b *Builder) ExtensionRatio(ratio float64) *Builder {
	b.line.ExtensionRatio = ratio
	return b
}

func (b *Builder) Type(t Type) *Builder {
	b.line.Type = t
	return b
}

func (b *Builder) Flipped(flipped bool) *Builder {
	b.line.Flipped = flipped
	return b
}

func (b *Builder) Point(x, y float64) *Builder {
	return b.PointVec(vmath.V(x, y))
}

func (b *Builder) PointVec(p vmath.Vector2D) *Builder {
	if !b.firstLocated {
		b.line.Ends[0].Location = p
		b.firstLocated = true
	} else {
		b.line.Ends[1].Location = p
		b.secondLocated = true
	}
	return b
}

// Extended sets the hitbox extension flag of the end located last
// Panics when no end has been located yet
func (b *Builder) Extended(extended bool) *Builder {
	switch {
	case !b.firstLocated:
		panic("line: Extended called before the endpoint was located")
	case !b.secondLocated:
		b.line.Ends[0].Extended = extended
	default:
		b.line.Ends[1].Extended = extended
	}
	return b
}

// Build returns the line; the builder may keep being used to derive variants
func (b *Builder) Build() Line {
	return b.line
}
