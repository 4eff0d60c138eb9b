package line

import (
	"cmp"
	"fmt"

	"github.com/lixenwraith/linerider/vmath"
)

// DefaultExtensionRatio is the share of a line's length added as hitbox extension
const DefaultExtensionRatio = 0.25

// MaxHitboxExtension caps a single end's hitbox extension
const MaxHitboxExtension = 10.0

// Kind is the closed set of line behaviours
type Kind uint8

const (
	KindNormal Kind = iota
	KindAccelerate
	KindScenery
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindAccelerate:
		return "accelerate"
	case KindScenery:
		return "scenery"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Type is a tagged variant: Amount only carries meaning for KindAccelerate
type Type struct {
	Kind   Kind   `msgpack:"kind"`
	Amount uint64 `msgpack:"amount,omitempty"`
}

func NormalType() Type                  { return Type{Kind: KindNormal} }
func SceneryType() Type                 { return Type{Kind: KindScenery} }
func AccelerateType(amount uint64) Type { return Type{Kind: KindAccelerate, Amount: amount} }

// Collidable reports whether entities interact with lines of this type
func (t Type) Collidable() bool {
	return t.Kind != KindScenery
}

func (t Type) String() string {
	if t.Kind == KindAccelerate {
		return fmt.Sprintf("accelerate(%d)", t.Amount)
	}
	return t.Kind.String()
}

// LinePoint is one end of a line
// Extended enables the hitbox extension past this end
type LinePoint struct {
	Location vmath.Vector2D `msgpack:"location"`
	Extended bool           `msgpack:"extended,omitempty"`
}

// Line is a static track segment
// ExtensionRatio is a track-wide constant copied onto each line and excluded from Equal
type Line struct {
	ID             int64        `msgpack:"id"`
	Ends           [2]LinePoint `msgpack:"ends"`
	Type           Type         `msgpack:"type"`
	Flipped        bool         `msgpack:"flipped,omitempty"`
	ExtensionRatio float64      `msgpack:"-"`
}

// Key is the comparable identity of a line: every field except ExtensionRatio
type Key struct {
	ID      int64
	Ends    [2]LinePoint
	Type    Type
	Flipped bool
}

func (l Line) Key() Key {
	return Key{ID: l.ID, Ends: l.Ends, Type: l.Type, Flipped: l.Flipped}
}

// Equal compares id, ends, type and flipped
func (l Line) Equal(o Line) bool {
	return l.Key() == o.Key()
}

// Compare orders lines by ID only
// Distinct lines sharing an ID compare as 0, so never dedup line storage with it
func Compare(a, b Line) int {
	return cmp.Compare(a.ID, b.ID)
}

// Vector returns end1 - end0
func (l Line) Vector() vmath.Vector2D {
	return l.Ends[1].Location.Sub(l.Ends[0].Location)
}

func (l Line) LengthSquared() float64 {
	return l.Ends[0].Location.DistanceSquared(l.Ends[1].Location)
}

func (l Line) Length() float64 {
	return l.Vector().Length()
}

// Perpendicular returns the unit normal on the side the line pushes toward
// Left-hand normal, right-hand when flipped
func (l Line) Perpendicular() vmath.Vector2D {
	if l.Flipped {
		return l.Vector().Rotate90Right().Normalize()
	}
	return l.Vector().Rotate90Left().Normalize()
}

// HitboxExtensions returns the extra collision length before end 0 and past end 1
func (l Line) HitboxExtensions() (left, right float64) {
	ext := min(max(l.Length()*l.ExtensionRatio, 0), MaxHitboxExtension)
	if l.Ends[0].Extended {
		left = ext
	}
	if l.Ends[1].Extended {
		right = ext
	}
	return left, right
}

func (l Line) String() string {
	return fmt.Sprintf("line#%d %s (%g,%g)->(%g,%g)",
		l.ID, l.Type,
		l.Ends[0].Location.X, l.Ends[0].Location.Y,
		l.Ends[1].Location.X, l.Ends[1].Location.Y)
}
