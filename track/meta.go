package track

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/linerider/line"
	"github.com/lixenwraith/linerider/physics"
	"github.com/lixenwraith/linerider/vmath"
)

// ErrInvalidMeta is wrapped by every meta validation failure
var ErrInvalidMeta = errors.New("invalid track meta")

// DefaultCellSize is the grid cell side used when no meta overrides it
const DefaultCellSize = 14.0

// Meta holds per-track simulation settings
type Meta struct {
	LineExtensionRatio float64        `toml:"line_extension_ratio"`
	GravityWellHeight  float64        `toml:"gravity_well_height"`
	CellSize           float64        `toml:"cell_size"`
	Remount            bool           `toml:"remount"` // carried, not yet read by the step pipeline
	Iterations         int            `toml:"iterations"`
	Gravity            vmath.Vector2D `toml:"gravity"`
}

// DefaultMeta returns the standard settings
func DefaultMeta() Meta {
	return Meta{
		LineExtensionRatio: line.DefaultExtensionRatio,
		GravityWellHeight:  physics.DefaultGravityWellHeight,
		CellSize:           DefaultCellSize,
		Remount:            false,
		Iterations:         physics.DefaultIterations,
		Gravity:            physics.DefaultGravity,
	}
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Validate reports the first setting the simulation cannot run with
func (m Meta) Validate() error {
	switch {
	case !finite(m.LineExtensionRatio) || m.LineExtensionRatio < 0:
		return fmt.Errorf("%w: line_extension_ratio %v must be a non-negative number", ErrInvalidMeta, m.LineExtensionRatio)
	case !finite(m.GravityWellHeight) || m.GravityWellHeight <= 0:
		return fmt.Errorf("%w: gravity_well_height %v must be positive", ErrInvalidMeta, m.GravityWellHeight)
	case !finite(m.CellSize) || m.CellSize <= 0:
		return fmt.Errorf("%w: cell_size %v must be positive", ErrInvalidMeta, m.CellSize)
	case m.Iterations < 1:
		return fmt.Errorf("%w: iterations %d must be at least 1", ErrInvalidMeta, m.Iterations)
	case !finite(m.Gravity.X) || !finite(m.Gravity.Y):
		return fmt.Errorf("%w: gravity %v must be finite", ErrInvalidMeta, m.Gravity)
	}
	return nil
}

// Params converts the meta into step parameters
func (m Meta) Params() physics.Params {
	return physics.Params{
		Gravity:           m.Gravity,
		Iterations:        m.Iterations,
		GravityWellHeight: m.GravityWellHeight,
	}
}

// DecodeMeta parses TOML over the defaults, so absent keys keep their default value
// Unknown keys are rejected
func DecodeMeta(data []byte) (Meta, error) {
	m := DefaultMeta()
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return Meta{}, fmt.Errorf("meta parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return Meta{}, fmt.Errorf("%w: unknown keys %v", ErrInvalidMeta, keys)
	}
	if err := m.Validate(); err != nil {
		return Meta{}, err
	}
	return m, nil
}

// LoadMeta reads and decodes a TOML meta file
func LoadMeta(path string) (Meta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Meta{}, fmt.Errorf("meta read: %w", err)
	}
	m, err := DecodeMeta(data)
	if err != nil {
		return Meta{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Encode writes the meta as TOML
func (m Meta) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(m); err != nil {
		return fmt.Errorf("meta encode: %w", err)
	}
	return nil
}
