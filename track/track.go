package track

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/lixenwraith/linerider/entity"
	"github.com/lixenwraith/linerider/line"
	"github.com/lixenwraith/linerider/linestore"
	"github.com/lixenwraith/linerider/physics"
	"github.com/lixenwraith/linerider/vmath"
)

// NearRadius is the cell radius of point proximity queries
const NearRadius = 1

// Track owns the lines and a lazily extended cache of entity snapshots per frame
// Frame 0 is authoritative; frames [1, CachedFrames()) are derived and dropped on any edit
//
// Track is safe for concurrent use. Reads of cached frames share a read lock,
// extending the cache and every mutation hold the write lock
type Track struct {
	mu     sync.RWMutex
	meta   Meta
	params physics.Params
	grid   *linestore.Grid
	frames [][]entity.Entity
}

// gridSource adapts the grid to physics.LineSource without taking the track lock
// Only used while the caller already holds it
type gridSource struct {
	grid *linestore.Grid
}

func (s gridSource) LinesNear(point vmath.Vector2D) []line.Line {
	return s.grid.LinesNear(point, NearRadius)
}

// New creates a track with default meta
func New(start []entity.Entity, lines []line.Line) *Track {
	return NewWithMeta(start, lines, DefaultMeta())
}

// NewWithMeta creates a track with explicit settings
// The meta is trusted; callers loading it from outside should Validate first
func NewWithMeta(start []entity.Entity, lines []line.Line, meta Meta) *Track {
	return &Track{
		meta:   meta,
		params: meta.Params(),
		grid:   linestore.NewGrid(lines, meta.CellSize),
		frames: [][]entity.Entity{entity.CloneAll(start)},
	}
}

func (t *Track) Meta() Meta {
	return t.meta
}

// LineBuilder returns a line builder using the track's extension ratio
func (t *Track) LineBuilder() *line.Builder {
	return line.NewBuilder().ExtensionRatio(t.meta.LineExtensionRatio)
}

// AllLines returns every line in insertion order
func (t *Track) AllLines() []line.Line {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.grid.AllLines()
}

// LinesNear returns lines in the 3x3 cells around point
func (t *Track) LinesNear(point vmath.Vector2D) []line.Line {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.grid.LinesNear(point, NearRadius)
}

// LinesNearBox returns lines in every cell the rectangle overlaps
func (t *Track) LinesNearBox(p1, p2 vmath.Vector2D) []line.Line {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.grid.LinesNearBox(p1, p2)
}

// truncate keeps only frame 0, caller holds the write lock
func (t *Track) truncate() {
	clear(t.frames[1:])
	t.frames = t.frames[:1]
}

// AddLine stores a line and invalidates every derived frame
func (t *Track) AddLine(l line.Line) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.grid.AddLine(l)
	t.truncate()
}

// RemoveLine removes the most recently added equal line, reporting whether one matched
// Derived frames are invalidated either way
func (t *Track) RemoveLine(l line.Line) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	removed := t.grid.RemoveLine(l)
	t.truncate()
	return removed
}

// EntityPositionsAt returns a copy of the entities at frame, simulating missing frames
// A negative frame panics
func (t *Track) EntityPositionsAt(frame int) []entity.Entity {
	if frame < 0 {
		panic(fmt.Sprintf("track: negative frame %d", frame))
	}

	t.mu.RLock()
	if frame < len(t.frames) {
		out := entity.CloneAll(t.frames[frame])
		t.mu.RUnlock()
		return out
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	// Another writer may have extended the cache between the locks
	src := gridSource{grid: t.grid}
	for len(t.frames) <= frame {
		t.frames = append(t.frames, physics.FrameAfter(t.frames[len(t.frames)-1], src, t.params))
	}
	return entity.CloneAll(t.frames[frame])
}

// CachedFrames returns the length of the computed frame prefix, at least 1
func (t *Track) CachedFrames() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.frames)
}

// CreateEntity adds an entity to frame 0
func (t *Track) CreateEntity(e entity.Entity) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frames[0] = append(t.frames[0], e.Clone())
	t.truncate()
}

// RemoveEntity removes the first frame 0 entity equal to e
// Returns false and leaves the cache intact when none matches
func (t *Track) RemoveEntity(e entity.Entity) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	idx := slices.IndexFunc(t.frames[0], e.Equal)
	if idx < 0 {
		return false
	}
	t.frames[0] = slices.Delete(t.frames[0], idx, idx+1)
	t.truncate()
	return true
}

// SnapPoint returns the line endpoint nearest to point strictly within maxDist, or point itself
// On equal distances the first candidate in query order wins
func (t *Track) SnapPoint(maxDist float64, point vmath.Vector2D) vmath.Vector2D {
	maxSq := maxDist * maxDist
	best, bestSq, found := point, 0.0, false
	for _, l := range t.LinesNear(point) {
		for _, end := range l.Ends {
			d := end.Location.DistanceSquared(point)
			if math.IsNaN(d) || d >= maxSq {
				continue
			}
			if !found || d < bestSq {
				best, bestSq, found = end.Location, d, true
			}
		}
	}
	return best
}

// DistanceBelowLine returns the gravity well depth of p under l using the track's well height
func (t *Track) DistanceBelowLine(l line.Line, p entity.EntityPoint) float64 {
	return physics.DistanceBelowLine(l, p, t.meta.GravityWellHeight)
}

// Clone returns an independent copy sharing no mutable state
func (t *Track) Clone() *Track {
	t.mu.RLock()
	defer t.mu.RUnlock()
	frames := make([][]entity.Entity, len(t.frames))
	for i, f := range t.frames {
		frames[i] = entity.CloneAll(f)
	}
	return &Track{
		meta:   t.meta,
		params: t.params,
		grid:   t.grid.Clone(),
		frames: frames,
	}
}
