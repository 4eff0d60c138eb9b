// Package scene holds named starting configurations: riders plus the lines they ride on
package scene

import (
	"slices"
	"sync"

	"github.com/lixenwraith/linerider/entity"
	"github.com/lixenwraith/linerider/line"
	"github.com/lixenwraith/linerider/track"
	"github.com/lixenwraith/linerider/vmath"
)

// Scene is a starting configuration
type Scene struct {
	Name        string
	Description string
	Riders      []entity.Entity
	Lines       []line.Line
}

// Factory builds a fresh scene; scenes share no state between calls
type Factory func() Scene

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register adds a scene factory by name, replacing any previous one
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[name] = f
}

// Get builds the named scene
func Get(name string) (Scene, bool) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()
	if !ok {
		return Scene{}, false
	}
	return f(), true
}

// Names returns registered scene names in sorted order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Track builds a track for the scene with the given settings
func (s Scene) Track(meta track.Meta) *track.Track {
	return track.NewWithMeta(s.Riders, s.Lines, meta)
}

// Chain builds connected lines through points, ids counting up from firstID
// The open ends of the chain get hitbox extensions
func Chain(firstID int64, t line.Type, points ...vmath.Vector2D) []line.Line {
	if len(points) < 2 {
		return nil
	}
	lines := make([]line.Line, 0, len(points)-1)
	for i := 0; i+1 < len(points); i++ {
		b := line.NewBuilder().ID(firstID + int64(i)).Type(t)
		b.PointVec(points[i]).Extended(i == 0)
		b.PointVec(points[i+1]).Extended(i+2 == len(points))
		lines = append(lines, b.Build())
	}
	return lines
}
