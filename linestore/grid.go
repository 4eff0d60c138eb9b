package linestore

import (
	"slices"

	"github.com/lixenwraith/linerider/line"
	"github.com/lixenwraith/linerider/vmath"
)

// Cell is an integer grid coordinate
type Cell struct {
	X, Y int
}

// CellOf returns the cell of side cellSize containing point
func CellOf(point vmath.Vector2D, cellSize float64) Cell {
	return Cell{X: vmath.CellCoord(point.X, cellSize), Y: vmath.CellCoord(point.Y, cellSize)}
}

// entry is one stored line plus the cells it was rasterized into
// Cells hold *entry so removal never invalidates other entries' positions
type entry struct {
	line  line.Line
	cells []Cell
}

// Grid is a sparse uniform grid of line references for proximity queries
// Query order is a contract: cells in scan order, lines within a cell in insertion order
//
// Grid is not safe for concurrent mutation; the owning track serializes access
type Grid struct {
	cellSize float64
	cells    map[Cell][]*entry
	entries  []*entry // insertion order
}

// NewGrid creates a grid and adds lines in order
func NewGrid(lines []line.Line, cellSize float64) *Grid {
	if cellSize <= 0 {
		panic("linestore: cell size must be positive")
	}
	g := &Grid{
		cellSize: cellSize,
		cells:    make(map[Cell][]*entry),
		entries:  make([]*entry, 0, len(lines)),
	}
	for _, l := range lines {
		g.AddLine(l)
	}
	return g
}

func (g *Grid) CellSize() float64 { return g.cellSize }

// Len returns the number of stored lines
func (g *Grid) Len() int { return len(g.entries) }

// AddLine rasterizes the segment and appends it to every cell it crosses
func (g *Grid) AddLine(l line.Line) {
	e := &entry{line: l}
	vmath.CellTraverse(l.Ends[0].Location, l.Ends[1].Location, g.cellSize, func(x, y int) bool {
		c := Cell{X: x, Y: y}
		g.cells[c] = append(g.cells[c], e)
		e.cells = append(e.cells, c)
		return true
	})
	g.entries = append(g.entries, e)
}

// RemoveLine removes the most recently added line equal to l from exactly the cells it occupies
// Removing the newest duplicate keeps AddLine followed by RemoveLine an exact undo
// Returns false when no stored line matches
func (g *Grid) RemoveLine(l line.Line) bool {
	idx := -1
	for i := len(g.entries) - 1; i >= 0; i-- {
		if g.entries[i].line.Equal(l) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	e := g.entries[idx]
	g.entries = slices.Delete(g.entries, idx, idx+1)

	for _, c := range e.cells {
		bucket := g.cells[c]
		if i := slices.Index(bucket, e); i >= 0 {
			bucket = slices.Delete(bucket, i, i+1)
		}
		if len(bucket) == 0 {
			delete(g.cells, c)
		} else {
			g.cells[c] = bucket
		}
	}
	return true
}

// LinesNear returns lines in the (2r+1)² cells around point
// Scan order: x offset outer, y offset inner, each cell in insertion order, first encounter wins
func (g *Grid) LinesNear(point vmath.Vector2D, radius int) []line.Line {
	center := CellOf(point, g.cellSize)
	return g.collect(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius)
}

// LinesNearBox returns lines in every cell overlapped by the rectangle spanned by p1 and p2
// Corner order does not matter; scan order matches LinesNear
func (g *Grid) LinesNearBox(p1, p2 vmath.Vector2D) []line.Line {
	lo := CellOf(vmath.V(min(p1.X, p2.X), min(p1.Y, p2.Y)), g.cellSize)
	hi := CellOf(vmath.V(max(p1.X, p2.X), max(p1.Y, p2.Y)), g.cellSize)
	return g.collect(lo.X, lo.Y, hi.X, hi.Y)
}

func (g *Grid) collect(minX, minY, maxX, maxY int) []line.Line {
	var (
		result []line.Line
		seen   map[*entry]struct{}
	)
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for _, e := range g.cells[Cell{X: x, Y: y}] {
				if seen == nil {
					seen = make(map[*entry]struct{})
				}
				if _, dup := seen[e]; dup {
					continue
				}
				seen[e] = struct{}{}
				result = append(result, e.line)
			}
		}
	}
	return result
}

// AllLines returns every stored line in insertion order
func (g *Grid) AllLines() []line.Line {
	lines := make([]line.Line, len(g.entries))
	for i, e := range g.entries {
		lines[i] = e.line
	}
	return lines
}

// Clone returns an independent grid with identical query results
func (g *Grid) Clone() *Grid {
	c := &Grid{
		cellSize: g.cellSize,
		cells:    make(map[Cell][]*entry, len(g.cells)),
		entries:  make([]*entry, len(g.entries)),
	}
	remap := make(map[*entry]*entry, len(g.entries))
	for i, e := range g.entries {
		ne := &entry{line: e.line, cells: slices.Clone(e.cells)}
		remap[e] = ne
		c.entries[i] = ne
	}
	for cell, bucket := range g.cells {
		nb := make([]*entry, len(bucket))
		for i, e := range bucket {
			nb[i] = remap[e]
		}
		c.cells[cell] = nb
	}
	return c
}
