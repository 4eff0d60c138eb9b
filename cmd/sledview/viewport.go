package main

import (
	"math"

	"github.com/lixenwraith/linerider/vmath"
)

// viewport maps track space onto terminal cells
// A cell is roughly twice as tall as wide, so a row spans two columns worth of track units
type viewport struct {
	center        vmath.Vector2D
	scale         float64 // track units per column
	width, height int
}

func (v viewport) project(p vmath.Vector2D) vmath.Vector2D {
	return vmath.V(
		(p.X-v.center.X)/v.scale+float64(v.width)/2,
		(p.Y-v.center.Y)/(v.scale*2)+float64(v.height)/2,
	)
}

// toScreen returns the cell containing p
func (v viewport) toScreen(p vmath.Vector2D) (x, y int) {
	s := v.project(p)
	return vmath.CellCoord(s.X, 1), vmath.CellCoord(s.Y, 1)
}

// toTrack returns the track location of the top-left corner of cell (x, y)
func (v viewport) toTrack(x, y int) vmath.Vector2D {
	return vmath.V(
		(float64(x)-float64(v.width)/2)*v.scale+v.center.X,
		(float64(y)-float64(v.height)/2)*v.scale*2+v.center.Y,
	)
}

// visible returns the track-space corners of the whole screen
func (v viewport) visible() (topLeft, bottomRight vmath.Vector2D) {
	return v.toTrack(0, 0), v.toTrack(v.width, v.height)
}

func (v viewport) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.width && y < v.height
}

// segmentCells visits every on-screen cell the track segment a-b passes through
func (v viewport) segmentCells(a, b vmath.Vector2D, fn func(x, y int)) {
	vmath.CellTraverse(v.project(a), v.project(b), 1, func(x, y int) bool {
		if v.inside(x, y) {
			fn(x, y)
		}
		return true
	})
}

// glyph picks a box character approximating the on-screen slope of a-b
func (v viewport) glyph(a, b vmath.Vector2D) rune {
	d := v.project(b).Sub(v.project(a))
	dx, dy := math.Abs(d.X), math.Abs(d.Y)
	switch {
	case dy <= dx*0.5:
		return '-'
	case dx <= dy*0.5:
		return '|'
	case (d.X > 0) == (d.Y > 0):
		return '\\'
	default:
		return '/'
	}
}

func (v viewport) zoom(factor float64) viewport {
	v.scale = min(max(v.scale*factor, 0.25), 64)
	return v
}
