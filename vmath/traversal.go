package vmath

import (
	"math"
)

// CellCoord returns the index of the cell of side cellSize containing coordinate c
// Floor semantics: -0.5 with size 14 is cell -1, not 0
func CellCoord(c, cellSize float64) int {
	return int(math.Floor(c / cellSize))
}

// --- 2D Traversal (Supercover DDA) ---

// CellTraverse visits every cell of side cellSize intersected by the segment p1 -> p2
// Uses Supercover DDA so no cell is skipped; both endpoint cells are always visited
// Guaranteed to terminate: an axis only steps while it has not reached its target cell
// Callback returning false stops the traversal
// A non-finite endpoint has no cell and visits nothing
func CellTraverse(p1, p2 Vector2D, cellSize float64, callback func(x, y int) bool) {
	if !p1.IsFinite() || !p2.IsFinite() {
		return
	}
	ix, iy := CellCoord(p1.X, cellSize), CellCoord(p1.Y, cellSize)
	targetX, targetY := CellCoord(p2.X, cellSize), CellCoord(p2.Y, cellSize)

	if !callback(ix, iy) {
		return
	}
	if ix == targetX && iy == targetY {
		return
	}

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
		dx = -dx
	}
	if dy < 0 {
		stepY = -1
		dy = -dy
	}

	// t is the segment parameter in [0, 1]; tMax is where the next boundary is crossed
	tMaxX, tMaxY := math.Inf(1), math.Inf(1)
	var tDeltaX, tDeltaY float64
	if dx != 0 {
		tDeltaX = cellSize / dx
		if stepX > 0 {
			tMaxX = (float64(ix+1)*cellSize - p1.X) / dx
		} else {
			tMaxX = (p1.X - float64(ix)*cellSize) / dx
		}
	}
	if dy != 0 {
		tDeltaY = cellSize / dy
		if stepY > 0 {
			tMaxY = (float64(iy+1)*cellSize - p1.Y) / dy
		} else {
			tMaxY = (p1.Y - float64(iy)*cellSize) / dy
		}
	}

	for ix != targetX || iy != targetY {
		if tMaxX < tMaxY {
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			} else {
				// X is done, forced to step Y
				iy += stepY
				tMaxY += tDeltaY
			}
		} else if tMaxX > tMaxY {
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			} else {
				ix += stepX
				tMaxX += tDeltaX
			}
		} else {
			// Exact corner crossing
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			}
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			}
		}

		if !callback(ix, iy) {
			return
		}
	}
}
