package render

import (
	"math"

	"github.com/lixenwraith/vi-maze/vmath"
)

// Viewport maps world pixels onto a grid of terminal cells anchored at (0,0)
type Viewport struct {
	Cols, Rows     int
	WorldW, WorldH float64
}

func NewViewport(cols, rows int, worldW, worldH float64) Viewport {
	return Viewport{Cols: max(cols, 1), Rows: max(rows, 1), WorldW: worldW, WorldH: worldH}
}

func (v Viewport) scaleX() float64 { return float64(v.Cols) / v.WorldW }
func (v Viewport) scaleY() float64 { return float64(v.Rows) / v.WorldH }

// ToScreen converts a world point to a cell, clamped into the viewport
func (v Viewport) ToScreen(p vmath.Vec2) (x, y int) {
	x = int(math.Floor(p.X * v.scaleX()))
	y = int(math.Floor(p.Y * v.scaleY()))
	return clampInt(x, 0, v.Cols-1), clampInt(y, 0, v.Rows-1)
}

// Span converts a world AABB to an inclusive cell range. Every non-empty box covers at least one cell.
// ok is false when the box lies entirely outside the viewport.
func (v Viewport) Span(lo, hi vmath.Vec2) (x0, y0, x1, y1 int, ok bool) {
	sx, sy := v.scaleX(), v.scaleY()
	x0 = int(math.Floor(lo.X * sx))
	y0 = int(math.Floor(lo.Y * sy))
	x1 = int(math.Ceil(hi.X*sx)) - 1
	y1 = int(math.Ceil(hi.Y*sy)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	if x1 < 0 || y1 < 0 || x0 >= v.Cols || y0 >= v.Rows {
		return 0, 0, 0, 0, false
	}
	return clampInt(x0, 0, v.Cols-1), clampInt(y0, 0, v.Rows-1),
		clampInt(x1, 0, v.Cols-1), clampInt(y1, 0, v.Rows-1), true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
