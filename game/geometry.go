package game

import (
	"github.com/lixenwraith/vi-maze/config"
	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/vmath"
)

// Rect is a static obstacle placement in world pixels
type Rect struct {
	Center        vmath.Vec2
	Width, Height float64
	Label         string
}

// Borders returns the four outer boundary rectangles, top, bottom, left, right
func Borders(cfg *config.Config) []Rect {
	w, h, t := cfg.Width, cfg.Height, cfg.BorderThickness
	return []Rect{
		{Center: vmath.V(w/2, 0), Width: w, Height: t, Label: LabelBorder},
		{Center: vmath.V(w/2, h), Width: w, Height: t, Label: LabelBorder},
		{Center: vmath.V(0, h/2), Width: t, Height: h, Label: LabelBorder},
		{Center: vmath.V(w, h/2), Width: t, Height: h, Label: LabelBorder},
	}
}

// Walls translates every closed passage of the layout into a wall rectangle,
// horizontals first, row-major
func Walls(layout *maze.Layout, cfg *config.Config) []Rect {
	unitX, unitY := cfg.CellSize(layout.Size)
	thin := cfg.WallThickness

	var walls []Rect
	for r, row := range layout.Horizontals {
		for c, open := range row {
			if open {
				continue
			}
			walls = append(walls, Rect{
				Center: vmath.V(float64(c)*unitX+unitX/2, float64(r+1)*unitY),
				Width:  unitX,
				Height: thin,
				Label:  LabelWall,
			})
		}
	}
	for r, row := range layout.Verticals {
		for c, open := range row {
			if open {
				continue
			}
			walls = append(walls, Rect{
				Center: vmath.V(float64(c+1)*unitX, float64(r)*unitY+unitY/2),
				Width:  thin,
				Height: unitY,
				Label:  LabelWall,
			})
		}
	}
	return walls
}

// CellCenter returns the world position of a cell's center
func CellCenter(c maze.Cell, size int, cfg *config.Config) vmath.Vec2 {
	unitX, unitY := cfg.CellSize(size)
	return vmath.V(float64(c.Col)*unitX+unitX/2, float64(c.Row)*unitY+unitY/2)
}
