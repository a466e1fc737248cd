package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-maze/game"
	"github.com/lixenwraith/vi-maze/physics"
	"github.com/lixenwraith/vi-maze/render"
)

const (
	runeBlock = '█'
	runeBall  = '●'
)

var (
	styleBorder     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleWall       = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleWallLoose  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleGoal       = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBall       = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleUnlabelled = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// WallRenderer fills the cells covered by border and wall rectangles
type WallRenderer struct{}

func NewWallRenderer() *WallRenderer {
	return &WallRenderer{}
}

func (r *WallRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	for _, b := range ctx.Bodies {
		if b.Shape != physics.ShapeRect {
			continue
		}
		var style tcell.Style
		switch b.Label {
		case game.LabelBorder:
			style = styleBorder
		case game.LabelWall:
			style = styleWall
			if !b.Static {
				style = styleWallLoose
			}
		case game.LabelGoal:
			continue
		default:
			style = styleUnlabelled
		}
		fillBody(ctx.View, screen, b, runeBlock, style)
	}
}

// EntityRenderer draws the goal and the ball on top of the walls
type EntityRenderer struct{}

func NewEntityRenderer() *EntityRenderer {
	return &EntityRenderer{}
}

func (r *EntityRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	for _, b := range ctx.Bodies {
		if b.Label == game.LabelGoal {
			fillBody(ctx.View, screen, b, runeBlock, styleGoal)
		}
	}
	for _, b := range ctx.Bodies {
		if b.Label == game.LabelBall {
			x, y := ctx.View.ToScreen(b.Pos)
			screen.SetContent(x, y, runeBall, nil, styleBall)
		}
	}
}

func fillBody(view render.Viewport, screen tcell.Screen, b *physics.Body, ch rune, style tcell.Style) {
	lo, hi := b.Bounds()
	x0, y0, x1, y1, ok := view.Span(lo, hi)
	if !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}
