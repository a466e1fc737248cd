package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-maze/render"
)

var styleStatus = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)

// StatusBarRenderer writes session info on the last screen row
type StatusBarRenderer struct{}

func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

func (r *StatusBarRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	y := ctx.ScreenHeight - 1
	if y < 0 {
		return
	}
	text := fmt.Sprintf(" %dx%d  seed %d  moves %d  %s  |  WASD/arrows move  r new  q quit ",
		ctx.GridSize, ctx.GridSize, ctx.Seed, ctx.Moves, ctx.State)

	for x := 0; x < ctx.ScreenWidth; x++ {
		screen.SetContent(x, y, ' ', nil, styleStatus)
	}
	drawText(screen, 0, y, ctx.ScreenWidth, text, styleStatus)
}

func drawText(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= maxX {
			return
		}
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
