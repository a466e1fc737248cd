package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-maze/game"
	"github.com/lixenwraith/vi-maze/render"
)

const bannerText = " You won! Press r for a new maze "

var styleBanner = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen).Bold(true)

// BannerRenderer centers the win message over the maze once the session is won
type BannerRenderer struct{}

func NewBannerRenderer() *BannerRenderer {
	return &BannerRenderer{}
}

func (r *BannerRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.State == game.StateWon
}

func (r *BannerRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	width := len([]rune(bannerText))
	x := (ctx.View.Cols - width) / 2
	if x < 0 {
		x = 0
	}
	y := ctx.View.Rows / 2
	drawText(screen, x, y, ctx.ScreenWidth, bannerText, styleBanner)
}
