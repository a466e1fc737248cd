package render

import (
	"github.com/lixenwraith/vi-maze/game"
	"github.com/lixenwraith/vi-maze/physics"
)

// StatusRows is the number of terminal rows reserved below the maze
const StatusRows = 1

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Bodies []*physics.Body
	State  game.State
	Moves  int

	Seed     uint64
	GridSize int

	View Viewport

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int
}

// NewRenderContext snapshots the session for one frame
func NewRenderContext(world *physics.World, ctrl *game.Controller, seed uint64, screenW, screenH int) RenderContext {
	cfg := world.Config()
	viewH := screenH - StatusRows
	if viewH < 1 {
		viewH = 1
	}
	return RenderContext{
		Bodies:       world.Bodies(),
		State:        ctrl.State(),
		Moves:        ctrl.Moves(),
		Seed:         seed,
		GridSize:     ctrl.Layout().Size,
		View:         NewViewport(screenW, viewH, cfg.Width, cfg.Height),
		ScreenWidth:  screenW,
		ScreenHeight: screenH,
	}
}
