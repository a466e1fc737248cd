package render

import "github.com/gdamore/tcell/v2"

// SystemRenderer is implemented by anything with visual output
type SystemRenderer interface {
	Render(ctx RenderContext, screen tcell.Screen)
}

// VisibilityToggle is optionally implemented for per-frame enable/disable
type VisibilityToggle interface {
	IsVisible(ctx RenderContext) bool
}
