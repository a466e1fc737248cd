package input

import (
	"github.com/lixenwraith/vi-maze/game"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit    // q, Esc, Ctrl+C
	IntentRestart // r
	IntentResize  // Terminal resize event

	// Gameplay
	IntentMove // WASD, arrows
)

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies beyond the event type
type Intent struct {
	Type IntentType
	Move game.EventType // Set for IntentMove
}

// Event converts a move intent into a controller event
// ok is false for intents the controller does not consume
func (i Intent) Event() (ev game.Event, ok bool) {
	if i.Type != IntentMove {
		return game.Event{}, false
	}
	return game.Move(i.Move), true
}
