package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-maze/game"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings, matched case-insensitively
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyUp:     {Type: IntentMove, Move: game.EventMoveUp},
			tcell.KeyDown:   {Type: IntentMove, Move: game.EventMoveDown},
			tcell.KeyLeft:   {Type: IntentMove, Move: game.EventMoveLeft},
			tcell.KeyRight:  {Type: IntentMove, Move: game.EventMoveRight},
		},

		Runes: map[rune]Intent{
			'w': {Type: IntentMove, Move: game.EventMoveUp},
			'd': {Type: IntentMove, Move: game.EventMoveRight},
			's': {Type: IntentMove, Move: game.EventMoveDown},
			'a': {Type: IntentMove, Move: game.EventMoveLeft},
			'q': {Type: IntentQuit},
			'r': {Type: IntentRestart},
		},
	}
}

// Lookup resolves a key event, IntentNone for unmapped keys
func (t *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		if intent, ok := t.Runes[unicode.ToLower(ev.Rune())]; ok {
			return intent
		}
		return Intent{}
	}
	if intent, ok := t.SpecialKeys[ev.Key()]; ok {
		return intent
	}
	return Intent{}
}

// Translate resolves any terminal event
func (t *KeyTable) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.Lookup(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}
