package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Printable runes, matched case-insensitively
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings: arrows, hjkl and wasd for movement
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyEnter:  ActionStart,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'k': ActionUp,
			'j': ActionDown,
			'h': ActionLeft,
			'l': ActionRight,
			'w': ActionUp,
			's': ActionDown,
			'a': ActionLeft,
			'd': ActionRight,
			' ': ActionStart,
			'p': ActionPause,
			'q': ActionQuit,
			'1': ActionEasy,
			'2': ActionNormal,
			'3': ActionHard,
		},
	}
}

var defaultTable = DefaultKeyTable()

// Lookup returns the action bound to a key; unbound keys yield ActionNone
func (kt *KeyTable) Lookup(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		return kt.Runes[unicode.ToLower(r)]
	}
	return kt.SpecialKeys[key]
}

// Map looks a key up in the default table
func Map(key tcell.Key, r rune) Action {
	return defaultTable.Lookup(key, r)
}

// FromEvent maps a tcell key event through the default table
func FromEvent(ev *tcell.EventKey) Action {
	return Map(ev.Key(), ev.Rune())
}
