// Package input translates terminal key events into game actions
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-arcade/engine"
)

// KeyTable maps keys to actions for one game
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	Keys map[tcell.Key]engine.Action
	// Printable rune bindings
	Runes map[rune]engine.Action
}

// commonKeys are bound in every game
var commonKeys = map[tcell.Key]engine.Action{
	tcell.KeyCtrlC: engine.ActionQuit,
	tcell.KeyEsc:   engine.ActionQuit,
	tcell.KeyUp:    engine.ActionUp,
	tcell.KeyDown:  engine.ActionDown,
	tcell.KeyLeft:  engine.ActionLeft,
	tcell.KeyRight: engine.ActionRight,
}

// DefaultSnakeKeys binds arrows, WASD, and hjkl to the four directions
func DefaultSnakeKeys() *KeyTable {
	return &KeyTable{
		Keys: copyKeys(commonKeys),
		Runes: map[rune]engine.Action{
			'w': engine.ActionUp,
			's': engine.ActionDown,
			'a': engine.ActionLeft,
			'd': engine.ActionRight,
			'k': engine.ActionUp,
			'j': engine.ActionDown,
			'h': engine.ActionLeft,
			'l': engine.ActionRight,
			'p': engine.ActionPause,
			'q': engine.ActionQuit,
		},
	}
}

// DefaultBlocksKeys binds left/right to shifts, up/w to rotate, down/s to
// soft drop, and space to hard drop
func DefaultBlocksKeys() *KeyTable {
	return &KeyTable{
		Keys: copyKeys(commonKeys),
		Runes: map[rune]engine.Action{
			'a': engine.ActionLeft,
			'd': engine.ActionRight,
			'w': engine.ActionUp,
			's': engine.ActionDown,
			' ': engine.ActionDrop,
			'p': engine.ActionPause,
			'q': engine.ActionQuit,
		},
	}
}

func copyKeys(src map[tcell.Key]engine.Action) map[tcell.Key]engine.Action {
	dst := make(map[tcell.Key]engine.Action, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// Lookup returns the action bound to ev, or ActionNone
func (kt *KeyTable) Lookup(ev *tcell.EventKey) engine.Action {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if a, ok := kt.Runes[r]; ok {
			return a
		}
		// Caps lock should not disable letter bindings
		if r >= 'A' && r <= 'Z' {
			return kt.Runes[r+('a'-'A')]
		}
		return engine.ActionNone
	}
	return kt.Keys[ev.Key()]
}

// Merge applies override bindings on top of kt; ActionNone entries unbind
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	for k, a := range override.Keys {
		if a == engine.ActionNone {
			delete(kt.Keys, k)
			continue
		}
		kt.Keys[k] = a
	}
	for r, a := range override.Runes {
		if a == engine.ActionNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = a
	}
}
