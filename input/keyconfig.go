package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-multierror"

	"github.com/lixenwraith/grid-arcade/engine"
)

// actionRegistry maps config action names to actions
var actionRegistry = map[string]engine.Action{
	"none":      engine.ActionNone,
	"up":        engine.ActionUp,
	"down":      engine.ActionDown,
	"left":      engine.ActionLeft,
	"right":     engine.ActionRight,
	"rotate":    engine.ActionUp,
	"soft_drop": engine.ActionDown,
	"drop":      engine.ActionDrop,
	"hard_drop": engine.ActionDrop,
	"pause":     engine.ActionPause,
	"quit":      engine.ActionQuit,
}

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialKeys resolves lowercase tcell key names ("up", "esc", "ctrl-c")
var specialKeys = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	m["escape"] = tcell.KeyEsc
	return m
}()

// ParseBindings builds a sparse override table from key-name to
// action-name pairs. Every invalid entry is reported, not just the first.
func ParseBindings(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Keys:  make(map[tcell.Key]engine.Action),
		Runes: make(map[rune]engine.Action),
	}

	var result *multierror.Error
	for keyStr, actionName := range bindings {
		action, ok := actionRegistry[strings.ToLower(actionName)]
		if !ok {
			result = multierror.Append(result, fmt.Errorf("key %q: unknown action %q", keyStr, actionName))
			continue
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = action
			continue
		}
		if k, ok := specialKeys[strings.ToLower(keyStr)]; ok {
			kt.Keys[k] = action
			continue
		}
		result = multierror.Append(result, fmt.Errorf("key %q: unknown key name", keyStr))
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return kt, nil
}

// resolveRune accepts a single printable character or a rune alias
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r < ' ' || r == 0x7f {
		return 0, false
	}
	return r, true
}
