package input

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-arcade/engine"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func specialKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestSnakeDefaults(t *testing.T) {
	kt := DefaultSnakeKeys()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want engine.Action
	}{
		{"arrow up", specialKey(tcell.KeyUp), engine.ActionUp},
		{"arrow left", specialKey(tcell.KeyLeft), engine.ActionLeft},
		{"w", runeKey('w'), engine.ActionUp},
		{"j", runeKey('j'), engine.ActionDown},
		{"capital D", runeKey('D'), engine.ActionRight},
		{"q", runeKey('q'), engine.ActionQuit},
		{"esc", specialKey(tcell.KeyEsc), engine.ActionQuit},
		{"ctrl-c", specialKey(tcell.KeyCtrlC), engine.ActionQuit},
		{"p", runeKey('p'), engine.ActionPause},
		{"unbound", runeKey('z'), engine.ActionNone},
		{"space unbound", runeKey(' '), engine.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Lookup(tt.ev); got != tt.want {
				t.Errorf("Lookup = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlocksDefaults(t *testing.T) {
	kt := DefaultBlocksKeys()
	if got := kt.Lookup(runeKey(' ')); got != engine.ActionDrop {
		t.Errorf("space = %v, want drop", got)
	}
	if got := kt.Lookup(runeKey('s')); got != engine.ActionDown {
		t.Errorf("s = %v, want down", got)
	}
	if got := kt.Lookup(runeKey('h')); got != engine.ActionNone {
		t.Errorf("h should be unbound in blocks, got %v", got)
	}
}

func TestDefaultsAreIndependent(t *testing.T) {
	a := DefaultSnakeKeys()
	a.Keys[tcell.KeyUp] = engine.ActionQuit
	if b := DefaultSnakeKeys(); b.Keys[tcell.KeyUp] != engine.ActionUp {
		t.Error("mutating one table leaked into the shared defaults")
	}
}

func TestParseBindingsAndMerge(t *testing.T) {
	override, err := ParseBindings(map[string]string{
		"x":     "hard_drop",
		"space": "none",
		"Enter": "rotate",
		"q":     "none",
	})
	if err != nil {
		t.Fatalf("ParseBindings: %v", err)
	}

	kt := DefaultBlocksKeys()
	kt.Merge(override)

	if got := kt.Lookup(runeKey('x')); got != engine.ActionDrop {
		t.Errorf("x = %v, want drop", got)
	}
	if got := kt.Lookup(runeKey(' ')); got != engine.ActionNone {
		t.Errorf("space should be unbound, got %v", got)
	}
	if got := kt.Lookup(specialKey(tcell.KeyEnter)); got != engine.ActionUp {
		t.Errorf("enter = %v, want up", got)
	}
	if got := kt.Lookup(runeKey('q')); got != engine.ActionNone {
		t.Errorf("q should be unbound, got %v", got)
	}
	// Esc still quits
	if got := kt.Lookup(specialKey(tcell.KeyEsc)); got != engine.ActionQuit {
		t.Errorf("esc = %v, want quit", got)
	}
}

func TestParseBindingsReportsEveryError(t *testing.T) {
	_, err := ParseBindings(map[string]string{
		"x":       "fly",
		"notakey": "left",
		"y":       "left",
		"\x01":    "up",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{`unknown action "fly"`, `"notakey": unknown key name`, "3 errors"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing %q", msg, want)
		}
	}
}

func TestMergeNil(t *testing.T) {
	kt := DefaultSnakeKeys()
	kt.Merge(nil)
	if kt.Lookup(runeKey('w')) != engine.ActionUp {
		t.Error("Merge(nil) changed bindings")
	}
}
