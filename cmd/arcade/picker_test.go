package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lixenwraith/grid-arcade/config"
)

func pressKey(list *tview.List, key tcell.Key, ch rune) {
	list.InputHandler()(tcell.NewEventKey(key, ch, tcell.ModNone), func(tview.Primitive) {})
}

func TestPickerShortcuts(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
		want string
	}{
		{"snake shortcut", tcell.KeyRune, 's', config.GameSnake},
		{"blocks shortcut", tcell.KeyRune, 'b', config.GameBlocks},
		{"quit shortcut", tcell.KeyRune, 'q', ""},
		{"enter selects first", tcell.KeyEnter, 0, config.GameSnake},
		{"escape quits", tcell.KeyEscape, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			picked := "unset"
			list := newPicker(func(game string) { picked = game })
			pressKey(list, tt.key, tt.ch)
			if picked != tt.want {
				t.Errorf("picked %q, want %q", picked, tt.want)
			}
		})
	}
}

func TestPickerItems(t *testing.T) {
	list := newPicker(func(string) {})
	if n := list.GetItemCount(); n != 3 {
		t.Fatalf("items = %d, want 3", n)
	}
	if main, _ := list.GetItemText(1); main != "Blocks" {
		t.Errorf("second item = %q", main)
	}
}
