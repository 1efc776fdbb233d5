package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lixenwraith/grid-arcade/config"
)

// newPicker builds the game menu; onPick receives the chosen game, or "" to quit
func newPicker(onPick func(game string)) *tview.List {
	list := tview.NewList().
		AddItem("Snake", "Eat food, grow longer, avoid the walls and yourself", 's', func() {
			onPick(config.GameSnake)
		}).
		AddItem("Blocks", "Rotate falling pieces and clear full rows", 'b', func() {
			onPick(config.GameBlocks)
		}).
		AddItem("Quit", "", 'q', func() {
			onPick("")
		})
	list.SetDoneFunc(func() { onPick("") })
	list.SetBorder(true).SetTitle(" grid arcade ")
	return list
}

// pickGame shows the menu full screen until a choice is made. A nil screen
// lets tview open the terminal itself.
func pickGame(screen tcell.Screen) (string, error) {
	app := tview.NewApplication()
	if screen != nil {
		app.SetScreen(screen)
	}

	var choice string
	list := newPicker(func(game string) {
		choice = game
		app.Stop()
	})

	if err := app.SetRoot(list, true).Run(); err != nil {
		return "", err
	}
	return choice, nil
}
