package constants

// UI Layout Constants
const (
	// BlocksCellWidth is the number of terminal columns drawn per board cell
	BlocksCellWidth = 2

	// BlocksPanelGap separates the board from the side panel
	BlocksPanelGap = 3

	// HUDRows is the number of rows reserved under the snake field for the status line
	HUDRows = 1
)

// UI Text
const (
	TextGameOver  = "GAME OVER!"
	TextPaused    = " PAUSED "
	TextExitHint  = "Press any key to exit"
	TextNextPiece = "Next:"
)
