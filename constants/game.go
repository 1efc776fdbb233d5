package constants

import "time"

// Game Loop Timing Constants
const (
	// InputPollInterval is how often the loop re-checks the clock while paused
	InputPollInterval = 10 * time.Millisecond
)

// Snake Constants
const (
	// SnakeInitialInterval is the starting delay between snake moves
	SnakeInitialInterval = 150 * time.Millisecond

	// SnakeMinInterval is the floor below which eating no longer speeds the snake up
	SnakeMinInterval = 50 * time.Millisecond

	// SnakeSpeedFactor shrinks the move interval on every food eaten
	SnakeSpeedFactor = 0.95

	// SnakeFoodScore is awarded per food eaten
	SnakeFoodScore = 10
)

// Block Game Constants
const (
	// BlocksWidth and BlocksHeight are the fixed board dimensions
	BlocksWidth  = 10
	BlocksHeight = 20

	// BlocksBaseFall is the fall interval at level 1
	BlocksBaseFall = time.Second

	// BlocksFallStep is subtracted from the fall interval per level gained
	BlocksFallStep = 100 * time.Millisecond

	// BlocksMinFall clamps the fall interval
	BlocksMinFall = 200 * time.Millisecond

	// BlocksLinesPerLevel is the number of cleared lines per level
	BlocksLinesPerLevel = 10

	// BlocksLineScore is multiplied by cleared rows and current level
	BlocksLineScore = 100

	// BlocksPaletteSize is the number of color tags a piece can carry (tags 1..N)
	BlocksPaletteSize = 7
)
