// Package blocks implements the falling-block puzzle simulation: a fixed
// well, a falling tetromino with a queued successor, line clears, and
// level-driven fall speed.
package blocks

import (
	"time"

	"github.com/lixenwraith/grid-arcade/constants"
	"github.com/lixenwraith/grid-arcade/random"
)

// Config holds board geometry and the scoring and pacing rules
type Config struct {
	Width         int
	Height        int
	BaseFall      time.Duration
	FallStep      time.Duration
	MinFall       time.Duration
	LinesPerLevel int
	LineScore     int
	PaletteSize   int
}

// DefaultConfig returns the standard 10x20 rules
func DefaultConfig() Config {
	return Config{
		Width:         constants.BlocksWidth,
		Height:        constants.BlocksHeight,
		BaseFall:      constants.BlocksBaseFall,
		FallStep:      constants.BlocksFallStep,
		MinFall:       constants.BlocksMinFall,
		LinesPerLevel: constants.BlocksLinesPerLevel,
		LineScore:     constants.BlocksLineScore,
		PaletteSize:   constants.BlocksPaletteSize,
	}
}

// DropResult describes one gravity step
type DropResult struct {
	// Locked is set when the piece could not fall and became part of the board
	Locked bool
	// Lines is the number of rows the lock cleared
	Lines int
	// GameOver is set when the successor piece could not spawn
	GameOver bool
}

// Engine owns all block game state
type Engine struct {
	cfg   Config
	rng   random.Source
	board *Board

	current Piece
	next    Piece

	score    int
	level    int
	lines    int
	fall     time.Duration
	gameOver bool
}

// New creates an empty board with a current and a queued piece
func New(cfg Config, rng random.Source) *Engine {
	e := &Engine{
		cfg:   cfg,
		rng:   rng,
		board: NewBoard(cfg.Width, cfg.Height),
		level: 1,
		fall:  cfg.BaseFall,
	}
	e.current = e.newPiece()
	e.next = e.newPiece()
	return e
}

// newPiece draws a uniformly random kind and color and anchors it centred at the top
func (e *Engine) newPiece() Piece {
	kind := Kind(e.rng.Intn(int(KindCount)))
	color := Color(1 + e.rng.Intn(e.cfg.PaletteSize))
	return Piece{
		Kind:  kind,
		Row:   0,
		Col:   e.cfg.Width/2 - 2,
		Color: color,
	}
}

// Valid reports whether p shifted by (dx, dy) at the given rotation fits the
// board. Cells above row 0 are always allowed.
func (e *Engine) Valid(p Piece, dx, dy, rotation int) bool {
	for _, c := range p.cellsAt(dx, dy, rotation) {
		if c.Col < 0 || c.Col >= e.board.width || c.Row >= e.board.height {
			return false
		}
		if c.Row >= 0 && e.board.rows[c.Row][c.Col] != Empty {
			return false
		}
	}
	return true
}

// ValidAt is Valid at the piece's current rotation
func (e *Engine) ValidAt(p Piece, dx, dy int) bool {
	return e.Valid(p, dx, dy, p.Rotation)
}

// Move shifts the current piece if the destination is valid
func (e *Engine) Move(dx, dy int) bool {
	if e.gameOver || !e.ValidAt(e.current, dx, dy) {
		return false
	}
	e.current.Col += dx
	e.current.Row += dy
	return true
}

// Rotate advances the rotation state in place; blocked rotations are rejected with no kick
func (e *Engine) Rotate() bool {
	if e.gameOver {
		return false
	}
	r := (e.current.Rotation + 1) % e.current.Kind.Rotations()
	if !e.Valid(e.current, 0, 0, r) {
		return false
	}
	e.current.Rotation = r
	return true
}

// Drop moves the current piece down one row, locking it if it cannot fall
func (e *Engine) Drop() DropResult {
	if e.gameOver {
		return DropResult{GameOver: true}
	}
	if e.Move(0, 1) {
		return DropResult{}
	}
	n := e.LockAndAdvance()
	return DropResult{Locked: true, Lines: n, GameOver: e.gameOver}
}

// HardDrop lets the current piece fall to its resting row and locks it
func (e *Engine) HardDrop() DropResult {
	if e.gameOver {
		return DropResult{GameOver: true}
	}
	for e.Move(0, 1) {
	}
	n := e.LockAndAdvance()
	return DropResult{Locked: true, Lines: n, GameOver: e.gameOver}
}

// LockAndAdvance writes the current piece into the board, clears complete
// rows, updates scoring, and promotes the queued piece. Returns rows cleared.
func (e *Engine) LockAndAdvance() int {
	for _, c := range e.current.Cells() {
		if c.Row >= 0 {
			e.board.Set(c.Row, c.Col, e.current.Color)
		}
	}

	n := e.board.ClearLines()
	e.award(n)

	e.current = e.next
	e.next = e.newPiece()

	if !e.ValidAt(e.current, 0, 0) {
		e.gameOver = true
	}
	return n
}

// award applies score for n cleared rows at the current level, then recomputes level and fall speed
func (e *Engine) award(n int) {
	e.score += n * e.cfg.LineScore * e.level
	e.lines += n
	e.level = e.lines/e.cfg.LinesPerLevel + 1
	e.fall = e.cfg.BaseFall - time.Duration(e.level-1)*e.cfg.FallStep
	if e.fall < e.cfg.MinFall {
		e.fall = e.cfg.MinFall
	}
}

// Ghost returns the current piece moved down to where a hard drop would rest it
func (e *Engine) Ghost() Piece {
	g := e.current
	for e.ValidAt(g, 0, 1) {
		g.Row++
	}
	return g
}

// Board returns a deep copy of the locked cells
func (e *Engine) Board() [][]Color { return e.board.Rows() }

func (e *Engine) Width() int                  { return e.board.width }
func (e *Engine) Height() int                 { return e.board.height }
func (e *Engine) Current() Piece              { return e.current }
func (e *Engine) Next() Piece                 { return e.next }
func (e *Engine) Score() int                  { return e.score }
func (e *Engine) Level() int                  { return e.level }
func (e *Engine) Lines() int                  { return e.lines }
func (e *Engine) FallInterval() time.Duration { return e.fall }
func (e *Engine) GameOver() bool              { return e.gameOver }

// Snapshot is a read-only copy of the state a renderer needs
type Snapshot struct {
	Board    [][]Color
	Current  Piece
	Ghost    Piece
	Next     Piece
	Score    int
	Level    int
	Lines    int
	GameOver bool
}

// Snapshot captures the current state
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Board:    e.board.Rows(),
		Current:  e.current,
		Ghost:    e.Ghost(),
		Next:     e.next,
		Score:    e.score,
		Level:    e.level,
		Lines:    e.lines,
		GameOver: e.gameOver,
	}
}
