// Package snake implements the snake simulation: a head-first body moving
// one cell per tick inside a walled field, growing when it eats food.
package snake

import (
	"time"

	"github.com/lixenwraith/grid-arcade/constants"
	"github.com/lixenwraith/grid-arcade/grid"
	"github.com/lixenwraith/grid-arcade/random"
)

// Result is the outcome of a single Tick
type Result uint8

const (
	// Moved means the snake advanced without eating
	Moved Result = iota
	// Ate means the snake advanced onto food and grew by one
	Ate
	// Collided means the snake hit a wall or itself; terminal
	Collided
)

// Config holds the field geometry and pacing rules
type Config struct {
	Bounds          grid.Bounds
	InitialInterval time.Duration
	MinInterval     time.Duration
	SpeedFactor     float64
	FoodScore       int
}

// DefaultConfig returns the standard rules for a field walled at the given rows and columns
func DefaultConfig(maxRow, maxCol int) Config {
	return Config{
		Bounds:          grid.Bounds{MaxRow: maxRow, MaxCol: maxCol},
		InitialInterval: constants.SnakeInitialInterval,
		MinInterval:     constants.SnakeMinInterval,
		SpeedFactor:     constants.SnakeSpeedFactor,
		FoodScore:       constants.SnakeFoodScore,
	}
}

// Engine owns all snake game state
type Engine struct {
	cfg Config
	rng random.Source

	body      []grid.Cell // head first
	food      grid.Cell
	direction grid.Direction
	score     int
	alive     bool
	interval  time.Duration
}

// New creates a one-cell snake left of centre heading right, with food placed
func New(cfg Config, rng random.Source) *Engine {
	e := &Engine{
		cfg:       cfg,
		rng:       rng,
		body:      []grid.Cell{grid.C(cfg.Bounds.MaxRow/2, cfg.Bounds.MaxCol/4)},
		direction: grid.Right,
		alive:     true,
		interval:  cfg.InitialInterval,
	}
	e.food = e.spawnFood()
	return e
}

// NewWithBody creates an engine from an explicit body and direction, used to set up scenarios
func NewWithBody(cfg Config, rng random.Source, body []grid.Cell, dir grid.Direction, food grid.Cell) *Engine {
	b := make([]grid.Cell, len(body))
	copy(b, body)
	return &Engine{
		cfg:       cfg,
		rng:       rng,
		body:      b,
		food:      food,
		direction: dir,
		alive:     true,
		interval:  cfg.InitialInterval,
	}
}

// SetDirection changes heading unless d reverses the current one
func (e *Engine) SetDirection(d grid.Direction) {
	if d == e.direction.Opposite() {
		return
	}
	e.direction = d
}

// Tick advances the snake one cell along its heading
func (e *Engine) Tick() Result {
	if !e.alive {
		return Collided
	}

	head := e.body[0].Step(e.direction)

	// Tail is excluded from the self check since it vacates this tick
	if !e.cfg.Bounds.Interior(head) || grid.ContainsCell(e.body[:len(e.body)-1], head) {
		e.alive = false
		return Collided
	}

	e.body = append(e.body, grid.Cell{})
	copy(e.body[1:], e.body[:len(e.body)-1])
	e.body[0] = head

	if head == e.food {
		e.score += e.cfg.FoodScore
		e.food = e.spawnFood()
		e.speedUp()
		return Ate
	}

	e.body = e.body[:len(e.body)-1]
	return Moved
}

// speedUp shrinks the tick interval, never below the configured floor
func (e *Engine) speedUp() {
	if e.interval <= e.cfg.MinInterval {
		return
	}
	next := time.Duration(float64(e.interval) * e.cfg.SpeedFactor)
	if next < e.cfg.MinInterval {
		next = e.cfg.MinInterval
	}
	e.interval = next
}

// spawnFood picks a uniformly random interior cell not covered by the body.
// Rejection sampling; returns the head cell only if the body fills the field.
func (e *Engine) spawnFood() grid.Cell {
	rows, cols := e.cfg.Bounds.InteriorRows(), e.cfg.Bounds.InteriorCols()
	if rows == 0 || cols == 0 || len(e.body) >= rows*cols {
		return e.body[0]
	}
	occupied := grid.NewCellSet(e.body...)
	for {
		c := grid.C(1+e.rng.Intn(rows), 1+e.rng.Intn(cols))
		if !occupied.Has(c) {
			return c
		}
	}
}

// Body returns a copy of the body cells, head first
func (e *Engine) Body() []grid.Cell {
	b := make([]grid.Cell, len(e.body))
	copy(b, e.body)
	return b
}

func (e *Engine) Head() grid.Cell           { return e.body[0] }
func (e *Engine) Food() grid.Cell           { return e.food }
func (e *Engine) Direction() grid.Direction { return e.direction }
func (e *Engine) Score() int                { return e.score }
func (e *Engine) Alive() bool               { return e.alive }
func (e *Engine) Bounds() grid.Bounds       { return e.cfg.Bounds }

// Snapshot is a read-only copy of the state a renderer needs
type Snapshot struct {
	Body      []grid.Cell
	Food      grid.Cell
	Direction grid.Direction
	Score     int
	Alive     bool
	Bounds    grid.Bounds
	// Speed runs from 0 at the initial interval to 1 at the floor
	Speed float64
}

// Snapshot captures the current state
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Body:      e.Body(),
		Food:      e.food,
		Direction: e.direction,
		Score:     e.score,
		Alive:     e.alive,
		Bounds:    e.cfg.Bounds,
		Speed:     e.speed(),
	}
}

func (e *Engine) speed() float64 {
	span := e.cfg.InitialInterval - e.cfg.MinInterval
	if span <= 0 {
		return 1
	}
	return float64(e.cfg.InitialInterval-e.interval) / float64(span)
}
