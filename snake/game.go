package snake

import (
	"time"

	"github.com/lixenwraith/grid-arcade/engine"
	"github.com/lixenwraith/grid-arcade/grid"
)

var actionDirections = map[engine.Action]grid.Direction{
	engine.ActionUp:    grid.Up,
	engine.ActionDown:  grid.Down,
	engine.ActionLeft:  grid.Left,
	engine.ActionRight: grid.Right,
}

// Step implements engine.Game
func (e *Engine) Step() engine.Outcome {
	switch e.Tick() {
	case Ate:
		return engine.Outcome{Event: engine.EventAte}
	case Collided:
		return engine.Outcome{Event: engine.EventGameOver}
	default:
		return engine.Outcome{Event: engine.EventMoved}
	}
}

// Apply implements engine.Game; only direction actions affect the snake
func (e *Engine) Apply(a engine.Action) engine.Outcome {
	d, ok := actionDirections[a]
	if !ok || !e.alive {
		return engine.Outcome{}
	}
	before := e.direction
	e.SetDirection(d)
	if e.direction == before {
		return engine.Outcome{}
	}
	return engine.Outcome{Event: engine.EventMoved}
}

// Interval implements engine.Game
func (e *Engine) Interval() time.Duration { return e.interval }

// Over implements engine.Game
func (e *Engine) Over() bool { return !e.alive }

var _ engine.Game = (*Engine)(nil)
