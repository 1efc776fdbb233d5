package blocks

import (
	"time"

	"github.com/lixenwraith/grid-arcade/engine"
)

func dropOutcome(r DropResult, advanced bool) engine.Outcome {
	out := engine.Outcome{Event: engine.EventMoved, Advanced: advanced}
	switch {
	case r.GameOver:
		out.Event = engine.EventGameOver
	case r.Locked:
		out.Event = engine.EventLocked
	}
	out.Lines = r.Lines
	return out
}

// Step implements engine.Game as one automatic gravity step
func (e *Engine) Step() engine.Outcome {
	return dropOutcome(e.Drop(), false)
}

// Apply implements engine.Game: left/right shift, up rotates, down soft-drops, drop hard-drops
func (e *Engine) Apply(a engine.Action) engine.Outcome {
	if e.gameOver {
		return engine.Outcome{}
	}

	var ok bool
	switch a {
	case engine.ActionLeft:
		ok = e.Move(-1, 0)
	case engine.ActionRight:
		ok = e.Move(1, 0)
	case engine.ActionUp:
		ok = e.Rotate()
	case engine.ActionDown:
		return dropOutcome(e.Drop(), true)
	case engine.ActionDrop:
		return dropOutcome(e.HardDrop(), true)
	}

	if !ok {
		return engine.Outcome{}
	}
	return engine.Outcome{Event: engine.EventMoved}
}

// Interval implements engine.Game
func (e *Engine) Interval() time.Duration { return e.fall }

// Over implements engine.Game
func (e *Engine) Over() bool { return e.gameOver }

var _ engine.Game = (*Engine)(nil)
