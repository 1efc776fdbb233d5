package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/grid-arcade/constants"
)

// StopReason reports why Run returned
type StopReason uint8

const (
	StopQuit StopReason = iota
	StopGameOver
	StopCancelled
)

func (r StopReason) String() string {
	switch r {
	case StopQuit:
		return "quit"
	case StopGameOver:
		return "game_over"
	default:
		return "cancelled"
	}
}

// FrameFunc is invoked after every state change so the caller can redraw and play cues
type FrameFunc func(Outcome)

// Scheduler steps a Game on its own interval and applies input between ticks.
// All game access happens on the goroutine that calls Run, Advance, or Apply.
type Scheduler struct {
	game  Game
	clock *PausableClock
	frame FrameFunc
	log   zerolog.Logger

	lastStep     time.Time // game time of the last gravity step
	pollInterval time.Duration
	ticks        uint64
}

// NewScheduler creates a scheduler whose first tick is due one interval from now
func NewScheduler(game Game, clock *PausableClock, frame FrameFunc, logger zerolog.Logger) *Scheduler {
	if frame == nil {
		frame = func(Outcome) {}
	}
	return &Scheduler{
		game:         game,
		clock:        clock,
		frame:        frame,
		log:          logger,
		lastStep:     clock.Now(),
		pollInterval: constants.InputPollInterval,
	}
}

// Advance steps the game once if more than one interval of game time has
// elapsed since the last step. Returns the step outcome and whether a step ran.
func (s *Scheduler) Advance() (Outcome, bool) {
	if s.game.Over() || s.clock.IsPaused() {
		return Outcome{}, false
	}

	now := s.clock.Now()
	if now.Sub(s.lastStep) <= s.game.Interval() {
		return Outcome{}, false
	}

	out := s.game.Step()
	s.lastStep = now
	s.ticks++

	if out.Event == EventGameOver {
		s.log.Info().Uint64("tick", s.ticks).Msg("game over")
	} else if out.Event != EventMoved {
		s.log.Debug().Stringer("event", out.Event).Int("lines", out.Lines).Uint64("tick", s.ticks).Msg("step")
	}
	s.frame(out)
	return out, true
}

// Apply handles one input action. Quit is reported to the caller, pause
// toggles the game clock, everything else goes to the game unless paused.
func (s *Scheduler) Apply(a Action) (quit bool) {
	switch a {
	case ActionNone:
		return false
	case ActionQuit:
		return true
	case ActionRedraw:
		s.frame(Outcome{})
		return false
	case ActionPause:
		if s.game.Over() {
			return false
		}
		paused := s.clock.Toggle()
		s.log.Debug().Bool("paused", paused).Msg("pause toggled")
		s.frame(Outcome{})
		return false
	}

	if s.clock.IsPaused() {
		return false
	}

	out := s.game.Apply(a)
	if out.Advanced {
		// A manual drop restarts the fall timer
		s.lastStep = s.clock.Now()
	}
	if out.Event == EventGameOver {
		s.log.Info().Stringer("action", a).Msg("game over")
	}
	s.frame(out)
	return false
}

// untilDue returns how long to wait before the next tick can be due
func (s *Scheduler) untilDue() time.Duration {
	if s.clock.IsPaused() {
		return s.pollInterval
	}
	wait := s.game.Interval() - s.clock.Now().Sub(s.lastStep)
	if wait < 0 {
		return 0
	}
	// Elapsed must exceed the interval, so wake just past it
	return wait + time.Millisecond
}

// Run drives the game until quit, game over, or context cancellation.
// Input never delays a due tick: the wait is re-armed after every action.
func (s *Scheduler) Run(ctx context.Context, actions <-chan Action) (StopReason, error) {
	timer := time.NewTimer(s.untilDue())
	defer timer.Stop()

	s.frame(Outcome{})

	for {
		select {
		case <-ctx.Done():
			return StopCancelled, ctx.Err()

		case a, ok := <-actions:
			if !ok || s.Apply(a) {
				return StopQuit, nil
			}

		case <-timer.C:
			s.Advance()
		}

		if s.game.Over() {
			return StopGameOver, nil
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(s.untilDue())
	}
}

// Ticks returns the number of automatic steps taken
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}
