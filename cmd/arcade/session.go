package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/grid-arcade/audio"
	"github.com/lixenwraith/grid-arcade/blocks"
	"github.com/lixenwraith/grid-arcade/config"
	"github.com/lixenwraith/grid-arcade/constants"
	"github.com/lixenwraith/grid-arcade/engine"
	"github.com/lixenwraith/grid-arcade/input"
	"github.com/lixenwraith/grid-arcade/random"
	"github.com/lixenwraith/grid-arcade/render"
	"github.com/lixenwraith/grid-arcade/snake"
)

// gameOverHold keeps the final board visible before the summary screen
const gameOverHold = 750 * time.Millisecond

// session wires one game to the screen, speaker, and key table
type session struct {
	name     string
	game     engine.Game
	clock    *engine.PausableClock
	renderer *render.TerminalRenderer
	sounds   *audio.SoundManager
	keys     *input.KeyTable
	log      zerolog.Logger

	draw  func(paused bool)
	score func() int
}

func newSession(name string, cfg *config.Config, screen tcell.Screen, sounds *audio.SoundManager, logger zerolog.Logger) (*session, error) {
	keys, err := cfg.KeyTable(name)
	if err != nil {
		return nil, err
	}

	s := &session{
		name:     name,
		clock:    engine.NewPausableClock(engine.NewMonotonicTimeProvider()),
		renderer: render.NewTerminalRenderer(screen),
		sounds:   sounds,
		keys:     keys,
		log:      logger.With().Str("game", name).Logger(),
	}
	rng := random.New(cfg.Seed)

	switch name {
	case config.GameSnake:
		w, h := screen.Size()
		sc := cfg.SnakeEngine(h-1-constants.HUDRows, w-1)
		if sc.Bounds.InteriorRows() < 2 || sc.Bounds.InteriorCols() < 2 {
			return nil, fmt.Errorf("terminal too small for snake: %dx%d", w, h)
		}
		eng := snake.New(sc, rng)
		s.game = eng
		s.draw = func(paused bool) { s.renderer.RenderSnake(eng.Snapshot(), paused) }
		s.score = eng.Score
		s.log.Info().Int("max_row", sc.Bounds.MaxRow).Int("max_col", sc.Bounds.MaxCol).Msg("session started")

	case config.GameBlocks:
		eng := blocks.New(cfg.BlocksEngine(), rng)
		s.game = eng
		s.draw = func(paused bool) { s.renderer.RenderBlocks(eng.Snapshot(), paused) }
		s.score = eng.Score
		s.log.Info().Int("width", eng.Width()).Int("height", eng.Height()).Msg("session started")

	default:
		return nil, fmt.Errorf("unknown game %q", name)
	}
	return s, nil
}

// onFrame plays the cue for what just happened and redraws
func (s *session) onFrame(out engine.Outcome) {
	switch out.Event {
	case engine.EventAte:
		s.sounds.PlayEat()
	case engine.EventLocked:
		if out.Lines > 0 {
			s.sounds.PlayClear(out.Lines)
		}
	case engine.EventGameOver:
		s.sounds.PlayGameOver()
	}
	s.draw(s.clock.IsPaused())
}

// play runs the game to completion. After a game over the final frame is
// held, then the summary waits for any key.
func (s *session) play(ctx context.Context, actions <-chan engine.Action) (engine.StopReason, error) {
	sched := engine.NewScheduler(s.game, s.clock, s.onFrame, s.log)
	reason, err := sched.Run(ctx, actions)
	s.log.Info().Stringer("reason", reason).Int("score", s.score()).Uint64("ticks", sched.Ticks()).Msg("session ended")
	if reason != engine.StopGameOver {
		return reason, err
	}

	hold := time.NewTimer(gameOverHold)
	defer hold.Stop()
	for waiting := true; waiting; {
		select {
		case <-ctx.Done():
			return engine.StopCancelled, ctx.Err()
		case a, ok := <-actions:
			if !ok {
				return reason, nil
			}
			// Keep redrawing the board on resize; other keys are swallowed so
			// a held key does not skip the summary
			if a == engine.ActionRedraw {
				s.draw(false)
			}
		case <-hold.C:
			waiting = false
		}
	}

	s.renderer.RenderGameOver(s.score())
	for {
		select {
		case <-ctx.Done():
			return engine.StopCancelled, ctx.Err()
		case a, ok := <-actions:
			if !ok {
				return reason, nil
			}
			if a == engine.ActionRedraw {
				s.renderer.RenderGameOver(s.score())
				continue
			}
			return reason, nil
		}
	}
}

// pollInput translates terminal events into actions until the screen closes.
// Every key is forwarded, unbound ones as ActionNone, so "press any key" works.
func pollInput(screen tcell.Screen, keys *input.KeyTable, actions chan<- engine.Action) {
	defer close(actions)
	// Panic recovery for the input goroutine; restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			actions <- keys.Lookup(ev)
		case *tcell.EventResize:
			screen.Sync()
			actions <- engine.ActionRedraw
		}
	}
}
