package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/grid-arcade/audio"
	"github.com/lixenwraith/grid-arcade/config"
	"github.com/lixenwraith/grid-arcade/engine"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to initialize simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func screenText(screen tcell.SimulationScreen) string {
	cells, w, _ := screen.GetContents()
	var sb strings.Builder
	for i, c := range cells {
		if len(c.Runes) > 0 {
			sb.WriteRune(c.Runes[0])
		} else {
			sb.WriteByte(' ')
		}
		if (i+1)%w == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func testSession(t *testing.T, game string, screen tcell.Screen) *session {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 1
	s, err := newSession(game, cfg, screen, audio.NewSoundManager(0), zerolog.Nop())
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	return s
}

func TestNewSessionRejectsTinyTerminal(t *testing.T) {
	screen := newTestScreen(t, 3, 3)
	if _, err := newSession(config.GameSnake, config.Default(), screen, audio.NewSoundManager(0), zerolog.Nop()); err == nil {
		t.Error("expected terminal too small error")
	}
	if _, err := newSession("pong", config.Default(), screen, audio.NewSoundManager(0), zerolog.Nop()); err == nil {
		t.Error("expected unknown game error")
	}
}

func TestSnakeSessionFitsTerminal(t *testing.T) {
	screen := newTestScreen(t, 40, 20)
	s := testSession(t, config.GameSnake, screen)

	actions := make(chan engine.Action, 1)
	actions <- engine.ActionQuit
	reason, err := s.play(context.Background(), actions)
	if err != nil || reason != engine.StopQuit {
		t.Fatalf("play = %v, %v; want quit", reason, err)
	}

	// Border drawn at the field edges, HUD on the last row
	if ch, _, _, _ := screen.GetContent(39, 18); ch != tcell.RuneLRCorner {
		t.Errorf("bottom-right corner = %q", ch)
	}
	if !strings.Contains(screenText(screen), "Speed") {
		t.Error("HUD missing")
	}
}

func TestBlocksSessionRunsToGameOver(t *testing.T) {
	screen := newTestScreen(t, 50, 24)
	s := testSession(t, config.GameBlocks, screen)

	actions := make(chan engine.Action)
	done := make(chan struct{})
	defer close(done)

	// Hard drops stack pieces in the middle columns until the spawn is blocked,
	// then keep pressing so the summary screen is dismissed
	go func() {
		for {
			select {
			case <-done:
				return
			case actions <- engine.ActionDrop:
				time.Sleep(2 * time.Millisecond)
			}
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reason, err := s.play(ctx, actions)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if reason != engine.StopGameOver {
		t.Fatalf("reason = %v, want game over", reason)
	}
	if !s.game.Over() {
		t.Error("game should be over")
	}
	if !strings.Contains(screenText(screen), "Final Score: 0") {
		t.Errorf("summary screen missing:\n%s", screenText(screen))
	}
}

func TestSessionCancelled(t *testing.T) {
	screen := newTestScreen(t, 50, 24)
	s := testSession(t, config.GameBlocks, screen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	reason, err := s.play(ctx, make(chan engine.Action))
	if reason != engine.StopCancelled || err == nil {
		t.Errorf("play = %v, %v; want cancelled with error", reason, err)
	}
}

func TestPollInputTranslatesKeys(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	s := testSession(t, config.GameBlocks, screen)

	actions := make(chan engine.Action, 8)
	go pollInput(screen, s.keys, actions)

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	screen.InjectKey(tcell.KeyEsc, 0, tcell.ModNone)

	want := []engine.Action{engine.ActionDrop, engine.ActionNone, engine.ActionQuit}
	for i, w := range want {
		select {
		case got := <-actions:
			if got != w {
				t.Errorf("action %d = %v, want %v", i, got, w)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for action %d", i)
		}
	}
}
