package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/grid-arcade/constants"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(constants.AudioDefaultVolume)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayEat()
	sm.PlayClear(4)
	sm.PlayGameOver()
	sm.Cleanup()

	if sm.Initialized() {
		t.Error("manager should report uninitialized")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(constants.AudioDefaultVolume)

	// Speaker initialization may fail without an audio device; the game runs silently
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization is a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlayEat()
	sm.PlayClear(2)
	sm.Cleanup()

	if sm.Initialized() {
		t.Error("Cleanup should reset initialized")
	}
	// Operations after cleanup are ignored
	sm.PlayGameOver()
}

func TestEatSoundLength(t *testing.T) {
	n, peak := drain(t, CreateEatSound(sampleRate, 1))
	if want := sampleRate.N(constants.EatSoundDuration); n != want {
		t.Errorf("eat sound = %d samples, want %d", n, want)
	}
	if peak == 0 {
		t.Error("eat sound is silent")
	}
}

func TestClearSoundNotePerLine(t *testing.T) {
	note := sampleRate.N(constants.ClearSoundDuration)
	tests := []struct {
		lines int
		notes int
	}{
		{1, 1},
		{2, 2},
		{4, 4},
		{6, 4}, // clamped to the arpeggio length
	}
	for _, tt := range tests {
		n, _ := drain(t, CreateClearSound(sampleRate, tt.lines, 1))
		if n != tt.notes*note {
			t.Errorf("lines=%d: %d samples, want %d", tt.lines, n, tt.notes*note)
		}
	}

	if CreateClearSound(sampleRate, 0, 1) != nil {
		t.Error("zero lines should produce no sound")
	}
}

func TestGameOverSound(t *testing.T) {
	n, peak := drain(t, CreateGameOverSound(sampleRate, 1))
	if want := sampleRate.N(constants.GameOverSoundDuration); n != want {
		t.Errorf("game over sound = %d samples, want %d", n, want)
	}
	if peak == 0 || peak > 1 {
		t.Errorf("peak amplitude %f out of range", peak)
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, CreateEatSound(sampleRate, 0))
	if peak != 0 {
		t.Errorf("zero volume peak = %f", peak)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := newEnvelope(newSweep(100, 100, 0, rate), 0, 0, 0, rate)
	if n, _ := drain(t, env); n != 0 {
		t.Errorf("zero-length envelope produced %d samples", n)
	}

	// Constant +1 source shows the gain curve directly
	ones := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	env = newEnvelope(ones, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)
	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("got %d samples, want 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("attack should start at zero, got %f", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain should be full gain, got %f", buf[50][0])
	}
	if buf[99][0] >= buf[85][0] {
		t.Error("release should fade out")
	}
}
