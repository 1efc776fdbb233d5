package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	expected := startTime.Add(45 * time.Minute)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after advances, got %v", expected, now)
	}
}

func TestPausableClockFreezes(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock)

	start := clock.Now()
	mock.Advance(time.Second)
	if got := clock.Now().Sub(start); got != time.Second {
		t.Fatalf("running clock advanced %v, want 1s", got)
	}

	clock.Pause()
	clock.Pause() // idempotent
	frozen := clock.Now()
	mock.Advance(5 * time.Second)
	if !clock.Now().Equal(frozen) {
		t.Errorf("paused clock moved: %v -> %v", frozen, clock.Now())
	}
	if got := clock.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("pause in progress = %v, want 5s", got)
	}

	clock.Resume()
	mock.Advance(time.Second)
	if got := clock.Now().Sub(start); got != 2*time.Second {
		t.Errorf("game time after resume = %v, want 2s", got)
	}
	if got := clock.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("total pause = %v, want 5s", got)
	}
}

func TestPausableClockToggle(t *testing.T) {
	clock := NewPausableClock(NewMockTimeProvider(time.Unix(0, 0)))

	if !clock.Toggle() || !clock.IsPaused() {
		t.Fatal("first toggle should pause")
	}
	if clock.Toggle() || clock.IsPaused() {
		t.Fatal("second toggle should resume")
	}
}
