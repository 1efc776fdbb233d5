package random

import "testing"

func TestSequenceReplaysModulo(t *testing.T) {
	s := NewSequence(3, 12, -1)

	want := []int{3, 2, 9, 3}
	bounds := []int{10, 10, 10, 10}
	for i, n := range bounds {
		if got := s.Intn(n); got != want[i] {
			t.Errorf("draw %d: got %d, want %d", i, got, want[i])
		}
	}
	if s.Calls() != 4 {
		t.Errorf("Calls = %d, want 4", s.Calls())
	}
}

func TestEmptySequenceYieldsZero(t *testing.T) {
	s := NewSequence()
	for i := 0; i < 3; i++ {
		if got := s.Intn(7); got != 0 {
			t.Errorf("got %d, want 0", got)
		}
	}
}

func TestSeededSourcesAgree(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		x, y := a.Intn(1000), b.Intn(1000)
		if x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
		if x < 0 || x >= 1000 {
			t.Fatalf("draw %d out of range: %d", i, x)
		}
	}
}
