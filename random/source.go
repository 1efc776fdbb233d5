// Package random provides the injectable randomness used for food placement
// and piece selection
package random

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source yields uniformly distributed integers in [0, n)
type Source interface {
	Intn(n int) int
}

// New returns a pseudo-random source; seed 0 seeds from the clock
func New(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// Sequence is a deterministic Source that replays a fixed list of values,
// each reduced modulo the requested bound, wrapping at the end
type Sequence struct {
	vals []int
	pos  int
}

// NewSequence creates a Sequence over vals; an empty list always yields 0
func NewSequence(vals ...int) *Sequence {
	return &Sequence{vals: vals}
}

// Intn returns the next value modulo n
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("random: invalid argument to Intn")
	}
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Calls returns how many values have been drawn
func (s *Sequence) Calls() int {
	return s.pos
}
