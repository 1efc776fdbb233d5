// Package engine drives the grid games in real time.
//
// # Driver Architecture
//
// Both simulations are synchronous state machines that know nothing about
// wall-clock time. The engine owns the two time bases the games need:
//
//  1. A tick deadline derived from the game's current Interval(). When game
//     time passes the deadline the scheduler calls Step() once.
//  2. An input stream of discrete Actions, applied as soon as they arrive and
//     never allowed to delay a due tick.
//
// Exactly one goroutine (the scheduler loop) touches game state, so games
// need no locking. Rendering happens through a frame callback invoked from
// the same goroutine after every state change.
//
// Game time comes from a PausableClock so that pausing freezes fall timers
// without the games having to know about it.
package engine

import "time"

// Action is a discrete input event delivered to a game
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionDrop
	ActionPause
	ActionQuit
	// ActionRedraw asks the driver for a fresh frame (terminal resize); games never see it
	ActionRedraw
)

var actionNames = [...]string{"none", "up", "down", "left", "right", "drop", "pause", "quit", "redraw"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Event classifies what a single step or action did to the game
type Event uint8

const (
	// EventNone means the step or action was a no-op (rejected move, reversal, blocked rotation)
	EventNone Event = iota
	// EventMoved means the active piece or snake advanced without side effects
	EventMoved
	// EventAte means the snake consumed food
	EventAte
	// EventLocked means a falling piece became part of the board; Lines holds rows cleared
	EventLocked
	// EventGameOver means the game reached its terminal state during this step
	EventGameOver
)

var eventNames = [...]string{"none", "moved", "ate", "locked", "game_over"}

func (e Event) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// Outcome reports the result of a step or an applied action
type Outcome struct {
	Event Event
	// Lines is the number of rows cleared by a lock
	Lines int
	// Advanced is set when an action performed a gravity step itself,
	// which restarts the automatic tick deadline
	Advanced bool
}

// Game is the contract between the scheduler and a simulation
type Game interface {
	// Step advances the simulation by one automatic tick
	Step() Outcome
	// Apply delivers one input action; invalid actions are no-ops
	Apply(a Action) Outcome
	// Interval is the current delay between automatic ticks
	Interval() time.Duration
	// Over reports the absorbing game-over state
	Over() bool
}
