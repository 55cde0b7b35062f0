package sequencer

import "time"

// State represents the sequencer run state.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateCancelled State = "cancelled"
)

// EventType defines the type of sequencer event.
type EventType string

const (
	EventStateChange  EventType = "state_change"
	EventFrameApplied EventType = "frame_applied"
)

// Event represents a sequencer update for observers.
type Event struct {
	Type       EventType
	State      State
	Frame      Frame
	FrameIndex int
	FrameCount int
	At         time.Time
}
