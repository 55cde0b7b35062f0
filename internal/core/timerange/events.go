package timerange

import (
	"time"

	"tempodash/internal/core/model"
)

// EventType defines the type of time-range event.
type EventType string

const (
	EventOverallChange EventType = "overall_change"
	EventPreviewChange EventType = "preview_change"
	EventCommit        EventType = "commit"
	EventLockToggle    EventType = "lock_toggle"
)

// Event carries a consistent snapshot of the model for observers.
type Event struct {
	Type      EventType
	Overall   model.Interval
	Committed model.Interval
	Preview   model.Interval
	Locked    bool
	At        time.Time
}
