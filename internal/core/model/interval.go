package model

import "time"

// Interval is a closed time span. Start never exceeds End; zero-width
// intervals are legal and represent a collapsed selection.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds an interval, swapping the endpoints if they arrive
// out of order.
func NewInterval(start, end time.Time) Interval {
	if start.After(end) {
		start, end = end, start
	}
	return Interval{Start: start, End: end}
}

// Duration returns the width of the interval.
func (interval Interval) Duration() time.Duration {
	return interval.End.Sub(interval.Start)
}

// IsZeroWidth reports whether the interval is collapsed to a point.
func (interval Interval) IsZeroWidth() bool {
	return interval.Start.Equal(interval.End)
}

// Contains reports whether other lies entirely within the interval.
func (interval Interval) Contains(other Interval) bool {
	return !other.Start.Before(interval.Start) && !other.End.After(interval.End)
}

// Equal reports whether both endpoints match.
func (interval Interval) Equal(other Interval) bool {
	return interval.Start.Equal(other.Start) && interval.End.Equal(other.End)
}

// EpochMillis returns both endpoints as epoch milliseconds, the
// representation time-indexed imagery services expect.
func (interval Interval) EpochMillis() (int64, int64) {
	return interval.Start.UnixMilli(), interval.End.UnixMilli()
}
