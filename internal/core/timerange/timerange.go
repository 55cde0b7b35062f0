// Package timerange owns the overall time bound, the committed interval
// consumers observe, and the transient preview interval used during
// interactive editing. It is the only component allowed to assign them.
package timerange

import (
	"errors"
	"sync"
	"time"

	"tempodash/internal/core/model"
)

// ErrInvertedBound indicates an overall bound whose start is after its end.
var ErrInvertedBound = errors.New("overall bound start after end")

// Model holds the three intervals and the lock flag. Every mutation
// re-establishes overall.Start <= x.Start <= x.End <= overall.End for the
// committed and preview intervals before the new state becomes visible.
type Model struct {
	mu        sync.Mutex
	overall   model.Interval
	committed model.Interval
	preview   model.Interval
	locked    bool
	events    []chan Event
}

// New creates a model with the given overall bound. The committed and
// preview intervals start out equal to the bound.
func New(overall model.Interval) *Model {
	overall = model.NewInterval(overall.Start, overall.End)
	return &Model{
		overall:   overall,
		committed: overall,
		preview:   overall,
	}
}

// Subscribe registers a new observer channel.
func (rangeModel *Model) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	rangeModel.mu.Lock()
	rangeModel.events = append(rangeModel.events, ch)
	rangeModel.mu.Unlock()
	return ch
}

// Close closes all observer channels.
func (rangeModel *Model) Close() {
	rangeModel.mu.Lock()
	events := rangeModel.events
	rangeModel.events = nil
	rangeModel.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Overall returns the outer bound.
func (rangeModel *Model) Overall() model.Interval {
	rangeModel.mu.Lock()
	defer rangeModel.mu.Unlock()
	return rangeModel.overall
}

// Committed returns the interval consumers observe.
func (rangeModel *Model) Committed() model.Interval {
	rangeModel.mu.Lock()
	defer rangeModel.mu.Unlock()
	return rangeModel.committed
}

// Preview returns the transient candidate interval.
func (rangeModel *Model) Preview() model.Interval {
	rangeModel.mu.Lock()
	defer rangeModel.mu.Unlock()
	return rangeModel.preview
}

// Locked reports whether edge drags preserve the committed duration.
func (rangeModel *Model) Locked() bool {
	rangeModel.mu.Lock()
	defer rangeModel.mu.Unlock()
	return rangeModel.locked
}

// SetOverall replaces the outer bound and re-clamps the committed and
// preview intervals into it. Fails without mutating on an inverted bound.
func (rangeModel *Model) SetOverall(newStart, newEnd time.Time) error {
	if newStart.After(newEnd) {
		return ErrInvertedBound
	}

	rangeModel.mu.Lock()
	rangeModel.overall = model.Interval{Start: newStart, End: newEnd}
	rangeModel.committed = rangeModel.clampLocked(rangeModel.committed)
	rangeModel.preview = rangeModel.clampLocked(rangeModel.preview)
	rangeModel.emitLocked(EventOverallChange)
	rangeModel.mu.Unlock()
	return nil
}

// SetPreview replaces the preview interval, clamped into the overall
// bound. When clamping inverts the pair, the endpoint that was not pushed
// by the clamp wins and the other side collapses to it, keeping the
// interval pinned to the side the user is not dragging.
func (rangeModel *Model) SetPreview(start, end time.Time) {
	rangeModel.mu.Lock()
	clampedStart := rangeModel.clampInstantLocked(start)
	clampedEnd := rangeModel.clampInstantLocked(end)
	if clampedStart.After(clampedEnd) {
		switch {
		case !clampedEnd.Equal(end):
			clampedEnd = clampedStart
		case !clampedStart.Equal(start):
			clampedStart = clampedEnd
		default:
			clampedEnd = clampedStart
		}
	}
	rangeModel.preview = model.Interval{Start: clampedStart, End: clampedEnd}
	rangeModel.emitLocked(EventPreviewChange)
	rangeModel.mu.Unlock()
}

// CommitPreview copies the preview interval into the committed interval.
// Committing an unchanged preview is a no-op for observers.
func (rangeModel *Model) CommitPreview() {
	rangeModel.mu.Lock()
	if rangeModel.committed.Equal(rangeModel.preview) {
		rangeModel.mu.Unlock()
		return
	}
	rangeModel.committed = rangeModel.preview
	rangeModel.emitLocked(EventCommit)
	rangeModel.mu.Unlock()
}

// ResetPreview discards the preview interval, restoring it to the
// committed interval.
func (rangeModel *Model) ResetPreview() {
	rangeModel.mu.Lock()
	if !rangeModel.preview.Equal(rangeModel.committed) {
		rangeModel.preview = rangeModel.committed
		rangeModel.emitLocked(EventPreviewChange)
	}
	rangeModel.mu.Unlock()
}

// ToggleLocked flips the lock flag without touching any interval.
func (rangeModel *Model) ToggleLocked() {
	rangeModel.mu.Lock()
	rangeModel.locked = !rangeModel.locked
	rangeModel.emitLocked(EventLockToggle)
	rangeModel.mu.Unlock()
}

func (rangeModel *Model) clampLocked(interval model.Interval) model.Interval {
	start := rangeModel.clampInstantLocked(interval.Start)
	end := rangeModel.clampInstantLocked(interval.End)
	if start.After(end) {
		end = start
	}
	return model.Interval{Start: start, End: end}
}

func (rangeModel *Model) clampInstantLocked(instant time.Time) time.Time {
	if instant.Before(rangeModel.overall.Start) {
		return rangeModel.overall.Start
	}
	if instant.After(rangeModel.overall.End) {
		return rangeModel.overall.End
	}
	return instant
}

func (rangeModel *Model) emitLocked(eventType EventType) {
	event := Event{
		Type:      eventType,
		Overall:   rangeModel.overall,
		Committed: rangeModel.committed,
		Preview:   rangeModel.preview,
		Locked:    rangeModel.locked,
		At:        time.Now(),
	}
	events := append([]chan Event(nil), rangeModel.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
