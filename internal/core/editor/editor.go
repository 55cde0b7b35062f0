// Package editor translates pointer drags on the dual-handle slider and
// direct date entry into timerange.Model calls, using a two-phase
// preview/commit protocol so downstream consumers only react on release.
package editor

import (
	"time"

	"tempodash/internal/core/model"
	"tempodash/internal/core/timerange"
)

// Edge identifies which slider handle a gesture grabbed.
type Edge int

const (
	EdgeStart Edge = iota
	EdgeEnd
)

// DragGesture captures the state of one drag at the moment it starts.
// The anchor interval is a snapshot of the committed interval, so move
// events compute against a fixed reference instead of a moving target.
type DragGesture struct {
	Edge           Edge
	AnchorPosition float64
	AnchorInterval model.Interval
}

// Editor drives a timerange.Model from interaction events.
type Editor struct {
	rangeModel *timerange.Model
	gesture    *DragGesture
}

// New creates an editor bound to the given model.
func New(rangeModel *timerange.Model) *Editor {
	return &Editor{rangeModel: rangeModel}
}

// Dragging reports whether a drag gesture is in progress.
func (editor *Editor) Dragging() bool {
	return editor.gesture != nil
}

// Gesture returns the active gesture, or nil when idle.
func (editor *Editor) Gesture() *DragGesture {
	return editor.gesture
}

// BeginDrag starts a gesture on the given edge at the pointer's anchor
// position. A gesture already in progress is left untouched.
func (editor *Editor) BeginDrag(edge Edge, anchorPosition float64) {
	if editor.gesture != nil {
		return
	}
	editor.gesture = &DragGesture{
		Edge:           edge,
		AnchorPosition: anchorPosition,
		AnchorInterval: editor.rangeModel.Committed(),
	}
}

// DragTo updates the preview interval for the pointer position. The
// displacement is read as a percentage of the track width and converted
// into time against the overall bound's span.
func (editor *Editor) DragTo(position, trackWidth float64) {
	gesture := editor.gesture
	if gesture == nil || trackWidth <= 0 {
		return
	}

	overall := editor.rangeModel.Overall()
	deltaPercent := (position - gesture.AnchorPosition) / trackWidth * 100
	deltaTime := time.Duration(deltaPercent * float64(overall.Duration()) / 100)

	var preview model.Interval
	if editor.rangeModel.Locked() {
		preview = shiftPreservingDuration(gesture.AnchorInterval, deltaTime, overall)
	} else {
		preview = moveSingleEdge(gesture.AnchorInterval, gesture.Edge, deltaTime, overall)
	}
	editor.rangeModel.SetPreview(preview.Start, preview.End)
}

// EndDrag commits the preview and returns to idle. Release position is
// authoritative; a drag with no net displacement still commits.
func (editor *Editor) EndDrag() {
	if editor.gesture == nil {
		return
	}
	editor.gesture = nil
	editor.rangeModel.CommitPreview()
}

// SetOverallBound applies a typed edit of the outer bound. Returns false
// and leaves all state unchanged when the edit is inverted.
func (editor *Editor) SetOverallBound(start, end time.Time) bool {
	return editor.rangeModel.SetOverall(start, end) == nil
}

// SetEdge applies a typed edit of one committed interval edge. The edit
// must keep start <= end and stay inside the overall bound; otherwise it
// is rejected and no state changes.
func (editor *Editor) SetEdge(edge Edge, value time.Time) bool {
	committed := editor.rangeModel.Committed()
	start, end := committed.Start, committed.End
	if edge == EdgeStart {
		start = value
	} else {
		end = value
	}
	return editor.SetInterval(start, end)
}

// SetInterval applies a typed edit of both committed edges at once.
func (editor *Editor) SetInterval(start, end time.Time) bool {
	if start.After(end) {
		return false
	}
	if !editor.rangeModel.Overall().Contains(model.Interval{Start: start, End: end}) {
		return false
	}
	editor.rangeModel.SetPreview(start, end)
	editor.rangeModel.CommitPreview()
	return true
}

// moveSingleEdge moves the grabbed edge by delta from its anchor value,
// clamped to the overall bound and pinned at the stationary edge if it
// would cross it.
func moveSingleEdge(anchor model.Interval, edge Edge, delta time.Duration, overall model.Interval) model.Interval {
	if edge == EdgeStart {
		start := clampInstant(anchor.Start.Add(delta), overall)
		if start.After(anchor.End) {
			start = anchor.End
		}
		return model.Interval{Start: start, End: anchor.End}
	}

	end := clampInstant(anchor.End.Add(delta), overall)
	if end.Before(anchor.Start) {
		end = anchor.Start
	}
	return model.Interval{Start: anchor.Start, End: end}
}

// shiftPreservingDuration moves both edges by delta from their anchor
// values. Overflow past the overall bound slides the pair back so the
// duration survives; the pair degenerates to the bound only when the
// duration cannot fit at all.
func shiftPreservingDuration(anchor model.Interval, delta time.Duration, overall model.Interval) model.Interval {
	duration := anchor.Duration()
	start := anchor.Start.Add(delta)
	end := start.Add(duration)

	if start.Before(overall.Start) {
		start = overall.Start
		end = start.Add(duration)
	}
	if end.After(overall.End) {
		end = overall.End
		start = end.Add(-duration)
		if start.Before(overall.Start) {
			start = overall.Start
		}
	}
	return model.Interval{Start: start, End: end}
}

func clampInstant(instant time.Time, bound model.Interval) time.Time {
	if instant.Before(bound.Start) {
		return bound.Start
	}
	if instant.After(bound.End) {
		return bound.End
	}
	return instant
}
