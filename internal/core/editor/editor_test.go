package editor

import (
	"testing"
	"time"

	"tempodash/internal/core/model"
	"tempodash/internal/core/timerange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(month time.Month, day int) time.Time {
	return time.Date(2023, month, day, 0, 0, 0, 0, time.UTC)
}

// trackDays sizes the track so one unit of pointer travel equals one day
// of the 2023 overall bound.
const trackDays = 364.0

func newTestEditor(t *testing.T) (*Editor, *timerange.Model) {
	t.Helper()
	rangeModel := timerange.New(model.Interval{
		Start: date(time.January, 1),
		End:   date(time.December, 31),
	})
	rangeModel.SetPreview(date(time.June, 1), date(time.July, 1))
	rangeModel.CommitPreview()
	return New(rangeModel), rangeModel
}

func TestDragStartEdgeMovesOnlyStart(t *testing.T) {
	intervalEditor, rangeModel := newTestEditor(t)

	intervalEditor.BeginDrag(EdgeStart, 0)
	intervalEditor.DragTo(10, trackDays)
	intervalEditor.EndDrag()

	committed := rangeModel.Committed()
	assert.WithinDuration(t, date(time.June, 11), committed.Start, time.Millisecond)
	assert.Equal(t, date(time.July, 1), committed.End)
}

func TestLockedDragShiftsBothEdges(t *testing.T) {
	intervalEditor, rangeModel := newTestEditor(t)
	rangeModel.ToggleLocked()

	intervalEditor.BeginDrag(EdgeEnd, 0)
	intervalEditor.DragTo(-40, trackDays)
	intervalEditor.EndDrag()

	committed := rangeModel.Committed()
	assert.WithinDuration(t, date(time.April, 22), committed.Start, time.Millisecond)
	assert.WithinDuration(t, date(time.May, 22), committed.End, time.Millisecond)
	assert.Equal(t, 30*24*time.Hour, committed.Duration())
}

func TestLockedDragSlidesBackAtBound(t *testing.T) {
	intervalEditor, rangeModel := newTestEditor(t)
	rangeModel.ToggleLocked()

	intervalEditor.BeginDrag(EdgeStart, 0)
	intervalEditor.DragTo(-300, trackDays)
	intervalEditor.EndDrag()

	// The pair hits the lower bound and keeps its 30-day duration.
	committed := rangeModel.Committed()
	assert.Equal(t, date(time.January, 1), committed.Start)
	assert.Equal(t, date(time.January, 31), committed.End)
}

func TestUnlockedDragPinsEndAtStart(t *testing.T) {
	intervalEditor, rangeModel := newTestEditor(t)

	intervalEditor.BeginDrag(EdgeEnd, 0)
	intervalEditor.DragTo(-40, trackDays)
	intervalEditor.EndDrag()

	committed := rangeModel.Committed()
	assert.Equal(t, date(time.June, 1), committed.Start)
	assert.Equal(t, date(time.June, 1), committed.End)
	assert.True(t, committed.IsZeroWidth())
}

func TestDragComputesFromAnchorNotPreview(t *testing.T) {
	intervalEditor, rangeModel := newTestEditor(t)

	// Successive move events must not accumulate; only the latest
	// pointer position counts.
	intervalEditor.BeginDrag(EdgeStart, 0)
	intervalEditor.DragTo(5, trackDays)
	intervalEditor.DragTo(5, trackDays)
	intervalEditor.DragTo(10, trackDays)
	intervalEditor.EndDrag()

	committed := rangeModel.Committed()
	assert.WithinDuration(t, date(time.June, 11), committed.Start, time.Millisecond)
}

func TestZeroDisplacementDragCommitsQuietly(t *testing.T) {
	intervalEditor, rangeModel := newTestEditor(t)
	events := rangeModel.Subscribe(8)

	intervalEditor.BeginDrag(EdgeStart, 0)
	intervalEditor.DragTo(0, trackDays)
	intervalEditor.EndDrag()

	committed := rangeModel.Committed()
	assert.Equal(t, date(time.June, 1), committed.Start)
	assert.Equal(t, date(time.July, 1), committed.End)

	// The preview event fires; the no-change commit does not.
	preview := <-events
	assert.Equal(t, timerange.EventPreviewChange, preview.Type)
	select {
	case event := <-events:
		t.Fatalf("unexpected event %v", event.Type)
	default:
	}
}

func TestBeginDragIgnoredWhileDragging(t *testing.T) {
	intervalEditor, _ := newTestEditor(t)

	intervalEditor.BeginDrag(EdgeStart, 0)
	intervalEditor.BeginDrag(EdgeEnd, 50)

	require.NotNil(t, intervalEditor.Gesture())
	assert.Equal(t, EdgeStart, intervalEditor.Gesture().Edge)
}

func TestDragToWithoutGestureIsNoOp(t *testing.T) {
	intervalEditor, rangeModel := newTestEditor(t)

	intervalEditor.DragTo(100, trackDays)
	intervalEditor.EndDrag()

	assert.Equal(t, date(time.June, 1), rangeModel.Committed().Start)
	assert.False(t, intervalEditor.Dragging())
}

func TestDragToZeroWidthTrackIsNoOp(t *testing.T) {
	intervalEditor, rangeModel := newTestEditor(t)

	intervalEditor.BeginDrag(EdgeStart, 0)
	intervalEditor.DragTo(10, 0)

	assert.True(t, rangeModel.Preview().Equal(rangeModel.Committed()))
	intervalEditor.EndDrag()
}

func TestSetEdgeValidatesBeforeApplying(t *testing.T) {
	intervalEditor, rangeModel := newTestEditor(t)

	assert.True(t, intervalEditor.SetEdge(EdgeStart, date(time.May, 15)))
	assert.Equal(t, date(time.May, 15), rangeModel.Committed().Start)

	// Start past end is rejected without touching state.
	assert.False(t, intervalEditor.SetEdge(EdgeStart, date(time.August, 1)))
	assert.Equal(t, date(time.May, 15), rangeModel.Committed().Start)

	// Value outside the overall bound is rejected.
	assert.False(t, intervalEditor.SetEdge(EdgeEnd, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, date(time.July, 1), rangeModel.Committed().End)
}

func TestSetIntervalCommitsBothEdges(t *testing.T) {
	intervalEditor, rangeModel := newTestEditor(t)

	require.True(t, intervalEditor.SetInterval(date(time.March, 1), date(time.April, 1)))
	committed := rangeModel.Committed()
	assert.Equal(t, date(time.March, 1), committed.Start)
	assert.Equal(t, date(time.April, 1), committed.End)

	assert.False(t, intervalEditor.SetInterval(date(time.April, 1), date(time.March, 1)))
}

func TestSetOverallBound(t *testing.T) {
	intervalEditor, rangeModel := newTestEditor(t)

	assert.False(t, intervalEditor.SetOverallBound(date(time.December, 1), date(time.January, 1)))

	require.True(t, intervalEditor.SetOverallBound(date(time.June, 10), date(time.June, 20)))
	committed := rangeModel.Committed()
	assert.Equal(t, date(time.June, 10), committed.Start)
	assert.Equal(t, date(time.June, 20), committed.End)
}
