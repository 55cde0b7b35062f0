// Package timeline implements the dual-handle slider over the overall
// time bound. Pointer geometry is forwarded to the interval editor; the
// widget itself holds no interval state.
package timeline

import (
	"image/color"
	"time"

	"tempodash/internal/core/editor"
	"tempodash/internal/core/model"
	"tempodash/internal/core/timerange"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const (
	trackHeight  = float32(6)
	handleRadius = float32(8)
	minWidth     = float32(240)
	minHeight    = float32(32)
)

// Widget renders the overall bound as a track, the preview interval as a
// filled segment, and one handle per interval edge.
type Widget struct {
	widget.BaseWidget
	rangeModel     *timerange.Model
	intervalEditor *editor.Editor
}

// New creates a timeline widget bound to the model and editor.
func New(rangeModel *timerange.Model, intervalEditor *editor.Editor) *Widget {
	timeline := &Widget{
		rangeModel:     rangeModel,
		intervalEditor: intervalEditor,
	}
	timeline.ExtendBaseWidget(timeline)
	return timeline
}

// CreateRenderer builds the canvas objects for the track and handles.
func (timeline *Widget) CreateRenderer() fyne.WidgetRenderer {
	track := canvas.NewRectangle(color.NRGBA{R: 90, G: 90, B: 90, A: 255})
	selection := canvas.NewRectangle(color.NRGBA{R: 58, G: 128, B: 210, A: 255})
	startHandle := canvas.NewCircle(color.NRGBA{R: 230, G: 230, B: 230, A: 255})
	endHandle := canvas.NewCircle(color.NRGBA{R: 230, G: 230, B: 230, A: 255})

	return &timelineRenderer{
		timeline:    timeline,
		track:       track,
		selection:   selection,
		startHandle: startHandle,
		endHandle:   endHandle,
		objects:     []fyne.CanvasObject{track, selection, startHandle, endHandle},
	}
}

// Dragged handles pointer movement with a button held. The first event of
// a gesture grabs the handle nearest to where the drag began.
func (timeline *Widget) Dragged(event *fyne.DragEvent) {
	width := timeline.Size().Width
	if width <= 0 {
		return
	}

	if !timeline.intervalEditor.Dragging() {
		anchor := event.Position.X - event.Dragged.DX
		timeline.intervalEditor.BeginDrag(timeline.nearestEdge(anchor), float64(anchor))
	}
	timeline.intervalEditor.DragTo(float64(event.Position.X), float64(width))
	timeline.Refresh()
}

// DragEnd commits the preview on release.
func (timeline *Widget) DragEnd() {
	timeline.intervalEditor.EndDrag()
	timeline.Refresh()
}

// MouseIn implements desktop.Hoverable.
func (timeline *Widget) MouseIn(*desktop.MouseEvent) {}

// MouseMoved implements desktop.Hoverable.
func (timeline *Widget) MouseMoved(*desktop.MouseEvent) {}

// MouseOut commits an in-flight drag; leaving the interaction surface is
// treated as a release.
func (timeline *Widget) MouseOut() {
	if timeline.intervalEditor.Dragging() {
		timeline.intervalEditor.EndDrag()
		timeline.Refresh()
	}
}

func (timeline *Widget) nearestEdge(position float32) editor.Edge {
	overall := timeline.rangeModel.Overall()
	preview := timeline.rangeModel.Preview()
	width := timeline.Size().Width

	startX := positionFor(preview.Start, overall, width)
	endX := positionFor(preview.End, overall, width)
	if abs(position-startX) <= abs(position-endX) {
		return editor.EdgeStart
	}
	return editor.EdgeEnd
}

type timelineRenderer struct {
	timeline    *Widget
	track       *canvas.Rectangle
	selection   *canvas.Rectangle
	startHandle *canvas.Circle
	endHandle   *canvas.Circle
	objects     []fyne.CanvasObject
}

func (renderer *timelineRenderer) Layout(size fyne.Size) {
	renderer.place(size)
}

func (renderer *timelineRenderer) MinSize() fyne.Size {
	return fyne.NewSize(minWidth, minHeight)
}

func (renderer *timelineRenderer) Refresh() {
	renderer.place(renderer.timeline.Size())
	renderer.track.Refresh()
	renderer.selection.Refresh()
	renderer.startHandle.Refresh()
	renderer.endHandle.Refresh()
}

func (renderer *timelineRenderer) Objects() []fyne.CanvasObject {
	return renderer.objects
}

func (renderer *timelineRenderer) Destroy() {}

func (renderer *timelineRenderer) place(size fyne.Size) {
	overall := renderer.timeline.rangeModel.Overall()
	preview := renderer.timeline.rangeModel.Preview()

	trackY := (size.Height - trackHeight) / 2
	renderer.track.Move(fyne.NewPos(0, trackY))
	renderer.track.Resize(fyne.NewSize(size.Width, trackHeight))

	startX := positionFor(preview.Start, overall, size.Width)
	endX := positionFor(preview.End, overall, size.Width)

	renderer.selection.Move(fyne.NewPos(startX, trackY))
	renderer.selection.Resize(fyne.NewSize(endX-startX, trackHeight))

	handleY := size.Height/2 - handleRadius
	renderer.startHandle.Move(fyne.NewPos(startX-handleRadius, handleY))
	renderer.startHandle.Resize(fyne.NewSize(handleRadius*2, handleRadius*2))
	renderer.endHandle.Move(fyne.NewPos(endX-handleRadius, handleY))
	renderer.endHandle.Resize(fyne.NewSize(handleRadius*2, handleRadius*2))
}

// positionFor maps an instant inside the overall bound to an x offset on
// a track of the given width.
func positionFor(instant time.Time, overall model.Interval, width float32) float32 {
	span := overall.Duration()
	if span <= 0 {
		return 0
	}
	offset := instant.UnixMilli() - overall.Start.UnixMilli()
	fraction := float64(offset) / float64(span.Milliseconds())
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return float32(fraction) * width
}

func abs(value float32) float32 {
	if value < 0 {
		return -value
	}
	return value
}
