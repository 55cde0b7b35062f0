// Package controls builds the direct-entry side of the temporal controls:
// date fields for the overall bound and the committed interval edges, the
// granularity and variable selectors, the lock toggle, and the animation
// buttons.
package controls

import (
	"time"

	"tempodash/internal/core/editor"
	"tempodash/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const dateLayout = "2006-01-02"

// Callbacks defines panel action handlers. Handlers returning false
// indicate a rejected edit; the panel reverts the field.
type Callbacks struct {
	OnOverall     func(start, end time.Time) bool
	OnEdge        func(edge editor.Edge, value time.Time) bool
	OnGranularity func(model.Granularity)
	OnVariable    func(label string)
	OnToggleLock  func()
	OnAnimate     func()
	OnStop        func()
}

// Panel holds the entry widgets and keeps them in sync with the model.
type Panel struct {
	content fyne.CanvasObject

	overallStart  *widget.Entry
	overallEnd    *widget.Entry
	intervalStart *widget.Entry
	intervalEnd   *widget.Entry
	granularity   *widget.Select
	variable      *widget.Select
	lock          *widget.Check
	animate       *widget.Button
	stop          *widget.Button
	status        *widget.Label

	callbacks Callbacks
	overall   model.Interval
	committed model.Interval
}

// New creates the panel with initial values.
func New(variables []string, defaultVariable string, granularity model.Granularity, callbacks Callbacks) *Panel {
	panel := &Panel{callbacks: callbacks}

	panel.overallStart = widget.NewEntry()
	panel.overallEnd = widget.NewEntry()
	panel.intervalStart = widget.NewEntry()
	panel.intervalEnd = widget.NewEntry()

	panel.overallStart.OnSubmitted = func(string) { panel.submitOverall() }
	panel.overallEnd.OnSubmitted = func(string) { panel.submitOverall() }
	panel.intervalStart.OnSubmitted = func(text string) { panel.submitEdge(editor.EdgeStart, text) }
	panel.intervalEnd.OnSubmitted = func(text string) { panel.submitEdge(editor.EdgeEnd, text) }

	granularityOptions := []string{
		string(model.GranularityHourly),
		string(model.GranularityDaily),
		string(model.GranularityMonthly),
	}
	panel.granularity = widget.NewSelect(granularityOptions, func(selected string) {
		if panel.callbacks.OnGranularity != nil {
			panel.callbacks.OnGranularity(model.Granularity(selected))
		}
	})
	panel.granularity.SetSelected(string(granularity))

	panel.variable = widget.NewSelect(variables, func(selected string) {
		if panel.callbacks.OnVariable != nil {
			panel.callbacks.OnVariable(selected)
		}
	})
	panel.variable.SetSelected(defaultVariable)

	panel.lock = widget.NewCheck("Lock duration", func(bool) {
		if panel.callbacks.OnToggleLock != nil {
			panel.callbacks.OnToggleLock()
		}
	})

	panel.animate = widget.NewButton("Animate", func() {
		if panel.callbacks.OnAnimate != nil {
			panel.callbacks.OnAnimate()
		}
	})
	panel.stop = widget.NewButton("Stop", func() {
		if panel.callbacks.OnStop != nil {
			panel.callbacks.OnStop()
		}
	})
	panel.stop.Disable()

	panel.status = widget.NewLabel("")

	form := container.NewVBox(
		widget.NewLabelWithStyle("Time range", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Bound from"), panel.overallStart, widget.NewLabel("to"), panel.overallEnd),
		container.NewHBox(widget.NewLabel("Interval from"), panel.intervalStart, widget.NewLabel("to"), panel.intervalEnd),
		container.NewHBox(widget.NewLabel("Granularity"), panel.granularity, widget.NewLabel("Variable"), panel.variable, panel.lock),
		container.NewHBox(panel.animate, panel.stop, layout.NewSpacer(), panel.status),
	)
	panel.content = form
	return panel
}

// Content returns the panel's root canvas object.
func (panel *Panel) Content() fyne.CanvasObject {
	return panel.content
}

// SetStatus updates the status label.
func (panel *Panel) SetStatus(status string) {
	panel.status.SetText(status)
}

// SetOverall refreshes the bound entries from the model.
func (panel *Panel) SetOverall(overall model.Interval) {
	panel.overall = overall
	panel.overallStart.SetText(overall.Start.UTC().Format(dateLayout))
	panel.overallEnd.SetText(overall.End.UTC().Format(dateLayout))
}

// SetCommitted refreshes the interval entries from the model.
func (panel *Panel) SetCommitted(committed model.Interval) {
	panel.committed = committed
	panel.intervalStart.SetText(committed.Start.UTC().Format(dateLayout))
	panel.intervalEnd.SetText(committed.End.UTC().Format(dateLayout))
}

// SetLocked refreshes the lock toggle without firing its handler.
func (panel *Panel) SetLocked(locked bool) {
	if panel.lock.Checked == locked {
		return
	}
	handler := panel.lock.OnChanged
	panel.lock.OnChanged = nil
	panel.lock.SetChecked(locked)
	panel.lock.OnChanged = handler
}

// SetAnimating toggles the animation buttons.
func (panel *Panel) SetAnimating(animating bool) {
	if animating {
		panel.animate.Disable()
		panel.stop.Enable()
		return
	}
	panel.animate.Enable()
	panel.stop.Disable()
}

func (panel *Panel) submitOverall() {
	start, okStart := parseDate(panel.overallStart.Text)
	end, okEnd := parseDate(panel.overallEnd.Text)
	if !okStart || !okEnd || panel.callbacks.OnOverall == nil || !panel.callbacks.OnOverall(start, end) {
		panel.SetStatus("invalid bound")
		panel.SetOverall(panel.overall)
		return
	}
	panel.SetStatus("")
}

func (panel *Panel) submitEdge(edge editor.Edge, text string) {
	value, ok := parseDate(text)
	if !ok || panel.callbacks.OnEdge == nil || !panel.callbacks.OnEdge(edge, value) {
		panel.SetStatus("invalid date")
		panel.SetCommitted(panel.committed)
		return
	}
	panel.SetStatus("")
}

func parseDate(text string) (time.Time, bool) {
	parsed, err := time.ParseInLocation(dateLayout, text, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
