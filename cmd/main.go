package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"tempodash/internal/catalog"
	"tempodash/internal/core/editor"
	"tempodash/internal/core/model"
	"tempodash/internal/core/sequencer"
	"tempodash/internal/core/timerange"
	"tempodash/internal/core/timewindow"
	"tempodash/internal/platform"
	"tempodash/internal/render"
	"tempodash/internal/storage"
	"tempodash/internal/ui/controls"
	"tempodash/internal/ui/timeline"
	"tempodash/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const appName = "TempoDash"

// maxAnimationFrames caps the synthetic sample list used by the demo
// sample source so a year of hourly steps cannot flood the sequencer.
const maxAnimationFrames = 500

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	layerCatalog, err := storage.LoadCatalog(appName)
	if err != nil {
		log.Printf("load catalog: %v", err)
	}

	fyneApp := app.NewWithID("com.tempodash.app")
	mainWindow := fyneApp.NewWindow("TempoDash")

	rangeModel := timerange.New(settings.OverallBound())
	intervalEditor := editor.New(rangeModel)

	currentVariable := settings.Variable
	if _, ok := layerCatalog.Variable(currentVariable); !ok {
		currentVariable = layerCatalog.DefaultVariable()
	}
	currentGranularity := settings.Granularity

	windowLabel := widget.NewLabel("")
	renderLayer := render.NewLayer(func(binding model.Binding, window model.Interval) {
		fyne.Do(func() {
			windowLabel.SetText(fmt.Sprintf("%s  %s – %s",
				binding.LayerID,
				window.Start.UTC().Format("2006-01-02 15:04"),
				window.End.UTC().Format("2006-01-02 15:04")))
		})
	})
	animator := sequencer.New(renderLayer, sequencer.Config{FrameDelay: settings.FrameDelay})

	timelineWidget := timeline.New(rangeModel, intervalEditor)

	var panel *controls.Panel
	var trayManager *tray.Manager

	resolveBinding := func() (model.Binding, error) {
		return layerCatalog.Binding(currentVariable, currentGranularity)
	}

	// The steady-state consumer: whenever the committed interval, the
	// variable, or the granularity changes outside an animation run, the
	// resolved query window is pushed to the render layer.
	applySteadyWindow := func() {
		if animator.Running() {
			return
		}
		binding, err := resolveBinding()
		if err != nil {
			panel.SetStatus(fmt.Sprintf("no layer: %v", err))
			return
		}
		window := timewindow.ForGranularity(currentGranularity, rangeModel.Committed())
		renderLayer.ApplyTimeWindow(binding, window.Start, window.End)
	}

	variables := make([]string, 0)
	for _, variable := range layerCatalog.Variables() {
		variables = append(variables, variable.Label)
	}

	panel = controls.New(variables, currentVariable, currentGranularity, controls.Callbacks{
		OnOverall: func(start, end time.Time) bool {
			if !intervalEditor.SetOverallBound(start, end) {
				return false
			}
			timelineWidget.Refresh()
			return true
		},
		OnEdge: func(edge editor.Edge, value time.Time) bool {
			if !intervalEditor.SetEdge(edge, value) {
				return false
			}
			timelineWidget.Refresh()
			return true
		},
		OnGranularity: func(granularity model.Granularity) {
			currentGranularity = granularity
			applySteadyWindow()
		},
		OnVariable: func(label string) {
			currentVariable = label
			applySteadyWindow()
		},
		OnToggleLock: func() {
			rangeModel.ToggleLocked()
		},
		OnAnimate: func() {
			binding, err := resolveBinding()
			if err != nil {
				panel.SetStatus(fmt.Sprintf("cannot animate: %v", err))
				return
			}
			timestamps := sampleTimestamps(rangeModel.Committed(), currentGranularity)
			if err := animator.Start(context.Background(), binding, timestamps); err != nil {
				panel.SetStatus(fmt.Sprintf("cannot animate: %v", err))
			}
		},
		OnStop: func() {
			animator.Stop()
		},
	})
	panel.SetOverall(rangeModel.Overall())
	panel.SetCommitted(rangeModel.Committed())

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: func() {
				mainWindow.Show()
				mainWindow.RequestFocus()
			},
			OnStopAnimation: func() {
				animator.Stop()
			},
			OnQuit: func() {
				animator.Close()
				rangeModel.Close()
				fyneApp.Quit()
			},
		})
	}

	rangeEvents := rangeModel.Subscribe(8)
	go func() {
		for event := range rangeEvents {
			event := event
			fyne.Do(func() {
				switch event.Type {
				case timerange.EventOverallChange:
					panel.SetOverall(event.Overall)
					panel.SetCommitted(event.Committed)
					timelineWidget.Refresh()
					applySteadyWindow()
				case timerange.EventCommit:
					panel.SetCommitted(event.Committed)
					applySteadyWindow()
				case timerange.EventLockToggle:
					panel.SetLocked(event.Locked)
				}
			})
		}
	}()

	animatorEvents := animator.Subscribe(8)
	go func() {
		for event := range animatorEvents {
			event := event
			fyne.Do(func() {
				switch event.Type {
				case sequencer.EventFrameApplied:
					panel.SetStatus(fmt.Sprintf("frame %d/%d", event.FrameIndex+1, event.FrameCount))
				case sequencer.EventStateChange:
					handleAnimatorState(event.State, panel, trayManager)
					if event.State == sequencer.StateCompleted || event.State == sequencer.StateCancelled {
						applySteadyWindow()
					}
				}
			})
		}
	}()

	content := container.NewBorder(
		panel.Content(),
		container.NewHBox(widget.NewLabel("Layer window:"), windowLabel),
		nil, nil,
		container.NewVBox(widget.NewLabel("Time selection"), timelineWidget),
	)
	mainWindow.SetContent(content)
	mainWindow.Resize(fyne.NewSize(720, 280))

	mainWindow.SetCloseIntercept(func() {
		settings.Variable = currentVariable
		settings.Granularity = currentGranularity
		overall := rangeModel.Overall()
		settings.OverallStart = overall.Start
		settings.OverallEnd = overall.End
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
		animator.Close()
		rangeModel.Close()
		fyneApp.Quit()
	})

	applySteadyWindow()
	mainWindow.Show()
	fyneApp.Run()
}

func handleAnimatorState(state sequencer.State, panel *controls.Panel, trayManager *tray.Manager) {
	switch state {
	case sequencer.StateRunning:
		panel.SetAnimating(true)
		panel.SetStatus("animating")
	case sequencer.StateCompleted:
		panel.SetAnimating(false)
		panel.SetStatus("finished")
	case sequencer.StateCancelled:
		panel.SetAnimating(false)
		panel.SetStatus("stopped")
	}
	if trayManager != nil {
		trayManager.SetAnimating(state == sequencer.StateRunning)
		trayManager.SetStatus(string(state))
	}
}

// sampleTimestamps synthesizes an ordered timestamp list by stepping the
// committed interval at the selected granularity. It stands in for the
// external sample source, which the dashboard core only consumes.
func sampleTimestamps(interval model.Interval, granularity model.Granularity) []time.Time {
	timestamps := make([]time.Time, 0)
	current := interval.Start
	for !current.After(interval.End) && len(timestamps) < maxAnimationFrames {
		timestamps = append(timestamps, current)
		switch granularity {
		case model.GranularityHourly:
			current = current.Add(time.Hour)
		case model.GranularityMonthly:
			current = current.AddDate(0, 1, 0)
		default:
			current = current.AddDate(0, 0, 1)
		}
	}
	return timestamps
}
