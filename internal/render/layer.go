// Package render provides the in-process stand-in for the imagery layer:
// it accepts time windows synchronously, remembers the last one, and
// exposes the mosaic rule that a real service layer would be given.
package render

import (
	"sync"
	"time"

	"tempodash/internal/core/model"
	"tempodash/internal/query"
)

// Layer is a render target driven by the sequencer or by the steady-state
// interval consumer, never both at once.
type Layer struct {
	mu      sync.Mutex
	binding model.Binding
	window  model.Interval
	applied int
	onApply func(model.Binding, model.Interval)
}

// NewLayer creates a layer. The callback, if set, is invoked after each
// accepted window, outside the layer's lock.
func NewLayer(onApply func(model.Binding, model.Interval)) *Layer {
	return &Layer{onApply: onApply}
}

// ApplyTimeWindow accepts a new time window for the binding.
func (layer *Layer) ApplyTimeWindow(binding model.Binding, windowStart, windowEnd time.Time) {
	window := model.Interval{Start: windowStart, End: windowEnd}

	layer.mu.Lock()
	layer.binding = binding
	layer.window = window
	layer.applied++
	callback := layer.onApply
	layer.mu.Unlock()

	if callback != nil {
		callback(binding, window)
	}
}

// Window returns the last accepted binding and window. ok is false until
// the first window arrives.
func (layer *Layer) Window() (model.Binding, model.Interval, bool) {
	layer.mu.Lock()
	defer layer.mu.Unlock()
	return layer.binding, layer.window, layer.applied > 0
}

// AppliedCount returns how many windows the layer has accepted.
func (layer *Layer) AppliedCount() int {
	layer.mu.Lock()
	defer layer.mu.Unlock()
	return layer.applied
}

// MosaicRule returns the mosaic rule for the last accepted window.
func (layer *Layer) MosaicRule() (query.MosaicRule, bool) {
	layer.mu.Lock()
	defer layer.mu.Unlock()
	if layer.applied == 0 {
		return query.MosaicRule{}, false
	}
	return query.NewMosaicRule(layer.binding, layer.window), true
}
