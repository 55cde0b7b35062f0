package render

import (
	"testing"
	"time"

	"tempodash/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayerStartsEmpty(t *testing.T) {
	layer := NewLayer(nil)

	_, _, ok := layer.Window()
	assert.False(t, ok)
	_, ok = layer.MosaicRule()
	assert.False(t, ok)
	assert.Zero(t, layer.AppliedCount())
}

func TestApplyTimeWindowRecordsLastWindow(t *testing.T) {
	var callbackBinding model.Binding
	var callbackWindow model.Interval
	layer := NewLayer(func(binding model.Binding, window model.Interval) {
		callbackBinding = binding
		callbackWindow = window
	})

	binding := model.Binding{LayerID: "NO2_Daily", VariableName: "NO2_Troposphere", VariableLabel: "NO2"}
	start := time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	layer.ApplyTimeWindow(binding, start, end)

	gotBinding, gotWindow, ok := layer.Window()
	require.True(t, ok)
	assert.Equal(t, binding, gotBinding)
	assert.Equal(t, start, gotWindow.Start)
	assert.Equal(t, end, gotWindow.End)
	assert.Equal(t, 1, layer.AppliedCount())

	assert.Equal(t, binding, callbackBinding)
	assert.Equal(t, start, callbackWindow.Start)

	rule, ok := layer.MosaicRule()
	require.True(t, ok)
	require.Len(t, rule.MultidimensionalDefinition, 1)
	assert.Equal(t, "NO2_Troposphere", rule.MultidimensionalDefinition[0].VariableName)
	assert.Equal(t, [][2]int64{{start.UnixMilli(), end.UnixMilli()}}, rule.MultidimensionalDefinition[0].Values)
}
