package query

import (
	"encoding/json"
	"testing"
	"time"

	"tempodash/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow() model.Interval {
	return model.Interval{
		Start: time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2023, time.June, 16, 0, 0, 0, 0, time.UTC),
	}
}

func testBinding() model.Binding {
	return model.Binding{
		LayerID:       "NO2_Daily",
		VariableName:  "NO2_Troposphere",
		VariableLabel: "NO2",
	}
}

func TestMosaicRuleJSONShape(t *testing.T) {
	window := testWindow()
	serialized, err := NewMosaicRule(testBinding(), window).JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(serialized), &decoded))

	assert.Equal(t, true, decoded["ascending"])
	assert.Equal(t, "esriMosaicCenter", decoded["mosaicMethod"])

	definitions, ok := decoded["multidimensionalDefinition"].([]any)
	require.True(t, ok)
	require.Len(t, definitions, 1)

	definition := definitions[0].(map[string]any)
	assert.Equal(t, "NO2_Troposphere", definition["variableName"])
	assert.Equal(t, "StdTime", definition["dimensionName"])
	assert.Equal(t, false, definition["isSlice"])

	values := definition["values"].([]any)
	require.Len(t, values, 1)
	pair := values[0].([]any)
	startEpoch, endEpoch := window.EpochMillis()
	assert.Equal(t, float64(startEpoch), pair[0])
	assert.Equal(t, float64(endEpoch), pair[1])
}

func TestSamplesValues(t *testing.T) {
	values, err := SamplesValues(SamplesParams{
		Binding:      testBinding(),
		Window:       testWindow(),
		GeometryJSON: `{"xmin":-125,"ymin":24,"xmax":-66,"ymax":50}`,
		SampleCount:  50,
		ImageSR:      4326,
	})
	require.NoError(t, err)

	assert.Equal(t, "json", values.Get("f"))
	assert.Equal(t, "esriGeometryEnvelope", values.Get("geometryType"))
	assert.Equal(t, "false", values.Get("returnFirstValueOnly"))
	assert.Equal(t, "true", values.Get("returnGeometry"))
	assert.Equal(t, "NO2_Troposphere", values.Get("outFields"))
	assert.Equal(t, "50", values.Get("sampleCount"))
	assert.Equal(t, "4326", values.Get("imageSR"))
	assert.Contains(t, values.Get("mosaicRule"), "StdTime")
}

func TestSamplesValuesOmitsZeroImageSR(t *testing.T) {
	values, err := SamplesValues(SamplesParams{
		Binding:     testBinding(),
		Window:      testWindow(),
		SampleCount: 20,
	})
	require.NoError(t, err)
	assert.False(t, values.Has("imageSR"))
}

func TestSamplesURL(t *testing.T) {
	assert.Equal(t,
		"https://example.com/ImageServer/getSamples",
		SamplesURL("https://example.com/ImageServer"))
}

func TestParseSampleTimesSortsAndKeepsDuplicates(t *testing.T) {
	payload := []byte(`{"samples":[
		{"attributes":{"StdTime":1686830400000,"NO2_Troposphere":"3.1"}},
		{"attributes":{"StdTime":1686826800000}},
		{"attributes":{"StdTime":1686830400000}}
	]}`)

	timestamps, err := ParseSampleTimes(payload)
	require.NoError(t, err)
	require.Len(t, timestamps, 3)
	assert.Equal(t, time.UnixMilli(1686826800000).UTC(), timestamps[0])
	assert.Equal(t, time.UnixMilli(1686830400000).UTC(), timestamps[1])
	assert.Equal(t, timestamps[1], timestamps[2])
}

func TestParseSampleTimesSkipsSamplesWithoutTime(t *testing.T) {
	payload := []byte(`{"samples":[
		{"attributes":{"NO2_Troposphere":"3.1"}},
		{"attributes":{"StdTime":1686826800000}}
	]}`)

	timestamps, err := ParseSampleTimes(payload)
	require.NoError(t, err)
	assert.Len(t, timestamps, 1)
}

func TestParseSampleTimesMalformedPayload(t *testing.T) {
	_, err := ParseSampleTimes([]byte(`{"samples":`))
	assert.Error(t, err)

	_, err = ParseSampleTimes([]byte(`{"samples":[{"attributes":{"StdTime":16868.5}}]}`))
	assert.Error(t, err)
}

func TestParseSampleTimesEmptyResponse(t *testing.T) {
	timestamps, err := ParseSampleTimes([]byte(`{"samples":[]}`))
	require.NoError(t, err)
	assert.Empty(t, timestamps)
}
