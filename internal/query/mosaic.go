// Package query builds the time-dimension requests the imagery services
// understand and parses their sample responses. Fetching is left to the
// embedding application.
package query

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"tempodash/internal/core/model"
)

// TimeDimension is the multidimensional axis the services index rasters by.
const TimeDimension = "StdTime"

// MosaicRule selects the raster slices for a variable within a time window.
type MosaicRule struct {
	Ascending                  bool                  `json:"ascending"`
	MosaicMethod               string                `json:"mosaicMethod"`
	MultidimensionalDefinition []DimensionDefinition `json:"multidimensionalDefinition"`
}

// DimensionDefinition restricts one dimension of the mosaic.
type DimensionDefinition struct {
	VariableName  string     `json:"variableName"`
	DimensionName string     `json:"dimensionName"`
	Values        [][2]int64 `json:"values"`
	IsSlice       bool       `json:"isSlice"`
}

// NewMosaicRule builds the center-mosaic rule for a binding and window.
func NewMosaicRule(binding model.Binding, window model.Interval) MosaicRule {
	startEpoch, endEpoch := window.EpochMillis()
	return MosaicRule{
		Ascending:    true,
		MosaicMethod: "esriMosaicCenter",
		MultidimensionalDefinition: []DimensionDefinition{{
			VariableName:  binding.VariableName,
			DimensionName: TimeDimension,
			Values:        [][2]int64{{startEpoch, endEpoch}},
			IsSlice:       false,
		}},
	}
}

// JSON serializes the rule for embedding into a request parameter.
func (rule MosaicRule) JSON() (string, error) {
	data, err := json.Marshal(rule)
	if err != nil {
		return "", fmt.Errorf("marshal mosaic rule: %w", err)
	}
	return string(data), nil
}

// SamplesParams describes a getSamples request.
type SamplesParams struct {
	Binding      model.Binding
	Window       model.Interval
	GeometryJSON string
	SampleCount  int
	ImageSR      int
}

// SamplesValues encodes the getSamples query string values.
func SamplesValues(params SamplesParams) (url.Values, error) {
	rule, err := NewMosaicRule(params.Binding, params.Window).JSON()
	if err != nil {
		return nil, err
	}

	values := url.Values{}
	values.Set("f", "json")
	values.Set("geometry", params.GeometryJSON)
	values.Set("geometryType", "esriGeometryEnvelope")
	values.Set("returnFirstValueOnly", "false")
	values.Set("returnGeometry", "true")
	values.Set("outFields", params.Binding.VariableName)
	values.Set("mosaicRule", rule)
	values.Set("sampleCount", strconv.Itoa(params.SampleCount))
	if params.ImageSR != 0 {
		values.Set("imageSR", strconv.Itoa(params.ImageSR))
	}
	return values, nil
}

// SamplesURL returns the getSamples endpoint for a service URL.
func SamplesURL(serviceURL string) string {
	return serviceURL + "/getSamples"
}
