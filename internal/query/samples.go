package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

type samplesResponse struct {
	Samples []struct {
		Attributes map[string]any `json:"attributes"`
	} `json:"samples"`
}

// ParseSampleTimes extracts the time-dimension values from a getSamples
// response, sorted ascending. Duplicate timestamps are kept; the
// sequencer plays frames exactly as listed.
func ParseSampleTimes(data []byte) ([]time.Time, error) {
	var response samplesResponse
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&response); err != nil {
		return nil, fmt.Errorf("parse samples response: %w", err)
	}

	timestamps := make([]time.Time, 0, len(response.Samples))
	for _, sample := range response.Samples {
		raw, ok := sample.Attributes[TimeDimension].(json.Number)
		if !ok {
			continue
		}
		epoch, err := raw.Int64()
		if err != nil {
			return nil, fmt.Errorf("sample %s value %q: %w", TimeDimension, raw.String(), err)
		}
		timestamps = append(timestamps, time.UnixMilli(epoch).UTC())
	}

	sort.Slice(timestamps, func(i, j int) bool {
		return timestamps[i].Before(timestamps[j])
	})
	return timestamps, nil
}
