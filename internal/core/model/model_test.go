package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewIntervalSwapsInvertedEndpoints(t *testing.T) {
	later := time.Date(2023, time.June, 10, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)

	interval := NewInterval(later, earlier)
	assert.Equal(t, earlier, interval.Start)
	assert.Equal(t, later, interval.End)
	assert.Equal(t, 9*24*time.Hour, interval.Duration())
}

func TestIntervalContains(t *testing.T) {
	outer := NewInterval(
		time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
	)
	inner := NewInterval(
		time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC),
	)

	assert.True(t, outer.Contains(inner))
	assert.True(t, outer.Contains(outer))
	assert.False(t, inner.Contains(outer))
}

func TestIntervalEpochMillis(t *testing.T) {
	interval := NewInterval(
		time.UnixMilli(1686826800000).UTC(),
		time.UnixMilli(1686830400000).UTC(),
	)
	start, end := interval.EpochMillis()
	assert.Equal(t, int64(1686826800000), start)
	assert.Equal(t, int64(1686830400000), end)
}

func TestGranularityLayerSuffix(t *testing.T) {
	suffix, ok := GranularityHourly.LayerSuffix()
	assert.True(t, ok)
	assert.Equal(t, "Hourly", suffix)

	_, ok = GranularityYearly.LayerSuffix()
	assert.False(t, ok)

	_, ok = Granularity("weekly").LayerSuffix()
	assert.False(t, ok)
}

func TestGranularityValid(t *testing.T) {
	assert.True(t, GranularityYearly.Valid())
	assert.False(t, Granularity("").Valid())
	assert.False(t, Granularity("weekly").Valid())
}
