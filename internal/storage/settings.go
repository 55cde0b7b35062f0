package storage

import (
	"time"

	"tempodash/internal/core/model"
)

// Settings defines the dashboard defaults restored at startup.
type Settings struct {
	OverallStart time.Time
	OverallEnd   time.Time
	Variable     string
	Granularity  model.Granularity
	FrameDelay   time.Duration
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		OverallStart: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		OverallEnd:   time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
		Variable:     "NO2",
		Granularity:  model.GranularityDaily,
		FrameDelay:   200 * time.Millisecond,
	}
}

// OverallBound returns the configured outer time bound.
func (settings Settings) OverallBound() model.Interval {
	return model.NewInterval(settings.OverallStart, settings.OverallEnd)
}
