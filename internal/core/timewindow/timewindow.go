// Package timewindow resolves instants into query windows for the time
// dimension of the imagery services. All calendar fields are taken in UTC.
package timewindow

import (
	"time"

	"tempodash/internal/core/model"
)

// Year returns the window covering the instant's calendar year.
// The end carries a one-day pad past Dec 31 23:59:59.999 so that
// inclusive/exclusive boundary queries do not drop the last day.
func Year(instant time.Time) model.Interval {
	instant = instant.UTC()
	start := time.Date(instant.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	lastInstant := time.Date(instant.Year(), time.December, 31, 23, 59, 59, 999_000_000, time.UTC)
	return model.Interval{Start: start, End: lastInstant.AddDate(0, 0, 1)}
}

// Month returns the window from the first instant of start's month to the
// last millisecond of end's month. When start and end fall in different
// months the window spans both; multi-month selections rely on this.
func Month(start, end time.Time) model.Interval {
	start = start.UTC()
	end = end.UTC()
	windowStart := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := time.Date(end.Year(), end.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	return model.Interval{Start: windowStart, End: nextMonth.Add(-time.Millisecond)}
}

// Day returns the window from midnight of the instant's day, 24 hours wide.
func Day(instant time.Time) model.Interval {
	instant = instant.UTC()
	start := time.Date(instant.Year(), instant.Month(), instant.Day(), 0, 0, 0, 0, time.UTC)
	return model.Interval{Start: start, End: start.Add(24 * time.Hour)}
}

// Hour returns the window from the top of the instant's hour, one hour wide.
func Hour(instant time.Time) model.Interval {
	instant = instant.UTC()
	start := time.Date(instant.Year(), instant.Month(), instant.Day(), instant.Hour(), 0, 0, 0, time.UTC)
	return model.Interval{Start: start, End: start.Add(time.Hour)}
}

// DayOfYear returns the 1-based ordinal day within the instant's calendar
// year. Dec 31 of a leap year yields 366.
func DayOfYear(instant time.Time) int {
	return instant.UTC().YearDay()
}

// ForGranularity resolves the committed interval into a query window for
// the given bucket size.
func ForGranularity(granularity model.Granularity, interval model.Interval) model.Interval {
	switch granularity {
	case model.GranularityHourly:
		return Hour(interval.Start)
	case model.GranularityMonthly:
		return Month(interval.Start, interval.End)
	case model.GranularityYearly:
		return Year(interval.Start)
	default:
		return Day(interval.Start)
	}
}
