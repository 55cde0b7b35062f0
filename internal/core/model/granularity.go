package model

// Granularity is the time-bucket size used to resolve a query window
// from the committed interval.
type Granularity string

const (
	GranularityHourly  Granularity = "1h"
	GranularityDaily   Granularity = "1d"
	GranularityMonthly Granularity = "1m"
	GranularityYearly  Granularity = "1y"
)

// LayerSuffix returns the catalog layer-id suffix for the granularity.
// Yearly has no dedicated layer set and reports false.
func (granularity Granularity) LayerSuffix() (string, bool) {
	switch granularity {
	case GranularityHourly:
		return "Hourly", true
	case GranularityDaily:
		return "Daily", true
	case GranularityMonthly:
		return "Monthly", true
	default:
		return "", false
	}
}

// Valid reports whether the granularity is one of the known bucket sizes.
func (granularity Granularity) Valid() bool {
	switch granularity {
	case GranularityHourly, GranularityDaily, GranularityMonthly, GranularityYearly:
		return true
	}
	return false
}
