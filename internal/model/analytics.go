package model

import "strings"

// TimeRange is the period selected in the analytics view.
type TimeRange string

// Time ranges offered by the analytics view.
const (
	RangeDay   TimeRange = "day"
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
	RangeYear  TimeRange = "year"
)

// TimeRanges lists the ranges in selector order.
var TimeRanges = []TimeRange{RangeDay, RangeWeek, RangeMonth, RangeYear}

// ParseTimeRange resolves a range name case-insensitively.
func ParseTimeRange(s string) (TimeRange, bool) {
	r := TimeRange(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range TimeRanges {
		if r == known {
			return r, true
		}
	}
	return "", false
}

// Label returns the capitalized range name.
func (r TimeRange) Label() string {
	if r == "" {
		return ""
	}
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}

// Segment is one slice of the waste distribution chart.
type Segment struct {
	Name     string
	Color    string
	Category Category
	Value    int
	Selected bool
}

// TrendPoint is one day of the weekly trends chart.
type TrendPoint struct {
	Day              string
	Biodegradable    int
	NonBiodegradable int
	EWaste           int
}

// Total returns the combined volume for the day.
func (t TrendPoint) Total() int {
	return t.Biodegradable + t.NonBiodegradable + t.EWaste
}

// ForecastPoint is one month of the volume forecast. Actual is nil for months
// that have not happened yet.
type ForecastPoint struct {
	Actual    *int
	Month     string
	Predicted int
}

// KPI is one summary card of the analytics view.
type KPI struct {
	Label    string
	Value    string
	Note     string
	Category Category
}
