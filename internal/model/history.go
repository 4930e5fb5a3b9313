package model

import "github.com/google/uuid"

// DisplayAge is the coarse "N min ago" label shown next to a history entry.
// It is advanced manually and never derived from a clock.
type DisplayAge string

// Display ages along the refresh progression.
const (
	AgeJustNow      DisplayAge = "Just now"
	AgeOneMinute    DisplayAge = "1 min ago"
	AgeTwoMinutes   DisplayAge = "2 min ago"
	AgeThreeMinutes DisplayAge = "3 min ago"
)

// Next returns the label one step further along the progression. Labels at
// or past "3 min ago", and labels outside the progression, are returned
// unchanged.
func (a DisplayAge) Next() DisplayAge {
	switch a {
	case AgeJustNow:
		return AgeOneMinute
	case AgeOneMinute:
		return AgeTwoMinutes
	case AgeTwoMinutes:
		return AgeThreeMinutes
	default:
		return a
	}
}

// HistoryEntry is one row of the recent classifications list.
type HistoryEntry struct {
	DisplayAge DisplayAge
	ClassificationResult
	ID uuid.UUID
}
