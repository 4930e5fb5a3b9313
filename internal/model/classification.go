// Package model defines the core domain models used throughout the application.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassificationResult is the outcome of classifying one image.
type ClassificationResult struct {
	ItemLabel  string
	Category   Category
	Confidence int
}

// EventSource records which entry point produced a classification.
type EventSource string

// Event sources.
const (
	SourceManual   EventSource = "manual"
	SourceCapture  EventSource = "capture"
	SourceHeadless EventSource = "headless"
)

// ClassificationEvent announces a completed classification. ID is unique per
// completion and is what consumers use to detect new events.
type ClassificationEvent struct {
	CompletedAt time.Time
	Source      EventSource
	Result      ClassificationResult
	ID          uuid.UUID
}

// NewClassificationEvent stamps a result with a fresh time-ordered ID.
func NewClassificationEvent(result ClassificationResult, source EventSource, completedAt time.Time) ClassificationEvent {
	return ClassificationEvent{
		ID:          NewID(),
		Result:      result,
		Source:      source,
		CompletedAt: completedAt,
	}
}

// NewID returns a time-ordered UUID, falling back to a random one if the
// clock source fails.
func NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
