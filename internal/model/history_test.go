package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayAge_Next(t *testing.T) {
	tests := []struct {
		age  DisplayAge
		want DisplayAge
	}{
		{age: AgeJustNow, want: AgeOneMinute},
		{age: AgeOneMinute, want: AgeTwoMinutes},
		{age: AgeTwoMinutes, want: AgeThreeMinutes},
		{age: AgeThreeMinutes, want: AgeThreeMinutes},
		{age: "5 min ago", want: "5 min ago"},
		{age: "yesterday", want: "yesterday"},
	}

	for _, tt := range tests {
		t.Run(string(tt.age), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.age.Next())
		})
	}
}

func TestNewClassificationEvent_UniqueIDs(t *testing.T) {
	result := ClassificationResult{Category: CategoryEWaste, Confidence: 90, ItemLabel: "Electronic device"}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ev := NewClassificationEvent(result, SourceManual, fixedTime)
		assert.False(t, seen[ev.ID.String()], "duplicate id %s", ev.ID)
		seen[ev.ID.String()] = true
		assert.Equal(t, result, ev.Result)
		assert.Equal(t, fixedTime, ev.CompletedAt)
	}
}
