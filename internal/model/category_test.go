package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input  string
		want   Category
		wantOK bool
	}{
		{input: "Biodegradable", want: CategoryBiodegradable, wantOK: true},
		{input: "Non-Biodegradable", want: CategoryNonBiodegradable, wantOK: true},
		{input: "nonbiodegradable", want: CategoryNonBiodegradable, wantOK: true},
		{input: "E-Waste", want: CategoryEWaste, wantOK: true},
		{input: "e_waste", want: CategoryEWaste, wantOK: true},
		{input: " RECYCLABLE ", want: CategoryRecyclable, wantOK: true},
		{input: "Compost", want: CategoryUnknown, wantOK: false},
		{input: "", want: CategoryUnknown, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseCategory(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestCategory_StringRoundTrip(t *testing.T) {
	for _, c := range Categories {
		parsed, ok := ParseCategory(c.String())
		assert.True(t, ok, c.String())
		assert.Equal(t, c, parsed)
		assert.True(t, c.Known())
	}

	assert.Equal(t, "Unknown", CategoryUnknown.String())
	assert.False(t, CategoryUnknown.Known())
	assert.False(t, Category(42).Known())
}
