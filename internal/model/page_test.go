package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedTime = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func TestNormalizePageName(t *testing.T) {
	tests := map[string]string{
		"upload":     "Upload",
		"UPLOAD":     "Upload",
		"aNaLyTiCs":  "Analytics",
		" settings ": "Settings",
		"":           "",
		"élan":       "Élan",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizePageName(in), "input %q", in)
	}
}

func TestPageFromName(t *testing.T) {
	for _, p := range Pages {
		assert.Equal(t, p, PageFromName(p.Key()))
		assert.Equal(t, p, PageFromName(NormalizePageName(p.Key())))
	}

	assert.Equal(t, PageUpload, PageFromName("UpLoAd"))
	assert.Equal(t, PageDashboard, PageFromName("reports"))
	assert.Equal(t, PageDashboard, PageFromName(""))
}

func TestPage_LabelFallback(t *testing.T) {
	assert.Equal(t, "Location Tracking", PageLocation.Label())
	assert.Equal(t, "Dashboard", Page(99).Label())
	assert.Equal(t, "dashboard", Page(99).Key())
}

func TestParseTimeRange(t *testing.T) {
	r, ok := ParseTimeRange("Month")
	assert.True(t, ok)
	assert.Equal(t, RangeMonth, r)
	assert.Equal(t, "Month", r.Label())

	_, ok = ParseTimeRange("decade")
	assert.False(t, ok)
}
