package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Page identifies one body of the dashboard shell.
type Page int

// Dashboard pages in sidebar order.
const (
	PageDashboard Page = iota
	PageUpload
	PageAnalytics
	PageClassification
	PageForecasting
	PageLocation
	PageSettings
)

// Pages lists every page in sidebar order.
var Pages = []Page{
	PageDashboard,
	PageUpload,
	PageAnalytics,
	PageClassification,
	PageForecasting,
	PageLocation,
	PageSettings,
}

var pageKeys = map[Page]string{
	PageDashboard:      "dashboard",
	PageUpload:         "upload",
	PageAnalytics:      "analytics",
	PageClassification: "classification",
	PageForecasting:    "forecasting",
	PageLocation:       "location",
	PageSettings:       "settings",
}

var pageLabels = map[Page]string{
	PageDashboard:      "Dashboard",
	PageUpload:         "Upload Waste",
	PageAnalytics:      "Analytics",
	PageClassification: "Classification",
	PageForecasting:    "Forecasting",
	PageLocation:       "Location Tracking",
	PageSettings:       "Settings",
}

// Key returns the navigation identifier of the page.
func (p Page) Key() string {
	if key, ok := pageKeys[p]; ok {
		return key
	}
	return pageKeys[PageDashboard]
}

// Label returns the sidebar label of the page.
func (p Page) Label() string {
	if label, ok := pageLabels[p]; ok {
		return label
	}
	return pageLabels[PageDashboard]
}

// String implements fmt.Stringer.
func (p Page) String() string {
	return p.Key()
}

// PageFromName resolves a page identifier case-insensitively. Anything that
// is not a known identifier resolves to PageDashboard.
func PageFromName(name string) Page {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, p := range Pages {
		if pageKeys[p] == lower {
			return p
		}
	}
	return PageDashboard
}

// NormalizePageName case-folds name and capitalizes its first letter, so
// "UPLOAD" and "upload" both become "Upload".
func NormalizePageName(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(lower)
	return string(unicode.ToUpper(r)) + lower[size:]
}
