package model

import "strings"

// Category is one of the fixed waste classifications.
type Category int

// Waste categories. CategoryUnknown is never produced by a classifier; it
// exists so display code has a defined fallback.
const (
	CategoryUnknown Category = iota
	CategoryBiodegradable
	CategoryNonBiodegradable
	CategoryEWaste
	CategoryRecyclable
)

// Categories lists the known categories in display order.
var Categories = []Category{
	CategoryBiodegradable,
	CategoryNonBiodegradable,
	CategoryEWaste,
	CategoryRecyclable,
}

// String returns the display label of the category.
func (c Category) String() string {
	switch c {
	case CategoryBiodegradable:
		return "Biodegradable"
	case CategoryNonBiodegradable:
		return "Non-Biodegradable"
	case CategoryEWaste:
		return "E-Waste"
	case CategoryRecyclable:
		return "Recyclable"
	default:
		return "Unknown"
	}
}

// Known reports whether c is one of the four waste categories.
func (c Category) Known() bool {
	return c >= CategoryBiodegradable && c <= CategoryRecyclable
}

// ParseCategory resolves a display label or identifier such as
// "Non-Biodegradable", "nonbiodegradable" or "e_waste". Unrecognized input
// yields CategoryUnknown and false.
func ParseCategory(s string) (Category, bool) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "biodegradable":
		return CategoryBiodegradable, true
	case "nonbiodegradable":
		return CategoryNonBiodegradable, true
	case "ewaste":
		return CategoryEWaste, true
	case "recyclable":
		return CategoryRecyclable, true
	default:
		return CategoryUnknown, false
	}
}
