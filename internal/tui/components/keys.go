package components

import "github.com/charmbracelet/bubbles/key"

// UploadKeyMap holds the upload card's bindings.
type UploadKeyMap struct {
	Browse   key.Binding
	Cancel   key.Binding
	Classify key.Binding
	Reset    key.Binding
	Hardware key.Binding
	Capture  key.Binding
}

// DefaultUploadKeyMap returns the default upload bindings.
func DefaultUploadKeyMap() UploadKeyMap {
	return UploadKeyMap{
		Browse: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "choose image"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "close picker"),
		),
		Classify: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "classify waste"),
		),
		Reset: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "upload different image"),
		),
		Hardware: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "toggle camera"),
		),
		Capture: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "capture"),
		),
	}
}

// HistoryKeyMap holds the history list's bindings.
type HistoryKeyMap struct {
	Refresh key.Binding
}

// DefaultHistoryKeyMap returns the default history bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh history"),
		),
	}
}

// AnalyticsKeyMap holds the analytics view's bindings.
type AnalyticsKeyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Clear   key.Binding
	Day     key.Binding
	Week    key.Binding
	Month   key.Binding
	Year    key.Binding
	Refresh key.Binding
}

// DefaultAnalyticsKeyMap returns the default analytics bindings.
func DefaultAnalyticsKeyMap() AnalyticsKeyMap {
	return AnalyticsKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous segment"),
		),
		Next: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next segment"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear selection"),
		),
		Day: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "day"),
		),
		Week: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "week"),
		),
		Month: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "month"),
		),
		Year: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "year"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh analytics"),
		),
	}
}

// Bindings lists the upload bindings in help order.
func (k UploadKeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Browse, k.Classify, k.Reset, k.Hardware, k.Capture}
}

// Bindings lists the history bindings in help order.
func (k HistoryKeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Refresh}
}

// Bindings lists the analytics bindings in help order.
func (k AnalyticsKeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Clear, k.Day, k.Week, k.Month, k.Year, k.Refresh}
}
