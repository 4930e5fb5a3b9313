// Package themes defines the color palettes and styles of the dashboard.
package themes

import (
	"sort"

	"github.com/Veraticus/ecosmart/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Selected      lipgloss.Style
	StatusPending lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Card          lipgloss.Style
	Highlighted   lipgloss.Style
	Sidebar       lipgloss.Style
	Badge         lipgloss.Style
	Accent        lipgloss.Color
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Background    lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
	Success       lipgloss.Color
	Chart         [4]lipgloss.Color
	// GlamourStyle names the glamour standard style used for markdown pages.
	GlamourStyle string
}

// Default is the default theme.
var Default = Theme{
	// Colors
	Primary:    lipgloss.Color("#10b981"),
	Accent:     lipgloss.Color("#34d399"),
	Success:    lipgloss.Color("#10b981"),
	Warning:    lipgloss.Color("#f59e0b"),
	Error:      lipgloss.Color("#ef4444"),
	Background: lipgloss.Color("#1a1a1a"),
	Foreground: lipgloss.Color("#fafafa"),
	Border:     lipgloss.Color("#404040"),
	Muted:      lipgloss.Color("#737373"),
	Chart: [4]lipgloss.Color{
		lipgloss.Color("#ef4444"),
		lipgloss.Color("#3b82f6"),
		lipgloss.Color("#f97316"),
		lipgloss.Color("#22c55e"),
	},
	GlamourStyle: "dark",

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#10b981")).
		Foreground(lipgloss.Color("#0a0a0a")).
		Bold(true),
	Highlighted: lipgloss.NewStyle().
		Background(lipgloss.Color("#404040")).
		Foreground(lipgloss.Color("#fafafa")),

	// Component styles
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
	Sidebar: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
	Badge: lipgloss.NewStyle().
		Background(lipgloss.Color("#262626")).
		Foreground(lipgloss.Color("#e5e5e5")).
		Padding(0, 1),

	// Status styles
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")).
		Bold(true),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3b82f6")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Italic(true),
}

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = Theme{
	// Colors
	Primary:    lipgloss.Color("#a6e3a1"),
	Accent:     lipgloss.Color("#94e2d5"),
	Success:    lipgloss.Color("#a6e3a1"),
	Warning:    lipgloss.Color("#f9e2af"),
	Error:      lipgloss.Color("#f38ba8"),
	Background: lipgloss.Color("#1e1e2e"),
	Foreground: lipgloss.Color("#cdd6f4"),
	Border:     lipgloss.Color("#45475a"),
	Muted:      lipgloss.Color("#6c7086"),
	Chart: [4]lipgloss.Color{
		lipgloss.Color("#f38ba8"),
		lipgloss.Color("#89b4fa"),
		lipgloss.Color("#fab387"),
		lipgloss.Color("#a6e3a1"),
	},
	GlamourStyle: "dracula",

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cdd6f4")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6adc8")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#cdd6f4")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cdd6f4")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#a6e3a1")).
		Foreground(lipgloss.Color("#1e1e2e")).
		Bold(true),
	Highlighted: lipgloss.NewStyle().
		Background(lipgloss.Color("#45475a")).
		Foreground(lipgloss.Color("#cdd6f4")),

	// Component styles
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#45475a")).
		Padding(0, 1),
	Sidebar: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color("#45475a")).
		Padding(0, 1),
	Badge: lipgloss.NewStyle().
		Background(lipgloss.Color("#313244")).
		Foreground(lipgloss.Color("#cdd6f4")).
		Padding(0, 1),

	// Status styles
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6e3a1")).
		Bold(true),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f9e2af")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f38ba8")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#89dceb")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6c7086")).
		Italic(true),
}

var registry = map[string]Theme{
	"default":          Default,
	"catppuccin-mocha": CatppuccinMocha,
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if theme, ok := registry[name]; ok {
		return theme
	}
	return Default
}

// Exists reports whether name is a registered theme.
func Exists(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns the registered theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategoryStyle is how a waste category is drawn.
type CategoryStyle struct {
	Icon  string
	Label string
	Color lipgloss.Color
}

// StyleFor maps a category to its icon and chart color. Unknown categories
// get a warning icon in the muted color.
func (t Theme) StyleFor(c model.Category) CategoryStyle {
	switch c {
	case model.CategoryBiodegradable:
		return CategoryStyle{Icon: "🍃", Label: c.String(), Color: t.Chart[0]}
	case model.CategoryNonBiodegradable:
		return CategoryStyle{Icon: "🗑", Label: c.String(), Color: t.Chart[1]}
	case model.CategoryEWaste:
		return CategoryStyle{Icon: "⚡", Label: c.String(), Color: t.Chart[2]}
	case model.CategoryRecyclable:
		return CategoryStyle{Icon: "♻", Label: c.String(), Color: t.Chart[3]}
	default:
		return CategoryStyle{Icon: "⚠", Label: c.String(), Color: t.Muted}
	}
}
