package components

import (
	"fmt"

	"github.com/Veraticus/ecosmart/internal/model"
	"github.com/Veraticus/ecosmart/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

var pageIcons = map[model.Page]string{
	model.PageDashboard:      "▦",
	model.PageUpload:         "⇪",
	model.PageAnalytics:      "▥",
	model.PageClassification: "◎",
	model.PageForecasting:    "↗",
	model.PageLocation:       "⌖",
	model.PageSettings:       "⚙",
}

// SidebarWidth is the fixed width of the sidebar.
const SidebarWidth = 28

// RenderSidebar draws the brand, the page menu with active highlighted, and
// the system status card.
func RenderSidebar(theme themes.Theme, active model.Page, height int) string {
	brand := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Render("♻ EcoSmart"),
		theme.StatusPending.Render("Waste Management AI"),
	)

	menu := make([]string, 0, len(model.Pages))
	for i, p := range model.Pages {
		line := fmt.Sprintf("%d %s %s", i+1, pageIcons[p], p.Label())
		if p == active {
			menu = append(menu, theme.Selected.Width(SidebarWidth-4).Padding(0, 1).Render(line))
		} else {
			menu = append(menu, theme.Normal.Width(SidebarWidth-4).Padding(0, 1).Render(line))
		}
	}

	status := theme.Card.Width(SidebarWidth - 4).Render(lipgloss.JoinVertical(lipgloss.Left,
		theme.Bold.Render("System Status"),
		theme.StatusSuccess.Render("● ")+theme.Normal.Render("AI Model: Active"),
		theme.StatusPending.Render("Last Update: 2 min ago"),
	))

	content := lipgloss.JoinVertical(lipgloss.Left,
		brand,
		"",
		lipgloss.JoinVertical(lipgloss.Left, menu...),
		"",
		status,
	)

	style := theme.Sidebar.Width(SidebarWidth)
	if height > 0 {
		style = style.Height(height)
	}
	return style.Render(content)
}
