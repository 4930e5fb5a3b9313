package tui

import (
	"fmt"

	"github.com/Veraticus/ecosmart/internal/model"
	"github.com/Veraticus/ecosmart/internal/tui/components"
	"github.com/charmbracelet/lipgloss"
)

type pageHeader struct {
	title    string
	subtitle string
}

var pageHeaders = map[model.Page]pageHeader{
	model.PageDashboard: {
		title:    "AI-Powered Smart Waste Management System",
		subtitle: "Monitor, classify, and analyze waste data with advanced AI technology",
	},
	model.PageUpload: {
		title:    "Upload Waste for Classification",
		subtitle: "Upload images of waste items for AI-powered classification and analysis",
	},
	model.PageAnalytics: {
		title:    "Waste Analytics Dashboard",
		subtitle: "Comprehensive analytics and insights for waste management optimization",
	},
	model.PageClassification: {
		title:    "Classification History",
		subtitle: "View and manage all waste classification results",
	},
	model.PageForecasting: {
		title:    "Waste Volume Forecasting",
		subtitle: "Predictive analytics for future waste generation patterns",
	},
	model.PageLocation: {
		title:    "Location Tracking",
		subtitle: "Track waste collection points and optimize routes",
	},
	model.PageSettings: {
		title:    "System Settings",
		subtitle: "Configure AI models, notifications, and system preferences",
	},
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	page := m.nav.Page()
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(page),
		"",
		m.renderBody(page),
		"",
		m.help.View(m.keymap.forPage(page)),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		components.RenderSidebar(m.theme, page, m.height),
		" ",
		body,
	)
}

func (m Model) renderHeader(page model.Page) string {
	h := pageHeaders[page]
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(m.theme.Foreground).Render(h.title),
		m.theme.Subtitle.Render(h.subtitle),
	}
	if m.latest != nil {
		r := m.latest.Result
		style := m.theme.StyleFor(r.Category)
		lines = append(lines, m.theme.StatusPending.Render("Latest: ")+
			lipgloss.NewStyle().Foreground(style.Color).Render(
				fmt.Sprintf("%s %s (%s, %d%%)", style.Icon, r.ItemLabel, style.Label, r.Confidence)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderBody(page model.Page) string {
	switch page {
	case model.PageUpload:
		return m.sideBySide(m.upload.View(), m.history.View())
	case model.PageAnalytics:
		return m.analytics.View()
	case model.PageClassification:
		return m.history.View()
	case model.PageForecasting, model.PageLocation, model.PageSettings:
		return m.pages.Render(page)
	default:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.analytics.View(),
			"",
			m.sideBySide(m.upload.View(), m.history.View()),
		)
	}
}

// sideBySide places two cards next to each other when the body is wide
// enough and stacks them otherwise.
func (m Model) sideBySide(left, right string) string {
	if m.width-components.SidebarWidth-4 >= 100 {
		return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	}
	return lipgloss.JoinVertical(lipgloss.Left, left, "", right)
}
