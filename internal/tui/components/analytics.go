package components

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/ecosmart/internal/dashboard"
	"github.com/Veraticus/ecosmart/internal/model"
	"github.com/Veraticus/ecosmart/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// AnalyticsConfig wires an AnalyticsModel.
type AnalyticsConfig struct {
	Logger       *slog.Logger
	Theme        themes.Theme
	RefreshDelay time.Duration
}

// AnalyticsModel renders the KPI cards and charts.
type AnalyticsModel struct {
	analytics    *dashboard.Analytics
	logger       *slog.Logger
	theme        themes.Theme
	keys         AnalyticsKeyMap
	spinner      spinner.Model
	refreshDelay time.Duration
	width        int
}

// NewAnalyticsModel creates the view with nothing selected.
func NewAnalyticsModel(cfg AnalyticsConfig) AnalyticsModel {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return AnalyticsModel{
		analytics: dashboard.NewAnalytics(),
		logger:    cfg.Logger.With("component", "analytics"),
		theme:     cfg.Theme,
		keys:      DefaultAnalyticsKeyMap(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(cfg.Theme.Primary)),
		),
		refreshDelay: cfg.RefreshDelay,
		width:        96,
	}
}

// Analytics exposes the underlying state.
func (m AnalyticsModel) Analytics() *dashboard.Analytics {
	return m.analytics
}

// Keys returns the view's bindings.
func (m AnalyticsModel) Keys() AnalyticsKeyMap {
	return m.keys
}

// SetWidth sets the rendered width.
func (m *AnalyticsModel) SetWidth(width int) {
	m.width = max(width, 40)
}

// Update handles messages.
func (m AnalyticsModel) Update(msg tea.Msg) (AnalyticsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case analyticsRefreshedMsg:
		if m.analytics.FinishRefresh() {
			m.logger.Info("analytics refreshed")
		}

	case spinner.TickMsg:
		if m.analytics.Refreshing() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m AnalyticsModel) handleKey(msg tea.KeyMsg) (AnalyticsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		seg := m.analytics.Cycle(1)
		m.logger.Debug("segment selected", "segment", seg.Name)
	case key.Matches(msg, m.keys.Prev):
		seg := m.analytics.Cycle(-1)
		m.logger.Debug("segment selected", "segment", seg.Name)
	case key.Matches(msg, m.keys.Clear):
		m.analytics.Clear()
	case key.Matches(msg, m.keys.Day):
		m.analytics.SetTimeRange(model.RangeDay)
	case key.Matches(msg, m.keys.Week):
		m.analytics.SetTimeRange(model.RangeWeek)
	case key.Matches(msg, m.keys.Month):
		m.analytics.SetTimeRange(model.RangeMonth)
	case key.Matches(msg, m.keys.Year):
		m.analytics.SetTimeRange(model.RangeYear)
	case key.Matches(msg, m.keys.Refresh):
		if !m.analytics.BeginRefresh() {
			return m, nil
		}
		return m, tea.Batch(m.spinner.Tick, after(m.refreshDelay, analyticsRefreshedMsg{}))
	}
	return m, nil
}

// View renders the analytics panel.
func (m AnalyticsModel) View() string {
	sections := []string{
		m.renderHeader(),
		"",
		m.renderKPIs(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderDistribution(),
			"  ",
			m.renderTrends(),
		),
		"",
		m.renderForecast(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m AnalyticsModel) renderHeader() string {
	var ranges []string
	for _, r := range model.TimeRanges {
		label := " " + r.Label() + " "
		if r == m.analytics.TimeRange() {
			ranges = append(ranges, m.theme.Selected.Render(label))
		} else {
			ranges = append(ranges, m.theme.Normal.Render(label))
		}
	}

	refresh := m.theme.Badge.Render("R") + " " + m.theme.Normal.Render("Refresh")
	if m.analytics.Refreshing() {
		refresh = m.spinner.View() + " " + m.theme.StatusPending.Render("Refreshing...")
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(ranges, ""), "   ", refresh)
}

func (m AnalyticsModel) renderKPIs() string {
	cardWidth := max((m.width-8)/4, 16)
	cards := make([]string, 0, 4)
	for _, kpi := range m.analytics.KPIs() {
		value := m.theme.Bold.Render(kpi.Value)
		note := m.theme.StatusPending.Render(kpi.Note)
		if kpi.Category.Known() {
			style := m.theme.StyleFor(kpi.Category)
			value = lipgloss.NewStyle().Bold(true).Foreground(style.Color).Render(kpi.Value)
		}
		if kpi.Category == model.CategoryEWaste {
			note = m.theme.StatusWarning.Render(kpi.Note)
		}
		cards = append(cards, m.theme.Card.Width(cardWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left, m.theme.Subtitle.Render(kpi.Label), value, note),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m AnalyticsModel) renderDistribution() string {
	const barWidth = 20

	rows := []string{m.theme.Title.Render("Waste Distribution"), ""}
	_, hasSelection := m.analytics.Selected()

	for _, seg := range m.analytics.Segments() {
		color := lipgloss.Color(seg.Color)
		filled := seg.Value * barWidth / 100

		marker := "  "
		label := m.theme.Normal.Render(seg.Name)
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
		switch {
		case seg.Selected:
			marker = lipgloss.NewStyle().Foreground(color).Render("▶ ")
			label = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(color).Render(seg.Name)
			bar = lipgloss.NewStyle().Foreground(color).Bold(true).Render(strings.Repeat("█", filled))
		case hasSelection:
			bar = lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Repeat("▒", filled))
		}

		rows = append(rows,
			marker+label,
			"  "+bar+strings.Repeat(" ", barWidth-filled)+" "+strconv.Itoa(seg.Value)+"%",
		)
	}

	if seg, ok := m.analytics.Selected(); ok {
		rows = append(rows, "",
			m.theme.Bold.Render(fmt.Sprintf("%s: %d%%", seg.Name, seg.Value)),
			m.theme.Badge.Render("x")+" "+m.theme.Normal.Render("Clear Selection"))
	} else {
		rows = append(rows, "", m.theme.StatusPending.Render("←/→ select a segment"))
	}

	return m.theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m AnalyticsModel) renderTrends() string {
	const barWidth = 30

	trends := m.analytics.WeeklyTrends()
	peak := 0
	for _, t := range trends {
		peak = max(peak, t.Total())
	}

	bio := lipgloss.NewStyle().Foreground(m.theme.StyleFor(model.CategoryBiodegradable).Color)
	nonBio := lipgloss.NewStyle().Foreground(m.theme.StyleFor(model.CategoryNonBiodegradable).Color)
	ewaste := lipgloss.NewStyle().Foreground(m.theme.StyleFor(model.CategoryEWaste).Color)

	scale := func(v int) int {
		if peak == 0 {
			return 0
		}
		return v * barWidth / peak
	}

	rows := []string{m.theme.Title.Render("Weekly Waste Trends"), ""}
	for _, t := range trends {
		rows = append(rows, fmt.Sprintf("%s %s%s%s %d",
			t.Day,
			bio.Render(strings.Repeat("█", scale(t.Biodegradable))),
			nonBio.Render(strings.Repeat("█", scale(t.NonBiodegradable))),
			ewaste.Render(strings.Repeat("█", scale(t.EWaste))),
			t.Total(),
		))
	}
	rows = append(rows, "",
		bio.Render("■")+" Biodegradable  "+nonBio.Render("■")+" Non-Biodegradable  "+ewaste.Render("■")+" E-Waste")

	return m.theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m AnalyticsModel) renderForecast() string {
	points := m.analytics.Forecast()
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		actual := "—"
		if p.Actual != nil {
			actual = strconv.Itoa(*p.Actual)
		}
		rows = append(rows, []string{p.Month, strconv.Itoa(p.Predicted), actual})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(m.theme.Border)).
		Headers("Month", "Predicted", "Actual").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true).Foreground(m.theme.Primary)
			}
			if col == 2 && rows[row][2] == "—" {
				return style.Foreground(m.theme.Muted)
			}
			return style
		})

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Waste Volume Forecast"),
		t.Render(),
	)
}
