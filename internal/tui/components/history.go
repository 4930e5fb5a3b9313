package components

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/ecosmart/internal/dashboard"
	"github.com/Veraticus/ecosmart/internal/model"
	"github.com/Veraticus/ecosmart/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HistoryConfig wires a HistoryModel.
type HistoryConfig struct {
	Logger       *slog.Logger
	Theme        themes.Theme
	RefreshDelay time.Duration
}

// HistoryModel renders the recent classifications list.
type HistoryModel struct {
	history      *dashboard.History
	logger       *slog.Logger
	theme        themes.Theme
	keys         HistoryKeyMap
	spinner      spinner.Model
	bar          progress.Model
	refreshDelay time.Duration
	width        int
}

// NewHistoryModel creates the list with its seed entries.
func NewHistoryModel(cfg HistoryConfig) HistoryModel {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	bar := progress.New(progress.WithSolidFill(string(cfg.Theme.Primary)), progress.WithoutPercentage())
	bar.Width = 16

	return HistoryModel{
		history: dashboard.NewHistory(),
		logger:  cfg.Logger.With("component", "history"),
		theme:   cfg.Theme,
		keys:    DefaultHistoryKeyMap(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(cfg.Theme.Primary)),
		),
		bar:          bar,
		refreshDelay: cfg.RefreshDelay,
		width:        48,
	}
}

// History exposes the underlying list.
func (m HistoryModel) History() *dashboard.History {
	return m.history
}

// Keys returns the list's bindings.
func (m HistoryModel) Keys() HistoryKeyMap {
	return m.keys
}

// SetWidth sets the rendered width.
func (m *HistoryModel) SetWidth(width int) {
	m.width = max(width, 24)
	m.bar.Width = max(min(m.width/3, 24), 8)
}

// Ingest adds ev to the list unless it was already added.
func (m HistoryModel) Ingest(ev model.ClassificationEvent) bool {
	if !m.history.Apply(ev) {
		return false
	}
	m.logger.Debug("history updated", "event", ev.ID.String(), "entries", m.history.Len())
	return true
}

// Update handles messages.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Refresh) {
			return m.refresh()
		}

	case historyRefreshedMsg:
		if m.history.FinishRefresh() {
			m.logger.Info("history refreshed")
		}

	case spinner.TickMsg:
		if m.history.Refreshing() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m HistoryModel) refresh() (HistoryModel, tea.Cmd) {
	if !m.history.BeginRefresh() {
		return m, nil
	}
	m.logger.Debug("history refresh started")
	return m, tea.Batch(m.spinner.Tick, after(m.refreshDelay, historyRefreshedMsg{}))
}

// View renders the list.
func (m HistoryModel) View() string {
	action := m.theme.Badge.Render("r") + " " + m.theme.Normal.Render("Refresh")
	if m.history.Refreshing() {
		action = m.spinner.View() + " " + m.theme.StatusPending.Render("Refreshing...")
	}

	title := m.theme.Title.Render("Recent Classifications")
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		title,
		lipgloss.NewStyle().Width(max(m.width-lipgloss.Width(title)-lipgloss.Width(action)-4, 1)).Render(""),
		action,
	)

	rows := []string{header, ""}
	for _, entry := range m.history.Entries() {
		rows = append(rows, m.renderEntry(entry), "")
	}

	updated := "2 minutes ago"
	if m.history.Refreshing() {
		updated = "Updating..."
	}
	rows = append(rows, m.theme.StatusPending.Render(fmt.Sprintf("AI Model Accuracy: 94.2%% • Last Updated: %s", updated)))

	return m.theme.Card.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m HistoryModel) renderEntry(entry model.HistoryEntry) string {
	style := m.theme.StyleFor(entry.Category)
	color := lipgloss.NewStyle().Foreground(style.Color)

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		color.Render(style.Icon)+" ",
		m.theme.Bold.Render(entry.ItemLabel),
		"  ",
		lipgloss.NewStyle().Background(style.Color).Foreground(m.theme.Background).Padding(0, 1).Render(style.Label),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		"  ",
		m.theme.StatusPending.Render(string(entry.DisplayAge)),
		"  ",
		m.bar.ViewAs(float64(entry.Confidence)/100),
		" ",
		m.theme.Bold.Render(fmt.Sprintf("%d%%", entry.Confidence)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

// after returns a command that yields msg once d has elapsed.
func after(d time.Duration, msg tea.Msg) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}
