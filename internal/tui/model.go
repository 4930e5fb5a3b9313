// Package tui implements the terminal dashboard.
package tui

import (
	"log/slog"

	"github.com/Veraticus/ecosmart/internal/dashboard"
	"github.com/Veraticus/ecosmart/internal/imaging"
	"github.com/Veraticus/ecosmart/internal/model"
	"github.com/Veraticus/ecosmart/internal/tui/components"
	"github.com/Veraticus/ecosmart/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the dashboard shell: sidebar navigation around the page bodies,
// and owner of the latest classification.
type Model struct {
	theme     themes.Theme
	logger    *slog.Logger
	nav       *dashboard.Navigator
	latest    *model.ClassificationEvent
	recorder  *Recorder
	pages     *pageRenderer
	config    Config
	keymap    KeyMap
	help      help.Model
	upload    components.UploadModel
	analytics components.AnalyticsModel
	history   components.HistoryModel
	width     int
	height    int
	quitting  bool
}

// NewModel builds the shell.
func NewModel(opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(cfg)
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	logger := cfg.Logger.With("component", "shell")

	m := Model{
		theme:  cfg.Theme,
		logger: logger,
		nav:    dashboard.NewNavigator(),
		pages:  newPageRenderer(cfg.Theme, cfg.SettingsYAML, cfg.Logger),
		config: cfg,
		keymap: DefaultKeyMap(),
		help:   help.New(),
		upload: components.NewUploadModel(components.UploadConfig{
			Context:           cfg.Context,
			Classifier:        cfg.Classifier,
			Logger:            cfg.Logger,
			Now:               cfg.Now,
			StartDir:          cfg.StartDir,
			Theme:             cfg.Theme,
			HardwareConnected: cfg.HardwareConnected,
		}),
		history: components.NewHistoryModel(components.HistoryConfig{
			Logger:       cfg.Logger,
			Theme:        cfg.Theme,
			RefreshDelay: cfg.HistoryRefreshDelay,
		}),
		analytics: components.NewAnalyticsModel(components.AnalyticsConfig{
			Logger:       cfg.Logger,
			Theme:        cfg.Theme,
			RefreshDelay: cfg.AnalyticsRefreshDelay,
		}),
		width:  cfg.Width,
		height: cfg.Height,
	}
	m.recorder = NewRecorder(cfg.Record)
	m.resize()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	m.logger.Info("dashboard started", "page", m.nav.Page().Key())
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	m.recorder.RecordState(next, msg)
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case components.DropMsg:
		return m.drop(msg)

	case components.ClassificationCompleteMsg:
		ev := msg.Event
		m.latest = &ev
		m.history.Ingest(ev)
		return m, nil
	}

	return m.broadcast(msg)
}

// handleKey applies shell shortcuts, then hands the key to the cards on the
// active page.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	if m.upload.Picking() {
		var cmd tea.Cmd
		m.upload, cmd = m.upload.Update(msg)
		return m, cmd
	}

	if msg.Paste {
		paths := imaging.ParseDropped(string(msg.Runes))
		if len(paths) == 0 {
			return m, nil
		}
		return m.drop(components.DropMsg{Origin: model.OriginPaste, Paths: paths})
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m.quit()
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keymap.NextPage):
		m.navigate(m.nav.Step(1).Key())
		return m, nil
	case key.Matches(msg, m.keymap.PrevPage):
		m.navigate(m.nav.Step(-1).Key())
		return m, nil
	}

	for i, binding := range m.keymap.Pages {
		if key.Matches(msg, binding) {
			m.navigate(model.Pages[i].Key())
			return m, nil
		}
	}

	return m.routeToPage(msg)
}

// Navigate switches to the page named id. Unknown names show the dashboard.
func (m *Model) Navigate(id string) model.Page {
	return m.navigate(id)
}

func (m *Model) navigate(id string) model.Page {
	from := m.nav.Page()
	to := m.nav.Navigate(id)
	if from != to {
		m.logger.Debug("navigated", "from", from.Key(), "to", to.Key(), "requested", id)
	}
	return to
}

// drop brings the upload card on screen if needed and hands it the paths.
func (m Model) drop(msg components.DropMsg) (Model, tea.Cmd) {
	if !pageShowsUpload(m.nav.Page()) {
		m.navigate(model.PageUpload.Key())
	}
	var cmd tea.Cmd
	m.upload, cmd = m.upload.Update(msg)
	return m, cmd
}

func (m Model) routeToPage(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	page := m.nav.Page()

	if pageShowsAnalytics(page) {
		m.analytics, cmd = m.analytics.Update(msg)
		cmds = append(cmds, cmd)
	}
	if pageShowsUpload(page) {
		m.upload, cmd = m.upload.Update(msg)
		cmds = append(cmds, cmd)
	}
	if pageShowsHistory(page) {
		m.history, cmd = m.history.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// broadcast delivers non-key messages to every card, on screen or not, so
// pending work completes regardless of navigation.
func (m Model) broadcast(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.upload, cmd = m.upload.Update(msg)
	cmds = append(cmds, cmd)
	m.history, cmd = m.history.Update(msg)
	cmds = append(cmds, cmd)
	m.analytics, cmd = m.analytics.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.logger.Info("dashboard closed",
		"page", m.nav.Page().Key(),
		"in_flight", m.upload.Flow().InFlight())
	m.recorder.Close()
	return m, tea.Quit
}

// resize adjusts card widths to the terminal.
func (m *Model) resize() {
	body := max(m.width-components.SidebarWidth-4, 40)
	m.help.Width = body

	m.analytics.SetWidth(body)
	if body >= 100 {
		m.upload.SetWidth(body/2 - 1)
		m.history.SetWidth(body/2 - 1)
	} else {
		m.upload.SetWidth(body)
		m.history.SetWidth(body)
	}
	m.pages.SetWidth(body)
}

// Page returns the active page.
func (m Model) Page() model.Page {
	return m.nav.Page()
}

// ActivePageName returns the normalized name of the active page.
func (m Model) ActivePageName() string {
	return m.nav.Active()
}

// Latest returns the most recent classification, if any.
func (m Model) Latest() (model.ClassificationEvent, bool) {
	if m.latest == nil {
		return model.ClassificationEvent{}, false
	}
	return *m.latest, true
}

// Upload returns the upload card.
func (m Model) Upload() components.UploadModel {
	return m.upload
}

// History returns the history card.
func (m Model) History() components.HistoryModel {
	return m.history
}

// Analytics returns the analytics card.
func (m Model) Analytics() components.AnalyticsModel {
	return m.analytics
}

func pageShowsUpload(p model.Page) bool {
	return p == model.PageDashboard || p == model.PageUpload
}

func pageShowsHistory(p model.Page) bool {
	return p == model.PageDashboard || p == model.PageUpload || p == model.PageClassification
}

func pageShowsAnalytics(p model.Page) bool {
	return p == model.PageDashboard || p == model.PageAnalytics
}
