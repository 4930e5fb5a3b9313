package tui

import (
	"strconv"

	"github.com/Veraticus/ecosmart/internal/model"
	"github.com/Veraticus/ecosmart/internal/tui/components"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the shell's keyboard shortcuts plus those of the cards it
// hosts, for the help bar.
type KeyMap struct {
	Upload    components.UploadKeyMap
	History   components.HistoryKeyMap
	Analytics components.AnalyticsKeyMap

	Pages    []key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	pages := make([]key.Binding, len(model.Pages))
	for i, p := range model.Pages {
		n := strconv.Itoa(i + 1)
		pages[i] = key.NewBinding(
			key.WithKeys(n),
			key.WithHelp(n, p.Label()),
		)
	}

	return KeyMap{
		Upload:    components.DefaultUploadKeyMap(),
		History:   components.DefaultHistoryKeyMap(),
		Analytics: components.DefaultAnalyticsKeyMap(),
		Pages:     pages,
		NextPage: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "previous page"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// pageHelp adapts the key map to help.KeyMap for one page.
type pageHelp struct {
	keys KeyMap
	page model.Page
}

func (k KeyMap) forPage(p model.Page) pageHelp {
	return pageHelp{keys: k, page: p}
}

// ShortHelp returns key bindings for the short help view.
func (h pageHelp) ShortHelp() []key.Binding {
	short := []key.Binding{h.keys.NextPage}
	if h.page == model.PageDashboard || h.page == model.PageUpload {
		short = append(short, h.keys.Upload.Browse, h.keys.Upload.Classify)
	}
	return append(short, h.keys.Help, h.keys.Quit)
}

// FullHelp returns all key bindings relevant to the page.
func (h pageHelp) FullHelp() [][]key.Binding {
	groups := [][]key.Binding{
		append([]key.Binding{h.keys.NextPage, h.keys.PrevPage}, h.keys.Pages...),
	}

	switch h.page {
	case model.PageDashboard:
		groups = append(groups, h.keys.Upload.Bindings(), h.keys.History.Bindings(), h.keys.Analytics.Bindings())
	case model.PageUpload:
		groups = append(groups, h.keys.Upload.Bindings(), h.keys.History.Bindings())
	case model.PageAnalytics:
		groups = append(groups, h.keys.Analytics.Bindings())
	case model.PageClassification:
		groups = append(groups, h.keys.History.Bindings())
	}

	return append(groups, []key.Binding{h.keys.Help, h.keys.Quit})
}
