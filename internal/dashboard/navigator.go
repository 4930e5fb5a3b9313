// Package dashboard holds the state of the dashboard's four screens as plain
// containers with explicit mutations. Nothing here knows about terminals or
// timers; the tui package drives these types from its Update loop.
package dashboard

import "github.com/Veraticus/ecosmart/internal/model"

// Navigator tracks the active page.
type Navigator struct {
	active string
}

// NewNavigator starts on the dashboard page.
func NewNavigator() *Navigator {
	return &Navigator{active: model.NormalizePageName(model.PageDashboard.Key())}
}

// Navigate makes id the active page name and returns the page it resolves
// to. Unknown ids are kept as the name but resolve to PageDashboard.
func (n *Navigator) Navigate(id string) model.Page {
	n.active = model.NormalizePageName(id)
	return n.Page()
}

// Active returns the normalized active page name.
func (n *Navigator) Active() string {
	return n.active
}

// Page returns the page the active name resolves to.
func (n *Navigator) Page() model.Page {
	return model.PageFromName(n.active)
}

// Step moves delta pages along the sidebar order, wrapping at both ends.
func (n *Navigator) Step(delta int) model.Page {
	count := len(model.Pages)
	idx := (int(n.Page()) + delta%count + count) % count
	return n.Navigate(model.Pages[idx].Key())
}
