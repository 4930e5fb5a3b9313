package dashboard

import (
	"slices"

	"github.com/Veraticus/ecosmart/internal/model"
)

// HistoryCapacity is the number of entries the history list keeps.
const HistoryCapacity = 4

// History is the bounded list of recent classifications, newest first.
type History struct {
	entries    []model.HistoryEntry
	refreshing bool
}

// NewHistory returns a history seeded with the mock entries.
func NewHistory() *History {
	h := &History{}
	for _, seed := range seedHistory {
		h.entries = append(h.entries, model.HistoryEntry{
			ID:                   model.NewID(),
			ClassificationResult: seed.result,
			DisplayAge:           seed.age,
		})
	}
	return h
}

// Apply prepends an entry for ev, evicting the oldest entry past capacity.
// The entry takes the event's id, so an event already on the list is not
// added again.
func (h *History) Apply(ev model.ClassificationEvent) bool {
	if slices.ContainsFunc(h.entries, func(e model.HistoryEntry) bool { return e.ID == ev.ID }) {
		return false
	}

	entry := model.HistoryEntry{
		ID:                   ev.ID,
		ClassificationResult: ev.Result,
		DisplayAge:           model.AgeJustNow,
	}
	h.entries = append([]model.HistoryEntry{entry}, h.entries...)
	if len(h.entries) > HistoryCapacity {
		h.entries = h.entries[:HistoryCapacity]
	}
	return true
}

// BeginRefresh marks a refresh pending. It returns false if one already is.
func (h *History) BeginRefresh() bool {
	if h.refreshing {
		return false
	}
	h.refreshing = true
	return true
}

// FinishRefresh advances every entry's display age one step.
func (h *History) FinishRefresh() bool {
	if !h.refreshing {
		return false
	}
	h.refreshing = false
	for i := range h.entries {
		h.entries[i].DisplayAge = h.entries[i].DisplayAge.Next()
	}
	return true
}

// Refreshing reports whether a refresh is pending.
func (h *History) Refreshing() bool {
	return h.refreshing
}

// Entries returns a copy of the list.
func (h *History) Entries() []model.HistoryEntry {
	out := make([]model.HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}
