package dashboard

import (
	"fmt"
	"strings"

	"github.com/Veraticus/ecosmart/internal/common"
	"github.com/Veraticus/ecosmart/internal/model"
)

// Analytics holds the transient state of the analytics view. The datasets
// themselves are fixed.
type Analytics struct {
	timeRange  model.TimeRange
	segments   []model.Segment
	refreshing bool
}

// NewAnalytics returns the view with no segment selected and the weekly range.
func NewAnalytics() *Analytics {
	segments := make([]model.Segment, len(distribution))
	copy(segments, distribution)
	return &Analytics{
		segments:  segments,
		timeRange: model.RangeWeek,
	}
}

// Select highlights the segment named name, which may be its label or
// category identifier, and unselects every other segment.
func (a *Analytics) Select(name string) error {
	idx := a.indexOf(name)
	if idx < 0 {
		return fmt.Errorf("%w: %q", common.ErrUnknownSegment, name)
	}
	a.selectIndex(idx)
	return nil
}

// Cycle moves the selection delta segments along, wrapping. With nothing
// selected, a forward step selects the first segment and a backward step the
// last.
func (a *Analytics) Cycle(delta int) model.Segment {
	n := len(a.segments)
	cur := a.selectedIndex()
	var next int
	switch {
	case cur < 0 && delta >= 0:
		next = 0
	case cur < 0:
		next = n - 1
	default:
		next = ((cur+delta)%n + n) % n
	}
	a.selectIndex(next)
	return a.segments[next]
}

// Clear unselects every segment.
func (a *Analytics) Clear() {
	for i := range a.segments {
		a.segments[i].Selected = false
	}
}

// Selected returns the highlighted segment, if any.
func (a *Analytics) Selected() (model.Segment, bool) {
	if i := a.selectedIndex(); i >= 0 {
		return a.segments[i], true
	}
	return model.Segment{}, false
}

// Segments returns a copy of the distribution segments.
func (a *Analytics) Segments() []model.Segment {
	out := make([]model.Segment, len(a.segments))
	copy(out, a.segments)
	return out
}

// TimeRange returns the selected range.
func (a *Analytics) TimeRange() model.TimeRange {
	return a.timeRange
}

// SetTimeRange records the selected range. The datasets do not depend on it.
func (a *Analytics) SetTimeRange(r model.TimeRange) {
	if _, ok := model.ParseTimeRange(string(r)); ok {
		a.timeRange = r
	}
}

// BeginRefresh marks a refresh pending. It returns false if one already is.
func (a *Analytics) BeginRefresh() bool {
	if a.refreshing {
		return false
	}
	a.refreshing = true
	return true
}

// FinishRefresh ends the pending refresh. The data has no live source and
// stays as it was.
func (a *Analytics) FinishRefresh() bool {
	if !a.refreshing {
		return false
	}
	a.refreshing = false
	return true
}

// Refreshing reports whether a refresh is pending.
func (a *Analytics) Refreshing() bool {
	return a.refreshing
}

// WeeklyTrends returns the per-day volumes.
func (a *Analytics) WeeklyTrends() []model.TrendPoint {
	out := make([]model.TrendPoint, len(weeklyTrends))
	copy(out, weeklyTrends)
	return out
}

// Forecast returns the monthly forecast.
func (a *Analytics) Forecast() []model.ForecastPoint {
	out := make([]model.ForecastPoint, len(forecast))
	copy(out, forecast)
	return out
}

// KPIs returns the summary cards.
func (a *Analytics) KPIs() []model.KPI {
	out := make([]model.KPI, len(kpis))
	copy(out, kpis)
	return out
}

func (a *Analytics) selectIndex(idx int) {
	for i := range a.segments {
		a.segments[i].Selected = i == idx
	}
}

func (a *Analytics) selectedIndex() int {
	for i, s := range a.segments {
		if s.Selected {
			return i
		}
	}
	return -1
}

func (a *Analytics) indexOf(name string) int {
	cat, isCategory := model.ParseCategory(name)
	for i, s := range a.segments {
		if strings.EqualFold(s.Name, strings.TrimSpace(name)) || (isCategory && s.Category == cat) {
			return i
		}
	}
	return -1
}
