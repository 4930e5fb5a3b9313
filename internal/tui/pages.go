package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/ecosmart/internal/model"
	"github.com/Veraticus/ecosmart/internal/tui/themes"
	"github.com/charmbracelet/glamour"
)

const forecastingPage = `## Forecasting

Forecasting module coming soon...

The analytics page already shows the six month volume forecast. This page
will hold per-category projections and seasonal breakdowns.
`

const locationPage = `## Location Tracking

Location tracking module coming soon...

| Collection point | Status |
|---|---|
| Route planning | not connected |
| Bin fill sensors | not connected |
`

const settingsPage = `## Settings

Settings panel coming soon...

Effective configuration for this session:

` + "```yaml\n%s```\n"

// pageRenderer renders the markdown pages and caches them per width.
type pageRenderer struct {
	logger   *slog.Logger
	cache    map[model.Page]string
	theme    themes.Theme
	settings string
	width    int
}

func newPageRenderer(theme themes.Theme, settings string, logger *slog.Logger) *pageRenderer {
	if settings == "" {
		settings = "# no configuration file loaded\n"
	}
	if !strings.HasSuffix(settings, "\n") {
		settings += "\n"
	}
	return &pageRenderer{
		logger:   logger,
		cache:    make(map[model.Page]string),
		theme:    theme,
		settings: settings,
		width:    80,
	}
}

// SetWidth changes the wrap width and drops cached renders.
func (r *pageRenderer) SetWidth(width int) {
	if width == r.width {
		return
	}
	r.width = width
	clear(r.cache)
}

// Render returns the rendered page, falling back to the raw markdown if
// glamour fails.
func (r *pageRenderer) Render(page model.Page) string {
	if out, ok := r.cache[page]; ok {
		return out
	}

	source := r.markdown(page)
	out := source

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.theme.GlamourStyle),
		glamour.WithWordWrap(r.width),
	)
	if err == nil {
		out, err = renderer.Render(source)
	}
	if err != nil {
		r.logger.Warn("failed to render page", "page", page.Key(), "error", err)
		out = source
	}

	r.cache[page] = out
	return out
}

func (r *pageRenderer) markdown(page model.Page) string {
	switch page {
	case model.PageForecasting:
		return forecastingPage
	case model.PageLocation:
		return locationPage
	case model.PageSettings:
		return fmt.Sprintf(settingsPage, r.settings)
	default:
		return ""
	}
}
