package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/Veraticus/ecosmart/internal/classifier"
	"github.com/Veraticus/ecosmart/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Context               context.Context
	Classifier            classifier.Classifier
	Logger                *slog.Logger
	Now                   func() time.Time
	Theme                 themes.Theme
	SettingsYAML          string
	StartDir              string
	InboxDir              string
	InboxDebounce         time.Duration
	HistoryRefreshDelay   time.Duration
	AnalyticsRefreshDelay time.Duration
	Width                 int
	Height                int
	HardwareConnected     bool
	Record                bool
	AltScreen             bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Context:               context.Background(),
		Classifier:            classifier.NewMock(),
		Logger:                slog.Default(),
		Now:                   time.Now,
		Theme:                 themes.Default,
		HistoryRefreshDelay:   time.Second,
		AnalyticsRefreshDelay: 1500 * time.Millisecond,
		Width:                 120,
		Height:                40,
		AltScreen:             true,
	}
}

// WithClassifier sets the image classifier.
func WithClassifier(c classifier.Classifier) Option {
	return func(cfg *Config) {
		cfg.Classifier = c
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(cfg *Config) {
		cfg.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(cfg *Config) {
		cfg.Width = width
		cfg.Height = height
	}
}

// WithLogger sets the logger. The dashboard owns the terminal, so this
// should not write to stdout or stderr.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// WithClock overrides the time source used to stamp classifications.
func WithClock(now func() time.Time) Option {
	return func(cfg *Config) {
		cfg.Now = now
	}
}

// WithHardware sets the initial camera connection.
func WithHardware(connected bool) Option {
	return func(cfg *Config) {
		cfg.HardwareConnected = connected
	}
}

// WithInbox watches dir for dropped images.
func WithInbox(dir string, debounce time.Duration) Option {
	return func(cfg *Config) {
		cfg.InboxDir = dir
		cfg.InboxDebounce = debounce
	}
}

// WithRefreshDelays sets the simulated refresh latencies.
func WithRefreshDelays(history, analytics time.Duration) Option {
	return func(cfg *Config) {
		cfg.HistoryRefreshDelay = history
		cfg.AnalyticsRefreshDelay = analytics
	}
}

// WithSettings sets the configuration text shown on the settings page.
func WithSettings(yaml string) Option {
	return func(cfg *Config) {
		cfg.SettingsYAML = yaml
	}
}

// WithStartDir sets the directory the file picker opens in.
func WithStartDir(dir string) Option {
	return func(cfg *Config) {
		cfg.StartDir = dir
	}
}

// WithRecorder records every frame to a temp directory for debugging.
func WithRecorder(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Record = enabled
	}
}

// WithAltScreen controls whether the program takes over the full screen.
func WithAltScreen(enabled bool) Option {
	return func(cfg *Config) {
		cfg.AltScreen = enabled
	}
}
