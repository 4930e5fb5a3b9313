// Package config loads and validates application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/Veraticus/ecosmart/internal/common"
	"github.com/spf13/viper"
)

// Config is the effective configuration of one run.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
	UI         UIConfig         `mapstructure:"ui" yaml:"ui"`
	Inbox      InboxConfig      `mapstructure:"inbox" yaml:"inbox"`
	Classifier ClassifierConfig `mapstructure:"classifier" yaml:"classifier"`
	History    RefreshConfig    `mapstructure:"history" yaml:"history"`
	Analytics  RefreshConfig    `mapstructure:"analytics" yaml:"analytics"`
	Hardware   HardwareConfig   `mapstructure:"hardware" yaml:"hardware"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	File   string `mapstructure:"file" yaml:"file"`
}

// UIConfig controls the terminal dashboard.
type UIConfig struct {
	Theme  string `mapstructure:"theme" yaml:"theme"`
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
}

// ClassifierConfig holds the simulated latencies of the mock classifier.
type ClassifierConfig struct {
	ManualDelay  time.Duration `mapstructure:"manual_delay" yaml:"manual_delay"`
	CaptureDelay time.Duration `mapstructure:"capture_delay" yaml:"capture_delay"`
	Timeout      time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// RefreshConfig holds the simulated latency of a refresh action.
type RefreshConfig struct {
	RefreshDelay time.Duration `mapstructure:"refresh_delay" yaml:"refresh_delay"`
}

// HardwareConfig controls the simulated capture device.
type HardwareConfig struct {
	Connected bool `mapstructure:"connected" yaml:"connected"`
}

// InboxConfig controls the drop directory watcher. An empty Dir disables it.
type InboxConfig struct {
	Dir      string        `mapstructure:"dir" yaml:"dir"`
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.width", 120)
	v.SetDefault("ui.height", 40)
	v.SetDefault("classifier.manual_delay", 2*time.Second)
	v.SetDefault("classifier.capture_delay", 1500*time.Millisecond)
	v.SetDefault("classifier.timeout", 30*time.Second)
	v.SetDefault("history.refresh_delay", time.Second)
	v.SetDefault("analytics.refresh_delay", 1500*time.Millisecond)
	v.SetDefault("hardware.connected", false)
	v.SetDefault("inbox.dir", "")
	v.SetDefault("inbox.debounce", 250*time.Millisecond)
}

// Load decodes and validates the configuration held by v. themeNames lists
// the values ui.theme may take.
func Load(v *viper.Viper, themeNames []string) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}

	cfg.Inbox.Dir = ExpandPath(cfg.Inbox.Dir)
	cfg.Logging.File = ExpandPath(cfg.Logging.File)

	if err := cfg.Validate(themeNames); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and that ui.theme is one of themeNames.
func (c Config) Validate(themeNames []string) error {
	durations := []struct {
		key   string
		value time.Duration
	}{
		{"classifier.manual_delay", c.Classifier.ManualDelay},
		{"classifier.capture_delay", c.Classifier.CaptureDelay},
		{"classifier.timeout", c.Classifier.Timeout},
		{"history.refresh_delay", c.History.RefreshDelay},
		{"analytics.refresh_delay", c.Analytics.RefreshDelay},
		{"inbox.debounce", c.Inbox.Debounce},
	}
	for _, d := range durations {
		if d.value < 0 {
			return fmt.Errorf("%w: %s must not be negative", common.ErrInvalidConfig, d.key)
		}
	}

	if !slices.Contains(themeNames, c.UI.Theme) {
		return fmt.Errorf("%w: ui.theme %q is not one of %s",
			common.ErrInvalidConfig, c.UI.Theme, strings.Join(themeNames, ", "))
	}

	if c.UI.Width < 0 || c.UI.Height < 0 {
		return fmt.Errorf("%w: ui.width and ui.height must not be negative", common.ErrInvalidConfig)
	}

	return nil
}

// DefaultLogFile is where the dashboard logs when logging.file is unset, so
// log output never lands on the terminal it draws on.
func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), "ecosmart.log")
}

// ExpandPath expands a leading ~ and $VAR references in path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if rest, ok := strings.CutPrefix(path, "~"); ok && (rest == "" || rest[0] == '/') {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + rest
		}
	}

	return os.ExpandEnv(path)
}
