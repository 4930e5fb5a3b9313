package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/ecosmart/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var themeNames = []string{"catppuccin-mocha", "default"}

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper(), themeNames)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "default", cfg.UI.Theme)
	assert.Equal(t, 2*time.Second, cfg.Classifier.ManualDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.Classifier.CaptureDelay)
	assert.Equal(t, 30*time.Second, cfg.Classifier.Timeout)
	assert.Equal(t, time.Second, cfg.History.RefreshDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.Analytics.RefreshDelay)
	assert.False(t, cfg.Hardware.Connected)
	assert.Empty(t, cfg.Inbox.Dir)
	assert.Equal(t, 250*time.Millisecond, cfg.Inbox.Debounce)
}

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
ui:
  theme: catppuccin-mocha
classifier:
  manual_delay: 500ms
  capture_delay: 250ms
hardware:
  connected: true
inbox:
  dir: ` + dir + `
`)
	require.NoError(t, os.WriteFile(path, content, 0600))

	v := newViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v, themeNames)
	require.NoError(t, err)

	assert.Equal(t, "catppuccin-mocha", cfg.UI.Theme)
	assert.Equal(t, 500*time.Millisecond, cfg.Classifier.ManualDelay)
	assert.Equal(t, 250*time.Millisecond, cfg.Classifier.CaptureDelay)
	assert.True(t, cfg.Hardware.Connected)
	assert.Equal(t, dir, cfg.Inbox.Dir)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantMsg string
	}{
		{name: "negative delay", key: "classifier.manual_delay", value: "-1s", wantMsg: "classifier.manual_delay"},
		{name: "negative refresh", key: "history.refresh_delay", value: -time.Second, wantMsg: "history.refresh_delay"},
		{name: "unknown theme", key: "ui.theme", value: "solarized", wantMsg: "solarized"},
		{name: "negative width", key: "ui.width", value: -3, wantMsg: "ui.width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.value)

			_, err := Load(v, themeNames)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad_ThemeNamesComeFromCaller(t *testing.T) {
	v := newViper()
	v.Set("ui.theme", "solarized")

	cfg, err := Load(v, []string{"solarized"})
	require.NoError(t, err)
	assert.Equal(t, "solarized", cfg.UI.Theme)

	_, err = Load(newViper(), []string{"solarized", "nord"})
	require.ErrorIs(t, err, common.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "solarized, nord")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("ECOSMART_TEST_DIR", "/srv/inbox")

	tests := map[string]string{
		"":                        "",
		"~":                       home,
		"~/drops":                 filepath.Join(home, "drops"),
		"~other/drops":            "~other/drops",
		"$ECOSMART_TEST_DIR/a":    "/srv/inbox/a",
		"/absolute/path/untouched": "/absolute/path/untouched",
	}

	for in, want := range tests {
		assert.Equal(t, want, ExpandPath(in), "input %q", in)
	}
}

func TestDefaultLogFile(t *testing.T) {
	assert.Equal(t, filepath.Join(os.TempDir(), "ecosmart.log"), DefaultLogFile())
}
