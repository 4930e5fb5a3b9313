package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "loud", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLogger_JSON(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	require.NoError(t, SetupLogger(slog.LevelDebug, "json", &buf))

	LogError(errors.New("camera offline"), "capture failed", Fields{"origin": "capture"})

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "capture failed", record["msg"])
	assert.Equal(t, "camera offline", record["error"])
	assert.Equal(t, "capture", record["origin"])
	assert.Equal(t, "ERROR", record["level"])
}

func TestSetupLogger_LevelFilters(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	require.NoError(t, SetupLogger(slog.LevelInfo, "console", &buf))

	LogDebug("hidden", nil)
	assert.Empty(t, buf.String())

	LogInfo("navigated", Fields{"page": "Upload"})
	assert.Contains(t, buf.String(), "navigated")
	assert.Contains(t, buf.String(), "page=Upload")
}

func TestSetupLogger_InvalidFormat(t *testing.T) {
	err := SetupLogger(slog.LevelInfo, "xml", &bytes.Buffer{})
	assert.Error(t, err)
}
