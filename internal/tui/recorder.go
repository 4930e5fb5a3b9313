package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Recorder captures shell state and rendered frames for debugging.
type Recorder struct {
	logFile  *os.File
	frameDir string
	frameNum int
	enabled  bool
}

// NewRecorder creates a recorder writing under a fresh temp directory. A
// disabled recorder, or one whose directory cannot be created, does nothing.
func NewRecorder(enabled bool) *Recorder {
	if !enabled {
		return &Recorder{}
	}

	recordDir := filepath.Join(os.TempDir(), fmt.Sprintf("ecosmart-record-%d", time.Now().Unix()))
	if err := os.MkdirAll(recordDir, 0750); err != nil {
		return &Recorder{}
	}

	logFile, err := os.Create(filepath.Join(recordDir, "frames.log")) // #nosec G304 -- constructed path
	if err != nil {
		return &Recorder{}
	}

	r := &Recorder{
		enabled:  true,
		logFile:  logFile,
		frameDir: recordDir,
	}
	r.Log("recorder started at %s", recordDir)
	return r
}

// Dir returns the recording directory, empty when disabled.
func (r *Recorder) Dir() string {
	return r.frameDir
}

// RecordState captures the shell state after msg was applied.
func (r *Recorder) RecordState(m Model, msg tea.Msg) {
	if r == nil || !r.enabled {
		return
	}

	r.frameNum++

	r.Log("\n=== Frame %d ===", r.frameNum)
	r.Log("Time: %s", time.Now().Format("15:04:05.000"))
	r.Log("Message: %T", msg)
	r.Log("Page: %s (%q)", m.Page().Key(), m.ActivePageName())
	r.Log("Upload: %s in_flight=%v", m.upload.Flow().State(), m.upload.Flow().InFlight())
	r.Log("History: %d entries refreshing=%v", m.history.History().Len(), m.history.History().Refreshing())
	if ev, ok := m.Latest(); ok {
		r.Log("Latest: %s %s %d%%", ev.ID, ev.Result.ItemLabel, ev.Result.Confidence)
	}

	view := m.View()
	framePath := filepath.Join(r.frameDir, fmt.Sprintf("frame-%04d.txt", r.frameNum))
	if err := os.WriteFile(framePath, []byte(view), 0600); err != nil {
		r.Log("Error saving frame: %v", err)
	}
}

// Log writes a line to the recording log.
func (r *Recorder) Log(format string, args ...any) {
	if r == nil || !r.enabled {
		return
	}
	_, _ = fmt.Fprintf(r.logFile, format+"\n", args...)
}

// Close stops recording.
func (r *Recorder) Close() {
	if r == nil || !r.enabled {
		return
	}
	r.Log("recorder stopped after %d frames", r.frameNum)
	r.enabled = false
	_ = r.logFile.Close()
}
