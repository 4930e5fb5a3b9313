package tui

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/ecosmart/internal/classifier"
	"github.com/Veraticus/ecosmart/internal/dashboard"
	"github.com/Veraticus/ecosmart/internal/model"
	"github.com/Veraticus/ecosmart/internal/tui/components"
	tuitest "github.com/Veraticus/ecosmart/internal/tui/testing"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func newTestModel(opts ...Option) Model {
	base := []Option{
		WithClassifier(classifier.NewMock(classifier.WithDelays(0, 0), classifier.WithSeed(11))),
		WithClock(func() time.Time { return testNow }),
		WithRefreshDelays(0, 0),
		WithSize(160, 50),
	}
	return NewModel(append(base, opts...)...)
}

func writePNG(t *testing.T, name string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 6))))
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0600))
	return path
}

func drive(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	r := tuitest.NewTestRenderer()
	var out tea.Model = m
	for _, msg := range msgs {
		out = r.Drive(out, msg)
	}
	next, ok := out.(Model)
	require.True(t, ok)
	return next
}

func TestModel_StartsOnDashboard(t *testing.T) {
	m := newTestModel()

	assert.Equal(t, model.PageDashboard, m.Page())
	assert.Equal(t, "Dashboard", m.ActivePageName())

	view := tuitest.Plain(m.View())
	assert.Contains(t, view, "EcoSmart")
	assert.True(t, tuitest.ContainsInOrder(view,
		"AI-Powered Smart Waste Management System",
		"Waste Distribution",
		"Recent Classifications",
	))
}

func TestModel_Navigate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    model.Page
		heading string
	}{
		{"upload", "upload", model.PageUpload, "Upload Waste for Classification"},
		{"analytics", "analytics", model.PageAnalytics, "Waste Analytics Dashboard"},
		{"classification", "classification", model.PageClassification, "Classification History"},
		{"forecasting", "forecasting", model.PageForecasting, "Forecasting module coming soon"},
		{"location", "location", model.PageLocation, "Location tracking module coming soon"},
		{"settings", "settings", model.PageSettings, "Settings panel coming soon"},
		{"unknown falls back to dashboard", "reports", model.PageDashboard, "AI-Powered Smart Waste Management System"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel()
			got := m.Navigate(tt.id)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, m.Page())
			assert.Contains(t, tuitest.Plain(m.View()), tt.heading)
		})
	}
}

func TestModel_PageKeys(t *testing.T) {
	m := drive(t, newTestModel(), tuitest.KeyPress("3"))
	assert.Equal(t, model.PageAnalytics, m.Page())

	m = drive(t, m, tuitest.KeyTab())
	assert.Equal(t, model.PageClassification, m.Page())

	m = drive(t, m, tuitest.KeyShiftTab(), tuitest.KeyShiftTab(), tuitest.KeyShiftTab())
	assert.Equal(t, model.PageDashboard, m.Page())

	m = drive(t, m, tuitest.KeyShiftTab())
	assert.Equal(t, model.PageSettings, m.Page())
}

func TestModel_ClassifyFlowUpdatesHistory(t *testing.T) {
	path := writePNG(t, "bottle.png")
	m := drive(t, newTestModel(), tuitest.KeyPress("2"), tuitest.Paste(path))

	require.Equal(t, dashboard.StateImageStaged, m.Upload().Flow().State())

	m = drive(t, m, tuitest.KeyEnter())

	require.Equal(t, dashboard.StateClassified, m.Upload().Flow().State())
	latest, ok := m.Latest()
	require.True(t, ok)
	assert.Equal(t, model.SourceManual, latest.Source)
	assert.Equal(t, testNow, latest.CompletedAt)

	entries := m.History().History().Entries()
	require.Len(t, entries, dashboard.HistoryCapacity)
	assert.Equal(t, latest.ID, entries[0].ID)
	assert.Equal(t, latest.Result.Category, entries[0].Category)

	view := tuitest.Plain(m.View())
	assert.Contains(t, view, "Latest:")
	assert.Contains(t, view, latest.Result.ItemLabel)
}

func TestModel_PasteNavigatesToUpload(t *testing.T) {
	path := writePNG(t, "apple core.png")
	m := newTestModel()
	m.Navigate("settings")

	m = drive(t, m, tuitest.Paste("'"+path+"'"))

	assert.Equal(t, model.PageUpload, m.Page())
	img, ok := m.Upload().Flow().Image()
	require.True(t, ok)
	assert.Equal(t, "apple core.png", img.Name)
	assert.Equal(t, model.OriginPaste, img.Origin)
}

func TestModel_InboxDropStagesImage(t *testing.T) {
	path := writePNG(t, "can.png")
	m := newTestModel()
	m.Navigate("analytics")

	m = drive(t, m, components.DropMsg{Origin: model.OriginInbox, Paths: []string{path}})

	assert.Equal(t, model.PageUpload, m.Page())
	img, ok := m.Upload().Flow().Image()
	require.True(t, ok)
	assert.Equal(t, model.OriginInbox, img.Origin)
}

func TestModel_CompletionAfterNavigatingAway(t *testing.T) {
	path := writePNG(t, "bottle.png")
	m := drive(t, newTestModel(), tuitest.Paste(path))

	next, cmd := m.Update(tuitest.KeyEnter())
	m = next.(Model)
	m.Navigate("location")

	for _, msg := range tuitest.Collect(cmd, time.Second) {
		if tuitest.DropSpinnerTicks(msg) {
			m = drive(t, m, msg)
		}
	}

	assert.Equal(t, model.PageLocation, m.Page())
	_, ok := m.Latest()
	assert.True(t, ok)
	assert.Equal(t, dashboard.StateClassified, m.Upload().Flow().State())
}

func TestModel_DuplicateCompletionIgnored(t *testing.T) {
	m := newTestModel()
	ev := model.NewClassificationEvent(model.ClassificationResult{
		Category:   model.CategoryRecyclable,
		Confidence: 80,
		ItemLabel:  "Paper waste",
	}, model.SourceManual, testNow)

	seeds := m.History().History().Entries()

	m = drive(t, m, components.ClassificationCompleteMsg{Event: ev}, components.ClassificationCompleteMsg{Event: ev})

	entries := m.History().History().Entries()
	require.Len(t, entries, dashboard.HistoryCapacity)
	assert.Equal(t, ev.ID, entries[0].ID)
	assert.Equal(t, "Paper waste", entries[0].ItemLabel)
	assert.Equal(t, seeds[0].ID, entries[1].ID, "second delivery must not push the seeds down")
	assert.Equal(t, seeds[2].ID, entries[3].ID)
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel()
	assert.NotContains(t, tuitest.Plain(m.View()), "previous page")

	m = drive(t, m, tuitest.KeyPress("?"))
	assert.Contains(t, tuitest.Plain(m.View()), "previous page")
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel()
	next, cmd := m.Update(tuitest.KeyPress("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestModel_WindowResize(t *testing.T) {
	m := drive(t, newTestModel(), tuitest.WindowSize(90, 30))

	view := tuitest.Plain(m.View())
	assert.Contains(t, view, "Recent Classifications")
	assert.Contains(t, view, "Drop waste image here")
}

func TestRecorder_Disabled(t *testing.T) {
	r := NewRecorder(false)
	r.RecordState(newTestModel(), tuitest.KeyTab())
	r.Close()
	assert.Empty(t, r.Dir())
}

func TestRecorder_WritesFrames(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	r := NewRecorder(true)
	require.NotEmpty(t, r.Dir())

	r.RecordState(newTestModel(), tuitest.KeyTab())
	r.Close()

	_, err := os.Stat(filepath.Join(r.Dir(), "frame-0001.txt"))
	require.NoError(t, err)
	log, err := os.ReadFile(filepath.Join(r.Dir(), "frames.log"))
	require.NoError(t, err)
	assert.Contains(t, string(log), "Page: dashboard")
}
