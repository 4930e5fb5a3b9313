package inbox

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startWatcher(t *testing.T, dir string) (*Watcher, <-chan Drop, func()) {
	t.Helper()

	w, err := New(dir, 150*time.Millisecond, nil)
	require.NoError(t, err)
	require.Equal(t, dir, w.Dir())

	drops := make(chan Drop, 4)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(d Drop) { drops <- d })
	}()

	return w, drops, func() {
		cancel()
		require.NoError(t, <-done)
	}
}

func TestWatcher_BurstBecomesOneDrop(t *testing.T) {
	dir := t.TempDir()
	w, drops, stop := startWatcher(t, dir)
	defer stop()

	first := filepath.Join(dir, "a.png")
	second := filepath.Join(dir, "b.jpg")
	require.NoError(t, os.WriteFile(first, []byte("x"), 0600))
	require.NoError(t, os.WriteFile(second, []byte("y"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("z"), 0600))

	select {
	case d := <-drops:
		assert.Equal(t, []string{first, second}, d.Paths)
		assert.Equal(t, first, d.First())
		assert.False(t, d.At.IsZero())
	case <-time.After(5 * time.Second):
		t.Fatal("no drop delivered")
	}

	st := w.Stats()
	assert.Equal(t, 1, st.Drops)
	assert.Positive(t, st.Ignored, "notes.txt is counted as ignored")
	assert.GreaterOrEqual(t, st.Events, 3)
	assert.Zero(t, st.Errors)
}

func TestWatcher_IgnoresNonImages(t *testing.T) {
	dir := t.TempDir()
	w, drops, stop := startWatcher(t, dir)
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "report.pdf"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.png"), []byte("x"), 0600))

	select {
	case d := <-drops:
		t.Fatalf("unexpected drop %v", d.Paths)
	case <-time.After(500 * time.Millisecond):
	}

	st := w.Stats()
	assert.Zero(t, st.Drops)
	assert.Equal(t, st.Events, st.Ignored, "every event was filtered")
	assert.Contains(t, []string{filepath.Join(dir, "report.pdf"), filepath.Join(dir, ".hidden.png")}, st.LastEventPath)
}

func TestNew_MissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), 0, nil)
	require.Error(t, err)
}

func TestDrop_FirstEmpty(t *testing.T) {
	assert.Empty(t, Drop{}.First())
}
