// Package inbox watches a drop directory and turns bursts of new image files
// into drops for the upload flow.
package inbox

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/Veraticus/ecosmart/internal/imaging"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for a burst to settle.
const DefaultDebounce = 250 * time.Millisecond

// Drop is a settled burst of image files, in the order they appeared.
type Drop struct {
	At    time.Time
	Paths []string
}

// First returns the path the upload flow stages.
func (d Drop) First() string {
	if len(d.Paths) == 0 {
		return ""
	}
	return d.Paths[0]
}

// Stats counts what the watcher has seen.
type Stats struct {
	LastEventTime time.Time
	LastEventPath string
	Events        int
	Ignored       int
	Drops         int
	Errors        int
}

// Watcher watches one directory.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	dir      string
	stats    Stats
	debounce time.Duration
	mu       sync.Mutex
}

// New starts watching dir. Events that arrive before Run is called are
// buffered by fsnotify and delivered once it runs.
func New(dir string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		watcher:  fw,
		logger:   logger.With("component", "inbox", "dir", dir),
		dir:      dir,
		debounce: debounce,
	}, nil
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Run delivers drops until ctx is done, then closes the underlying watcher.
// deliver is called from Run's goroutine.
func (w *Watcher) Run(ctx context.Context, deliver func(Drop)) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			w.logger.Error("failed to close watcher", "error", err)
		}
	}()

	var (
		pending []string
		seen    = make(map[string]struct{})
		timer   = time.NewTimer(w.debounce)
	)
	defer timer.Stop()
	if !timer.Stop() {
		<-timer.C
	}

	flush := func() {
		if len(pending) == 0 {
			return
		}
		drop := Drop{Paths: pending, At: time.Now()}
		pending = nil
		seen = make(map[string]struct{})

		w.mu.Lock()
		w.stats.Drops++
		w.mu.Unlock()

		w.logger.Info("inbox drop", "files", len(drop.Paths), "first", drop.First())
		deliver(drop)
	}

	w.logger.Info("watching inbox", "dir", w.dir)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.accept(event) {
				continue
			}
			if _, dup := seen[event.Name]; !dup {
				seen[event.Name] = struct{}{}
				pending = append(pending, event.Name)
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
			w.logger.Error("watcher error", "error", err)

		case <-timer.C:
			flush()
		}
	}
}

// Stats returns a snapshot of the counters.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) accept(event fsnotify.Event) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stats.Events++
	w.stats.LastEventTime = time.Now()
	w.stats.LastEventPath = event.Name

	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		w.stats.Ignored++
		return false
	}
	if !imaging.IsAllowed(event.Name) || filepath.Base(event.Name)[0] == '.' {
		w.stats.Ignored++
		return false
	}
	return true
}
