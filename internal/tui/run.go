package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Veraticus/ecosmart/internal/inbox"
	"github.com/Veraticus/ecosmart/internal/model"
	"github.com/Veraticus/ecosmart/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// Run starts the dashboard and blocks until the user quits or ctx is
// cancelled. When an inbox directory is configured, image files landing
// there are staged as if they had been dropped on the upload card.
func Run(ctx context.Context, opts ...Option) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	var watcher *inbox.Watcher
	if cfg.InboxDir != "" {
		var err error
		watcher, err = inbox.New(cfg.InboxDir, cfg.InboxDebounce, cfg.Logger.With("component", "inbox"))
		if err != nil {
			return fmt.Errorf("failed to watch inbox: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(gctx)
	defer cancel()
	cfg.Context = runCtx

	programOpts := []tea.ProgramOption{tea.WithContext(gctx)}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(newModel(cfg), programOpts...)

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("dashboard error: %w", err)
		}
		return nil
	})

	if watcher != nil {
		g.Go(func() error {
			return watcher.Run(runCtx, func(d inbox.Drop) {
				cfg.Logger.Info("inbox drop", "files", len(d.Paths), "first", d.First())
				p.Send(components.DropMsg{Origin: model.OriginInbox, Paths: d.Paths})
			})
		})
	}

	err := g.Wait()
	if watcher != nil {
		st := watcher.Stats()
		cfg.Logger.Info("inbox closed",
			"dir", watcher.Dir(),
			"events", st.Events,
			"drops", st.Drops,
			"ignored", st.Ignored,
			"errors", st.Errors)
	}
	return err
}
