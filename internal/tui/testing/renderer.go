// Package testing provides test utilities for TUI components.
package testing

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTimeout bounds how long Collect waits on a single command.
const DefaultTimeout = 2 * time.Second

// TestRenderer captures the output of a Bubble Tea model without requiring a
// real terminal.
type TestRenderer struct {
	// Keep decides which messages produced by commands are fed back by
	// Drive. The default drops spinner ticks so animations do not loop.
	Keep func(tea.Msg) bool

	// Output contains the last rendered view.
	Output string

	// Commands contains all commands returned by Update calls.
	Commands []tea.Cmd

	// Messages contains all messages sent to the model.
	Messages []tea.Msg

	// Timeout bounds each command run by Drive.
	Timeout time.Duration

	// MaxRounds bounds how many command rounds Drive follows.
	MaxRounds int

	// UpdateCount tracks how many times Update was called.
	UpdateCount int
}

// NewTestRenderer creates a new test renderer.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{
		Keep:      DropSpinnerTicks,
		Timeout:   DefaultTimeout,
		MaxRounds: 8,
	}
}

// Render renders a model and captures its output.
func (r *TestRenderer) Render(model tea.Model) string {
	r.Output = model.View()
	return r.Output
}

// Update sends a message to the model and captures the result.
func (r *TestRenderer) Update(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	r.Messages = append(r.Messages, msg)
	r.UpdateCount++

	newModel, cmd := model.Update(msg)
	if cmd != nil {
		r.Commands = append(r.Commands, cmd)
	}

	r.Output = newModel.View()
	return newModel, cmd
}

// Drive sends msg, runs the commands it produces and feeds their messages
// back, round after round, until no commands remain or MaxRounds is hit.
func (r *TestRenderer) Drive(model tea.Model, msg tea.Msg) tea.Model {
	queue := []tea.Msg{msg}
	for round := 0; len(queue) > 0 && round < r.MaxRounds; round++ {
		var next []tea.Msg
		for _, m := range queue {
			var cmd tea.Cmd
			model, cmd = r.Update(model, m)
			for _, out := range Collect(cmd, r.Timeout) {
				if r.Keep == nil || r.Keep(out) {
					next = append(next, out)
				}
			}
		}
		queue = next
	}
	return model
}

// StripANSI removes ANSI escape codes from the output for content-only testing.
func (r *TestRenderer) StripANSI() string {
	return StripANSI(r.Output)
}

// Lines returns the output split by newlines.
func (r *TestRenderer) Lines() []string {
	return strings.Split(r.Output, "\n")
}

// Reset clears all captured data.
func (r *TestRenderer) Reset() {
	r.Output = ""
	r.Commands = nil
	r.Messages = nil
	r.UpdateCount = 0
}

// DropSpinnerTicks keeps every message except spinner ticks.
func DropSpinnerTicks(msg tea.Msg) bool {
	_, tick := msg.(spinner.TickMsg)
	return !tick
}

// Collect runs cmd and returns the messages it produces, expanding batches.
// Commands still running after timeout are abandoned.
func Collect(cmd tea.Cmd, timeout time.Duration) []tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return collect(ctx, cmd)
}

func collect(ctx context.Context, cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-ctx.Done():
		return nil
	}

	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}

	results := make([][]tea.Msg, len(batch))
	var wg sync.WaitGroup
	for i, child := range batch {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = collect(ctx, child)
		}()
	}
	wg.Wait()

	var out []tea.Msg
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

// Find returns the first message of type T.
func Find[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if t, ok := msg.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}
