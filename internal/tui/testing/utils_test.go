package testing

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{ n int }

func TestCollect_ExpandsBatches(t *testing.T) {
	cmd := tea.Batch(
		func() tea.Msg { return pingMsg{1} },
		tea.Batch(
			func() tea.Msg { return pingMsg{2} },
			func() tea.Msg { return nil },
		),
		func() tea.Msg { return pingMsg{3} },
	)

	msgs := Collect(cmd, time.Second)
	assert.Equal(t, []tea.Msg{pingMsg{1}, pingMsg{2}, pingMsg{3}}, msgs)
}

func TestCollect_AbandonsSlowCommands(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	cmd := tea.Batch(
		func() tea.Msg { <-block; return pingMsg{1} },
		func() tea.Msg { return pingMsg{2} },
	)

	msgs := Collect(cmd, 50*time.Millisecond)
	assert.Equal(t, []tea.Msg{pingMsg{2}}, msgs)
	assert.Nil(t, Collect(nil, time.Second))
}

func TestFind(t *testing.T) {
	msgs := []tea.Msg{errors.New("x"), pingMsg{7}}

	got, ok := Find[pingMsg](msgs)
	assert.True(t, ok)
	assert.Equal(t, 7, got.n)

	_, ok = Find[tea.QuitMsg](msgs)
	assert.False(t, ok)
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "a b c", Plain("\x1b[1ma\x1b[0m \n  b\tc "))
	assert.True(t, ContainsInOrder("one two three", "one", "three"))
	assert.False(t, ContainsInOrder("one two three", "three", "one"))
}
