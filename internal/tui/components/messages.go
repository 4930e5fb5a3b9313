package components

import (
	"time"

	"github.com/Veraticus/ecosmart/internal/model"
)

// ClassificationCompleteMsg carries a finished classification up to the shell.
type ClassificationCompleteMsg struct {
	Event model.ClassificationEvent
}

// DropMsg hands paths dropped on the terminal or into the inbox to the
// upload card. Only the first path is staged.
type DropMsg struct {
	Origin model.ImageOrigin
	Paths  []string
}

type imageLoadedMsg struct {
	err   error
	path  string
	image model.StagedImage
}

type classifyDoneMsg struct {
	at     time.Time
	err    error
	result model.ClassificationResult
	id     uint64
}

type historyRefreshedMsg struct{}

type analyticsRefreshedMsg struct{}
