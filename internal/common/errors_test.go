package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassificationError(t *testing.T) {
	err := NewClassificationError("classify", "bottle.png", ErrClassificationTimeout)

	assert.Equal(t, "classify bottle.png: classification timed out", err.Error())
	assert.ErrorIs(t, err, ErrClassificationTimeout)
	assert.NotErrorIs(t, err, ErrClassificationServiceUnavailable)

	var classErr *ClassificationError
	wrapped := fmt.Errorf("headless: %w", err)
	assert.True(t, errors.As(wrapped, &classErr))
	assert.Equal(t, "bottle.png", classErr.Image)

	noImage := NewClassificationError("classify", "", ErrClassificationServiceUnavailable)
	assert.Equal(t, "classify: classification service unavailable", noImage.Error())
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "user error", err: NewUserError("Pick a file first", ErrNothingStaged), want: "Pick a file first"},
		{name: "invalid image", err: fmt.Errorf("notes.txt: %w", ErrInvalidImageFormat), want: "That file is not a supported image"},
		{name: "timeout", err: NewClassificationError("classify", "a.png", ErrClassificationTimeout), want: "Classification timed out, try again"},
		{name: "unavailable", err: ErrClassificationServiceUnavailable, want: "Classification service unavailable, try again"},
		{name: "busy", err: ErrFlowBusy, want: "Wait for the current classification to finish"},
		{name: "nothing staged", err: ErrNothingStaged, want: "Upload an image first"},
		{name: "other", err: errors.New("disk on fire"), want: "disk on fire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestUserError_Unwrap(t *testing.T) {
	err := NewUserError("Pick a file first", ErrNothingStaged)
	assert.Equal(t, "Pick a file first: no image staged", err.Error())
	assert.ErrorIs(t, err, ErrNothingStaged)

	bare := NewUserError("just a message", nil)
	assert.Equal(t, "just a message", bare.Error())
}
