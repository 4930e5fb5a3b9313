// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Classification errors. The first three form the taxonomy a real inference
// backend reports through; the mock classifier never produces them.
var (
	ErrInvalidImageFormat               = errors.New("invalid image format")
	ErrClassificationServiceUnavailable = errors.New("classification service unavailable")
	ErrClassificationTimeout            = errors.New("classification timed out")
)

// Flow and dashboard errors.
var (
	ErrFlowBusy       = errors.New("classification in progress")
	ErrNothingStaged  = errors.New("no image staged")
	ErrUnknownSegment = errors.New("unknown distribution segment")
)

// Configuration errors.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ClassificationError describes a failed classification attempt.
type ClassificationError struct {
	Err   error
	Op    string
	Image string
}

func (e *ClassificationError) Error() string {
	if e.Image == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Image, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

// NewClassificationError wraps err with the operation and image it concerns.
func NewClassificationError(op, image string, err error) error {
	return &ClassificationError{
		Op:    op,
		Image: image,
		Err:   err,
	}
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage returns the message to show for err. Known taxonomy errors get
// a short explanation; anything else falls back to err.Error().
func UserMessage(err error) string {
	var userErr *UserError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &userErr):
		return userErr.UserMessage
	case errors.Is(err, ErrInvalidImageFormat):
		return "That file is not a supported image"
	case errors.Is(err, ErrClassificationTimeout):
		return "Classification timed out, try again"
	case errors.Is(err, ErrClassificationServiceUnavailable):
		return "Classification service unavailable, try again"
	case errors.Is(err, ErrFlowBusy):
		return "Wait for the current classification to finish"
	case errors.Is(err, ErrNothingStaged):
		return "Upload an image first"
	default:
		return err.Error()
	}
}
