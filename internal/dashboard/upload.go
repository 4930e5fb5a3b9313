package dashboard

import (
	"time"

	"github.com/Veraticus/ecosmart/internal/common"
	"github.com/Veraticus/ecosmart/internal/model"
)

// UploadState is a state of the upload/classify flow.
type UploadState int

// Upload flow states.
const (
	StateEmpty UploadState = iota
	StateImageStaged
	StateClassifying
	StateClassified
)

func (s UploadState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateImageStaged:
		return "staged"
	case StateClassifying:
		return "classifying"
	case StateClassified:
		return "classified"
	default:
		return "unknown"
	}
}

// UploadFlow is the upload → classify → result state machine. At most one
// classification is in flight; each one is identified by a request id so a
// late completion can be recognized and dropped.
type UploadFlow struct {
	err               error
	image             *model.StagedImage
	result            *model.ClassificationResult
	state             UploadState
	lastRequest       uint64
	inFlight          uint64
	hardwareConnected bool
}

// NewUploadFlow returns an empty flow.
func NewUploadFlow() *UploadFlow {
	return &UploadFlow{}
}

// State returns the current state.
func (f *UploadFlow) State() UploadState {
	return f.state
}

// Image returns the staged image, if any.
func (f *UploadFlow) Image() (model.StagedImage, bool) {
	if f.image == nil {
		return model.StagedImage{}, false
	}
	return *f.image, true
}

// Result returns the result of the last completed classification.
func (f *UploadFlow) Result() (model.ClassificationResult, bool) {
	if f.result == nil {
		return model.ClassificationResult{}, false
	}
	return *f.result, true
}

// Err returns the error of the last failed classification, cleared by the
// next stage, classify or reset.
func (f *UploadFlow) Err() error {
	return f.err
}

// InFlight reports whether a classification is pending.
func (f *UploadFlow) InFlight() bool {
	return f.inFlight != 0
}

// HardwareConnected reports whether the capture affordance is available.
func (f *UploadFlow) HardwareConnected() bool {
	return f.hardwareConnected
}

// SetHardwareConnected flips the simulated camera connection.
func (f *UploadFlow) SetHardwareConnected(connected bool) {
	f.hardwareConnected = connected
}

// ToggleHardware inverts the connection and returns the new value.
func (f *UploadFlow) ToggleHardware() bool {
	f.hardwareConnected = !f.hardwareConnected
	return f.hardwareConnected
}

// Stage replaces the staged image and discards any previous result.
func (f *UploadFlow) Stage(img model.StagedImage) error {
	if f.state == StateClassifying {
		return common.ErrFlowBusy
	}
	f.image = &img
	f.result = nil
	f.err = nil
	f.state = StateImageStaged
	return nil
}

// BeginClassify starts a classification of the staged image. It returns
// false, leaving the flow untouched, unless an image is staged and nothing
// is in flight.
func (f *UploadFlow) BeginClassify() (uint64, bool) {
	if f.state != StateImageStaged || f.inFlight != 0 {
		return 0, false
	}
	f.lastRequest++
	f.inFlight = f.lastRequest
	f.err = nil
	f.state = StateClassifying
	return f.inFlight, true
}

// Capture stages img from the simulated camera and immediately begins
// classifying it. It is a no-op while disconnected or busy.
func (f *UploadFlow) Capture(img model.StagedImage) (uint64, bool) {
	if !f.hardwareConnected || f.state == StateClassifying {
		return 0, false
	}
	if err := f.Stage(img); err != nil {
		return 0, false
	}
	return f.BeginClassify()
}

// Complete records the result of request id and returns the event to
// publish. Completions for anything but the pending request are ignored.
func (f *UploadFlow) Complete(id uint64, result model.ClassificationResult, at time.Time) (model.ClassificationEvent, bool) {
	if id == 0 || id != f.inFlight || f.state != StateClassifying {
		return model.ClassificationEvent{}, false
	}
	f.inFlight = 0
	f.result = &result
	f.state = StateClassified

	return model.NewClassificationEvent(result, f.source(), at), true
}

// Fail releases the pending request id and returns to ImageStaged with the
// image kept, so the user can retry.
func (f *UploadFlow) Fail(id uint64, err error) bool {
	if id == 0 || id != f.inFlight || f.state != StateClassifying {
		return false
	}
	f.inFlight = 0
	f.err = err
	f.state = StateImageStaged
	return true
}

// Reset clears the image and result. A pending classification cannot be
// reset.
func (f *UploadFlow) Reset() bool {
	if f.state == StateClassifying {
		return false
	}
	f.image = nil
	f.result = nil
	f.err = nil
	f.state = StateEmpty
	return true
}

func (f *UploadFlow) source() model.EventSource {
	if f.image == nil {
		return model.SourceManual
	}
	switch f.image.Origin {
	case model.OriginCapture:
		return model.SourceCapture
	case model.OriginFile:
		return model.SourceHeadless
	default:
		return model.SourceManual
	}
}
