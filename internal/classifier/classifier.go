package classifier

import (
	"context"

	"github.com/Veraticus/ecosmart/internal/model"
)

// Classifier classifies a single staged image.
type Classifier interface {
	Classify(ctx context.Context, img model.StagedImage) (model.ClassificationResult, error)
}

// Func adapts a function to the Classifier interface.
type Func func(ctx context.Context, img model.StagedImage) (model.ClassificationResult, error)

// Classify calls f.
func (f Func) Classify(ctx context.Context, img model.StagedImage) (model.ClassificationResult, error) {
	return f(ctx, img)
}
