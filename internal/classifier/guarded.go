package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/ecosmart/internal/common"
	"github.com/Veraticus/ecosmart/internal/model"
)

const opClassify = "classify"

// Guarded wraps a Classifier so that every failure comes back as a
// *common.ClassificationError carrying one of the taxonomy sentinels.
type Guarded struct {
	next    Classifier
	logger  *slog.Logger
	timeout time.Duration
}

// NewGuarded wraps next. A zero timeout disables the per-call deadline.
func NewGuarded(next Classifier, timeout time.Duration, logger *slog.Logger) *Guarded {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guarded{next: next, timeout: timeout, logger: logger}
}

// Classify validates img, applies the timeout and recovers panics from the
// wrapped classifier.
func (g *Guarded) Classify(ctx context.Context, img model.StagedImage) (result model.ClassificationResult, err error) {
	if !strings.HasPrefix(img.MIMEType, "image/") {
		return model.ClassificationResult{}, common.NewClassificationError(opClassify, img.Name,
			fmt.Errorf("%w: %q", common.ErrInvalidImageFormat, img.MIMEType))
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("classifier panicked", "image", img.Name, "panic", r)
			result = model.ClassificationResult{}
			err = common.NewClassificationError(opClassify, img.Name,
				fmt.Errorf("%w: panic: %v", common.ErrClassificationServiceUnavailable, r))
		}
	}()

	start := time.Now()
	result, err = g.next.Classify(ctx, img)
	if err != nil {
		err = classifyError(img.Name, err)
		g.logger.Warn("classification failed",
			"image", img.Name,
			"origin", img.Origin,
			"elapsed", time.Since(start),
			"error", err)
		return model.ClassificationResult{}, err
	}

	if !result.Category.Known() {
		return model.ClassificationResult{}, common.NewClassificationError(opClassify, img.Name,
			fmt.Errorf("%w: unknown category %d", common.ErrClassificationServiceUnavailable, int(result.Category)))
	}

	g.logger.Debug("classified image",
		"image", img.Name,
		"category", result.Category.String(),
		"confidence", result.Confidence,
		"elapsed", time.Since(start))
	return result, nil
}

func classifyError(image string, err error) error {
	var classErr *common.ClassificationError
	switch {
	case errors.As(err, &classErr):
		return err
	case errors.Is(err, common.ErrInvalidImageFormat),
		errors.Is(err, common.ErrClassificationTimeout),
		errors.Is(err, common.ErrClassificationServiceUnavailable):
		return common.NewClassificationError(opClassify, image, err)
	case errors.Is(err, context.DeadlineExceeded):
		return common.NewClassificationError(opClassify, image,
			fmt.Errorf("%w: %w", common.ErrClassificationTimeout, err))
	default:
		return common.NewClassificationError(opClassify, image,
			fmt.Errorf("%w: %w", common.ErrClassificationServiceUnavailable, err))
	}
}
