package classifier

import (
	"context"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Veraticus/ecosmart/internal/model"
)

// Default simulated latencies.
const (
	DefaultManualDelay  = 2 * time.Second
	DefaultCaptureDelay = 1500 * time.Millisecond
)

// Band is an inclusive confidence range.
type Band struct {
	Min int
	Max int
}

// Contains reports whether c lies within the band.
func (b Band) Contains(c int) bool {
	return c >= b.Min && c <= b.Max
}

type candidate struct {
	label    string
	category model.Category
	band     Band
}

var candidates = []candidate{
	{label: "Food waste", category: model.CategoryBiodegradable, band: Band{Min: 80, Max: 99}},
	{label: "Plastic bottle", category: model.CategoryNonBiodegradable, band: Band{Min: 75, Max: 94}},
	{label: "Electronic device", category: model.CategoryEWaste, band: Band{Min: 85, Max: 99}},
	{label: "Paper waste", category: model.CategoryRecyclable, band: Band{Min: 70, Max: 89}},
}

// ConfidenceBand returns the range the mock draws confidence from for c.
func ConfidenceBand(c model.Category) (Band, bool) {
	for _, cand := range candidates {
		if cand.category == c {
			return cand.band, true
		}
	}
	return Band{}, false
}

// ItemLabel returns the canned item label the mock reports for c.
func ItemLabel(c model.Category) string {
	for _, cand := range candidates {
		if cand.category == c {
			return cand.label
		}
	}
	return ""
}

// Mock is a Classifier that sleeps and returns a random canned result.
// It is safe for concurrent use.
type Mock struct {
	rng          *rand.Rand
	manualDelay  time.Duration
	captureDelay time.Duration
	calls        atomic.Int64
	mu           sync.Mutex
}

// MockOption configures a Mock.
type MockOption func(*Mock)

// WithDelays sets the manual and capture latencies.
func WithDelays(manual, capture time.Duration) MockOption {
	return func(m *Mock) {
		m.manualDelay = manual
		m.captureDelay = capture
	}
}

// WithSeed makes the mock's choices reproducible.
func WithSeed(seed uint64) MockOption {
	return func(m *Mock) {
		m.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// NewMock creates a mock classifier with the default latencies.
func NewMock(opts ...MockOption) *Mock {
	m := &Mock{
		manualDelay:  DefaultManualDelay,
		captureDelay: DefaultCaptureDelay,
		rng:          rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Classify waits the latency for img's origin and returns a random result.
func (m *Mock) Classify(ctx context.Context, img model.StagedImage) (model.ClassificationResult, error) {
	m.calls.Add(1)

	if err := wait(ctx, m.Delay(img)); err != nil {
		return model.ClassificationResult{}, err
	}

	m.mu.Lock()
	cand := candidates[m.rng.IntN(len(candidates))]
	confidence := cand.band.Min + m.rng.IntN(cand.band.Max-cand.band.Min+1)
	m.mu.Unlock()

	return model.ClassificationResult{
		ItemLabel:  cand.label,
		Category:   cand.category,
		Confidence: confidence,
	}, nil
}

// Delay returns the simulated latency for img.
func (m *Mock) Delay(img model.StagedImage) time.Duration {
	if img.Synthetic() {
		return m.captureDelay
	}
	return m.manualDelay
}

// Calls returns how many times Classify has been invoked.
func (m *Mock) Calls() int {
	return int(m.calls.Load())
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
