package download

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/ytget/video-saver/internal/model"
)

var (
	ErrInvalidQualitySelection = errors.New("selected quality is not offered for this video")
	ErrNoMetadata              = errors.New("no video metadata to download")
)

// Progress simulation constants
const (
	DefaultTickInterval = 200 * time.Millisecond
	DefaultMaxIncrement = 15.0
	CompletePercent     = 100.0
)

// ProgressFunc receives percent values in [0,100], never decreasing.
// The final call carries exactly 100.
type ProgressFunc func(percent float64)

// Simulator fakes a file transfer by advancing a counter on a ticker
type Simulator struct {
	tick         time.Duration
	maxIncrement float64
	randFloat    func() float64 // [0,1)
	now          func() time.Time
}

// SimulatorOption configures a Simulator
type SimulatorOption func(*Simulator)

// WithTickInterval sets the time between progress steps
func WithTickInterval(d time.Duration) SimulatorOption {
	return func(s *Simulator) {
		if d > 0 {
			s.tick = d
		}
	}
}

// WithMaxIncrement sets the upper bound of a single progress step
func WithMaxIncrement(step float64) SimulatorOption {
	return func(s *Simulator) {
		if step > 0 {
			s.maxIncrement = step
		}
	}
}

// WithRandom replaces the random source; fn must return values in [0,1)
func WithRandom(fn func() float64) SimulatorOption {
	return func(s *Simulator) {
		if fn != nil {
			s.randFloat = fn
		}
	}
}

// WithClock replaces the completion timestamp source
func WithClock(now func() time.Time) SimulatorOption {
	return func(s *Simulator) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSimulator creates a simulator with default timing
func NewSimulator(opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		tick:         DefaultTickInterval,
		maxIncrement: DefaultMaxIncrement,
		randFloat:    rand.Float64,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TickInterval returns the configured tick
func (s *Simulator) TickInterval() time.Duration {
	return s.tick
}

// Run simulates downloading the variant of meta labelled qualityLabel and
// returns the record to persist. Cancelling ctx stops the ticker and returns
// ctx.Err() without a record.
func (s *Simulator) Run(ctx context.Context, meta *model.VideoMetadata, qualityLabel string, onProgress ProgressFunc) (*model.DownloadRecord, error) {
	variant, err := resolveQuality(meta, qualityLabel)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	emit := func(p float64) {
		if onProgress != nil {
			onProgress(p)
		}
	}

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	progress := 0.0
	emit(progress)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
		// a tick and a cancel can be ready together
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		progress += s.randFloat() * s.maxIncrement
		if progress >= CompletePercent {
			emit(CompletePercent)
			record := model.NewDownloadRecord(meta, variant, s.now())
			return &record, nil
		}
		emit(progress)
	}
}

func resolveQuality(meta *model.VideoMetadata, label string) (model.QualityVariant, error) {
	if meta == nil {
		return model.QualityVariant{}, ErrNoMetadata
	}
	variant, ok := meta.FindQuality(label)
	if !ok {
		return model.QualityVariant{}, fmt.Errorf("%w: %q", ErrInvalidQualitySelection, label)
	}
	return variant, nil
}
