package fetch

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/video-saver/internal/model"
)

// ErrFetchFailed wraps any failure to obtain metadata
var ErrFetchFailed = errors.New("failed to fetch video metadata")

// Timing constants
const (
	DefaultLatency = 2000 * time.Millisecond
)

// Synthetic descriptor values
const (
	SampleTitle       = "Sample Facebook Video Title - Nature Documentary"
	SampleDuration    = "3:45"
	ThumbnailTemplate = "https://picsum.photos/400/225?random=%d"
)

// SampleQualities are the variants every simulated video offers, best first
var SampleQualities = []model.QualityVariant{
	{Quality: "HD (720p)", Size: "45.2 MB", SourceRef: "mock-hd-url"},
	{Quality: "SD (480p)", Size: "28.7 MB", SourceRef: "mock-sd-url"},
	{Quality: "Low (360p)", Size: "18.3 MB", SourceRef: "mock-low-url"},
}

// Simulator stands in for a network lookup
type Simulator struct {
	latency time.Duration
	newID   func() (string, error)
	logger  *zap.Logger
}

// Option configures a Simulator
type Option func(*Simulator)

// WithLatency overrides the simulated round trip
func WithLatency(d time.Duration) Option {
	return func(s *Simulator) {
		if d >= 0 {
			s.latency = d
		}
	}
}

// WithIDGenerator replaces the metadata ID source
func WithIDGenerator(gen func() (string, error)) Option {
	return func(s *Simulator) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Simulator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSimulator creates a new fetch simulator
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{
		latency: DefaultLatency,
		newID:   generateVideoID,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Latency returns the configured round trip
func (s *Simulator) Latency() time.Duration {
	return s.latency
}

// Fetch waits for the simulated latency and returns a synthetic descriptor.
// Cancelling ctx aborts the wait and returns ctx.Err().
func (s *Simulator) Fetch(ctx context.Context, url string) (*model.VideoMetadata, error) {
	s.logger.Debug("fetching metadata", zap.String("url", url), zap.Duration("latency", s.latency))

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		s.logger.Debug("fetch cancelled", zap.String("url", url))
		return nil, ctx.Err()
	case <-timer.C:
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	qualities := make([]model.QualityVariant, len(SampleQualities))
	copy(qualities, SampleQualities)

	meta := &model.VideoMetadata{
		ID:        id,
		Title:     SampleTitle,
		Thumbnail: fmt.Sprintf(ThumbnailTemplate, rand.IntN(1_000_000)),
		Duration:  SampleDuration,
		Qualities: qualities,
	}

	s.logger.Info("metadata ready", zap.String("id", meta.ID), zap.Int("qualities", len(meta.Qualities)))
	return meta, nil
}

// generateVideoID returns a time-ordered unique ID
func generateVideoID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
