package download

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/video-saver/internal/model"
)

func testMetadata() *model.VideoMetadata {
	return &model.VideoMetadata{
		ID:        "vid-1",
		Title:     "Sample",
		Thumbnail: "https://picsum.photos/400/225?random=7",
		Duration:  "3:45",
		Qualities: []model.QualityVariant{
			{Quality: "HD (720p)", Size: "45.2 MB", SourceRef: "mock-hd-url"},
			{Quality: "SD (480p)", Size: "28.7 MB", SourceRef: "mock-sd-url"},
			{Quality: "Low (360p)", Size: "18.3 MB", SourceRef: "mock-low-url"},
		},
	}
}

// fixedRandom always returns v
func fixedRandom(v float64) func() float64 {
	return func() float64 { return v }
}

// progressRecorder collects progress values from any goroutine
type progressRecorder struct {
	mu     sync.Mutex
	values []float64
}

func (p *progressRecorder) add(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values = append(p.values, v)
}

func (p *progressRecorder) snapshot() []float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]float64(nil), p.values...)
}

func assertProgressStream(t *testing.T, values []float64) {
	t.Helper()
	require.NotEmpty(t, values)
	assert.Equal(t, 0.0, values[0])
	assert.Equal(t, CompletePercent, values[len(values)-1])

	hundreds := 0
	for i, v := range values {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, CompletePercent)
		if i > 0 {
			assert.GreaterOrEqual(t, v, values[i-1], "progress must not decrease")
		}
		if v == CompletePercent {
			hundreds++
		}
	}
	assert.Equal(t, 1, hundreds, "exactly one terminal 100")
}

func TestNewSimulator_Defaults(t *testing.T) {
	s := NewSimulator()
	assert.Equal(t, DefaultTickInterval, s.TickInterval())
	assert.Equal(t, DefaultMaxIncrement, s.maxIncrement)

	s = NewSimulator(WithTickInterval(-time.Second), WithMaxIncrement(0))
	assert.Equal(t, DefaultTickInterval, s.TickInterval())
	assert.Equal(t, DefaultMaxIncrement, s.maxIncrement)
}

func TestSimulatorRun_ProducesRecord(t *testing.T) {
	at := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	s := NewSimulator(
		WithTickInterval(time.Millisecond),
		WithRandom(fixedRandom(0.9)),
		WithClock(func() time.Time { return at }),
	)
	meta := testMetadata()
	rec := &progressRecorder{}

	record, err := s.Run(context.Background(), meta, "SD (480p)", rec.add)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, meta.ID, record.ID)
	assert.Equal(t, meta.Title, record.Title)
	assert.Equal(t, meta.Thumbnail, record.Thumbnail)
	assert.Equal(t, "SD (480p)", record.Quality)
	assert.Equal(t, "28.7 MB", record.Size)
	assert.Equal(t, "2025-03-04T05:06:07.000Z", record.DownloadedAt)

	assertProgressStream(t, rec.snapshot())
}

func TestSimulatorRun_RandomStreamIsMonotonic(t *testing.T) {
	s := NewSimulator(WithTickInterval(time.Millisecond))
	for i := 0; i < 5; i++ {
		rec := &progressRecorder{}
		_, err := s.Run(context.Background(), testMetadata(), "HD (720p)", rec.add)
		require.NoError(t, err)
		assertProgressStream(t, rec.snapshot())
	}
}

func TestSimulatorRun_StepBound(t *testing.T) {
	// 0.5 * 15 = 7.5 per tick, 14 ticks to reach 100
	s := NewSimulator(WithTickInterval(time.Millisecond), WithRandom(fixedRandom(0.5)))
	rec := &progressRecorder{}

	_, err := s.Run(context.Background(), testMetadata(), "Low (360p)", rec.add)
	require.NoError(t, err)

	values := rec.snapshot()
	assert.Len(t, values, 15)
	assert.InDelta(t, 7.5, values[1], 1e-9)
}

func TestSimulatorRun_InvalidQuality(t *testing.T) {
	s := NewSimulator(WithTickInterval(time.Millisecond))
	rec := &progressRecorder{}

	record, err := s.Run(context.Background(), testMetadata(), "4K (2160p)", rec.add)
	require.ErrorIs(t, err, ErrInvalidQualitySelection)
	assert.Nil(t, record)
	assert.Empty(t, rec.snapshot(), "no progress for a rejected selection")

	_, err = s.Run(context.Background(), nil, "HD (720p)", rec.add)
	require.ErrorIs(t, err, ErrNoMetadata)
}

func TestSimulatorRun_Cancel(t *testing.T) {
	s := NewSimulator(WithTickInterval(5*time.Millisecond), WithRandom(fixedRandom(0.01)))
	ctx, cancel := context.WithCancel(context.Background())
	rec := &progressRecorder{}

	done := make(chan struct{})
	var (
		record *model.DownloadRecord
		err    error
	)
	go func() {
		defer close(done)
		record, err = s.Run(ctx, testMetadata(), "HD (720p)", rec.add)
	}()

	require.Eventually(t, func() bool { return len(rec.snapshot()) >= 2 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, record)
	for _, v := range rec.snapshot() {
		assert.Less(t, v, CompletePercent)
	}
}

func TestSimulatorRun_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &progressRecorder{}
	_, err := NewSimulator().Run(ctx, testMetadata(), "HD (720p)", rec.add)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.snapshot())
}
