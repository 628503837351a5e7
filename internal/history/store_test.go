package history

import (
	"errors"
	"fmt"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/video-saver/internal/model"
)

// memoryBackend is a map-backed Backend with switchable failures
type memoryBackend struct {
	values    map[string]string
	loadErr   error
	saveErr   error
	saveCalls int
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{values: make(map[string]string)}
}

func (m *memoryBackend) Load(key string) (string, error) {
	if m.loadErr != nil {
		return "", m.loadErr
	}
	return m.values[key], nil
}

func (m *memoryBackend) Save(key, value string) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.values[key] = value
	return nil
}

func record(id string) model.DownloadRecord {
	return model.DownloadRecord{
		ID:           id,
		Title:        "Video " + id,
		Thumbnail:    "https://picsum.photos/400/225?random=1",
		Quality:      "HD (720p)",
		DownloadedAt: "2025-01-02T03:04:05.000Z",
		Size:         "45.2 MB",
	}
}

func ids(records []model.DownloadRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func openStore(t *testing.T, backend Backend, opts ...Option) *Store {
	t.Helper()
	s, err := Open(backend, opts...)
	require.NoError(t, err)
	return s
}

func TestOpen_AbsentKeyIsEmpty(t *testing.T) {
	s := openStore(t, newMemoryBackend())

	assert.Empty(t, s.List())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, DefaultCapacity, s.Capacity())
}

func TestAppendRemoveClearScenario(t *testing.T) {
	s := openStore(t, newMemoryBackend())

	require.NoError(t, s.Append(record("A")))
	require.NoError(t, s.Append(record("B")))
	require.NoError(t, s.Append(record("C")))
	assert.Equal(t, []string{"C", "B", "A"}, ids(s.List()))

	require.NoError(t, s.Remove("B"))
	assert.Equal(t, []string{"C", "A"}, ids(s.List()))

	require.NoError(t, s.Clear())
	assert.Empty(t, s.List())
}

func TestAppend_EvictsOldestBeyondCapacity(t *testing.T) {
	s := openStore(t, newMemoryBackend())

	for i := 1; i <= 51; i++ {
		require.NoError(t, s.Append(record(fmt.Sprintf("r%02d", i))))
		require.LessOrEqual(t, s.Len(), DefaultCapacity)
	}

	list := s.List()
	require.Len(t, list, 50)
	assert.Equal(t, "r51", list[0].ID)
	assert.Equal(t, "r02", list[len(list)-1].ID)
	_, found := s.Get("r01")
	assert.False(t, found, "first appended record should be evicted")
}

func TestAppend_CustomCapacity(t *testing.T) {
	s := openStore(t, newMemoryBackend(), WithCapacity(3))

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, s.Append(record(id)))
	}

	assert.Equal(t, []string{"e", "d", "c"}, ids(s.List()))
}

func TestRemove(t *testing.T) {
	t.Run("missing id leaves list unchanged", func(t *testing.T) {
		backend := newMemoryBackend()
		s := openStore(t, backend)
		require.NoError(t, s.Append(record("A")))
		calls := backend.saveCalls

		require.NoError(t, s.Remove("nope"))
		assert.Equal(t, []string{"A"}, ids(s.List()))
		assert.Equal(t, calls, backend.saveCalls, "no write for a no-op removal")
	})

	t.Run("duplicate ids are all removed", func(t *testing.T) {
		s := openStore(t, newMemoryBackend())
		require.NoError(t, s.Append(record("A")))
		require.NoError(t, s.Append(record("X")))
		require.NoError(t, s.Append(record("A")))

		require.NoError(t, s.Remove("A"))
		assert.Equal(t, []string{"X"}, ids(s.List()))
	})
}

func TestPersistenceRoundTrip(t *testing.T) {
	backend := newMemoryBackend()
	s := openStore(t, backend)
	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, s.Append(record(id)))
	}

	reopened := openStore(t, backend)
	assert.Equal(t, s.List(), reopened.List())
	assert.Contains(t, backend.values[DefaultKey], `"downloadedAt":"2025-01-02T03:04:05.000Z"`)
}

func TestPreferencesBackendRoundTrip(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	backend := NewPreferencesBackend(app.Preferences())
	s := openStore(t, backend, WithKey("historyRoundTrip"))
	require.NoError(t, s.Append(record("A")))
	require.NoError(t, s.Append(record("B")))

	reopened := openStore(t, NewPreferencesBackend(app.Preferences()), WithKey("historyRoundTrip"))
	assert.Equal(t, []string{"B", "A"}, ids(reopened.List()))
	assert.Equal(t, s.List(), reopened.List())
}

func TestOpen_CorruptDataStartsEmpty(t *testing.T) {
	backend := newMemoryBackend()
	backend.values[DefaultKey] = `[{"id": "A", "title": `

	s, err := Open(backend)
	require.NoError(t, err)
	assert.Empty(t, s.List())

	require.NoError(t, s.Append(record("B")))
	assert.Equal(t, []string{"B"}, ids(s.List()))
}

func TestOpen_NullDataStartsEmpty(t *testing.T) {
	backend := newMemoryBackend()
	backend.values[DefaultKey] = "null"

	s := openStore(t, backend)
	assert.Empty(t, s.List())
}

func TestOpen_TrimsOversizedData(t *testing.T) {
	backend := newMemoryBackend()
	big := make([]model.DownloadRecord, 0, 60)
	for i := 0; i < 60; i++ {
		big = append(big, record(fmt.Sprint(i)))
	}
	raw, err := encodeRecords(big)
	require.NoError(t, err)
	backend.values[DefaultKey] = raw

	s := openStore(t, backend)
	assert.Equal(t, DefaultCapacity, s.Len())
	assert.Equal(t, "0", s.List()[0].ID)
}

func TestOpen_StorageUnavailable(t *testing.T) {
	backend := newMemoryBackend()
	backend.loadErr = errors.New("disk gone")

	s, err := Open(backend)
	require.ErrorIs(t, err, ErrStorageUnavailable)
	require.NotNil(t, s)
	assert.Empty(t, s.List())

	s, err = Open(nil)
	require.ErrorIs(t, err, ErrStorageUnavailable)
	require.NotNil(t, s)
	assert.ErrorIs(t, s.Append(record("A")), ErrStorageUnavailable)
}

func TestFailedPersistKeepsMemoryUnchanged(t *testing.T) {
	backend := newMemoryBackend()
	s := openStore(t, backend)
	require.NoError(t, s.Append(record("A")))

	backend.saveErr = errors.New("quota exceeded")

	assert.ErrorIs(t, s.Append(record("B")), ErrStorageUnavailable)
	assert.ErrorIs(t, s.Remove("A"), ErrStorageUnavailable)
	assert.ErrorIs(t, s.Clear(), ErrStorageUnavailable)
	assert.Equal(t, []string{"A"}, ids(s.List()))
}

func TestList_ReturnsCopy(t *testing.T) {
	s := openStore(t, newMemoryBackend())
	require.NoError(t, s.Append(record("A")))

	list := s.List()
	list[0].Title = "mutated"

	got, ok := s.Get("A")
	require.True(t, ok)
	assert.Equal(t, "Video A", got.Title)
}
