package ui

import (
	"errors"
	"image"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/video-saver/internal/model"
)

// fakeHistoryStore keeps records in memory
type fakeHistoryStore struct {
	records []model.DownloadRecord
	err     error
}

func (f *fakeHistoryStore) List() []model.DownloadRecord {
	return append([]model.DownloadRecord(nil), f.records...)
}

func (f *fakeHistoryStore) Remove(id string) error {
	if f.err != nil {
		return f.err
	}
	kept := f.records[:0]
	for _, r := range f.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.records = kept
	return nil
}

func (f *fakeHistoryStore) Clear() error {
	if f.err != nil {
		return f.err
	}
	f.records = nil
	return nil
}

func historyRecord(id string) model.DownloadRecord {
	return model.DownloadRecord{
		ID:           id,
		Title:        "Video " + id,
		Quality:      "SD (480p)",
		Size:         "28.7 MB",
		DownloadedAt: "2025-06-01T10:30:00.000Z",
	}
}

func newTestHistoryView(t *testing.T, store HistoryStore) (*HistoryView, *Toaster) {
	t.Helper()
	test.NewApp()
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	toaster := NewToaster(w)
	v := NewHistoryView(store, w, NewLocalization(), toaster, nil)
	w.SetContent(v.Content())
	return v, toaster
}

func TestHistoryView_EmptyState(t *testing.T) {
	v, _ := newTestHistoryView(t, &fakeHistoryStore{})

	assert.Empty(t, v.Records())
	assert.Equal(t, "0", v.countLabel.Text)
	assert.True(t, v.emptyState.Visible())
	assert.False(t, v.list.Visible())
	assert.True(t, v.clearBtn.Disabled())
}

func TestHistoryView_ListsRecords(t *testing.T) {
	store := &fakeHistoryStore{records: []model.DownloadRecord{historyRecord("b"), historyRecord("a")}}
	v, _ := newTestHistoryView(t, store)

	require.Len(t, v.Records(), 2)
	assert.Equal(t, "b", v.Records()[0].ID)
	assert.Equal(t, "2", v.countLabel.Text)
	assert.False(t, v.emptyState.Visible())
	assert.True(t, v.list.Visible())
	assert.False(t, v.clearBtn.Disabled())
}

func TestHistoryView_UpdateRow(t *testing.T) {
	store := &fakeHistoryStore{records: []model.DownloadRecord{historyRecord("a")}}
	v, toaster := newTestHistoryView(t, store)

	row := v.createRow().(*historyRow)
	v.updateRow(0, row)

	assert.Equal(t, "Video a", row.title.Text)
	assert.Equal(t, "SD (480p) · 28.7 MB", row.details.Text)
	assert.Equal(t, historyRecord("a").FormattedDate(), row.date.Text)

	test.Tap(row.play)
	title, message := toaster.Last()
	assert.Equal(t, "Opening Video", title)
	assert.Equal(t, "Playing Video a", message)

	test.Tap(row.delete)
	assert.Empty(t, store.records)
	assert.Empty(t, v.Records())
	title, _ = toaster.Last()
	assert.Equal(t, "Deleted", title)
}

func TestHistoryView_ClearAll(t *testing.T) {
	store := &fakeHistoryStore{records: []model.DownloadRecord{historyRecord("a"), historyRecord("b")}}
	v, toaster := newTestHistoryView(t, store)

	v.clearAll()

	assert.Empty(t, v.Records())
	assert.True(t, v.emptyState.Visible())
	title, _ := toaster.Last()
	assert.Equal(t, "History Cleared", title)
}

func TestHistoryView_StoreFailureKeepsRows(t *testing.T) {
	store := &fakeHistoryStore{records: []model.DownloadRecord{historyRecord("a")}}
	v, toaster := newTestHistoryView(t, store)
	store.err = errors.New("quota exceeded")

	v.onDelete(historyRecord("a"))
	assert.Len(t, v.Records(), 1)
	title, message := toaster.Last()
	assert.Equal(t, "History unavailable", title)
	assert.Equal(t, "Could not update download history.", message)

	v.clearAll()
	assert.Len(t, v.Records(), 1)
	title, _ = toaster.Last()
	assert.Equal(t, "History unavailable", title)
}

func TestHistoryView_RowShowsRecordThumbnail(t *testing.T) {
	withThumb := historyRecord("a")
	withThumb.Thumbnail = "https://picsum.photos/400/225?random=1"
	store := &fakeHistoryStore{records: []model.DownloadRecord{withThumb, historyRecord("b")}}
	v, _ := newTestHistoryView(t, store)

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	v.thumbs.cache[withThumb.Thumbnail] = img

	row := v.createRow().(*historyRow)
	v.updateRow(0, row)
	assert.Equal(t, image.Image(img), row.thumb.Image)
	assert.Nil(t, row.thumb.Resource)

	// recycled for a record without a thumbnail
	v.updateRow(1, row)
	assert.Nil(t, row.thumb.Image)
	assert.Equal(t, ThumbnailPlaceholder(), row.thumb.Resource)
}
