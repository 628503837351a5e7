package model

import "time"

// Timestamp layouts
const (
	// DownloadedAtLayout is ISO 8601 in UTC with millisecond precision
	DownloadedAtLayout = "2006-01-02T15:04:05.000Z07:00"

	// DisplayDateLayout is used by history rows
	DisplayDateLayout = "Jan 2, 2006, 03:04 PM"
)

// DownloadRecord is a completed download as persisted in history
type DownloadRecord struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Thumbnail    string `json:"thumbnail" yaml:"thumbnail"`
	Quality      string `json:"quality" yaml:"quality"`
	DownloadedAt string `json:"downloadedAt" yaml:"downloadedAt"`
	Size         string `json:"size" yaml:"size"`
}

// NewDownloadRecord builds a record for a finished download of the given variant.
// The record ID is the metadata ID.
func NewDownloadRecord(meta *VideoMetadata, variant QualityVariant, at time.Time) DownloadRecord {
	return DownloadRecord{
		ID:           meta.ID,
		Title:        meta.Title,
		Thumbnail:    meta.Thumbnail,
		Quality:      variant.Quality,
		DownloadedAt: at.UTC().Format(DownloadedAtLayout),
		Size:         variant.Size,
	}
}

// DownloadedTime parses DownloadedAt
func (r DownloadRecord) DownloadedTime() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, r.DownloadedAt)
}

// FormattedDate returns DownloadedAt in local time for display, or the raw
// value if it does not parse
func (r DownloadRecord) FormattedDate() string {
	t, err := r.DownloadedTime()
	if err != nil {
		return r.DownloadedAt
	}
	return t.Local().Format(DisplayDateLayout)
}
