package model

import (
	"fmt"
	"strings"
	"time"
)

// DownloadTask represents a single simulated download
type DownloadTask struct {
	ID         string
	VideoID    string // metadata ID of the video being downloaded
	Title      string // video title
	Quality    string // chosen quality label
	Status     TaskStatus
	Percent    float64   // 0 to 100, never decreases
	LastError  string    // last error message if any
	StartedAt  time.Time // when download started
	FinishedAt time.Time // when download finished
	Record     *DownloadRecord
}

// GetPercentString returns the rounded percent, e.g. "42%"
func (dt *DownloadTask) GetPercentString() string {
	p := dt.Percent
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return fmt.Sprintf("%d%%", int(p+0.5))
}

// GetDisplayTitle returns title with the quality label, or the video ID
func (dt *DownloadTask) GetDisplayTitle() string {
	title := strings.TrimSpace(dt.Title)
	if title == "" {
		return dt.VideoID
	}
	if dt.Quality == "" {
		return title
	}
	return fmt.Sprintf("%s (%s)", title, dt.Quality)
}
