package download

import (
	"github.com/ytget/video-saver/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(model.DownloadTask))
	Start(meta *model.VideoMetadata, qualityLabel string) (*model.DownloadTask, error)
	Cancel(id string) error
	GetTask(id string) (model.DownloadTask, bool)
	GetAllTasks() []model.DownloadTask
	ActiveTask() (model.DownloadTask, bool)
	Wait(id string) (model.DownloadTask, error)
}

// HistoryAppender receives records of completed downloads.
type HistoryAppender interface {
	Append(record model.DownloadRecord) error
}
