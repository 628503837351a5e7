package fetch

import (
	"context"

	"github.com/ytget/video-saver/internal/model"
)

// Fetcher defines the interface for metadata lookup.
type Fetcher interface {
	// Fetch returns metadata for url. The caller validates url beforehand.
	Fetch(ctx context.Context, url string) (*model.VideoMetadata, error)
}
