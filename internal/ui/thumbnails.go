package ui

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/storage"
	"go.uber.org/zap"
)

// thumbnailLoader decodes remote thumbnails off the Fyne thread and keeps
// decoded images by URL so recycled list rows do not fetch again.
type thumbnailLoader struct {
	logger *zap.Logger
	decode func(fyne.URI) (image.Image, error)

	mu    sync.Mutex
	cache map[string]image.Image
}

func newThumbnailLoader(logger *zap.Logger) *thumbnailLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &thumbnailLoader{
		logger: logger,
		decode: decodeURI,
		cache:  make(map[string]image.Image),
	}
}

func decodeURI(uri fyne.URI) (image.Image, error) {
	r, err := storage.Reader(uri)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	img, _, err := image.Decode(r)
	return img, err
}

// Load calls apply on the Fyne thread with the image at raw. A cached image
// is applied immediately. Bad or undecodable URLs leave the placeholder.
func (t *thumbnailLoader) Load(raw string, apply func(image.Image)) {
	if raw == "" {
		return
	}

	t.mu.Lock()
	img, ok := t.cache[raw]
	t.mu.Unlock()
	if ok {
		apply(img)
		return
	}

	uri, err := storage.ParseURI(raw)
	if err != nil {
		t.logger.Debug("bad thumbnail uri", zap.String("thumbnail", raw), zap.Error(err))
		return
	}

	go func() {
		img, err := t.decode(uri)
		if err != nil {
			t.logger.Debug("can't load thumbnail", zap.String("thumbnail", raw), zap.Error(err))
			return
		}
		t.mu.Lock()
		t.cache[raw] = img
		t.mu.Unlock()
		fyne.Do(func() {
			apply(img)
		})
	}()
}

// setThumbnail swaps img into dst, or the placeholder when img is nil
func setThumbnail(dst *canvas.Image, img image.Image) {
	if img == nil {
		dst.Image = nil
		dst.Resource = ThumbnailPlaceholder()
	} else {
		dst.Resource = nil
		dst.Image = img
	}
	dst.Refresh()
}
