package model

// QualityVariant is one selectable encoding of a video
type QualityVariant struct {
	Quality   string `json:"quality"`
	Size      string `json:"size"`
	SourceRef string `json:"url"`
}

// VideoMetadata holds what the fetcher found for a URL. It lives only while a
// fetch session is active and is dropped once the download completes.
type VideoMetadata struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Thumbnail string           `json:"thumbnail"`
	Duration  string           `json:"duration"` // mm:ss
	Qualities []QualityVariant `json:"qualities"`
}

// DefaultQuality returns the first variant, which is the preselected one
func (vm *VideoMetadata) DefaultQuality() (QualityVariant, bool) {
	if vm == nil || len(vm.Qualities) == 0 {
		return QualityVariant{}, false
	}
	return vm.Qualities[0], true
}

// FindQuality looks up a variant by its label
func (vm *VideoMetadata) FindQuality(label string) (QualityVariant, bool) {
	if vm == nil {
		return QualityVariant{}, false
	}
	for _, q := range vm.Qualities {
		if q.Quality == label {
			return q, true
		}
	}
	return QualityVariant{}, false
}

// QualityLabels returns the labels in display order
func (vm *VideoMetadata) QualityLabels() []string {
	if vm == nil {
		return nil
	}
	labels := make([]string, 0, len(vm.Qualities))
	for _, q := range vm.Qualities {
		labels = append(labels, q.Quality)
	}
	return labels
}
