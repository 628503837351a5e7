package model

import "testing"

func sampleMetadata() *VideoMetadata {
	return &VideoMetadata{
		ID:        "1700000000000",
		Title:     "Sample",
		Thumbnail: "https://example.com/thumb.jpg",
		Duration:  "3:45",
		Qualities: []QualityVariant{
			{Quality: "HD (720p)", Size: "45.2 MB", SourceRef: "mock-hd-url"},
			{Quality: "SD (480p)", Size: "28.7 MB", SourceRef: "mock-sd-url"},
		},
	}
}

func TestVideoMetadata_DefaultQuality(t *testing.T) {
	meta := sampleMetadata()

	q, ok := meta.DefaultQuality()
	if !ok {
		t.Fatal("Expected a default quality")
	}
	if q.Quality != "HD (720p)" {
		t.Errorf("Expected first variant as default, got %s", q.Quality)
	}

	empty := &VideoMetadata{}
	if _, ok := empty.DefaultQuality(); ok {
		t.Error("Expected no default quality for empty metadata")
	}

	var nilMeta *VideoMetadata
	if _, ok := nilMeta.DefaultQuality(); ok {
		t.Error("Expected no default quality for nil metadata")
	}
}

func TestVideoMetadata_FindQuality(t *testing.T) {
	meta := sampleMetadata()

	tests := []struct {
		label    string
		found    bool
		expected string
	}{
		{"HD (720p)", true, "45.2 MB"},
		{"SD (480p)", true, "28.7 MB"},
		{"4K", false, ""},
		{"", false, ""},
	}

	for _, test := range tests {
		q, ok := meta.FindQuality(test.label)
		if ok != test.found {
			t.Errorf("FindQuality(%q) found = %v, expected %v", test.label, ok, test.found)
			continue
		}
		if q.Size != test.expected {
			t.Errorf("FindQuality(%q) size = %q, expected %q", test.label, q.Size, test.expected)
		}
	}
}

func TestVideoMetadata_QualityLabels(t *testing.T) {
	labels := sampleMetadata().QualityLabels()
	expected := []string{"HD (720p)", "SD (480p)"}

	if len(labels) != len(expected) {
		t.Fatalf("Expected %d labels, got %d", len(expected), len(labels))
	}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Errorf("Label %d: expected %s, got %s", i, expected[i], labels[i])
		}
	}
}
