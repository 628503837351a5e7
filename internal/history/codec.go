package history

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ytget/video-saver/internal/model"
)

// decodeRecords parses the stored JSON array. Blank input and "null" decode
// to an empty list.
func decodeRecords(raw string) ([]model.DownloadRecord, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []model.DownloadRecord{}, nil
	}

	var records []model.DownloadRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	if records == nil {
		records = []model.DownloadRecord{}
	}
	return records, nil
}

func encodeRecords(records []model.DownloadRecord) (string, error) {
	if records == nil {
		records = []model.DownloadRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
