package history

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/video-saver/internal/model"
)

// Storage defaults
const (
	DefaultKey      = "downloadHistory"
	DefaultCapacity = 50
)

// Store is the in-memory copy of the persisted history. It is loaded once
// when opened; writes go through to the backend.
type Store struct {
	mu       sync.RWMutex
	backend  Backend
	key      string
	capacity int
	records  []model.DownloadRecord
	logger   *zap.Logger
}

// Option configures a Store
type Option func(*Store)

// WithKey overrides the storage key
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithCapacity overrides the maximum number of records kept
func WithCapacity(capacity int) Option {
	return func(s *Store) {
		if capacity > 0 {
			s.capacity = capacity
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Open loads history from backend. Corrupt data is logged and replaced by an
// empty list. If the backend cannot be read the store still opens empty and
// the error is returned for the caller to report.
func Open(backend Backend, opts ...Option) (*Store, error) {
	s := &Store{
		backend:  backend,
		key:      DefaultKey,
		capacity: DefaultCapacity,
		records:  []model.DownloadRecord{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if backend == nil {
		return s, ErrStorageUnavailable
	}

	raw, err := backend.Load(s.key)
	if err != nil {
		s.logger.Error("failed to read history", zap.String("key", s.key), zap.Error(err))
		return s, wrapUnavailable(err)
	}

	records, err := decodeRecords(raw)
	if err != nil {
		s.logger.Warn("discarding unreadable history", zap.String("key", s.key), zap.Error(err))
		return s, nil
	}

	if len(records) > s.capacity {
		records = records[:s.capacity]
	}
	s.records = records
	s.logger.Debug("history loaded", zap.Int("count", len(records)))
	return s, nil
}

// Capacity returns the maximum number of records kept
func (s *Store) Capacity() int {
	return s.capacity
}

// List returns a copy of the records, newest first
func (s *Store) List() []model.DownloadRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.DownloadRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Get returns the newest record with the given id
func (s *Store) Get(id string) (model.DownloadRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return model.DownloadRecord{}, false
}

// Append inserts record at the front, evicting the oldest entries beyond capacity
func (s *Store) Append(record model.DownloadRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.DownloadRecord, 0, min(len(s.records)+1, s.capacity))
	next = append(next, record)
	for _, r := range s.records {
		if len(next) == s.capacity {
			break
		}
		next = append(next, r)
	}

	if err := s.commit(next); err != nil {
		return err
	}
	s.logger.Debug("history record added", zap.String("id", record.ID), zap.Int("count", len(next)))
	return nil
}

// Remove deletes every record with the given id. Unknown ids are a no-op.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.DownloadRecord, 0, len(s.records))
	for _, r := range s.records {
		if r.ID != id {
			next = append(next, r)
		}
	}
	if len(next) == len(s.records) {
		return nil
	}

	if err := s.commit(next); err != nil {
		return err
	}
	s.logger.Debug("history record removed", zap.String("id", id))
	return nil
}

// Clear removes all records
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commit([]model.DownloadRecord{}); err != nil {
		return err
	}
	s.logger.Debug("history cleared")
	return nil
}

// commit persists next and swaps it in. On failure the current list is kept.
// Callers hold s.mu.
func (s *Store) commit(next []model.DownloadRecord) error {
	if s.backend == nil {
		return ErrStorageUnavailable
	}

	raw, err := encodeRecords(next)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	if err := s.backend.Save(s.key, raw); err != nil {
		s.logger.Error("failed to persist history", zap.String("key", s.key), zap.Error(err))
		return wrapUnavailable(err)
	}

	s.records = next
	return nil
}

func wrapUnavailable(err error) error {
	if errors.Is(err, ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
