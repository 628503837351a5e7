package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

// StateFile is a YAML key-value file used by the CLI to persist history.
// Keys are case-insensitive.
type StateFile struct {
	mu   sync.Mutex
	path string
	v    *viper.Viper
}

// OpenStateFile reads path if it exists. A missing file is an empty state.
func OpenStateFile(path string) (*StateFile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read state file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat state file %s: %w", path, err)
	}

	return &StateFile{path: path, v: v}, nil
}

// Path returns the file location
func (s *StateFile) Path() string {
	return s.path
}

// Load returns the value stored under key, or "" when absent
func (s *StateFile) Load(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.GetString(key), nil
}

// Save stores value under key and rewrites the file
func (s *StateFile) Save(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	s.v.Set(key, value)
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write state file %s: %w", s.path, err)
	}
	return nil
}
