package history

import (
	"errors"

	"fyne.io/fyne/v2"
)

var (
	ErrStorageUnavailable = errors.New("history storage unavailable")
	ErrCorruptRecord      = errors.New("stored history is corrupt")
)

// Backend is a key-value record store. Load returns "" for an absent key.
type Backend interface {
	Load(key string) (string, error)
	Save(key, value string) error
}

// PreferencesBackend keeps history in Fyne preferences
type PreferencesBackend struct {
	prefs fyne.Preferences
}

// NewPreferencesBackend wraps app preferences
func NewPreferencesBackend(prefs fyne.Preferences) *PreferencesBackend {
	return &PreferencesBackend{prefs: prefs}
}

// Load returns the stored value for key
func (b *PreferencesBackend) Load(key string) (string, error) {
	if b.prefs == nil {
		return "", ErrStorageUnavailable
	}
	return b.prefs.String(key), nil
}

// Save stores value under key
func (b *PreferencesBackend) Save(key, value string) error {
	if b.prefs == nil {
		return ErrStorageUnavailable
	}
	b.prefs.SetString(key, value)
	return nil
}
