package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage        = "app_language"
	KeyShowSplash      = "show_splash"
	KeyClipboardDetect = "clipboard_auto_detect"
	KeyFetchLatencyMS  = "fetch_latency_ms"
	KeyProgressTickMS  = "progress_tick_ms"
	KeyHistoryLimit    = "history_limit"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultShowSplash      = true
	DefaultClipboardDetect = true
	DefaultFetchLatencyMS  = 2000
	DefaultProgressTickMS  = 200
	DefaultHistoryLimit    = 50
)

// Limits applied by the setters
const (
	MaxFetchLatencyMS = 10000
	MinProgressTickMS = 50
	MaxProgressTickMS = 2000
	MinHistoryLimit   = 1
	MaxHistoryLimit   = 500
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language. Unknown codes fall back to system.
func (s *Settings) SetLanguage(lang string) {
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetShowSplash returns whether the splash screen is shown on start
func (s *Settings) GetShowSplash() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowSplash, DefaultShowSplash)
}

// SetShowSplash sets whether the splash screen is shown on start
func (s *Settings) SetShowSplash(show bool) {
	s.app.Preferences().SetBool(KeyShowSplash, show)
}

// GetClipboardDetect returns whether a copied video URL is filled in on start
func (s *Settings) GetClipboardDetect() bool {
	return s.app.Preferences().BoolWithFallback(KeyClipboardDetect, DefaultClipboardDetect)
}

// SetClipboardDetect sets clipboard URL detection
func (s *Settings) SetClipboardDetect(enabled bool) {
	s.app.Preferences().SetBool(KeyClipboardDetect, enabled)
}

// GetFetchLatency returns the simulated metadata fetch delay
func (s *Settings) GetFetchLatency() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyFetchLatencyMS, DefaultFetchLatencyMS)
	if ms < 0 || ms > MaxFetchLatencyMS {
		ms = DefaultFetchLatencyMS
	}
	return time.Duration(ms) * time.Millisecond
}

// SetFetchLatency sets the simulated fetch delay, clamped to [0, MaxFetchLatencyMS]
func (s *Settings) SetFetchLatency(d time.Duration) {
	s.app.Preferences().SetInt(KeyFetchLatencyMS, clamp(int(d/time.Millisecond), 0, MaxFetchLatencyMS))
}

// GetProgressTick returns the interval between simulated progress steps
func (s *Settings) GetProgressTick() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyProgressTickMS, DefaultProgressTickMS)
	if ms < MinProgressTickMS || ms > MaxProgressTickMS {
		ms = DefaultProgressTickMS
	}
	return time.Duration(ms) * time.Millisecond
}

// SetProgressTick sets the progress interval, clamped to its limits
func (s *Settings) SetProgressTick(d time.Duration) {
	s.app.Preferences().SetInt(KeyProgressTickMS, clamp(int(d/time.Millisecond), MinProgressTickMS, MaxProgressTickMS))
}

// GetHistoryLimit returns how many history records are kept
func (s *Settings) GetHistoryLimit() int {
	value := s.app.Preferences().Int(KeyHistoryLimit)
	if value <= 0 {
		s.SetHistoryLimit(DefaultHistoryLimit)
		return DefaultHistoryLimit
	}
	return value
}

// SetHistoryLimit sets the history capacity
func (s *Settings) SetHistoryLimit(limit int) {
	s.app.Preferences().SetInt(KeyHistoryLimit, clamp(limit, MinHistoryLimit, MaxHistoryLimit))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
