package ui

import (
	"image/color"
	"time"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconClose    = "×"
	IconLanguage = "🌐"
	IconWarning  = "⚠"
	IconCheck    = "✓"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Brand colors
var (
	BrandBlue     = color.NRGBA{R: 0x18, G: 0x77, B: 0xF2, A: 0xFF}
	BrandBlueDark = color.NRGBA{R: 0x0D, G: 0x5B, B: 0xC6, A: 0xFF}
	SplashText    = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	SplashSubText = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xCC}
)

// Layout sizing
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 760

	ThumbnailWidth  float32 = 320
	ThumbnailHeight float32 = 180

	HistoryThumbSize float32 = 56
	SplashIconSize   float32 = 96

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 96
	ToastMargin   float32 = 16
	ToastAutoHide         = 4 * time.Second
)

// Delays
const (
	SplashDuration = 2 * time.Second
)
