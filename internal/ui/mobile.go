package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// MobileUI answers device questions for layout decisions
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a mobile helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{device: fyne.CurrentDevice()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device != nil && m.device.IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	if !m.IsMobileDevice() {
		return false
	}
	orientation := m.device.Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// TabLocation puts tabs at the bottom on phones held upright, on top elsewhere
func (m *MobileUI) TabLocation() container.TabLocation {
	if m.IsMobileDevice() && !m.IsLandscape() {
		return container.TabLocationBottom
	}
	return container.TabLocationTop
}

// WindowSize returns the initial desktop window size; a phone-shaped window
func (m *MobileUI) WindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}
