package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// BrandIcon is the app mark: the download glyph in the primary color
func BrandIcon() fyne.Resource {
	return theme.NewPrimaryThemedResource(theme.DownloadIcon())
}

// ThumbnailPlaceholder is shown while a thumbnail loads or when it cannot
func ThumbnailPlaceholder() fyne.Resource {
	return theme.MediaVideoIcon()
}
