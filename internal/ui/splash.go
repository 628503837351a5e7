package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

// NewSplash builds the start screen: brand gradient, icon, name and tagline
func NewSplash(l *Localization) fyne.CanvasObject {
	background := canvas.NewLinearGradient(BrandBlue, BrandBlueDark, 0)

	icon := canvas.NewImageFromResource(theme.NewInvertedThemedResource(theme.DownloadIcon()))
	icon.FillMode = canvas.ImageFillContain
	icon.SetMinSize(fyne.NewSize(SplashIconSize, SplashIconSize))

	name := canvas.NewText(l.GetText(KeyAppTitle), SplashText)
	name.TextSize = 26
	name.TextStyle = fyne.TextStyle{Bold: true}
	name.Alignment = fyne.TextAlignCenter

	tagline := canvas.NewText(l.GetText(KeyAppTagline), SplashSubText)
	tagline.TextSize = 14
	tagline.Alignment = fyne.TextAlignCenter

	dots := canvas.NewText("• • •", SplashText)
	dots.TextSize = 18
	dots.Alignment = fyne.TextAlignCenter

	return container.NewStack(
		background,
		container.NewCenter(container.NewVBox(icon, name, tagline, dots)),
	)
}
