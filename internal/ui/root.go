package ui

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"go.uber.org/zap"

	"github.com/ytget/video-saver/internal/config"
	"github.com/ytget/video-saver/internal/download"
	"github.com/ytget/video-saver/internal/fetch"
	"github.com/ytget/video-saver/internal/notify"
	"github.com/ytget/video-saver/internal/validation"
)

// CompletionSource delivers download completion events
type CompletionSource interface {
	Subscribe(fn func(notify.CompletionEvent)) (unsubscribe func())
}

// Services are the core components the UI drives
type Services struct {
	Fetcher     fetch.Fetcher
	Downloads   download.Downloader
	History     HistoryStore
	Completions CompletionSource
	Logger      *zap.Logger
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	toaster      *Toaster
	mobile       *MobileUI
	logger       *zap.Logger

	services   Services
	downloader *DownloaderView
	history    *HistoryView
	tabs       *container.AppTabs
	saverTab   *container.TabItem
	historyTab *container.TabItem
	main       fyne.CanvasObject

	unsubscribe        func()
	storageUnavailable bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, services Services) *RootUI {
	logger := services.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		toaster:      NewToaster(window),
		mobile:       NewMobileUI(),
		logger:       logger,
		services:     services,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.downloader = NewDownloaderView(ui.services.Fetcher, ui.services.Downloads, ui.localization, ui.toaster, ui.logger)
	ui.history = NewHistoryView(ui.services.History, ui.window, ui.localization, ui.toaster, ui.logger)

	ui.saverTab = container.NewTabItemWithIcon(ui.localization.GetText(KeyTabSaver), theme.DownloadIcon(), ui.downloader.Content())
	ui.historyTab = container.NewTabItemWithIcon(ui.localization.GetText(KeyTabHistory), theme.HistoryIcon(), ui.history.Content())
	ui.tabs = container.NewAppTabs(ui.saverTab, ui.historyTab)
	ui.tabs.SetTabLocation(ui.mobile.TabLocation())
	ui.tabs.OnSelected = func(item *container.TabItem) {
		if item == ui.historyTab {
			ui.history.Refresh()
		}
	}
	ui.main = ui.tabs

	// Set up callback for download updates
	ui.services.Downloads.SetUpdateCallback(ui.downloader.OnTaskUpdate)
	if ui.services.Completions != nil {
		ui.unsubscribe = ui.services.Completions.Subscribe(ui.onDownloadCompleted)
	}

	ui.logger.Debug("UI setup completed")
}

// Show displays the splash screen, if enabled, then the main content
func (ui *RootUI) Show() {
	if !ui.settings.GetShowSplash() {
		ui.showMain()
		return
	}

	ui.window.SetContent(NewSplash(ui.localization))
	time.AfterFunc(SplashDuration, func() {
		fyne.Do(ui.showMain)
	})
}

// showMain swaps the main tabs in and runs start-up checks
func (ui *RootUI) showMain() {
	ui.window.SetContent(ui.main)

	if ui.storageUnavailable {
		ui.toaster.Show(ToastError, ui.localization.GetText(KeyTabHistory), ui.localization.GetText(KeyStorageUnavailable))
		return
	}
	ui.detectClipboardURL()
}

// ReportStorageUnavailable shows a notice once the main content is visible
func (ui *RootUI) ReportStorageUnavailable() {
	ui.storageUnavailable = true
}

// Close releases subscriptions
func (ui *RootUI) Close() {
	if ui.unsubscribe != nil {
		ui.unsubscribe()
		ui.unsubscribe = nil
	}
	ui.downloader.CancelFetch()
}

// detectClipboardURL fills an empty URL entry with a copied video link
func (ui *RootUI) detectClipboardURL() {
	if !ui.settings.GetClipboardDetect() {
		return
	}
	clipboard := ui.app.Clipboard()
	if clipboard == nil {
		return
	}

	candidate := strings.TrimSpace(clipboard.Content())
	if !validation.IsValidURL(candidate) || strings.TrimSpace(ui.downloader.URL()) != "" {
		return
	}

	ui.downloader.SetURL(candidate)
	ui.toaster.Show(ToastInfo, ui.localization.GetText(KeyURLDetected), ui.localization.GetText(KeyURLDetectedBody))
}

// onDownloadCompleted handles completion events from any goroutine
func (ui *RootUI) onDownloadCompleted(evt notify.CompletionEvent) {
	fyne.Do(func() {
		ui.showCompletion(evt)
	})
}

// showCompletion sends a system notification and an in-app toast
func (ui *RootUI) showCompletion(evt notify.CompletionEvent) {
	title := ui.localization.GetText(KeyDownloadCompleted)
	message := ui.localization.Format(KeySavedToDevice, evt.Title, evt.Quality)

	ui.app.SendNotification(fyne.NewNotification(title, message))
	ui.toaster.Show(ToastSuccess, title, message)
	ui.history.Refresh()

	ui.logger.Info("download saved", zap.String("title", evt.Title), zap.String("quality", evt.Quality))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.onLanguageChange(ui.settings.GetLanguage())
	}).Show()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.saverTab.Text = ui.localization.GetText(KeyTabSaver)
	ui.historyTab.Text = ui.localization.GetText(KeyTabHistory)
	ui.tabs.Refresh()
	ui.downloader.RefreshTexts()
	ui.history.RefreshTexts()
}
