package ui

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-saver/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect  *widget.Select
	splashCheck     *widget.Check
	clipboardCheck  *widget.Check
	latencyEntry    *widget.Entry
	tickEntry       *widget.Entry
	historyEntry    *widget.Entry
	languageByLabel map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after a save.
func NewSettingsDialog(settings *config.Settings, l *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: l,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Language selection, shown by display name
	sd.languageByLabel = make(map[string]string)
	labels := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		if code == config.DefaultLanguage {
			name = l.GetText(KeyLanguageSystem)
		}
		sd.languageByLabel[name] = code
		labels = append(labels, name)
	}
	sort.Strings(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	sd.splashCheck = widget.NewCheck(l.GetText(KeyShowSplash), nil)
	sd.clipboardCheck = widget.NewCheck(l.GetText(KeyClipboardDetect), nil)

	sd.latencyEntry = widget.NewEntry()
	sd.latencyEntry.SetPlaceHolder(l.GetText(KeyDurationPlaceholder))
	sd.latencyEntry.Validator = validateDuration(l)

	sd.tickEntry = widget.NewEntry()
	sd.tickEntry.SetPlaceHolder(l.GetText(KeyDurationPlaceholder))
	sd.tickEntry.Validator = validateDuration(l)

	sd.historyEntry = widget.NewEntry()
	sd.historyEntry.SetPlaceHolder(strconv.Itoa(config.MinHistoryLimit) + "-" + strconv.Itoa(config.MaxHistoryLimit))
	sd.historyEntry.Validator = func(s string) error {
		if _, err := strconv.Atoi(s); err != nil {
			return errors.New(l.GetText(KeyInvalidNumber))
		}
		return nil
	}

	note := widget.NewLabel(l.GetText(KeyTimingAfterRestart))
	note.Importance = widget.LowImportance
	note.Wrapping = fyne.TextWrapWord

	form := container.NewVBox(
		widget.NewLabelWithStyle(l.GetText(KeyInterfaceSettings), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
		sd.splashCheck,
		sd.clipboardCheck,

		widget.NewLabelWithStyle(l.GetText(KeySimulationSettings), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyFetchLatency)+":"),
		sd.latencyEntry,
		widget.NewLabel(l.GetText(KeyProgressTick)+":"),
		sd.tickEntry,
		widget.NewLabel(l.GetText(KeyHistoryLimit)+":"),
		sd.historyEntry,
		note,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(WindowWidth-20, WindowHeight*2/3))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	for label, code := range sd.languageByLabel {
		if code == current {
			sd.languageSelect.SetSelected(label)
		}
	}
	sd.splashCheck.SetChecked(sd.settings.GetShowSplash())
	sd.clipboardCheck.SetChecked(sd.settings.GetClipboardDetect())
	sd.latencyEntry.SetText(sd.settings.GetFetchLatency().String())
	sd.tickEntry.SetText(sd.settings.GetProgressTick().String())
	sd.historyEntry.SetText(strconv.Itoa(sd.settings.GetHistoryLimit()))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the form values; unparsable fields are skipped
func (sd *SettingsDialog) apply() {
	if code, ok := sd.languageByLabel[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
	sd.settings.SetShowSplash(sd.splashCheck.Checked)
	sd.settings.SetClipboardDetect(sd.clipboardCheck.Checked)

	if d, err := time.ParseDuration(sd.latencyEntry.Text); err == nil {
		sd.settings.SetFetchLatency(d)
	}
	if d, err := time.ParseDuration(sd.tickEntry.Text); err == nil {
		sd.settings.SetProgressTick(d)
	}
	if n, err := strconv.Atoi(sd.historyEntry.Text); err == nil {
		sd.settings.SetHistoryLimit(n)
	}
}

func validateDuration(l *Localization) fyne.StringValidator {
	return func(s string) error {
		if _, err := time.ParseDuration(s); err != nil {
			return errors.New(l.GetText(KeyDurationPlaceholder))
		}
		return nil
	}
}
