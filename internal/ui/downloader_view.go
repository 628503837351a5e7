package ui

import (
	"context"
	"errors"
	"image"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/video-saver/internal/download"
	"github.com/ytget/video-saver/internal/fetch"
	"github.com/ytget/video-saver/internal/model"
	"github.com/ytget/video-saver/internal/validation"
)

// DownloaderView is the URL form, metadata card and progress area.
// Unless noted, methods run on the Fyne thread.
type DownloaderView struct {
	fetcher      fetch.Fetcher
	downloadSvc  download.Downloader
	localization *Localization
	toaster      *Toaster
	logger       *zap.Logger

	urlLabel     *widget.Label
	urlEntry     *widget.Entry
	fetchBtn     *widget.Button
	fetchSpinner *widget.ProgressBarInfinite

	card          *widget.Card
	thumbnail     *canvas.Image
	thumbs        *thumbnailLoader
	durationLabel *widget.Label
	titleLabel    *widget.Label
	qualityLabel  *widget.Label
	qualityGroup  *widget.RadioGroup
	progressBar   *widget.ProgressBar
	progressBox   *fyne.Container
	downloadBtn   *widget.Button
	cancelBtn     *widget.Button

	legalCard *widget.Card
	legalBody *widget.Label

	content fyne.CanvasObject

	// fetch state
	fetching     bool
	fetchSession uint64
	cancelFetch  context.CancelFunc

	// selection state
	meta          *model.VideoMetadata
	optionToLabel map[string]string
	activeTaskID  string
}

// NewDownloaderView builds the view
func NewDownloaderView(fetcher fetch.Fetcher, downloadSvc download.Downloader, l *Localization, toaster *Toaster, logger *zap.Logger) *DownloaderView {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := &DownloaderView{
		fetcher:       fetcher,
		downloadSvc:   downloadSvc,
		localization:  l,
		toaster:       toaster,
		logger:        logger,
		thumbs:        newThumbnailLoader(logger),
		optionToLabel: make(map[string]string),
	}
	v.build()
	return v
}

// Content returns the root canvas object of the view
func (v *DownloaderView) Content() fyne.CanvasObject {
	return v.content
}

func (v *DownloaderView) build() {
	l := v.localization

	v.urlLabel = widget.NewLabelWithStyle(l.GetText(KeyURLLabel), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	v.urlEntry = widget.NewEntry()
	v.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	v.urlEntry.OnChanged = func(string) { v.updateFetchButton() }
	v.urlEntry.OnSubmitted = func(string) { v.onFetchClick() }

	v.fetchBtn = widget.NewButtonWithIcon(l.GetText(KeyFetch), theme.SearchIcon(), v.onFetchClick)
	v.fetchBtn.Importance = widget.HighImportance
	v.fetchSpinner = widget.NewProgressBarInfinite()
	v.fetchSpinner.Stop()
	v.fetchSpinner.Hide()

	urlCard := widget.NewCard("", "", container.NewVBox(v.urlLabel, v.urlEntry, v.fetchBtn, v.fetchSpinner))

	v.thumbnail = canvas.NewImageFromResource(ThumbnailPlaceholder())
	v.thumbnail.FillMode = canvas.ImageFillContain
	v.thumbnail.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
	v.durationLabel = widget.NewLabel("")
	v.durationLabel.Importance = widget.MediumImportance
	v.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	v.titleLabel.Wrapping = fyne.TextWrapWord

	v.qualityLabel = widget.NewLabelWithStyle(l.GetText(KeySelectQuality), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	v.qualityGroup = widget.NewRadioGroup(nil, nil)
	v.qualityGroup.Required = true

	v.progressBar = widget.NewProgressBar()
	v.progressBox = container.NewVBox(v.progressBar)
	v.progressBox.Hide()

	v.downloadBtn = widget.NewButtonWithIcon(l.GetText(KeyDownload), theme.DownloadIcon(), v.onDownloadClick)
	v.downloadBtn.Importance = widget.HighImportance
	v.cancelBtn = widget.NewButtonWithIcon(l.GetText(KeyStop), theme.CancelIcon(), v.onCancelClick)
	v.cancelBtn.Importance = widget.DangerImportance
	v.cancelBtn.Hide()

	header := container.NewBorder(nil, nil, nil, v.durationLabel, v.titleLabel)
	v.card = widget.NewCard("", "", container.NewVBox(
		v.thumbnail,
		header,
		widget.NewSeparator(),
		v.qualityLabel,
		v.qualityGroup,
		v.progressBox,
		v.downloadBtn,
		v.cancelBtn,
	))
	v.card.Hide()

	v.legalBody = widget.NewLabel(l.GetText(KeyLegalNoticeBody))
	v.legalBody.Wrapping = fyne.TextWrapWord
	v.legalCard = widget.NewCard(IconWarning+" "+l.GetText(KeyLegalNoticeTitle), "", v.legalBody)

	v.content = container.NewVScroll(container.NewVBox(urlCard, v.card, v.legalCard))
	v.updateFetchButton()
}

// RefreshTexts re-applies localized strings
func (v *DownloaderView) RefreshTexts() {
	l := v.localization
	v.urlLabel.SetText(l.GetText(KeyURLLabel))
	v.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	if v.fetching {
		v.fetchBtn.SetText(l.GetText(KeyFetching))
	} else {
		v.fetchBtn.SetText(l.GetText(KeyFetch))
	}
	v.qualityLabel.SetText(l.GetText(KeySelectQuality))
	v.downloadBtn.SetText(l.GetText(KeyDownload))
	v.cancelBtn.SetText(l.GetText(KeyStop))
	v.legalCard.SetTitle(IconWarning + " " + l.GetText(KeyLegalNoticeTitle))
	v.legalBody.SetText(l.GetText(KeyLegalNoticeBody))
}

// URL returns the current entry text
func (v *DownloaderView) URL() string {
	return v.urlEntry.Text
}

// SetURL fills the entry
func (v *DownloaderView) SetURL(url string) {
	v.urlEntry.SetText(url)
	v.updateFetchButton()
}

// Metadata returns the loaded metadata, or nil
func (v *DownloaderView) Metadata() *model.VideoMetadata {
	return v.meta
}

// updateFetchButton enables fetching only for a non-blank URL while idle
func (v *DownloaderView) updateFetchButton() {
	if v.fetching || strings.TrimSpace(v.urlEntry.Text) == "" {
		v.fetchBtn.Disable()
	} else {
		v.fetchBtn.Enable()
	}
}

// onFetchClick validates the URL and starts a metadata fetch
func (v *DownloaderView) onFetchClick() {
	if v.fetching {
		return
	}

	url, err := validation.Validate(v.urlEntry.Text)
	if err != nil {
		v.showValidationError(err)
		return
	}

	v.fetchSession++
	session := v.fetchSession
	ctx, cancel := context.WithCancel(context.Background())
	v.cancelFetch = cancel
	v.setFetching(true)
	v.clearMetadata()

	v.logger.Debug("fetching metadata", zap.String("url", url), zap.Uint64("session", session))

	go func() {
		meta, err := v.fetcher.Fetch(ctx, url)
		fyne.Do(func() {
			v.onFetchResult(session, meta, err)
		})
	}()
}

// onFetchResult applies a fetch outcome unless a newer fetch superseded it
func (v *DownloaderView) onFetchResult(session uint64, meta *model.VideoMetadata, err error) {
	if session != v.fetchSession {
		v.logger.Debug("dropping stale fetch result", zap.Uint64("session", session))
		return
	}
	if v.cancelFetch != nil {
		v.cancelFetch()
		v.cancelFetch = nil
	}
	v.setFetching(false)

	l := v.localization
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		v.logger.Warn("metadata fetch failed", zap.Error(err))
		v.toaster.Show(ToastError, l.GetText(KeyFetchFailed), l.GetText(KeyFetchFailedBody))
		return
	}

	v.showMetadata(meta)
	v.toaster.Show(ToastSuccess, l.GetText(KeyVideoFound), l.GetText(KeyVideoFoundBody))
}

// CancelFetch abandons a pending fetch
func (v *DownloaderView) CancelFetch() {
	if !v.fetching {
		return
	}
	v.fetchSession++
	if v.cancelFetch != nil {
		v.cancelFetch()
		v.cancelFetch = nil
	}
	v.setFetching(false)
}

func (v *DownloaderView) setFetching(fetching bool) {
	v.fetching = fetching
	if fetching {
		v.fetchBtn.SetText(v.localization.GetText(KeyFetching))
		v.fetchSpinner.Show()
		v.fetchSpinner.Start()
	} else {
		v.fetchBtn.SetText(v.localization.GetText(KeyFetch))
		v.fetchSpinner.Stop()
		v.fetchSpinner.Hide()
	}
	v.updateFetchButton()
}

func (v *DownloaderView) showValidationError(err error) {
	l := v.localization
	switch {
	case errors.Is(err, validation.ErrEmptyInput):
		v.toaster.Show(ToastError, l.GetText(KeyURLRequired), l.GetText(KeyPleaseEnterURL))
	default:
		v.toaster.Show(ToastError, l.GetText(KeyInvalidURL), l.GetText(KeyInvalidURLBody))
	}
}

// showMetadata fills the card and selects the default quality
func (v *DownloaderView) showMetadata(meta *model.VideoMetadata) {
	v.meta = meta

	setThumbnail(v.thumbnail, nil)
	v.loadThumbnail(meta)

	v.titleLabel.SetText(meta.Title)
	v.durationLabel.SetText(meta.Duration)

	options := make([]string, 0, len(meta.Qualities))
	v.optionToLabel = make(map[string]string, len(meta.Qualities))
	for _, q := range meta.Qualities {
		option := q.Quality + MiddleDotSeparator + q.Size
		options = append(options, option)
		v.optionToLabel[option] = q.Quality
	}
	v.qualityGroup.Options = options
	if len(options) > 0 {
		v.qualityGroup.SetSelected(options[0])
	}
	v.qualityGroup.Refresh()

	v.progressBar.SetValue(0)
	v.progressBox.Hide()
	v.downloadBtn.SetText(v.localization.GetText(KeyDownload))
	v.downloadBtn.Enable()
	v.cancelBtn.Hide()
	v.card.Show()
}

// loadThumbnail shows the remote thumbnail once it is decoded
func (v *DownloaderView) loadThumbnail(meta *model.VideoMetadata) {
	v.thumbs.Load(meta.Thumbnail, func(img image.Image) {
		if v.meta != meta {
			return
		}
		setThumbnail(v.thumbnail, img)
	})
}

// clearMetadata hides the card and forgets the selection
func (v *DownloaderView) clearMetadata() {
	v.meta = nil
	v.optionToLabel = make(map[string]string)
	v.qualityGroup.Options = nil
	v.qualityGroup.Selected = ""
	v.qualityGroup.Refresh()
	v.card.Hide()
}

// SelectedQuality returns the quality label of the selected option
func (v *DownloaderView) SelectedQuality() string {
	return v.optionToLabel[v.qualityGroup.Selected]
}

// onDownloadClick starts downloading the selected quality
func (v *DownloaderView) onDownloadClick() {
	if v.meta == nil || v.activeTaskID != "" {
		return
	}
	l := v.localization

	task, err := v.downloadSvc.Start(v.meta, v.SelectedQuality())
	if err != nil {
		switch {
		case errors.Is(err, download.ErrDownloadInProgress):
			v.toaster.Show(ToastError, l.GetText(KeyDownloadFailed), l.GetText(KeyDownloadInProgress))
		case errors.Is(err, download.ErrInvalidQualitySelection):
			v.toaster.Show(ToastError, l.GetText(KeySelectQuality), l.GetText(KeyInvalidQuality))
		default:
			v.toaster.Show(ToastError, l.GetText(KeyDownloadFailed), l.GetText(KeyDownloadFailedBody))
		}
		v.logger.Warn("download not started", zap.Error(err))
		return
	}

	v.activeTaskID = task.ID
	v.progressBar.SetValue(0)
	v.progressBox.Show()
	v.downloadBtn.Disable()
	v.qualityGroup.Disable()
	v.fetchBtn.Disable()
	v.urlEntry.Disable()
	v.cancelBtn.Show()
}

// onCancelClick stops the running download
func (v *DownloaderView) onCancelClick() {
	if v.activeTaskID == "" {
		return
	}
	if err := v.downloadSvc.Cancel(v.activeTaskID); err != nil {
		v.logger.Debug("cancel ignored", zap.String("task", v.activeTaskID), zap.Error(err))
	}
}

// OnTaskUpdate receives snapshots from the download service on any goroutine
func (v *DownloaderView) OnTaskUpdate(task model.DownloadTask) {
	fyne.Do(func() {
		v.applyTaskUpdate(task)
	})
}

// applyTaskUpdate renders a task snapshot
func (v *DownloaderView) applyTaskUpdate(task model.DownloadTask) {
	if task.ID != v.activeTaskID {
		return
	}
	l := v.localization

	v.progressBar.SetValue(task.Percent / 100)
	v.downloadBtn.SetText(l.Format(KeyDownloading, task.GetPercentString()))

	if !task.Status.IsFinished() {
		return
	}

	v.activeTaskID = ""
	v.cancelBtn.Hide()
	v.qualityGroup.Enable()
	v.urlEntry.Enable()
	v.updateFetchButton()

	switch task.Status {
	case model.TaskStatusCompleted:
		// the completion toast comes from the notifier
		v.ResetForm()
	case model.TaskStatusCancelled:
		v.resetProgress()
		v.toaster.Show(ToastInfo, l.GetText(KeyAppTitle), l.GetText(KeyDownloadCancelled))
	default:
		v.resetProgress()
		v.toaster.Show(ToastError, l.GetText(KeyDownloadFailed), l.GetText(KeyDownloadFailedBody))
	}
}

func (v *DownloaderView) resetProgress() {
	v.progressBar.SetValue(0)
	v.progressBox.Hide()
	v.downloadBtn.SetText(v.localization.GetText(KeyDownload))
	v.downloadBtn.Enable()
}

// ResetForm clears the URL and the metadata card
func (v *DownloaderView) ResetForm() {
	v.CancelFetch()
	v.clearMetadata()
	v.resetProgress()
	v.urlEntry.SetText("")
	v.updateFetchButton()
}
