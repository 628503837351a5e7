package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/video-saver/internal/model"
)

// HistoryStore is the part of the history store the UI needs
type HistoryStore interface {
	List() []model.DownloadRecord
	Remove(id string) error
	Clear() error
}

// HistoryView lists downloaded videos, newest first. Methods run on the Fyne thread.
type HistoryView struct {
	store        HistoryStore
	window       fyne.Window
	localization *Localization
	toaster      *Toaster
	logger       *zap.Logger
	thumbs       *thumbnailLoader

	records []model.DownloadRecord

	titleLabel *widget.Label
	countLabel *widget.Label
	clearBtn   *widget.Button
	list       *widget.List

	emptyTitle *widget.Label
	emptyBody  *widget.Label
	emptyState *fyne.Container
	listArea   *fyne.Container

	content fyne.CanvasObject
}

// NewHistoryView builds the view and loads the current records
func NewHistoryView(store HistoryStore, window fyne.Window, l *Localization, toaster *Toaster, logger *zap.Logger) *HistoryView {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := &HistoryView{
		store:        store,
		window:       window,
		localization: l,
		toaster:      toaster,
		logger:       logger,
		thumbs:       newThumbnailLoader(logger),
	}
	v.build()
	v.Refresh()
	return v
}

// Content returns the root canvas object of the view
func (v *HistoryView) Content() fyne.CanvasObject {
	return v.content
}

func (v *HistoryView) build() {
	l := v.localization

	v.titleLabel = widget.NewLabelWithStyle(l.GetText(KeyHistoryTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	v.countLabel = widget.NewLabel("0")
	v.countLabel.Importance = widget.HighImportance
	v.clearBtn = widget.NewButtonWithIcon(l.GetText(KeyClearAll), theme.DeleteIcon(), v.onClearAll)
	v.clearBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil,
		container.NewHBox(widget.NewIcon(theme.NewPrimaryThemedResource(theme.HistoryIcon())), v.titleLabel, v.countLabel),
		v.clearBtn,
	)

	v.list = widget.NewList(
		func() int { return len(v.records) },
		v.createRow,
		v.updateRow,
	)

	v.emptyTitle = widget.NewLabelWithStyle(l.GetText(KeyNoDownloads), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	v.emptyBody = widget.NewLabelWithStyle(l.GetText(KeyNoDownloadsBody), fyne.TextAlignCenter, fyne.TextStyle{})
	v.emptyBody.Wrapping = fyne.TextWrapWord
	emptyIcon := widget.NewIcon(theme.MediaVideoIcon())
	v.emptyState = container.NewCenter(container.NewVBox(
		container.NewCenter(container.NewGridWrap(fyne.NewSize(64, 64), emptyIcon)),
		v.emptyTitle,
		v.emptyBody,
	))

	v.listArea = container.NewStack(v.list, v.emptyState)
	v.content = container.NewBorder(header, nil, nil, nil, v.listArea)
}

// historyRow is one list entry: thumbnail, text and actions
type historyRow struct {
	widget.BaseWidget

	thumb    *canvas.Image
	thumbURL string
	title    *widget.Label
	details  *widget.Label
	date     *widget.Label
	play     *widget.Button
	share    *widget.Button
	delete   *widget.Button
	content  fyne.CanvasObject
}

func newHistoryRow() *historyRow {
	row := &historyRow{
		title:   widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		details: widget.NewLabel(""),
		date:    widget.NewLabel(""),
	}
	row.title.Truncation = fyne.TextTruncateEllipsis
	row.details.Truncation = fyne.TextTruncateEllipsis
	row.date.Importance = widget.LowImportance

	row.play = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), nil)
	row.share = widget.NewButtonWithIcon("", theme.MailForwardIcon(), nil)
	row.delete = widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
	row.delete.Importance = widget.DangerImportance

	row.thumb = canvas.NewImageFromResource(ThumbnailPlaceholder())
	row.thumb.FillMode = canvas.ImageFillContain
	row.content = container.NewBorder(nil, nil,
		container.NewGridWrap(fyne.NewSize(HistoryThumbSize, HistoryThumbSize), row.thumb),
		container.NewHBox(row.play, row.share, row.delete),
		container.NewVBox(row.title, row.details, row.date),
	)

	row.ExtendBaseWidget(row)
	return row
}

// CreateRenderer implements fyne.Widget
func (r *historyRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.content)
}

func (v *HistoryView) createRow() fyne.CanvasObject {
	return newHistoryRow()
}

func (v *HistoryView) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	row, ok := obj.(*historyRow)
	if !ok || id < 0 || id >= len(v.records) {
		return
	}
	record := v.records[id]

	row.title.SetText(record.Title)
	row.details.SetText(record.Quality + MiddleDotSeparator + record.Size)
	row.date.SetText(record.FormattedDate())

	// Rows are recycled, so only apply an image still meant for this row
	url := record.Thumbnail
	row.thumbURL = url
	setThumbnail(row.thumb, nil)
	v.thumbs.Load(url, func(img image.Image) {
		if row.thumbURL == url {
			setThumbnail(row.thumb, img)
		}
	})

	row.play.OnTapped = func() { v.onPlay(record) }
	row.share.OnTapped = func() { v.onShare(record) }
	row.delete.OnTapped = func() { v.onDelete(record) }
}

// Refresh reloads records from the store
func (v *HistoryView) Refresh() {
	v.records = v.store.List()
	v.countLabel.SetText(v.localization.Format(KeyHistoryCount, len(v.records)))

	if len(v.records) == 0 {
		v.list.Hide()
		v.emptyState.Show()
		v.clearBtn.Disable()
	} else {
		v.emptyState.Hide()
		v.list.Show()
		v.clearBtn.Enable()
	}
	v.list.Refresh()
}

// RefreshTexts re-applies localized strings
func (v *HistoryView) RefreshTexts() {
	l := v.localization
	v.titleLabel.SetText(l.GetText(KeyHistoryTitle))
	v.clearBtn.SetText(l.GetText(KeyClearAll))
	v.emptyTitle.SetText(l.GetText(KeyNoDownloads))
	v.emptyBody.SetText(l.GetText(KeyNoDownloadsBody))
	v.Refresh()
}

// Records returns the records currently shown
func (v *HistoryView) Records() []model.DownloadRecord {
	return v.records
}

func (v *HistoryView) onPlay(record model.DownloadRecord) {
	l := v.localization
	v.toaster.Show(ToastInfo, l.GetText(KeyOpeningVideo), l.Format(KeyPlayingVideo, record.Title))
}

func (v *HistoryView) onShare(record model.DownloadRecord) {
	l := v.localization
	v.logger.Debug("share requested", zap.String("id", record.ID))
	v.toaster.Show(ToastInfo, l.GetText(KeyShareVideo), l.GetText(KeyShareVideoBody))
}

func (v *HistoryView) onDelete(record model.DownloadRecord) {
	l := v.localization
	if err := v.store.Remove(record.ID); err != nil {
		v.logger.Error("failed to remove history record", zap.String("id", record.ID), zap.Error(err))
		v.toaster.Show(ToastError, l.GetText(KeyHistoryErrorTitle), l.GetText(KeyHistoryError))
		return
	}
	v.Refresh()
	v.toaster.Show(ToastSuccess, l.GetText(KeyDeleted), l.GetText(KeyDeletedBody))
}

func (v *HistoryView) onClearAll() {
	l := v.localization
	dialog.ShowConfirm(l.GetText(KeyClearAll), l.GetText(KeyClearAllConfirm), func(confirmed bool) {
		if confirmed {
			v.clearAll()
		}
	}, v.window)
}

// clearAll empties the history without asking
func (v *HistoryView) clearAll() {
	l := v.localization
	if err := v.store.Clear(); err != nil {
		v.logger.Error("failed to clear history", zap.Error(err))
		v.toaster.Show(ToastError, l.GetText(KeyHistoryErrorTitle), l.GetText(KeyHistoryError))
		return
	}
	v.Refresh()
	v.toaster.Show(ToastSuccess, l.GetText(KeyHistoryCleared), l.GetText(KeyHistoryClearedBody))
}
