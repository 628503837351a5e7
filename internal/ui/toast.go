package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ToastKind selects the toast icon
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

func (k ToastKind) icon() fyne.Resource {
	switch k {
	case ToastSuccess:
		return theme.NewSuccessThemedResource(theme.ConfirmIcon())
	case ToastError:
		return theme.NewErrorThemedResource(theme.ErrorIcon())
	default:
		return theme.NewPrimaryThemedResource(theme.InfoIcon())
	}
}

// Toaster shows one short-lived, non-modal notice at a time.
// Methods must be called on the Fyne thread.
type Toaster struct {
	window   fyne.Window
	autoHide time.Duration

	current *widget.PopUp
	title   string
	message string
}

// NewToaster creates a toaster for window
func NewToaster(window fyne.Window) *Toaster {
	return &Toaster{window: window, autoHide: ToastAutoHide}
}

// Show replaces any visible toast with a new one
func (t *Toaster) Show(kind ToastKind, title, message string) {
	t.Hide()

	titleLabel := widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	messageLabel := widget.NewLabel(message)
	messageLabel.Wrapping = fyne.TextWrapWord

	var popup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if t.current == popup {
			t.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, widget.NewIcon(kind.icon()), closeBtn, titleLabel)
	content := container.NewVBox(header, messageLabel)

	c := t.window.Canvas()
	popup = widget.NewPopUp(content, c)

	width := ToastWidth
	if avail := c.Size().Width - 2*ToastMargin; avail > 0 && avail < width {
		width = avail
	}
	size := fyne.NewSize(width, ToastHeight)
	popup.Resize(size)
	popup.ShowAtPosition(fyne.NewPos(c.Size().Width-size.Width-ToastMargin, ToastMargin))

	t.current = popup
	t.title = title
	t.message = message

	time.AfterFunc(t.autoHide, func() {
		fyne.Do(func() {
			if t.current == popup {
				t.Hide()
			}
		})
	})
}

// Hide removes the visible toast, if any
func (t *Toaster) Hide() {
	if t.current != nil {
		t.current.Hide()
		t.current = nil
	}
}

// Visible reports whether a toast is shown
func (t *Toaster) Visible() bool {
	return t.current != nil
}

// Last returns the title and message of the most recent toast
func (t *Toaster) Last() (string, string) {
	return t.title, t.message
}
