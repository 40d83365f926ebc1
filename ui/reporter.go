package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"

	"github.com/dixieflatline76/Shrink/pkg/resize"
	"github.com/dixieflatline76/Shrink/util/log"
)

// statusReporter shows batch results in the main window. Every call may come from
// the worker goroutine, so widget updates go through fyne.Do.
type statusReporter struct {
	status binding.String
	window fyne.Window
}

// Status replaces the status line.
func (r *statusReporter) Status(message string) {
	fyne.Do(func() {
		if err := r.status.Set(message); err != nil {
			log.Printf("Failed to set status: %v", err)
		}
	})
}

// Progress renders a progress event on the status line.
func (r *statusReporter) Progress(p resize.Progress) {
	log.Debugf("Resizing %s (%d/%d)", p.Name, p.Current, p.Total)
	r.Status(resize.ProgressMessage(p))
}

// Error shows a modal error dialog.
func (r *statusReporter) Error(title, message string) {
	fyne.Do(func() {
		d := dialog.NewCustom(title, "OK", createMessageLabel(message), r.window)
		d.Resize(fyne.NewSize(errorDialogWidth, errorDialogHeight))
		d.Show()
	})
}
