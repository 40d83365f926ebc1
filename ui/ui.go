package ui

import (
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/data/validation"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Shrink/asset"
	"github.com/dixieflatline76/Shrink/config"
	"github.com/dixieflatline76/Shrink/pkg/resize"
	"github.com/dixieflatline76/Shrink/util/log"
)

// ResizeApp is the main window: a size entry, a folder picker, a status line and the Resize button.
type ResizeApp struct {
	app      fyne.App
	window   fyne.Window
	assetMgr *asset.Manager
	cfg      *config.Config
	batch    *resize.Batch
	reporter *statusReporter

	folder   binding.String
	sizeText binding.String
	status   binding.String

	folderEntry  *widget.Entry
	browseButton *widget.Button
	resizeButton *widget.Button

	running atomic.Bool // true while a batch owns the output folder
}

// NewResizeApp builds the main window. launcher opens the output folder after each
// batch; it is ignored when the configuration disables opening the output.
func NewResizeApp(a fyne.App, cfg *config.Config, launcher resize.Launcher) (*ResizeApp, error) {
	filter, err := resize.FilterByName(cfg.Filter)
	if err != nil {
		return nil, err
	}
	if !cfg.OpenOutput {
		launcher = nil
	}

	ra := &ResizeApp{
		app:      a,
		window:   a.NewWindow(config.WindowTitle),
		assetMgr: asset.NewManager(),
		cfg:      cfg,
		folder:   binding.NewString(),
		sizeText: binding.NewString(),
		status:   binding.NewString(),
	}
	ra.reporter = &statusReporter{status: ra.status, window: ra.window}
	ra.batch = resize.NewBatch(resize.NewResizer(filter, cfg.JPEGQuality), cfg.OutputDirName, ra.reporter, launcher)

	_ = ra.sizeText.Set(strconv.Itoa(cfg.DefaultSize))
	_ = ra.status.Set(resize.IdleMessage)

	if icon, err := ra.assetMgr.GetIcon(appIconName); err == nil {
		a.SetIcon(icon)
		ra.window.SetIcon(icon)
	}

	ra.window.SetContent(ra.buildContent())
	ra.window.Resize(fyne.NewSize(windowWidth, windowHeight))
	ra.window.CenterOnScreen()
	return ra, nil
}

// Start shows the window and runs the Fyne event loop until the window closes.
func (ra *ResizeApp) Start() {
	ra.window.ShowAndRun()
}

func (ra *ResizeApp) buildContent() fyne.CanvasObject {
	sizeEntry := widget.NewEntryWithData(ra.sizeText)
	sizeEntry.Validator = validation.NewRegexp(sizeDigitsOnly, "Size must be a whole number")

	ra.folderEntry = widget.NewEntryWithData(ra.folder)
	ra.folderEntry.SetPlaceHolder(folderHint)
	ra.folderEntry.OnSubmitted = func(string) { ra.onFolderChosen() }

	ra.browseButton = widget.NewButtonWithIcon(browseLabel, theme.FolderOpenIcon(), ra.onBrowse)
	ra.resizeButton = widget.NewButtonWithIcon(resizeLabel, theme.ViewRestoreIcon(), ra.onResize)
	ra.resizeButton.Importance = widget.HighImportance

	aboutButton := widget.NewButtonWithIcon("", theme.HelpIcon(), ra.showAbout)
	aboutButton.Importance = widget.LowImportance

	return container.NewPadded(container.NewVBox(
		NewSplitRow(createFieldLabel(sizeLabel), sizeEntry, OneThird),
		NewSplitRow(ra.folderEntry, ra.browseButton, Expand),
		createStatusLabel(ra.status),
		NewSplitRow(ra.resizeButton, aboutButton, Expand),
	))
}

// onBrowse opens the folder picker, starting in the current folder or the home directory.
func (ra *ResizeApp) onBrowse() {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ra.reporter.Error(resize.ErrorTitle, err.Error())
			return
		}
		if uri == nil {
			return // cancelled
		}
		_ = ra.folder.Set(uri.Path())
		ra.onFolderChosen()
	}, ra.window)

	if start := ra.startLocation(); start != nil {
		d.SetLocation(start)
	}
	d.Resize(ra.window.Canvas().Size())
	d.Show()
}

func (ra *ResizeApp) startLocation() fyne.ListableURI {
	dir := ra.folderPath()
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		dir = home
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return nil
	}
	return lister
}

// onFolderChosen counts the images in the new folder off the UI thread.
// It does nothing while a batch is running so the progress status is not replaced.
func (ra *ResizeApp) onFolderChosen() {
	if ra.running.Load() {
		return
	}
	dir := ra.folderPath()
	go func() {
		if _, err := ra.batch.Preview(dir); err != nil {
			log.Printf("Preview of %q failed: %v", dir, err)
		}
	}()
}

// onResize starts a batch on a worker goroutine. Only one batch runs at a time.
func (ra *ResizeApp) onResize() {
	if !ra.running.CompareAndSwap(false, true) {
		return
	}
	ra.setBusy(true)

	job := ra.currentJob()
	go func() {
		defer func() {
			ra.running.Store(false)
			fyne.Do(func() { ra.setBusy(false) })
		}()
		ra.runBatch(job)
	}()
}

// runBatch runs job synchronously and logs anything the reporter did not already show.
func (ra *ResizeApp) runBatch(job resize.Job) (resize.Outcome, error) {
	outcome, err := ra.batch.Run(job)
	if err != nil && resize.StatusFor(err) == "" {
		log.Printf("Batch %s aborted: %v", job.ID, err)
	}
	return outcome, err
}

// currentJob builds a job from the current widget values.
func (ra *ResizeApp) currentJob() resize.Job {
	return resize.NewJob(ra.folderPath(), ra.sizeValue())
}

func (ra *ResizeApp) folderPath() string {
	dir, err := ra.folder.Get()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(dir)
}

// sizeValue parses the size entry. Anything that is not a number counts as 0 and is
// rejected by the batch as too small.
func (ra *ResizeApp) sizeValue() int {
	text, err := ra.sizeText.Get()
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return n
}

func (ra *ResizeApp) setBusy(busy bool) {
	if busy {
		ra.resizeButton.Disable()
		ra.browseButton.Disable()
		ra.folderEntry.Disable()
		return
	}
	ra.resizeButton.Enable()
	ra.browseButton.Enable()
	ra.folderEntry.Enable()
}

func (ra *ResizeApp) showAbout() {
	text, err := ra.assetMgr.GetText(aboutTextName)
	if err != nil {
		return
	}
	title := config.AppName
	if config.AppVersion != "" {
		title += " " + config.AppVersion
	}
	dialog.ShowCustom(aboutTitle+" "+title, "OK", createMessageLabel(text), ra.window)
}
