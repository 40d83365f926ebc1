package resize

import (
	"errors"
	"fmt"
	"strings"
)

// MinSize is the smallest target size accepted for a batch.
const MinSize = 10

// ErrorTitle is the title used for error notifications.
const ErrorTitle = "Error"

// IdleMessage is shown before a folder has been picked.
const IdleMessage = "Select a folder"

// Precondition errors returned by Batch.Run before anything on disk is touched.
var (
	ErrNoFolder     = errors.New("no folder selected")
	ErrSizeTooSmall = errors.New("size too small")
	ErrNoImages     = errors.New("no images to resize")
)

// ErrOutputNotFolder means a file that is not a folder already uses the output folder's name.
var ErrOutputNotFolder = errors.New("output name is taken by a file")

// Status text for the precondition errors.
var (
	NoFolderMessage     = "You need to select a folder first"
	SizeTooSmallMessage = fmt.Sprintf("Size must be at least %d", MinSize)
	NoImagesMessage     = "No images to resize"
)

// StatusFor returns the status text for a precondition error, or "" for any other error.
func StatusFor(err error) string {
	switch {
	case errors.Is(err, ErrNoFolder):
		return NoFolderMessage
	case errors.Is(err, ErrSizeTooSmall):
		return SizeTooSmallMessage
	case errors.Is(err, ErrNoImages):
		return NoImagesMessage
	}
	return ""
}

// FoundMessage is the status shown after a folder has been scanned.
func FoundMessage(n int) string {
	return fmt.Sprintf("%d images found", n)
}

// ProgressMessage renders a progress event as status text.
func ProgressMessage(p Progress) string {
	return fmt.Sprintf("Resizing image %d of %d", p.Current, p.Total)
}

// SummaryMessage renders the final status of a finished batch.
func SummaryMessage(o Outcome) string {
	if len(o.Failed) == 0 {
		return fmt.Sprintf("All %d images are resized", o.Total)
	}
	return fmt.Sprintf("%d images resized", o.Succeeded())
}

// FailureMessage lists every file that could not be resized.
func FailureMessage(failed []string) string {
	return fmt.Sprintf("An error occurred with the following %d files (all other images were resized): %s",
		len(failed), strings.Join(failed, ", "))
}
