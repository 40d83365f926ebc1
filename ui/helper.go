package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// createFieldLabel creates a bold label for an input field
func createFieldLabel(desc string) *widget.Label {
	label := widget.NewLabel(desc)
	label.Importance = widget.MediumImportance
	label.TextStyle = fyne.TextStyle{Bold: true}
	return label
}

// createStatusLabel creates the label bound to the status line
func createStatusLabel(status binding.String) *widget.Label {
	label := widget.NewLabelWithData(status)
	label.Wrapping = fyne.TextWrapWord
	label.Alignment = fyne.TextAlignCenter
	return label
}

// createMessageLabel creates a wrapping label for dialog bodies
func createMessageLabel(msg string) *widget.Label {
	label := widget.NewLabel(msg)
	label.Wrapping = fyne.TextWrapWord
	return label
}
