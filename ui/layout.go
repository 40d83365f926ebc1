package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// SplitProportion is the share of the row width given to the first widget.
type SplitProportion float32

// Common split proportions.
const (
	OneThird  SplitProportion = 1.0 / 3
	OneFourth SplitProportion = 1.0 / 4
	Expand    SplitProportion = 0 // first widget takes whatever the second leaves
)

// splitLayout places two widgets side by side.
type splitLayout struct {
	widget1    fyne.CanvasObject
	widget2    fyne.CanvasObject
	proportion SplitProportion
}

// MinSize calculates the minimum size.
func (s *splitLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	w1Size := s.widget1.MinSize()
	w2Size := s.widget2.MinSize()
	return fyne.NewSize(w1Size.Width+w2Size.Width, fyne.Max(w1Size.Height, w2Size.Height))
}

// Layout arranges the widgets. With Expand the second widget keeps its minimum width.
func (s *splitLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	var widget1Width float32
	if s.proportion == Expand {
		widget1Width = containerSize.Width - s.widget2.MinSize().Width
	} else {
		widget1Width = containerSize.Width * float32(s.proportion)
	}
	widget1Width = fyne.Max(widget1Width, s.widget1.MinSize().Width)
	widget2Width := fyne.Max(containerSize.Width-widget1Width, 0)

	s.widget1.Resize(fyne.NewSize(widget1Width, containerSize.Height))
	s.widget2.Resize(fyne.NewSize(widget2Width, containerSize.Height))

	s.widget1.Move(fyne.NewPos(0, 0))
	s.widget2.Move(fyne.NewPos(widget1Width, 0))
}

// NewSplitRow creates a row with widget1 on the left and widget2 on the right.
func NewSplitRow(widget1, widget2 fyne.CanvasObject, proportion SplitProportion) *fyne.Container {
	layout := &splitLayout{
		widget1:    widget1,
		widget2:    widget2,
		proportion: proportion,
	}
	return container.New(layout, widget1, widget2)
}
