package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func newBox(w, h float32) *canvas.Rectangle {
	r := canvas.NewRectangle(nil)
	r.SetMinSize(fyne.NewSize(w, h))
	return r
}

func TestSplitRow_Proportion(t *testing.T) {
	test.NewTempApp(t)
	left, right := newBox(10, 20), newBox(10, 30)
	row := NewSplitRow(left, right, OneFourth)

	assert.Equal(t, fyne.NewSize(20, 30), row.MinSize())

	row.Resize(fyne.NewSize(400, 30))
	assert.Equal(t, float32(100), left.Size().Width)
	assert.Equal(t, float32(300), right.Size().Width)
	assert.Equal(t, float32(100), right.Position().X)
}

func TestSplitRow_Expand(t *testing.T) {
	test.NewTempApp(t)
	left, right := newBox(10, 20), newBox(80, 20)
	row := NewSplitRow(left, right, Expand)

	row.Resize(fyne.NewSize(300, 20))
	assert.Equal(t, float32(220), left.Size().Width)
	assert.Equal(t, float32(80), right.Size().Width)
}

func TestSplitRow_RespectsMinWidth(t *testing.T) {
	test.NewTempApp(t)
	left, right := newBox(150, 20), newBox(10, 20)
	row := NewSplitRow(left, right, OneThird)

	row.Resize(fyne.NewSize(300, 20))
	assert.Equal(t, float32(150), left.Size().Width)
	assert.Equal(t, float32(150), right.Size().Width)
}
