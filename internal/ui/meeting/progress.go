package meeting

import (
	"image/color"

	"meetingkeeper/internal/ui/palette"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// progressBar is a rounded track with a colored fill proportional to the elapsed fraction.
type progressBar struct {
	track     *canvas.Rectangle
	fill      *canvas.Rectangle
	layout    *progressLayout
	container *fyne.Container
}

func newProgressBar() *progressBar {
	track := canvas.NewRectangle(palette.Track)
	track.CornerRadius = progressBarHeight / 2
	fill := canvas.NewRectangle(palette.Track)
	fill.CornerRadius = progressBarHeight / 2

	layout := &progressLayout{}
	return &progressBar{
		track:     track,
		fill:      fill,
		layout:    layout,
		container: container.New(layout, track, fill),
	}
}

func (bar *progressBar) object() fyne.CanvasObject {
	return bar.container
}

func (bar *progressBar) set(fraction float64, fillColor color.Color) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	bar.layout.fraction = float32(fraction)
	bar.fill.FillColor = fillColor
	bar.container.Refresh()
	bar.fill.Refresh()
}

func (bar *progressBar) fraction() float64 {
	return float64(bar.layout.fraction)
}

type progressLayout struct {
	fraction float32
}

func (layout *progressLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	track := objects[0]
	fill := objects[1]

	track.Move(fyne.NewPos(0, 0))
	track.Resize(fyne.NewSize(size.Width, progressBarHeight))

	fill.Move(fyne.NewPos(0, 0))
	fill.Resize(fyne.NewSize(size.Width*layout.fraction, progressBarHeight))
}

func (layout *progressLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(progressBarHeight*4, progressBarHeight)
}
