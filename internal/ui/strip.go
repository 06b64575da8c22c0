package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-timezones/internal/config"
	"github.com/tartampluch/go-timezones/internal/engine"
	"github.com/tartampluch/go-timezones/internal/theme"
)

// DaylightStrip is the thin bar visualizing 24h of aggregate day/night
// across all selected cities, with a marker for the effective "now" at
// the center.
type DaylightStrip struct {
	widget.BaseWidget

	palette  theme.Palette
	raster   *canvas.Raster
	gradient engine.Gradient
}

// NewDaylightStrip creates an empty strip colored from the palette.
func NewDaylightStrip(palette theme.Palette) *DaylightStrip {
	s := &DaylightStrip{palette: palette}
	s.raster = canvas.NewRasterWithPixels(s.pixel)
	s.raster.SetMinSize(fyne.NewSize(0, config.StripHeight))
	s.ExtendBaseWidget(s)
	return s
}

// SetGradient swaps the displayed gradient and repaints.
func (s *DaylightStrip) SetGradient(g engine.Gradient) {
	s.gradient = g
	s.raster.Refresh()
}

// pixel maps a raster position to its gradient bucket. The marker column
// sits at the horizontal center; an empty gradient paints a neutral
// surface.
func (s *DaylightStrip) pixel(x, _, w, _ int) color.Color {
	if w <= 0 {
		return color.Transparent
	}
	if x == w/2 {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x99}
	}
	n := len(s.gradient.Samples)
	if n == 0 {
		return theme.NRGBA(s.palette.Surface)
	}
	idx := x * n / w
	if idx >= n {
		idx = n - 1
	}
	return s.palette.BlendDayNight(s.gradient.Samples[idx].Mix)
}

// CreateRenderer implements fyne.Widget.
func (s *DaylightStrip) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.raster)
}
