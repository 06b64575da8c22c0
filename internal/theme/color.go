package theme

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/tartampluch/go-timezones/internal/config"
)

// HexToRGB converts "#rrggbb" to r, g, b floats in 0..1. Invalid input
// maps to black.
func HexToRGB(hex string) (r, g, b float64) {
	normalized, ok := NormalizeHex(hex)
	if !ok {
		normalized = config.HexBlack
	}
	parse := func(s string) float64 {
		v, _ := strconv.ParseUint(s, 16, 8)
		return float64(v) / 255.0
	}
	return parse(normalized[1:3]), parse(normalized[3:5]), parse(normalized[5:7])
}

// RGBToHex converts r, g, b floats in 0..1 back to "#rrggbb".
func RGBToHex(r, g, b float64) string {
	to := func(c float64) int {
		return int(math.Min(255, math.Max(0, c*255)))
	}
	return fmt.Sprintf("#%02x%02x%02x", to(r), to(g), to(b))
}

// Mix blends two hex colors by t in 0..1.
func Mix(a, b string, t float64) string {
	ar, ag, ab := HexToRGB(a)
	br, bg, bb := HexToRGB(b)
	return RGBToHex(ar+(br-ar)*t, ag+(bg-ag)*t, ab+(bb-ab)*t)
}

// Lighten blends a color toward white by amount.
func Lighten(hex string, amount float64) string {
	return Mix(hex, config.HexWhite, amount)
}

// Darken blends a color toward black by amount.
func Darken(hex string, amount float64) string {
	return Mix(hex, config.HexBlack, amount)
}

// RelativeLuminance returns the WCAG relative luminance of a hex color.
func RelativeLuminance(hex string) float64 {
	linear := func(c float64) float64 {
		if c <= 0.04045 {
			return c / 12.92
		}
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	r, g, b := HexToRGB(hex)
	return 0.2126*linear(r) + 0.7152*linear(g) + 0.0722*linear(b)
}

// ContrastMix boosts the day/night blend around midday and midnight for a
// clearer visual separation, then applies gamma. Result stays in 0..1.
func (p Palette) ContrastMix(mix float64) float64 {
	mix = (mix-0.5)*p.DaylightContrast + 0.5
	mix = math.Max(0, math.Min(1, mix))
	mix = math.Pow(mix, p.DaylightGamma)
	return math.Max(0, math.Min(1, mix))
}

// BlendDayNight maps a 0..1 mix to the color between the palette's night
// and day seeds, with contrast shaping applied.
func (p Palette) BlendDayNight(mix float64) color.Color {
	return NRGBA(Mix(p.Night, p.Day, p.ContrastMix(mix)))
}

// NRGBA converts a hex color to an opaque color.NRGBA for the UI toolkit.
func NRGBA(hex string) color.NRGBA {
	r, g, b := HexToRGB(hex)
	return color.NRGBA{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
		A: 0xff,
	}
}
