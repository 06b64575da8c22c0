package theme_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-timezones/internal/config"
	"github.com/tartampluch/go-timezones/internal/theme"
)

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"Already normalized", "#1a1b26", "#1a1b26", true},
		{"Missing hash", "1A1B26", "#1a1b26", true},
		{"Uppercase", "#FFAA00", "#ffaa00", true},
		{"Padded", "  #ffaa00  ", "#ffaa00", true},
		{"Three digit form rejected", "#fff", "", false},
		{"Garbage", "notacolor", "", false},
		{"Empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := theme.NormalizeHex(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexRGBRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#1a1b26", "#7aa2f7", "#ef4444"} {
		r, g, b := theme.HexToRGB(hex)
		assert.Equal(t, hex, theme.RGBToHex(r, g, b))
	}
}

func TestMix_Endpoints(t *testing.T) {
	assert.Equal(t, "#000000", theme.Mix("#000000", "#ffffff", 0))
	assert.Equal(t, "#ffffff", theme.Mix("#000000", "#ffffff", 1))
	// Midpoint lands on 127 per channel.
	assert.Equal(t, "#7f7f7f", theme.Mix("#000000", "#ffffff", 0.5))
}

func TestRelativeLuminance_Ordering(t *testing.T) {
	dark := theme.RelativeLuminance("#1a1b26")
	light := theme.RelativeLuminance("#f5f5f5")
	assert.Less(t, dark, config.LightThemeLuminance)
	assert.Greater(t, light, config.LightThemeLuminance)
	assert.InDelta(t, 0.0, theme.RelativeLuminance("#000000"), 1e-9)
	assert.InDelta(t, 1.0, theme.RelativeLuminance("#ffffff"), 1e-6)
}

// TestLoadColors_TOML covers the strict decode path, including sections.
func TestLoadColors_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.toml")
	content := `
background = "#1a1b26"
foreground = "#a9b1d6"
color4 = "7aa2f7"

[extra]
cursor = "#c0caf5"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	colors := theme.LoadColors(path)
	assert.Equal(t, "#1a1b26", colors["background"])
	assert.Equal(t, "#a9b1d6", colors["foreground"])
	assert.Equal(t, "#7aa2f7", colors["color4"], "Hash-less values must normalize")
	assert.Equal(t, "#c0caf5", colors["cursor"], "Sectioned keys must be reachable without the prefix")
}

// TestLoadColors_TolerantFallback: near-TOML with junk lines still yields
// the salvageable colors.
func TestLoadColors_TolerantFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.toml")
	content := `background = "#1a1b26"
this line is not toml at all !!!
color1 = '#ef4444'
color2 = #9ece6a
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	colors := theme.LoadColors(path)
	assert.Equal(t, "#1a1b26", colors["background"])
	assert.Equal(t, "#ef4444", colors["color1"])
	assert.Equal(t, "#9ece6a", colors["color2"])
}

// TestLoadColors_Absent: a missing theme is "no data", not an error.
func TestLoadColors_Absent(t *testing.T) {
	colors := theme.LoadColors(filepath.Join(t.TempDir(), "nope", "colors.toml"))
	assert.Empty(t, colors)
}

// TestBuild_Defaults: an empty mapping produces the full fallback palette.
func TestBuild_Defaults(t *testing.T) {
	p := theme.Build(nil)
	assert.Equal(t, config.DefaultBG, p.BG)
	assert.Equal(t, config.DefaultFG, p.FG)
	assert.Equal(t, config.DefaultAccent, p.Accent)
	assert.Equal(t, config.DefaultRed, p.Red)
	assert.NotEmpty(t, p.Day)
	assert.NotEmpty(t, p.Night)
	assert.Greater(t, p.DaylightContrast, 1.0)
	assert.Greater(t, p.DaylightGamma, 1.0)
}

// TestBuild_LightTheme: a light background flips the derivation branch.
func TestBuild_LightTheme(t *testing.T) {
	light := theme.Build(map[string]string{
		"background": "#fafafa",
		"foreground": "#222222",
	})
	dark := theme.Build(nil)

	assert.Equal(t, 1.45, light.DaylightContrast)
	assert.Equal(t, 1.6, dark.DaylightContrast)
	assert.NotEqual(t, light.Surface, dark.Surface)
}

func TestContrastMix_Bounds(t *testing.T) {
	p := theme.Build(nil)
	for _, mix := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		out := p.ContrastMix(mix)
		assert.GreaterOrEqual(t, out, 0.0)
		assert.LessOrEqual(t, out, 1.0)
	}
	// Extremes stay pinned after contrast boosting.
	assert.InDelta(t, 0.0, p.ContrastMix(0), 1e-9)
	assert.InDelta(t, 1.0, p.ContrastMix(1), 1e-9)
}

func TestNRGBA(t *testing.T) {
	c := theme.NRGBA("#7aa2f7")
	assert.EqualValues(t, 0x7a, c.R)
	assert.EqualValues(t, 0xa2, c.G)
	assert.EqualValues(t, 0xf7, c.B)
	assert.EqualValues(t, 0xff, c.A)
}
