// Package theme loads the active omarchy color palette and maps it onto
// the semantic roles the popup uses. A missing or unreadable theme is
// never an error; the built-in fallback palette applies instead.
package theme

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tartampluch/go-timezones/internal/config"
)

// Palette maps semantic color roles to normalized "#rrggbb" values.
// Day/Night seed the daylight gradient; Contrast and Gamma shape it.
type Palette struct {
	BG       string
	FG       string
	Accent   string
	Cursor   string
	Dim      string
	Surface  string
	Surface2 string
	Day      string
	Night    string
	Red      string

	DaylightContrast float64
	DaylightGamma    float64
}

// DefaultColorsPath locates the active omarchy theme palette.
func DefaultColorsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, filepath.FromSlash(config.ThemeColorsPath)), nil
}

// hexRe accepts six-digit hex colors with or without the leading hash.
var hexRe = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// lineRe salvages key = "#rrggbb" pairs from files that are not strictly
// valid TOML; themes in the wild carry junk lines.
var lineRe = regexp.MustCompile(`^\s*([A-Za-z0-9_]+)\s*=\s*["']?(#?[0-9a-fA-F]{6})["']?(?:\s+#.*)?\s*$`)

// NormalizeHex lowercases a hex color and ensures the leading hash,
// reporting whether the input was a valid six-digit color at all.
func NormalizeHex(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if !hexRe.MatchString(value) {
		return "", false
	}
	if !strings.HasPrefix(value, "#") {
		value = "#" + value
	}
	return strings.ToLower(value), true
}

// LoadColors reads the raw key → color mapping from a colors.toml file.
// It tries a strict TOML decode first and degrades to tolerant per-line
// scanning; an absent or empty file yields an empty map.
func LoadColors(path string) map[string]string {
	colors := make(map[string]string)
	log := slog.With(
		config.LogKeyComponent, config.CompTheme,
		config.LogKeyPath, path,
	)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug(config.MsgThemeFallback, config.LogKeyError, err)
		return colors
	}

	var decoded map[string]any
	if err := toml.Unmarshal(data, &decoded); err == nil {
		flattenInto(colors, "", decoded)
	} else {
		log.Debug(config.ErrThemeRead, config.LogKeyError, err)
		scanLines(colors, data)
	}

	log.Debug(config.MsgThemeLoaded, config.LogKeyCount, len(colors))
	return colors
}

// flattenInto collects hex-valued string keys, flattening TOML tables so
// both flat palettes and [colors]-style sections work.
func flattenInto(dst map[string]string, prefix string, src map[string]any) {
	for key, value := range src {
		name := strings.ToLower(key)
		if prefix != "" {
			name = prefix + "_" + name
		}
		switch v := value.(type) {
		case string:
			if hex, ok := NormalizeHex(v); ok {
				dst[name] = hex
				// Section-less lookups should still find nested keys.
				if prefix != "" {
					if _, exists := dst[strings.ToLower(key)]; !exists {
						dst[strings.ToLower(key)] = hex
					}
				}
			}
		case map[string]any:
			flattenInto(dst, name, v)
		}
	}
}

// scanLines is the tolerant fallback parser for near-TOML palettes.
func scanLines(dst map[string]string, data []byte) {
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "[") {
			continue
		}
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if hex, ok := NormalizeHex(m[2]); ok {
			dst[strings.ToLower(m[1])] = hex
		}
	}
}

// pick returns the first valid color among the candidate keys, else the
// fallback.
func pick(colors map[string]string, keys []string, fallback string) string {
	for _, key := range keys {
		if hex, ok := NormalizeHex(colors[strings.ToLower(key)]); ok {
			return hex
		}
	}
	hex, _ := NormalizeHex(fallback)
	return hex
}

// Build maps raw theme keys to the semantic palette. Neutral surfaces are
// derived from bg/fg mixes so light and dark themes keep consistent
// contrast regardless of terminal palette conventions.
func Build(colors map[string]string) Palette {
	bg := pick(colors, []string{"background"}, config.DefaultBG)
	fg := pick(colors, []string{"foreground", "color15", "color7"}, config.DefaultFG)
	accent := pick(colors, []string{"accent", "color4", "color12", "selection_background"}, config.DefaultAccent)
	cursor := pick(colors, []string{"cursor", "selection_foreground", "foreground"}, config.DefaultCursor)

	light := RelativeLuminance(bg) > config.LightThemeLuminance

	var dim, surface, surface2 string
	if light {
		dim = Mix(fg, bg, 0.44)
		surface = Mix(bg, fg, 0.09)
		surface2 = Mix(bg, fg, 0.16)
	} else {
		dim = Mix(fg, bg, 0.5)
		surface = Mix(bg, fg, 0.11)
		surface2 = Mix(bg, fg, 0.2)
	}

	daySeed := pick(colors, []string{"color11", "color3", "accent"}, accent)
	nightSeed := pick(colors, []string{"color4", "accent", "color12"}, accent)

	p := Palette{
		BG:       bg,
		FG:       fg,
		Accent:   accent,
		Cursor:   cursor,
		Dim:      dim,
		Surface:  surface,
		Surface2: surface2,
		Red:      pick(colors, []string{"color1"}, config.DefaultRed),
	}
	if light {
		p.Day = Mix(daySeed, config.HexWhite, 0.16)
		p.Night = Mix(bg, nightSeed, 0.42)
		p.DaylightContrast = 1.45
		p.DaylightGamma = 1.1
	} else {
		p.Day = Mix(daySeed, config.HexWhite, 0.28)
		p.Night = Mix(bg, nightSeed, 0.34)
		p.DaylightContrast = 1.6
		p.DaylightGamma = 1.35
	}
	return p
}

// Load reads and maps the palette in one step.
func Load(path string) Palette {
	return Build(LoadColors(path))
}
