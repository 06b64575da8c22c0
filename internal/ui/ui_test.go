package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-timezones/internal/catalog"
	"github.com/tartampluch/go-timezones/internal/config"
	"github.com/tartampluch/go-timezones/internal/engine"
	"github.com/tartampluch/go-timezones/internal/selection"
	"github.com/tartampluch/go-timezones/internal/theme"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// referenceInstant is a fixed Saturday noon UTC used across UI tests.
var referenceInstant = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// setupTestApp initializes a headless Fyne app around a fixed clock and a
// store preloaded with the default cities.
func setupTestApp(t *testing.T) *GoTimezonesApp {
	t.Helper()
	a := test.NewApp()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	store := selection.NewStore(filepath.Join(t.TempDir(), config.CitiesFileName))
	store.Load() // no file yet, falls back to defaults

	travel := engine.NewTimeTravel(MockClock{CurrentTime: referenceInstant})

	app := NewGoTimezonesApp(a, ctx, store, travel, theme.Build(nil))
	app.SetupI18n()
	app.buildMainWindow()
	app.Refresh()
	return app
}

// -----------------------------------------------------------------------------
// Localization Tests
// -----------------------------------------------------------------------------

func TestLocalization_Switching(t *testing.T) {
	app := setupTestApp(t)

	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()
	assert.Equal(t, "Now", app.GetMsg(config.TKeyBtnNow))

	app.Preferences.SetString(config.PrefLanguage, "fr")
	app.UpdateLocalizer()
	assert.Equal(t, "Maintenant", app.GetMsg(config.TKeyBtnNow))
}

// -----------------------------------------------------------------------------
// Row Rendering Tests
// -----------------------------------------------------------------------------

func TestRows_DefaultSelection(t *testing.T) {
	app := setupTestApp(t)

	require.Equal(t, 3, app.Store.Len(), "Fresh store must carry the default cities")
	assert.Len(t, app.rows.Objects, 3, "One row per selected city")
}

func TestRows_UnknownZoneStaysListed(t *testing.T) {
	app := setupTestApp(t)

	require.True(t, app.Store.Add(catalog.City{Name: "Nowhere", Zone: "Invalid/Zone"}))
	app.Refresh()

	assert.Len(t, app.rows.Objects, 4, "Unresolvable cities must remain visible and removable")
}

func TestRows_EmptyState(t *testing.T) {
	app := setupTestApp(t)

	for _, entry := range app.Store.List() {
		app.Store.Remove(entry.City.Zone)
	}
	app.Refresh()

	require.Len(t, app.rows.Objects, 1)
	label, ok := app.rows.Objects[0].(*widget.Label)
	require.True(t, ok)
	assert.Equal(t, app.GetMsg(config.TKeyEmptyState), label.Text)
}

// -----------------------------------------------------------------------------
// Selection Mutation Tests
// -----------------------------------------------------------------------------

func TestAddCity_PersistsSelection(t *testing.T) {
	app := setupTestApp(t)

	results := catalog.Search("tokyo")
	require.NotEmpty(t, results)

	app.addCity(results[0])
	assert.Equal(t, 4, app.Store.Len())
	assert.Len(t, app.rows.Objects, 4)

	// Mutation must hit the disk immediately.
	_, err := os.Stat(app.Store.Path())
	assert.NoError(t, err)

	// Re-adding the same city is a no-op.
	app.addCity(results[0])
	assert.Equal(t, 4, app.Store.Len())
}

func TestRemoveCity_PersistsSelection(t *testing.T) {
	app := setupTestApp(t)

	app.removeCity("Europe/Warsaw")
	assert.Equal(t, 2, app.Store.Len())
	assert.False(t, app.Store.Contains("Europe/Warsaw"))

	// Removing something absent changes nothing.
	app.removeCity("Europe/Warsaw")
	assert.Equal(t, 2, app.Store.Len())
}

// -----------------------------------------------------------------------------
// Time Travel Tests
// -----------------------------------------------------------------------------

func TestSlider_DrivesOffset(t *testing.T) {
	app := setupTestApp(t)

	app.slider.SetValue(600)
	assert.Equal(t, 600, app.Travel.Offset())

	app.resetOffset()
	assert.Equal(t, 0, app.Travel.Offset())
	assert.Equal(t, 0.0, app.slider.Value)
}

func TestOffsetText(t *testing.T) {
	app := setupTestApp(t)
	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()

	assert.Equal(t, "12:00 · Now", app.offsetText(app.Travel.EffectiveInstant()))

	app.Travel.SetOffset(90)
	got := app.offsetText(app.Travel.EffectiveInstant())
	assert.Equal(t, "13:30 · +1h30m from now", got)

	app.Travel.SetOffset(-60)
	got = app.offsetText(app.Travel.EffectiveInstant())
	assert.Equal(t, "11:00 · -1h from now", got)
}

// -----------------------------------------------------------------------------
// Daylight Strip Tests
// -----------------------------------------------------------------------------

func TestStrip_PixelMapping(t *testing.T) {
	app := setupTestApp(t)

	g := app.Engine.Aggregate(app.Store.List(), referenceInstant)
	require.Len(t, g.Samples, config.GradientSegments)
	app.strip.SetGradient(g)

	// The marker column is painted regardless of gradient content.
	marker := app.strip.pixel(50, 0, 100, config.StripHeight)
	r, _, _, a := marker.RGBA()
	assert.NotZero(t, r)
	assert.NotZero(t, a)

	// Every other column must map inside the sample range without panics.
	for x := 0; x < 100; x++ {
		_ = app.strip.pixel(x, 0, 100, config.StripHeight)
	}
}

func TestStrip_EmptyGradient(t *testing.T) {
	app := setupTestApp(t)
	app.strip.SetGradient(engine.Gradient{})

	neutral := app.strip.pixel(10, 0, 100, config.StripHeight)
	expected := theme.NRGBA(app.Palette.Surface)
	er, eg, eb, _ := expected.RGBA()
	nr, ng, nb, _ := neutral.RGBA()
	assert.Equal(t, []uint32{er, eg, eb}, []uint32{nr, ng, nb})
}
