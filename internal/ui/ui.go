package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-timezones/internal/catalog"
	"github.com/tartampluch/go-timezones/internal/config"
	"github.com/tartampluch/go-timezones/internal/engine"
	"github.com/tartampluch/go-timezones/internal/selection"
	"github.com/tartampluch/go-timezones/internal/theme"
)

// GoTimezonesApp encapsulates the UI state, preferences, and clock logic.
type GoTimezonesApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Store   *selection.Store
	Travel  *engine.TimeTravel
	Engine  *engine.Engine
	Palette theme.Palette

	SupportedLanguages []string

	search      *SearchBox
	rows        *fyne.Container
	strip       *DaylightStrip
	offsetLabel *widget.Label
	slider      *widget.Slider
}

// NewGoTimezonesApp constructs the application and wires dependencies.
func NewGoTimezonesApp(a fyne.App, ctx context.Context, store *selection.Store, travel *engine.TimeTravel, palette theme.Palette) *GoTimezonesApp {
	return &GoTimezonesApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Store:              store,
		Travel:             travel,
		Engine:             engine.NewEngine(),
		Palette:            palette,
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run builds the popup window and blocks until it closes.
func (app *GoTimezonesApp) Run() {
	app.SetupI18n()
	app.buildMainWindow()
	app.Refresh()

	go app.refreshLoop()
	app.Window.ShowAndRun()
}

// buildMainWindow assembles the popup layout: header and search on top,
// the scrollable city rows in the middle, the daylight strip and the
// time-travel controls pinned to the bottom.
func (app *GoTimezonesApp) buildMainWindow() {
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	w.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	app.Window = w

	// The popup dismisses on Escape, like a launcher.
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			app.App.Quit()
		}
	})

	header := widget.NewLabelWithStyle(app.GetMsg(config.TKeyHeader),
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	app.search = NewSearchBox(app.GetMsg(config.TKeySearchHint), app.addCity)
	app.rows = container.NewVBox()
	app.strip = NewDaylightStrip(app.Palette)

	app.offsetLabel = widget.NewLabel("")
	app.slider = widget.NewSlider(config.OffsetMinMinutes, config.OffsetMaxMinutes)
	app.slider.Step = config.SliderStepMinutes
	app.slider.OnChanged = func(v float64) {
		app.Travel.SetOffset(int(v))
		slog.Debug(config.MsgOffsetChanged,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyOffset, app.Travel.Offset(),
		)
		app.Refresh()
	}

	nowBtn := widget.NewButton(app.GetMsg(config.TKeyBtnNow), app.resetOffset)
	travelTitle := widget.NewLabelWithStyle(app.GetMsg(config.TKeyTimeTravel),
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	travelBar := container.NewBorder(nil, nil, nil, nowBtn, app.offsetLabel)

	top := container.NewVBox(header, app.search.Content())
	bottom := container.NewVBox(app.strip, travelTitle, travelBar, app.slider)
	w.SetContent(container.NewBorder(top, bottom, nil, nil, container.NewVScroll(app.rows)))
}

// refreshLoop repaints the clocks periodically so displayed times never
// drift more than one interval from reality.
func (app *GoTimezonesApp) refreshLoop() {
	log := slog.With(config.LogKeyComponent, config.CompUI)

	ticker := time.NewTicker(config.UpdateInterval)
	defer ticker.Stop()
	log.Debug(config.MsgTickerStart)

	for {
		select {
		case <-app.Ctx.Done():
			log.Debug(config.MsgTickerStop)
			return
		case <-ticker.C:
			fyne.Do(app.Refresh)
		}
	}
}

// Refresh recomputes every clock row, the daylight strip, and the
// time-travel caption from the current effective instant.
func (app *GoTimezonesApp) Refresh() {
	instant := app.Travel.EffectiveInstant()
	app.rebuildRows(instant)
	// The strip is centered on "now", so the 24h window starts 12h back.
	app.strip.SetGradient(app.Engine.Aggregate(app.Store.List(), instant.Add(-12*time.Hour)))
	app.offsetLabel.SetText(app.offsetText(instant))
}

// offsetText renders the caption under the slider: the effective local
// time, plus either "Now" or the offset distance.
func (app *GoTimezonesApp) offsetText(instant time.Time) string {
	clock := instant.Format(config.TimeFormatHM)
	rel := engine.SliderRelLabel(app.Travel.Offset())
	if rel == "" {
		return clock + config.LabelSepDot + app.GetMsg(config.TKeyLblNow)
	}
	return clock + config.LabelSepDot + rel + " " + app.GetMsg(config.TKeyLblFromNow)
}

// rebuildRows regenerates the city list for the given instant.
func (app *GoTimezonesApp) rebuildRows(instant time.Time) {
	app.rows.Objects = nil

	entries := app.Store.List()
	if len(entries) == 0 {
		app.rows.Add(widget.NewLabel(app.GetMsg(config.TKeyEmptyState)))
		app.rows.Refresh()
		return
	}

	localOffset := utcOffsetMinutes(instant)
	for _, entry := range entries {
		clock, err := app.Engine.Compute(entry.City, instant)
		if err != nil {
			slog.Warn(config.MsgRowUnrenderable,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyZone, entry.City.Zone,
				config.LogKeyError, err,
			)
			app.rows.Add(app.errorRow(entry.City))
			continue
		}
		app.rows.Add(app.cityRow(clock, localOffset, instant))
	}
	app.rows.Refresh()
}

// cityRow renders one resolvable city: name and offset subtitle on the
// left, optional date, the local time, the day/night dot and a remove
// button on the right.
func (app *GoTimezonesApp) cityRow(clock engine.LocalClock, localOffset int, instant time.Time) fyne.CanvasObject {
	diff := clock.UTCOffsetMinutes - localOffset

	name := widget.NewLabelWithStyle(clock.City.Name,
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	period := app.GetMsg(config.TKeyLblNight)
	if clock.IsDay {
		period = app.GetMsg(config.TKeyLblDay)
	}
	subtitle := canvas.NewText(
		engine.RowSubtitle(diff, clock.LocalTime)+config.LabelSepDot+period,
		theme.NRGBA(app.Palette.Dim))
	subtitle.TextSize = 11

	timeText := canvas.NewText(clock.LocalTime.Format(config.TimeFormatHM),
		theme.NRGBA(app.Palette.Cursor))
	timeText.TextSize = 22
	timeText.TextStyle = fyne.TextStyle{Bold: true}

	mix := engine.DaylightMix(engine.HourOfDay(clock.LocalTime))
	dot := canvas.NewCircle(app.Palette.BlendDayNight(mix))
	dotBox := container.NewGridWrap(fyne.NewSize(10, 10), dot)

	zone := clock.City.Zone
	removeBtn := widget.NewButton("×", func() { app.removeCity(zone) })

	right := []fyne.CanvasObject{}
	if clock.LocalTime.YearDay() != instant.YearDay() || clock.LocalTime.Year() != instant.Year() {
		date := canvas.NewText(clock.LocalTime.Format(config.DateFormatRow),
			theme.NRGBA(app.Palette.Dim))
		date.TextSize = 11
		right = append(right, date)
	}
	right = append(right, timeText, dotBox, removeBtn)

	left := container.NewVBox(name, subtitle)
	return container.NewBorder(nil, nil, left, container.NewHBox(right...))
}

// errorRow renders an unresolvable city: it stays listed and removable so
// the user can clean it up.
func (app *GoTimezonesApp) errorRow(city catalog.City) fyne.CanvasObject {
	name := widget.NewLabelWithStyle(city.Name,
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	reason := canvas.NewText(
		fmt.Sprintf("%s%s%s", city.Zone, config.LabelSepDot, app.GetMsg(config.TKeyRowError)),
		theme.NRGBA(app.Palette.Red))
	reason.TextSize = 11

	zone := city.Zone
	removeBtn := widget.NewButton("×", func() { app.removeCity(zone) })

	left := container.NewVBox(name, reason)
	return container.NewBorder(nil, nil, left, removeBtn)
}

// addCity appends a search result to the selection and persists it.
func (app *GoTimezonesApp) addCity(city catalog.City) {
	if !app.Store.Add(city) {
		return // already selected
	}
	slog.Info(config.MsgCityAdded,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCity, city.Name,
		config.LogKeyZone, city.Zone,
	)
	app.persist()
	app.Refresh()
}

// removeCity drops a city from the selection and persists the change.
func (app *GoTimezonesApp) removeCity(zone string) {
	if !app.Store.Remove(zone) {
		return
	}
	slog.Info(config.MsgCityRemoved,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyZone, zone,
	)
	app.persist()
	app.Refresh()
}

// persist saves the selection. Write failures are soft: the session keeps
// its in-memory state and the user is warned.
func (app *GoTimezonesApp) persist() {
	if err := app.Store.Save(); err != nil {
		slog.Warn(config.ErrSelectionWrite,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err,
		)
		app.App.SendNotification(fyne.NewNotification(config.AppName, config.ErrSelectionWrite))
	}
}

// resetOffset snaps the time-travel slider back to the present.
func (app *GoTimezonesApp) resetOffset() {
	app.Travel.Reset()
	slog.Info(config.MsgOffsetReset, config.LogKeyComponent, config.CompUI)
	app.slider.SetValue(0)
	app.Refresh()
}

// utcOffsetMinutes reports the UTC offset of an instant's own location.
func utcOffsetMinutes(t time.Time) int {
	_, sec := t.Zone()
	return sec / 60
}
