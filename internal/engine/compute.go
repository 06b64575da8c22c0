// Package engine computes timezone-correct local clocks, the virtual
// time-travel offset and the aggregate daylight gradient. All outputs are
// pure functions of (city, instant); nothing here is cached or stored.
package engine

import (
	"math"
	"time"

	"github.com/tartampluch/go-timezones/internal/catalog"
	"github.com/tartampluch/go-timezones/internal/config"
)

// LocalClock is the derived per-city view at a given instant. It is
// recomputed on demand and never stored, so it cannot go stale.
type LocalClock struct {
	City             catalog.City
	LocalTime        time.Time
	UTCOffsetMinutes int
	IsDay            bool
}

// Engine converts absolute instants into per-city local clocks. DST and
// offset rules are owned entirely by the resolver.
type Engine struct {
	Resolver ZoneResolver
}

// NewEngine returns an engine backed by the platform tz database.
func NewEngine() *Engine {
	return &Engine{Resolver: StdResolver{}}
}

// Compute derives the local wall time, signed UTC offset and day/night
// classification for a city at the given instant. A zone the resolver
// does not recognize yields ErrUnknownTimezone; the caller decides how to
// present the degraded row.
func (e *Engine) Compute(city catalog.City, instant time.Time) (LocalClock, error) {
	loc, err := e.Resolver.Resolve(city.Zone)
	if err != nil {
		return LocalClock{}, err
	}

	local := instant.In(loc)
	_, offsetSec := local.Zone()

	return LocalClock{
		City:             city,
		LocalTime:        local,
		UTCOffsetMinutes: offsetSec / 60,
		IsDay:            IsDay(local),
	}, nil
}

// HourOfDay returns the local hour with fractional minutes, in [0, 24).
func HourOfDay(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/config.MinutesPerHour
}

// IsDay applies the fixed day-window policy: local time within
// [06:00, 18:00) counts as daytime. This is an approximation, not a solar
// calculation; the system has no sun-position input beyond an optional
// latitude.
func IsDay(t time.Time) bool {
	h := HourOfDay(t)
	return h >= config.DayStartHour && h < config.DayEndHour
}

// DaylightMix maps an hour of day to a 0..1 day/night blend following a
// cosine centered on noon. Inside the day window the mix is >= 0.5, so
// the gradient shading and the IsDay classification stay consistent.
func DaylightMix(hour float64) float64 {
	angle := (hour - 12) / 12 * math.Pi
	return (math.Cos(angle) + 1) / 2
}
