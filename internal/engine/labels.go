package engine

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-timezones/internal/config"
)

// Label helpers are pure string formatting over already-computed offsets,
// kept out of the UI layer so they can be tested without a widget toolkit.

func sign(n int) string {
	if n < 0 {
		return config.SignMinus
	}
	return config.SignPlus
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// RelativeOffsetLabel renders the difference between a remote clock and
// the local one, in minutes, as "+9h", "-1h30m" or "Local".
func RelativeOffsetLabel(diffMin int) string {
	h := diffMin / config.MinutesPerHour
	m := abs(diffMin) % config.MinutesPerHour
	switch {
	case h == 0 && m == 0:
		return config.LabelLocal
	case m == 0:
		return fmt.Sprintf(config.FormatHours, sign(diffMin), abs(h))
	default:
		return fmt.Sprintf(config.FormatHoursMM, sign(diffMin), abs(h), m)
	}
}

// GMTLabel renders a UTC offset in minutes as "UTC", "GMT +10" or
// "GMT +5:30".
func GMTLabel(offsetMin int) string {
	if offsetMin == 0 {
		return config.LabelUTC
	}
	h := abs(offsetMin) / config.MinutesPerHour
	m := abs(offsetMin) % config.MinutesPerHour
	if m != 0 {
		return fmt.Sprintf(config.FormatGMTFull, sign(offsetMin), h, m)
	}
	return fmt.Sprintf(config.FormatGMTHour, sign(offsetMin), h)
}

// ZoneLabel returns the zone abbreviation active at t ("CET", "AEST"),
// falling back to a GMT label when the zone has no name.
func ZoneLabel(t time.Time) string {
	name, offsetSec := t.Zone()
	if name == "" {
		return GMTLabel(offsetSec / 60)
	}
	return name
}

// RowSubtitle composes the city row subtitle, e.g. "+9h · (AEST)".
func RowSubtitle(diffMin int, t time.Time) string {
	return RelativeOffsetLabel(diffMin) + config.LabelSepDot + "(" + ZoneLabel(t) + ")"
}

// SliderRelLabel renders the time-travel offset as "+1h30m", "+1h" or
// "+30m"; the zero offset renders empty, the caller shows "Now" instead.
func SliderRelLabel(offsetMin int) string {
	if offsetMin == 0 {
		return ""
	}
	h := abs(offsetMin) / config.MinutesPerHour
	m := abs(offsetMin) % config.MinutesPerHour
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf(config.FormatHoursMM, sign(offsetMin), h, m)
	case h > 0:
		return fmt.Sprintf(config.FormatHours, sign(offsetMin), h)
	default:
		return fmt.Sprintf(config.FormatMins, sign(offsetMin), m)
	}
}
