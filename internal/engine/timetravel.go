package engine

import (
	"time"

	"github.com/tartampluch/go-timezones/internal/config"
)

// TimeTravel holds the virtual offset applied to wall-clock time. It is
// transient UI state: single writer (the slider), many readers, never
// persisted. The effective instant is recomputed on every call so it
// always tracks true wall-clock drift plus the current offset.
type TimeTravel struct {
	clock     Clock
	offsetMin int
}

// NewTimeTravel creates a controller at offset zero. A nil clock defaults
// to the real one.
func NewTimeTravel(clock Clock) *TimeTravel {
	if clock == nil {
		clock = RealClock{}
	}
	return &TimeTravel{clock: clock}
}

// SetOffset stores the offset in minutes, clamped to ±24h.
func (t *TimeTravel) SetOffset(minutes int) {
	if minutes < config.OffsetMinMinutes {
		minutes = config.OffsetMinMinutes
	}
	if minutes > config.OffsetMaxMinutes {
		minutes = config.OffsetMaxMinutes
	}
	t.offsetMin = minutes
}

// Reset returns to the present.
func (t *TimeTravel) Reset() {
	t.offsetMin = 0
}

// Offset returns the current offset in minutes.
func (t *TimeTravel) Offset() int {
	return t.offsetMin
}

// EffectiveInstant returns now plus the offset, never cached.
func (t *TimeTravel) EffectiveInstant() time.Time {
	return t.clock.Now().Add(time.Duration(t.offsetMin) * time.Minute)
}
