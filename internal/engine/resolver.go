package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/tartampluch/go-timezones/internal/config"
)

// ErrUnknownTimezone reports an identifier that is syntactically plausible
// but not recognized by the timezone authority. It is distinct from the
// search-time syntax check: a selected city carrying such a zone must be
// shown as a degraded row, never dropped silently.
var ErrUnknownTimezone = errors.New(config.ErrUnknownZone)

// ZoneResolver is the capability interface over the timezone/DST
// authority. The clock engine depends only on this, not on a specific
// facility; the authority owns all DST rules.
type ZoneResolver interface {
	Resolve(id string) (*time.Location, error)
}

// StdResolver resolves identifiers through the platform tz database via
// time.LoadLocation.
type StdResolver struct{}

// Resolve maps an IANA identifier to its location, wrapping lookup
// failures in ErrUnknownTimezone.
func (StdResolver) Resolve(id string) (*time.Location, error) {
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, id)
	}
	return loc, nil
}
