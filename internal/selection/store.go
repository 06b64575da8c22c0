// Package selection owns the ordered set of chosen cities and its JSON
// persistence. The in-memory set is the single source of truth for the
// running session; disk is a best-effort mirror.
package selection

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tartampluch/go-timezones/internal/catalog"
	"github.com/tartampluch/go-timezones/internal/config"
)

// ErrWriteFailed marks a persistence write failure. It is a soft warning:
// the in-memory selection stays authoritative regardless.
var ErrWriteFailed = errors.New(config.ErrSelectionWrite)

// Entry is a selected city together with its insertion position.
type Entry struct {
	City  catalog.City
	Order int
}

// Store is the ordered, zone-unique city selection. It is owned by the UI
// event loop; no locking, no concurrent writers. Mutations are pure memory
// operations; Save is an explicit, separately testable step.
type Store struct {
	path   string
	cities []catalog.City
}

// DefaultPath returns the per-user location of the persisted city list,
// e.g. ~/.config/go-timezones/cities.json on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrConfigDir, err)
	}
	return filepath.Join(dir, config.ConfigDirName, config.CitiesFileName), nil
}

// Defaults returns the fixed fallback selection used when no persisted
// state exists.
func Defaults() []catalog.City {
	return []catalog.City{
		{Name: "San Francisco", Country: "United States", Zone: "America/Los_Angeles", Latitude: 37.77},
		{Name: "Warsaw", Country: "Poland", Zone: "Europe/Warsaw", Latitude: 52.23},
		{Name: "Brisbane", Country: "Australia", Zone: "Australia/Brisbane", Latitude: -27.47},
	}
}

// NewStore creates an empty store persisting to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the on-disk location of the persisted selection.
func (s *Store) Path() string {
	return s.path
}

// Add inserts the city unless its zone is already present. Duplicate adds
// are a no-op, not an error. Returns whether an insertion occurred.
func (s *Store) Add(city catalog.City) bool {
	if s.Contains(city.Zone) {
		return false
	}
	s.cities = append(s.cities, city)
	return true
}

// Remove drops the entry with the given zone if present and reports
// whether a removal occurred.
func (s *Store) Remove(zone string) bool {
	for i, c := range s.cities {
		if c.Zone == zone {
			s.cities = append(s.cities[:i], s.cities[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether a zone is already selected.
func (s *Store) Contains(zone string) bool {
	for _, c := range s.cities {
		if c.Zone == zone {
			return true
		}
	}
	return false
}

// List returns the selection in insertion order.
func (s *Store) List() []Entry {
	entries := make([]Entry, len(s.cities))
	for i, c := range s.cities {
		entries[i] = Entry{City: c, Order: i}
	}
	return entries
}

// Cities returns a copy of the selected cities in insertion order.
func (s *Store) Cities() []catalog.City {
	out := make([]catalog.City, len(s.cities))
	copy(out, s.cities)
	return out
}

// Len reports the number of selected cities.
func (s *Store) Len() int {
	return len(s.cities)
}

// Load populates the store from disk. A missing, unreadable or corrupt
// file is non-fatal: it is treated as "no data", logged, and the default
// selection applies. Entries whose zone is not even IANA-shaped are
// skipped during load.
func (s *Store) Load() {
	log := slog.With(
		config.LogKeyComponent, config.CompSelection,
		config.LogKeyPath, s.path,
	)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug(config.MsgDefaultsUsed)
		} else {
			log.Warn(config.ErrSelectionRead, config.LogKeyError, err)
		}
		s.cities = Defaults()
		return
	}

	var loaded []catalog.City
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Warn(config.ErrSelectionParse, config.LogKeyError, err)
		s.cities = Defaults()
		return
	}

	s.cities = s.cities[:0]
	for _, c := range loaded {
		if !catalog.ValidZoneSyntax(c.Zone) {
			log.Warn(config.ErrZoneSyntax, config.LogKeyZone, c.Zone)
			continue
		}
		s.Add(c)
	}
	if len(s.cities) == 0 {
		log.Warn(config.MsgDefaultsUsed)
		s.cities = Defaults()
		return
	}

	log.Info(config.MsgSelectionLoad, config.LogKeyCount, len(s.cities))
}

// Save mirrors the selection to disk. Failures are returned as a soft
// warning wrapped in ErrWriteFailed; the in-memory state is untouched and
// remains authoritative for the session.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.cities, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), config.DirPermUserRWX); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := os.WriteFile(s.path, data, config.FilePermUserRW); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	slog.Debug(config.MsgSelectionSave,
		config.LogKeyComponent, config.CompSelection,
		config.LogKeyPath, s.path,
		config.LogKeyCount, len(s.cities),
	)
	return nil
}
