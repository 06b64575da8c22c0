package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tartampluch/go-timezones/internal/config"
)

// ErrInvalidZoneSyntax reports a string that does not even look like an
// IANA timezone identifier. It is a search-time condition: no city is
// created and nothing is added to the selection.
var ErrInvalidZoneSyntax = errors.New(config.ErrZoneSyntax)

// zoneSyntaxRe matches the Region/City (optionally Region/Sub/City) shape
// of IANA identifiers, e.g. "Europe/Warsaw" or
// "America/Argentina/Buenos_Aires". It is a syntax check only; whether the
// identifier resolves is decided later by the engine's zone resolver.
var zoneSyntaxRe = regexp.MustCompile(`^[A-Za-z][A-Za-z_+-]*(/[A-Za-z0-9][A-Za-z0-9_+-]*){1,2}$`)

// ValidZoneSyntax reports whether s is syntactically a plausible IANA
// timezone identifier.
func ValidZoneSyntax(s string) bool {
	return zoneSyntaxRe.MatchString(s)
}

// Synthesize builds a City directly from an IANA identifier for zones not
// present in the curated catalog. The display name is derived from the
// last path segment ("America/Los_Angeles" → "Los Angeles"); country and
// latitude are unknown.
func Synthesize(zone string) (City, error) {
	if !ValidZoneSyntax(zone) {
		return City{}, fmt.Errorf("%w: %q", ErrInvalidZoneSyntax, zone)
	}
	segment := zone
	if i := strings.LastIndex(zone, "/"); i >= 0 {
		segment = zone[i+1:]
	}
	return City{
		Name: strings.ReplaceAll(segment, "_", " "),
		Zone: zone,
	}, nil
}

// Search returns catalog cities matching the query, ranked. Queries shorter
// than config.MinQueryLength return nothing. Matching is case-insensitive
// over city name and country; exact-prefix matches on the name rank first,
// then name substrings, then country substrings, ties broken by catalog
// order. If nothing matches but the query itself is a syntactically valid
// IANA identifier, a single synthesized entry is returned so that any
// resolvable zone can be added, not just the curated set.
func Search(query string) []City {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < config.MinQueryLength {
		return nil
	}
	lq := strings.ToLower(q)

	var prefix, nameSub, countrySub []City
	for _, c := range cities {
		name := strings.ToLower(c.Name)
		switch {
		case strings.HasPrefix(name, lq):
			prefix = append(prefix, c)
		case strings.Contains(name, lq):
			nameSub = append(nameSub, c)
		case strings.Contains(strings.ToLower(c.Country), lq):
			countrySub = append(countrySub, c)
		}
	}

	results := make([]City, 0, len(prefix)+len(nameSub)+len(countrySub))
	results = append(results, prefix...)
	results = append(results, nameSub...)
	results = append(results, countrySub...)

	if len(results) == 0 {
		if city, err := Synthesize(q); err == nil {
			return []City{city}
		}
		return nil
	}

	if len(results) > config.MaxSearchResults {
		results = results[:config.MaxSearchResults]
	}
	return results
}
