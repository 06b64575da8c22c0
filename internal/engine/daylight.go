package engine

import (
	"time"

	"github.com/tartampluch/go-timezones/internal/config"
	"github.com/tartampluch/go-timezones/internal/selection"
)

// Sample is one bucket of the aggregate daylight gradient.
type Sample struct {
	// FractionOfDay positions the sample in the 24h cycle, in [0, 1).
	FractionOfDay float64

	// Mix is the mean day/night blend across the selected cities, 0 = all
	// night, 1 = all day.
	Mix float64

	// IsDay flags samples where the majority blend is daytime.
	IsDay bool
}

// Gradient summarizes day/night across the whole selection over a 24h
// cycle anchored at the effective instant. An empty selection produces an
// empty, neutral gradient.
type Gradient struct {
	Samples []Sample
}

// Aggregate builds the gradient for the given selection at the given
// instant. Sampling is deterministic (config.GradientSegments buckets) and
// wrap-continuous: the last sample is adjacent to the first. Each city's
// zone is resolved once per call; cities the resolver rejects are skipped
// here and surface through the per-row error path instead.
func (e *Engine) Aggregate(entries []selection.Entry, instant time.Time) Gradient {
	locs := make([]*time.Location, 0, len(entries))
	for _, entry := range entries {
		loc, err := e.Resolver.Resolve(entry.City.Zone)
		if err != nil {
			continue
		}
		locs = append(locs, loc)
	}
	if len(locs) == 0 {
		return Gradient{}
	}

	samples := make([]Sample, config.GradientSegments)
	step := 24 * time.Hour / config.GradientSegments
	for i := range samples {
		at := instant.Add(time.Duration(i) * step)
		total := 0.0
		for _, loc := range locs {
			total += DaylightMix(HourOfDay(at.In(loc)))
		}
		mix := total / float64(len(locs))
		samples[i] = Sample{
			FractionOfDay: float64(i) / config.GradientSegments,
			Mix:           mix,
			IsDay:         mix >= 0.5,
		}
	}
	return Gradient{Samples: samples}
}
