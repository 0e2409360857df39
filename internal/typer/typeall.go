package typer

import (
	"errors"
	"strings"

	"cosmogony/internal/cosmerr"
	"cosmogony/internal/parallel"
	"cosmogony/internal/stats"
	"cosmogony/internal/zone"
)

type typeResult struct {
	already     bool // zone_type already set before typing (place seed); skip
	country     string
	haveCountry bool
	zoneType    *zone.Type
	err         error
}

// TypeAll resolves ZoneType for every zone that doesn't already have one
// (place seed zones are pre-typed at construction and left untouched). Every
// zone is typed independently in parallel into a temporary result slice,
// then assigned back onto the zones in a single-threaded pass — the
// original's own two-phase design ("all zones are typed in parallel ...
// results are assigned in a second single-threaded pass", spec §4.6) avoids
// concurrent writes to the shared zone slice.
//
// overrideCountry, when non-empty, skips the country finder for every zone
// and types everything under that one country's rules (spec §6 --country-code).
func TypeAll(zones []*zone.Zone, t *Typer, finder *CountryFinder, inclusions [][]zone.Index, overrideCountry string, numWorkers int) *stats.Stats {
	overrideCountry = strings.ToUpper(overrideCountry)
	st := stats.New("")
	results := make([]typeResult, len(zones))

	parallel.Each(len(zones), numWorkers, func(i int) {
		z := zones[i]
		if z.ZoneType != nil {
			results[i] = typeResult{already: true}
			return
		}

		country, haveCountry := overrideCountry, overrideCountry != ""
		if !haveCountry {
			country, haveCountry = finder.FindZoneCountry(z, inclusions[i])
		}
		if !haveCountry {
			results[i] = typeResult{err: cosmerr.ErrZoneWithoutCountry}
			return
		}

		zt, err := t.TypeZone(z, country, inclusions[i], zones)
		results[i] = typeResult{country: country, haveCountry: true, zoneType: zt, err: err}
	})

	for i, z := range zones {
		r := results[i]
		if r.already {
			continue
		}
		switch {
		case errors.Is(r.err, cosmerr.ErrZoneWithoutCountry):
			st.IncZoneWithoutCountry()
		case errors.Is(r.err, cosmerr.ErrInvalidCountry):
			st.IncInvalidCountryCode()
		case errors.Is(r.err, cosmerr.ErrUnknownLevel):
			level := 0
			if z.AdminLevel != nil {
				level = *z.AdminLevel
			}
			st.RecordUnhandledLevel(r.country, level)
		case r.err != nil:
			st.IncInvalidCountryCode()
		default:
			cc := r.country
			z.CountryCode = &cc
			z.ZoneType = r.zoneType // nil is the explicit "no type" override
		}
	}
	return st
}
