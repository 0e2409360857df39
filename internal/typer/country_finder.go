package typer

import (
	"strings"

	"github.com/biter777/countries"

	"cosmogony/internal/zone"
)

// CountryFinder resolves a zone's country by walking its inclusion
// ancestors, ported from original_source/src/country_finder.rs.
type CountryFinder struct {
	countries map[zone.Index]countryInfo
}

type countryInfo struct {
	iso   string
	level int
}

// NewCountryFinder indexes every zone carrying a valid ISO3166-1:alpha2 tag
// that the typer's rule corpus also knows about — both conditions the
// original's CountryFinder::init applies.
func NewCountryFinder(zones []*zone.Zone, t *Typer) *CountryFinder {
	cf := &CountryFinder{countries: map[zone.Index]countryInfo{}}
	for _, z := range zones {
		code, ok := z.Tags.Get("ISO3166-1:alpha2")
		if !ok {
			continue
		}
		code = strings.ToUpper(code)
		if countries.ByName(code) == countries.Unknown {
			continue
		}
		if !t.ContainsRule(code) {
			continue
		}
		level := 0
		if z.AdminLevel != nil {
			level = *z.AdminLevel
		}
		cf.countries[z.ID] = countryInfo{iso: code, level: level}
	}
	return cf
}

// FindZoneCountry resolves z's country as the largest admin_level among z
// itself and its inclusion ancestors that are themselves recognized
// countries (spec §4.6, §9 "Country finder").
func (cf *CountryFinder) FindZoneCountry(z *zone.Zone, inclusions []zone.Index) (string, bool) {
	best, bestLevel, found := "", -1, false
	check := func(idx zone.Index) {
		info, ok := cf.countries[idx]
		if !ok {
			return
		}
		if !found || info.level > bestLevel {
			best, bestLevel, found = info.iso, info.level, true
		}
	}
	check(z.ID)
	for _, idx := range inclusions {
		check(idx)
	}
	return best, found
}
