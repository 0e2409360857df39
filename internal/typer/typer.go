package typer

import (
	"fmt"
	"strconv"
	"strings"

	"cosmogony/internal/cosmerr"
	"cosmogony/internal/zone"
)

// Typer resolves a zone's ZoneType against its country's rule set.
type Typer struct {
	rules map[string]*RuleSet
}

// New loads the embedded rule corpus. It returns cosmerr.ErrNoCountryRules
// if the corpus is empty after the tolerant scan (spec §7 kind 3, fatal).
func New() (*Typer, error) {
	rules := loadEmbeddedCorpus()
	if len(rules) == 0 {
		return nil, cosmerr.ErrNoCountryRules
	}
	return &Typer{rules: rules}, nil
}

// ContainsRule reports whether countryCode has a loaded rule set.
func (t *Typer) ContainsRule(countryCode string) bool {
	_, ok := t.rules[strings.ToUpper(countryCode)]
	return ok
}

// TypeZone resolves z's ZoneType under countryCode's rule set. The returned
// *zone.Type is itself allowed to be nil: that is the explicit "no type"
// id_rules override (spec §4.6), which the driver treats as "prune this
// zone" rather than an error.
func (t *Typer) TypeZone(z *zone.Zone, countryCode string, inclusions []zone.Index, allZones []*zone.Zone) (*zone.Type, error) {
	rs, ok := t.rules[strings.ToUpper(countryCode)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", cosmerr.ErrInvalidCountry, countryCode)
	}
	return resolve(rs, z, inclusions, allZones)
}

func resolve(rs *RuleSet, z *zone.Zone, inclusions []zone.Index, allZones []*zone.Zone) (*zone.Type, error) {
	kind, id := splitOsmID(z.OsmID)

	if rs.Overrides != nil {
		if t, ok := rs.Overrides.IDRules[kind+":"+id]; ok {
			return t, nil
		}
		for _, ancestor := range inclusions {
			a := allZones[ancestor]
			ak, aid := splitOsmID(a.OsmID)
			if byKind, ok := rs.Overrides.ContainedBy[ak]; ok {
				if nested, ok := byKind[aid]; ok {
					return resolve(nested, z, inclusions, allZones)
				}
			}
		}
	}

	levelKey := "0"
	if z.AdminLevel != nil {
		levelKey = strconv.Itoa(*z.AdminLevel)
	}
	t, ok := rs.TypeByLevel[levelKey]
	if !ok {
		return nil, fmt.Errorf("%w: level %s for %s", cosmerr.ErrUnknownLevel, levelKey, z.OsmID)
	}
	return &t, nil
}

func splitOsmID(osmID string) (kind, id string) {
	i := strings.IndexByte(osmID, ':')
	if i < 0 {
		return osmID, ""
	}
	return osmID[:i], osmID[i+1:]
}
