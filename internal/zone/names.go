package zone

import (
	"regexp"
	"strings"
)

var langNameRe = regexp.MustCompile(`^name:(.+)$`)

// internationalNamesFromTags extracts the `name:<lang>` tags, skipping any
// whose value is identical to the zone's default name (so the international
// label map only carries genuine translations). Mirrors
// original_source/src/zone.rs::get_international_names.
func internationalNamesFromTags(tags Tags, defaultName string) map[string]string {
	out := map[string]string{}
	for k, v := range tags {
		if v == defaultName {
			continue
		}
		m := langNameRe.FindStringSubmatch(k)
		if m == nil {
			continue
		}
		out[m[1]] = v
	}
	return out
}

// ComputeNames promotes name:* (and, for administrative relations, the
// population) tags from the zone's center/label node onto the zone's own
// tags when the zone is a City or shares its wikidata id with that node,
// then (re)derives the international name map from the resulting tags.
//
// Restored from original_source/src/zone.rs::compute_names; spec §4.9
// mentions the City-type inheritance but not the wikidata-match branch.
func (z *Zone) ComputeNames() {
	sameWikidata := z.Wikidata != nil && z.CenterTags.GetFirst("wikidata") == *z.Wikidata
	isCityType := z.ZoneType != nil && *z.ZoneType == City

	if isCityType || sameWikidata {
		for k, v := range z.CenterTags {
			if !strings.HasPrefix(k, "name:") && k != "population" {
				continue
			}
			if _, exists := z.Tags[k]; !exists {
				z.Tags[k] = v
			}
		}
	}

	z.internationalNames = internationalNamesFromTags(z.Tags, z.Name)
}

// InternationalNames exposes the (unserialized) name:<lang> map computed by
// ComputeNames, for the labeler to walk.
func (z *Zone) InternationalNames() map[string]string {
	return z.internationalNames
}

// SetInternationalNames replaces the international name map directly,
// without going through ComputeNames.
func (z *Zone) SetInternationalNames(names map[string]string) {
	z.internationalNames = names
}
