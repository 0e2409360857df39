// Package labeler composes a zone's human-readable label and
// per-language international labels by walking its ancestor chain (spec
// §4.9, component 9), grounded on
// original_source/src/zone.rs::compute_labels/create_lbl.
package labeler

import (
	"fmt"
	"strings"

	"cosmogony/internal/hierarchy"
	"cosmogony/internal/zone"
)

// ComputeLabels sets z.Label and z.InternationalLabels from its ancestor
// chain. langFilter, when non-empty, restricts which international
// languages get a label at all (spec §6 --langs); a nil/empty filter means
// "every language any ancestor has a name in".
func ComputeLabels(zones []*zone.Zone, z *zone.Zone, langFilter map[string]bool) {
	chain := hierarchy.Chain(zones, z)

	z.Label = composeLabel(chain, func(zz *zone.Zone) string { return zz.Name }, z.ZipCodes)

	langs := map[string]struct{}{}
	for _, zz := range chain {
		for lang := range zz.InternationalNames() {
			if len(langFilter) > 0 && !langFilter[lang] {
				continue
			}
			langs[lang] = struct{}{}
		}
	}

	labels := make(map[string]string, len(langs))
	for lang := range langs {
		labels[lang] = composeLabel(chain, func(zz *zone.Zone) string {
			if n, ok := zz.InternationalNames()[lang]; ok {
				return n
			}
			return zz.Name
		}, z.ZipCodes)
	}
	z.InternationalLabels = labels
}

// composeLabel joins chain's names from the zone outward, collapsing
// consecutive duplicates (a child sharing its parent's exact name appears
// once), and appends the zip-code summary to the first (most specific) name.
func composeLabel(chain []*zone.Zone, name func(*zone.Zone) string, zips []string) string {
	names := make([]string, 0, len(chain))
	for _, z := range chain {
		n := name(z)
		if len(names) == 0 || names[len(names)-1] != n {
			names = append(names, n)
		}
	}
	if len(names) > 0 {
		names[0] += formatZipCode(zips)
	}
	return strings.Join(names, ", ")
}

// formatZipCode mirrors original_source/src/zone.rs::format_zip_code: no
// zips means no suffix, one zip is parenthesized alone, more than one is
// summarized as a first-last range.
func formatZipCode(zips []string) string {
	switch len(zips) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf(" (%s)", zips[0])
	default:
		return fmt.Sprintf(" (%s-%s)", zips[0], zips[len(zips)-1])
	}
}
