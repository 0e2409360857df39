// Package hierarchy assigns each zone its parent (spec §4.7, component 7)
// and provides the ancestor-chain walk the labeler composes labels over.
//
// The original's hierarchy_builder.rs needs a MutableSlice (split-at-index)
// wrapper because Rust's borrow checker won't let it hold a mutable
// reference to zones[i] alongside shared references to zones[j]; Go's
// explicit pointers sidestep that entirely — a plain []*zone.Zone lets every
// element be read while one is mutated, so no such wrapper is needed here.
package hierarchy

import "cosmogony/internal/zone"

// Build assigns zones[i].Parent to the candidate in inclusions[i] with the
// smallest ZoneType for which z.CanBeChildOf(candidate) holds, breaking ties
// by the smallest ZoneIndex (spec §4.7). Zones with no eligible candidate
// get a nil parent.
func Build(zones []*zone.Zone, inclusions [][]zone.Index) {
	for i, z := range zones {
		var best *zone.Zone
		for _, ci := range inclusions[i] {
			c := zones[ci]
			if !z.CanBeChildOf(c) {
				continue
			}
			if best == nil || *c.ZoneType < *best.ZoneType || (*c.ZoneType == *best.ZoneType && c.ID < best.ID) {
				best = c
			}
		}
		if best != nil {
			id := best.ID
			z.SetParent(&id)
		} else {
			z.SetParent(nil)
		}
	}
}

// Chain returns z and its ancestors, self first, walking Parent links until
// one is nil. It guards against an accidental cycle rather than looping
// forever.
func Chain(zones []*zone.Zone, z *zone.Zone) []*zone.Zone {
	var out []*zone.Zone
	seen := map[zone.Index]bool{}
	cur := z
	for cur != nil {
		if seen[cur.ID] {
			break
		}
		seen[cur.ID] = true
		out = append(out, cur)
		if cur.Parent == nil {
			break
		}
		cur = zones[int(*cur.Parent)]
	}
	return out
}
