// Package augment synthesizes city boundaries for populated-place nodes that
// have none, via Voronoi partitioning of their enclosing parent zone (spec
// §4.8, component 8). original_source/src/additional_zones.rs's own
// compute_voronoi was left unimplemented (unimplemented!()), so this
// algorithm is authored directly from spec §4.8, not ported from the
// original.
package augment

import (
	"sort"

	"cosmogony/internal/geometry"
	"cosmogony/internal/spatialindex"
	"cosmogony/internal/stats"
	"cosmogony/internal/zone"
)

// cellTolerance collapses near-duplicate Voronoi cell vertices before
// clipping (spec §4.8 step 4).
const cellTolerance = 1e-7

// Run finds every populated-place seed zone with no boundary, groups them by
// enclosing parent zone, partitions each parent's area among its places (or
// inherits the parent's whole boundary when there is exactly one), subtracts
// any already-finer zones, and appends the resulting synthesized city zones
// to *zones with fresh indices — "the only place that appends after
// construction" (spec §4.8).
//
// It returns the OsmID of every place seed that was routed to an eligible
// parent, whether or not its synthesized city survived subtraction, so the
// driver's final prune pass (which already re-resolves parent links by
// osm_id, spec §9) can drop those seeds without needing a mid-pipeline
// reindex.
func Run(zones *[]*zone.Zone, idx *spatialindex.Index[zone.Index], st *stats.Stats, numWorkers int) map[string]bool {
	all := *zones
	places := unboundedPlaceSeeds(all)
	superseded := map[string]bool{}

	groups := map[zone.Index][]*zone.Zone{}
	parentByID := map[zone.Index]*zone.Zone{}
	for _, p := range places {
		parent := findParent(all, idx, p)
		if parent == nil {
			continue
		}
		if *parent.ZoneType <= zone.City || *parent.ZoneType >= zone.Country {
			continue
		}
		groups[parent.ID] = append(groups[parent.ID], p)
		parentByID[parent.ID] = parent
		superseded[p.OsmID] = true
	}

	parentIDs := make([]zone.Index, 0, len(groups))
	for id := range groups {
		parentIDs = append(parentIDs, id)
	}
	sort.Slice(parentIDs, func(i, j int) bool { return parentIDs[i] < parentIDs[j] })

	next := len(all)
	var newZones []*zone.Zone
	for _, pid := range parentIDs {
		parent := parentByID[pid]
		grouped := groups[pid]
		toSubtract := overlappingFinerZones(parent, all)

		var cities []*zone.Zone
		if len(grouped) == 1 {
			if c := singlePlaceCity(grouped[0], parent, toSubtract); c != nil {
				cities = append(cities, c)
			} else {
				st.IncVoronoiFailures()
			}
		} else {
			cities = voronoiCities(grouped, parent, toSubtract, st)
		}

		for _, c := range cities {
			c.ID = zone.Index(next)
			next++
			newZones = append(newZones, c)
		}
		st.IncVoronoiCellsBuilt(len(cities))
	}

	*zones = append(all, newZones...)
	return superseded
}

func unboundedPlaceSeeds(zones []*zone.Zone) []*zone.Zone {
	var out []*zone.Zone
	for _, z := range zones {
		if z.IsGenerated && len(z.Boundary) == 0 && z.ZoneType != nil && *z.ZoneType == zone.City {
			out = append(out, z)
		}
	}
	return out
}

// findParent locates the smallest administrative zone of at least City type
// whose boundary contains place's center (spec §4.8 step 1).
func findParent(zones []*zone.Zone, idx *spatialindex.Index[zone.Index], place *zone.Zone) *zone.Zone {
	if place.BBox == nil || place.Center == nil {
		return nil
	}
	var best *zone.Zone
	for _, ci := range idx.QueryIntersect(*place.BBox) {
		cand := zones[ci]
		if !cand.IsAdmin() || cand.ZoneType == nil || *cand.ZoneType < zone.City {
			continue
		}
		if len(cand.Boundary) == 0 || !geometry.ContainsPoint(cand.Boundary, *place.Center) {
			continue
		}
		if best == nil || *cand.ZoneType < *best.ZoneType || (*cand.ZoneType == *best.ZoneType && cand.ID < best.ID) {
			best = cand
		}
	}
	return best
}

// overlappingFinerZones returns every existing zone parented directly to
// parent that is itself a City or administratively finer than parent — the
// zones a synthesized city must not overlap (spec §4.8 step 2).
func overlappingFinerZones(parent *zone.Zone, allZones []*zone.Zone) []*zone.Zone {
	var out []*zone.Zone
	for _, z := range allZones {
		if z.Parent == nil || *z.Parent != parent.ID || z.ZoneType == nil {
			continue
		}
		if *z.ZoneType == zone.City || *z.ZoneType < *parent.ZoneType {
			out = append(out, z)
		}
	}
	return out
}
