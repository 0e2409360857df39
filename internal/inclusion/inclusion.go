// Package inclusion computes, for every zone, the list of other zones whose
// boundary covers it (spec §4.2, component 5). The hierarchy builder and the
// country finder both consume these lists rather than re-querying the
// spatial index themselves.
package inclusion

import (
	"cosmogony/internal/geometry"
	"cosmogony/internal/parallel"
	"cosmogony/internal/spatialindex"
	"cosmogony/internal/zone"
)

// Compute returns, for each zones[i], the Index of every zone that covers
// it — candidates are first narrowed by the spatial index on bounding
// rectangles, then filtered by the exact Covers predicate through the
// shared geometry cache. Place seed zones (no boundary yet) always get an
// empty inclusion list; the voronoi augmentor resolves their parent
// separately (spec §4.8 step 1).
func Compute(zones []*zone.Zone, idx *spatialindex.Index[zone.Index], cache *geometry.Cache, numWorkers int) [][]zone.Index {
	result := make([][]zone.Index, len(zones))
	parallel.Each(len(zones), numWorkers, func(i int) {
		z := zones[i]
		if z.BBox == nil || len(z.Boundary) == 0 {
			return
		}
		zEngine, ok := cache.Get(z.ID, z.Boundary)
		if !ok {
			return
		}

		var owners []zone.Index
		for _, ci := range idx.QueryIntersect(*z.BBox) {
			if ci == z.ID {
				continue
			}
			other := zones[ci]
			if len(other.Boundary) == 0 {
				continue
			}
			oEngine, ok := cache.Get(other.ID, other.Boundary)
			if !ok {
				continue
			}
			if geometry.Covers(oEngine, zEngine) {
				owners = append(owners, other.ID)
			}
		}
		result[i] = owners
	})
	return result
}

// BuildIndex bulk-loads a spatial index over every zone's bounding
// rectangle (zones with no boundary are skipped, since they have nothing
// an inclusion query could match against).
func BuildIndex(zones []*zone.Zone) *spatialindex.Index[zone.Index] {
	items := make([]spatialindex.Item[zone.Index], 0, len(zones))
	for _, z := range zones {
		if z.BBox != nil && len(z.Boundary) > 0 {
			items = append(items, spatialindex.Item[zone.Index]{ID: z.ID, Bound: *z.BBox})
		}
	}
	return spatialindex.Build(items)
}
