package postcode

import (
	"cosmogony/internal/geometry"
	"cosmogony/internal/parallel"
	"cosmogony/internal/spatialindex"
	"cosmogony/internal/zone"
)

// coverageThreshold is the 5%-of-postcode-area rule of spec §4.10, carried
// over from original_source/src/postcode_service.rs's assign_postcodes_to_zones.
const coverageThreshold = 0.05

// BuildIndex bulk-loads a spatial index over codes' bounding rectangles,
// keyed by position in codes.
func BuildIndex(codes []*Postcode) *spatialindex.Index[int] {
	items := make([]spatialindex.Item[int], 0, len(codes))
	for i, p := range codes {
		if b, ok := geometry.BoundingRect(p.Boundary); ok {
			items = append(items, spatialindex.Item[int]{ID: i, Bound: b})
		}
	}
	return spatialindex.Build(items)
}

// Assign fills in zip_codes for every zone that has none, with every
// postcode whose overlap with the zone's boundary exceeds 5% of the
// postcode's own area (spec §4.10). Zones that already carry a zip code
// (from their own addr:postcode/postal_code tag) are left untouched.
func Assign(zones []*zone.Zone, codes []*Postcode, idx *spatialindex.Index[int], numWorkers int) {
	parallel.Each(len(zones), numWorkers, func(i int) {
		z := zones[i]
		if len(z.ZipCodes) > 0 || z.BBox == nil || len(z.Boundary) == 0 {
			return
		}
		zEngine, err := geometry.ToEngine(z.Boundary)
		if err != nil {
			return
		}

		var matches []string
		for _, ci := range idx.QueryIntersect(*z.BBox) {
			pc := codes[ci]
			if pc.Area <= 0 {
				continue
			}
			pEngine, err := geometry.ToEngine(pc.Boundary)
			if err != nil {
				continue
			}
			inter, ok := geometry.Intersection(zEngine, pEngine)
			if !ok {
				continue
			}
			if geometry.UnsignedArea(inter)/pc.Area > coverageThreshold {
				matches = append(matches, pc.Zipcode)
			}
		}
		z.SetZipCodes(matches)
	})
}
