package augment

import (
	"log"

	"github.com/paulmach/orb"

	"cosmogony/internal/geometry"
	"cosmogony/internal/stats"
	"cosmogony/internal/zone"
)

// singlePlaceCity handles the degenerate single-place case: the synthesized
// city simply inherits parent's whole boundary, minus any already-finer
// zones inside it (spec §4.8 step 3). It returns nil when the subtraction
// fails partway through — the city is discarded rather than falling back to
// parent's raw, un-subtracted polygon.
func singlePlaceCity(place, parent *zone.Zone, toSubtract []*zone.Zone) *zone.Zone {
	city := seedCityFrom(place, parent, parent.Boundary)
	if city == nil {
		return nil
	}
	if !subtract(city, toSubtract) {
		return nil
	}
	if b, ok := geometry.BoundingRect(city.Boundary); ok {
		city.BBox = &b
	} else {
		return nil
	}
	return city
}

// voronoiCities handles the multi-place case: parent's boundary is
// partitioned into Voronoi cells around every place's center, each cell is
// matched back to its seed place by point-in-polygon (cells are not
// guaranteed to be returned in point order), then finer zones are
// subtracted from each cell. A failed subtraction for one cell is logged
// and that cell is kept as-is rather than discarded (spec §4.8 step 5).
func voronoiCities(places []*zone.Zone, parent *zone.Zone, toSubtract []*zone.Zone, st *stats.Stats) []*zone.Zone {
	points := make([]orb.Point, len(places))
	for i, p := range places {
		points[i] = *p.Center
	}

	cells, err := geometry.VoronoiPartition(points, parent.Boundary, cellTolerance)
	if err != nil {
		log.Printf("augment: voronoi partition failed for parent %s: %v", parent.OsmID, err)
		st.IncVoronoiFailures()
		return nil
	}

	used := make([]bool, len(places))
	var cities []*zone.Zone
	for _, cell := range cells {
		seedIdx := matchCellToSeed(cell, points, used)
		if seedIdx < 0 {
			continue
		}
		used[seedIdx] = true

		city := seedCityFrom(places[seedIdx], parent, orb.MultiPolygon{cell})
		if city == nil {
			continue
		}
		subtractBestEffort(city, toSubtract)
		if b, ok := geometry.BoundingRect(city.Boundary); ok {
			city.BBox = &b
		}
		cities = append(cities, city)
	}
	return cities
}

func matchCellToSeed(cell orb.Polygon, points []orb.Point, used []bool) int {
	for i, p := range points {
		if used[i] {
			continue
		}
		if geometry.ContainsPoint(orb.MultiPolygon{cell}, p) {
			return i
		}
	}
	return -1
}

func seedCityFrom(place, parent *zone.Zone, boundary orb.MultiPolygon) *zone.Zone {
	if len(boundary) == 0 {
		return nil
	}
	city := zone.NewZone()
	city.OsmID = place.OsmID
	city.Name = place.Name
	city.Tags = place.Tags
	t := zone.City
	city.ZoneType = &t
	city.Center = place.Center
	city.IsGenerated = true
	city.Boundary = boundary
	parentID := parent.ID
	city.SetParent(&parentID)
	return city
}

// subtract removes every zone in toSubtract from city.Boundary, stopping and
// reporting failure the moment a conversion or set op fails.
func subtract(city *zone.Zone, toSubtract []*zone.Zone) bool {
	for _, other := range toSubtract {
		ce, err := geometry.ToEngine(city.Boundary)
		if err != nil {
			return false
		}
		oe, err := geometry.ToEngine(other.Boundary)
		if err != nil {
			continue
		}
		diff, ok := geometry.Difference(ce, oe)
		if !ok {
			return false
		}
		city.Boundary = diff
	}
	return true
}

// subtractBestEffort is subtract's multi-place-case sibling: a failure stops
// the subtraction loop but keeps whatever boundary has accumulated so far,
// instead of discarding the cell (spec §4.8 step 5).
func subtractBestEffort(city *zone.Zone, toSubtract []*zone.Zone) {
	for _, other := range toSubtract {
		ce, err := geometry.ToEngine(city.Boundary)
		if err != nil {
			log.Printf("augment: voronoi subtraction failed for %s: %v", city.OsmID, err)
			return
		}
		oe, err := geometry.ToEngine(other.Boundary)
		if err != nil {
			continue
		}
		diff, ok := geometry.Difference(ce, oe)
		if !ok {
			log.Printf("augment: voronoi subtraction failed for %s, keeping cell as-is", city.OsmID)
			return
		}
		city.Boundary = diff
	}
}
