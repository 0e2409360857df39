package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// UnsignedArea returns the geodesic area of mp in square meters, matching the
// original's geos-backed `polygon.area()` (original_source/src/postcode.rs).
func UnsignedArea(mp orb.MultiPolygon) float64 {
	return math.Abs(geo.Area(mp))
}

// BoundingRect returns the axis-aligned bound of mp, or ok=false when mp is
// empty (spec §4.1 bounding_rect).
func BoundingRect(mp orb.MultiPolygon) (orb.Bound, bool) {
	if len(mp) == 0 {
		return orb.Bound{}, false
	}
	return mp.Bound(), true
}

// Centroid returns the area-weighted centroid of mp's outer rings, or
// ok=false if mp is empty or degenerates to zero total area (the "NaN
// centroid" case original_source/src/zone.rs warns on and skips).
func Centroid(mp orb.MultiPolygon) (orb.Point, bool) {
	if len(mp) == 0 {
		return orb.Point{}, false
	}
	var sx, sy, sw float64
	for _, poly := range mp {
		c, area := planar.CentroidArea(poly)
		a := math.Abs(area)
		sx += c[0] * a
		sy += c[1] * a
		sw += a
	}
	if sw == 0 {
		return orb.Point{}, false
	}
	p := orb.Point{sx / sw, sy / sw}
	if math.IsNaN(p[0]) || math.IsNaN(p[1]) {
		return orb.Point{}, false
	}
	return p, true
}

// ContainsPoint reports whether p lies within mp, honoring holes: p must be
// inside some outer ring and outside all of that ring's inner rings.
func ContainsPoint(mp orb.MultiPolygon, p orb.Point) bool {
	for _, poly := range mp {
		if len(poly) == 0 {
			continue
		}
		if !planar.RingContains(poly[0], p) {
			continue
		}
		inHole := false
		for _, hole := range poly[1:] {
			if planar.RingContains(hole, p) {
				inHole = true
				break
			}
		}
		if !inHole {
			return true
		}
	}
	return false
}

const earthRadiusMeters = 6371008.8

// Buffer approximates a circle of radiusMeters around center with an
// nSides-gon polygon, correcting longitude degrees for latitude the way the
// teacher's utils.MetersToDegrees does. No pipeline stage calls it: place
// seeds get their degenerate bbox from zone.FromPlaceNode's epsilon instead.
func Buffer(center orb.Point, radiusMeters float64, nSides int) orb.Polygon {
	if nSides < 8 {
		nSides = 8
	}
	latRad := center[1] * math.Pi / 180
	degLat := radiusMeters / (math.Pi / 180 * earthRadiusMeters)
	degLon := degLat / math.Max(math.Cos(latRad), 1e-9)

	ring := make(orb.Ring, 0, nSides+1)
	for i := 0; i < nSides; i++ {
		theta := 2 * math.Pi * float64(i) / float64(nSides)
		ring = append(ring, orb.Point{
			center[0] + degLon*math.Cos(theta),
			center[1] + degLat*math.Sin(theta),
		})
	}
	ring = append(ring, ring[0])
	return orb.Polygon{ring}
}
