// Package geometry is the pipeline's boundary geometry service (spec §4.1):
// it wraps the exact DE-9IM predicates and boolean set operations the rest
// of the pipeline treats as an opaque "geometry engine" collaborator, plus
// the simpler orb-only helpers (area, centroid, bounding rect) that don't
// need the heavier engine at all.
//
// The engine itself is github.com/peterstace/simplefeatures/geom, bridged to
// paulmach/orb types via a WKT round trip — the closest real Go analogue to
// the original cosmogony's GEOS bindings (original_source/src/zone.rs
// imports geos::GGeom and calls .covers()/.contains()).
package geometry

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/peterstace/simplefeatures/geom"
)

// Engine is a converted, engine-native boundary. Zero value is invalid;
// always obtain one through ToEngine or a Cache.
type Engine struct {
	g  geom.Geometry
	ok bool
}

// ToEngine converts an orb MultiPolygon into the geometry engine's native
// representation. Conversion failures (self-intersecting rings, empty
// input) are reported as an error; callers in the pipeline treat them as
// "cannot decide" rather than fatal (spec §7 kind 7).
func ToEngine(mp orb.MultiPolygon) (Engine, error) {
	if len(mp) == 0 {
		return Engine{}, fmt.Errorf("geometry: empty multipolygon")
	}
	s := wkt.MarshalString(mp)
	g, err := geom.UnmarshalWKT(s)
	if err != nil {
		return Engine{}, fmt.Errorf("geometry: wkt conversion: %w", err)
	}
	return Engine{g: g, ok: true}, nil
}

// Valid reports whether e holds a usable geometry.
func (e Engine) Valid() bool { return e.ok }

// Covers reports whether a covers b (boundary-inclusive containment). Either
// side being invalid is treated as "false", never a panic.
func Covers(a, b Engine) bool {
	if !a.ok || !b.ok {
		return false
	}
	ok, err := geom.Covers(a.g, b.g)
	if err != nil {
		return false
	}
	return ok
}

// Contains reports whether a strictly contains b (interior containment).
func Contains(a, b Engine) bool {
	if !a.ok || !b.ok {
		return false
	}
	ok, err := geom.Contains(a.g, b.g)
	if err != nil {
		return false
	}
	return ok
}

// Intersects reports whether a and b share any point.
func Intersects(a, b Engine) bool {
	if !a.ok || !b.ok {
		return false
	}
	ok, err := geom.Intersects(a.g, b.g)
	if err != nil {
		return false
	}
	return ok
}

// Difference computes a minus b, converted back to an orb MultiPolygon. ok
// is false when either side is invalid or the engine op fails or collapses
// to an empty/non-areal result.
func Difference(a, b Engine) (orb.MultiPolygon, bool) {
	if !a.ok || !b.ok {
		return nil, false
	}
	g, err := geom.Difference(a.g, b.g)
	if err != nil {
		return nil, false
	}
	return toMultiPolygon(g)
}

// Intersection computes the overlap of a and b.
func Intersection(a, b Engine) (orb.MultiPolygon, bool) {
	if !a.ok || !b.ok {
		return nil, false
	}
	g, err := geom.Intersection(a.g, b.g)
	if err != nil {
		return nil, false
	}
	return toMultiPolygon(g)
}

func toMultiPolygon(g geom.Geometry) (orb.MultiPolygon, bool) {
	if g.IsEmpty() {
		return nil, false
	}
	parsed, err := wkt.Unmarshal(g.AsText())
	if err != nil {
		return nil, false
	}
	switch v := parsed.(type) {
	case orb.MultiPolygon:
		if len(v) == 0 {
			return nil, false
		}
		return v, true
	case orb.Polygon:
		return orb.MultiPolygon{v}, true
	default:
		return nil, false
	}
}
