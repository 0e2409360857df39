// Package postcode implements the Postcode model and the postcode
// assignment pass of spec §4.10, grounded on
// original_source/src/postcode.rs and src/postcode_service.rs.
package postcode

import (
	"github.com/paulmach/orb"

	"cosmogony/internal/geometry"
)

// Postcode is a boundary=postal_code relation: an OSM id, its postal_code
// tag, its assembled boundary, and the boundary's precomputed area (used by
// the coverage-ratio assignment rule).
type Postcode struct {
	OsmID    string
	Zipcode  string
	Boundary orb.MultiPolygon
	Area     float64
}

// FromBoundary builds a Postcode, or nil if boundary is empty (a postcode
// relation with no assemblable geometry cannot participate in assignment).
func FromBoundary(osmID, zipcode string, boundary orb.MultiPolygon) *Postcode {
	if len(boundary) == 0 {
		return nil
	}
	return &Postcode{
		OsmID:    osmID,
		Zipcode:  zipcode,
		Boundary: boundary,
		Area:     geometry.UnsignedArea(boundary),
	}
}
