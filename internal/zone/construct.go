package zone

import "github.com/paulmach/orb"

// RelationInput is everything the OSM adapter resolves for an administrative
// relation (tags, boundary, admin_centre/label node) before a Zone can be
// built from it. Keeping this separate from osmpbf types lets the zone
// package stay independent of the PBF decoder.
type RelationInput struct {
	OsmID      string
	Name       string
	AdminLevel *int
	ZipRaw     string
	Wikidata   *string
	Tags       Tags
	CenterTags Tags
	Center     *orb.Point
	Boundary   orb.MultiPolygon
	BBox       *orb.Bound
}

// FromRelation builds a Zone from an administrative relation. It returns nil
// when the relation has no name tag: such relations are never turned into
// zones (spec §4.3, §7 kind 8).
func FromRelation(in RelationInput, idx Index) *Zone {
	if in.Name == "" {
		return nil
	}
	z := NewZone()
	z.ID = idx
	z.OsmID = in.OsmID
	z.AdminLevel = in.AdminLevel
	z.Name = in.Name
	if in.Tags != nil {
		z.Tags = in.Tags
	}
	if in.CenterTags != nil {
		z.CenterTags = in.CenterTags
	}
	z.Wikidata = in.Wikidata
	z.SetZipCodes(SplitZipCodes(in.ZipRaw))
	z.Boundary = in.Boundary
	z.BBox = in.BBox
	z.Center = in.Center
	z.IsGenerated = false
	z.internationalNames = internationalNamesFromTags(z.Tags, z.Name)
	return z
}

// PlaceInput is what the OSM adapter extracts from a place=city|town|village
// node.
type PlaceInput struct {
	OsmID string
	Name  string
	Tags  Tags
	Point orb.Point
}

// FromPlaceNode builds a seed City zone from a populated-place node (spec
// §4.3): zone_type is set to City immediately, is_generated is true, and the
// zone gets a degenerate bbox around its point rather than a real boundary
// (the voronoi augmentor may later build a separate City zone with a real
// boundary for it; the seed itself is left unchanged).
func FromPlaceNode(in PlaceInput, idx Index, epsilon float64) *Zone {
	if in.Name == "" {
		return nil
	}
	z := NewZone()
	z.ID = idx
	z.OsmID = in.OsmID
	z.Name = in.Name
	if in.Tags != nil {
		z.Tags = in.Tags
	}
	t := City
	z.ZoneType = &t
	p := in.Point
	z.Center = &p
	bbox := orb.Bound{
		Min: orb.Point{in.Point[0] - epsilon, in.Point[1] - epsilon},
		Max: orb.Point{in.Point[0] + epsilon, in.Point[1] + epsilon},
	}
	z.BBox = &bbox
	z.IsGenerated = true
	z.internationalNames = internationalNamesFromTags(z.Tags, z.Name)
	return z
}
