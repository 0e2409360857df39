// Package osmadapter is the OSM ingestion collaborator of spec §4.1/§4.3: it
// decodes a .osm.pbf file with github.com/qedus/osmpbf (the teacher's own PBF
// library, cmd/osm-zone-parser/osm_processor/osm_processor.go), classifies
// objects into administrative relations, postal-code relations and
// populated-place nodes, and builds zone.Zone/postcode.Postcode records from
// them.
package osmadapter

import "github.com/qedus/osmpbf"

// IsAdminRelation reports whether rel is an administrative boundary relation
// (spec §4.3): boundary=administrative with an admin_level tag present.
func IsAdminRelation(rel *osmpbf.Relation) bool {
	if rel.Tags["boundary"] != "administrative" {
		return false
	}
	_, hasLevel := rel.Tags["admin_level"]
	return hasLevel
}

// IsPostalCodeRelation reports whether rel describes a postcode boundary.
func IsPostalCodeRelation(rel *osmpbf.Relation) bool {
	return rel.Tags["boundary"] == "postal_code" && rel.Tags["postal_code"] != ""
}

// IsPlaceNode reports whether n is a populated-place seed candidate (spec
// §4.3: place ∈ {city, town, village}).
func IsPlaceNode(n *osmpbf.Node) bool {
	switch n.Tags["place"] {
	case "city", "town", "village":
		return true
	default:
		return false
	}
}
