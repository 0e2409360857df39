package osmadapter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/qedus/osmpbf"

	"cosmogony/internal/geometry"
	"cosmogony/internal/zone"
)

// PlaceSeedEpsilon is the half-width (in degrees) of the degenerate bbox
// built around a populated-place node with no administrative boundary yet.
const PlaceSeedEpsilon = 0.0005

// BuildZones produces admin zones (from administrative relations) and place
// seed zones (from populated-place nodes) in a deterministic order — sorted
// by OSM id, since Go map iteration order is not stable and zone.Index
// assignment must be reproducible run to run (spec §8: indices are stable
// for a given input). ZoneIndex values start at 0 and increase by one per
// emitted zone, matching the invariant the rest of the pipeline relies on
// (index == slice position) until the voronoi augmentor appends new zones.
func BuildZones(store *ObjectStore) []*zone.Zone {
	zones := make([]*zone.Zone, 0, len(store.Relations)+len(store.Nodes))

	relIDs := make([]int64, 0, len(store.Relations))
	for id, rel := range store.Relations {
		if IsAdminRelation(rel) {
			relIDs = append(relIDs, id)
		}
	}
	sort.Slice(relIDs, func(i, j int) bool { return relIDs[i] < relIDs[j] })

	nodeIDs := make([]int64, 0, len(store.Nodes))
	for id, n := range store.Nodes {
		if IsPlaceNode(n) {
			nodeIDs = append(nodeIDs, id)
		}
	}
	sort.Slice(nodeIDs, func(i, j int) bool { return nodeIDs[i] < nodeIDs[j] })

	next := 0
	for _, id := range relIDs {
		rel := store.Relations[id]
		z := buildAdminZone(rel, store, zone.Index(next))
		if z == nil {
			continue
		}
		next++
		zones = append(zones, z)
	}
	for _, id := range nodeIDs {
		n := store.Nodes[id]
		z := buildPlaceZone(n, zone.Index(next))
		if z == nil {
			continue
		}
		next++
		zones = append(zones, z)
	}
	return zones
}

func buildAdminZone(rel *osmpbf.Relation, store *ObjectStore, idx zone.Index) *zone.Zone {
	name := rel.Tags["name"]
	if name == "" {
		return nil
	}

	var level *int
	if raw, ok := rel.Tags["admin_level"]; ok {
		if v, err := strconv.Atoi(raw); err == nil {
			level = &v
		}
	}

	zipRaw := rel.Tags["addr:postcode"]
	if zipRaw == "" {
		zipRaw = rel.Tags["postal_code"]
	}

	var wikidata *string
	if w, ok := rel.Tags["wikidata"]; ok {
		wikidata = &w
	}

	boundary, _ := BuildBoundary(rel, store)

	centerNode := resolveMemberNode(rel, store, "admin_centre")
	if centerNode == nil {
		centerNode = resolveMemberNode(rel, store, "label")
	}

	tags := zone.Tags{}
	for k, v := range rel.Tags {
		tags[k] = v
	}

	var center *orb.Point
	centerTags := zone.Tags{}
	if centerNode != nil {
		p := orb.Point{centerNode.Lon, centerNode.Lat}
		center = &p
		centerTags = zone.Tags(centerNode.Tags)
	} else if len(boundary) > 0 {
		if c, ok := geometry.Centroid(boundary); ok {
			if fc, finite := zone.FiniteCenter(c); finite {
				center = &fc
			}
		}
	}

	var bbox *orb.Bound
	if b, ok := geometry.BoundingRect(boundary); ok {
		bbox = &b
	}

	return zone.FromRelation(zone.RelationInput{
		OsmID:      fmt.Sprintf("relation:%d", rel.ID),
		Name:       name,
		AdminLevel: level,
		ZipRaw:     zipRaw,
		Wikidata:   wikidata,
		Tags:       tags,
		CenterTags: centerTags,
		Center:     center,
		Boundary:   boundary,
		BBox:       bbox,
	}, idx)
}

func buildPlaceZone(n *osmpbf.Node, idx zone.Index) *zone.Zone {
	name := n.Tags["name"]
	if name == "" {
		return nil
	}
	tags := zone.Tags{}
	for k, v := range n.Tags {
		tags[k] = v
	}
	return zone.FromPlaceNode(zone.PlaceInput{
		OsmID: fmt.Sprintf("node:%d", n.ID),
		Name:  name,
		Tags:  tags,
		Point: orb.Point{n.Lon, n.Lat},
	}, idx, PlaceSeedEpsilon)
}

// resolveMemberNode finds rel's member with the given role and returns the
// referenced node, whether it is a direct node member or (rarely) resolved
// through a way's own tags is not attempted — admin_centre/label members are
// node references per the OSM schema.
func resolveMemberNode(rel *osmpbf.Relation, store *ObjectStore, role string) *osmpbf.Node {
	for _, m := range rel.Members {
		if m.Type != osmpbf.NodeType || !strings.EqualFold(m.Role, role) {
			continue
		}
		if n, ok := store.Nodes[m.ID]; ok {
			return n
		}
	}
	return nil
}
