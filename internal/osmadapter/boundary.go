package osmadapter

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/qedus/osmpbf"
)

// BuildBoundary assembles rel's member ways into a MultiPolygon: outer-role
// ways are glued into outer rings, inner-role ways into hole rings, and each
// hole is attached to the outer ring that contains it. This is a modest
// in-repo ring assembler — no library in the pack reconstructs multipolygon
// relations from way fragments, so this stands in for that external
// collaborator (documented in DESIGN.md). ok is false when no closed outer
// ring could be assembled.
func BuildBoundary(rel *osmpbf.Relation, store *ObjectStore) (orb.MultiPolygon, bool) {
	var outerSegs, innerSegs [][]orb.Point
	for _, m := range rel.Members {
		if m.Type != osmpbf.WayType {
			continue
		}
		way, ok := store.Ways[m.ID]
		if !ok {
			continue
		}
		pts := make([]orb.Point, 0, len(way.NodeIDs))
		for _, nid := range way.NodeIDs {
			if n, ok := store.Nodes[nid]; ok {
				pts = append(pts, orb.Point{n.Lon, n.Lat})
			}
		}
		if len(pts) < 2 {
			continue
		}
		if m.Role == "inner" {
			innerSegs = append(innerSegs, pts)
		} else {
			outerSegs = append(outerSegs, pts)
		}
	}

	outerRings := assembleRings(outerSegs)
	if len(outerRings) == 0 {
		return nil, false
	}
	innerRings := assembleRings(innerSegs)

	polys := make([]orb.Polygon, 0, len(outerRings))
	for _, ring := range outerRings {
		poly := orb.Polygon{ring}
		for _, hole := range innerRings {
			if len(hole) > 0 && planar.RingContains(ring, hole[0]) {
				poly = append(poly, hole)
			}
		}
		polys = append(polys, poly)
	}
	return orb.MultiPolygon(polys), true
}

// assembleRings glues open line segments sharing endpoints into closed
// rings, in any order it can. Segments that never close are dropped.
func assembleRings(segs [][]orb.Point) []orb.Ring {
	remaining := make([][]orb.Point, len(segs))
	copy(remaining, segs)

	var rings []orb.Ring
	for len(remaining) > 0 {
		cur := remaining[0]
		remaining = remaining[1:]

		for !pointsEqual(cur[0], cur[len(cur)-1]) {
			matched := false
			for i, seg := range remaining {
				switch {
				case pointsEqual(cur[len(cur)-1], seg[0]):
					cur = append(cur, seg[1:]...)
				case pointsEqual(cur[len(cur)-1], seg[len(seg)-1]):
					cur = append(cur, reversed(seg)[1:]...)
				default:
					continue
				}
				remaining = append(remaining[:i], remaining[i+1:]...)
				matched = true
				break
			}
			if !matched {
				break
			}
		}

		if len(cur) >= 4 && pointsEqual(cur[0], cur[len(cur)-1]) {
			rings = append(rings, orb.Ring(cur))
		}
	}
	return rings
}

func pointsEqual(a, b orb.Point) bool {
	return a[0] == b[0] && a[1] == b[1]
}

func reversed(pts []orb.Point) []orb.Point {
	out := make([]orb.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
