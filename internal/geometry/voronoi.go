package geometry

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/pzsz/voronoi"
)

// VoronoiPartition partitions clip's bounding box around points using
// Fortune's algorithm (github.com/pzsz/voronoi, the direct analogue of the
// original's geos-backed voronoi_partition in
// original_source/src/additional_zones.rs, whose compute_voronoi was an
// unimplemented stub), then clips every cell to clip. The returned polygons
// are not guaranteed to be in point order (spec §4.8) — callers match cells
// back to seed points by point-in-polygon, not by index.
//
// tolerance collapses near-duplicate cell vertices before clipping, guarding
// against the sliver polygons Fortune's algorithm produces at shared cell
// corners.
func VoronoiPartition(points []orb.Point, clip orb.MultiPolygon, tolerance float64) ([]orb.Polygon, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("geometry: voronoi partition needs at least one point")
	}
	bound, ok := BoundingRect(clip)
	if !ok {
		bound = orb.MultiPoint(points).Bound()
	}
	pad := math.Max(bound.Max[0]-bound.Min[0], bound.Max[1]-bound.Min[1])*0.05 + 1e-6

	sites := make([]voronoi.Vertex, len(points))
	for i, p := range points {
		sites[i] = voronoi.Vertex{X: p[0], Y: p[1]}
	}
	bbox := voronoi.NewBoundingBox(
		bound.Min[0]-pad, bound.Max[0]+pad,
		bound.Min[1]-pad, bound.Max[1]+pad,
	)
	diagram := voronoi.ComputeDiagram(sites, bbox, true)

	cells := make([]orb.Polygon, 0, len(diagram.Cells))
	for _, cell := range diagram.Cells {
		ring := cellRing(cell, tolerance)
		if len(ring) < 4 {
			continue
		}
		cellPoly := orb.MultiPolygon{orb.Polygon{ring}}
		clipped := cellPoly
		if len(clip) > 0 {
			ce, err1 := ToEngine(cellPoly)
			pe, err2 := ToEngine(clip)
			if err1 == nil && err2 == nil {
				if inter, ok := Intersection(ce, pe); ok {
					clipped = inter
				} else {
					continue
				}
			}
		}
		cells = append(cells, clipped...)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("geometry: voronoi partition produced no cells")
	}
	return cells, nil
}

func cellRing(cell *voronoi.Cell, tolerance float64) orb.Ring {
	if len(cell.Halfedges) == 0 {
		return nil
	}
	ring := make(orb.Ring, 0, len(cell.Halfedges)+1)
	for _, he := range cell.Halfedges {
		p := he.GetStartpoint()
		pt := orb.Point{p.X, p.Y}
		if len(ring) > 0 && closeEnough(ring[len(ring)-1], pt, tolerance) {
			continue
		}
		ring = append(ring, pt)
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	return ring
}

func closeEnough(a, b orb.Point, tolerance float64) bool {
	dx, dy := a[0]-b[0], a[1]-b[1]
	return dx*dx+dy*dy <= tolerance*tolerance
}
