// Package spatialindex wraps github.com/dhconnelly/rtreego's bulk-loaded
// R-tree (the same library the teacher's zone_spatial.go builds its
// ZoneSpatial index on top of) behind a small generic façade, so it can back
// both the zone index and the postcode index with no duplicated glue.
package spatialindex

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

const dims = 2
const minDegree = 25
const maxDegree = 50

// Item is one (id, bounding box) pair to bulk-load into an Index.
type Item[T any] struct {
	ID    T
	Bound orb.Bound
}

type entry[T any] struct {
	id    T
	bound orb.Bound
}

func (e *entry[T]) Bounds() rtreego.Rect {
	w := e.bound.Max[0] - e.bound.Min[0]
	h := e.bound.Max[1] - e.bound.Min[1]
	if w <= 0 {
		w = 1e-9
	}
	if h <= 0 {
		h = 1e-9
	}
	rect, _ := rtreego.NewRect(rtreego.Point{e.bound.Min[0], e.bound.Min[1]}, []float64{w, h})
	return rect
}

// Index is an immutable, read-only-after-build R-tree keyed by T (spec §4.2,
// §5 "immutable after bulk load" — concurrent QueryIntersect calls need no
// locking once Build has returned).
type Index[T any] struct {
	tree *rtreego.Rtree
}

// Build bulk-loads every item once. Items whose bound has zero width/height
// (a degenerate place-node bbox) are still indexable.
func Build[T any](items []Item[T]) *Index[T] {
	objs := make([]rtreego.Spatial, 0, len(items))
	for _, it := range items {
		objs = append(objs, &entry[T]{id: it.ID, bound: it.Bound})
	}
	return &Index[T]{tree: rtreego.NewTree(dims, minDegree, maxDegree, objs...)}
}

// QueryIntersect returns every indexed id whose bounding rectangle
// intersects r (the locate_in_envelope_intersecting collaborator of §4.2).
func (ix *Index[T]) QueryIntersect(r orb.Bound) []T {
	w := r.Max[0] - r.Min[0]
	h := r.Max[1] - r.Min[1]
	if w <= 0 {
		w = 1e-9
	}
	if h <= 0 {
		h = 1e-9
	}
	rect, err := rtreego.NewRect(rtreego.Point{r.Min[0], r.Min[1]}, []float64{w, h})
	if err != nil {
		return nil
	}
	hits := ix.tree.SearchIntersect(rect)
	out := make([]T, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*entry[T]).id)
	}
	return out
}
