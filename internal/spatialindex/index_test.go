package spatialindex

import (
	"sort"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func bound(minX, minY, maxX, maxY float64) orb.Bound {
	return orb.Bound{Min: orb.Point{minX, minY}, Max: orb.Point{maxX, maxY}}
}

func TestQueryIntersectFindsOverlapping(t *testing.T) {
	ix := Build([]Item[string]{
		{ID: "a", Bound: bound(0, 0, 1, 1)},
		{ID: "b", Bound: bound(5, 5, 6, 6)},
		{ID: "c", Bound: bound(0.5, 0.5, 2, 2)},
	})

	got := ix.QueryIntersect(bound(0, 0, 1, 1))
	sort.Strings(got)
	assert.Equal(t, []string{"a", "c"}, got)
}

func TestQueryIntersectEmptyResult(t *testing.T) {
	ix := Build([]Item[int]{{ID: 1, Bound: bound(0, 0, 1, 1)}})
	assert.Empty(t, ix.QueryIntersect(bound(100, 100, 101, 101)))
}

func TestBuildHandlesDegenerateBounds(t *testing.T) {
	ix := Build([]Item[int]{{ID: 42, Bound: bound(1, 1, 1, 1)}})
	assert.Equal(t, []int{42}, ix.QueryIntersect(bound(0.9, 0.9, 1.1, 1.1)))
}
