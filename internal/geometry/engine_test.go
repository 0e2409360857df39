package geometry

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEngineRejectsEmpty(t *testing.T) {
	_, err := ToEngine(nil)
	assert.Error(t, err, "converting an empty multipolygon should fail")
}

func TestToEngineRoundTrip(t *testing.T) {
	mp := squareMP(0, 0, 10, 10)
	e, err := ToEngine(mp)
	require.NoError(t, err)
	assert.True(t, e.Valid(), "a converted engine must be valid")
}

func TestCoversAndContains(t *testing.T) {
	outer, err := ToEngine(squareMP(0, 0, 10, 10))
	require.NoError(t, err)
	inner, err := ToEngine(squareMP(2, 2, 4, 4))
	require.NoError(t, err)

	assert.True(t, Covers(outer, inner), "the bigger square should cover the smaller one")
	assert.True(t, Contains(outer, inner), "the bigger square should contain the smaller one")
	assert.False(t, Covers(inner, outer), "the smaller square must not cover the bigger one")
}

func TestCoversOnInvalidEngineIsFalse(t *testing.T) {
	var invalid Engine
	valid, _ := ToEngine(squareMP(0, 0, 1, 1))
	assert.False(t, Covers(invalid, valid), "an invalid engine must never report coverage")
	assert.False(t, Covers(valid, invalid), "an invalid engine must never report coverage")
}

func TestIntersectsDisjointSquares(t *testing.T) {
	a, _ := ToEngine(squareMP(0, 0, 1, 1))
	b, _ := ToEngine(squareMP(5, 5, 6, 6))
	assert.False(t, Intersects(a, b), "disjoint squares must not intersect")
}

func TestDifferenceRemovesOverlap(t *testing.T) {
	a, _ := ToEngine(squareMP(0, 0, 10, 10))
	b, _ := ToEngine(squareMP(0, 0, 5, 10))
	diff, ok := Difference(a, b)
	require.True(t, ok, "expected a non-empty difference")
	assert.NotEmpty(t, diff)
}

func TestDifferenceOfIdenticalSquaresIsEmpty(t *testing.T) {
	a, _ := ToEngine(squareMP(0, 0, 10, 10))
	b, _ := ToEngine(squareMP(0, 0, 10, 10))
	_, ok := Difference(a, b)
	assert.False(t, ok, "subtracting a square from itself should collapse to empty")
}

func TestIntersectionOfOverlappingSquares(t *testing.T) {
	a, _ := ToEngine(squareMP(0, 0, 10, 10))
	b, _ := ToEngine(squareMP(5, 5, 15, 15))
	inter, ok := Intersection(a, b)
	require.True(t, ok)
	assert.NotEmpty(t, inter)
}

func squareMP(minX, minY, maxX, maxY float64) orb.MultiPolygon {
	return orb.MultiPolygon{square(minX, minY, maxX, maxY)}
}
