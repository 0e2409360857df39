package geometry

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoronoiPartitionRequiresPoints(t *testing.T) {
	_, err := VoronoiPartition(nil, nil, 1e-7)
	assert.Error(t, err, "partitioning with no points must fail")
}

func TestVoronoiPartitionProducesOneCellPerPoint(t *testing.T) {
	clip := orb.MultiPolygon{square(0, 0, 10, 10)}
	points := []orb.Point{{2, 2}, {8, 2}, {5, 8}}

	cells, err := VoronoiPartition(points, clip, 1e-7)
	require.NoError(t, err)
	require.NotEmpty(t, cells)

	for _, p := range points {
		found := false
		for _, cell := range cells {
			if ContainsPoint(orb.MultiPolygon{cell}, p) {
				found = true
				break
			}
		}
		assert.True(t, found, "no resulting cell contains seed point %+v", p)
	}
}

func TestVoronoiPartitionSinglePointCoversClip(t *testing.T) {
	clip := orb.MultiPolygon{square(0, 0, 10, 10)}
	cells, err := VoronoiPartition([]orb.Point{{5, 5}}, clip, 1e-7)
	require.NoError(t, err)
	assert.Len(t, cells, 1, "a single seed point should produce a single cell")
}
