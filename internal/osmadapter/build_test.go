package osmadapter

import (
	"testing"

	"github.com/qedus/osmpbf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildZonesOrdersDeterministicallyAndSkipsUnnamed(t *testing.T) {
	store := newStore()
	addNode(store, 1, 0, 0)
	addNode(store, 2, 10, 0)
	addNode(store, 3, 10, 10)
	addNode(store, 4, 0, 10)
	store.Ways[100] = &osmpbf.Way{ID: 100, NodeIDs: []int64{1, 2, 3, 4, 1}}

	store.Relations[20] = &osmpbf.Relation{
		ID:   20,
		Tags: map[string]string{"boundary": "administrative", "admin_level": "8", "name": "Paris"},
		Members: []osmpbf.Member{
			{ID: 100, Type: osmpbf.WayType, Role: "outer"},
		},
	}
	store.Relations[10] = &osmpbf.Relation{
		ID:   10,
		Tags: map[string]string{"boundary": "administrative", "admin_level": "4"}, // no name: skipped
	}
	store.Nodes[500] = &osmpbf.Node{ID: 500, Lon: 2.3, Lat: 48.8, Tags: map[string]string{"place": "city", "name": "Nogent"}}

	zones := BuildZones(store)
	require.Len(t, zones, 2, "unnamed admin relation should be skipped")
	assert.Equal(t, "Paris", zones[0].Name, "expected the admin zone first")
	assert.Equal(t, "Nogent", zones[1].Name, "expected the place seed second")
	assert.EqualValues(t, 0, zones[0].ID)
	assert.EqualValues(t, 1, zones[1].ID)
}

func TestBuildZonesIsDeterministicAcrossCalls(t *testing.T) {
	store := newStore()
	for i := int64(1); i <= 5; i++ {
		store.Nodes[i] = &osmpbf.Node{ID: i, Lon: float64(i), Lat: float64(i), Tags: map[string]string{"place": "town", "name": "T"}}
	}

	first := BuildZones(store)
	second := BuildZones(store)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].OsmID, second[i].OsmID, "index %d: osm id order differs across calls", i)
	}
}

func TestBuildAdminZoneResolvesAdminCentre(t *testing.T) {
	store := newStore()
	addNode(store, 1, 0, 0)
	addNode(store, 2, 10, 0)
	addNode(store, 3, 10, 10)
	addNode(store, 4, 0, 10)
	store.Ways[100] = &osmpbf.Way{ID: 100, NodeIDs: []int64{1, 2, 3, 4, 1}}
	store.Nodes[99] = &osmpbf.Node{ID: 99, Lon: 5, Lat: 5, Tags: map[string]string{"name:en": "Town Hall"}}

	rel := &osmpbf.Relation{
		ID:   1,
		Tags: map[string]string{"boundary": "administrative", "admin_level": "8", "name": "Town"},
		Members: []osmpbf.Member{
			{ID: 100, Type: osmpbf.WayType, Role: "outer"},
			{ID: 99, Type: osmpbf.NodeType, Role: "admin_centre"},
		},
	}

	z := buildAdminZone(rel, store, 0)
	require.NotNil(t, z)
	require.NotNil(t, z.Center, "expected center resolved from admin_centre member")
	assert.Equal(t, 5.0, (*z.Center)[0])
	assert.Equal(t, 5.0, (*z.Center)[1])
}
