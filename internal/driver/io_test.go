package driver

import (
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmogony/internal/stats"
	"cosmogony/internal/zone"
)

func sampleZones() []*zone.Zone {
	z := zone.NewZone()
	z.ID = 0
	z.OsmID = "relation:1"
	z.Name = "Paris"
	z.Label = "Paris, France"
	z.ZoneType = typ(zone.City)
	z.Boundary = orb.MultiPolygon{orb.Polygon{orb.Ring{
		{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0},
	}}}
	return []*zone.Zone{z}
}

func TestSaveLoadRoundTripJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	zones := sampleZones()
	st := stats.New("extract.osm.pbf")

	require.NoError(t, Save(path, zones, st))
	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Paris", loaded[0].Name)
}

func TestSaveLoadRoundTripJSONStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	zones := sampleZones()
	st := stats.New("extract.osm.pbf")

	require.NoError(t, Save(path, zones, st))
	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "relation:1", loaded[0].OsmID)
}

func TestSaveLoadRoundTripGzipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl.gz")
	zones := sampleZones()

	require.NoError(t, Save(path, zones, nil))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestSaveRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	assert.Error(t, Save(path, sampleZones(), nil), "expected an error for an unrecognized extension")
}
