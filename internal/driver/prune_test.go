package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmogony/internal/zone"
)

func TestPruneDropsUntypedZones(t *testing.T) {
	typed := zone.NewZone()
	typed.ID = 0
	typed.OsmID = "relation:1"
	typed.ZoneType = typ(zone.City)

	untyped := zone.NewZone()
	untyped.ID = 1
	untyped.OsmID = "relation:2"

	kept := prune([]*zone.Zone{typed, untyped}, nil)
	require.Len(t, kept, 1, "expected only the typed zone to survive")
	assert.Equal(t, "relation:1", kept[0].OsmID)
}

func TestPruneDropsSupersededSeeds(t *testing.T) {
	city := zone.NewZone()
	city.ID = 0
	city.OsmID = "node:1"
	city.ZoneType = typ(zone.City)

	synthesized := zone.NewZone()
	synthesized.ID = 1
	synthesized.OsmID = "node:1-synth"
	synthesized.ZoneType = typ(zone.City)

	kept := prune([]*zone.Zone{city, synthesized}, map[string]bool{"node:1": true})
	require.Len(t, kept, 1, "expected only the synthesized city to survive")
	assert.Equal(t, "node:1-synth", kept[0].OsmID)
}

func TestPruneReassignsIndicesAndReresolvesParents(t *testing.T) {
	country := zone.NewZone()
	country.ID = 0
	country.OsmID = "relation:1"
	country.ZoneType = typ(zone.Country)

	untypedGap := zone.NewZone() // will be dropped, shifting indices
	untypedGap.ID = 1
	untypedGap.OsmID = "relation:2"

	city := zone.NewZone()
	city.ID = 2
	city.OsmID = "relation:3"
	city.ZoneType = typ(zone.City)
	parentIdx := zone.Index(0)
	city.SetParent(&parentIdx)

	kept := prune([]*zone.Zone{country, untypedGap, city}, nil)
	require.Len(t, kept, 2, "expected 2 surviving zones")

	var newCountry, newCity *zone.Zone
	for _, z := range kept {
		if z.OsmID == "relation:1" {
			newCountry = z
		}
		if z.OsmID == "relation:3" {
			newCity = z
		}
	}
	require.NotNil(t, newCountry)
	require.NotNil(t, newCity)
	require.NotNil(t, newCity.Parent)
	assert.Equal(t, newCountry.ID, *newCity.Parent, "expected the city's parent to be re-resolved to the country's new index")
}

func TestPruneClearsParentWhenParentWasDropped(t *testing.T) {
	untypedParent := zone.NewZone()
	untypedParent.ID = 0
	untypedParent.OsmID = "relation:1"

	city := zone.NewZone()
	city.ID = 1
	city.OsmID = "relation:2"
	city.ZoneType = typ(zone.City)
	parentIdx := zone.Index(0)
	city.SetParent(&parentIdx)

	kept := prune([]*zone.Zone{untypedParent, city}, nil)
	require.Len(t, kept, 1)
	assert.Nil(t, kept[0].Parent, "expected the parent link to be cleared since its target was pruned")
}
