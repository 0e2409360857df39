package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeNamesPromotesCityTags(t *testing.T) {
	z := NewZone()
	z.ZoneType = typ(City)
	z.Name = "Paris"
	z.CenterTags = Tags{
		"name:en":    "Paris",
		"name:de":    "Paris",
		"population": "2148000",
	}
	z.ComputeNames()

	assert.Contains(t, z.Tags, "population", "population should be promoted onto a City zone's own tags")
	assert.Contains(t, z.Tags, "name:de", "name:de should be promoted onto a City zone's own tags")
}

func TestComputeNamesPromotesOnWikidataMatch(t *testing.T) {
	wd := "Q90"
	z := NewZone()
	z.ZoneType = typ(StateDistrict)
	z.Name = "Paris"
	z.Wikidata = &wd
	z.CenterTags = Tags{"wikidata": "Q90", "name:ja": "パリ"}
	z.ComputeNames()

	assert.Contains(t, z.Tags, "name:ja", "name:ja should be promoted when wikidata ids match, regardless of zone type")
}

func TestComputeNamesSkipsWhenNeitherConditionHolds(t *testing.T) {
	wd := "Q90"
	other := "Q100"
	z := NewZone()
	z.ZoneType = typ(StateDistrict)
	z.Name = "Paris"
	z.Wikidata = &wd
	z.CenterTags = Tags{"wikidata": other, "name:ja": "パリ"}
	z.ComputeNames()

	assert.NotContains(t, z.Tags, "name:ja", "name:ja must not be promoted when zone is not a City and wikidata ids differ")
}

func TestInternationalNamesFromTagsSkipsNameIdenticalToDefault(t *testing.T) {
	names := internationalNamesFromTags(Tags{
		"name:en": "Paris",
		"name:fr": "Paris",
		"name:de": "Paris (de)",
	}, "Paris")

	assert.NotContains(t, names, "en", "a translation identical to the default name must be excluded")
	assert.Equal(t, "Paris (de)", names["de"])
}

func TestSetAndGetInternationalNames(t *testing.T) {
	z := NewZone()
	names := map[string]string{"en": "Paris", "de": "Paris (de)"}
	z.SetInternationalNames(names)
	assert.Equal(t, names, z.InternationalNames())
}
