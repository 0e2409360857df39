package typer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmogony/internal/zone"
)

func TestCountryFinderIgnoresUnknownISOCode(t *testing.T) {
	ty, err := New()
	require.NoError(t, err)
	z := zone.NewZone()
	z.ID = 0
	z.Tags = zone.Tags{"ISO3166-1:alpha2": "ZZ"}
	cf := NewCountryFinder([]*zone.Zone{z}, ty)
	_, ok := cf.FindZoneCountry(z, nil)
	assert.False(t, ok, "an unrecognized ISO code must not resolve a country")
}

func TestCountryFinderIgnoresCodeWithNoRuleSet(t *testing.T) {
	ty, err := New()
	require.NoError(t, err)
	z := zone.NewZone()
	z.ID = 0
	z.Tags = zone.Tags{"ISO3166-1:alpha2": "JP"} // valid ISO code, no rules/jp.yaml
	cf := NewCountryFinder([]*zone.Zone{z}, ty)
	_, ok := cf.FindZoneCountry(z, nil)
	assert.False(t, ok, "a country with no loaded rule set must not resolve")
}

func TestCountryFinderPicksHighestAdminLevelAncestor(t *testing.T) {
	ty, err := New()
	require.NoError(t, err)

	frLevel := 2
	country := zone.NewZone()
	country.ID = 0
	country.AdminLevel = &frLevel
	country.Tags = zone.Tags{"ISO3166-1:alpha2": "FR"}

	overseasLevel := 4
	overseas := zone.NewZone()
	overseas.ID = 1
	overseas.AdminLevel = &overseasLevel
	overseas.Tags = zone.Tags{"ISO3166-1:alpha2": "FR"}

	city := zone.NewZone()
	city.ID = 2

	cf := NewCountryFinder([]*zone.Zone{country, overseas, city}, ty)
	got, ok := cf.FindZoneCountry(city, []zone.Index{0, 1})
	require.True(t, ok, "expected a resolved country")
	assert.Equal(t, "FR", got)
}
