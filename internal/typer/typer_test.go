package typer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmogony/internal/cosmerr"
	"cosmogony/internal/zone"
)

func typ(t zone.Type) *zone.Type { return &t }

func TestNewLoadsEmbeddedCorpus(t *testing.T) {
	ty, err := New()
	require.NoError(t, err)
	assert.True(t, ty.ContainsRule("FR"))
	assert.True(t, ty.ContainsRule("fr"), "expected case-insensitive matching")
	assert.False(t, ty.ContainsRule("ZZ"), "an unknown country code must not match")
}

func TestTypeZoneUnknownCountry(t *testing.T) {
	ty, err := New()
	require.NoError(t, err)
	z := zone.NewZone()
	z.OsmID = "relation:1"
	level := 8
	z.AdminLevel = &level
	_, err = ty.TypeZone(z, "ZZ", nil, nil)
	assert.ErrorIs(t, err, cosmerr.ErrInvalidCountry)
}

func TestTypeZoneByAdminLevel(t *testing.T) {
	ty, err := New()
	require.NoError(t, err)
	z := zone.NewZone()
	z.OsmID = "relation:1"
	level := 8
	z.AdminLevel = &level
	got, err := ty.TypeZone(z, "FR", nil, nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, zone.City, *got)
}

func TestTypeZoneUnknownLevel(t *testing.T) {
	ty, err := New()
	require.NoError(t, err)
	z := zone.NewZone()
	z.OsmID = "relation:1"
	level := 99
	z.AdminLevel = &level
	_, err = ty.TypeZone(z, "FR", nil, nil)
	assert.ErrorIs(t, err, cosmerr.ErrUnknownLevel)
}

func TestResolveIDRuleOverride(t *testing.T) {
	rs := &RuleSet{
		TypeByLevel: map[string]zone.Type{"8": zone.City},
		Overrides: &Overrides{
			IDRules: map[string]*zone.Type{"relation:42": nil},
		},
	}
	z := zone.NewZone()
	z.OsmID = "relation:42"
	level := 8
	z.AdminLevel = &level

	got, err := resolve(rs, z, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, got, "expected the explicit nil-type override to win")
}

func TestResolveContainedByOverride(t *testing.T) {
	nested := &RuleSet{TypeByLevel: map[string]zone.Type{"7": zone.CityDistrict}}
	rs := &RuleSet{
		TypeByLevel: map[string]zone.Type{"7": zone.City},
		Overrides: &Overrides{
			ContainedBy: map[string]map[string]*RuleSet{
				"relation": {"1374999": nested},
			},
		},
	}
	parent := zone.NewZone()
	parent.ID = 0
	parent.OsmID = "relation:1374999"

	child := zone.NewZone()
	child.ID = 1
	child.OsmID = "relation:99"
	level := 7
	child.AdminLevel = &level

	allZones := []*zone.Zone{parent, child}
	got, err := resolve(rs, child, []zone.Index{0}, allZones)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, zone.CityDistrict, *got, "expected the nested contained_by rule set to apply")
}

func TestSplitOsmID(t *testing.T) {
	kind, id := splitOsmID("relation:42")
	assert.Equal(t, "relation", kind)
	assert.Equal(t, "42", id)

	kind, id = splitOsmID("noColon")
	assert.Equal(t, "noColon", kind)
	assert.Equal(t, "", id)
}
