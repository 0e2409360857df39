package driver

import (
	"strconv"

	"cosmogony/internal/stats"
	"cosmogony/internal/zone"
)

// metadataDTO is the run census written alongside the zone output: the
// failure counts of spec §7 plus the level/zone-type breakdowns restored
// from original_source/ as SPEC_FULL.md's "CosmogonyStats" supplement.
type metadataDTO struct {
	OSMFilename         string           `json:"osm_filename,omitempty"`
	ZoneWithoutCountry  int              `json:"zone_without_country"`
	InvalidCountryCode  int              `json:"invalid_country_code"`
	UnhandledAdminLevel map[string]map[string]int `json:"unhandled_admin_level,omitempty"`
	VoronoiCellsBuilt   int              `json:"voronoi_cells_built"`
	VoronoiFailures     int              `json:"voronoi_failures"`
	LevelCounts         map[string]int   `json:"level_counts"`
	ZoneTypeCounts      map[string]int   `json:"zone_type_counts"`
	TotalZones          int              `json:"total_zones"`
}

func newMetadataDTO(zones []*zone.Zone, st *stats.Stats) *metadataDTO {
	dto := &metadataDTO{
		LevelCounts:    map[string]int{},
		ZoneTypeCounts: map[string]int{},
		TotalZones:     len(zones),
	}
	for _, z := range zones {
		if z.AdminLevel != nil {
			dto.LevelCounts[strconv.Itoa(*z.AdminLevel)]++
		}
		if z.ZoneType != nil {
			dto.ZoneTypeCounts[z.ZoneType.String()]++
		}
	}
	if st == nil {
		return dto
	}
	dto.OSMFilename = st.OSMFilename
	dto.ZoneWithoutCountry = st.ZoneWithoutCountry
	dto.InvalidCountryCode = st.InvalidCountryCode
	dto.VoronoiCellsBuilt = st.VoronoiCellsBuilt
	dto.VoronoiFailures = st.VoronoiFailures
	if len(st.UnhandledAdminLevel) > 0 {
		dto.UnhandledAdminLevel = map[string]map[string]int{}
		for country, levels := range st.UnhandledAdminLevel {
			m := map[string]int{}
			for level, count := range levels {
				m[strconv.Itoa(level)] = count
			}
			dto.UnhandledAdminLevel[country] = m
		}
	}
	return dto
}
