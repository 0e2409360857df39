// Package stats aggregates the run census spec §7 and §9 ask for: failure
// counts for the error kinds that recover locally rather than aborting, plus
// the level/zone-type breakdowns restored from original_source/ (lib.rs,
// cosmogony.rs) as SPEC_FULL.md's "CosmogonyStats" supplement.
package stats

import "sync"

// Stats is safe for concurrent increments from the typer's parallel pass and
// the voronoi augmentor. LevelCounts, ZoneTypeCounts and TotalZones are only
// initialized here; the per-level and per-type counts written to the output
// are computed from the final zone set by the driver's metadata census.
type Stats struct {
	mu sync.Mutex

	OSMFilename string

	ZoneWithoutCountry  int
	InvalidCountryCode  int
	UnhandledAdminLevel map[string]map[int]int

	VoronoiCellsBuilt int
	VoronoiFailures   int

	LevelCounts    map[int]int
	ZoneTypeCounts map[string]int
	TotalZones     int
}

// New returns a Stats with every map initialized.
func New(osmFilename string) *Stats {
	return &Stats{
		OSMFilename:         osmFilename,
		UnhandledAdminLevel: map[string]map[int]int{},
		LevelCounts:         map[int]int{},
		ZoneTypeCounts:      map[string]int{},
	}
}

func (s *Stats) IncZoneWithoutCountry() {
	s.mu.Lock()
	s.ZoneWithoutCountry++
	s.mu.Unlock()
}

func (s *Stats) IncInvalidCountryCode() {
	s.mu.Lock()
	s.InvalidCountryCode++
	s.mu.Unlock()
}

// RecordUnhandledLevel counts a zone whose admin_level has no rule in its
// country's corpus (spec §7 kind 5).
func (s *Stats) RecordUnhandledLevel(country string, level int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.UnhandledAdminLevel[country] == nil {
		s.UnhandledAdminLevel[country] = map[int]int{}
	}
	s.UnhandledAdminLevel[country][level]++
}

func (s *Stats) IncVoronoiCellsBuilt(n int) {
	s.mu.Lock()
	s.VoronoiCellsBuilt += n
	s.mu.Unlock()
}

func (s *Stats) IncVoronoiFailures() {
	s.mu.Lock()
	s.VoronoiFailures++
	s.mu.Unlock()
}
