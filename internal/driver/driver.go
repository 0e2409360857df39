package driver

import (
	"fmt"
	"log"

	"cosmogony/internal/augment"
	"cosmogony/internal/geometry"
	"cosmogony/internal/hierarchy"
	"cosmogony/internal/inclusion"
	"cosmogony/internal/labeler"
	"cosmogony/internal/osmadapter"
	"cosmogony/internal/postcode"
	"cosmogony/internal/stats"
	"cosmogony/internal/typer"
	"cosmogony/internal/zone"
)

// Options configures one Generate run (spec §6 generate subcommand).
type Options struct {
	PBFPath        string
	NumThreads     int
	DisableVoronoi bool
	CountryCode    string // override; empty means resolve per-zone via CountryFinder
	Langs          []string
}

// Result is everything a caller of Generate needs: the final zone set and
// the aggregated run stats.
type Result struct {
	Zones []*zone.Zone
	Stats *stats.Stats
}

// Generate runs the full eleven-component pipeline of spec §4.11 end to end.
func Generate(opts Options) (*Result, error) {
	numThreads := opts.NumThreads
	if numThreads < 1 {
		numThreads = 1
	}

	log.Printf("driver: reading %s", opts.PBFPath)
	store, err := osmadapter.ReadPBF(opts.PBFPath, numThreads)
	if err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}

	zones := osmadapter.BuildZones(store)
	log.Printf("driver: built %d raw zones", len(zones))

	cache := geometry.NewCache()
	idx := inclusion.BuildIndex(zones)
	inclusions := inclusion.Compute(zones, idx, cache, numThreads)

	zoneTyper, err := typer.New()
	if err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}
	finder := typer.NewCountryFinder(zones, zoneTyper)
	st := typer.TypeAll(zones, zoneTyper, finder, inclusions, opts.CountryCode, numThreads)
	st.OSMFilename = opts.PBFPath

	hierarchy.Build(zones, inclusions)

	var supersededSeeds map[string]bool
	if !opts.DisableVoronoi {
		supersededSeeds = augment.Run(&zones, idx, st, numThreads)
		// The newly appended synthesized cities need no re-typing or
		// re-parenting: they are pre-typed City zones (like any place seed)
		// and already carry their parent from augment.Run. Their presence
		// does, however, mean international names/labels must be computed
		// over the grown slice below.
	}

	for _, z := range zones {
		z.ComputeNames()
	}

	langFilter := map[string]bool{}
	for _, l := range opts.Langs {
		langFilter[l] = true
	}
	for _, z := range zones {
		labeler.ComputeLabels(zones, z, langFilter)
	}

	zones = prune(zones, supersededSeeds)

	codes := osmadapter.BuildPostcodes(store)
	pcIdx := postcode.BuildIndex(codes)
	postcode.Assign(zones, codes, pcIdx, numThreads)

	return &Result{Zones: zones, Stats: st}, nil
}

// prune drops every zone with no resolved ZoneType (the explicit "no type"
// override, or a zone the typer could never classify) and every place seed
// superseded by a synthesized voronoi city, then reassigns dense indices and
// re-resolves every Parent link by osm_id rather than by the old index —
// the recommended approach of spec §9, since indices shift under removal.
func prune(zones []*zone.Zone, superseded map[string]bool) []*zone.Zone {
	kept := make([]*zone.Zone, 0, len(zones))
	parentOsmID := make([]string, 0, len(zones))

	for _, z := range zones {
		if z.ZoneType == nil {
			continue
		}
		if superseded != nil && superseded[z.OsmID] {
			continue
		}
		kept = append(kept, z)
		if z.Parent != nil && int(*z.Parent) < len(zones) {
			parentOsmID = append(parentOsmID, zones[*z.Parent].OsmID)
		} else {
			parentOsmID = append(parentOsmID, "")
		}
	}

	byOsmID := make(map[string]zone.Index, len(kept))
	for i, z := range kept {
		z.ID = zone.Index(i)
		byOsmID[z.OsmID] = z.ID
	}
	for i, z := range kept {
		pid := parentOsmID[i]
		if pid == "" {
			z.SetParent(nil)
			continue
		}
		if newIdx, ok := byOsmID[pid]; ok {
			idx := newIdx
			z.SetParent(&idx)
		} else {
			z.SetParent(nil)
		}
	}
	return kept
}
