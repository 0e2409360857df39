// Command cosmogony builds and merges administrative zone hierarchies from
// OpenStreetMap extracts (spec §6). Subcommand dispatch is handled by
// github.com/alecthomas/kong, the CLI library sudorandom-bgp-stream uses,
// replacing the teacher's hand-rolled flag.FlagSet dispatch in
// cmd/osm-zone-parser/main.go.
package main

import (
	"log"

	"github.com/alecthomas/kong"

	"cosmogony/internal/config"
	"cosmogony/internal/driver"
	"cosmogony/internal/merger"
)

var cli struct {
	Generate GenerateCmd `cmd:"" help:"Build a cosmogony file from an OSM PBF extract."`
	Merge    MergeCmd    `cmd:"" help:"Merge several cosmogony files into one."`
}

// GenerateCmd runs the full pipeline over one OSM PBF file.
type GenerateCmd struct {
	Input          string   `arg:"" help:"Path to the input .osm.pbf file."`
	Output         string   `short:"o" required:"" help:"Output path (.json, .jsonl, .json.gz, .jsonl.gz)."`
	NumThreads     int      `short:"t" default:"0" help:"Decode/worker thread count; 0 uses the configured default."`
	DisableVoronoi bool     `help:"Skip the voronoi city-boundary augmentation step."`
	CountryCode    string   `help:"Force every zone's country instead of resolving it per-zone."`
	Langs          []string `help:"Restrict international labels to these language codes; empty means all."`
}

func (g *GenerateCmd) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	numThreads := g.NumThreads
	if numThreads < 1 {
		numThreads = cfg.NumThreads
	}
	countryCode := g.CountryCode
	if countryCode == "" {
		countryCode = cfg.CountryCode
	}
	disableVoronoi := g.DisableVoronoi || cfg.DisableVoronoi
	langs := g.Langs
	if len(langs) == 0 {
		langs = cfg.Langs
	}

	result, err := driver.Generate(driver.Options{
		PBFPath:        g.Input,
		NumThreads:     numThreads,
		DisableVoronoi: disableVoronoi,
		CountryCode:    countryCode,
		Langs:          langs,
	})
	if err != nil {
		return err
	}

	log.Printf("cosmogony: generated %d zones, writing %s", len(result.Zones), g.Output)
	return driver.Save(g.Output, result.Zones, result.Stats)
}

// MergeCmd concatenates several cosmogony files into one streamable output.
type MergeCmd struct {
	Inputs []string `arg:"" help:"Input cosmogony files, in order."`
	Output string   `short:"o" required:"" help:"Output path; must be .jsonl or .jsonl.gz."`
}

func (m *MergeCmd) Run() error {
	log.Printf("cosmogony: merging %d files into %s", len(m.Inputs), m.Output)
	return merger.Merge(m.Inputs, m.Output)
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("cosmogony"),
		kong.Description("Build administrative zone hierarchies from OpenStreetMap."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		log.Fatalf("cosmogony: %v", err)
	}
}
