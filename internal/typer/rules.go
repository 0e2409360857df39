// Package typer assigns each administrative zone its ZoneType from a
// per-country rule corpus embedded at build time (spec §4.6, component 6),
// grounded on original_source/src/zone_typer.rs. It also resolves each
// zone's country, ported from original_source/src/country_finder.rs.
package typer

import (
	"embed"
	"log"
	"strings"

	"gopkg.in/yaml.v3"

	"cosmogony/internal/zone"
)

//go:embed rules/*.yaml
var embeddedRules embed.FS

// RuleSet is one country's admin_level → ZoneType mapping plus its
// overrides, unmarshaled directly from a rules/<CC>.yaml file.
type RuleSet struct {
	TypeByLevel map[string]zone.Type `yaml:"admin_level"`
	Overrides   *Overrides           `yaml:"overrides,omitempty"`
}

// Overrides holds the two override mechanisms spec §4.6 names: per-object
// id rules and nested rule sets scoped to everything contained by a given
// OSM object.
type Overrides struct {
	// IDRules is keyed "{kind}:{osm_id}" (e.g. "relation:5829526"). A nil
	// value is an explicit "no type" — the matching zone gets pruned.
	IDRules map[string]*zone.Type `yaml:"id_rules,omitempty"`

	// ContainedBy is keyed by member kind ("relation", "way", "node") then
	// by numeric OSM id, mirroring the corpus's own YAML nesting.
	ContainedBy map[string]map[string]*RuleSet `yaml:"contained_by,omitempty"`
}

// loadEmbeddedCorpus reads every rules/*.yaml file, keyed by its upper-cased
// filename stem (the ISO-3166-1 alpha-2 country code). A corrupt or
// unreadable file is logged and skipped rather than aborting the whole load
// (original_source/src/zone_typer.rs::read_libpostal_yaml_folder); only a
// wholly empty corpus is treated as fatal, by the caller.
func loadEmbeddedCorpus() map[string]*RuleSet {
	entries, err := embeddedRules.ReadDir("rules")
	if err != nil {
		log.Printf("typer: no embedded rule directory: %v", err)
		return nil
	}

	out := map[string]*RuleSet{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := embeddedRules.ReadFile("rules/" + e.Name())
		if err != nil {
			log.Printf("typer: skipping unreadable rule file %s: %v", e.Name(), err)
			continue
		}
		var rs RuleSet
		if err := yaml.Unmarshal(data, &rs); err != nil {
			log.Printf("typer: skipping invalid rule file %s: %v", e.Name(), err)
			continue
		}
		code := strings.ToUpper(strings.TrimSuffix(e.Name(), ".yaml"))
		out[code] = &rs
	}
	return out
}
