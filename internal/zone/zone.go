// Package zone defines the Zone record and the operations the rest of the
// pipeline (inclusion engine, typer, hierarchy builder, voronoi augmentor,
// labeler) read and mutate it through.
package zone

import (
	"math"
	"sort"
	"strings"

	"github.com/paulmach/orb"
)

// Index is a dense, non-negative integer identifying a zone within one run.
// It is stable for the run and is invalidated once zones are pruned (driver
// stage 10); nothing after pruning may dereference an Index.
type Index int

// Type is the total-ordered zone classification. The ordering itself is load
// bearing: a child must have a strictly smaller Type than its parent.
type Type int

const (
	Suburb Type = iota
	CityDistrict
	City
	StateDistrict
	State
	CountryRegion
	Country
	NonAdministrative
)

var typeNames = map[Type]string{
	Suburb:            "suburb",
	CityDistrict:      "city_district",
	City:              "city",
	StateDistrict:     "state_district",
	State:             "state",
	CountryRegion:     "country_region",
	Country:           "country",
	NonAdministrative: "non_administrative",
}

var typeByName = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for t, n := range typeNames {
		m[n] = t
	}
	return m
}()

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "unknown"
}

// ParseType maps a rule-file string ("city", "state_district", ...) to a Type.
func ParseType(s string) (Type, bool) {
	t, ok := typeByName[strings.ToLower(s)]
	return t, ok
}

// Tags is a raw OSM tag map, reused verbatim for a zone's own tags and for
// the tags of its admin_centre/label member.
type Tags map[string]string

// Get returns the tag value and whether it was present, mirroring the
// osmpbf.{Node,Relation}.Tags map access pattern used across the adapter.
func (t Tags) Get(key string) (string, bool) {
	v, ok := t[key]
	return v, ok
}

// GetFirst returns the first present tag among keys, or "" if none are set.
func (t Tags) GetFirst(keys ...string) string {
	for _, k := range keys {
		if v, ok := t[k]; ok {
			return v
		}
	}
	return ""
}

// Zone is the central record of the pipeline; see spec §3 for the full
// invariant table.
type Zone struct {
	ID          Index
	OsmID       string
	AdminLevel  *int
	ZoneType    *Type
	Name        string
	Label       string

	InternationalLabels map[string]string
	internationalNames  map[string]string // not serialized; internal to labeler

	ZipCodes []string

	Center *orb.Point
	Boundary orb.MultiPolygon // nil/empty means "no boundary"
	BBox     *orb.Bound

	Tags       Tags
	CenterTags Tags

	Parent *Index

	Wikidata    *string
	CountryCode *string

	IsGenerated bool
}

// NewZone seeds the invariant-maintaining fields (non-nil maps/slices) of a
// bare Zone so callers never have to remember to.
func NewZone() *Zone {
	return &Zone{
		InternationalLabels: map[string]string{},
		internationalNames:  map[string]string{},
		ZipCodes:            []string{},
		Tags:                Tags{},
		CenterTags:          Tags{},
	}
}

// IsAdmin reports whether the zone has a resolved, administrative type.
// A zone with no type yet, or explicitly typed NonAdministrative, is not an
// admin and so cannot be a parent (hierarchy_builder.rs::can_be_child_of).
func (z *Zone) IsAdmin() bool {
	return z.ZoneType != nil && *z.ZoneType != NonAdministrative
}

// CanBeChildOf reports whether z may be attached as a child of candidate:
// candidate must be administrative, and z must either be non-administrative
// itself or have a strictly smaller zone type.
func (z *Zone) CanBeChildOf(candidate *Zone) bool {
	if !candidate.IsAdmin() {
		return false
	}
	if !z.IsAdmin() {
		return true
	}
	return *z.ZoneType < *candidate.ZoneType
}

// SetParent assigns (or clears, with nil) the zone's parent.
func (z *Zone) SetParent(idx *Index) {
	z.Parent = idx
}

// SetZipCodes sorts and deduplicates zip codes before assigning them, so the
// invariant "ZipCodes is sorted and duplicate-free" (spec §8) always holds.
func (z *Zone) SetZipCodes(codes []string) {
	z.ZipCodes = sortedUniqueStrings(codes)
}

func sortedUniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// SplitZipCodes implements the `addr:postcode`/`postal_code` parsing rule
// from spec §4.3: split on ';', drop empties, sort, deduplicate.
func SplitZipCodes(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ";")
	return sortedUniqueStrings(parts)
}

// FiniteCenter returns (point, true) only when both coordinates are finite,
// upholding "z.center coordinates are finite when Some" (spec §8).
func FiniteCenter(p orb.Point) (orb.Point, bool) {
	if math.IsNaN(p[0]) || math.IsNaN(p[1]) || math.IsInf(p[0], 0) || math.IsInf(p[1], 0) {
		return orb.Point{}, false
	}
	return p, true
}
