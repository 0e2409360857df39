// Package driver orchestrates the full pipeline (spec §4.11, component 10):
// read OSM, build raw zones, compute inclusions, type, build the hierarchy,
// augment via voronoi, compute names and labels, prune, assign postcodes,
// aggregate stats, and serialize — following the teacher's
// osm_processor.go's own "ProcessOSMFile does the whole run" shape.
package driver

import (
	"fmt"
	"strings"

	"cosmogony/internal/cosmerr"
)

// Format is the detected output/input file format (spec §6), ported from
// original_source/src/file_format.rs.
type Format int

const (
	// FormatJSON is a single JSON document (.json): not streamable.
	FormatJSON Format = iota
	// FormatJSONStream is newline-delimited JSON (.jsonl).
	FormatJSONStream
	// FormatJSONGz is a single gzip-compressed JSON document (.json.gz): not streamable.
	FormatJSONGz
	// FormatJSONStreamGz is gzip-compressed newline-delimited JSON (.jsonl.gz).
	FormatJSONStreamGz
)

// Streamable reports whether f can be written to incrementally, one zone at
// a time, rather than requiring the whole document in memory at once.
func (f Format) Streamable() bool {
	return f == FormatJSONStream || f == FormatJSONStreamGz
}

// Gzipped reports whether f is one of the gzip-compressed variants.
func (f Format) Gzipped() bool {
	return f == FormatJSONGz || f == FormatJSONStreamGz
}

// DetectFormat maps a filename's extension to a Format (spec §6), returning
// cosmerr.ErrUnknownFormat for anything else.
func DetectFormat(filename string) (Format, error) {
	switch {
	case strings.HasSuffix(filename, ".jsonl.gz"):
		return FormatJSONStreamGz, nil
	case strings.HasSuffix(filename, ".json.gz"):
		return FormatJSONGz, nil
	case strings.HasSuffix(filename, ".jsonl"):
		return FormatJSONStream, nil
	case strings.HasSuffix(filename, ".json"):
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %s", cosmerr.ErrUnknownFormat, filename)
	}
}
