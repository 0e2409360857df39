// Package cosmerr holds the sentinel errors raised across the cosmogony
// pipeline, so callers can errors.Is/errors.As them instead of matching on
// formatted strings.
package cosmerr

import "errors"

var (
	// ErrInvalidCountry is returned by the typer when a zone's country code
	// has no matching rule set in the embedded corpus.
	ErrInvalidCountry = errors.New("no rule set for country")

	// ErrUnknownLevel is returned by the typer when a zone's admin_level has
	// no mapping in its country's rule set.
	ErrUnknownLevel = errors.New("no zone type for admin level")

	// ErrZoneWithoutCountry is returned when a zone's country cannot be
	// resolved and no override was supplied (spec §7 kind 6).
	ErrZoneWithoutCountry = errors.New("zone has no resolvable country")

	// ErrNoCountryRules is returned when the embedded rule corpus has no
	// countries loaded at all; this is fatal (spec §7 kind 3).
	ErrNoCountryRules = errors.New("no country rules loaded")

	// ErrUnknownFormat is returned when an output/input filename carries an
	// extension the file format detector does not recognize (spec §7 kind 2).
	ErrUnknownFormat = errors.New("unrecognized cosmogony file format")

	// ErrNotStreamable is returned by the merger when asked to write to a
	// single-document format (.json/.json.gz); only .jsonl/.jsonl.gz can be
	// streamed.
	ErrNotStreamable = errors.New("output format cannot be streamed, use .jsonl or .jsonl.gz")
)
