// Package merger concatenates multiple cosmogony files into one, applying a
// running id_offset to every zone id and parent reference so indices don't
// collide across inputs (spec §6 merge subcommand), ported from
// original_source/src/merger.rs.
package merger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"cosmogony/internal/cosmerr"
	"cosmogony/internal/driver"
	"cosmogony/internal/zone"
)

// Merge streams every input in order into outPath, offsetting each input's
// zone/parent ids by the running maximum id seen so far plus one — the
// original's CosmogonyMerger.id_offset. outPath must be a streamable format
// (.jsonl or .jsonl.gz); .json/.json.gz targets are rejected outright since
// they require the whole merged document in memory up front, defeating the
// point of a streaming merge (spec §6, restored from
// original_source/src/merger.rs::merge_cosmogony).
func Merge(inputs []string, outPath string) error {
	format, err := driver.DetectFormat(outPath)
	if err != nil {
		return err
	}
	if !format.Streamable() {
		return fmt.Errorf("%w: %s", cosmerr.ErrNotStreamable, outPath)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("merger: create %s: %w", outPath, err)
	}
	defer f.Close()

	var w io.Writer = f
	if format.Gzipped() {
		gz := gzip.NewWriter(f)
		defer gz.Close()
		w = gz
	}

	enc := json.NewEncoder(w)
	idOffset := zone.Index(0)
	for _, in := range inputs {
		zones, err := driver.Load(in)
		if err != nil {
			return fmt.Errorf("merger: load %s: %w", in, err)
		}

		maxID := idOffset - 1
		for _, z := range zones {
			z.ID += idOffset
			if z.Parent != nil {
				p := *z.Parent + idOffset
				z.SetParent(&p)
			}
			if z.ID > maxID {
				maxID = z.ID
			}
			if err := enc.Encode(z); err != nil {
				return fmt.Errorf("merger: encode zone %s: %w", z.OsmID, err)
			}
		}
		idOffset = maxID + 1
	}
	return nil
}
