package driver

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"cosmogony/internal/stats"
	"cosmogony/internal/zone"
)

// jsonDocument is the single-document (.json/.json.gz) envelope: the full
// zone set plus the run's metadata in one object.
type jsonDocument struct {
	Zones    []*zone.Zone `json:"zones"`
	Metadata *metadataDTO `json:"metadata"`
}

// Save writes zones (and st, if non-nil) to path, choosing a streaming or
// whole-document writer based on the detected Format. Streaming formats
// write one zone per line and the metadata to a "<path>.meta.json" sibling
// file, since NDJSON has no natural place for a single trailing object
// without breaking "one zone per line" for readers that split on newlines.
func Save(path string, zones []*zone.Zone, st *stats.Stats) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("driver: create %s: %w", path, err)
	}
	defer f.Close()

	var w io.Writer = f
	var gz *gzip.Writer
	if format.Gzipped() {
		gz = gzip.NewWriter(f)
		defer gz.Close()
		w = gz
	}

	if format.Streamable() {
		if err := writeStream(w, zones); err != nil {
			return err
		}
		if st != nil {
			return writeMetadataSidecar(path+".meta.json", zones, st)
		}
		return nil
	}

	doc := jsonDocument{Zones: zones, Metadata: newMetadataDTO(zones, st)}
	enc := json.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("driver: encode %s: %w", path, err)
	}
	return nil
}

func writeStream(w io.Writer, zones []*zone.Zone) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, z := range zones {
		if err := enc.Encode(z); err != nil {
			return fmt.Errorf("driver: encode zone %s: %w", z.OsmID, err)
		}
	}
	return bw.Flush()
}

func writeMetadataSidecar(path string, zones []*zone.Zone, st *stats.Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("driver: create %s: %w", path, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(newMetadataDTO(zones, st))
}

// Load reads zones back from a cosmogony file, used by the merge subcommand.
// Only streamable formats can be read back incrementally; the non-streaming
// formats are read fully into memory (their whole-document envelope leaves
// no other option).
func Load(path string) ([]*zone.Zone, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("driver: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if format.Gzipped() {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("driver: gzip reader %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	if format.Streamable() {
		var zones []*zone.Zone
		dec := json.NewDecoder(r)
		for dec.More() {
			var z zone.Zone
			if err := dec.Decode(&z); err != nil {
				return nil, fmt.Errorf("driver: decode zone in %s: %w", path, err)
			}
			zones = append(zones, &z)
		}
		return zones, nil
	}

	var doc jsonDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("driver: decode %s: %w", path, err)
	}
	return doc.Zones, nil
}
