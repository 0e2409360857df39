package osmadapter

import (
	"fmt"
	"io"
	"os"

	"github.com/qedus/osmpbf"
)

// ObjectStore holds every node/way/relation decoded from one .osm.pbf file.
// The original cosmogony streams nodes first and builds ways/relations in a
// second pass once coordinates are available (mirrored by the teacher's own
// two-pass ProcessOSMFile); here we simply buffer every object once, which
// is no more memory-hungry than the pipeline's existing "all zones live in
// memory for one run" design (spec §5) and avoids a second file read.
type ObjectStore struct {
	Nodes     map[int64]*osmpbf.Node
	Ways      map[int64]*osmpbf.Way
	Relations map[int64]*osmpbf.Relation
}

// ReadPBF decodes path fully into an ObjectStore using numThreads decode
// workers (osmpbf.Decoder.Start), following osm_processor.go's
// SetBufferSize(osmpbf.MaxBlobSize) + Start(runtime.GOMAXPROCS(-1)) pattern.
func ReadPBF(path string, numThreads int) (*ObjectStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("osmadapter: open %s: %w", path, err)
	}
	defer f.Close()

	decoder := osmpbf.NewDecoder(f)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)
	if numThreads < 1 {
		numThreads = 1
	}
	if err := decoder.Start(numThreads); err != nil {
		return nil, fmt.Errorf("osmadapter: start decoder: %w", err)
	}

	store := &ObjectStore{
		Nodes:     map[int64]*osmpbf.Node{},
		Ways:      map[int64]*osmpbf.Way{},
		Relations: map[int64]*osmpbf.Relation{},
	}
	for {
		obj, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("osmadapter: decode %s: %w", path, err)
		}
		switch v := obj.(type) {
		case *osmpbf.Node:
			store.Nodes[v.ID] = v
		case *osmpbf.Way:
			store.Ways[v.ID] = v
		case *osmpbf.Relation:
			store.Relations[v.ID] = v
		}
	}
	return store, nil
}
