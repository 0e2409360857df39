// Package parallel gives the pipeline its one bounded worker pool (spec §5:
// "a thread pool of fixed size executes CPU-bound map/reduce operations over
// the zone slice"), built on golang.org/x/sync/errgroup the way the teacher
// bounds its own OSM decode concurrency with runtime.GOMAXPROCS.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Each runs fn(i) for every i in [0,n) across at most workers goroutines at
// once. fn is expected to recover its own per-item failures (the pipeline's
// "local recovery" philosophy, spec §7) rather than return an error.
func Each(n, workers int, fn func(i int)) {
	if workers < 1 {
		workers = 1
	}
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}
