package kmeans

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidNInit is returned when the restart count is not positive.
var ErrInvalidNInit = errors.New("nInit must be positive")

// seedStride separates the seeds of consecutive restarts. Restart i runs
// with seed + i*seedStride.
const seedStride = 101

// MultiStart runs k-means nInit times with seeds seed, seed+101, seed+202,
// ... and returns the run with the strictly lowest inertia; on ties the
// earliest start wins, so the result is fully determined by
// (matrix, k, seed, nInit, maxIter).
//
// Restarts are independent and execute concurrently, capped at parallelism
// goroutines (GOMAXPROCS when parallelism <= 0). Selection is a
// deterministic reduction over the completed runs, so concurrent execution
// is observationally identical to sequential execution. Cancellation is
// honored between restarts; an individual run is bounded by maxIter and is
// never interrupted.
func MultiStart(ctx context.Context, matrix [][]float64, k int, seed uint32, nInit, maxIter, parallelism int) (*Result, error) {
	if nInit < 1 {
		return nil, ErrInvalidNInit
	}

	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result, nInit)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i := 0; i < nInit; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := Run(matrix, k, seed+uint32(i)*seedStride, maxIter)
			if err != nil {
				return err
			}

			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Inertia < best.Inertia {
			best = r
		}
	}

	return best, nil
}
