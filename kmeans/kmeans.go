package kmeans

import (
	"errors"

	"github.com/propensio/seggo/distance"
	"github.com/propensio/seggo/rng"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrEmptyMatrix is returned when the matrix has no rows.
	ErrEmptyMatrix = errors.New("matrix has no rows")
)

// Result holds one completed clustering run. It is created fresh per
// invocation and never mutated after return.
type Result struct {
	// Labels assigns each input row a cluster index in [0, k).
	Labels []int

	// Centroids are the k mean vectors at convergence.
	Centroids [][]float64

	// Inertia is the sum of squared distances from each row to its
	// assigned centroid. Lower is tighter for a given k.
	Inertia float64
}

// Run performs one deterministic k-means clustering run.
//
// Row indices are shuffled with a generator seeded from seed, and the first
// k shuffled rows become the initial centroids (sampling without
// replacement). The assign/update loop stops when no label changes or after
// maxIter iterations. Assignment compares squared distances strictly-less,
// so ties resolve to the lowest centroid index. A centroid left with zero
// members keeps its previous value rather than being recomputed from an
// empty set.
//
// k >= len(matrix) is tolerated: surplus centroids duplicate rows at
// initialization, end up with no members, and simply retain their value.
func Run(matrix [][]float64, k int, seed uint32, maxIter int) (*Result, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}

	n := len(matrix)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}

	dim := len(matrix[0])
	perm := rng.New(seed).Perm(n)

	centroids := make([][]float64, k)
	for j := range centroids {
		centroids[j] = make([]float64, dim)
		copy(centroids[j], matrix[perm[j%n]])
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	sums := make([][]float64, k)
	for j := range sums {
		sums[j] = make([]float64, dim)
	}
	counts := make([]int, k)

	for iter := 0; ; iter++ {
		// Assign step. The loop always terminates on an assignment, so the
		// returned labels are optimal with respect to the returned centroids
		// even when the iteration cap is hit before convergence.
		changed := false
		for i, row := range matrix {
			best, _ := distance.Nearest(row, centroids)
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}

		if !changed || iter >= maxIter-1 {
			break
		}

		// Update step.
		for j := range sums {
			for d := range sums[j] {
				sums[j][d] = 0
			}
			counts[j] = 0
		}
		for i, row := range matrix {
			c := labels[i]
			for d, v := range row {
				sums[c][d] += v
			}
			counts[c]++
		}
		for j := range centroids {
			if counts[j] == 0 {
				continue // empty cluster retains its prior centroid
			}
			inv := 1.0 / float64(counts[j])
			for d := range centroids[j] {
				centroids[j][d] = sums[j][d] * inv
			}
		}
	}

	var inertia float64
	for i, row := range matrix {
		inertia += distance.SquaredL2(row, centroids[labels[i]])
	}

	return &Result{
		Labels:    labels,
		Centroids: centroids,
		Inertia:   inertia,
	}, nil
}
