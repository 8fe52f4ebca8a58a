package testutil

import (
	"github.com/propensio/seggo/rng"
)

// UniformMatrix returns a rows x dim matrix of uniform values in [0, 1),
// fully determined by the seed.
func UniformMatrix(rows, dim int, seed uint32) [][]float64 {
	g := rng.New(seed)

	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, dim)
		for j := range m[i] {
			m[i][j] = g.Float64()
		}
	}
	return m
}

// ClusteredMatrix returns a rows x dim matrix whose rows scatter around
// `clusters` deterministic centers with the given spread. Row i belongs to
// center i % clusters, so every cluster is populated.
func ClusteredMatrix(rows, dim, clusters int, spread float64, seed uint32) [][]float64 {
	g := rng.New(seed)

	centers := make([][]float64, clusters)
	for c := range centers {
		centers[c] = make([]float64, dim)
		for j := range centers[c] {
			centers[c][j] = g.Float64()
		}
	}

	m := make([][]float64, rows)
	for i := range m {
		center := centers[i%clusters]
		m[i] = make([]float64, dim)
		for j := range m[i] {
			m[i][j] = center[j] + (g.Float64()-0.5)*2*spread
		}
	}
	return m
}

// TwoBlobs returns the canonical clean-separation fixture: four rows in
// ten dimensions, rows 0-1 near the zero vector and rows 2-3 near the
// all-ones vector.
func TwoBlobs() [][]float64 {
	m := make([][]float64, 4)
	for i := range m {
		v := 0.01
		if i >= 2 {
			v = 0.99
		}
		m[i] = make([]float64, 10)
		for j := range m[i] {
			m[i][j] = v
		}
	}
	return m
}
