package distance

import "math"

// SquaredL2 returns the squared Euclidean distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

// L2 returns the Euclidean distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func L2(a, b []float64) float64 {
	return math.Sqrt(SquaredL2(a, b))
}

// Nearest returns the index of the centroid closest to v under squared L2,
// together with that squared distance. Comparison is strictly-less, so ties
// resolve to the lowest centroid index. Returns -1 for an empty centroid set.
func Nearest(v []float64, centroids [][]float64) (int, float64) {
	best := -1
	bestDist := math.Inf(1)
	for j, c := range centroids {
		if d := SquaredL2(v, c); d < bestDist {
			best = j
			bestDist = d
		}
	}
	return best, bestDist
}
