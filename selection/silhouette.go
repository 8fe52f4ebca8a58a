package selection

import "github.com/propensio/seggo/distance"

// silhouetteFloor keeps the per-row denominator away from zero when a point
// sits exactly on its centroid.
const silhouetteFloor = 1.0

// Silhouette returns an approximate silhouette score for a completed run,
// bounded in [-1, 1].
//
// For each row, a is the Euclidean distance to its own centroid and b the
// minimum distance to any other centroid; the per-row score is
// (b-a)/max(a, b, 1) and the overall score is the mean over all rows.
// Substituting centroid distances for the standard all-pairs averages
// trades fidelity for linear-time cost, which is acceptable for ranking
// candidate k values but not for per-point silhouette reporting.
//
// Runs with fewer than two centroids have no separation signal and score 0.
func Silhouette(matrix [][]float64, labels []int, centroids [][]float64) float64 {
	if len(matrix) == 0 || len(centroids) < 2 {
		return 0
	}

	var total float64
	for i, row := range matrix {
		a := distance.L2(row, centroids[labels[i]])

		b := -1.0
		for j, c := range centroids {
			if j == labels[i] {
				continue
			}
			if d := distance.L2(row, c); b < 0 || d < b {
				b = d
			}
		}

		denom := a
		if b > denom {
			denom = b
		}
		if denom < silhouetteFloor {
			denom = silhouetteFloor
		}

		total += (b - a) / denom
	}

	return total / float64(len(matrix))
}
