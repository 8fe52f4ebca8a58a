package selection

import "math"

// ElbowK locates the "knee" of the inertia-vs-k curve.
//
// It draws the chord between the first and last (k, inertia) points and
// returns the interior k with the maximum perpendicular distance to that
// chord; ties resolve to the lowest k. By construction the first and last
// candidates are never selected. With fewer than three candidates there is
// no interior point, and the midpoint of the range is returned instead.
//
// ks and inertia must be parallel and ks ascending; callers assemble them
// from a sweep.
func ElbowK(ks []int, inertia []float64) int {
	if len(ks) == 0 {
		return 0
	}
	if len(ks) < 3 {
		return ks[len(ks)/2]
	}

	last := len(ks) - 1
	x1, y1 := float64(ks[0]), inertia[0]
	x2, y2 := float64(ks[last]), inertia[last]

	norm := math.Hypot(y2-y1, x2-x1)
	if norm == 0 {
		return ks[len(ks)/2]
	}

	bestK := ks[1]
	bestDist := -1.0
	for i := 1; i < last; i++ {
		x, y := float64(ks[i]), inertia[i]
		d := math.Abs((y2-y1)*x-(x2-x1)*y+x2*y1-y2*x1) / norm
		if d > bestDist {
			bestDist = d
			bestK = ks[i]
		}
	}

	return bestK
}
