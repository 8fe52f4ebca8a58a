package stats

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Membership converts per-row labels into one roaring bitmap of row indices
// per cluster. The bitmaps partition [0, len(labels)).
func Membership(labels []int, k int) []*roaring.Bitmap {
	members := make([]*roaring.Bitmap, k)
	for c := range members {
		members[c] = roaring.New()
	}
	for i, l := range labels {
		members[l].Add(uint32(i))
	}
	return members
}

// SegmentProfile describes one segment relative to the population.
type SegmentProfile struct {
	Cluster int
	Size    uint64

	// Means are the per-category means over the segment's members.
	Means []float64

	// Lift is Means minus the population means, category by category.
	// Positive lift marks the categories that define the segment.
	Lift []float64
}

// Profiles computes a profile per cluster from the matrix, labels and
// population means (pass Means(matrix), or precomputed means when the
// caller already reports them). Empty segments yield zero means and lift.
func Profiles(matrix [][]float64, labels []int, k int, populationMeans []float64) []SegmentProfile {
	members := Membership(labels, k)

	profiles := make([]SegmentProfile, k)
	for c, bm := range members {
		p := SegmentProfile{
			Cluster: c,
			Size:    bm.GetCardinality(),
			Means:   make([]float64, len(populationMeans)),
			Lift:    make([]float64, len(populationMeans)),
		}

		if p.Size > 0 {
			it := bm.Iterator()
			for it.HasNext() {
				row := matrix[it.Next()]
				for j, v := range row {
					p.Means[j] += v
				}
			}
			inv := 1.0 / float64(p.Size)
			for j := range p.Means {
				p.Means[j] *= inv
				p.Lift[j] = p.Means[j] - populationMeans[j]
			}
		}

		profiles[c] = p
	}

	return profiles
}
