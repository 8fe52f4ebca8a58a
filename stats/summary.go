package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ColumnSummary describes one category across the whole dataset.
type ColumnSummary struct {
	Category string
	Mean     float64
	Std      float64 // population standard deviation
	P50      float64
	P90      float64
}

// Summarize computes mean, population std and the 50th/90th percentiles for
// every category, returned in descending mean order. categories must be
// parallel to the matrix columns.
func Summarize(matrix [][]float64, categories []string) []ColumnSummary {
	out := make([]ColumnSummary, len(categories))

	col := make([]float64, len(matrix))
	for j, name := range categories {
		for i, row := range matrix {
			col[i] = row[j]
		}

		sorted := make([]float64, len(col))
		copy(sorted, col)
		sort.Float64s(sorted)

		s := ColumnSummary{Category: name}
		if len(col) > 0 {
			s.Mean = stat.Mean(col, nil)
			s.Std = stat.PopStdDev(col, nil)
			s.P50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
			s.P90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
		}
		out[j] = s
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Mean > out[b].Mean })
	return out
}

// Means returns the per-column population means, in column order.
func Means(matrix [][]float64) []float64 {
	if len(matrix) == 0 {
		return nil
	}

	means := make([]float64, len(matrix[0]))
	for _, row := range matrix {
		for j, v := range row {
			means[j] += v
		}
	}
	inv := 1.0 / float64(len(matrix))
	for j := range means {
		means[j] *= inv
	}
	return means
}

// CorrelationPair is the Pearson correlation of two categories.
type CorrelationPair struct {
	A, B string
	R    float64
}

// TopCorrelations returns the topN most positively correlated category
// pairs (excluding the diagonal), strongest first. topN <= 0 returns all
// pairs.
func TopCorrelations(matrix [][]float64, categories []string, topN int) []CorrelationPair {
	if len(matrix) < 2 {
		return nil
	}

	cols := make([][]float64, len(categories))
	for j := range cols {
		cols[j] = make([]float64, len(matrix))
		for i, row := range matrix {
			cols[j][i] = row[j]
		}
	}

	var pairs []CorrelationPair
	for i := 0; i < len(categories); i++ {
		for j := i + 1; j < len(categories); j++ {
			pairs = append(pairs, CorrelationPair{
				A: categories[i],
				B: categories[j],
				R: stat.Correlation(cols[i], cols[j], nil),
			})
		}
	}

	sort.SliceStable(pairs, func(a, b int) bool { return pairs[a].R > pairs[b].R })
	if topN > 0 && topN < len(pairs) {
		pairs = pairs[:topN]
	}
	return pairs
}
