package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 27},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 8},
		{"Empty", []float64{}, []float64{}, 0},
		{"Single", []float64{2}, []float64{5}, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SquaredL2(tt.a, tt.b), 1e-12)
		})
	}
}

func TestL2(t *testing.T) {
	assert.InDelta(t, 5.0, L2([]float64{0, 0}, []float64{3, 4}), 1e-12)
}

func TestNearest(t *testing.T) {
	centroids := [][]float64{
		{0, 0},
		{10, 10},
		{20, 20},
	}

	idx, d := Nearest([]float64{1, 1}, centroids)
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 2.0, d, 1e-12)

	idx, _ = Nearest([]float64{19, 19}, centroids)
	assert.Equal(t, 2, idx)
}

func TestNearest_TieBreaksLow(t *testing.T) {
	// Equidistant centroids: strict-less comparison keeps the lowest index.
	centroids := [][]float64{
		{-1, 0},
		{1, 0},
	}
	idx, _ := Nearest([]float64{0, 0}, centroids)
	assert.Equal(t, 0, idx)
}

func TestNearest_Empty(t *testing.T) {
	idx, _ := Nearest([]float64{0}, nil)
	assert.Equal(t, -1, idx)
}
