package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformMatrix(t *testing.T) {
	m := UniformMatrix(8, 10, 4711)

	assert.Equal(t, 8, len(m))
	assert.Equal(t, 10, len(m[0]))
	for _, row := range m {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
		}
	}
}

func TestUniformMatrix_Deterministic(t *testing.T) {
	a := UniformMatrix(4, 10, 4711)
	b := UniformMatrix(4, 10, 4711)

	assert.Equal(t, a, b)
}

func TestClusteredMatrix(t *testing.T) {
	m := ClusteredMatrix(100, 10, 5, 0.01, 4711)

	assert.Equal(t, 100, len(m))
	assert.Equal(t, 10, len(m[0]))

	// Rows sharing a center stay within 2*spread per coordinate.
	for j := 0; j < 10; j++ {
		assert.InDelta(t, m[0][j], m[5][j], 0.02)
	}
}

func TestTwoBlobs(t *testing.T) {
	m := TwoBlobs()

	assert.Equal(t, 4, len(m))
	assert.Equal(t, 10, len(m[0]))
	assert.Equal(t, 0.01, m[0][0])
	assert.Equal(t, 0.99, m[3][9])
}
