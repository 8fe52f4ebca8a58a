package dataset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/propensio/seggo/internal/mmap"
)

var (
	// ErrTruncated is returned when a binary file is not a whole number of
	// float64 values.
	ErrTruncated = errors.New("dataset: file is not a multiple of 8 bytes")

	// ErrShape is returned when the value count does not divide evenly into
	// rows of the requested dimension.
	ErrShape = errors.New("dataset: values do not form rows of the requested dimension")
)

// LoadBinary reads a raw little-endian float64 binary into an N x dim
// matrix. The file is memory-mapped while decoding, so very large datasets
// are not double-buffered.
func LoadBinary(path string, dim int) ([][]float64, error) {
	if dim < 1 {
		return nil, fmt.Errorf("dataset: invalid dimension %d", dim)
	}

	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = m.Close() }()

	data := m.Bytes()
	if len(data)%8 != 0 {
		return nil, ErrTruncated
	}

	count := len(data) / 8
	if count%dim != 0 {
		return nil, fmt.Errorf("%w: %d values, dimension %d", ErrShape, count, dim)
	}

	rows := count / dim
	matrix := make([][]float64, rows)
	for i := range matrix {
		row := make([]float64, dim)
		for j := range row {
			off := (i*dim + j) * 8
			row[j] = math.Float64frombits(binary.LittleEndian.Uint64(data[off : off+8]))
		}
		matrix[i] = row
	}

	return matrix, nil
}
