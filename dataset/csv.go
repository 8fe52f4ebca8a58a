package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LoadCSV reads a headerless CSV of floats into a matrix. If dim > 0 every
// record must have exactly dim fields; with dim <= 0 the first record sets
// the expected width.
func LoadCSV(r io.Reader, dim int) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	var matrix [][]float64
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if dim <= 0 {
			dim = len(rec)
		}
		if len(rec) != dim {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrShape, len(matrix), len(rec), dim)
		}

		row := make([]float64, dim)
		for j, f := range rec {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: row %d column %d: %w", len(matrix), j, err)
			}
			row[j] = v
		}
		matrix = append(matrix, row)
	}

	return matrix, nil
}

// LoadCSVFile reads a headerless CSV file into a matrix.
func LoadCSVFile(path string, dim int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return LoadCSV(f, dim)
}

// WriteCSV writes the matrix as headerless CSV with the given number of
// decimals (negative precision means shortest exact representation).
func WriteCSV(w io.Writer, matrix [][]float64, precision int) error {
	cw := csv.NewWriter(w)

	var rec []string
	for _, row := range matrix {
		if cap(rec) < len(row) {
			rec = make([]string, len(row))
		}
		rec = rec[:len(row)]
		for j, v := range row {
			rec[j] = strconv.FormatFloat(v, 'f', precision, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the matrix to a CSV file, creating or truncating it.
func ExportCSV(path string, matrix [][]float64, precision int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteCSV(f, matrix, precision); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
