// Package dataset loads and exports propensity matrices.
//
// The canonical wire format is a raw C-contiguous little-endian float64
// binary of N rows by D columns, read through a memory mapping. A headerless
// CSV form is supported for interchange and can be written back with
// configurable precision.
package dataset
