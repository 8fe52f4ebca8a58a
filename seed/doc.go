// Package seed derives a stable clustering seed from matrix contents.
//
// Identical matrices (up to three-decimal precision, identical row order)
// always produce the identical seed, so a dataset reproduces the same
// default clustering run without any persisted session state.
package seed
