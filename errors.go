package seggo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMatrix is returned when the feature matrix has no rows.
	ErrEmptyMatrix = errors.New("feature matrix is empty")

	// ErrInvalidK is returned when a requested cluster count is below one.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidKRange is returned when the sweep range upper bound is below
	// the lower bound.
	ErrInvalidKRange = errors.New("invalid k range: upper bound below lower bound")

	// ErrComputationInProgress is returned when a segmentation request
	// arrives while another one is running on the same engine. The request
	// is rejected, never queued; retry after the in-flight computation
	// finishes.
	ErrComputationInProgress = errors.New("segmentation already in progress, retry later")
)

// ErrRaggedMatrix indicates a matrix whose rows do not all share the same
// dimension.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrRaggedMatrix struct {
	Row      int
	Expected int
	Actual   int
	cause    error
}

func (e *ErrRaggedMatrix) Error() string {
	return fmt.Sprintf("ragged matrix: row %d has dimension %d, expected %d", e.Row, e.Actual, e.Expected)
}

func (e *ErrRaggedMatrix) Unwrap() error { return e.cause }
