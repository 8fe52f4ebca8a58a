// Package testutil provides testing utilities for seggo.
//
// This package is intended for use in tests and benchmarks only.
// It generates deterministic fixture matrices from the same seeded
// generator the engine uses, so fixtures are identical on every platform
// and every run.
//
// # Fixture Matrices
//
//	m := testutil.UniformMatrix(100, 10, 4711)       // uniform [0, 1)
//	m := testutil.ClusteredMatrix(100, 10, 4, 0.02, 4711)
//	m := testutil.TwoBlobs()                         // canonical 4x10 fixture
package testutil
