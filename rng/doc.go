// Package rng provides a seeded, portable pseudo-random generator.
//
// The generator backs deterministic k-means initialization: two instances
// constructed from the same 32-bit seed emit identical sequences on every
// platform, which keeps clustering results reproducible without persisted
// session state.
package rng
