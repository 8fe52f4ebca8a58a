// Package seggo is a deterministic spend-propensity segmentation engine.
//
// An Engine owns a read-only feature matrix and answers segmentation
// requests: it sweeps a range of cluster counts with seeded multi-start
// k-means, picks the final count from elbow and silhouette signals, and
// labels the resulting segments. Runs are fully reproducible: the same
// matrix and request always produce byte-identical results, with the seed
// derived from the matrix contents when the caller does not supply one.
package seggo
