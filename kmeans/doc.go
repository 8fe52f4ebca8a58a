// Package kmeans implements deterministic k-means clustering.
//
// A single Run is Lloyd's algorithm with seeded initialization: centroids
// start as the first k rows of a Fisher-Yates shuffle driven by a portable
// generator, so the same (matrix, k, seed, maxIter) tuple always converges
// to byte-identical labels, centroids and inertia. MultiStart repeats the
// run across derived seeds and keeps the lowest-inertia result.
package kmeans
