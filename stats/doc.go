// Package stats provides dataset and segment statistics for reporting.
//
// It is a collaborator of the segmentation engine, not part of it: the
// engine hands it the matrix, labels and centroids, and it produces
// per-category summaries, inter-category correlations and per-segment
// profiles against population means.
package stats
