// Package label names segments from their centroid vectors.
//
// A segment is labeled by its dominant spend category: a fixed dictionary
// maps well-known dominant categories to human-friendly names, and anything
// else falls back to "<dominant> & <runner-up>".
package label
