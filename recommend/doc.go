// Package recommend ranks spend categories for individual members.
//
// It consumes the same propensity matrix the segmentation engine clusters:
// one member's row is ranked by descending score, an optional minimum
// threshold filters weak propensities, and the top entries are returned.
package recommend
