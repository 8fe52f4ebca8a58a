// Package selection chooses the number of clusters for a sweep.
//
// It combines two signals computed per candidate k: a linear-time
// silhouette approximation (centroid distances instead of pairwise
// distances) and the elbow of the inertia curve (maximum perpendicular
// distance to the chord). A closed set of selection methods turns the two
// signals into one final k.
package selection
