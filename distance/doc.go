// Package distance provides the Euclidean distance kernels used by the
// segmentation engine. Only squared L2 and L2 are offered; non-Euclidean
// metrics are out of scope.
package distance
