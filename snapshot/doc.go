// Package snapshot persists finished segmentation results.
//
// A snapshot is an immutable record of one completed computation: the full
// response plus the reproducibility parameters that created it. Snapshots
// never carry live cluster state across dataset changes; reloading one
// replays a past answer, it does not resume a computation.
//
// The envelope is self-describing: codec and compression names travel in
// the header, so any store (memory, local disk, S3, MinIO) holds the same
// bytes.
package snapshot
