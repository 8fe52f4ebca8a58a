package snapshot

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a snapshot does not exist.
//
// Implementations must return an error satisfying
// errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("snapshot not found")

// Store is the storage abstraction for snapshot blobs.
// Implementations must be safe for concurrent use.
type Store interface {
	// Put writes a snapshot atomically, replacing any previous content.
	Put(ctx context.Context, name string, data []byte) error

	// Get reads a snapshot's full content.
	Get(ctx context.Context, name string) ([]byte, error)

	// List returns the snapshot names matching the prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)

	// Delete removes a snapshot. Deleting a missing snapshot is not an
	// error.
	Delete(ctx context.Context, name string) error
}
