// Package resource bounds the engine's use of CPU and upload bandwidth.
//
// A Controller caps how many clustering workers run at once across all
// sweeps sharing it, and rate-limits snapshot upload bytes so result
// persistence never starves a colocated serving path.
package resource

import (
	"context"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxWorkers is the maximum number of concurrent clustering runs.
	// If 0, defaults to 1.
	MaxWorkers int64

	// UploadLimitBytesPerSec is the maximum throughput for snapshot
	// uploads. If 0, unlimited.
	UploadLimitBytesPerSec int64
}

// Controller manages shared worker slots and upload bandwidth.
// A nil Controller imposes no limits.
type Controller struct {
	workerSem     *semaphore.Weighted
	uploadLimiter *rate.Limiter
}

// NewController creates a Controller from the config.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}

	c := &Controller{
		workerSem: semaphore.NewWeighted(cfg.MaxWorkers),
	}

	if cfg.UploadLimitBytesPerSec > 0 {
		c.uploadLimiter = rate.NewLimiter(rate.Limit(cfg.UploadLimitBytesPerSec), int(cfg.UploadLimitBytesPerSec))
	}

	return c
}

// AcquireWorker reserves a clustering worker slot, blocking until one is
// free or ctx is canceled.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.workerSem.Acquire(ctx, 1)
}

// TryAcquireWorker reserves a worker slot without blocking.
func (c *Controller) TryAcquireWorker() bool {
	if c == nil {
		return true
	}
	return c.workerSem.TryAcquire(1)
}

// ReleaseWorker releases a worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.workerSem.Release(1)
}

// AcquireUpload waits until the upload limit allows the given number of
// bytes.
func (c *Controller) AcquireUpload(ctx context.Context, bytes int) error {
	if c == nil || c.uploadLimiter == nil {
		return nil
	}
	return c.uploadLimiter.WaitN(ctx, bytes)
}
