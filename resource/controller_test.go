package resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_WorkerSlots(t *testing.T) {
	ctx := context.Background()
	c := NewController(Config{MaxWorkers: 2})

	require.NoError(t, c.AcquireWorker(ctx))
	require.NoError(t, c.AcquireWorker(ctx))
	assert.False(t, c.TryAcquireWorker())

	c.ReleaseWorker()
	assert.True(t, c.TryAcquireWorker())

	c.ReleaseWorker()
	c.ReleaseWorker()
}

func TestController_AcquireWorkerCancellation(t *testing.T) {
	c := NewController(Config{MaxWorkers: 1})
	require.NoError(t, c.AcquireWorker(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.Error(t, c.AcquireWorker(ctx))
	c.ReleaseWorker()
}

func TestController_DefaultsToOneWorker(t *testing.T) {
	c := NewController(Config{})

	assert.True(t, c.TryAcquireWorker())
	assert.False(t, c.TryAcquireWorker())
	c.ReleaseWorker()
}

func TestController_UploadUnlimitedByDefault(t *testing.T) {
	c := NewController(Config{MaxWorkers: 1})
	assert.NoError(t, c.AcquireUpload(context.Background(), 1<<30))
}

func TestController_NilIsUnlimited(t *testing.T) {
	var c *Controller

	assert.NoError(t, c.AcquireWorker(context.Background()))
	assert.True(t, c.TryAcquireWorker())
	c.ReleaseWorker()
	assert.NoError(t, c.AcquireUpload(context.Background(), 1024))
}
