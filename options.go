package seggo

import (
	"log/slog"

	"github.com/propensio/seggo/codec"
	"github.com/propensio/seggo/resource"
	"github.com/propensio/seggo/snapshot"
)

type options struct {
	codec              codec.Codec
	logger             *Logger
	metricsCollector   MetricsCollector
	parallelism        int
	controller         *resource.Controller
	snapshotStore      snapshot.Store
	snapshotCompressor snapshot.Compressor
	categories         []string
}

// Option configures Engine constructor behavior.
type Option func(*options)

// WithCodec configures the codec used for encoding persisted snapshots.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithParallelism caps the number of goroutines used per sweep and per
// multi-start run. Values <= 0 mean GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithResourceController attaches a shared resource controller. Worker
// slots bound concurrent clustering runs across all engines sharing the
// controller, and snapshot uploads respect its bandwidth limit.
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithSnapshotStore enables snapshot persistence: every successful
// segmentation is saved to the store, named by its dataset seed and final
// k. Pass nil to disable.
func WithSnapshotStore(store snapshot.Store) Option {
	return func(o *options) {
		o.snapshotStore = store
	}
}

// WithSnapshotCompressor configures the compressor for persisted
// snapshots. Defaults to zstd.
func WithSnapshotCompressor(c snapshot.Compressor) Option {
	return func(o *options) {
		o.snapshotCompressor = c
	}
}

// WithCategories overrides the feature category names used for segment
// labeling. Must match the matrix dimension. Defaults to the canonical
// spend categories in package label.
func WithCategories(categories []string) Option {
	return func(o *options) {
		o.categories = categories
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &seggo.BasicMetricsCollector{}
//	engine, _ := seggo.New(matrix, seggo.WithMetricsCollector(metrics))
//	// ... use engine ...
//	stats := metrics.GetStats()
//	fmt.Printf("Sweeps: %d, Avg latency: %dns\n", stats.SweepCount, stats.SweepAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := seggo.NewJSONLogger(slog.LevelInfo)
//	engine, _ := seggo.New(matrix, seggo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            nil,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
