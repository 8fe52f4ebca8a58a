package seggo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    sweepCounter   prometheus.Counter
//	    runHistogram   prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSweep(kCount int, duration time.Duration, err error) {
//	    p.sweepCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordSweep is called after each full k sweep.
	// kCount is the number of k values swept, duration is the total time
	// taken, err is nil if successful.
	RecordSweep(kCount int, duration time.Duration, err error)

	// RecordRun is called after each multi-start clustering run.
	// k is the cluster count, duration is the time taken.
	RecordRun(k int, duration time.Duration, err error)

	// RecordSnapshot is called after each snapshot persistence attempt.
	RecordSnapshot(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSweep(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRun(int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordSnapshot(time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SweepCount      atomic.Int64
	SweepErrors     atomic.Int64
	SweepTotalNanos atomic.Int64
	RunCount        atomic.Int64
	RunErrors       atomic.Int64
	RunTotalNanos   atomic.Int64
	SnapshotCount   atomic.Int64
	SnapshotErrors  atomic.Int64
}

// RecordSweep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSweep(kCount int, duration time.Duration, err error) {
	b.SweepCount.Add(1)
	b.SweepTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SweepErrors.Add(1)
	}
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(k int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// RecordSnapshot implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshot(duration time.Duration, err error) {
	b.SnapshotCount.Add(1)
	if err != nil {
		b.SnapshotErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SweepCount:     b.SweepCount.Load(),
		SweepErrors:    b.SweepErrors.Load(),
		SweepAvgNanos:  avgNanos(b.SweepTotalNanos.Load(), b.SweepCount.Load()),
		RunCount:       b.RunCount.Load(),
		RunErrors:      b.RunErrors.Load(),
		RunAvgNanos:    avgNanos(b.RunTotalNanos.Load(), b.RunCount.Load()),
		SnapshotCount:  b.SnapshotCount.Load(),
		SnapshotErrors: b.SnapshotErrors.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SweepCount     int64
	SweepErrors    int64
	SweepAvgNanos  int64
	RunCount       int64
	RunErrors      int64
	RunAvgNanos    int64
	SnapshotCount  int64
	SnapshotErrors int64
}
