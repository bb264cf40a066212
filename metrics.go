package sbbf

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Single Insert/Contains calls are not reported: they take a few
// nanoseconds and an interface call per operation would dominate them.
// Batches, parallel runs and rejected buffers are reported.
type MetricsCollector interface {
	// RecordInsertBatch is called after InsertBatch and InsertParallel.
	// present is how many hashes were already represented.
	RecordInsertBatch(count, present int, duration time.Duration)

	// RecordContainsBatch is called after ContainsBatch.
	// hits is how many hashes were reported as probably present.
	RecordContainsBatch(count, hits int, duration time.Duration)

	// RecordInvalidBuffer is called when a checked entry point rejects a buffer.
	RecordInvalidBuffer(err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsertBatch(int, int, time.Duration)   {}
func (NoopMetricsCollector) RecordContainsBatch(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordInvalidBuffer(error)                   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertBatches       atomic.Int64
	InsertItems         atomic.Int64
	InsertPresent       atomic.Int64
	InsertTotalNanos    atomic.Int64
	ContainsBatches     atomic.Int64
	ContainsItems       atomic.Int64
	ContainsHits        atomic.Int64
	ContainsTotalNanos  atomic.Int64
	InvalidBufferErrors atomic.Int64
}

// RecordInsertBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsertBatch(count, present int, duration time.Duration) {
	b.InsertBatches.Add(1)
	b.InsertItems.Add(int64(count))
	b.InsertPresent.Add(int64(present))
	b.InsertTotalNanos.Add(duration.Nanoseconds())
}

// RecordContainsBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordContainsBatch(count, hits int, duration time.Duration) {
	b.ContainsBatches.Add(1)
	b.ContainsItems.Add(int64(count))
	b.ContainsHits.Add(int64(hits))
	b.ContainsTotalNanos.Add(duration.Nanoseconds())
}

// RecordInvalidBuffer implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInvalidBuffer(error) {
	b.InvalidBufferErrors.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertBatches:       b.InsertBatches.Load(),
		InsertItems:         b.InsertItems.Load(),
		InsertPresent:       b.InsertPresent.Load(),
		InsertAvgNanos:      avgNanos(b.InsertTotalNanos.Load(), b.InsertItems.Load()),
		ContainsBatches:     b.ContainsBatches.Load(),
		ContainsItems:       b.ContainsItems.Load(),
		ContainsHits:        b.ContainsHits.Load(),
		ContainsAvgNanos:    avgNanos(b.ContainsTotalNanos.Load(), b.ContainsItems.Load()),
		InvalidBufferErrors: b.InvalidBufferErrors.Load(),
	}
}

// avgNanos returns the mean per-item latency.
func avgNanos(total, items int64) int64 {
	if items == 0 {
		return 0
	}
	return total / items
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertBatches       int64
	InsertItems         int64
	InsertPresent       int64
	InsertAvgNanos      int64
	ContainsBatches     int64
	ContainsItems       int64
	ContainsHits        int64
	ContainsAvgNanos    int64
	InvalidBufferErrors int64
}
