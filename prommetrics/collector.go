// Package prommetrics exports filter metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	c := prommetrics.New("parquet")
//	reg.MustRegister(c)
//	f := sbbf.New(sbbf.WithMetricsCollector(c))
package prommetrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/sbbf"
)

// Collector implements sbbf.MetricsCollector on top of Prometheus counters
// and histograms. It is itself a prometheus.Collector, so it can be
// registered with any registry.
type Collector struct {
	keys          *prometheus.CounterVec
	results       *prometheus.CounterVec
	batchLatency  *prometheus.HistogramVec
	invalidBuffer *prometheus.CounterVec
}

var _ sbbf.MetricsCollector = (*Collector)(nil)
var _ prometheus.Collector = (*Collector)(nil)

// New creates a Collector whose metric names start with namespace.
func New(namespace string) *Collector {
	return &Collector{
		keys: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sbbf",
			Name:      "keys_total",
			Help:      "Hashes passed to batch operations.",
		}, []string{"op"}),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sbbf",
			Name:      "positive_total",
			Help:      "Hashes reported present: already inserted for insert, probable hit for contains.",
		}, []string{"op"}),
		batchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sbbf",
			Name:      "batch_duration_seconds",
			Help:      "Wall time of batch and parallel operations.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"op"}),
		invalidBuffer: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sbbf",
			Name:      "invalid_buffer_total",
			Help:      "Buffers rejected by checked operations.",
		}, []string{"reason"}),
	}
}

// RecordInsertBatch implements sbbf.MetricsCollector.
func (c *Collector) RecordInsertBatch(count, present int, duration time.Duration) {
	c.record("insert", count, present, duration)
}

// RecordContainsBatch implements sbbf.MetricsCollector.
func (c *Collector) RecordContainsBatch(count, hits int, duration time.Duration) {
	c.record("contains", count, hits, duration)
}

func (c *Collector) record(op string, count, positive int, duration time.Duration) {
	c.keys.WithLabelValues(op).Add(float64(count))
	c.results.WithLabelValues(op).Add(float64(positive))
	c.batchLatency.WithLabelValues(op).Observe(duration.Seconds())
}

// RecordInvalidBuffer implements sbbf.MetricsCollector.
func (c *Collector) RecordInvalidBuffer(err error) {
	c.invalidBuffer.WithLabelValues(Reason(err)).Inc()
}

// Reason maps a buffer validation error to a short label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, sbbf.ErrEmptyBuffer):
		return "empty"
	case errors.Is(err, sbbf.ErrMisalignedBuffer):
		return "misaligned"
	case errors.Is(err, sbbf.ErrBufferLength):
		return "length"
	case errors.Is(err, sbbf.ErrBufferTooLarge):
		return "too_large"
	default:
		return "other"
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.keys.Describe(ch)
	c.results.Describe(ch)
	c.batchLatency.Describe(ch)
	c.invalidBuffer.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.keys.Collect(ch)
	c.results.Collect(ch)
	c.batchLatency.Collect(ch)
	c.invalidBuffer.Collect(ch)
}
