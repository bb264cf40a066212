package prommetrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sbbf"
	"github.com/hupe1980/sbbf/testutil"
)

func counterValue(t *testing.T, vec *prometheus.CounterVec, label string) float64 {
	t.Helper()
	metric := &dto.Metric{}
	require.NoError(t, vec.WithLabelValues(label).Write(metric))
	return metric.GetCounter().GetValue()
}

func histogramCount(t *testing.T, vec *prometheus.HistogramVec, label string) uint64 {
	t.Helper()
	metric := &dto.Metric{}
	m, ok := vec.WithLabelValues(label).(prometheus.Metric)
	require.True(t, ok)
	require.NoError(t, m.Write(metric))
	return metric.GetHistogram().GetSampleCount()
}

func TestCollector(t *testing.T) {
	c := New("test")
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(c))

	f := sbbf.New(sbbf.WithMetricsCollector(c))
	b, err := sbbf.NewBuffer(testutil.AlignedBuffer(sbbf.NumBytes(16, 1000)))
	require.NoError(t, err)

	members := testutil.KeyHashes("member", 1000)
	require.Zero(t, f.InsertBatch(b, members[:500]))
	present, err := f.InsertParallel(context.Background(), b, members, 2)
	require.NoError(t, err)
	f.ContainsBatch(b, members, nil)

	_, err = f.Contains(testutil.MisalignedBuffer(64, 4), 1)
	require.Error(t, err)
	_, err = f.Insert(testutil.AlignedBuffer(33), 1)
	require.Error(t, err)
	_, err = f.Insert(nil, 1)
	require.Error(t, err)

	require.Equal(t, float64(1500), counterValue(t, c.keys, "insert"))
	require.Equal(t, float64(present), counterValue(t, c.results, "insert"))
	require.GreaterOrEqual(t, present, 500)
	require.Equal(t, float64(1000), counterValue(t, c.keys, "contains"))
	require.Equal(t, float64(1000), counterValue(t, c.results, "contains"))
	require.Equal(t, uint64(2), histogramCount(t, c.batchLatency, "insert"))
	require.Equal(t, uint64(1), histogramCount(t, c.batchLatency, "contains"))

	require.Equal(t, float64(1), counterValue(t, c.invalidBuffer, "misaligned"))
	require.Equal(t, float64(1), counterValue(t, c.invalidBuffer, "length"))
	require.Equal(t, float64(1), counterValue(t, c.invalidBuffer, "empty"))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool)
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	require.True(t, names["test_sbbf_keys_total"])
	require.True(t, names["test_sbbf_batch_duration_seconds"])
	require.True(t, names["test_sbbf_invalid_buffer_total"])
}

func TestReason(t *testing.T) {
	_, err := sbbf.NewBuffer(testutil.AlignedBuffer(48))
	require.Equal(t, "length", Reason(err))
	require.Equal(t, "too_large", Reason(sbbf.ErrBufferTooLarge))
	require.Equal(t, "other", Reason(context.Canceled))
}
