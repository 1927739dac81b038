package ringbuffer

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecordOperations(t *testing.T) {
	reg := prometheus.NewRegistry()
	rb := newTestBuffer[int](t, 4, WithMetrics[int](reg, "samples"))
	require.NotNil(t, rb.metrics)

	for i := 0; i < 6; i++ {
		rb.Put(i)
	}
	rb.Pull()
	rb.Pull() // leaves 2 items
	rb.TryPull()
	rb.Pull()
	rb.Pull() // empty, not counted

	m := rb.metrics
	assert.Equal(t, 6.0, testutil.ToFloat64(m.puts))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.pulls))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.overwrites))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.size))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.utilization))

	rb.Put(10)
	rb.Put(11)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.size))
	assert.Equal(t, 0.5, testutil.ToFloat64(m.utilization))

	rb.Reset()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resets))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.size))
}

func TestMetricsRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	newTestBuffer[string](t, 2, WithMetrics[string](reg, "lines"))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, count)

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		require.Len(t, mf.GetMetric(), 1)
		labels := mf.GetMetric()[0].GetLabel()
		require.Len(t, labels, 1)
		assert.Equal(t, "buffer", labels[0].GetName())
		assert.Equal(t, "lines", labels[0].GetValue())
	}
}

func TestMetricsDuplicateName(t *testing.T) {
	reg := prometheus.NewRegistry()
	newTestBuffer[int](t, 2, WithMetrics[int](reg, "dup"))

	rb, err := New[int](2, WithMetrics[int](reg, "dup"))
	require.Error(t, err)
	assert.Nil(t, rb)

	var already prometheus.AlreadyRegisteredError
	assert.True(t, errors.As(err, &already))
	assert.Contains(t, err.Error(), "metrics registration")

	// A failed registration must not leave partial collectors behind.
	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestCloseUnregistersMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	rb, err := New[int](2, WithMetrics[int](reg, "window"))
	require.NoError(t, err)
	rb.Put(1)
	require.NoError(t, rb.Close())

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Operations after Close are no longer exported.
	rb.Put(2)
	assert.Nil(t, rb.metrics)

	again := newTestBuffer[int](t, 2, WithMetrics[int](reg, "window"))
	again.Put(1)
	assert.Equal(t, 1.0, testutil.ToFloat64(again.metrics.puts))
}
