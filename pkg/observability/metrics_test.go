package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopMetrics(t *testing.T) {
	m := NoopMetrics{}
	m.Counter("test", 1)
	m.Gauge("test", 1.0)
	m.Timing("test", time.Second)
}

func TestInMemoryMetrics(t *testing.T) {
	t.Run("counter with tags", func(t *testing.T) {
		m := NewInMemoryMetrics()
		m.Counter(MetricAvailabilityChecks, 1, T("result", "available"))
		m.Counter(MetricAvailabilityChecks, 1, T("result", "blocked"))
		m.Counter(MetricAvailabilityChecks, 1, T("result", "available"))

		assert.Equal(t, int64(2), m.GetCounter(MetricAvailabilityChecks, T("result", "available")))
		assert.Equal(t, int64(1), m.GetCounter(MetricAvailabilityChecks, T("result", "blocked")))
		assert.Len(t, m.Snapshot().Counters, 2)
	})

	t.Run("gauge overwrites", func(t *testing.T) {
		m := NewInMemoryMetrics()
		m.Gauge("breaker", 1)
		m.Gauge("breaker", 2)
		assert.Equal(t, 2.0, m.GetGauge("breaker"))
	})

	t.Run("timings aggregate", func(t *testing.T) {
		m := NewInMemoryMetrics()
		m.Timing("op", time.Millisecond)
		m.Timing("op", 3*time.Millisecond)

		stats := m.GetTiming("op")
		assert.Equal(t, int64(2), stats.Count)
		assert.Equal(t, 4*time.Millisecond, stats.Total)
		assert.Equal(t, 3*time.Millisecond, stats.Max)
		assert.Equal(t, 2*time.Millisecond, stats.Mean())
		assert.Zero(t, m.GetTiming("other").Mean())
	})

	t.Run("repeated timings keep one entry per key", func(t *testing.T) {
		m := NewInMemoryMetrics()
		for i := 0; i < 10000; i++ {
			m.Timing("op", time.Microsecond, T("source", "api"))
		}

		snapshot := m.Snapshot()
		require.Len(t, snapshot.Timings, 1)
		assert.Equal(t, int64(10000), snapshot.Timings["op:source=api"].Count)
		assert.Equal(t, 10*time.Millisecond, snapshot.Timings["op:source=api"].Total)
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		m := NewInMemoryMetrics()
		m.Counter("c", 1)
		m.Gauge("g", 1)

		snapshot := m.Snapshot()
		m.Counter("c", 1)
		snapshot.Gauges["g"] = 5

		assert.Equal(t, int64(1), snapshot.Counters["c"])
		assert.Equal(t, 1.0, m.GetGauge("g"))
	})
}

func TestFormatKey(t *testing.T) {
	assert.Equal(t, "name", formatKey("name", nil))
	assert.Equal(t, "name:a=1:b=2", formatKey("name", []Tag{T("a", "1"), T("b", "2")}))
}

func TestTimer(t *testing.T) {
	m := NewInMemoryMetrics()
	d := StartTimer("check-range").WithMetrics(m).WithTags(T("source", "api")).Stop()

	assert.GreaterOrEqual(t, d, time.Duration(0))
	tags := []Tag{T("source", "api"), T(OperationKey, "check-range")}
	assert.Equal(t, int64(1), m.GetCounter(MetricOperationTotal, tags...))
	assert.Equal(t, int64(1), m.GetTiming(MetricOperationDuration, tags...).Count)
}

func TestHealthRegistry(t *testing.T) {
	t.Run("healthy when empty", func(t *testing.T) {
		r := NewHealthRegistry()
		assert.Equal(t, HealthStatusHealthy, r.Check(context.Background()).Status)
	})

	t.Run("redis failure degrades", func(t *testing.T) {
		r := NewHealthRegistry()
		r.Register("database", DatabaseHealthChecker(func(ctx context.Context) error { return nil }))
		r.Register("redis", RedisHealthChecker(func(ctx context.Context) error { return errors.New("refused") }))

		health := r.Check(context.Background())
		assert.Equal(t, HealthStatusDegraded, health.Status)
		assert.Equal(t, HealthStatusHealthy, health.Checks["database"].Status)
		assert.Contains(t, health.Checks["redis"].Message, "refused")
	})

	t.Run("database failure is unhealthy", func(t *testing.T) {
		r := NewHealthRegistry()
		r.Register("database", DatabaseHealthChecker(func(ctx context.Context) error { return errors.New("down") }))
		r.Register("redis", RedisHealthChecker(func(ctx context.Context) error { return errors.New("refused") }))

		assert.Equal(t, HealthStatusUnhealthy, r.Check(context.Background()).Status)
	})
}
