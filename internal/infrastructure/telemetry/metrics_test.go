package telemetry_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap/zaptest"
)

func disabledMeterProvider(t *testing.T) *telemetry.MeterProvider {
	t.Helper()
	mp, err := telemetry.NewMeterProvider(context.Background(), telemetry.MetricsConfig{
		Enabled:           false,
		CollectorEndpoint: "localhost:14317",
		ServiceName:       "test-service",
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	return mp
}

// collectingMeter returns a meter backed by a manual reader so tests can
// assert on the measurements that instruments actually recorded.
func collectingMeter(t *testing.T) (metric.Meter, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})
	return provider.Meter("test"), reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) []metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	return rm.ScopeMetrics[0].Metrics
}

func TestMeterProviderDisabled(t *testing.T) {
	ctx := context.Background()
	mp := disabledMeterProvider(t)

	assert.False(t, mp.IsEnabled())
	assert.Equal(t, "test-service", mp.GetConfig().ServiceName)

	t.Run("meter is usable", func(t *testing.T) {
		meter := mp.Meter("anything")
		require.NotNil(t, meter)
		counter, err := telemetry.NewCounter(meter, "noop_total", "Goes nowhere", "1")
		require.NoError(t, err)
		counter.Inc(ctx)
	})

	t.Run("lifecycle is a no-op", func(t *testing.T) {
		assert.NoError(t, mp.ForceFlush(ctx))

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		assert.NoError(t, mp.Shutdown(cancelled))
	})
}

func TestCounter(t *testing.T) {
	ctx := context.Background()
	meter, reader := collectingMeter(t)

	counter, err := telemetry.NewCounter(meter, "requests_total", "Requests served", "{request}")
	require.NoError(t, err)

	counter.Add(ctx, 5, attribute.String("method", "GET"))
	counter.Inc(ctx, attribute.String("method", "GET"))
	counter.Inc(ctx, attribute.String("method", "POST"))

	metrics := collect(t, reader)
	require.Len(t, metrics, 1)
	assert.Equal(t, "requests_total", metrics[0].Name)

	sum, ok := metrics[0].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 2)

	byMethod := map[string]int64{}
	for _, dp := range sum.DataPoints {
		m, _ := dp.Attributes.Value("method")
		byMethod[m.AsString()] = dp.Value
	}
	assert.Equal(t, int64(6), byMethod["GET"])
	assert.Equal(t, int64(1), byMethod["POST"])
}

func TestHistogram(t *testing.T) {
	ctx := context.Background()

	t.Run("record with custom boundaries", func(t *testing.T) {
		meter, reader := collectingMeter(t)
		hist, err := telemetry.NewHistogram(meter, telemetry.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Description: "HTTP request duration",
			Unit:        "s",
			Boundaries:  telemetry.HTTPDurationBuckets,
		})
		require.NoError(t, err)

		hist.Record(ctx, 0.005, telemetry.AttrHTTPMethod.String("GET"))
		hist.Record(ctx, 0.5, telemetry.AttrHTTPMethod.String("GET"))
		hist.RecordDuration(ctx, 100*time.Millisecond, telemetry.AttrHTTPMethod.String("GET"))

		metrics := collect(t, reader)
		require.Len(t, metrics, 1)

		data, ok := metrics[0].Data.(metricdata.Histogram[float64])
		require.True(t, ok)
		require.Len(t, data.DataPoints, 1)

		dp := data.DataPoints[0]
		assert.Equal(t, uint64(3), dp.Count)
		assert.InDelta(t, 0.605, dp.Sum, 1e-9)
		assert.Equal(t, telemetry.HTTPDurationBuckets, dp.Bounds)
	})

	t.Run("sdk defaults when no boundaries given", func(t *testing.T) {
		meter, reader := collectingMeter(t)
		hist, err := telemetry.NewHistogram(meter, telemetry.HistogramOpts{
			Name:        "plain_duration_seconds",
			Description: "Duration without explicit buckets",
			Unit:        "s",
		})
		require.NoError(t, err)

		hist.Record(ctx, 1.5)

		metrics := collect(t, reader)
		require.Len(t, metrics, 1)
		data, ok := metrics[0].Data.(metricdata.Histogram[float64])
		require.True(t, ok)
		require.Len(t, data.DataPoints, 1)
		assert.NotEqual(t, telemetry.HTTPDurationBuckets, data.DataPoints[0].Bounds)
	})

	t.Run("RecordDuration converts to seconds", func(t *testing.T) {
		meter, reader := collectingMeter(t)
		hist, err := telemetry.NewHistogram(meter, telemetry.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Description: "Core API call duration",
			Unit:        "s",
			Boundaries:  telemetry.UpstreamDurationBuckets,
		})
		require.NoError(t, err)

		hist.RecordDuration(ctx, 250*time.Millisecond)

		metrics := collect(t, reader)
		data := metrics[0].Data.(metricdata.Histogram[float64])
		assert.InDelta(t, 0.25, data.DataPoints[0].Sum, 1e-9)
	})
}

func TestGauges(t *testing.T) {
	ctx := context.Background()

	t.Run("int gauge keeps last value", func(t *testing.T) {
		meter, reader := collectingMeter(t)
		gauge, err := telemetry.NewGauge(meter, "active_sessions", "Sessions currently live", "{session}")
		require.NoError(t, err)

		gauge.Record(ctx, 10)
		gauge.Record(ctx, 7)

		metrics := collect(t, reader)
		require.Len(t, metrics, 1)
		data, ok := metrics[0].Data.(metricdata.Gauge[int64])
		require.True(t, ok)
		require.Len(t, data.DataPoints, 1)
		assert.Equal(t, int64(7), data.DataPoints[0].Value)
	})

	t.Run("float gauge", func(t *testing.T) {
		meter, reader := collectingMeter(t)
		gauge, err := telemetry.NewFloatGauge(meter, "pool_utilization_ratio", "Connection pool utilization", "1")
		require.NoError(t, err)

		gauge.Record(ctx, 0.42, telemetry.AttrPoolState.String("in_use"))

		metrics := collect(t, reader)
		data, ok := metrics[0].Data.(metricdata.Gauge[float64])
		require.True(t, ok)
		assert.InDelta(t, 0.42, data.DataPoints[0].Value, 1e-9)
	})
}

func TestAttributeKeys(t *testing.T) {
	assert.Equal(t, "user_id", string(telemetry.AttrUserID))
	assert.Equal(t, "http.method", string(telemetry.AttrHTTPMethod))
	assert.Equal(t, "http.status_code", string(telemetry.AttrHTTPStatusCode))
	assert.Equal(t, "http.route", string(telemetry.AttrHTTPRoute))
	assert.Equal(t, "upstream.operation", string(telemetry.AttrUpstreamOperation))
	assert.Equal(t, "upstream.status_class", string(telemetry.AttrUpstreamStatusClass))
	assert.Equal(t, "redis.pool.state", string(telemetry.AttrPoolState))
	assert.Equal(t, "login_result", string(telemetry.AttrLoginResult))
	assert.Equal(t, "document_type", string(telemetry.AttrDocumentType))
	assert.Equal(t, "report_name", string(telemetry.AttrReportName))
}

func TestBucketBoundaries(t *testing.T) {
	// Buckets must stay sorted or the SDK rejects the instrument.
	for name, buckets := range map[string][]float64{
		"http":     telemetry.HTTPDurationBuckets,
		"upstream": telemetry.UpstreamDurationBuckets,
		"small":    telemetry.SmallDurationBuckets,
	} {
		assert.True(t, sort.Float64sAreSorted(buckets), "%s buckets not sorted", name)
	}

	// Inbound buckets reach below the upstream ones; a local cache hit is
	// faster than anything that crosses the network.
	assert.Less(t, telemetry.HTTPDurationBuckets[0], telemetry.UpstreamDurationBuckets[0])
	assert.Less(t, telemetry.SmallDurationBuckets[0], telemetry.HTTPDurationBuckets[0])
}
