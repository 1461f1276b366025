package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// UpstreamMetricsConfig holds configuration for core API client metrics.
type UpstreamMetricsConfig struct {
	// Enabled controls whether metrics collection is active.
	Enabled bool
	// SlowCallThreshold defines the threshold for slow call detection (default: 2s).
	SlowCallThreshold time.Duration
}

// DefaultUpstreamMetricsConfig returns default configuration for upstream metrics.
func DefaultUpstreamMetricsConfig() UpstreamMetricsConfig {
	return UpstreamMetricsConfig{
		Enabled:           true,
		SlowCallThreshold: 2 * time.Second,
	}
}

// UpstreamMetrics holds all core API client metrics instruments.
type UpstreamMetrics struct {
	requestTotal    *Counter   // upstream_request_total
	requestDuration *Histogram // upstream_request_duration_seconds
	slowCallTotal   *Counter   // upstream_slow_request_total

	config UpstreamMetricsConfig
	logger *zap.Logger
}

// NewUpstreamMetrics creates a new UpstreamMetrics instance with the given meter.
func NewUpstreamMetrics(meter metric.Meter, cfg UpstreamMetricsConfig, logger *zap.Logger) (*UpstreamMetrics, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.SlowCallThreshold == 0 {
		cfg.SlowCallThreshold = 2 * time.Second
	}

	requestTotal, err := NewCounter(
		meter,
		"upstream_request_total",
		"Total number of core API calls by operation and status class",
		"{request}",
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := NewHistogram(meter, HistogramOpts{
		Name:        "upstream_request_duration_seconds",
		Description: "Core API call latency distribution in seconds",
		Unit:        "s",
		Boundaries:  UpstreamDurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	slowCallTotal, err := NewCounter(
		meter,
		"upstream_slow_request_total",
		"Total number of slow core API calls (>2s by default)",
		"{request}",
	)
	if err != nil {
		return nil, err
	}

	return &UpstreamMetrics{
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		slowCallTotal:   slowCallTotal,
		config:          cfg,
		logger:          logger,
	}, nil
}

// RecordCall records one round trip to the core API.
// A statusCode of 0 means the call never produced a response (transport failure).
func (m *UpstreamMetrics) RecordCall(ctx context.Context, operation string, statusCode int, duration time.Duration) {
	if operation == "" {
		operation = "unknown"
	}

	m.requestTotal.Inc(ctx,
		AttrUpstreamOperation.String(operation),
		AttrUpstreamStatusClass.String(StatusClass(statusCode)),
	)

	m.requestDuration.RecordDuration(ctx, duration, AttrUpstreamOperation.String(operation))

	if duration > m.config.SlowCallThreshold {
		m.slowCallTotal.Inc(ctx, AttrUpstreamOperation.String(operation))
	}
}

// StatusClass groups an HTTP status code into its class ("2xx" through "5xx").
// Code 0 maps to "transport" for calls that never reached the upstream.
func StatusClass(statusCode int) string {
	switch {
	case statusCode == 0:
		return "transport"
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500:
		return "5xx"
	default:
		return "other"
	}
}

// =============================================================================
// Helper Functions for Integration
// =============================================================================

// RegisterUpstreamMetrics creates core API client metrics from a meter provider.
// It returns nil without error when metrics are disabled, so callers can wire
// the result unconditionally.
func RegisterUpstreamMetrics(meterProvider *MeterProvider, cfg UpstreamMetricsConfig, logger *zap.Logger) (*UpstreamMetrics, error) {
	if !cfg.Enabled {
		logger.Debug("Upstream metrics disabled, skipping registration")
		return nil, nil
	}

	if meterProvider == nil || !meterProvider.IsEnabled() {
		logger.Debug("MeterProvider not available, skipping upstream metrics")
		return nil, nil
	}

	meter := meterProvider.Meter("upstream.client")

	metrics, err := NewUpstreamMetrics(meter, cfg, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Upstream metrics registered",
		zap.Duration("slow_call_threshold", cfg.SlowCallThreshold),
	)

	return metrics, nil
}
