package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// BusinessMetrics provides business metrics for the MISoft dashboard service.
// It tracks login activity, document printing, report generation, and the
// number of live dashboard sessions.
type BusinessMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	// Counter metrics (monotonically increasing)
	loginTotal            *Counter
	documentsPrintedTotal *Counter
	reportsGeneratedTotal *Counter

	// Gauge metrics (point-in-time values)
	activeSessions *Gauge

	// Periodic collector
	stopChan    chan struct{}
	stopOnce    sync.Once
	collectOnce sync.Once

	// Data provider for periodic collection
	sessionCounter SessionCounter
}

// SessionCounter reports how many live sessions a store currently holds.
// This interface lets the telemetry layer poll session state without
// depending on the session package directly.
type SessionCounter interface {
	ActiveSessions(ctx context.Context) (int64, error)
}

// BusinessMetricsConfig holds configuration for business metrics.
type BusinessMetricsConfig struct {
	Meter           metric.Meter
	Logger          *zap.Logger
	CollectInterval time.Duration // Default: 1 minute
	SessionCounter  SessionCounter
}

// NewBusinessMetrics creates a new BusinessMetrics instance.
func NewBusinessMetrics(cfg BusinessMetricsConfig) (*BusinessMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bm := &BusinessMetrics{
		meter:          cfg.Meter,
		logger:         logger,
		stopChan:       make(chan struct{}),
		sessionCounter: cfg.SessionCounter,
	}

	// Initialize counter metrics
	var err error

	bm.loginTotal, err = NewCounter(
		cfg.Meter,
		"misoft_login_total",
		"Total number of login attempts",
		"{logins}",
	)
	if err != nil {
		return nil, err
	}

	bm.documentsPrintedTotal, err = NewCounter(
		cfg.Meter,
		"misoft_documents_printed_total",
		"Total number of documents rendered to PDF",
		"{documents}",
	)
	if err != nil {
		return nil, err
	}

	bm.reportsGeneratedTotal, err = NewCounter(
		cfg.Meter,
		"misoft_reports_generated_total",
		"Total number of financial reports generated",
		"{reports}",
	)
	if err != nil {
		return nil, err
	}

	// Session gauge
	bm.activeSessions, err = NewGauge(
		cfg.Meter,
		"misoft_active_sessions",
		"Number of live dashboard sessions",
		"{sessions}",
	)
	if err != nil {
		return nil, err
	}

	return bm, nil
}

// =============================================================================
// Login Metrics
// =============================================================================

// LoginResult labels the outcome of a login attempt for metrics.
type LoginResult string

const (
	LoginSucceeded LoginResult = "success"
	LoginFailed    LoginResult = "failure"
)

// RecordLogin records a login attempt and its outcome.
// This should be called from the application layer after the core API verdict.
func (bm *BusinessMetrics) RecordLogin(ctx context.Context, result LoginResult) {
	bm.loginTotal.Inc(ctx, AttrLoginResult.String(string(result)))
}

// =============================================================================
// Printing Metrics
// =============================================================================

// DocumentType labels the kind of document rendered to PDF.
type DocumentType string

const (
	DocumentInvoice DocumentType = "invoice"
	DocumentVoucher DocumentType = "voucher"
)

// RecordDocumentPrinted records a successful PDF render.
func (bm *BusinessMetrics) RecordDocumentPrinted(ctx context.Context, docType DocumentType) {
	bm.documentsPrintedTotal.Inc(ctx, AttrDocumentType.String(string(docType)))
}

// =============================================================================
// Report Metrics
// =============================================================================

// RecordReportGenerated records a financial report build.
// The report name should be a fixed identifier such as "profit_loss",
// never user input, to keep cardinality bounded.
func (bm *BusinessMetrics) RecordReportGenerated(ctx context.Context, report string) {
	bm.reportsGeneratedTotal.Inc(ctx, AttrReportName.String(report))
}

// =============================================================================
// Session Metrics
// =============================================================================

// RecordActiveSessions records the current number of live sessions.
// This is a gauge metric, normally updated by the periodic collector.
func (bm *BusinessMetrics) RecordActiveSessions(ctx context.Context, count int64) {
	bm.activeSessions.Record(ctx, count)
}

// =============================================================================
// Periodic Collection
// =============================================================================

// StartPeriodicCollection starts periodic collection of gauge metrics.
// It polls the session store every interval (default: 1 minute).
// This is non-blocking - use Stop() to stop collection.
func (bm *BusinessMetrics) StartPeriodicCollection(ctx context.Context, interval time.Duration) {
	bm.collectOnce.Do(func() {
		if interval <= 0 {
			interval = time.Minute
		}

		go bm.runPeriodicCollection(ctx, interval)
	})
}

// runPeriodicCollection runs the periodic collection loop.
func (bm *BusinessMetrics) runPeriodicCollection(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Collect immediately on start
	bm.collectSessionMetrics(ctx)

	for {
		select {
		case <-bm.stopChan:
			bm.logger.Info("Stopping periodic business metrics collection")
			return
		case <-ctx.Done():
			bm.logger.Info("Context cancelled, stopping periodic business metrics collection")
			return
		case <-ticker.C:
			bm.collectSessionMetrics(ctx)
		}
	}
}

// collectSessionMetrics polls the session store and records the gauge.
func (bm *BusinessMetrics) collectSessionMetrics(ctx context.Context) {
	if bm.sessionCounter == nil {
		bm.logger.Debug("No session counter configured, skipping session metrics collection")
		return
	}

	count, err := bm.sessionCounter.ActiveSessions(ctx)
	if err != nil {
		bm.logger.Warn("Failed to count active sessions", zap.Error(err))
		return
	}

	bm.RecordActiveSessions(ctx, count)
}

// Stop stops the periodic collection.
func (bm *BusinessMetrics) Stop() {
	bm.stopOnce.Do(func() {
		close(bm.stopChan)
	})
}

// =============================================================================
// Error Types
// =============================================================================

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewBusinessMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}
