package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// RedisPoolStatsProvider exposes go-redis connection pool statistics.
// Both *redis.Client and the Redis-backed session store satisfy it.
type RedisPoolStatsProvider interface {
	PoolStats() *redis.PoolStats
}

// RedisMetricsConfig holds configuration for Redis pool metrics collection.
type RedisMetricsConfig struct {
	// Enabled controls whether metrics collection is active.
	Enabled bool
	// PoolStatsInterval defines how often to sample pool stats (default: 15s).
	PoolStatsInterval time.Duration
}

// DefaultRedisMetricsConfig returns default configuration for Redis metrics.
func DefaultRedisMetricsConfig() RedisMetricsConfig {
	return RedisMetricsConfig{
		Enabled:           true,
		PoolStatsInterval: 15 * time.Second,
	}
}

// RedisMetrics samples connection pool statistics from the session store's
// Redis client.
type RedisMetrics struct {
	poolConnections *Gauge // redis_pool_connections with state label

	config   RedisMetricsConfig
	logger   *zap.Logger
	pool     RedisPoolStatsProvider
	stopCh   chan struct{}
	wg       sync.WaitGroup
	mu       sync.RWMutex
	stopOnce sync.Once // Ensures Stop() is idempotent
}

// NewRedisMetrics creates a new RedisMetrics instance with the given meter.
func NewRedisMetrics(meter metric.Meter, cfg RedisMetricsConfig, logger *zap.Logger) (*RedisMetrics, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.PoolStatsInterval == 0 {
		cfg.PoolStatsInterval = 15 * time.Second
	}

	poolConnections, err := NewGauge(
		meter,
		"redis_pool_connections",
		"Number of connections in the Redis pool by state",
		"{connection}",
	)
	if err != nil {
		return nil, err
	}

	return &RedisMetrics{
		poolConnections: poolConnections,
		config:          cfg,
		logger:          logger,
		stopCh:          make(chan struct{}),
	}, nil
}

// SetPool sets the pool stats provider for collection.
// This must be called before StartPoolStatsCollection.
func (m *RedisMetrics) SetPool(pool RedisPoolStatsProvider) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pool = pool
}

// StartPoolStatsCollection starts a goroutine that periodically samples
// connection pool statistics. Call Stop() to terminate.
func (m *RedisMetrics) StartPoolStatsCollection(ctx context.Context) {
	m.mu.RLock()
	pool := m.pool
	m.mu.RUnlock()

	if pool == nil {
		m.logger.Warn("Cannot start pool stats collection: pool not set")
		return
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		ticker := time.NewTicker(m.config.PoolStatsInterval)
		defer ticker.Stop()

		// Collect immediately on start
		m.collectPoolStats(ctx)

		for {
			select {
			case <-ticker.C:
				m.collectPoolStats(ctx)
			case <-m.stopCh:
				m.logger.Debug("Stopping Redis pool stats collection")
				return
			case <-ctx.Done():
				m.logger.Debug("Redis pool stats collection context cancelled")
				return
			}
		}
	}()

	m.logger.Info("Started Redis connection pool stats collection",
		zap.Duration("interval", m.config.PoolStatsInterval),
	)
}

// collectPoolStats samples and records connection pool statistics.
func (m *RedisMetrics) collectPoolStats(ctx context.Context) {
	m.mu.RLock()
	pool := m.pool
	m.mu.RUnlock()

	if pool == nil {
		return
	}

	stats := pool.PoolStats()

	// TotalConns and IdleConns are current states. Hits, Misses, Timeouts
	// and StaleConns are cumulative, so we don't gauge them here.
	idle := int64(stats.IdleConns)
	total := int64(stats.TotalConns)
	m.poolConnections.Record(ctx, idle, AttrPoolState.String("idle"))
	m.poolConnections.Record(ctx, total-idle, AttrPoolState.String("in_use"))
	m.poolConnections.Record(ctx, total, AttrPoolState.String("open"))
}

// Stop stops the pool stats collection goroutine. Safe to call multiple times.
func (m *RedisMetrics) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
		m.wg.Wait()
		m.logger.Debug("Redis metrics stopped")
	})
}

// =============================================================================
// Helper Functions for Integration
// =============================================================================

// RegisterRedisMetrics creates Redis pool metrics and starts collection.
// It returns the RedisMetrics instance for lifecycle management (call Stop()
// on shutdown), or nil when metrics are disabled or the provider is absent.
func RegisterRedisMetrics(ctx context.Context, meterProvider *MeterProvider, cfg RedisMetricsConfig, pool RedisPoolStatsProvider, logger *zap.Logger) (*RedisMetrics, error) {
	if !cfg.Enabled || pool == nil {
		logger.Debug("Redis metrics disabled, skipping registration")
		return nil, nil
	}

	if meterProvider == nil || !meterProvider.IsEnabled() {
		logger.Debug("MeterProvider not available, skipping Redis metrics")
		return nil, nil
	}

	meter := meterProvider.Meter("redis.client")

	metrics, err := NewRedisMetrics(meter, cfg, logger)
	if err != nil {
		return nil, err
	}

	metrics.SetPool(pool)
	metrics.StartPoolStatsCollection(ctx)

	return metrics, nil
}
