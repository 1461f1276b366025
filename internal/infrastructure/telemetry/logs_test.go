package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func disabledLogsProvider(t *testing.T) *LoggerProvider {
	t.Helper()
	provider, err := NewLoggerProvider(context.Background(), LogsConfig{
		Enabled:           false,
		CollectorEndpoint: "localhost:4317",
		ServiceName:       "misoft-test",
	}, zap.NewNop())
	require.NoError(t, err)
	return provider
}

func TestLoggerProviderDisabled(t *testing.T) {
	provider := disabledLogsProvider(t)

	assert.False(t, provider.IsEnabled())
	assert.NoError(t, provider.Shutdown(context.Background()))
	assert.NoError(t, provider.ForceFlush(context.Background()))
}

func TestLoggerProviderGetConfig(t *testing.T) {
	cfg := LogsConfig{
		Enabled:           false,
		CollectorEndpoint: "collector:4317",
		ServiceName:       "misoft",
		Insecure:          true,
	}

	provider, err := NewLoggerProvider(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, cfg, provider.GetConfig())
}

func TestNewZapOTELCore(t *testing.T) {
	t.Run("nil provider yields a nop core", func(t *testing.T) {
		core := NewZapOTELCore(ZapBridgeConfig{ServiceName: "misoft"})

		assert.False(t, core.Enabled(zapcore.ErrorLevel))
	})

	t.Run("disabled provider yields a nop core", func(t *testing.T) {
		core := NewZapOTELCore(ZapBridgeConfig{
			ServiceName:    "misoft",
			LoggerProvider: disabledLogsProvider(t),
			Level:          zapcore.InfoLevel,
		})

		assert.False(t, core.Enabled(zapcore.ErrorLevel))
	})
}

func TestLevelFilterCore(t *testing.T) {
	newFiltered := func(min zapcore.Level) (zapcore.Core, *observer.ObservedLogs) {
		inner, observed := observer.New(zapcore.DebugLevel)
		return &levelFilterCore{Core: inner, minLevel: min}, observed
	}

	t.Run("drops entries below the minimum", func(t *testing.T) {
		core, observed := newFiltered(zapcore.WarnLevel)
		log := zap.New(core)

		log.Debug("invisible")
		log.Info("invisible")
		log.Warn("kept")
		log.Error("kept")

		require.Equal(t, 2, observed.Len())
		assert.Equal(t, "kept", observed.All()[0].Message)
	})

	t.Run("respects the inner core's enablement too", func(t *testing.T) {
		inner, observed := observer.New(zapcore.ErrorLevel)
		log := zap.New(&levelFilterCore{Core: inner, minLevel: zapcore.InfoLevel})

		log.Warn("inner core rejects this")
		log.Error("inner core accepts this")

		assert.Equal(t, 1, observed.Len())
	})

	t.Run("With keeps the filter and the fields", func(t *testing.T) {
		core, observed := newFiltered(zapcore.InfoLevel)
		log := zap.New(core).With(zap.String("screen", "invoices"))

		log.Debug("filtered")
		log.Info("logged")

		require.Equal(t, 1, observed.Len())
		entry := observed.All()[0]
		assert.Equal(t, "logged", entry.Message)
		assert.Equal(t, "invoices", entry.ContextMap()["screen"])
	})
}

func TestBridgeLogger(t *testing.T) {
	t.Run("base destination still receives entries", func(t *testing.T) {
		baseCore, observed := observer.New(zapcore.DebugLevel)
		base := zap.New(baseCore)

		bridged := BridgeLogger(base, disabledLogsProvider(t), "misoft", zapcore.InfoLevel)
		bridged.Info("invoice posted", zap.String("number", "INV-001"))

		require.Equal(t, 1, observed.Len())
		entry := observed.All()[0]
		assert.Equal(t, "invoice posted", entry.Message)
		assert.Equal(t, "INV-001", entry.ContextMap()["number"])
	})

	t.Run("errors carry a stacktrace", func(t *testing.T) {
		baseCore, observed := observer.New(zapcore.DebugLevel)
		bridged := BridgeLogger(zap.New(baseCore), disabledLogsProvider(t), "misoft", zapcore.InfoLevel)

		bridged.Error("upstream unreachable")

		require.Equal(t, 1, observed.Len())
		assert.NotEmpty(t, observed.All()[0].Stack)
	})
}
