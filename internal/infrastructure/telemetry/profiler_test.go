package telemetry_test

import (
	"sync"
	"testing"

	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestProfilerDisabled(t *testing.T) {
	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:         false,
		ServerAddress:   "http://localhost:4040",
		ApplicationName: "test-service",
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NotNil(t, profiler)

	assert.False(t, profiler.IsEnabled())
	assert.Equal(t, "test-service", profiler.GetConfig().ApplicationName)

	t.Run("stop is a no-op and idempotent", func(t *testing.T) {
		assert.NoError(t, profiler.Stop())
		assert.NoError(t, profiler.Stop())
	})

	t.Run("concurrent stop is safe", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, profiler.Stop())
			}()
		}
		wg.Wait()
	})
}

func TestProfilerConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     telemetry.ProfilerConfig
		wantErr string
	}{
		{
			name: "missing server address",
			cfg: telemetry.ProfilerConfig{
				Enabled:         true,
				ApplicationName: "test-service",
			},
			wantErr: "server address is required",
		},
		{
			name: "missing application name",
			cfg: telemetry.ProfilerConfig{
				Enabled:       true,
				ServerAddress: "http://localhost:4040",
			},
			wantErr: "application name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiler, err := telemetry.NewProfiler(tt.cfg, zaptest.NewLogger(t))
			require.Error(t, err)
			assert.Nil(t, profiler)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("disabled config skips validation", func(t *testing.T) {
		profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{Enabled: false}, zaptest.NewLogger(t))
		require.NoError(t, err)
		assert.False(t, profiler.IsEnabled())
	})
}

func TestProfilerConfigRoundTrip(t *testing.T) {
	cfg := telemetry.ProfilerConfig{
		Enabled:              false,
		ServerAddress:        "http://pyroscope:4040",
		ApplicationName:      "misoft-dashboard",
		ProfileCPU:           true,
		ProfileInuseSpace:    true,
		ProfileGoroutines:    true,
		MutexProfileFraction: 10,
		BlockProfileRate:     10,
		DisableGCRuns:        true,
	}

	profiler, err := telemetry.NewProfiler(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	got := profiler.GetConfig()
	assert.Equal(t, cfg, got)
}
