package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedEngine(level zap.AtomicLevel) (*gin.Engine, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(level.Level())
	log := zap.New(core)

	engine := gin.New()
	engine.Use(Recovery(log))
	engine.Use(GinMiddleware(log))
	return engine, logs
}

func TestGinMiddlewareLogsRequest(t *testing.T) {
	engine, logs := newObservedEngine(zap.NewAtomicLevelAt(zap.InfoLevel))
	engine.GET("/api/v1/partners", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/partners?page=2", nil))

	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/api/v1/partners", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "page=2", fields["query"])
}

func TestGinMiddlewareWarnsOnClientError(t *testing.T) {
	engine, logs := newObservedEngine(zap.NewAtomicLevelAt(zap.InfoLevel))
	engine.GET("/boom", func(c *gin.Context) {
		c.Status(http.StatusBadRequest)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
}

func TestGinMiddlewareQuietsProbes(t *testing.T) {
	engine, logs := newObservedEngine(zap.NewAtomicLevelAt(zap.InfoLevel))
	engine.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	// Probe logs at debug, which the info-level core drops
	assert.Empty(t, logs.FilterMessage("HTTP request").All())
}

func TestRecoveryAnswers500(t *testing.T) {
	engine, logs := newObservedEngine(zap.NewAtomicLevelAt(zap.InfoLevel))
	engine.GET("/panic", func(c *gin.Context) {
		panic("broken screen")
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, logs.FilterMessage("Panic recovered").All(), 1)
}

func TestGinLoggerFallsBackToNop(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.NotNil(t, GinLogger(c))
}
