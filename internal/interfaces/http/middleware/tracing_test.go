package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/session"
)

func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
	})

	return sr
}

// requestSpan finds the server span otelgin opened for GET /test
func requestSpan(t *testing.T, sr *tracetest.SpanRecorder) sdktrace.ReadOnlySpan {
	t.Helper()
	for _, span := range sr.Ended() {
		if span.Name() == "GET /test" {
			return span
		}
	}
	t.Fatal("request span not recorded")
	return nil
}

func spanAttr(span sdktrace.ReadOnlySpan, key string) (string, bool) {
	for _, attr := range span.Attributes() {
		if string(attr.Key) == key {
			return attr.Value.AsString(), true
		}
	}
	return "", false
}

func serveTraced(t *testing.T, status int, extra ...gin.HandlerFunc) *tracetest.SpanRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sr := setupTestTracer(t)

	router := gin.New()
	router.Use(TracingWithConfig(TracingConfig{Enabled: true, ServiceName: "misoft-test"}))
	router.Use(SpanErrorMarker())
	router.Use(extra...)
	router.GET("/test", func(c *gin.Context) {
		c.JSON(status, gin.H{})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	require.Equal(t, status, w.Code)

	return sr
}

func TestTracingWithConfig(t *testing.T) {
	t.Run("disabled config adds no span", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		sr := setupTestTracer(t)

		router := gin.New()
		router.Use(TracingWithConfig(TracingConfig{Enabled: false}))
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, sr.Ended())
	})

	t.Run("enabled config records a server span per request", func(t *testing.T) {
		sr := serveTraced(t, http.StatusOK)
		span := requestSpan(t, sr)
		assert.Equal(t, "GET /test", span.Name())
	})
}

func TestTracingAttributeInjector(t *testing.T) {
	t.Run("records the request ID", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		sr := setupTestTracer(t)

		router := gin.New()
		router.Use(RequestID())
		router.Use(TracingWithConfig(TracingConfig{Enabled: true, ServiceName: "misoft-test"}))
		router.Use(TracingAttributeInjector())
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-ID", "trace-req-123")
		router.ServeHTTP(w, req)

		got, ok := spanAttr(requestSpan(t, sr), "request_id")
		require.True(t, ok, "request_id attribute missing")
		assert.Equal(t, "trace-req-123", got)
	})

	t.Run("records the session user after authentication", func(t *testing.T) {
		userID := uuid.New()
		fakeSession := func(c *gin.Context) {
			c.Set(SessionKey, &session.Session{ID: "sess-1", UserID: userID})
			c.Next()
		}
		sr := serveTraced(t, http.StatusOK, fakeSession, TracingAttributeInjector())

		got, ok := spanAttr(requestSpan(t, sr), "user_id")
		require.True(t, ok, "user_id attribute missing")
		assert.Equal(t, userID.String(), got)
	})

	t.Run("survives a missing span", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		otel.SetTracerProvider(noop.NewTracerProvider())

		router := gin.New()
		router.Use(TracingAttributeInjector())
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSpanErrorMarker(t *testing.T) {
	errorCases := []struct {
		status      int
		description string
	}{
		{http.StatusBadRequest, "Bad Request"},
		{http.StatusUnauthorized, "Unauthorized"},
		{http.StatusForbidden, "Forbidden"},
		{http.StatusNotFound, "Not Found"},
	}

	for _, tc := range errorCases {
		t.Run(tc.description, func(t *testing.T) {
			sr := serveTraced(t, tc.status)
			span := requestSpan(t, sr)

			assert.Equal(t, codes.Error, span.Status().Code)
			assert.Equal(t, tc.description, span.Status().Description)
		})
	}

	t.Run("500 is an error regardless of who marks it", func(t *testing.T) {
		// otelgin may set the status before our marker runs, so only the
		// code is asserted.
		sr := serveTraced(t, http.StatusInternalServerError)
		assert.Equal(t, codes.Error, requestSpan(t, sr).Status().Code)
	})

	t.Run("2xx leaves the span status alone", func(t *testing.T) {
		sr := serveTraced(t, http.StatusOK)
		assert.NotEqual(t, codes.Error, requestSpan(t, sr).Status().Code)
	})

	t.Run("survives a missing span", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		otel.SetTracerProvider(noop.NewTracerProvider())

		router := gin.New()
		router.Use(SpanErrorMarker())
		router.GET("/test", func(c *gin.Context) {
			c.Status(http.StatusInternalServerError)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestSpanRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	runWith := func(setup func(*http.Request), pre ...gin.HandlerFunc) string {
		var got string
		router := gin.New()
		router.Use(pre...)
		router.GET("/test", func(c *gin.Context) {
			got = spanRequestID(c)
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		if setup != nil {
			setup(req)
		}
		router.ServeHTTP(httptest.NewRecorder(), req)
		return got
	}

	t.Run("prefers the context value", func(t *testing.T) {
		got := runWith(
			func(r *http.Request) { r.Header.Set("X-Request-ID", "from-header") },
			func(c *gin.Context) { c.Set(RequestIDKey, "from-context"); c.Next() },
		)
		assert.Equal(t, "from-context", got)
	})

	t.Run("falls back to the header", func(t *testing.T) {
		got := runWith(func(r *http.Request) { r.Header.Set("X-Request-ID", "from-header") })
		assert.Equal(t, "from-header", got)
	})

	t.Run("truncates oversized header values", func(t *testing.T) {
		got := runWith(func(r *http.Request) {
			r.Header.Set("X-Request-ID", strings.Repeat("x", 300))
		})
		assert.Len(t, got, MaxRequestIDLength)
	})
}

func TestDefaultTracingConfig(t *testing.T) {
	cfg := DefaultTracingConfig()

	assert.Equal(t, "misoft", cfg.ServiceName)
	assert.True(t, cfg.Enabled)
}
