package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter(cfg CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSWithConfig(cfg))
	router.GET("/api/v1/partners", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doCORS(router *gin.Engine, method, origin string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, "/api/v1/partners", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestCORSWithConfig(t *testing.T) {
	dashboardOrigin := "https://dashboard.misoft.example"

	t.Run("whitelisted origin gets CORS headers", func(t *testing.T) {
		cfg := DefaultCORSConfig()
		cfg.AllowOrigins = []string{dashboardOrigin}
		router := newCORSRouter(cfg)

		w := doCORS(router, http.MethodGet, dashboardOrigin)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, dashboardOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-RateLimit-Limit")
	})

	t.Run("unlisted origin gets no CORS headers", func(t *testing.T) {
		cfg := DefaultCORSConfig()
		cfg.AllowOrigins = []string{dashboardOrigin}
		router := newCORSRouter(cfg)

		w := doCORS(router, http.MethodGet, "https://evil.example")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("empty whitelist rejects all cross-origin requests", func(t *testing.T) {
		router := newCORSRouter(DefaultCORSConfig())

		w := doCORS(router, http.MethodGet, dashboardOrigin)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard allows any origin without credentials", func(t *testing.T) {
		cfg := DefaultCORSConfig()
		cfg.AllowOrigins = []string{"*"}
		router := newCORSRouter(cfg)

		w := doCORS(router, http.MethodGet, "https://anywhere.example")

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("preflight is answered 204 even for unknown routes", func(t *testing.T) {
		cfg := DefaultCORSConfig()
		cfg.AllowOrigins = []string{dashboardOrigin}
		router := newCORSRouter(cfg)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/no-such-screen", nil)
		req.Header.Set("Origin", dashboardOrigin)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, dashboardOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
		assert.NotEmpty(t, w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("preflight from an unlisted origin carries no CORS headers", func(t *testing.T) {
		cfg := DefaultCORSConfig()
		cfg.AllowOrigins = []string{dashboardOrigin}
		router := newCORSRouter(cfg)

		w := doCORS(router, http.MethodOptions, "https://evil.example")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestDefaultCORSConfig(t *testing.T) {
	cfg := DefaultCORSConfig()

	assert.Empty(t, cfg.AllowOrigins, "origins must be opted in explicitly")
	assert.True(t, cfg.AllowCredentials)
	assert.Contains(t, cfg.AllowHeaders, "Authorization")
	assert.Contains(t, cfg.ExposeHeaders, "X-Request-ID")
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("generates an ID when none is supplied", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		id := w.Header().Get("X-Request-ID")
		assert.Len(t, id, 32)
		assert.Equal(t, id, w.Body.String(), "context value and header must match")
	})

	t.Run("keeps a caller-supplied ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "upstream-trace-42")
		router.ServeHTTP(w, req)

		assert.Equal(t, "upstream-trace-42", w.Header().Get("X-Request-ID"))
	})

	t.Run("IDs are unique per request", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			id := w.Header().Get("X-Request-ID")
			assert.False(t, seen[id], "duplicate request ID %s", id)
			seen[id] = true
		}
	})
}

func newSecureRouter(cfg SecurityConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SecureWithConfig(cfg))
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestSecureWithConfig(t *testing.T) {
	t.Run("always sets the baseline headers", func(t *testing.T) {
		router := newSecureRouter(DefaultSecurityConfig())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
		assert.Contains(t, w.Header().Get("Content-Security-Policy"), "frame-ancestors 'none'")
		assert.Contains(t, w.Header().Get("Permissions-Policy"), "camera=()")
	})

	t.Run("HSTS is off by default", func(t *testing.T) {
		router := newSecureRouter(DefaultSecurityConfig())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
	})

	t.Run("HSTS header reflects the configuration", func(t *testing.T) {
		cfg := DefaultSecurityConfig()
		cfg.HSTSEnabled = true
		cfg.HSTSPreload = true
		router := newSecureRouter(cfg)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		hsts := w.Header().Get("Strict-Transport-Security")
		assert.Contains(t, hsts, "max-age=31536000")
		assert.Contains(t, hsts, "includeSubDomains")
		assert.Contains(t, hsts, "preload")
	})

	t.Run("CSP can be disabled", func(t *testing.T) {
		cfg := DefaultSecurityConfig()
		cfg.CSPEnabled = false
		router := newSecureRouter(cfg)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, w.Header().Get("Content-Security-Policy"))
	})
}
