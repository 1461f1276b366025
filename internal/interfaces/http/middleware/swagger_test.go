package middleware

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newSwaggerRouter(cfg SwaggerConfig, sessionMiddleware gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/swagger/*any", SwaggerProtection(cfg, sessionMiddleware), func(c *gin.Context) {
		c.String(http.StatusOK, "docs")
	})
	return router
}

func getSwagger(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	router.ServeHTTP(w, req)
	return w
}

func TestSwaggerProtection(t *testing.T) {
	t.Run("disabled docs answer 404", func(t *testing.T) {
		router := newSwaggerRouter(SwaggerConfig{Enabled: false}, nil)

		w := getSwagger(router, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})

	t.Run("enabled without restrictions serves docs", func(t *testing.T) {
		router := newSwaggerRouter(SwaggerConfig{Enabled: true}, nil)

		assert.Equal(t, http.StatusOK, getSwagger(router, "").Code)
	})

	t.Run("IP allowlist admits listed address", func(t *testing.T) {
		router := newSwaggerRouter(SwaggerConfig{
			Enabled:    true,
			AllowedIPs: []string{"127.0.0.1"},
		}, nil)

		assert.Equal(t, http.StatusOK, getSwagger(router, "127.0.0.1:40000").Code)
	})

	t.Run("IP allowlist rejects unlisted address", func(t *testing.T) {
		router := newSwaggerRouter(SwaggerConfig{
			Enabled:    true,
			AllowedIPs: []string{"10.0.0.1"},
		}, nil)

		w := getSwagger(router, "192.168.1.1:40000")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "FORBIDDEN")
	})

	t.Run("CIDR ranges cover their whole subnet", func(t *testing.T) {
		router := newSwaggerRouter(SwaggerConfig{
			Enabled:    true,
			AllowedIPs: []string{"10.0.0.0/8"},
		}, nil)

		assert.Equal(t, http.StatusOK, getSwagger(router, "10.50.100.200:40000").Code)
		assert.Equal(t, http.StatusForbidden, getSwagger(router, "192.168.1.1:40000").Code)
	})

	t.Run("session requirement delegates to the session middleware", func(t *testing.T) {
		denyAll := func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		}
		router := newSwaggerRouter(SwaggerConfig{Enabled: true, RequireAuth: true}, denyAll)

		assert.Equal(t, http.StatusUnauthorized, getSwagger(router, "").Code)
	})

	t.Run("valid session passes through", func(t *testing.T) {
		allowAll := func(c *gin.Context) {
			c.Set(SessionKey, "resolved")
			c.Next()
		}
		router := newSwaggerRouter(SwaggerConfig{Enabled: true, RequireAuth: true}, allowAll)

		assert.Equal(t, http.StatusOK, getSwagger(router, "").Code)
	})

	t.Run("IP check runs before the session check", func(t *testing.T) {
		sessionCalled := false
		spy := func(c *gin.Context) {
			sessionCalled = true
			c.Next()
		}
		router := newSwaggerRouter(SwaggerConfig{
			Enabled:     true,
			RequireAuth: true,
			AllowedIPs:  []string{"127.0.0.1"},
		}, spy)

		w := getSwagger(router, "192.168.1.1:40000")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, sessionCalled, "session middleware must not run for rejected IPs")
	})
}

func TestIPAllowlist(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		ip      string
		want    bool
	}{
		{"exact IPv4 match", []string{"192.168.1.1"}, "192.168.1.1", true},
		{"different IPv4", []string{"192.168.1.1"}, "192.168.1.2", false},
		{"inside CIDR", []string{"10.0.0.0/8"}, "10.0.0.5", true},
		{"outside CIDR", []string{"10.0.0.0/8"}, "11.0.0.5", false},
		{"IPv6 loopback", []string{"::1"}, "::1", true},
		{"garbage entries are skipped", []string{"not-an-ip", "10.0.0.0/gg", "127.0.0.1"}, "127.0.0.1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			al := parseAllowlist(tt.entries)
			assert.Equal(t, tt.want, al.contains(net.ParseIP(tt.ip)))
		})
	}

	t.Run("nil IP never matches", func(t *testing.T) {
		al := parseAllowlist([]string{"0.0.0.0/0"})
		assert.False(t, al.contains(nil))
	})
}
