package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err   error
	calls int
}

func (p *stubPinger) Ping(ctx context.Context) error {
	p.calls++
	return p.err
}

func newSystemRig(pinger *stubPinger) *gin.Engine {
	h := NewSystemHandler(pinger, "1.4.2", "4f9c1e7")

	r := gin.New()
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
	r.GET("/api/v1/ping", h.Ping)
	r.GET("/api/v1/version", h.Version)
	return r
}

func TestSystemHandler_Health_IgnoresUpstream(t *testing.T) {
	pinger := &stubPinger{err: errors.New("core API down")}
	r := newSystemRig(pinger)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, pinger.calls, "liveness must not depend on the core API")
}

func TestSystemHandler_Ready_RequiresUpstream(t *testing.T) {
	pinger := &stubPinger{}
	r := newSystemRig(pinger)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, pinger.calls)
	assert.Contains(t, w.Body.String(), "ready")
}

func TestSystemHandler_Ready_UnavailableWhenUpstreamDown(t *testing.T) {
	pinger := &stubPinger{err: errors.New("connection refused")}
	r := newSystemRig(pinger)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "core API unreachable")
}

func TestSystemHandler_Ping(t *testing.T) {
	r := newSystemRig(&stubPinger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestSystemHandler_Version_CarriesBuildInfo(t *testing.T) {
	r := newSystemRig(&stubPinger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/version", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1.4.2")
	assert.Contains(t, w.Body.String(), "4f9c1e7")
	assert.Contains(t, w.Body.String(), "MISoft")
}
