package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// readyTimeout bounds the upstream ping during a readiness probe
const readyTimeout = 5 * time.Second

// UpstreamPinger is the slice of the core API client the readiness probe uses
type UpstreamPinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler handles liveness, readiness and build info endpoints
type SystemHandler struct {
	BaseHandler
	upstream  UpstreamPinger
	version   string
	commit    string
	startTime time.Time
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(upstream UpstreamPinger, version, commit string) *SystemHandler {
	return &SystemHandler{
		upstream:  upstream,
		version:   version,
		commit:    commit,
		startTime: time.Now(),
	}
}

// VersionResponse carries build information
type VersionResponse struct {
	Name      string `json:"name" example:"MISoft"`
	Version   string `json:"version" example:"1.4.2"`
	Commit    string `json:"commit" example:"4f9c1e7"`
	GoVersion string `json:"go_version" example:"go1.25.5"`
	Uptime    string `json:"uptime" example:"1h30m45s"`
}

// PingResponse is the answer to a connectivity probe
type PingResponse struct {
	Message   string `json:"message" example:"pong"`
	Timestamp string `json:"timestamp" example:"2026-01-23T12:00:00Z"`
}

// Health answers liveness probes. It says nothing about the core API.
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready answers readiness probes: the service is ready when the core API
// answers a ping within the timeout.
func (h *SystemHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := h.upstream.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"reason": "core API unreachable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Ping godoc
// @Summary      Ping the API
// @Description  Answers pong when the service is responsive
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response{data=handler.PingResponse}
// @Router       /ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Version godoc
// @Summary      Get build information
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response{data=handler.VersionResponse}
// @Router       /version [get]
func (h *SystemHandler) Version(c *gin.Context) {
	h.Success(c, VersionResponse{
		Name:      "MISoft",
		Version:   h.version,
		Commit:    h.commit,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}
