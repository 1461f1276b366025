package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aamirshehzad9/MISoft-sub001/internal/interfaces/http/dto"
)

// RateLimiter is an in-memory fixed-window limiter keyed by caller. It
// protects this service, not the core API; the upstream applies its own
// limits and the gateway's retry budget handles those.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateWindow
	limit   int
	window  time.Duration
}

type rateWindow struct {
	remaining int
	resetAt   time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per window. A
// janitor goroutine drops idle keys; limiters live as long as the process.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*rateWindow),
		limit:   limit,
		window:  window,
	}
	go rl.janitor()
	return rl
}

func (rl *RateLimiter) janitor() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		rl.mu.Lock()
		for key, w := range rl.clients {
			if now.Sub(w.resetAt) > rl.window {
				delete(rl.clients, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Allow consumes one request from the key's window and reports whether it
// fit. Also returns how many requests remain in the window.
func (rl *RateLimiter) Allow(key string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.clients[key]
	if !ok || now.After(w.resetAt) {
		rl.clients[key] = &rateWindow{
			remaining: rl.limit - 1,
			resetAt:   now.Add(rl.window),
		}
		return true, rl.limit - 1
	}

	if w.remaining > 0 {
		w.remaining--
		return true, w.remaining
	}
	return false, 0
}

// Limit returns the per-window request budget
func (rl *RateLimiter) Limit() int {
	return rl.limit
}

// RateLimit limits requests per client IP. Sessions are deliberately not
// part of the key: the login and contact endpoints that need limiting the
// most have no session yet.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return RateLimitByKey(limiter, func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// RateLimitByKey limits requests with a caller-supplied key extractor
func RateLimitByKey(limiter *RateLimiter, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining := limiter.Allow(keyFunc(c))
		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(
				dto.ErrCodeRateLimited, "Too many requests, slow down"))
			return
		}
		c.Next()
	}
}
