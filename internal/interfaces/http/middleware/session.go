package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/config"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/gateway"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/session"
	"github.com/aamirshehzad9/MISoft-sub001/internal/interfaces/http/dto"
)

// SessionKey is the gin context key holding the resolved *session.Session
const SessionKey = "session"

// bearerPrefix marks a programmatic client sending a core API token directly
const bearerPrefix = "Bearer "

// SessionAuthenticator resolves a session cookie value to a live session,
// rotating the upstream token pair when it is close to expiry.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, sessionID string) (*session.Session, error)
}

// SessionMiddlewareConfig holds configuration for the session middleware
type SessionMiddlewareConfig struct {
	// Auth resolves cookie values to sessions
	Auth SessionAuthenticator
	// Cookie supplies the cookie name and attributes
	Cookie config.SessionConfig
	// SkipPaths are exact paths that don't require a session
	SkipPaths []string
	// SkipPathPrefixes are path prefixes that don't require a session
	SkipPathPrefixes []string
	// Logger for middleware logging
	Logger *zap.Logger
}

// SessionAuth authenticates dashboard requests. Browsers carry the opaque
// session cookie; the resolved session's access token is attached to the
// request context so every gateway call downstream rides on it.
// Programmatic clients may instead send a core API access token as a bearer
// header, which is forwarded as-is without a session lookup; the core API
// judges it.
func SessionAuth(cfg SessionMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if path == skip {
				c.Next()
				return
			}
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		if id, err := c.Cookie(cfg.Cookie.CookieName); err == nil && id != "" {
			sess, err := cfg.Auth.Authenticate(c.Request.Context(), id)
			if err != nil {
				ClearSessionCookie(c, cfg.Cookie)
				abortSessionError(c, err, cfg.Logger)
				return
			}
			c.Set(SessionKey, sess)
			c.Request = c.Request.WithContext(gateway.WithToken(c.Request.Context(), sess.AccessToken))
			c.Next()
			return
		}

		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, bearerPrefix) {
			if token := strings.TrimSpace(strings.TrimPrefix(auth, bearerPrefix)); token != "" {
				c.Request = c.Request.WithContext(gateway.WithToken(c.Request.Context(), token))
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeUnauthorized, "Authentication required", requestIDFrom(c)))
	}
}

// SessionFromContext returns the session the middleware resolved, if any.
// Bearer-authenticated requests have none.
func SessionFromContext(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}

// SetSessionCookie hands the browser its HttpOnly session cookie
func SetSessionCookie(c *gin.Context, cfg config.SessionConfig, id string, ttl time.Duration) {
	c.SetSameSite(sameSiteOf(cfg.SameSite))
	c.SetCookie(cfg.CookieName, id, int(ttl.Seconds()), cookiePath(cfg), cfg.CookieDomain, cfg.Secure, true)
}

// ClearSessionCookie expires the session cookie
func ClearSessionCookie(c *gin.Context, cfg config.SessionConfig) {
	c.SetSameSite(sameSiteOf(cfg.SameSite))
	c.SetCookie(cfg.CookieName, "", -1, cookiePath(cfg), cfg.CookieDomain, cfg.Secure, true)
}

func cookiePath(cfg config.SessionConfig) string {
	if cfg.CookiePath != "" {
		return cfg.CookiePath
	}
	return "/"
}

func sameSiteOf(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func abortSessionError(c *gin.Context, err error, logger *zap.Logger) {
	requestID := requestIDFrom(c)

	if errors.Is(err, shared.ErrSessionExpired) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeSessionExpired, "Session expired, sign in again", requestID))
		return
	}

	var derr *shared.DomainError
	if errors.As(err, &derr) {
		c.AbortWithStatusJSON(dto.GetHTTPStatus(derr.Code),
			dto.NewErrorResponseWithRequestID(derr.Code, derr.Message, requestID))
		return
	}

	if logger != nil {
		logger.Error("Session authentication failed", zap.Error(err))
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeInternal, "Failed to authenticate request", requestID))
}
