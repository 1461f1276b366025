package logger

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// quietPaths are probe endpoints that would otherwise dominate the access
// log; they log at debug so the info level stays readable.
var quietPaths = map[string]bool{
	"/health": true,
	"/ready":  true,
}

// GinMiddleware returns the access-log middleware. Each request gets a
// request-scoped logger stored in the gin context under "logger".
func GinMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		reqLog := WithTrace(c.Request.Context(), log).With(
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
		)
		c.Set("logger", reqLog)

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		if query != "" {
			fields = append(fields, zap.String("query", query))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}

		msg := "HTTP request"
		switch {
		case status >= http.StatusInternalServerError:
			reqLog.Error(msg, fields...)
		case status >= http.StatusBadRequest:
			reqLog.Warn(msg, fields...)
		case quietPaths[path]:
			reqLog.Debug(msg, fields...)
		default:
			reqLog.Info(msg, fields...)
		}
	}
}

// Recovery catches handler panics, logs them with a stack, and answers 500.
// The dashboard must keep serving other screens after a bad one.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("Panic recovered",
					zap.String("request_id", c.GetString("request_id")),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Any("error", err),
					zap.Stack("stacktrace"),
				)
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}

// GinLogger returns the request-scoped logger placed by GinMiddleware
func GinLogger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get("logger"); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return zap.NewNop()
}
