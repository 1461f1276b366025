package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aamirshehzad9/MISoft-sub001/internal/interfaces/http/dto"
)

// BodyLimit rejects request bodies above maxBytes. Dashboard forms are
// small; anything big arriving here is a mistake or abuse, not a screen.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(
				dto.ErrCodeRequestTooLarge, "Request body exceeds maximum allowed size"))
			return
		}

		// Chunked requests carry no Content-Length; cap them while reading.
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
