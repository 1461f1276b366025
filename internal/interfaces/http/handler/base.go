package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/gateway"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/session"
	"github.com/aamirshehzad9/MISoft-sub001/internal/interfaces/http/dto"
	"github.com/aamirshehzad9/MISoft-sub001/internal/interfaces/http/middleware"
)

// BaseHandler provides the response and error plumbing every handler embeds
type BaseHandler struct{}

// getRequestID extracts the request ID placed by the request ID middleware
func getRequestID(c *gin.Context) string {
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		return id
	}
	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}
	return ""
}

// currentSession returns the session resolved by the session middleware.
// Nil for bearer-authenticated (programmatic) requests.
func currentSession(c *gin.Context) *session.Session {
	sess, _ := middleware.SessionFromContext(c)
	return sess
}

// uuidParam parses a UUID path parameter. On failure it writes the 400 and
// reports false.
func (h *BaseHandler) uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeValidation, "Invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON binds the JSON body. On failure it writes the validation response
// and reports false.
func (h *BaseHandler) bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.bindingError(c, err)
		return false
	}
	return true
}

// bindQuery binds query parameters. On failure it writes the validation
// response and reports false.
func (h *BaseHandler) bindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		h.bindingError(c, err)
		return false
	}
	return true
}

// bindingError renders a gin binding failure. Field-level failures carry
// per-field details; malformed bodies get the bare validation code.
func (h *BaseHandler) bindingError(c *gin.Context, err error) {
	requestID := getRequestID(c)

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, middleware.FormatValidationErrors(fieldErrs, requestID))
		return
	}
	c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeValidation, "Invalid request payload", requestID))
}

// Success sends a 200 response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a 200 response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with an explicit status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// ErrorWithCode sends an error response, deriving the status from the code
func (h *BaseHandler) ErrorWithCode(c *gin.Context, code, message string) {
	h.Error(c, dto.GetHTTPStatus(code), code, message)
}

// HandleError renders any error from the application layer.
//
// Three families arrive here: local validation verdicts (*shared.DomainError),
// core API verdicts (*gateway.APIError, passed through with the upstream's own
// code and status), and transport-level sentinels. Anything unrecognized is an
// internal error.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID := getRequestID(c)

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.GetHTTPStatus(domainErr.Code),
			dto.NewErrorResponseWithRequestID(domainErr.Code, domainErr.Message, requestID))
		return
	}

	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.Code
		if code == "" {
			code = dto.CodeForUpstreamStatus(apiErr.StatusCode)
		}
		// A 401 on a proxied call means the session's token went stale
		// mid-request; tell the dashboard to sign in again.
		if apiErr.StatusCode == http.StatusUnauthorized {
			code = dto.ErrCodeSessionExpired
		}
		c.JSON(apiErr.StatusCode,
			dto.NewErrorResponseWithRequestID(code, apiErr.Message, requestID))
		return
	}

	switch {
	case errors.Is(err, shared.ErrSessionExpired):
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeSessionExpired, "Session expired, sign in again")
	case errors.Is(err, shared.ErrUnauthorized):
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Authentication required")
	case errors.Is(err, shared.ErrForbidden):
		h.Error(c, http.StatusForbidden, dto.ErrCodeForbidden, "Permission denied")
	case errors.Is(err, shared.ErrNotFound):
		h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, "Resource not found")
	case errors.Is(err, shared.ErrAlreadyExists):
		h.Error(c, http.StatusConflict, dto.ErrCodeAlreadyExists, "Resource already exists")
	case errors.Is(err, shared.ErrInvalidInput):
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, "Invalid input")
	case errors.Is(err, shared.ErrInvalidState):
		h.Error(c, http.StatusUnprocessableEntity, dto.ErrCodeInvalidState, "Operation not allowed in the current state")
	case errors.Is(err, gateway.ErrRateLimited):
		h.Error(c, http.StatusTooManyRequests, dto.ErrCodeRateLimited, "Core API rate limit exceeded")
	case errors.Is(err, gateway.ErrUpstreamUnavailable):
		h.Error(c, http.StatusBadGateway, dto.ErrCodeUpstreamUnavailable, "Core API is unreachable")
	default:
		h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "An unexpected error occurred")
	}
}

// Page sends a 200 response with the page's items and pagination meta
func Page[T any](h *BaseHandler, c *gin.Context, p *shared.Paginated[T]) {
	h.SuccessWithMeta(c, p.Items, p.Total, p.Page, p.PageSize)
}
