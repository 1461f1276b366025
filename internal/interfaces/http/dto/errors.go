package dto

import "net/http"

// Error codes returned in the response envelope. Handlers pass these to the
// base handler; the map below decides the HTTP status.

// Input error codes
const (
	// ErrCodeValidation is used when request binding or field validation fails
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeInvalidInput is used for semantically invalid input data
	ErrCodeInvalidInput = "INVALID_INPUT"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeSessionExpired is used when the session (or its refresh token) has expired
	ErrCodeSessionExpired = "SESSION_EXPIRED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "FORBIDDEN"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	// ErrCodeInvalidState is used when an operation is invalid for the current state
	ErrCodeInvalidState = "INVALID_STATE"
)

// Upstream error codes
const (
	// ErrCodeUpstream is used when the core API rejected the request with an
	// error the envelope passes through verbatim
	ErrCodeUpstream = "UPSTREAM_ERROR"
	// ErrCodeUpstreamUnavailable is used when the core API could not be reached
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
)

// Feature error codes
const (
	// ErrCodePrintingDisabled is used when PDF printing is not configured
	ErrCodePrintingDisabled = "PRINTING_DISABLED"
)

// General error codes
const (
	// ErrCodeRateLimited is used when the client exceeded the request rate
	ErrCodeRateLimited = "RATE_LIMIT_EXCEEDED"
	// ErrCodeRequestTooLarge is used when the request body exceeds the limit
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// Input errors -> 400 Bad Request
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	ErrCodeSessionExpired: http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,

	// Resource errors
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeInvalidState:  http.StatusUnprocessableEntity,

	// Upstream errors
	ErrCodeUpstream:            http.StatusBadGateway,
	ErrCodeUpstreamUnavailable: http.StatusBadGateway,

	// Feature errors
	ErrCodePrintingDisabled: http.StatusNotImplemented,

	// General errors
	ErrCodeRateLimited:     http.StatusTooManyRequests,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeInternal:        http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// upstreamStatusCode maps a core API HTTP status to the envelope error code
// used when the upstream response carries no code of its own.
var upstreamStatusCode = map[int]string{
	http.StatusBadRequest:          ErrCodeInvalidInput,
	http.StatusUnauthorized:        ErrCodeUnauthorized,
	http.StatusForbidden:           ErrCodeForbidden,
	http.StatusNotFound:            ErrCodeNotFound,
	http.StatusConflict:            ErrCodeAlreadyExists,
	http.StatusUnprocessableEntity: ErrCodeInvalidInput,
	http.StatusTooManyRequests:     ErrCodeRateLimited,
}

// CodeForUpstreamStatus returns the envelope error code for a core API HTTP
// status. Statuses without a specific mapping collapse to UPSTREAM_ERROR.
func CodeForUpstreamStatus(status int) string {
	if code, ok := upstreamStatusCode[status]; ok {
		return code
	}
	return ErrCodeUpstream
}
