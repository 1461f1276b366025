package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/gateway"
	"github.com/aamirshehzad9/MISoft-sub001/internal/interfaces/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) (code, message string) {
	t.Helper()
	var body struct {
		Success bool           `json:"success"`
		Error   *dto.ErrorInfo `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.False(t, body.Success)
	require.NotNil(t, body.Error)
	return body.Error.Code, body.Error.Message
}

func TestBaseHandler_HandleError_DomainError(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext()

	h.HandleError(c, shared.NewDomainError("VALIDATION_ERROR", "Tax rate must be between 0 and 100 percent"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	code, message := decodeError(t, w)
	assert.Equal(t, "VALIDATION_ERROR", code)
	assert.Equal(t, "Tax rate must be between 0 and 100 percent", message)
}

func TestBaseHandler_HandleError_UpstreamVerdictPassesThrough(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext()

	h.HandleError(c, &gateway.APIError{
		StatusCode: http.StatusConflict,
		Code:       "DUPLICATE_CODE",
		Message:    "Tax code GST-18 already exists",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	code, message := decodeError(t, w)
	assert.Equal(t, "DUPLICATE_CODE", code)
	assert.Equal(t, "Tax code GST-18 already exists", message)
}

func TestBaseHandler_HandleError_UpstreamWithoutCodeMapsStatus(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext()

	h.HandleError(c, &gateway.APIError{
		StatusCode: http.StatusUnprocessableEntity,
		Message:    "Voucher lines do not balance",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	code, _ := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeInvalidInput, code)
}

func TestBaseHandler_HandleError_Upstream401BecomesSessionExpired(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext()

	h.HandleError(c, &gateway.APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       "TOKEN_EXPIRED",
		Message:    "access token expired",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	code, _ := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeSessionExpired, code)
}

func TestBaseHandler_HandleError_Sentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"session expired", shared.ErrSessionExpired, http.StatusUnauthorized, dto.ErrCodeSessionExpired},
		{"not found", shared.ErrNotFound, http.StatusNotFound, dto.ErrCodeNotFound},
		{"forbidden", shared.ErrForbidden, http.StatusForbidden, dto.ErrCodeForbidden},
		{"invalid state", shared.ErrInvalidState, http.StatusUnprocessableEntity, dto.ErrCodeInvalidState},
		{"upstream unreachable", gateway.ErrUpstreamUnavailable, http.StatusBadGateway, dto.ErrCodeUpstreamUnavailable},
		{"upstream rate limit", gateway.ErrRateLimited, http.StatusTooManyRequests, dto.ErrCodeRateLimited},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &BaseHandler{}
			c, w := newTestContext()

			h.HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			code, _ := decodeError(t, w)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestBaseHandler_HandleError_WrappedSentinel(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext()

	h.HandleError(c, errors.Join(errors.New("fetch invoice"), shared.ErrNotFound))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBaseHandler_UUIDParam(t *testing.T) {
	h := &BaseHandler{}

	t.Run("valid", func(t *testing.T) {
		c, _ := newTestContext()
		c.Params = gin.Params{{Key: "id", Value: "7d444840-9dc0-11d1-b245-5ffdce74fad2"}}

		id, ok := h.uuidParam(c, "id")
		assert.True(t, ok)
		assert.Equal(t, "7d444840-9dc0-11d1-b245-5ffdce74fad2", id.String())
	})

	t.Run("invalid writes 400", func(t *testing.T) {
		c, w := newTestContext()
		c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

		_, ok := h.uuidParam(c, "id")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		code, _ := decodeError(t, w)
		assert.Equal(t, dto.ErrCodeValidation, code)
	})
}

func TestBaseHandler_SuccessWithMeta(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext()

	h.SuccessWithMeta(c, []string{"a", "b"}, 42, 2, 20)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool      `json:"success"`
		Meta    *dto.Meta `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.NotNil(t, body.Meta)
	assert.Equal(t, int64(42), body.Meta.Total)
	assert.Equal(t, 2, body.Meta.Page)
	assert.Equal(t, 3, body.Meta.TotalPages)
}

func TestPage_RendersPaginated(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext()

	p := shared.NewPaginated([]int{1, 2, 3}, 3, 1, 20)
	Page(h, c, &p)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []int     `json:"data"`
		Meta *dto.Meta `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []int{1, 2, 3}, body.Data)
	require.NotNil(t, body.Meta)
	assert.Equal(t, int64(3), body.Meta.Total)
}
