package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequestOption mutates a test request before it is served
type RequestOption func(*http.Request)

// WithCookie attaches a cookie to the request
func WithCookie(name, value string) RequestOption {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: name, Value: value})
	}
}

// WithBearer attaches an Authorization bearer header
func WithBearer(token string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

// DoJSON serves one JSON request against the handler and returns the
// recorder. A nil body sends an empty request.
func DoJSON(t *testing.T, h http.Handler, method, path string, body any, opts ...RequestOption) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// ServiceResponse is the dashboard's response envelope with the data field
// left raw so tests can decode it into the type they expect.
type ServiceResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *ServiceError   `json:"error"`
	Meta    *EnvelopeMeta   `json:"meta"`
}

// ServiceError is the error block of the dashboard envelope
type ServiceError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DecodeResponse parses the recorder body into the dashboard envelope
func DecodeResponse(t *testing.T, rec *httptest.ResponseRecorder) ServiceResponse {
	t.Helper()

	var resp ServiceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp),
		"response body is not a service envelope: %s", rec.Body.String())
	return resp
}

// DecodeData parses the envelope's data block into out
func DecodeData(t *testing.T, resp ServiceResponse, out any) {
	t.Helper()
	require.NotEmpty(t, resp.Data, "envelope has no data block")
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

// SessionCookie returns the session cookie the response set, failing the
// test when none was issued.
func SessionCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("response did not set cookie %q", name)
	return nil
}
