// Package testutil provides test helpers for the dashboard service: a stub
// core API server speaking the upstream envelope contract, and HTTP helpers
// for driving a gin engine and decoding its responses.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// CoreAPI is a stub MISoft core API. Tests register canned responses per
// method+path; the stub records what the service sent so assertions can
// check headers and bodies.
type CoreAPI struct {
	t   *testing.T
	mux *http.ServeMux
	srv *httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

// RecordedRequest is one request the stub received
type RecordedRequest struct {
	Method string
	Path   string
	Query  string
	Bearer string
	Body   []byte
}

// NewCoreAPI starts a stub core API with the health endpoint wired. The
// server is shut down via t.Cleanup.
func NewCoreAPI(t *testing.T) *CoreAPI {
	t.Helper()

	api := &CoreAPI{t: t, mux: http.NewServeMux()}
	api.mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	api.srv = httptest.NewServer(http.HandlerFunc(api.record))
	t.Cleanup(api.srv.Close)
	return api
}

// URL returns the stub's base URL for UpstreamConfig.BaseURL
func (a *CoreAPI) URL() string {
	return a.srv.URL
}

// record captures the request before dispatching to the registered handler
func (a *CoreAPI) record(w http.ResponseWriter, r *http.Request) {
	var body []byte
	if r.Body != nil {
		body, _ = io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
	}

	bearer := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if bearer == r.Header.Get("Authorization") {
		bearer = ""
	}

	a.mu.Lock()
	a.requests = append(a.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Bearer: bearer,
		Body:   body,
	})
	a.mu.Unlock()

	a.mux.ServeHTTP(w, r)
}

// Respond registers a canned success envelope for "METHOD /path". Patterns
// follow http.ServeMux syntax, so "GET /api/v1/partners/{id}" works.
func (a *CoreAPI) Respond(pattern string, status int, data any) {
	a.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		WriteEnvelope(w, status, data, nil)
	})
}

// RespondList registers a canned paged listing for "GET /path"
func (a *CoreAPI) RespondList(pattern string, items any, total int64, page, pageSize int) {
	a.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		WriteEnvelope(w, http.StatusOK, items, &EnvelopeMeta{
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	})
}

// RespondError registers a canned error envelope for "METHOD /path"
func (a *CoreAPI) RespondError(pattern string, status int, code, message string) {
	a.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		WriteErrorEnvelope(w, status, code, message)
	})
}

// HandleFunc registers a raw handler for cases the canned forms don't cover
func (a *CoreAPI) HandleFunc(pattern string, h http.HandlerFunc) {
	a.mux.HandleFunc(pattern, h)
}

// LastRequest returns the most recent request matching method and path, or
// nil when the stub never saw one.
func (a *CoreAPI) LastRequest(method, path string) *RecordedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := len(a.requests) - 1; i >= 0; i-- {
		if a.requests[i].Method == method && a.requests[i].Path == path {
			req := a.requests[i]
			return &req
		}
	}
	return nil
}

// RequestCount returns how many requests hit method and path
func (a *CoreAPI) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, req := range a.requests {
		if req.Method == method && req.Path == path {
			n++
		}
	}
	return n
}

// EnvelopeMeta is the pagination block of the core API envelope
type EnvelopeMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

type coreEnvelope struct {
	Success bool               `json:"success"`
	Data    any                `json:"data,omitempty"`
	Error   *coreEnvelopeError `json:"error,omitempty"`
	Meta    *EnvelopeMeta      `json:"meta,omitempty"`
}

type coreEnvelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteEnvelope writes a success envelope the way the core API does
func WriteEnvelope(w http.ResponseWriter, status int, data any, meta *EnvelopeMeta) {
	if meta != nil && meta.PageSize > 0 {
		meta.TotalPages = int((meta.Total + int64(meta.PageSize) - 1) / int64(meta.PageSize))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(coreEnvelope{Success: true, Data: data, Meta: meta})
}

// WriteErrorEnvelope writes an error envelope the way the core API does
func WriteErrorEnvelope(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(coreEnvelope{
		Success: false,
		Error:   &coreEnvelopeError{Code: code, Message: message},
	})
}
