// Package gateway is the typed HTTP client for the MISoft core API. One
// method per endpoint, no business logic: every dashboard operation is
// proxied through here and every business verdict comes back from upstream.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/config"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/telemetry"
)

// apiPrefix is the core API's version prefix; BaseURL carries only the host.
const apiPrefix = "/api/v1"

// Sentinel errors callers can test with errors.Is.
var (
	// ErrUnauthorized wraps 401 and 403 verdicts from the core API
	ErrUnauthorized = errors.New("core api: unauthorized")
	// ErrRateLimited wraps 429 verdicts that survived the retry budget
	ErrRateLimited = errors.New("core api: rate limited")
	// ErrUpstreamUnavailable wraps transport failures (DNS, refused, timeout)
	ErrUpstreamUnavailable = errors.New("core api: unreachable")
)

// APIError is a non-2xx verdict from the core API with its envelope error
// decoded. Code and Message are the upstream's own words.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("core api: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("core api: %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps auth and rate-limit statuses onto the package sentinels
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	}
	return nil
}

type tokenCtxKey struct{}

// WithToken returns a context carrying the bearer token attached to every
// core API request issued with it. The session middleware and the CLI both
// place tokens this way.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, token)
}

// TokenFromContext extracts the bearer token placed by WithToken
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenCtxKey{}).(string)
	return token, ok && token != ""
}

// Client talks to the core API. Safe for concurrent use.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// New creates a Client from upstream configuration. Retries apply to 429
// responses only; failed writes are never replayed.
func New(cfg config.UpstreamConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(cfg.RetryMaxWait)

	if cfg.UserAgent != "" {
		rc.SetHeader("User-Agent", cfg.UserAgent)
	}

	// Upstream spans join the incoming request trace.
	rc.SetTransport(otelhttp.NewTransport(http.DefaultTransport))

	rc.AddRetryCondition(func(r *resty.Response, err error) bool {
		if err != nil || r == nil {
			return false
		}
		if r.StatusCode() != http.StatusTooManyRequests {
			return false
		}
		logger.Warn("core api rate limited, retrying",
			zap.String("url", r.Request.URL),
			zap.Int("attempt", r.Request.Attempt),
		)
		return true
	})

	return &Client{http: rc, logger: logger}
}

// BaseURL returns the configured core API base URL
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// Instrument registers hooks that record one metric sample per physical
// call, retries included. Call once, before the client serves traffic.
func (c *Client) Instrument(um *telemetry.UpstreamMetrics) {
	if um == nil {
		return
	}

	c.http.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		um.RecordCall(resp.Request.Context(),
			operationLabel(resp.Request.Method, requestPath(resp.Request)),
			resp.StatusCode(), resp.Time())
		return nil
	})

	c.http.OnError(func(req *resty.Request, err error) {
		var respErr *resty.ResponseError
		if errors.As(err, &respErr) {
			// A response arrived, so OnAfterResponse already counted it.
			return
		}
		um.RecordCall(req.Context(), operationLabel(req.Method, requestPath(req)), 0, time.Since(req.Time))
	})
}

// requestPath returns the request's URL path. RawRequest is only populated
// once the request has gone on the wire.
func requestPath(req *resty.Request) string {
	if req.RawRequest != nil && req.RawRequest.URL != nil {
		return req.RawRequest.URL.Path
	}
	if u, err := url.Parse(req.URL); err == nil {
		return u.Path
	}
	return req.URL
}

// operationLabel folds a concrete request path into a bounded metric label:
// "GET /api/v1/invoices/4f6f.../print" becomes "GET /api/v1/invoices/:id/print".
func operationLabel(method, path string) string {
	segs := strings.Split(path, "/")
	for i, s := range segs {
		if isIdentifierSegment(s) {
			segs[i] = ":id"
		}
	}
	return method + " " + strings.Join(segs, "/")
}

// isIdentifierSegment reports whether a path segment is a UUID or a bare
// number, the two id shapes the core API uses.
func isIdentifierSegment(s string) bool {
	if s == "" {
		return false
	}
	if len(s) == 36 {
		if _, err := uuid.Parse(s); err == nil {
			return true
		}
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Ping checks that the core API answers its health endpoint. Used by the
// readiness probe and the CLI.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if !resp.IsSuccess() {
		return &APIError{StatusCode: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
	}
	return nil
}

// newRequest builds a request with the context's bearer token attached.
// A context without a token produces an anonymous request.
func (c *Client) newRequest(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token, ok := TokenFromContext(ctx); ok {
		req.SetAuthToken(token)
	}
	return req
}

// envelope is the core API's response wrapper, the same shape this service
// answers with.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *envelopeError  `json:"error"`
	Meta    *pageMeta       `json:"meta"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type pageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// decodeEnvelope turns a response into its envelope or an *APIError
func (c *Client) decodeEnvelope(resp *resty.Response) (*envelope, error) {
	if !resp.IsSuccess() {
		return nil, c.apiError(resp)
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("decode core api envelope: %w", err)
	}
	if !env.Success {
		// 2xx with success=false is an upstream contract breach; surface
		// whatever error it carried.
		apiErr := &APIError{StatusCode: resp.StatusCode(), Message: "upstream reported failure"}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return nil, apiErr
	}
	return &env, nil
}

// apiError decodes the error envelope of a non-2xx response
func (c *Client) apiError(resp *resty.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode()}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err == nil && env.Error != nil {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}

	c.logger.Warn("core api error",
		zap.String("url", resp.Request.URL),
		zap.Int("status", resp.StatusCode()),
		zap.String("code", apiErr.Code),
	)
	return apiErr
}

// transportError wraps a resty transport failure into ErrUpstreamUnavailable
func (c *Client) transportError(method, path string, err error) error {
	c.logger.Warn("core api unreachable",
		zap.String("method", method),
		zap.String("path", path),
		zap.Error(err),
	)
	return fmt.Errorf("%w: %s %s: %v", ErrUpstreamUnavailable, method, path, err)
}

// filterQuery converts a list filter into the core API's query parameters
func filterQuery(f shared.Filter) url.Values {
	q := url.Values{}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(f.PageSize))
	}
	if f.OrderBy != "" {
		q.Set("order_by", f.OrderBy)
	}
	if f.OrderDir != "" {
		q.Set("order_dir", f.OrderDir)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	for k, v := range f.Filters {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q
}

// call issues a request and decodes the envelope's data into T
func call[T any](ctx context.Context, c *Client, method, path string, body any) (*T, error) {
	req := c.newRequest(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, c.transportError(method, path, err)
	}

	env, err := c.decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	out := new(T)
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("decode %s %s data: %w", method, path, err)
		}
	}
	return out, nil
}

// callList issues a GET for one page of a listing and assembles the page
// from the envelope's data array and meta block.
func callList[T any](ctx context.Context, c *Client, path string, f shared.Filter) (*shared.Paginated[T], error) {
	req := c.newRequest(ctx).SetQueryParamsFromValues(filterQuery(f))

	resp, err := req.Get(path)
	if err != nil {
		return nil, c.transportError(http.MethodGet, path, err)
	}

	env, err := c.decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0)
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return nil, fmt.Errorf("decode GET %s data: %w", path, err)
		}
	}

	page := shared.Paginated[T]{Items: items}
	if env.Meta != nil {
		page.Total = env.Meta.Total
		page.Page = env.Meta.Page
		page.PageSize = env.Meta.PageSize
		page.TotalPages = env.Meta.TotalPages
	} else {
		// Some read endpoints answer unpaged arrays.
		page = shared.NewPaginated(items, int64(len(items)), 1, len(items))
	}
	return &page, nil
}

// callQuery issues a GET with explicit query parameters and decodes data into T
func callQuery[T any](ctx context.Context, c *Client, path string, q url.Values) (*T, error) {
	req := c.newRequest(ctx).SetQueryParamsFromValues(q)

	resp, err := req.Get(path)
	if err != nil {
		return nil, c.transportError(http.MethodGet, path, err)
	}

	env, err := c.decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	out := new(T)
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("decode GET %s data: %w", path, err)
		}
	}
	return out, nil
}

// callNoContent issues a request whose envelope carries no data of interest
func callNoContent(ctx context.Context, c *Client, method, path string, body any) error {
	req := c.newRequest(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return c.transportError(method, path, err)
	}

	if resp.StatusCode() == http.StatusNoContent {
		return nil
	}
	_, err = c.decodeEnvelope(resp)
	return err
}
