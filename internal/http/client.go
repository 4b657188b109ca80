// Package http implements the shared transport underneath every API
// operation: URL resolution, authentication, retries with backoff,
// conditional caching, pagination, and observability hook dispatch.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/teamhub-io/teamhub-client/internal/constants"
	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

// nullBody is what a 204 response is normalized to, so callers can decode
// every success uniformly.
var nullBody = []byte("null")

// Request describes an API request before transport concerns are applied.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    interface{}

	// RetrySafe marks a mutation as safe to replay after a 5xx. Only
	// operations the server treats idempotently may set it.
	RetrySafe bool
}

// Response is the decoded-enough result of a request.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte

	// FromCache reports that the body was served from the conditional
	// cache after a 304 revalidation.
	FromCache bool
}

// Client is the HTTP transport shared by all resource clients.
type Client struct {
	baseURL    *url.URL
	httpClient *nethttp.Client
	auth       teamhub.AuthStrategy
	userAgent  string
	logger     teamhub.Logger
	debug      bool
	retry      RetryConfig
	cache      teamhub.Cache
	hooks      teamhub.Hooks
	maxPages   int

	// sleep waits out retry delays; tests swap it for a recorder.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates a transport for the given base URL. auth may be nil
// for unauthenticated use in tests.
func NewClient(baseURL string, auth teamhub.AuthStrategy, opts ...Option) *Client {
	parsed, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		// A broken base URL fails every request with a usage error
		// rather than panicking here.
		parsed = &url.URL{}
	}

	client := &Client{
		baseURL:    parsed,
		httpClient: &nethttp.Client{Timeout: constants.DefaultHTTPTimeout},
		auth:       auth,
		userAgent:  "teamhub-client/1.0 (github.com/teamhub-io/teamhub-client)",
		retry:      DefaultRetryConfig(),
		hooks:      teamhub.NoopHooks{},
		maxPages:   constants.DefaultMaxPages,
		sleep:      sleepCtx,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the resolved API base URL.
func (c *Client) BaseURL() *url.URL {
	return c.baseURL
}

// StartOperation dispatches the operation-start hook and returns a
// completion callback to invoke with the operation's final error. The
// returned context carries any values the hooks attached.
func (c *Client) StartOperation(ctx context.Context, info teamhub.OperationInfo) (context.Context, func(error)) {
	start := time.Now()
	ctx = c.hooks.OnOperationStart(ctx, info)

	return ctx, func(err error) {
		c.hooks.OnOperationEnd(ctx, info, err, time.Since(start))
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path})
}

// Do executes a request with authentication, conditional caching, and the
// retry policy. On HTTP-level failures it returns both the response and a
// classified *teamhub.Error so callers can inspect either.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	target, err := c.resolveURL(req.Path, req.Query)
	if err != nil {
		return nil, teamhub.ErrUsage(fmt.Sprintf("invalid request path %q: %v", req.Path, err))
	}

	var bodyBytes []byte
	if req.Body != nil {
		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, teamhub.ErrUsage(fmt.Sprintf("encoding request body: %v", err))
		}
	}

	var cached *teamhub.CacheEntry

	cacheKey := ""
	if c.cache != nil && req.Method == nethttp.MethodGet {
		cacheKey = c.cacheKey(ctx, target)
		if cacheKey != "" {
			if entry, cacheErr := c.cache.Get(ctx, cacheKey); cacheErr == nil {
				cached = entry
			}
		}
	}

	var (
		lastResp *Response
		lastErr  error
	)

	refreshed := false

	for attempt := 1; ; attempt++ {
		resp, attemptErr := c.doAttempt(ctx, req, target, bodyBytes, cached, cacheKey, attempt)

		// A 401 on a previously working token gets one refresh and an
		// immediate replay; it does not consume a retry attempt.
		if !refreshed && isAuthFailure(attemptErr) {
			if ok := c.tryRefresh(ctx); ok {
				refreshed = true

				continue
			}
		}

		if attemptErr == nil {
			return resp, nil
		}

		lastResp, lastErr = resp, attemptErr

		// MaxRetries bounds total transport invocations, so the last
		// allowed attempt never schedules another.
		decision := c.classifyForRetry(req, resp, attemptErr)
		if !decision.retry || attempt >= c.retry.MaxRetries {
			break
		}

		delay := decision.delay
		if delay <= 0 {
			delay = backoff(c.retry, attempt)
		}

		next := attempt + 1
		c.hooks.OnRetry(ctx, teamhub.RequestInfo{Method: req.Method, URL: target.String(), Attempt: next}, next, attemptErr, delay)

		if c.debug && c.logger != nil {
			c.logger.Debug("HTTP Retry", map[string]interface{}{
				"method":  req.Method,
				"url":     target.String(),
				"attempt": next,
				"delay":   delay.String(),
				"error":   attemptErr.Error(),
			})
		}

		if sleepErr := c.sleep(ctx, delay); sleepErr != nil {
			cancelErr := teamhub.ErrCancelled(sleepErr)

			return lastResp, cancelErr
		}
	}

	return lastResp, lastErr
}

// doAttempt performs one HTTP exchange, including cache revalidation and
// request hook dispatch.
func (c *Client) doAttempt(ctx context.Context, req *Request, target *url.URL, body []byte, cached *teamhub.CacheEntry, cacheKey string, attempt int) (*Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := nethttp.NewRequestWithContext(ctx, req.Method, target.String(), reader)
	if err != nil {
		return nil, teamhub.ErrUsage(fmt.Sprintf("building request: %v", err))
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.auth != nil {
		if err := c.auth.Apply(ctx, httpReq); err != nil {
			authErr := teamhub.ErrAuth(fmt.Sprintf("applying credentials: %v", err))
			authErr.Cause = err

			return nil, authErr
		}
	}

	if cached != nil && cached.ETag != "" {
		httpReq.Header.Set("If-None-Match", cached.ETag)
	}

	info := teamhub.RequestInfo{Method: req.Method, URL: target.String(), Attempt: attempt}
	hookCtx := c.hooks.OnRequestStart(ctx, info)
	start := time.Now()

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":  req.Method,
			"url":     target.String(),
			"attempt": attempt,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		netErr := classifyTransportError(err)
		c.hooks.OnRequestEnd(hookCtx, info, teamhub.RequestResult{
			Duration:  time.Since(start),
			Error:     netErr,
			Retryable: netErr.Retryable,
		})

		return nil, netErr
	}

	defer func() { _ = httpResp.Body.Close() }()

	resp, err := c.readResponse(ctx, httpResp, cached, cacheKey)

	result := teamhub.RequestResult{
		StatusCode: httpResp.StatusCode,
		Duration:   time.Since(start),
		Error:      err,
	}
	if resp != nil {
		result.FromCache = resp.FromCache
	}

	if apiErr := teamhub.AsError(err); apiErr != nil {
		result.Retryable = apiErr.Retryable
	}

	c.hooks.OnRequestEnd(hookCtx, info, result)

	if c.debug && c.logger != nil {
		fields := map[string]interface{}{
			"method":   req.Method,
			"url":      target.String(),
			"status":   httpResp.StatusCode,
			"duration": time.Since(start).String(),
		}
		if resp != nil && resp.FromCache {
			fields["from_cache"] = true
		}

		c.logger.Debug("HTTP Response", fields)
	}

	return resp, err
}

// readResponse consumes the body, normalizes empty successes, applies the
// conditional-cache protocol, and classifies failures.
func (c *Client) readResponse(ctx context.Context, httpResp *nethttp.Response, cached *teamhub.CacheEntry, cacheKey string) (*Response, error) {
	if httpResp.StatusCode == nethttp.StatusNotModified && cached != nil {
		return &Response{
			StatusCode: nethttp.StatusOK,
			Headers:    httpResp.Header,
			Body:       cached.Data,
			FromCache:  true,
		}, nil
	}

	limit := int64(constants.MaxResponseBodySize)
	if httpResp.StatusCode >= 400 {
		limit = constants.MaxErrorBodySize
	}

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, limit))
	if err != nil {
		return nil, classifyTransportError(err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if httpResp.StatusCode == nethttp.StatusNoContent {
		resp.Body = nullBody
	}

	if httpResp.StatusCode >= 200 && httpResp.StatusCode < 300 {
		if cacheKey != "" && httpResp.StatusCode == nethttp.StatusOK {
			// Only responses carrying a validator are stored; a 200
			// without an ETag leaves any earlier entry in place.
			if etag := httpResp.Header.Get("ETag"); etag != "" {
				_ = c.cache.Set(ctx, cacheKey, &teamhub.CacheEntry{
					Data:     body,
					ETag:     etag,
					StoredAt: time.Now(),
				})
			}
		}

		return resp, nil
	}

	return resp, classifyErrorResponse(httpResp, body)
}

// classifyForRetry turns an attempt failure into a retry decision.
func (c *Client) classifyForRetry(req *Request, resp *Response, err error) retryDecision {
	apiErr := teamhub.AsError(err)

	if apiErr != nil && apiErr.Kind == teamhub.KindNetwork {
		if apiErr.HTTPStatus == 0 && !apiErr.Retryable {
			// Cancellation is terminal.
			return retryDecision{retry: false}
		}

		return retryDecision{retry: isReadMethod(req.Method)}
	}

	statusCode := 0
	retryAfterHeader := ""

	if resp != nil {
		statusCode = resp.StatusCode
		retryAfterHeader = resp.Headers.Get("Retry-After")
	}

	return decideRetry(req.Method, statusCode, nil, req.RetrySafe, retryAfterHeader)
}

// tryRefresh asks the auth strategy for a fresh token after a 401.
func (c *Client) tryRefresh(ctx context.Context) bool {
	type refresher interface {
		Refresh(ctx context.Context) (bool, error)
	}

	r, ok := c.auth.(refresher)
	if !ok {
		return false
	}

	refreshed, err := r.Refresh(ctx)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("token refresh failed", map[string]interface{}{"error": err.Error()})
		}

		return false
	}

	return refreshed
}

// resolveURL builds the absolute request URL. path may already be absolute
// (pagination follows server-provided links).
func (c *Client) resolveURL(path string, query url.Values) (*url.URL, error) {
	parsed, err := url.Parse(path)
	if err != nil {
		return nil, err
	}

	target := parsed
	if !parsed.IsAbs() {
		target = c.baseURL.ResolveReference(parsed)
	}

	if len(query) > 0 {
		merged := target.Query()
		for key, values := range query {
			for _, value := range values {
				merged.Add(key, value)
			}
		}

		target.RawQuery = merged.Encode()
	}

	return target, nil
}

// cacheKey derives the cache key for a resolved URL, partitioned by the
// current credential. Returns "" when the credential cannot be resolved;
// the request then skips the cache rather than fail.
func (c *Client) cacheKey(ctx context.Context, target *url.URL) string {
	credential := ""

	if c.auth != nil {
		var err error

		credential, err = c.auth.Credential(ctx)
		if err != nil {
			return ""
		}
	}

	return teamhub.CacheKey(target.String(), credential)
}

// errorBody is the shape of API failure payloads.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// classifyErrorResponse maps a non-2xx response to a *teamhub.Error.
func classifyErrorResponse(httpResp *nethttp.Response, body []byte) *teamhub.Error {
	message := strings.TrimSpace(nethttp.StatusText(httpResp.StatusCode))

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.Error != "":
			message = parsed.Error
		case parsed.Message != "":
			message = parsed.Message
		}
	}

	retryAfter, _ := parseRetryAfter(httpResp.Header.Get("Retry-After"))

	return teamhub.ClassifyStatus(httpResp.StatusCode, retryAfter, message)
}

// classifyTransportError maps a connection-level failure to a network error.
// Cancellation is represented as non-retryable.
func classifyTransportError(err error) *teamhub.Error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return teamhub.ErrCancelled(err)
	}

	return teamhub.ErrNetwork(err)
}

// isAuthFailure reports whether err is a 401 classification.
func isAuthFailure(err error) bool {
	apiErr := teamhub.AsError(err)

	return apiErr != nil && apiErr.Kind == teamhub.KindAuth && apiErr.HTTPStatus == nethttp.StatusUnauthorized
}
