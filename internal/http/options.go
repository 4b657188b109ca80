package http

import (
	nethttp "net/http"
	"time"

	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the structured logger.
func WithLogger(logger teamhub.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithRetryConfig tunes the retry loop.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retry = RetryConfig{
			MaxRetries: maxRetries,
			WaitMin:    waitMin,
			WaitMax:    waitMax,
		}
	}
}

// WithCache enables conditional (ETag) caching of GET responses using the
// given backend.
func WithCache(cache teamhub.Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithHooks registers an observer for operations, requests, and retries.
// The hooks are guarded: a panicking observer never affects the request.
func WithHooks(hooks teamhub.Hooks) Option {
	return func(c *Client) {
		c.hooks = teamhub.GuardHooks(hooks)
	}
}

// WithMaxPages caps how many pages paginated list calls follow by default.
func WithMaxPages(maxPages int) Option {
	return func(c *Client) {
		if maxPages > 0 {
			c.maxPages = maxPages
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(httpClient *nethttp.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the underlying HTTP client timeout. Most callers should
// prefer per-call context deadlines.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}
