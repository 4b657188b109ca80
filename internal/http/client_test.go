package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	teamhubhttp "github.com/teamhub-io/teamhub-client/internal/http"
	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

// MockTokenProvider for testing.
type MockTokenProvider struct {
	token    string
	err      error
	refreshd int
}

func (m *MockTokenProvider) AccessToken(ctx context.Context) (string, error) {
	return m.token, m.err
}

func (m *MockTokenProvider) RefreshToken(ctx context.Context) (string, error) {
	m.refreshd++
	m.token = "refreshed-token"

	return m.token, nil
}

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

// RetryRecorderHooks captures retry notifications.
type RetryRecorderHooks struct {
	teamhub.NoopHooks

	attempts     []int
	infoAttempts []int
	delays       []time.Duration
}

func (h *RetryRecorderHooks) OnRetry(_ context.Context, info teamhub.RequestInfo, attempt int, _ error, delay time.Duration) {
	h.attempts = append(h.attempts, attempt)
	h.infoAttempts = append(h.infoAttempts, info.Attempt)
	h.delays = append(h.delays, delay)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/1234567/projects.json", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := []map[string]interface{}{{"id": 1, "name": "Launch"}}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		auth := teamhub.NewBearerAuth(&MockTokenProvider{token: "test-token"})
		client := teamhubhttp.NewClient(server.URL, auth)

		req := &teamhubhttp.Request{
			Method: "GET",
			Path:   "/1234567/projects.json",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result []map[string]interface{}

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "Launch", result[0]["name"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/1234567/projects.json", request.URL.Path)
			assert.Equal(t, "status=archived", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := teamhubhttp.NewClient(server.URL, nil)

		req := &teamhubhttp.Request{
			Method: "GET",
			Path:   "/1234567/projects.json",
			Query:  url.Values{"status": []string{"archived"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "Launch", body["name"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := teamhubhttp.NewClient(server.URL, nil)

		req := &teamhubhttp.Request{
			Method: "POST",
			Path:   "/1234567/projects.json",
			Body:   map[string]string{"name": "Launch"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(writer).Encode(map[string]string{
				"error":   "not_found",
				"message": "Project not found",
			})
		}))
		defer server.Close()

		client := teamhubhttp.NewClient(server.URL, nil)

		req := &teamhubhttp.Request{
			Method: "GET",
			Path:   "/1234567/projects/99.json",
		}

		resp, err := client.Do(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		apiErr := teamhub.AsError(err)
		require.NotNil(t, apiErr)
		assert.Equal(t, teamhub.KindNotFound, apiErr.Kind)
		assert.Equal(t, 404, apiErr.HTTPStatus)
		assert.False(t, apiErr.Retryable)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := teamhubhttp.NewClient(server.URL, nil)

		req := &teamhubhttp.Request{
			Method: "GET",
			Path:   "/1234567/projects.json",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("no content normalized to null body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := teamhubhttp.NewClient(server.URL, nil)

		resp, err := client.Post(context.Background(), "/1234567/buckets/1/todos/2/completion.json", nil)
		require.NoError(t, err)
		assert.Equal(t, 204, resp.StatusCode)
		assert.Equal(t, []byte("null"), resp.Body)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := teamhubhttp.NewClient(server.URL, nil, teamhubhttp.WithLogger(logger), teamhubhttp.WithDebug(true))

		req := &teamhubhttp.Request{
			Method: "GET",
			Path:   "/1234567/projects.json",
		}

		_, err := client.Do(context.Background(), req)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*teamhubhttp.Client, context.Context) (*teamhubhttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *teamhubhttp.Client, ctx context.Context) (*teamhubhttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *teamhubhttp.Client, ctx context.Context) (*teamhubhttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *teamhubhttp.Client, ctx context.Context) (*teamhubhttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *teamhubhttp.Client, ctx context.Context) (*teamhubhttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *teamhubhttp.Client, ctx context.Context) (*teamhubhttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := teamhubhttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := teamhubhttp.NewClient(server.URL, nil, teamhubhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 3, attempts)
	})

	t.Run("retries on rate limiting honoring Retry-After", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 2 {
				writer.Header().Set("Retry-After", "0")
				writer.WriteHeader(http.StatusTooManyRequests)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := teamhubhttp.NewClient(server.URL, nil, teamhubhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 2, attempts)
	})

	t.Run("retries rate limited mutations", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 2 {
				writer.Header().Set("Retry-After", "0")
				writer.WriteHeader(http.StatusTooManyRequests)
			} else {
				writer.WriteHeader(http.StatusCreated)
			}
		}))
		defer server.Close()

		client := teamhubhttp.NewClient(server.URL, nil, teamhubhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Post(context.Background(), "/test", map[string]string{"name": "x"})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
		assert.Equal(t, 2, attempts)
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := teamhubhttp.NewClient(server.URL, nil, teamhubhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, 1, attempts) // Should not retry
	})

	t.Run("does not retry mutations on 5xx", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := teamhubhttp.NewClient(server.URL, nil, teamhubhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		_, err := client.Post(context.Background(), "/test", map[string]string{"name": "x"})
		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("stops after exhausting the attempt budget", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := teamhubhttp.NewClient(server.URL, nil, teamhubhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 503, resp.StatusCode)
		assert.Equal(t, 3, attempts)
		assert.True(t, teamhub.IsRetryable(err))
	})

	t.Run("announces the upcoming attempt number before each retry", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		hooks := &RetryRecorderHooks{}
		client := teamhubhttp.NewClient(server.URL, nil,
			teamhubhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond),
			teamhubhttp.WithHooks(hooks))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, []int{2, 3}, hooks.attempts)
		assert.Equal(t, []int{2, 3}, hooks.infoAttempts)
	})

	t.Run("retries idempotent mutations on 5xx", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 2 {
				writer.WriteHeader(http.StatusBadGateway)
			} else {
				writer.WriteHeader(http.StatusNoContent)
			}
		}))
		defer server.Close()

		client := teamhubhttp.NewClient(server.URL, nil, teamhubhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Do(context.Background(), &teamhubhttp.Request{
			Method:    "POST",
			Path:      "/1234567/buckets/1/todos/2/completion.json",
			RetrySafe: true,
		})
		require.NoError(t, err)
		assert.Equal(t, 204, resp.StatusCode)
		assert.Equal(t, 2, attempts)
	})
}

func TestClient_AuthRefresh(t *testing.T) {
	t.Parallel()
	t.Run("refreshes once on 401 and replays", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if request.Header.Get("Authorization") == "Bearer stale-token" {
				writer.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(writer).Encode(map[string]string{"error": "unauthorized"})

				return
			}

			assert.Equal(t, "Bearer refreshed-token", request.Header.Get("Authorization"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		provider := &MockTokenProvider{token: "stale-token"}
		client := teamhubhttp.NewClient(server.URL, teamhub.NewBearerAuth(provider))

		resp, err := client.Get(context.Background(), "/1234567/projects.json", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 1, provider.refreshd)
		assert.Equal(t, 2, attempts)
	})

	t.Run("second 401 is terminal", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(writer).Encode(map[string]string{"error": "unauthorized"})
		}))
		defer server.Close()

		provider := &MockTokenProvider{token: "stale-token"}
		client := teamhubhttp.NewClient(server.URL, teamhub.NewBearerAuth(provider))

		_, err := client.Get(context.Background(), "/1234567/projects.json", nil)
		require.Error(t, err)
		assert.True(t, teamhub.IsAuth(err))
		assert.Equal(t, 1, provider.refreshd)
	})
}

func TestClient_ConditionalCache(t *testing.T) {
	t.Parallel()
	t.Run("revalidates with If-None-Match and serves 304 from cache", func(t *testing.T) {
		t.Parallel()

		requests := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests++
			if request.Header.Get("If-None-Match") == `"v1"` {
				writer.WriteHeader(http.StatusNotModified)

				return
			}

			writer.Header().Set("ETag", `"v1"`)
			_ = json.NewEncoder(writer).Encode([]map[string]interface{}{{"id": 1}})
		}))
		defer server.Close()

		cache := teamhub.NewMemoryCache(10)
		auth := teamhub.NewBearerAuth(&MockTokenProvider{token: "test-token"})
		client := teamhubhttp.NewClient(server.URL, auth, teamhubhttp.WithCache(cache))

		first, err := client.Get(context.Background(), "/1234567/projects.json", nil)
		require.NoError(t, err)
		assert.False(t, first.FromCache)
		assert.Equal(t, 1, cache.Len())

		second, err := client.Get(context.Background(), "/1234567/projects.json", nil)
		require.NoError(t, err)
		assert.True(t, second.FromCache)
		assert.Equal(t, 200, second.StatusCode)
		assert.Equal(t, first.Body, second.Body)
		assert.Equal(t, 2, requests)
	})

	t.Run("response without ETag is not stored", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.Header.Get("If-None-Match"))
			_ = json.NewEncoder(writer).Encode([]map[string]interface{}{{"id": 1}})
		}))
		defer server.Close()

		cache := teamhub.NewMemoryCache(10)
		client := teamhubhttp.NewClient(server.URL, nil, teamhubhttp.WithCache(cache))

		_, err := client.Get(context.Background(), "/1234567/projects.json", nil)
		require.NoError(t, err)

		_, err = client.Get(context.Background(), "/1234567/projects.json", nil)
		require.NoError(t, err)
		assert.Equal(t, 0, cache.Len())
	})
}
