package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamhub-io/teamhub-client/internal/constants"
)

var errConnReset = errors.New("read: connection reset by peer")

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestDecideRetry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		method       string
		statusCode   int
		transportErr error
		retrySafe    bool
		retryAfter   string
		wantRetry    bool
		wantDelay    time.Duration
	}{
		{
			name:       "rate limit retries GET",
			method:     http.MethodGet,
			statusCode: http.StatusTooManyRequests,
			retryAfter: "2",
			wantRetry:  true,
			wantDelay:  2 * time.Second,
		},
		{
			name:       "rate limit retries POST",
			method:     http.MethodPost,
			statusCode: http.StatusTooManyRequests,
			wantRetry:  true,
		},
		{
			name:       "server error retries GET",
			method:     http.MethodGet,
			statusCode: http.StatusInternalServerError,
			wantRetry:  true,
		},
		{
			name:       "server error retries HEAD",
			method:     http.MethodHead,
			statusCode: http.StatusBadGateway,
			wantRetry:  true,
		},
		{
			name:       "server error does not retry POST",
			method:     http.MethodPost,
			statusCode: http.StatusInternalServerError,
			wantRetry:  false,
		},
		{
			name:       "server error retries retry-safe POST",
			method:     http.MethodPost,
			statusCode: http.StatusInternalServerError,
			retrySafe:  true,
			wantRetry:  true,
		},
		{
			name:       "client error is terminal",
			method:     http.MethodGet,
			statusCode: http.StatusBadRequest,
			wantRetry:  false,
		},
		{
			name:       "not found is terminal",
			method:     http.MethodGet,
			statusCode: http.StatusNotFound,
			wantRetry:  false,
		},
		{
			name:         "transport error retries GET",
			method:       http.MethodGet,
			transportErr: errConnReset,
			wantRetry:    true,
		},
		{
			name:         "transport error does not retry POST",
			method:       http.MethodPost,
			transportErr: errConnReset,
			wantRetry:    false,
		},
		{
			name:         "transport error does not retry retry-safe POST",
			method:       http.MethodPost,
			transportErr: errConnReset,
			retrySafe:    true,
			wantRetry:    false,
		},
		{
			name:         "cancellation is terminal",
			method:       http.MethodGet,
			transportErr: context.Canceled,
			wantRetry:    false,
		},
		{
			name:         "deadline is terminal",
			method:       http.MethodGet,
			transportErr: context.DeadlineExceeded,
			wantRetry:    false,
		},
	}

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			decision := decideRetry(testCase.method, testCase.statusCode, testCase.transportErr, testCase.retrySafe, testCase.retryAfter)
			assert.Equal(t, testCase.wantRetry, decision.retry)

			if testCase.wantDelay > 0 {
				assert.Equal(t, testCase.wantDelay, decision.delay)
			}
		})
	}
}

func TestBackoff(t *testing.T) {
	t.Parallel()

	cfg := RetryConfig{
		MaxRetries: 5,
		WaitMin:    100 * time.Millisecond,
		WaitMax:    time.Second,
	}

	// Each retry doubles the base wait until WaitMax; jitter adds up to 25%.
	for attempt, base := range map[int]time.Duration{
		1: 100 * time.Millisecond,
		2: 200 * time.Millisecond,
		3: 400 * time.Millisecond,
		4: 800 * time.Millisecond,
		5: time.Second,
		6: time.Second,
	} {
		delay := backoff(cfg, attempt)
		assert.GreaterOrEqual(t, delay, base, "attempt %d", attempt)
		assert.LessOrEqual(t, delay, base+base/4, "attempt %d", attempt)
	}

	// Attempts below 1 behave like the first retry.
	delay := backoff(cfg, 0)
	assert.GreaterOrEqual(t, delay, cfg.WaitMin)
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()

	t.Run("seconds", func(t *testing.T) {
		t.Parallel()

		delay, ok := parseRetryAfter("3")
		require.True(t, ok)
		assert.Equal(t, 3*time.Second, delay)
	})

	t.Run("http date", func(t *testing.T) {
		t.Parallel()

		at := time.Now().Add(5 * time.Second).UTC()

		delay, ok := parseRetryAfter(at.Format(http.TimeFormat))
		require.True(t, ok)
		assert.Greater(t, delay, time.Duration(0))
		assert.LessOrEqual(t, delay, 5*time.Second)
	})

	t.Run("past http date clamps to zero", func(t *testing.T) {
		t.Parallel()

		at := time.Now().Add(-time.Minute).UTC()

		delay, ok := parseRetryAfter(at.Format(http.TimeFormat))
		require.True(t, ok)
		assert.Equal(t, time.Duration(0), delay)
	})

	t.Run("caps excessive delays", func(t *testing.T) {
		t.Parallel()

		delay, ok := parseRetryAfter("86400")
		require.True(t, ok)
		assert.Equal(t, constants.MaxRetryAfter, delay)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()

		for _, value := range []string{"", "soon", "-5"} {
			_, ok := parseRetryAfter(value)
			assert.False(t, ok, "value %q", value)
		}
	})
}

func TestDoHonorsRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("waits out the server requested delay", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts == 1 {
				writer.Header().Set("Retry-After", "2")
				writer.WriteHeader(http.StatusTooManyRequests)

				return
			}

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(server.URL, nil, WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		var slept []time.Duration

		client.sleep = func(ctx context.Context, d time.Duration) error {
			slept = append(slept, d)

			return nil
		}

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, []time.Duration{2 * time.Second}, slept)
	})

	t.Run("falls back to backoff without Retry-After", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 3 {
				writer.WriteHeader(http.StatusServiceUnavailable)

				return
			}

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		cfg := RetryConfig{MaxRetries: 3, WaitMin: 100 * time.Millisecond, WaitMax: time.Second}
		client := NewClient(server.URL, nil, WithRetryConfig(cfg.MaxRetries, cfg.WaitMin, cfg.WaitMax))

		var slept []time.Duration

		client.sleep = func(ctx context.Context, d time.Duration) error {
			slept = append(slept, d)

			return nil
		}

		_, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		require.Len(t, slept, 2)

		// Each wait falls inside the jittered backoff window for its attempt.
		for i, delay := range slept {
			base := cfg.WaitMin << i

			assert.GreaterOrEqual(t, delay, base, "wait %d", i+1)
			assert.LessOrEqual(t, delay, base+base/4, "wait %d", i+1)
		}
	})
}

func TestSleepCtx(t *testing.T) {
	t.Parallel()

	t.Run("returns after delay", func(t *testing.T) {
		t.Parallel()

		err := sleepCtx(context.Background(), time.Millisecond)
		require.NoError(t, err)
	})

	t.Run("returns early on cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := sleepCtx(ctx, time.Minute)
		require.ErrorIs(t, err, context.Canceled)
	})
}
