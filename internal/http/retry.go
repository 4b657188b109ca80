package http

import (
	"context"
	"errors"
	"math"
	"math/rand"
	nethttp "net/http"
	"strconv"
	"time"

	"github.com/teamhub-io/teamhub-client/internal/constants"
)

// RetryConfig tunes the transport retry loop.
type RetryConfig struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int
	// WaitMin is the backoff before the first retry.
	WaitMin time.Duration
	// WaitMax caps the backoff.
	WaitMax time.Duration
}

// DefaultRetryConfig returns the retry settings used when none are given.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: constants.DefaultRetryMax,
		WaitMin:    constants.DefaultRetryWaitMin,
		WaitMax:    constants.DefaultRetryWaitMax,
	}
}

// retryDecision is the outcome of classifying one failed attempt.
type retryDecision struct {
	retry bool
	// delay overrides backoff when the server supplied Retry-After.
	delay time.Duration
}

// decideRetry applies the retry policy to a failed attempt.
//
//   - 429 is retried for every method; the server explicitly asked us to
//     come back later.
//   - 5xx is retried only when replaying cannot duplicate a side effect:
//     GET/HEAD, or a mutation marked retry-safe by the caller.
//   - Transport errors are retried for GET/HEAD only; the request may have
//     reached the server before the connection died.
//   - Context cancellation is always terminal.
func decideRetry(method string, statusCode int, transportErr error, retrySafe bool, retryAfter string) retryDecision {
	if transportErr != nil {
		if errors.Is(transportErr, context.Canceled) || errors.Is(transportErr, context.DeadlineExceeded) {
			return retryDecision{retry: false}
		}

		return retryDecision{retry: isReadMethod(method)}
	}

	switch {
	case statusCode == nethttp.StatusTooManyRequests:
		delay, _ := parseRetryAfter(retryAfter)

		return retryDecision{retry: true, delay: delay}

	case statusCode >= 500:
		return retryDecision{retry: isReadMethod(method) || retrySafe}

	default:
		return retryDecision{retry: false}
	}
}

func isReadMethod(method string) bool {
	return method == nethttp.MethodGet || method == nethttp.MethodHead
}

// backoff computes the exponential backoff with jitter for a retry.
// attempt is 1-based: the first retry waits around WaitMin.
func backoff(cfg RetryConfig, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	wait := float64(cfg.WaitMin) * math.Pow(constants.ExponentialBackoffBase, float64(attempt-1))
	if wait > float64(cfg.WaitMax) {
		wait = float64(cfg.WaitMax)
	}

	// Up to 25% jitter keeps synchronized clients from retrying in step.
	jitter := wait * 0.25 * rand.Float64()

	return time.Duration(wait + jitter)
}

// parseRetryAfter reads a Retry-After header value as either a delay in
// seconds or an HTTP-date. The result is capped so a hostile or broken
// server cannot park the client for hours.
func parseRetryAfter(value string) (time.Duration, bool) {
	if value == "" {
		return 0, false
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return 0, false
		}

		return capRetryAfter(time.Duration(seconds) * time.Second), true
	}

	if at, err := nethttp.ParseTime(value); err == nil {
		delay := time.Until(at)
		if delay < 0 {
			delay = 0
		}

		return capRetryAfter(delay), true
	}

	return 0, false
}

func capRetryAfter(delay time.Duration) time.Duration {
	if delay > constants.MaxRetryAfter {
		return constants.MaxRetryAfter
	}

	return delay
}

// sleepCtx waits for the given delay, returning early with the context's
// error if it is cancelled first.
func sleepCtx(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
