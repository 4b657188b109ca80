package teamhub_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("message without hint", func(t *testing.T) {
		t.Parallel()

		err := teamhub.ErrAuth("authentication failed")
		assert.Equal(t, "authentication failed", err.Error())
	})

	t.Run("message with hint", func(t *testing.T) {
		t.Parallel()

		err := teamhub.ErrUsageHint("project ID is required", "pass --project")
		assert.Equal(t, "project ID is required: pass --project", err.Error())
	})

	t.Run("unwrap returns cause", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("connection refused")
		err := teamhub.ErrNetwork(cause)

		assert.ErrorIs(t, err, cause)
		assert.Equal(t, cause, err.Unwrap())
	})

	t.Run("works with errors.As through wrapping", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("listing projects: %w", teamhub.ErrNotFound("project", "42"))

		apiErr := &teamhub.Error{}
		require.ErrorAs(t, wrapped, &apiErr)
		assert.Equal(t, teamhub.KindNotFound, apiErr.Kind)
		assert.Equal(t, 404, apiErr.HTTPStatus)
	})
}

func TestErrorConstructors(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		err := teamhub.ErrNotFound("project", "42")
		assert.Equal(t, teamhub.KindNotFound, err.Kind)
		assert.Equal(t, 404, err.HTTPStatus)
		assert.Contains(t, err.Message, "project not found: 42")
		assert.False(t, err.Retryable)
	})

	t.Run("rate limit with retry after", func(t *testing.T) {
		t.Parallel()

		err := teamhub.ErrRateLimit(30 * time.Second)
		assert.Equal(t, teamhub.KindRateLimit, err.Kind)
		assert.Equal(t, 429, err.HTTPStatus)
		assert.True(t, err.Retryable)
		assert.Equal(t, 30*time.Second, err.RetryAfter)
		assert.Contains(t, err.Hint, "30s")
	})

	t.Run("rate limit without retry after", func(t *testing.T) {
		t.Parallel()

		err := teamhub.ErrRateLimit(0)
		assert.Zero(t, err.RetryAfter)
		assert.Equal(t, "try again later", err.Hint)
	})

	t.Run("network is retryable", func(t *testing.T) {
		t.Parallel()

		err := teamhub.ErrNetwork(errors.New("dial tcp: timeout"))
		assert.Equal(t, teamhub.KindNetwork, err.Kind)
		assert.True(t, err.Retryable)
	})

	t.Run("cancelled is never retryable", func(t *testing.T) {
		t.Parallel()

		err := teamhub.ErrCancelled(errors.New("context canceled"))
		assert.Equal(t, teamhub.KindNetwork, err.Kind)
		assert.False(t, err.Retryable)
	})

	t.Run("api error retryable only on 5xx", func(t *testing.T) {
		t.Parallel()

		assert.True(t, teamhub.ErrAPI(503, "service unavailable").Retryable)
		assert.False(t, teamhub.ErrAPI(418, "teapot").Retryable)
	})

	t.Run("forbidden scope carries hint", func(t *testing.T) {
		t.Parallel()

		err := teamhub.ErrForbiddenScope()
		assert.Equal(t, teamhub.KindForbidden, err.Kind)
		assert.Contains(t, err.Hint, "re-authenticate")
	})

	t.Run("ambiguous lists candidates", func(t *testing.T) {
		t.Parallel()

		err := teamhub.ErrAmbiguous("project", []string{"Alpha", "Alphabet"})
		assert.Equal(t, teamhub.KindAmbiguous, err.Kind)
		assert.Contains(t, err.Hint, "Alpha")

		many := make([]string, 10)
		err = teamhub.ErrAmbiguous("project", many)
		assert.Equal(t, "be more specific", err.Hint)
	})
}

func TestClassifyStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		status        int
		wantKind      string
		wantRetryable bool
	}{
		{name: "400 validation", status: 400, wantKind: teamhub.KindValidation},
		{name: "422 validation", status: 422, wantKind: teamhub.KindValidation},
		{name: "401 auth", status: 401, wantKind: teamhub.KindAuth},
		{name: "403 forbidden", status: 403, wantKind: teamhub.KindForbidden},
		{name: "404 not found", status: 404, wantKind: teamhub.KindNotFound},
		{name: "429 rate limit", status: 429, wantKind: teamhub.KindRateLimit, wantRetryable: true},
		{name: "500 api error", status: 500, wantKind: teamhub.KindAPI, wantRetryable: true},
		{name: "503 api error", status: 503, wantKind: teamhub.KindAPI, wantRetryable: true},
		{name: "418 generic client error", status: 418, wantKind: teamhub.KindAPI},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := teamhub.ClassifyStatus(test.status, 0, "")
			assert.Equal(t, test.wantKind, err.Kind)
			assert.Equal(t, test.status, err.HTTPStatus)
			assert.Equal(t, test.wantRetryable, err.Retryable)
			assert.NotEmpty(t, err.Message)
		})
	}

	t.Run("server message preferred over default", func(t *testing.T) {
		t.Parallel()

		err := teamhub.ClassifyStatus(422, 0, "name can't be blank")
		assert.Equal(t, "name can't be blank", err.Message)
	})

	t.Run("429 carries retry after", func(t *testing.T) {
		t.Parallel()

		err := teamhub.ClassifyStatus(429, 10*time.Second, "")
		assert.Equal(t, 10*time.Second, err.RetryAfter)
	})
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind string
		want int
	}{
		{kind: teamhub.KindUsage, want: teamhub.ExitUsage},
		{kind: teamhub.KindNotFound, want: teamhub.ExitNotFound},
		{kind: teamhub.KindAuth, want: teamhub.ExitAuth},
		{kind: teamhub.KindForbidden, want: teamhub.ExitForbidden},
		{kind: teamhub.KindRateLimit, want: teamhub.ExitRateLimit},
		{kind: teamhub.KindNetwork, want: teamhub.ExitNetwork},
		{kind: teamhub.KindAPI, want: teamhub.ExitAPI},
		{kind: teamhub.KindAmbiguous, want: teamhub.ExitAmbiguous},
		{kind: teamhub.KindValidation, want: teamhub.ExitAPI},
	}

	for _, test := range tests {
		test := test

		t.Run(test.kind, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.want, teamhub.ExitCodeFor(test.kind))
		})
	}

	t.Run("error exit code matches kind", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, teamhub.ExitRateLimit, teamhub.ErrRateLimit(0).ExitCode())
	})
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	t.Run("kind predicates", func(t *testing.T) {
		t.Parallel()

		assert.True(t, teamhub.IsNotFound(teamhub.ErrNotFound("todo", "7")))
		assert.True(t, teamhub.IsAuth(teamhub.ErrAuth("bad token")))
		assert.True(t, teamhub.IsForbidden(teamhub.ErrForbidden("denied")))
		assert.True(t, teamhub.IsRateLimit(teamhub.ErrRateLimit(time.Second)))

		assert.False(t, teamhub.IsNotFound(teamhub.ErrAuth("bad token")))
		assert.False(t, teamhub.IsAuth(errors.New("plain error")))
	})

	t.Run("predicates see through wrapping", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("fetching todo: %w", teamhub.ErrNotFound("todo", "7"))
		assert.True(t, teamhub.IsNotFound(wrapped))
	})

	t.Run("is retryable", func(t *testing.T) {
		t.Parallel()

		assert.True(t, teamhub.IsRetryable(teamhub.ErrNetwork(errors.New("reset"))))
		assert.True(t, teamhub.IsRetryable(teamhub.ErrAPI(502, "bad gateway")))
		assert.False(t, teamhub.IsRetryable(teamhub.ErrUsage("bad argument")))
		assert.False(t, teamhub.IsRetryable(errors.New("plain error")))
	})
}

func TestAsError(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, teamhub.AsError(nil))
	})

	t.Run("passes through structured errors", func(t *testing.T) {
		t.Parallel()

		orig := teamhub.ErrForbidden("denied")
		assert.Same(t, orig, teamhub.AsError(orig))
	})

	t.Run("wraps foreign errors as api errors", func(t *testing.T) {
		t.Parallel()

		plain := errors.New("something broke")
		err := teamhub.AsError(plain)
		assert.Equal(t, teamhub.KindAPI, err.Kind)
		assert.ErrorIs(t, err, plain)
	})
}
