package teamhub

import (
	"errors"
	"fmt"
	"time"
)

// Error kinds returned by the API client. Every failed operation surfaces
// exactly one kind; callers are expected to branch on Kind for exhaustive
// handling.
const (
	KindUsage      = "usage"
	KindNotFound   = "not_found"
	KindAuth       = "auth"
	KindForbidden  = "forbidden"
	KindRateLimit  = "rate_limit"
	KindValidation = "validation"
	KindNetwork    = "network"
	KindAPI        = "api_error"
	KindAmbiguous  = "ambiguous"
)

// Exit codes for CLI tools, one per error kind.
const (
	ExitOK        = 0
	ExitUsage     = 1
	ExitNotFound  = 2
	ExitAuth      = 3
	ExitForbidden = 4
	ExitRateLimit = 5
	ExitNetwork   = 6
	ExitAPI       = 7
	ExitAmbiguous = 8
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrAccountIDRequired   = errors.New("account ID is required")
	ErrNoTokenConfigured   = errors.New("no token manager configured")
)

// Error is the structured error type surfaced by every SDK operation.
// It carries the taxonomy kind, the originating HTTP status (if any), a
// human-readable hint, and retry metadata. Errors are immutable after
// construction.
type Error struct {
	Kind       string
	Message    string
	Hint       string
	HTTPStatus int
	// Retryable reports whether the underlying condition was transient.
	// A terminal error with Retryable=true means the client gave up after
	// exhausting its attempts, not that the condition was permanent.
	Retryable bool
	// RetryAfter is the server-requested delay for rate_limit errors.
	RetryAfter time.Duration
	Cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Hint)
	}

	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// ExitCode returns the CLI exit code for this error's kind.
func (e *Error) ExitCode() int {
	return ExitCodeFor(e.Kind)
}

// ExitCodeFor maps an error kind to a CLI exit code.
func ExitCodeFor(kind string) int {
	switch kind {
	case KindUsage:
		return ExitUsage
	case KindNotFound:
		return ExitNotFound
	case KindAuth:
		return ExitAuth
	case KindForbidden:
		return ExitForbidden
	case KindRateLimit:
		return ExitRateLimit
	case KindNetwork:
		return ExitNetwork
	case KindAmbiguous:
		return ExitAmbiguous
	default:
		return ExitAPI
	}
}

// ErrUsage creates a usage error for invalid SDK arguments.
func ErrUsage(msg string) *Error {
	return &Error{Kind: KindUsage, Message: msg}
}

// ErrUsageHint creates a usage error with a remediation hint.
func ErrUsageHint(msg, hint string) *Error {
	return &Error{Kind: KindUsage, Message: msg, Hint: hint}
}

// ErrNotFound creates a not-found error for the named resource.
func ErrNotFound(resource, identifier string) *Error {
	return &Error{
		Kind:       KindNotFound,
		Message:    fmt.Sprintf("%s not found: %s", resource, identifier),
		HTTPStatus: 404,
	}
}

// ErrAuth creates an authentication error.
func ErrAuth(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg, HTTPStatus: 401}
}

// ErrForbidden creates a forbidden error.
func ErrForbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg, HTTPStatus: 403}
}

// ErrForbiddenScope creates a forbidden error caused by insufficient
// OAuth scope, with a hint to re-authenticate.
func ErrForbiddenScope() *Error {
	return &Error{
		Kind:       KindForbidden,
		Message:    "access denied: insufficient scope",
		Hint:       "re-authenticate with full scope",
		HTTPStatus: 403,
	}
}

// ErrValidation creates a validation error for a rejected request body.
func ErrValidation(status int, msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg, HTTPStatus: status}
}

// ErrRateLimit creates a rate-limit error carrying the server-requested
// retry delay (zero when the server sent no Retry-After header).
func ErrRateLimit(retryAfter time.Duration) *Error {
	hint := "try again later"
	if retryAfter > 0 {
		hint = fmt.Sprintf("try again in %s", retryAfter)
	}

	return &Error{
		Kind:       KindRateLimit,
		Message:    "rate limited",
		Hint:       hint,
		HTTPStatus: 429,
		Retryable:  true,
		RetryAfter: retryAfter,
	}
}

// ErrNetwork creates a network error wrapping a transport failure.
func ErrNetwork(cause error) *Error {
	return &Error{
		Kind:      KindNetwork,
		Message:   "network error",
		Hint:      cause.Error(),
		Retryable: true,
		Cause:     cause,
	}
}

// ErrCancelled creates a network-kind error for a cancelled or timed-out
// operation. Cancellation is never retryable.
func ErrCancelled(cause error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: "operation cancelled",
		Hint:    cause.Error(),
		Cause:   cause,
	}
}

// ErrAPI creates an API error carrying an HTTP status code.
func ErrAPI(status int, msg string) *Error {
	return &Error{
		Kind:       KindAPI,
		Message:    msg,
		HTTPStatus: status,
		Retryable:  status >= 500,
	}
}

// ErrAmbiguous creates an ambiguous-match error listing candidates.
func ErrAmbiguous(resource string, matches []string) *Error {
	hint := "be more specific"
	if len(matches) > 0 && len(matches) <= 5 {
		hint = fmt.Sprintf("did you mean: %v", matches)
	}

	return &Error{
		Kind:    KindAmbiguous,
		Message: fmt.Sprintf("ambiguous %s", resource),
		Hint:    hint,
	}
}

// ClassifyStatus maps an HTTP status code to exactly one error kind.
// The mapping is pure and total: the same (status, retryAfter, msg) input
// always yields an error of the same kind and retryable flag.
//
// Statuses in the 2xx/3xx range are the caller's responsibility and map to
// a generic api_error if passed here.
func ClassifyStatus(status int, retryAfter time.Duration, msg string) *Error {
	switch status {
	case 400, 422:
		if msg == "" {
			msg = fmt.Sprintf("validation error (HTTP %d)", status)
		}

		return ErrValidation(status, msg)
	case 401:
		if msg == "" {
			msg = "authentication failed"
		}

		return ErrAuth(msg)
	case 403:
		if msg == "" {
			msg = "access denied"
		}

		return ErrForbidden(msg)
	case 404:
		if msg == "" {
			msg = "resource not found"
		}

		return &Error{Kind: KindNotFound, Message: msg, HTTPStatus: 404}
	case 429:
		return ErrRateLimit(retryAfter)
	}

	if msg == "" {
		msg = fmt.Sprintf("request failed (HTTP %d)", status)
	}

	if status >= 500 {
		return &Error{Kind: KindAPI, Message: msg, HTTPStatus: status, Retryable: true}
	}

	// Unrecognized 4xx: generic client error, not retryable.
	return &Error{Kind: KindAPI, Message: msg, HTTPStatus: status}
}

// AsError converts err to an *Error, wrapping foreign errors as api_error.
// A nil error stays nil.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}

	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr
	}

	return &Error{Kind: KindAPI, Message: err.Error(), Cause: err}
}

// IsNotFound reports whether err is a not_found error.
func IsNotFound(err error) bool {
	return kindOf(err) == KindNotFound
}

// IsAuth reports whether err is an auth error.
func IsAuth(err error) bool {
	return kindOf(err) == KindAuth
}

// IsForbidden reports whether err is a forbidden error.
func IsForbidden(err error) bool {
	return kindOf(err) == KindForbidden
}

// IsRateLimit reports whether err is a rate_limit error.
func IsRateLimit(err error) bool {
	return kindOf(err) == KindRateLimit
}

// IsRetryable reports whether err carries a retryable classification.
func IsRetryable(err error) bool {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Retryable
	}

	return false
}

func kindOf(err error) string {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}

	return ""
}
