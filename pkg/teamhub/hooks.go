package teamhub

import (
	"context"
	"time"
)

// Hooks provides observability callbacks for SDK operations.
// Implementations can use these hooks for logging, metrics, or tracing.
//
// There are two levels of hooks:
//   - Operation-level: OnOperationStart/OnOperationEnd for logical SDK
//     operations (one caller-visible call, e.g. "Projects.List").
//   - Request-level: OnRequestStart/OnRequestEnd for physical HTTP attempts.
//
// A retried operation produces multiple request-level events but exactly one
// operation-level pair. OnOperationEnd always fires, whether the operation
// succeeded or failed, and receives the error (if any) and wall-clock
// duration.
//
// Hook implementations must not affect the outcome of the underlying
// operation: the dispatcher recovers panics raised by hooks and discards
// them.
type Hooks interface {
	// OnOperationStart is called when a logical SDK operation begins.
	// The returned context is passed to OnOperationEnd.
	OnOperationStart(ctx context.Context, op OperationInfo) context.Context

	// OnOperationEnd is called exactly once when a logical SDK operation
	// completes. The ctx is the one returned from OnOperationStart.
	OnOperationEnd(ctx context.Context, op OperationInfo, err error, duration time.Duration)

	// OnRequestStart is called before each physical HTTP attempt.
	// The returned context is passed to OnRequestEnd.
	OnRequestStart(ctx context.Context, info RequestInfo) context.Context

	// OnRequestEnd is called after each physical HTTP attempt completes.
	OnRequestEnd(ctx context.Context, info RequestInfo, result RequestResult)

	// OnRetry is called after a failed attempt, before the backoff delay is
	// awaited. attempt is the attempt number about to be tried.
	OnRetry(ctx context.Context, info RequestInfo, attempt int, err error, delay time.Duration)
}

// OperationInfo identifies a logical API call. It is constructed once per
// call, is immutable, and is passed to hooks.
type OperationInfo struct {
	// Service is the logical service (e.g., "Projects", "Todos").
	Service string
	// Operation is the specific method (e.g., "List", "Create", "Complete").
	Operation string
	// ResourceType is the resource type (e.g., "project", "todo").
	ResourceType string
	// IsMutation indicates whether this operation modifies state.
	IsMutation bool
	// ProjectID is the project (bucket) ID if applicable.
	ProjectID int64
	// ResourceID is the specific resource ID if applicable.
	ResourceID int64
}

// RequestInfo identifies one physical HTTP attempt. A fresh value is created
// for every retry attempt.
type RequestInfo struct {
	Method string
	URL    string
	// Attempt is the current attempt number (1-indexed).
	Attempt int
}

// RequestResult contains the outcome of one physical HTTP attempt.
type RequestResult struct {
	// StatusCode is the HTTP status code (0 if the request failed before a
	// response was received).
	StatusCode int
	// Duration is the time taken for the attempt.
	Duration time.Duration
	// Error is non-nil if the attempt failed.
	Error error
	// FromCache indicates the response was served from the conditional cache.
	FromCache bool
	// Retryable indicates whether this failure is eligible for retry.
	Retryable bool
}

// NoopHooks is a no-op implementation of Hooks. All methods are empty so the
// compiler can inline them, giving zero overhead when no observability is
// configured.
type NoopHooks struct{}

var _ Hooks = NoopHooks{}

// OnOperationStart returns the context unchanged.
func (NoopHooks) OnOperationStart(ctx context.Context, _ OperationInfo) context.Context { return ctx }

// OnOperationEnd does nothing.
func (NoopHooks) OnOperationEnd(context.Context, OperationInfo, error, time.Duration) {}

// OnRequestStart returns the context unchanged.
func (NoopHooks) OnRequestStart(ctx context.Context, _ RequestInfo) context.Context { return ctx }

// OnRequestEnd does nothing.
func (NoopHooks) OnRequestEnd(context.Context, RequestInfo, RequestResult) {}

// OnRetry does nothing.
func (NoopHooks) OnRetry(context.Context, RequestInfo, int, error, time.Duration) {}

// ChainHooks combines multiple Hooks implementations. Start events fire in
// registration order; end events fire in reverse registration order, so the
// first hook to observe "start" is the last to observe "end". This mirrors a
// nesting discipline and lets span-like instrumentation wrap everything
// registered after it.
type ChainHooks struct {
	hooks []Hooks
}

// NewChainHooks creates a Hooks chain from the given hooks. Nil entries and
// NoopHooks are filtered out; if nothing remains, NoopHooks is returned.
func NewChainHooks(hooks ...Hooks) Hooks {
	filtered := make([]Hooks, 0, len(hooks))

	for _, h := range hooks {
		if h == nil {
			continue
		}

		if _, isNoop := h.(NoopHooks); isNoop {
			continue
		}

		filtered = append(filtered, h)
	}

	switch len(filtered) {
	case 0:
		return NoopHooks{}
	case 1:
		return filtered[0]
	default:
		return &ChainHooks{hooks: filtered}
	}
}

// OnOperationStart calls all hooks in registration order.
func (c *ChainHooks) OnOperationStart(ctx context.Context, op OperationInfo) context.Context {
	for _, h := range c.hooks {
		ctx = h.OnOperationStart(ctx, op)
	}

	return ctx
}

// OnOperationEnd calls all hooks in reverse registration order.
func (c *ChainHooks) OnOperationEnd(ctx context.Context, op OperationInfo, err error, duration time.Duration) {
	for i := len(c.hooks) - 1; i >= 0; i-- {
		c.hooks[i].OnOperationEnd(ctx, op, err, duration)
	}
}

// OnRequestStart calls all hooks in registration order.
func (c *ChainHooks) OnRequestStart(ctx context.Context, info RequestInfo) context.Context {
	for _, h := range c.hooks {
		ctx = h.OnRequestStart(ctx, info)
	}

	return ctx
}

// OnRequestEnd calls all hooks in reverse registration order.
func (c *ChainHooks) OnRequestEnd(ctx context.Context, info RequestInfo, result RequestResult) {
	for i := len(c.hooks) - 1; i >= 0; i-- {
		c.hooks[i].OnRequestEnd(ctx, info, result)
	}
}

// OnRetry calls all hooks in registration order.
func (c *ChainHooks) OnRetry(ctx context.Context, info RequestInfo, attempt int, err error, delay time.Duration) {
	for _, h := range c.hooks {
		h.OnRetry(ctx, info, attempt, err, delay)
	}
}

// GuardHooks wraps hooks so that a panic raised by any hook method is
// recovered and discarded instead of propagating to the caller. The request
// pipeline applies this wrapper to all configured hooks, guaranteeing that
// observer failures never alter operation outcomes.
//
// Passing nil or NoopHooks returns NoopHooks unwrapped.
func GuardHooks(hooks Hooks) Hooks {
	if hooks == nil {
		return NoopHooks{}
	}

	if _, isNoop := hooks.(NoopHooks); isNoop {
		return hooks
	}

	if _, guarded := hooks.(*guardedHooks); guarded {
		return hooks
	}

	return &guardedHooks{inner: hooks}
}

type guardedHooks struct {
	inner Hooks
}

func swallowPanic() {
	_ = recover()
}

func (g *guardedHooks) OnOperationStart(ctx context.Context, op OperationInfo) (out context.Context) {
	out = ctx

	defer swallowPanic()

	if next := g.inner.OnOperationStart(ctx, op); next != nil {
		out = next
	}

	return out
}

func (g *guardedHooks) OnOperationEnd(ctx context.Context, op OperationInfo, err error, duration time.Duration) {
	defer swallowPanic()
	g.inner.OnOperationEnd(ctx, op, err, duration)
}

func (g *guardedHooks) OnRequestStart(ctx context.Context, info RequestInfo) (out context.Context) {
	out = ctx

	defer swallowPanic()

	if next := g.inner.OnRequestStart(ctx, info); next != nil {
		out = next
	}

	return out
}

func (g *guardedHooks) OnRequestEnd(ctx context.Context, info RequestInfo, result RequestResult) {
	defer swallowPanic()
	g.inner.OnRequestEnd(ctx, info, result)
}

func (g *guardedHooks) OnRetry(ctx context.Context, info RequestInfo, attempt int, err error, delay time.Duration) {
	defer swallowPanic()
	g.inner.OnRetry(ctx, info, attempt, err, delay)
}
