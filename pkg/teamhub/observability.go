package teamhub

import (
	"context"
	"sync"
	"time"
)

// LoggingHooks is a stock Hooks implementation that writes operation and
// request lifecycle events to a Logger at debug level (errors at error
// level).
type LoggingHooks struct {
	Logger Logger
}

var _ Hooks = (*LoggingHooks)(nil)

// OnOperationStart logs the beginning of a logical operation.
func (l *LoggingHooks) OnOperationStart(ctx context.Context, op OperationInfo) context.Context {
	l.Logger.Debug("operation start", map[string]interface{}{
		"service":   op.Service,
		"operation": op.Operation,
		"mutation":  op.IsMutation,
	})

	return ctx
}

// OnOperationEnd logs the completion of a logical operation.
func (l *LoggingHooks) OnOperationEnd(ctx context.Context, op OperationInfo, err error, duration time.Duration) {
	fields := map[string]interface{}{
		"service":   op.Service,
		"operation": op.Operation,
		"duration":  duration.String(),
	}

	if err != nil {
		fields["error"] = err.Error()
		l.Logger.Error("operation failed", fields)

		return
	}

	l.Logger.Debug("operation end", fields)
}

// OnRequestStart logs an outgoing HTTP attempt.
func (l *LoggingHooks) OnRequestStart(ctx context.Context, info RequestInfo) context.Context {
	l.Logger.Debug("request start", map[string]interface{}{
		"method":  info.Method,
		"url":     info.URL,
		"attempt": info.Attempt,
	})

	return ctx
}

// OnRequestEnd logs a completed HTTP attempt.
func (l *LoggingHooks) OnRequestEnd(ctx context.Context, info RequestInfo, result RequestResult) {
	fields := map[string]interface{}{
		"method":     info.Method,
		"url":        info.URL,
		"attempt":    info.Attempt,
		"status":     result.StatusCode,
		"duration":   result.Duration.String(),
		"from_cache": result.FromCache,
	}

	if result.Error != nil {
		fields["error"] = result.Error.Error()
		l.Logger.Error("request failed", fields)

		return
	}

	l.Logger.Debug("request end", fields)
}

// OnRetry logs a pending retry and its computed delay.
func (l *LoggingHooks) OnRetry(ctx context.Context, info RequestInfo, attempt int, err error, delay time.Duration) {
	l.Logger.Warn("retrying request", map[string]interface{}{
		"method":  info.Method,
		"url":     info.URL,
		"attempt": attempt,
		"delay":   delay.String(),
		"error":   err.Error(),
	})
}

// OperationMetrics aggregates counters for one (service, operation) pair.
type OperationMetrics struct {
	Operations int64
	Errors     int64
	Requests   int64
	Retries    int64
	CacheHits  int64
	// TotalDuration is the cumulative wall-clock time across operations.
	TotalDuration time.Duration
}

// MetricsHooks is a stock Hooks implementation that aggregates in-process
// counters per (service, operation) pair. It is safe for concurrent use.
type MetricsHooks struct {
	mu      sync.Mutex
	metrics map[string]*OperationMetrics
}

var _ Hooks = (*MetricsHooks)(nil)

// NewMetricsHooks creates an empty metrics collector.
func NewMetricsHooks() *MetricsHooks {
	return &MetricsHooks{metrics: make(map[string]*OperationMetrics)}
}

// Snapshot returns a copy of the metrics for a (service, operation) pair, or
// nil if no such operation was observed.
func (m *MetricsHooks) Snapshot(service, operation string) *OperationMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.metrics[service+"."+operation]
	if !ok {
		return nil
	}

	clone := *entry

	return &clone
}

func (m *MetricsHooks) entry(key string) *OperationMetrics {
	entry, ok := m.metrics[key]
	if !ok {
		entry = &OperationMetrics{}
		m.metrics[key] = entry
	}

	return entry
}

type metricsOpKey struct{}

// OnOperationStart records the operation key in the context.
func (m *MetricsHooks) OnOperationStart(ctx context.Context, op OperationInfo) context.Context {
	return context.WithValue(ctx, metricsOpKey{}, op.Service+"."+op.Operation)
}

// OnOperationEnd increments operation counters.
func (m *MetricsHooks) OnOperationEnd(ctx context.Context, op OperationInfo, err error, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := m.entry(op.Service + "." + op.Operation)
	entry.Operations++
	entry.TotalDuration += duration

	if err != nil {
		entry.Errors++
	}
}

// OnRequestStart returns the context unchanged.
func (m *MetricsHooks) OnRequestStart(ctx context.Context, _ RequestInfo) context.Context {
	return ctx
}

// OnRequestEnd increments request counters under the enclosing operation.
func (m *MetricsHooks) OnRequestEnd(ctx context.Context, _ RequestInfo, result RequestResult) {
	key, _ := ctx.Value(metricsOpKey{}).(string)
	if key == "" {
		key = "unattributed"
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entry := m.entry(key)
	entry.Requests++

	if result.FromCache {
		entry.CacheHits++
	}
}

// OnRetry increments the retry counter under the enclosing operation.
func (m *MetricsHooks) OnRetry(ctx context.Context, _ RequestInfo, _ int, _ error, _ time.Duration) {
	key, _ := ctx.Value(metricsOpKey{}).(string)
	if key == "" {
		key = "unattributed"
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entry(key).Retries++
}
