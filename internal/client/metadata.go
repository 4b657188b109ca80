package client

// retrySafeOperations lists the mutations the server treats idempotently:
// replaying them after an ambiguous 5xx cannot duplicate a side effect.
// Completion and pinning toggle a flag to an absolute state; creating a
// record never qualifies, and updates are excluded because a replay could
// clobber a concurrent edit.
var retrySafeOperations = map[string]bool{
	"Todos.Complete":   true,
	"Todos.Uncomplete": true,
	"Messages.Pin":     true,
	"Messages.Unpin":   true,
}

// isRetrySafe reports whether the named operation may be replayed after a
// 5xx response.
func isRetrySafe(service, operation string) bool {
	return retrySafeOperations[service+"."+operation]
}
