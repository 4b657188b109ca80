// Package teamhub provides types, interfaces, and helpers for working with
// the Teamhub project-management API.
//
// # Overview
//
// The teamhub package defines the domain types (e.g., Project, Todo,
// Message, Webhook) and the interfaces for resource-oriented clients (e.g.,
// ProjectsClient, TodosClient). A concrete implementation of these clients
// is provided by the teamhubclient package, which wires configuration,
// transport, authentication, caching, and retries. Most consumers should
// import teamhubclient to construct a client and then interact with the
// resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/teamhub-io/teamhub-client/pkg/teamhub"
//	  "github.com/teamhub-io/teamhub-client/pkg/teamhubclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := teamhubclient.NewWithToken("https://api.teamhub.io", 1234567, "token")
//	  if err != nil { log.Fatal(err) }
//
//	  projects, err := cli.Projects().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = projects
//	}
//
// # Pagination
//
// List operations follow the server's Link headers and return a
// ListResult with every item in server order. PaginationOptions bounds the
// fetch (MaxPages, MaxItems); bounded results are marked Truncated. A list
// call either returns the complete accumulated result or an error, never a
// partial page set.
//
// # Retries and caching
//
// Transient failures (429 rate limits, retry-safe 5xx responses, and
// connection errors on reads) are retried with exponential backoff,
// honoring Retry-After when the server sends one. GET responses carrying
// an ETag can be cached and revalidated with If-None-Match; see Cache and
// CacheConfig. Caching is off by default.
//
// # Errors
//
// API failures are represented by Error, which classifies each failure
// into a Kind (auth, forbidden, not_found, validation, rate_limit,
// network, api_error, ...). Helpers such as IsNotFound, IsAuth, and
// IsRetryable make it easy to branch on common cases.
//
// # Observability
//
// Hooks observe operations, requests, and retries without affecting their
// outcome. LoggingHooks and MetricsHooks are stock implementations;
// NewChainHooks composes several observers.
package teamhub
