package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// TokenHTTPTimeout is used for token endpoint requests.
	TokenHTTPTimeout = 15 * time.Second
)

// Retry limits and backoff.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second

	// ExponentialBackoffBase is the base for exponential backoff.
	ExponentialBackoffBase = 2

	// MaxRetryAfter caps how long a server-provided Retry-After is honored.
	MaxRetryAfter = 60 * time.Second
)

// Response body limits.
const (
	// MaxResponseBodySize bounds how much of a response body is read (10MB).
	MaxResponseBodySize = 10 * 1024 * 1024

	// MaxErrorBodySize bounds how much of an error body is read (64KB).
	MaxErrorBodySize = 64 * 1024
)

// Pagination limits.
const (
	// DefaultMaxPages is the default cap on pages fetched per list call.
	DefaultMaxPages = 50

	// TotalCountHeader carries the server-reported collection size.
	TotalCountHeader = "X-Total-Count"
)

// Cache defaults.
const (
	// DefaultCacheSize is the default cache size limit.
	DefaultCacheSize = 1000
)

// Token handling.
const (
	// TokenExpirationBuffer is the buffer time before token expiration.
	TokenExpirationBuffer = 30 * time.Second
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)
