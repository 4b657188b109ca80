package teamhub

import (
	"context"
	"errors"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrDeprecatedClientConstructor = errors.New("use github.com/teamhub-io/teamhub-client/pkg/teamhubclient.New to create a client")
)

// ProjectClients provides access to project and scheduling resource clients.
type ProjectClients interface {
	Projects() ProjectsClient
	Schedules() SchedulesClient
	Events() EventsClient
}

// TaskClients provides access to task-tracking resource clients.
type TaskClients interface {
	TodoLists() TodoListsClient
	Todos() TodosClient
	Cards() CardsClient
	CardColumns() CardColumnsClient
}

// ContentClients provides access to content and discussion resource clients.
type ContentClients interface {
	Messages() MessagesClient
	Comments() CommentsClient
	Documents() DocumentsClient
}

// DirectoryClients provides access to people and integration resource clients.
type DirectoryClients interface {
	People() PeopleClient
	Webhooks() WebhooksClient
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	// Composite interfaces for resource groups
	ProjectClients
	TaskClients
	ContentClients
	DirectoryClients
}

type Client interface {
	ResourceClients

	// AccessToken returns the current bearer token, refreshing it first if
	// the configured credential supports refresh and the token is expired.
	AccessToken(ctx context.Context) (string, error)
}

// ProjectsClient provides access to project operations.
type ProjectsClient interface {
	List(ctx context.Context, opts *ProjectListOptions) (*ListResult[Project], error)
	Get(ctx context.Context, projectID int64) (*Project, error)
	Create(ctx context.Context, req *ProjectCreateRequest) (*Project, error)
	Update(ctx context.Context, projectID int64, req *ProjectUpdateRequest) (*Project, error)
	Trash(ctx context.Context, projectID int64) error
}

// TodoListsClient provides access to todo list operations.
type TodoListsClient interface {
	List(ctx context.Context, projectID, todosetID int64, opts *ListOptions) (*ListResult[TodoList], error)
	Get(ctx context.Context, projectID, todolistID int64) (*TodoList, error)
	Create(ctx context.Context, projectID, todosetID int64, req *TodoListCreateRequest) (*TodoList, error)
	Update(ctx context.Context, projectID, todolistID int64, req *TodoListUpdateRequest) (*TodoList, error)
}

// TodosClient provides access to todo operations.
type TodosClient interface {
	List(ctx context.Context, projectID, todolistID int64, opts *TodoListFilterOptions) (*ListResult[Todo], error)
	Get(ctx context.Context, projectID, todoID int64) (*Todo, error)
	Create(ctx context.Context, projectID, todolistID int64, req *TodoCreateRequest) (*Todo, error)
	Update(ctx context.Context, projectID, todoID int64, req *TodoUpdateRequest) (*Todo, error)
	Complete(ctx context.Context, projectID, todoID int64) error
	Uncomplete(ctx context.Context, projectID, todoID int64) error
	Reposition(ctx context.Context, projectID, todoID int64, position int) error
}

// CardsClient provides access to card table card operations.
type CardsClient interface {
	List(ctx context.Context, projectID, columnID int64, opts *ListOptions) (*ListResult[Card], error)
	Get(ctx context.Context, projectID, cardID int64) (*Card, error)
	Create(ctx context.Context, projectID, columnID int64, req *CardCreateRequest) (*Card, error)
	Update(ctx context.Context, projectID, cardID int64, req *CardUpdateRequest) (*Card, error)
	Move(ctx context.Context, projectID, cardID, columnID int64) error
}

// CardColumnsClient provides access to card table column operations.
type CardColumnsClient interface {
	Get(ctx context.Context, projectID, columnID int64) (*CardColumn, error)
	Create(ctx context.Context, projectID, tableID int64, req *CardColumnCreateRequest) (*CardColumn, error)
	Update(ctx context.Context, projectID, columnID int64, req *CardColumnUpdateRequest) (*CardColumn, error)
	SetColor(ctx context.Context, projectID, columnID int64, color string) (*CardColumn, error)
}

// MessagesClient provides access to message board operations.
type MessagesClient interface {
	List(ctx context.Context, projectID, boardID int64, opts *ListOptions) (*ListResult[Message], error)
	Get(ctx context.Context, projectID, messageID int64) (*Message, error)
	Create(ctx context.Context, projectID, boardID int64, req *MessageCreateRequest) (*Message, error)
	Update(ctx context.Context, projectID, messageID int64, req *MessageUpdateRequest) (*Message, error)
	Pin(ctx context.Context, projectID, messageID int64) error
	Unpin(ctx context.Context, projectID, messageID int64) error
}

// CommentsClient provides access to comment operations on recordings.
type CommentsClient interface {
	List(ctx context.Context, projectID, recordingID int64, opts *ListOptions) (*ListResult[Comment], error)
	Get(ctx context.Context, projectID, commentID int64) (*Comment, error)
	Create(ctx context.Context, projectID, recordingID int64, req *CommentCreateRequest) (*Comment, error)
	Update(ctx context.Context, projectID, commentID int64, req *CommentUpdateRequest) (*Comment, error)
}

// PeopleClient provides access to people directory operations.
type PeopleClient interface {
	List(ctx context.Context, opts *ListOptions) (*ListResult[Person], error)
	Get(ctx context.Context, personID int64) (*Person, error)
	Me(ctx context.Context) (*Person, error)
	ListInProject(ctx context.Context, projectID int64, opts *ListOptions) (*ListResult[Person], error)
}

// WebhooksClient provides access to webhook subscription operations.
type WebhooksClient interface {
	List(ctx context.Context, projectID int64) (*ListResult[Webhook], error)
	Get(ctx context.Context, projectID, webhookID int64) (*Webhook, error)
	Create(ctx context.Context, projectID int64, req *WebhookCreateRequest) (*Webhook, error)
	Update(ctx context.Context, projectID, webhookID int64, req *WebhookUpdateRequest) (*Webhook, error)
	Delete(ctx context.Context, projectID, webhookID int64) error
}

// EventsClient provides access to the activity timeline of a recording.
type EventsClient interface {
	List(ctx context.Context, projectID, recordingID int64, opts *ListOptions) (*ListResult[Event], error)
}

// SchedulesClient provides access to schedule operations.
type SchedulesClient interface {
	Get(ctx context.Context, projectID, scheduleID int64) (*Schedule, error)
	ListEntries(ctx context.Context, projectID, scheduleID int64, opts *ListOptions) (*ListResult[ScheduleEntry], error)
	CreateEntry(ctx context.Context, projectID, scheduleID int64, req *ScheduleEntryCreateRequest) (*ScheduleEntry, error)
	UpdateEntry(ctx context.Context, projectID, entryID int64, req *ScheduleEntryUpdateRequest) (*ScheduleEntry, error)
}

// DocumentsClient provides access to document vault operations.
type DocumentsClient interface {
	List(ctx context.Context, projectID, vaultID int64, opts *ListOptions) (*ListResult[Document], error)
	Get(ctx context.Context, projectID, documentID int64) (*Document, error)
	Create(ctx context.Context, projectID, vaultID int64, req *DocumentCreateRequest) (*Document, error)
	Update(ctx context.Context, projectID, documentID int64, req *DocumentUpdateRequest) (*Document, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a teamhub.Client.
//
// # Authentication precedence
//
// The following precedence is applied by the concrete client implementation
// (see pkg/teamhubclient and internal/client):
//  1. AccessToken: if set, it is used directly as a static Bearer token.
//  2. AccessToken + RefreshToken: token is tried first; on 401 the client
//     refreshes once via the token endpoint and replays the request.
//  3. ClientID/ClientSecret + RefreshToken: obtains and renews tokens with
//     the refresh_token grant.
//  4. ClientID/ClientSecret + Username/Password: uses the password grant.
//  5. No credentials: NewClient fails; every API call requires a token.
//
// # Token URL discovery
//
// If a refresh-capable credential is configured and TokenURL is empty,
// teamhubclient.New derives it from the API endpoint host as
// "<launchpad>/authorization/token".
//
// # Timeouts and retries
//
// Per-request timeouts should generally be controlled via context passed to
// client methods. Retry behavior can be tuned via RetryMax/RetryWaitMin/
// RetryWaitMax; see the package documentation for which failures retry.
type Config struct {
	// Required fields
	// APIEndpoint: base URL for the API (e.g., "https://api.teamhub.io").
	// teamhubclient.New normalizes this value by trimming a trailing slash
	// and adding "https://" if no scheme is present. Plain "http" endpoints
	// are rejected unless the host is a loopback address.
	APIEndpoint string
	// AccountID: numeric account the client operates in. Every resource
	// path is scoped under it.
	AccountID int64

	// Authentication options (provide one)
	// AccessToken: if set, used directly as a Bearer token.
	AccessToken string
	// RefreshToken: optional refresh token used by the OAuth2 manager to
	// renew access tokens.
	RefreshToken string
	// ClientID: OAuth2 client ID for the refresh_token or password grant.
	ClientID string
	// ClientSecret: OAuth2 client secret used with ClientID.
	ClientSecret string
	// Username: account email for the OAuth2 password grant.
	Username string
	// Password: account password for the OAuth2 password grant.
	Password string
	// TokenURL: full OAuth2 token endpoint. If empty and a refresh-capable
	// credential is configured, teamhubclient.New derives it from the API
	// endpoint host.
	TokenURL string

	// Optional configurations
	// HTTPTimeout: optional default HTTP timeout where supported. Most
	// client calls should rely on context timeouts.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures (429,
	// retry-safe 5xx, and connection errors on reads). If 0, a sensible
	// default is used by the client.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// CacheEnabled: turns on conditional (ETag) caching of GET responses.
	// Off by default.
	CacheEnabled bool
	// CacheMaxEntries bounds the in-memory cache when CacheEnabled is set.
	CacheMaxEntries int
	// MaxPages caps how many pages List operations will follow. If 0, a
	// default cap is applied; results that hit the cap are marked Truncated.
	MaxPages int
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer and helpers.
	Logger Logger
	// Hooks: optional observer invoked around operations, requests, and
	// retries. Hooks never affect request outcomes.
	Hooks Hooks
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}

// NewClient creates a new Teamhub API client
// Deprecated: Use github.com/teamhub-io/teamhub-client/pkg/teamhubclient.New instead.
func NewClient(config *Config) (Client, error) {
	return nil, ErrDeprecatedClientConstructor
}
