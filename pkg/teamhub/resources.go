package teamhub

import "time"

// Recording is the base shape shared by every dated, creator-attributed
// record in a project (todos, messages, comments, documents, and so on).
type Recording struct {
	ID        int64     `json:"id"                   yaml:"id"`
	Status    string    `json:"status"               yaml:"status"`
	Type      string    `json:"type"                 yaml:"type"`
	Title     string    `json:"title,omitempty"      yaml:"title,omitempty"`
	URL       string    `json:"url,omitempty"        yaml:"url,omitempty"`
	AppURL    string    `json:"app_url,omitempty"    yaml:"app_url,omitempty"`
	CreatedAt time.Time `json:"created_at"           yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at"           yaml:"updated_at"`
	Creator   *Person   `json:"creator,omitempty"    yaml:"creator,omitempty"`
	ProjectID int64     `json:"project_id,omitempty" yaml:"project_id,omitempty"`
}

// Project represents a project (a container of tool docks).
type Project struct {
	ID          int64     `json:"id"                    yaml:"id"`
	Status      string    `json:"status"                yaml:"status"`
	Name        string    `json:"name"                  yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Purpose     string    `json:"purpose,omitempty"     yaml:"purpose,omitempty"`
	CreatedAt   time.Time `json:"created_at"            yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"            yaml:"updated_at"`
	URL         string    `json:"url,omitempty"         yaml:"url,omitempty"`
	AppURL      string    `json:"app_url,omitempty"     yaml:"app_url,omitempty"`
	Bookmarked  bool      `json:"bookmarked"            yaml:"bookmarked"`
	Dock        []DockItem `json:"dock,omitempty"       yaml:"dock,omitempty"`
}

// DockItem describes one tool enabled in a project (todoset, message
// board, schedule, vault, card table).
type DockItem struct {
	ID      int64  `json:"id"      yaml:"id"`
	Name    string `json:"name"    yaml:"name"`
	Title   string `json:"title"   yaml:"title"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
	URL     string `json:"url"     yaml:"url"`
}

// ProjectCreateRequest represents a request to create a project.
type ProjectCreateRequest struct {
	// Name is the project name shown in the account's project list.
	Name string `json:"name" yaml:"name"`
	// Description optionally explains what the project is for.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ProjectUpdateRequest represents a request to update a project.
type ProjectUpdateRequest struct {
	// Name updates the project name; nil leaves it unchanged.
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
	// Description updates the description; nil leaves it unchanged.
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// TodoList represents a named list of todos inside a project's todoset.
type TodoList struct {
	Recording

	Name           string `json:"name"                      yaml:"name"`
	Description    string `json:"description,omitempty"     yaml:"description,omitempty"`
	Completed      bool   `json:"completed"                 yaml:"completed"`
	CompletedRatio string `json:"completed_ratio,omitempty" yaml:"completed_ratio,omitempty"`
	TodosURL       string `json:"todos_url,omitempty"       yaml:"todos_url,omitempty"`
}

// TodoListCreateRequest represents a request to create a todo list.
type TodoListCreateRequest struct {
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// TodoListUpdateRequest represents a request to update a todo list.
type TodoListUpdateRequest struct {
	Name        *string `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Todo represents a single todo item.
type Todo struct {
	Recording

	Content     string   `json:"content"                yaml:"content"`
	Description string   `json:"description,omitempty"  yaml:"description,omitempty"`
	Completed   bool     `json:"completed"              yaml:"completed"`
	Position    int      `json:"position,omitempty"     yaml:"position,omitempty"`
	DueOn       *string  `json:"due_on,omitempty"       yaml:"due_on,omitempty"`
	StartsOn    *string  `json:"starts_on,omitempty"    yaml:"starts_on,omitempty"`
	Assignees   []Person `json:"assignees,omitempty"    yaml:"assignees,omitempty"`
	CommentsURL string   `json:"comments_url,omitempty" yaml:"comments_url,omitempty"`
}

// TodoCreateRequest represents a request to create a todo.
type TodoCreateRequest struct {
	// Content is the todo text; required.
	Content string `json:"content" yaml:"content"`
	// Description optionally adds rich-text notes.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// DueOn is an ISO 8601 date ("2026-09-15"); nil means no due date.
	DueOn *string `json:"due_on,omitempty" yaml:"due_on,omitempty"`
	// StartsOn is an ISO 8601 date; requires DueOn to also be set.
	StartsOn *string `json:"starts_on,omitempty" yaml:"starts_on,omitempty"`
	// AssigneeIDs are people to assign; they must have project access.
	AssigneeIDs []int64 `json:"assignee_ids,omitempty" yaml:"assignee_ids,omitempty"`
	// Notify sends a notification to assignees on creation.
	Notify bool `json:"notify,omitempty" yaml:"notify,omitempty"`
}

// TodoUpdateRequest represents a request to update a todo. Nil fields are
// left unchanged.
type TodoUpdateRequest struct {
	Content     *string `json:"content,omitempty"      yaml:"content,omitempty"`
	Description *string `json:"description,omitempty"  yaml:"description,omitempty"`
	DueOn       *string `json:"due_on,omitempty"       yaml:"due_on,omitempty"`
	StartsOn    *string `json:"starts_on,omitempty"    yaml:"starts_on,omitempty"`
	AssigneeIDs []int64 `json:"assignee_ids,omitempty" yaml:"assignee_ids,omitempty"`
}

// Card represents a card on a card table.
type Card struct {
	Recording

	Content     string   `json:"content,omitempty"      yaml:"content,omitempty"`
	DueOn       *string  `json:"due_on,omitempty"       yaml:"due_on,omitempty"`
	Completed   bool     `json:"completed"              yaml:"completed"`
	Position    int      `json:"position,omitempty"     yaml:"position,omitempty"`
	ColumnID    int64    `json:"column_id,omitempty"    yaml:"column_id,omitempty"`
	Assignees   []Person `json:"assignees,omitempty"    yaml:"assignees,omitempty"`
	CommentsURL string   `json:"comments_url,omitempty" yaml:"comments_url,omitempty"`
}

// CardCreateRequest represents a request to create a card.
type CardCreateRequest struct {
	Title   string  `json:"title"             yaml:"title"`
	Content string  `json:"content,omitempty" yaml:"content,omitempty"`
	DueOn   *string `json:"due_on,omitempty"  yaml:"due_on,omitempty"`
	// Notify sends a notification to subscribers on creation.
	Notify bool `json:"notify,omitempty" yaml:"notify,omitempty"`
}

// CardUpdateRequest represents a request to update a card.
type CardUpdateRequest struct {
	Title       *string `json:"title,omitempty"        yaml:"title,omitempty"`
	Content     *string `json:"content,omitempty"      yaml:"content,omitempty"`
	DueOn       *string `json:"due_on,omitempty"       yaml:"due_on,omitempty"`
	AssigneeIDs []int64 `json:"assignee_ids,omitempty" yaml:"assignee_ids,omitempty"`
}

// CardColumn represents a column on a card table.
type CardColumn struct {
	Recording

	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Color       string `json:"color,omitempty"       yaml:"color,omitempty"`
	CardsCount  int    `json:"cards_count"           yaml:"cards_count"`
	CardsURL    string `json:"cards_url,omitempty"   yaml:"cards_url,omitempty"`
}

// CardColumnCreateRequest represents a request to create a card column.
type CardColumnCreateRequest struct {
	Title       string `json:"title"                 yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// CardColumnUpdateRequest represents a request to update a card column.
type CardColumnUpdateRequest struct {
	Title       *string `json:"title,omitempty"       yaml:"title,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Message represents a post on a project's message board.
type Message struct {
	Recording

	Subject  string           `json:"subject"            yaml:"subject"`
	Content  string           `json:"content,omitempty"  yaml:"content,omitempty"`
	Category *MessageCategory `json:"category,omitempty" yaml:"category,omitempty"`
	Pinned   bool             `json:"pinned"             yaml:"pinned"`
}

// MessageCategory represents a message type label (announcement, FYI, ...).
type MessageCategory struct {
	ID   int64  `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
}

// MessageCreateRequest represents a request to post a message.
type MessageCreateRequest struct {
	Subject string `json:"subject"           yaml:"subject"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
	// CategoryID optionally tags the message with a message type.
	CategoryID int64 `json:"category_id,omitempty" yaml:"category_id,omitempty"`
	// Status must be "active" to publish immediately or "drafted" to save
	// as a draft.
	Status string `json:"status,omitempty" yaml:"status,omitempty"`
}

// MessageUpdateRequest represents a request to update a message.
type MessageUpdateRequest struct {
	Subject    *string `json:"subject,omitempty"     yaml:"subject,omitempty"`
	Content    *string `json:"content,omitempty"     yaml:"content,omitempty"`
	CategoryID *int64  `json:"category_id,omitempty" yaml:"category_id,omitempty"`
}

// Comment represents a comment on a recording.
type Comment struct {
	Recording

	Content string `json:"content" yaml:"content"`
}

// CommentCreateRequest represents a request to add a comment.
type CommentCreateRequest struct {
	Content string `json:"content" yaml:"content"`
}

// CommentUpdateRequest represents a request to edit a comment.
type CommentUpdateRequest struct {
	Content string `json:"content" yaml:"content"`
}

// Person represents a person in the account directory.
type Person struct {
	ID             int64     `json:"id"                        yaml:"id"`
	Name           string    `json:"name"                      yaml:"name"`
	EmailAddress   string    `json:"email_address"             yaml:"email_address"`
	Title          string    `json:"title,omitempty"           yaml:"title,omitempty"`
	Bio            string    `json:"bio,omitempty"             yaml:"bio,omitempty"`
	Location       string    `json:"location,omitempty"        yaml:"location,omitempty"`
	AvatarURL      string    `json:"avatar_url,omitempty"      yaml:"avatar_url,omitempty"`
	Admin          bool      `json:"admin"                     yaml:"admin"`
	Owner          bool      `json:"owner"                     yaml:"owner"`
	Client         bool      `json:"client"                    yaml:"client"`
	TimeZone       string    `json:"time_zone,omitempty"       yaml:"time_zone,omitempty"`
	CreatedAt      time.Time `json:"created_at"                yaml:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"                yaml:"updated_at"`
	PersonableType string    `json:"personable_type,omitempty" yaml:"personable_type,omitempty"`
}

// Webhook represents an outbound webhook subscription on a project.
type Webhook struct {
	ID         int64     `json:"id"          yaml:"id"`
	Active     bool      `json:"active"      yaml:"active"`
	PayloadURL string    `json:"payload_url" yaml:"payload_url"`
	Types      []string  `json:"types"       yaml:"types"`
	CreatedAt  time.Time `json:"created_at"  yaml:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"  yaml:"updated_at"`
	URL        string    `json:"url,omitempty" yaml:"url,omitempty"`
	AppURL     string    `json:"app_url,omitempty" yaml:"app_url,omitempty"`
}

// WebhookCreateRequest represents a request to create a webhook.
type WebhookCreateRequest struct {
	// PayloadURL is the HTTPS endpoint that receives event deliveries.
	PayloadURL string `json:"payload_url" yaml:"payload_url"`
	// Types selects which recording kinds trigger deliveries; empty
	// subscribes to all.
	Types []string `json:"types,omitempty" yaml:"types,omitempty"`
}

// WebhookUpdateRequest represents a request to update a webhook.
type WebhookUpdateRequest struct {
	PayloadURL *string  `json:"payload_url,omitempty" yaml:"payload_url,omitempty"`
	Types      []string `json:"types,omitempty"       yaml:"types,omitempty"`
	Active     *bool    `json:"active,omitempty"      yaml:"active,omitempty"`
}

// Event represents one entry in a recording's activity timeline.
type Event struct {
	ID        int64                  `json:"id"                yaml:"id"`
	Action    string                 `json:"action"            yaml:"action"`
	Details   map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
	CreatedAt time.Time              `json:"created_at"        yaml:"created_at"`
	Creator   *Person                `json:"creator,omitempty" yaml:"creator,omitempty"`
	RecordingID int64                `json:"recording_id,omitempty" yaml:"recording_id,omitempty"`
}

// Schedule represents a project's schedule tool.
type Schedule struct {
	Recording

	EntriesCount int    `json:"entries_count"         yaml:"entries_count"`
	EntriesURL   string `json:"entries_url,omitempty" yaml:"entries_url,omitempty"`
}

// ScheduleEntry represents an event on a schedule.
type ScheduleEntry struct {
	Recording

	Summary      string    `json:"summary"                 yaml:"summary"`
	Description  string    `json:"description,omitempty"   yaml:"description,omitempty"`
	AllDay       bool      `json:"all_day"                 yaml:"all_day"`
	StartsAt     time.Time `json:"starts_at"               yaml:"starts_at"`
	EndsAt       time.Time `json:"ends_at"                 yaml:"ends_at"`
	Participants []Person  `json:"participants,omitempty"  yaml:"participants,omitempty"`
}

// ScheduleEntryCreateRequest represents a request to create a schedule entry.
type ScheduleEntryCreateRequest struct {
	Summary     string    `json:"summary"               yaml:"summary"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	AllDay      bool      `json:"all_day,omitempty"     yaml:"all_day,omitempty"`
	StartsAt    time.Time `json:"starts_at"             yaml:"starts_at"`
	EndsAt      time.Time `json:"ends_at"               yaml:"ends_at"`
	// ParticipantIDs are people to invite; they must have project access.
	ParticipantIDs []int64 `json:"participant_ids,omitempty" yaml:"participant_ids,omitempty"`
	// Notify sends a notification to participants on creation.
	Notify bool `json:"notify,omitempty" yaml:"notify,omitempty"`
}

// ScheduleEntryUpdateRequest represents a request to update a schedule entry.
type ScheduleEntryUpdateRequest struct {
	Summary        *string    `json:"summary,omitempty"         yaml:"summary,omitempty"`
	Description    *string    `json:"description,omitempty"     yaml:"description,omitempty"`
	AllDay         *bool      `json:"all_day,omitempty"         yaml:"all_day,omitempty"`
	StartsAt       *time.Time `json:"starts_at,omitempty"       yaml:"starts_at,omitempty"`
	EndsAt         *time.Time `json:"ends_at,omitempty"         yaml:"ends_at,omitempty"`
	ParticipantIDs []int64    `json:"participant_ids,omitempty" yaml:"participant_ids,omitempty"`
}

// Document represents a rich-text document in a project vault.
type Document struct {
	Recording

	Content string `json:"content" yaml:"content"`
}

// DocumentCreateRequest represents a request to create a document.
type DocumentCreateRequest struct {
	Title   string `json:"title"   yaml:"title"`
	Content string `json:"content" yaml:"content"`
	// Status must be "active" to publish immediately or "drafted" to save
	// as a draft.
	Status string `json:"status,omitempty" yaml:"status,omitempty"`
}

// DocumentUpdateRequest represents a request to update a document.
type DocumentUpdateRequest struct {
	Title   *string `json:"title,omitempty"   yaml:"title,omitempty"`
	Content *string `json:"content,omitempty" yaml:"content,omitempty"`
}
