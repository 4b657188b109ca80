package teamhub

// ListResult holds the accumulated items of a paginated list operation.
// List operations follow the server's Link headers page by page and return
// every item in server order, or fail as a whole: a partially fetched
// result is never returned on error.
type ListResult[T any] struct {
	// Items are the accumulated records in the order the server returned
	// them across pages.
	Items []T
	// TotalCount is the server-reported total from the first page's
	// X-Total-Count header, or 0 when the server did not send one. It may
	// exceed len(Items) when the fetch was truncated.
	TotalCount int
	// PageCount is the number of pages fetched.
	PageCount int
	// Truncated reports that pagination stopped at a MaxPages or MaxItems
	// limit while the server advertised more data.
	Truncated bool
}

// PaginationOptions bounds how much of a paginated collection is fetched.
type PaginationOptions struct {
	// MaxPages caps how many pages are requested. Zero means use the
	// client default.
	MaxPages int
	// MaxItems caps the accumulated item count. When a page overshoots the
	// cap, the excess items from that page are dropped. Zero means no
	// item cap.
	MaxItems int
}

// ListOptions carries pagination bounds shared by list operations that take
// no resource-specific filters.
type ListOptions struct {
	PaginationOptions
}

// ProjectListOptions filters and bounds project list operations.
type ProjectListOptions struct {
	PaginationOptions

	// Status selects "archived" or "trashed" projects; empty lists active
	// projects.
	Status string
}

// TodoListFilterOptions filters and bounds todo list operations.
type TodoListFilterOptions struct {
	PaginationOptions

	// Completed selects completed instead of pending todos.
	Completed bool
}
