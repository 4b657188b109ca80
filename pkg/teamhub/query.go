package teamhub

import (
	"net/url"
	"strconv"
)

// QueryParams builds the query string for list requests. Pagination itself
// is driven by the server's Link headers, so page numbers never appear
// here; params carry resource filters only.
type QueryParams struct {
	// Status filters by lifecycle status ("archived", "trashed").
	Status string

	// Completed filters todos by completion state when set.
	Completed *bool

	// Extra holds any additional filter parameters.
	Extra map[string]string
}

// NewQueryParams creates empty query parameters.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// WithStatus sets the status filter.
func (q *QueryParams) WithStatus(status string) *QueryParams {
	q.Status = status

	return q
}

// WithCompleted sets the completed filter.
func (q *QueryParams) WithCompleted(completed bool) *QueryParams {
	q.Completed = &completed

	return q
}

// WithExtra adds an arbitrary filter parameter.
func (q *QueryParams) WithExtra(key, value string) *QueryParams {
	if q.Extra == nil {
		q.Extra = make(map[string]string)
	}

	q.Extra[key] = value

	return q
}

// ToValues converts the params to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	if q.Status != "" {
		values.Set("status", q.Status)
	}

	if q.Completed != nil {
		values.Set("completed", strconv.FormatBool(*q.Completed))
	}

	for key, value := range q.Extra {
		values.Set(key, value)
	}

	return values
}
