package client

import (
	"context"
	"fmt"

	"github.com/teamhub-io/teamhub-client/internal/http"
	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

// EventsClient implements teamhub.EventsClient.
type EventsClient struct {
	client *Client
}

// NewEventsClient creates a new events client.
func NewEventsClient(client *Client) *EventsClient {
	return &EventsClient{client: client}
}

// List implements teamhub.EventsClient.List, returning the activity
// timeline of a recording, newest first.
func (c *EventsClient) List(ctx context.Context, projectID, recordingID int64, opts *teamhub.ListOptions) (*teamhub.ListResult[teamhub.Event], error) {
	ctx, done := c.client.startOperation(ctx, teamhub.OperationInfo{
		Service:      "Events",
		Operation:    "List",
		ResourceType: "event",
		ProjectID:    projectID,
		ResourceID:   recordingID,
	})

	var pageOpts *teamhub.PaginationOptions
	if opts != nil {
		pageOpts = &opts.PaginationOptions
	}

	path := c.client.bucketPath(projectID, "/recordings/%d/events.json", recordingID)

	result, err := http.GetAll[teamhub.Event](ctx, c.client.httpClient, path, nil, pageOpts)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	return result, nil
}
