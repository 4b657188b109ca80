package client

import (
	"context"
	"fmt"

	"github.com/teamhub-io/teamhub-client/internal/http"
	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

// SchedulesClient implements teamhub.SchedulesClient.
type SchedulesClient struct {
	client *Client
}

// NewSchedulesClient creates a new schedules client.
func NewSchedulesClient(client *Client) *SchedulesClient {
	return &SchedulesClient{client: client}
}

func (c *SchedulesClient) opInfo(operation string, mutation bool, projectID, resourceID int64) teamhub.OperationInfo {
	return teamhub.OperationInfo{
		Service:      "Schedules",
		Operation:    operation,
		ResourceType: "schedule_entry",
		IsMutation:   mutation,
		ProjectID:    projectID,
		ResourceID:   resourceID,
	}
}

// Get implements teamhub.SchedulesClient.Get.
func (c *SchedulesClient) Get(ctx context.Context, projectID, scheduleID int64) (*teamhub.Schedule, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Get", false, projectID, scheduleID))

	resp, err := c.client.httpClient.Get(ctx, c.client.bucketPath(projectID, "/schedules/%d.json", scheduleID), nil)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("getting schedule: %w", err)
	}

	return decode[teamhub.Schedule](resp, "schedule")
}

// ListEntries implements teamhub.SchedulesClient.ListEntries.
func (c *SchedulesClient) ListEntries(ctx context.Context, projectID, scheduleID int64, opts *teamhub.ListOptions) (*teamhub.ListResult[teamhub.ScheduleEntry], error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("ListEntries", false, projectID, scheduleID))

	var pageOpts *teamhub.PaginationOptions
	if opts != nil {
		pageOpts = &opts.PaginationOptions
	}

	path := c.client.bucketPath(projectID, "/schedules/%d/entries.json", scheduleID)

	result, err := http.GetAll[teamhub.ScheduleEntry](ctx, c.client.httpClient, path, nil, pageOpts)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("listing schedule entries: %w", err)
	}

	return result, nil
}

// CreateEntry implements teamhub.SchedulesClient.CreateEntry.
func (c *SchedulesClient) CreateEntry(ctx context.Context, projectID, scheduleID int64, request *teamhub.ScheduleEntryCreateRequest) (*teamhub.ScheduleEntry, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("CreateEntry", true, projectID, scheduleID))

	resp, err := c.client.httpClient.Post(ctx, c.client.bucketPath(projectID, "/schedules/%d/entries.json", scheduleID), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("creating schedule entry: %w", err)
	}

	return decode[teamhub.ScheduleEntry](resp, "schedule entry")
}

// UpdateEntry implements teamhub.SchedulesClient.UpdateEntry.
func (c *SchedulesClient) UpdateEntry(ctx context.Context, projectID, entryID int64, request *teamhub.ScheduleEntryUpdateRequest) (*teamhub.ScheduleEntry, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("UpdateEntry", true, projectID, entryID))

	resp, err := c.client.httpClient.Put(ctx, c.client.bucketPath(projectID, "/schedule_entries/%d.json", entryID), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("updating schedule entry: %w", err)
	}

	return decode[teamhub.ScheduleEntry](resp, "schedule entry")
}
