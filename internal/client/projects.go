package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/teamhub-io/teamhub-client/internal/http"
	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

// ProjectsClient implements teamhub.ProjectsClient.
type ProjectsClient struct {
	client *Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(client *Client) *ProjectsClient {
	return &ProjectsClient{client: client}
}

func (c *ProjectsClient) opInfo(operation string, mutation bool, projectID int64) teamhub.OperationInfo {
	return teamhub.OperationInfo{
		Service:      "Projects",
		Operation:    operation,
		ResourceType: "project",
		IsMutation:   mutation,
		ProjectID:    projectID,
	}
}

// List implements teamhub.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context, opts *teamhub.ProjectListOptions) (*teamhub.ListResult[teamhub.Project], error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("List", false, 0))

	var (
		query    url.Values
		pageOpts *teamhub.PaginationOptions
	)

	if opts != nil {
		pageOpts = &opts.PaginationOptions
		if opts.Status != "" {
			query = url.Values{"status": []string{opts.Status}}
		}
	}

	result, err := http.GetAll[teamhub.Project](ctx, c.client.httpClient, c.client.accountPath("/projects.json"), query, pageOpts)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	return result, nil
}

// Get implements teamhub.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, projectID int64) (*teamhub.Project, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Get", false, projectID))

	resp, err := c.client.httpClient.Get(ctx, c.client.accountPath("/projects/%d.json", projectID), nil)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	return decode[teamhub.Project](resp, "project")
}

// Create implements teamhub.ProjectsClient.Create.
func (c *ProjectsClient) Create(ctx context.Context, request *teamhub.ProjectCreateRequest) (*teamhub.Project, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Create", true, 0))

	resp, err := c.client.httpClient.Post(ctx, c.client.accountPath("/projects.json"), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return decode[teamhub.Project](resp, "project")
}

// Update implements teamhub.ProjectsClient.Update.
func (c *ProjectsClient) Update(ctx context.Context, projectID int64, request *teamhub.ProjectUpdateRequest) (*teamhub.Project, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Update", true, projectID))

	resp, err := c.client.httpClient.Put(ctx, c.client.accountPath("/projects/%d.json", projectID), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	return decode[teamhub.Project](resp, "project")
}

// Trash implements teamhub.ProjectsClient.Trash. Trashed projects are
// recoverable from the web UI for 30 days.
func (c *ProjectsClient) Trash(ctx context.Context, projectID int64) error {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Trash", true, projectID))

	_, err := c.client.httpClient.Delete(ctx, c.client.accountPath("/projects/%d.json", projectID))
	done(err)

	if err != nil {
		return fmt.Errorf("trashing project: %w", err)
	}

	return nil
}
