package client

import (
	"context"
	"fmt"

	"github.com/teamhub-io/teamhub-client/internal/http"
	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

// PeopleClient implements teamhub.PeopleClient.
type PeopleClient struct {
	client *Client
}

// NewPeopleClient creates a new people client.
func NewPeopleClient(client *Client) *PeopleClient {
	return &PeopleClient{client: client}
}

func (c *PeopleClient) opInfo(operation string, projectID, resourceID int64) teamhub.OperationInfo {
	return teamhub.OperationInfo{
		Service:      "People",
		Operation:    operation,
		ResourceType: "person",
		ProjectID:    projectID,
		ResourceID:   resourceID,
	}
}

// List implements teamhub.PeopleClient.List, returning everyone visible
// in the account directory.
func (c *PeopleClient) List(ctx context.Context, opts *teamhub.ListOptions) (*teamhub.ListResult[teamhub.Person], error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("List", 0, 0))

	var pageOpts *teamhub.PaginationOptions
	if opts != nil {
		pageOpts = &opts.PaginationOptions
	}

	result, err := http.GetAll[teamhub.Person](ctx, c.client.httpClient, c.client.accountPath("/people.json"), nil, pageOpts)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}

	return result, nil
}

// Get implements teamhub.PeopleClient.Get.
func (c *PeopleClient) Get(ctx context.Context, personID int64) (*teamhub.Person, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Get", 0, personID))

	resp, err := c.client.httpClient.Get(ctx, c.client.accountPath("/people/%d.json", personID), nil)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("getting person: %w", err)
	}

	return decode[teamhub.Person](resp, "person")
}

// Me implements teamhub.PeopleClient.Me, returning the profile the
// current token belongs to.
func (c *PeopleClient) Me(ctx context.Context) (*teamhub.Person, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Me", 0, 0))

	resp, err := c.client.httpClient.Get(ctx, c.client.accountPath("/my/profile.json"), nil)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}

	return decode[teamhub.Person](resp, "person")
}

// ListInProject implements teamhub.PeopleClient.ListInProject.
func (c *PeopleClient) ListInProject(ctx context.Context, projectID int64, opts *teamhub.ListOptions) (*teamhub.ListResult[teamhub.Person], error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("ListInProject", projectID, 0))

	var pageOpts *teamhub.PaginationOptions
	if opts != nil {
		pageOpts = &opts.PaginationOptions
	}

	path := c.client.accountPath("/projects/%d/people.json", projectID)

	result, err := http.GetAll[teamhub.Person](ctx, c.client.httpClient, path, nil, pageOpts)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("listing project people: %w", err)
	}

	return result, nil
}
