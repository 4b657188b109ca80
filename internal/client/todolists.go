package client

import (
	"context"
	"fmt"

	"github.com/teamhub-io/teamhub-client/internal/http"
	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

// TodoListsClient implements teamhub.TodoListsClient.
type TodoListsClient struct {
	client *Client
}

// NewTodoListsClient creates a new todo lists client.
func NewTodoListsClient(client *Client) *TodoListsClient {
	return &TodoListsClient{client: client}
}

func (c *TodoListsClient) opInfo(operation string, mutation bool, projectID, resourceID int64) teamhub.OperationInfo {
	return teamhub.OperationInfo{
		Service:      "TodoLists",
		Operation:    operation,
		ResourceType: "todolist",
		IsMutation:   mutation,
		ProjectID:    projectID,
		ResourceID:   resourceID,
	}
}

// List implements teamhub.TodoListsClient.List. todosetID identifies the
// project's todoset tool from its dock.
func (c *TodoListsClient) List(ctx context.Context, projectID, todosetID int64, opts *teamhub.ListOptions) (*teamhub.ListResult[teamhub.TodoList], error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("List", false, projectID, todosetID))

	var pageOpts *teamhub.PaginationOptions
	if opts != nil {
		pageOpts = &opts.PaginationOptions
	}

	path := c.client.bucketPath(projectID, "/todosets/%d/todolists.json", todosetID)

	result, err := http.GetAll[teamhub.TodoList](ctx, c.client.httpClient, path, nil, pageOpts)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("listing todo lists: %w", err)
	}

	return result, nil
}

// Get implements teamhub.TodoListsClient.Get.
func (c *TodoListsClient) Get(ctx context.Context, projectID, todolistID int64) (*teamhub.TodoList, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Get", false, projectID, todolistID))

	resp, err := c.client.httpClient.Get(ctx, c.client.bucketPath(projectID, "/todolists/%d.json", todolistID), nil)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("getting todo list: %w", err)
	}

	return decode[teamhub.TodoList](resp, "todo list")
}

// Create implements teamhub.TodoListsClient.Create.
func (c *TodoListsClient) Create(ctx context.Context, projectID, todosetID int64, request *teamhub.TodoListCreateRequest) (*teamhub.TodoList, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Create", true, projectID, todosetID))

	resp, err := c.client.httpClient.Post(ctx, c.client.bucketPath(projectID, "/todosets/%d/todolists.json", todosetID), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("creating todo list: %w", err)
	}

	return decode[teamhub.TodoList](resp, "todo list")
}

// Update implements teamhub.TodoListsClient.Update.
func (c *TodoListsClient) Update(ctx context.Context, projectID, todolistID int64, request *teamhub.TodoListUpdateRequest) (*teamhub.TodoList, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Update", true, projectID, todolistID))

	resp, err := c.client.httpClient.Put(ctx, c.client.bucketPath(projectID, "/todolists/%d.json", todolistID), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("updating todo list: %w", err)
	}

	return decode[teamhub.TodoList](resp, "todo list")
}
