package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/teamhub-io/teamhub-client/internal/http"
	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

// TodosClient implements teamhub.TodosClient.
type TodosClient struct {
	client *Client
}

// NewTodosClient creates a new todos client.
func NewTodosClient(client *Client) *TodosClient {
	return &TodosClient{client: client}
}

func (c *TodosClient) opInfo(operation string, mutation bool, projectID, todoID int64) teamhub.OperationInfo {
	return teamhub.OperationInfo{
		Service:      "Todos",
		Operation:    operation,
		ResourceType: "todo",
		IsMutation:   mutation,
		ProjectID:    projectID,
		ResourceID:   todoID,
	}
}

// List implements teamhub.TodosClient.List.
func (c *TodosClient) List(ctx context.Context, projectID, todolistID int64, opts *teamhub.TodoListFilterOptions) (*teamhub.ListResult[teamhub.Todo], error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("List", false, projectID, todolistID))

	var (
		query    url.Values
		pageOpts *teamhub.PaginationOptions
	)

	if opts != nil {
		pageOpts = &opts.PaginationOptions
		if opts.Completed {
			query = url.Values{"completed": []string{strconv.FormatBool(true)}}
		}
	}

	path := c.client.bucketPath(projectID, "/todolists/%d/todos.json", todolistID)

	result, err := http.GetAll[teamhub.Todo](ctx, c.client.httpClient, path, query, pageOpts)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}

	return result, nil
}

// Get implements teamhub.TodosClient.Get.
func (c *TodosClient) Get(ctx context.Context, projectID, todoID int64) (*teamhub.Todo, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Get", false, projectID, todoID))

	resp, err := c.client.httpClient.Get(ctx, c.client.bucketPath(projectID, "/todos/%d.json", todoID), nil)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("getting todo: %w", err)
	}

	return decode[teamhub.Todo](resp, "todo")
}

// Create implements teamhub.TodosClient.Create.
func (c *TodosClient) Create(ctx context.Context, projectID, todolistID int64, request *teamhub.TodoCreateRequest) (*teamhub.Todo, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Create", true, projectID, todolistID))

	resp, err := c.client.httpClient.Post(ctx, c.client.bucketPath(projectID, "/todolists/%d/todos.json", todolistID), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("creating todo: %w", err)
	}

	return decode[teamhub.Todo](resp, "todo")
}

// Update implements teamhub.TodosClient.Update.
func (c *TodosClient) Update(ctx context.Context, projectID, todoID int64, request *teamhub.TodoUpdateRequest) (*teamhub.Todo, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Update", true, projectID, todoID))

	resp, err := c.client.httpClient.Put(ctx, c.client.bucketPath(projectID, "/todos/%d.json", todoID), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("updating todo: %w", err)
	}

	return decode[teamhub.Todo](resp, "todo")
}

// Complete implements teamhub.TodosClient.Complete. Completion sets an
// absolute state, so the request is marked safe to replay.
func (c *TodosClient) Complete(ctx context.Context, projectID, todoID int64) error {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Complete", true, projectID, todoID))

	_, err := c.client.httpClient.Do(ctx, &http.Request{
		Method:    "POST",
		Path:      c.client.bucketPath(projectID, "/todos/%d/completion.json", todoID),
		RetrySafe: isRetrySafe("Todos", "Complete"),
	})
	done(err)

	if err != nil {
		return fmt.Errorf("completing todo: %w", err)
	}

	return nil
}

// Uncomplete implements teamhub.TodosClient.Uncomplete.
func (c *TodosClient) Uncomplete(ctx context.Context, projectID, todoID int64) error {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Uncomplete", true, projectID, todoID))

	_, err := c.client.httpClient.Do(ctx, &http.Request{
		Method:    "DELETE",
		Path:      c.client.bucketPath(projectID, "/todos/%d/completion.json", todoID),
		RetrySafe: isRetrySafe("Todos", "Uncomplete"),
	})
	done(err)

	if err != nil {
		return fmt.Errorf("uncompleting todo: %w", err)
	}

	return nil
}

// Reposition implements teamhub.TodosClient.Reposition. Position is
// 1-based within the todo's list.
func (c *TodosClient) Reposition(ctx context.Context, projectID, todoID int64, position int) error {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Reposition", true, projectID, todoID))

	body := map[string]int{"position": position}

	_, err := c.client.httpClient.Put(ctx, c.client.bucketPath(projectID, "/todos/%d/position.json", todoID), body)
	done(err)

	if err != nil {
		return fmt.Errorf("repositioning todo: %w", err)
	}

	return nil
}
