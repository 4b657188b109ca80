package client

import (
	"context"
	"fmt"

	"github.com/teamhub-io/teamhub-client/internal/http"
	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

// MessagesClient implements teamhub.MessagesClient.
type MessagesClient struct {
	client *Client
}

// NewMessagesClient creates a new messages client.
func NewMessagesClient(client *Client) *MessagesClient {
	return &MessagesClient{client: client}
}

func (c *MessagesClient) opInfo(operation string, mutation bool, projectID, resourceID int64) teamhub.OperationInfo {
	return teamhub.OperationInfo{
		Service:      "Messages",
		Operation:    operation,
		ResourceType: "message",
		IsMutation:   mutation,
		ProjectID:    projectID,
		ResourceID:   resourceID,
	}
}

// List implements teamhub.MessagesClient.List. boardID identifies the
// project's message board tool from its dock.
func (c *MessagesClient) List(ctx context.Context, projectID, boardID int64, opts *teamhub.ListOptions) (*teamhub.ListResult[teamhub.Message], error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("List", false, projectID, boardID))

	var pageOpts *teamhub.PaginationOptions
	if opts != nil {
		pageOpts = &opts.PaginationOptions
	}

	path := c.client.bucketPath(projectID, "/message_boards/%d/messages.json", boardID)

	result, err := http.GetAll[teamhub.Message](ctx, c.client.httpClient, path, nil, pageOpts)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	return result, nil
}

// Get implements teamhub.MessagesClient.Get.
func (c *MessagesClient) Get(ctx context.Context, projectID, messageID int64) (*teamhub.Message, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Get", false, projectID, messageID))

	resp, err := c.client.httpClient.Get(ctx, c.client.bucketPath(projectID, "/messages/%d.json", messageID), nil)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("getting message: %w", err)
	}

	return decode[teamhub.Message](resp, "message")
}

// Create implements teamhub.MessagesClient.Create.
func (c *MessagesClient) Create(ctx context.Context, projectID, boardID int64, request *teamhub.MessageCreateRequest) (*teamhub.Message, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Create", true, projectID, boardID))

	resp, err := c.client.httpClient.Post(ctx, c.client.bucketPath(projectID, "/message_boards/%d/messages.json", boardID), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}

	return decode[teamhub.Message](resp, "message")
}

// Update implements teamhub.MessagesClient.Update.
func (c *MessagesClient) Update(ctx context.Context, projectID, messageID int64, request *teamhub.MessageUpdateRequest) (*teamhub.Message, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Update", true, projectID, messageID))

	resp, err := c.client.httpClient.Put(ctx, c.client.bucketPath(projectID, "/messages/%d.json", messageID), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("updating message: %w", err)
	}

	return decode[teamhub.Message](resp, "message")
}

// Pin implements teamhub.MessagesClient.Pin. Pinning sets an absolute
// state, so the request is marked safe to replay.
func (c *MessagesClient) Pin(ctx context.Context, projectID, messageID int64) error {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Pin", true, projectID, messageID))

	_, err := c.client.httpClient.Do(ctx, &http.Request{
		Method:    "POST",
		Path:      c.client.bucketPath(projectID, "/recordings/%d/pin.json", messageID),
		RetrySafe: isRetrySafe("Messages", "Pin"),
	})
	done(err)

	if err != nil {
		return fmt.Errorf("pinning message: %w", err)
	}

	return nil
}

// Unpin implements teamhub.MessagesClient.Unpin.
func (c *MessagesClient) Unpin(ctx context.Context, projectID, messageID int64) error {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Unpin", true, projectID, messageID))

	_, err := c.client.httpClient.Do(ctx, &http.Request{
		Method:    "DELETE",
		Path:      c.client.bucketPath(projectID, "/recordings/%d/pin.json", messageID),
		RetrySafe: isRetrySafe("Messages", "Unpin"),
	})
	done(err)

	if err != nil {
		return fmt.Errorf("unpinning message: %w", err)
	}

	return nil
}
