package client

import (
	"context"
	"fmt"

	"github.com/teamhub-io/teamhub-client/internal/http"
	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

// CommentsClient implements teamhub.CommentsClient.
type CommentsClient struct {
	client *Client
}

// NewCommentsClient creates a new comments client.
func NewCommentsClient(client *Client) *CommentsClient {
	return &CommentsClient{client: client}
}

func (c *CommentsClient) opInfo(operation string, mutation bool, projectID, resourceID int64) teamhub.OperationInfo {
	return teamhub.OperationInfo{
		Service:      "Comments",
		Operation:    operation,
		ResourceType: "comment",
		IsMutation:   mutation,
		ProjectID:    projectID,
		ResourceID:   resourceID,
	}
}

// List implements teamhub.CommentsClient.List. recordingID may be any
// commentable recording: a todo, message, card, document, or schedule
// entry.
func (c *CommentsClient) List(ctx context.Context, projectID, recordingID int64, opts *teamhub.ListOptions) (*teamhub.ListResult[teamhub.Comment], error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("List", false, projectID, recordingID))

	var pageOpts *teamhub.PaginationOptions
	if opts != nil {
		pageOpts = &opts.PaginationOptions
	}

	path := c.client.bucketPath(projectID, "/recordings/%d/comments.json", recordingID)

	result, err := http.GetAll[teamhub.Comment](ctx, c.client.httpClient, path, nil, pageOpts)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	return result, nil
}

// Get implements teamhub.CommentsClient.Get.
func (c *CommentsClient) Get(ctx context.Context, projectID, commentID int64) (*teamhub.Comment, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Get", false, projectID, commentID))

	resp, err := c.client.httpClient.Get(ctx, c.client.bucketPath(projectID, "/comments/%d.json", commentID), nil)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("getting comment: %w", err)
	}

	return decode[teamhub.Comment](resp, "comment")
}

// Create implements teamhub.CommentsClient.Create.
func (c *CommentsClient) Create(ctx context.Context, projectID, recordingID int64, request *teamhub.CommentCreateRequest) (*teamhub.Comment, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Create", true, projectID, recordingID))

	resp, err := c.client.httpClient.Post(ctx, c.client.bucketPath(projectID, "/recordings/%d/comments.json", recordingID), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	return decode[teamhub.Comment](resp, "comment")
}

// Update implements teamhub.CommentsClient.Update.
func (c *CommentsClient) Update(ctx context.Context, projectID, commentID int64, request *teamhub.CommentUpdateRequest) (*teamhub.Comment, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Update", true, projectID, commentID))

	resp, err := c.client.httpClient.Put(ctx, c.client.bucketPath(projectID, "/comments/%d.json", commentID), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("updating comment: %w", err)
	}

	return decode[teamhub.Comment](resp, "comment")
}
