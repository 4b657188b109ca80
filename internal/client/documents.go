package client

import (
	"context"
	"fmt"

	"github.com/teamhub-io/teamhub-client/internal/http"
	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

// DocumentsClient implements teamhub.DocumentsClient.
type DocumentsClient struct {
	client *Client
}

// NewDocumentsClient creates a new documents client.
func NewDocumentsClient(client *Client) *DocumentsClient {
	return &DocumentsClient{client: client}
}

func (c *DocumentsClient) opInfo(operation string, mutation bool, projectID, resourceID int64) teamhub.OperationInfo {
	return teamhub.OperationInfo{
		Service:      "Documents",
		Operation:    operation,
		ResourceType: "document",
		IsMutation:   mutation,
		ProjectID:    projectID,
		ResourceID:   resourceID,
	}
}

// List implements teamhub.DocumentsClient.List. vaultID identifies the
// project's vault tool from its dock.
func (c *DocumentsClient) List(ctx context.Context, projectID, vaultID int64, opts *teamhub.ListOptions) (*teamhub.ListResult[teamhub.Document], error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("List", false, projectID, vaultID))

	var pageOpts *teamhub.PaginationOptions
	if opts != nil {
		pageOpts = &opts.PaginationOptions
	}

	path := c.client.bucketPath(projectID, "/vaults/%d/documents.json", vaultID)

	result, err := http.GetAll[teamhub.Document](ctx, c.client.httpClient, path, nil, pageOpts)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	return result, nil
}

// Get implements teamhub.DocumentsClient.Get.
func (c *DocumentsClient) Get(ctx context.Context, projectID, documentID int64) (*teamhub.Document, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Get", false, projectID, documentID))

	resp, err := c.client.httpClient.Get(ctx, c.client.bucketPath(projectID, "/documents/%d.json", documentID), nil)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}

	return decode[teamhub.Document](resp, "document")
}

// Create implements teamhub.DocumentsClient.Create.
func (c *DocumentsClient) Create(ctx context.Context, projectID, vaultID int64, request *teamhub.DocumentCreateRequest) (*teamhub.Document, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Create", true, projectID, vaultID))

	resp, err := c.client.httpClient.Post(ctx, c.client.bucketPath(projectID, "/vaults/%d/documents.json", vaultID), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}

	return decode[teamhub.Document](resp, "document")
}

// Update implements teamhub.DocumentsClient.Update.
func (c *DocumentsClient) Update(ctx context.Context, projectID, documentID int64, request *teamhub.DocumentUpdateRequest) (*teamhub.Document, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Update", true, projectID, documentID))

	resp, err := c.client.httpClient.Put(ctx, c.client.bucketPath(projectID, "/documents/%d.json", documentID), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("updating document: %w", err)
	}

	return decode[teamhub.Document](resp, "document")
}
