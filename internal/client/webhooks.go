package client

import (
	"context"
	"fmt"

	"github.com/teamhub-io/teamhub-client/internal/http"
	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

// WebhooksClient implements teamhub.WebhooksClient.
type WebhooksClient struct {
	client *Client
}

// NewWebhooksClient creates a new webhooks client.
func NewWebhooksClient(client *Client) *WebhooksClient {
	return &WebhooksClient{client: client}
}

func (c *WebhooksClient) opInfo(operation string, mutation bool, projectID, resourceID int64) teamhub.OperationInfo {
	return teamhub.OperationInfo{
		Service:      "Webhooks",
		Operation:    operation,
		ResourceType: "webhook",
		IsMutation:   mutation,
		ProjectID:    projectID,
		ResourceID:   resourceID,
	}
}

// List implements teamhub.WebhooksClient.List.
func (c *WebhooksClient) List(ctx context.Context, projectID int64) (*teamhub.ListResult[teamhub.Webhook], error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("List", false, projectID, 0))

	result, err := http.GetAll[teamhub.Webhook](ctx, c.client.httpClient, c.client.bucketPath(projectID, "/webhooks.json"), nil, nil)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("listing webhooks: %w", err)
	}

	return result, nil
}

// Get implements teamhub.WebhooksClient.Get.
func (c *WebhooksClient) Get(ctx context.Context, projectID, webhookID int64) (*teamhub.Webhook, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Get", false, projectID, webhookID))

	resp, err := c.client.httpClient.Get(ctx, c.client.bucketPath(projectID, "/webhooks/%d.json", webhookID), nil)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("getting webhook: %w", err)
	}

	return decode[teamhub.Webhook](resp, "webhook")
}

// Create implements teamhub.WebhooksClient.Create.
func (c *WebhooksClient) Create(ctx context.Context, projectID int64, request *teamhub.WebhookCreateRequest) (*teamhub.Webhook, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Create", true, projectID, 0))

	resp, err := c.client.httpClient.Post(ctx, c.client.bucketPath(projectID, "/webhooks.json"), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("creating webhook: %w", err)
	}

	return decode[teamhub.Webhook](resp, "webhook")
}

// Update implements teamhub.WebhooksClient.Update.
func (c *WebhooksClient) Update(ctx context.Context, projectID, webhookID int64, request *teamhub.WebhookUpdateRequest) (*teamhub.Webhook, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Update", true, projectID, webhookID))

	resp, err := c.client.httpClient.Put(ctx, c.client.bucketPath(projectID, "/webhooks/%d.json", webhookID), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("updating webhook: %w", err)
	}

	return decode[teamhub.Webhook](resp, "webhook")
}

// Delete implements teamhub.WebhooksClient.Delete.
func (c *WebhooksClient) Delete(ctx context.Context, projectID, webhookID int64) error {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Delete", true, projectID, webhookID))

	_, err := c.client.httpClient.Delete(ctx, c.client.bucketPath(projectID, "/webhooks/%d.json", webhookID))
	done(err)

	if err != nil {
		return fmt.Errorf("deleting webhook: %w", err)
	}

	return nil
}
