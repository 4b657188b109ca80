package client

import (
	"context"
	"fmt"

	"github.com/teamhub-io/teamhub-client/internal/http"
	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

// CardsClient implements teamhub.CardsClient.
type CardsClient struct {
	client *Client
}

// NewCardsClient creates a new cards client.
func NewCardsClient(client *Client) *CardsClient {
	return &CardsClient{client: client}
}

func (c *CardsClient) opInfo(operation string, mutation bool, projectID, resourceID int64) teamhub.OperationInfo {
	return teamhub.OperationInfo{
		Service:      "Cards",
		Operation:    operation,
		ResourceType: "card",
		IsMutation:   mutation,
		ProjectID:    projectID,
		ResourceID:   resourceID,
	}
}

// List implements teamhub.CardsClient.List.
func (c *CardsClient) List(ctx context.Context, projectID, columnID int64, opts *teamhub.ListOptions) (*teamhub.ListResult[teamhub.Card], error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("List", false, projectID, columnID))

	var pageOpts *teamhub.PaginationOptions
	if opts != nil {
		pageOpts = &opts.PaginationOptions
	}

	path := c.client.bucketPath(projectID, "/card_tables/lists/%d/cards.json", columnID)

	result, err := http.GetAll[teamhub.Card](ctx, c.client.httpClient, path, nil, pageOpts)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}

	return result, nil
}

// Get implements teamhub.CardsClient.Get.
func (c *CardsClient) Get(ctx context.Context, projectID, cardID int64) (*teamhub.Card, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Get", false, projectID, cardID))

	resp, err := c.client.httpClient.Get(ctx, c.client.bucketPath(projectID, "/card_tables/cards/%d.json", cardID), nil)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("getting card: %w", err)
	}

	return decode[teamhub.Card](resp, "card")
}

// Create implements teamhub.CardsClient.Create.
func (c *CardsClient) Create(ctx context.Context, projectID, columnID int64, request *teamhub.CardCreateRequest) (*teamhub.Card, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Create", true, projectID, columnID))

	resp, err := c.client.httpClient.Post(ctx, c.client.bucketPath(projectID, "/card_tables/lists/%d/cards.json", columnID), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("creating card: %w", err)
	}

	return decode[teamhub.Card](resp, "card")
}

// Update implements teamhub.CardsClient.Update.
func (c *CardsClient) Update(ctx context.Context, projectID, cardID int64, request *teamhub.CardUpdateRequest) (*teamhub.Card, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Update", true, projectID, cardID))

	resp, err := c.client.httpClient.Put(ctx, c.client.bucketPath(projectID, "/card_tables/cards/%d.json", cardID), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("updating card: %w", err)
	}

	return decode[teamhub.Card](resp, "card")
}

// Move implements teamhub.CardsClient.Move, placing the card at the end
// of the target column.
func (c *CardsClient) Move(ctx context.Context, projectID, cardID, columnID int64) error {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Move", true, projectID, cardID))

	body := map[string]int64{"column_id": columnID}

	_, err := c.client.httpClient.Post(ctx, c.client.bucketPath(projectID, "/card_tables/cards/%d/moves.json", cardID), body)
	done(err)

	if err != nil {
		return fmt.Errorf("moving card: %w", err)
	}

	return nil
}

// CardColumnsClient implements teamhub.CardColumnsClient.
type CardColumnsClient struct {
	client *Client
}

// NewCardColumnsClient creates a new card columns client.
func NewCardColumnsClient(client *Client) *CardColumnsClient {
	return &CardColumnsClient{client: client}
}

func (c *CardColumnsClient) opInfo(operation string, mutation bool, projectID, resourceID int64) teamhub.OperationInfo {
	return teamhub.OperationInfo{
		Service:      "CardColumns",
		Operation:    operation,
		ResourceType: "card_column",
		IsMutation:   mutation,
		ProjectID:    projectID,
		ResourceID:   resourceID,
	}
}

// Get implements teamhub.CardColumnsClient.Get.
func (c *CardColumnsClient) Get(ctx context.Context, projectID, columnID int64) (*teamhub.CardColumn, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Get", false, projectID, columnID))

	resp, err := c.client.httpClient.Get(ctx, c.client.bucketPath(projectID, "/card_tables/columns/%d.json", columnID), nil)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("getting card column: %w", err)
	}

	return decode[teamhub.CardColumn](resp, "card column")
}

// Create implements teamhub.CardColumnsClient.Create. tableID identifies
// the project's card table tool from its dock.
func (c *CardColumnsClient) Create(ctx context.Context, projectID, tableID int64, request *teamhub.CardColumnCreateRequest) (*teamhub.CardColumn, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Create", true, projectID, tableID))

	resp, err := c.client.httpClient.Post(ctx, c.client.bucketPath(projectID, "/card_tables/%d/columns.json", tableID), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("creating card column: %w", err)
	}

	return decode[teamhub.CardColumn](resp, "card column")
}

// Update implements teamhub.CardColumnsClient.Update.
func (c *CardColumnsClient) Update(ctx context.Context, projectID, columnID int64, request *teamhub.CardColumnUpdateRequest) (*teamhub.CardColumn, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("Update", true, projectID, columnID))

	resp, err := c.client.httpClient.Put(ctx, c.client.bucketPath(projectID, "/card_tables/columns/%d.json", columnID), request)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("updating card column: %w", err)
	}

	return decode[teamhub.CardColumn](resp, "card column")
}

// SetColor implements teamhub.CardColumnsClient.SetColor.
func (c *CardColumnsClient) SetColor(ctx context.Context, projectID, columnID int64, color string) (*teamhub.CardColumn, error) {
	ctx, done := c.client.startOperation(ctx, c.opInfo("SetColor", true, projectID, columnID))

	body := map[string]string{"color": color}

	resp, err := c.client.httpClient.Put(ctx, c.client.bucketPath(projectID, "/card_tables/columns/%d/color.json", columnID), body)
	done(err)

	if err != nil {
		return nil, fmt.Errorf("setting card column color: %w", err)
	}

	return decode[teamhub.CardColumn](resp, "card column")
}
