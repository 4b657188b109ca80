// Package client implements the teamhub.Client interface on top of the
// shared transport in internal/http.
package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/teamhub-io/teamhub-client/internal/auth"
	"github.com/teamhub-io/teamhub-client/internal/constants"
	"github.com/teamhub-io/teamhub-client/internal/http"
	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

// Client implements the teamhub.Client interface.
type Client struct {
	httpClient    *http.Client
	tokenProvider teamhub.TokenProvider
	accountID     int64
	logger        teamhub.Logger

	// Resource clients
	projects    teamhub.ProjectsClient
	todoLists   teamhub.TodoListsClient
	todos       teamhub.TodosClient
	cards       teamhub.CardsClient
	cardColumns teamhub.CardColumnsClient
	messages    teamhub.MessagesClient
	comments    teamhub.CommentsClient
	people      teamhub.PeopleClient
	webhooks    teamhub.WebhooksClient
	events      teamhub.EventsClient
	schedules   teamhub.SchedulesClient
	documents   teamhub.DocumentsClient
}

var _ teamhub.Client = (*Client)(nil)

// createTokenProvider picks a token provider for the configured
// credentials, or nil when none are usable.
func createTokenProvider(config *teamhub.Config) teamhub.TokenProvider {
	refreshCapable := config.RefreshToken != "" ||
		(config.ClientID != "" && config.ClientSecret != "") ||
		(config.Username != "" && config.Password != "")

	if refreshCapable {
		return auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			TokenURL:     config.TokenURL,
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Username:     config.Username,
			Password:     config.Password,
			RefreshToken: config.RefreshToken,
			AccessToken:  config.AccessToken,
		})
	}

	if config.AccessToken != "" {
		return auth.NewStaticTokenManager(config.AccessToken)
	}

	return nil
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *teamhub.Config) ([]http.Option, error) {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Hooks != nil {
		httpOpts = append(httpOpts, http.WithHooks(config.Hooks))
	}

	if config.MaxPages > 0 {
		httpOpts = append(httpOpts, http.WithMaxPages(config.MaxPages))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.CacheEnabled {
		maxEntries := config.CacheMaxEntries
		if maxEntries <= 0 {
			maxEntries = constants.DefaultCacheSize
		}

		cache, err := teamhub.NewCacheFromConfig(&teamhub.CacheConfig{
			Type:   teamhub.CacheTypeMemory,
			Memory: &teamhub.MemoryCacheConfig{MaxSize: maxEntries},
		})
		if err != nil {
			return nil, fmt.Errorf("building cache: %w", err)
		}

		httpOpts = append(httpOpts, http.WithCache(cache))
	}

	return httpOpts, nil
}

// New creates a Teamhub API client.
func New(ctx context.Context, config *teamhub.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, teamhub.ErrAPIEndpointRequired
	}

	if config.AccountID <= 0 {
		return nil, teamhub.ErrAccountIDRequired
	}

	tokenProvider := createTokenProvider(config)
	if tokenProvider == nil {
		return nil, teamhub.ErrNoTokenConfigured
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(config.APIEndpoint, teamhub.NewBearerAuth(tokenProvider), httpOpts...)

	client := &Client{
		httpClient:    httpClient,
		tokenProvider: tokenProvider,
		accountID:     config.AccountID,
		logger:        config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// AccessToken returns the current access token.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	token, err := c.tokenProvider.AccessToken(ctx)
	if err != nil {
		return "", fmt.Errorf("getting access token: %w", err)
	}

	return token, nil
}

// Resource client accessors

// Projects implements teamhub.Client.Projects.
func (c *Client) Projects() teamhub.ProjectsClient {
	return c.projects
}

// TodoLists implements teamhub.Client.TodoLists.
func (c *Client) TodoLists() teamhub.TodoListsClient {
	return c.todoLists
}

// Todos implements teamhub.Client.Todos.
func (c *Client) Todos() teamhub.TodosClient {
	return c.todos
}

// Cards implements teamhub.Client.Cards.
func (c *Client) Cards() teamhub.CardsClient {
	return c.cards
}

// CardColumns implements teamhub.Client.CardColumns.
func (c *Client) CardColumns() teamhub.CardColumnsClient {
	return c.cardColumns
}

// Messages implements teamhub.Client.Messages.
func (c *Client) Messages() teamhub.MessagesClient {
	return c.messages
}

// Comments implements teamhub.Client.Comments.
func (c *Client) Comments() teamhub.CommentsClient {
	return c.comments
}

// People implements teamhub.Client.People.
func (c *Client) People() teamhub.PeopleClient {
	return c.people
}

// Webhooks implements teamhub.Client.Webhooks.
func (c *Client) Webhooks() teamhub.WebhooksClient {
	return c.webhooks
}

// Events implements teamhub.Client.Events.
func (c *Client) Events() teamhub.EventsClient {
	return c.events
}

// Schedules implements teamhub.Client.Schedules.
func (c *Client) Schedules() teamhub.SchedulesClient {
	return c.schedules
}

// Documents implements teamhub.Client.Documents.
func (c *Client) Documents() teamhub.DocumentsClient {
	return c.documents
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.projects = NewProjectsClient(c)
	c.todoLists = NewTodoListsClient(c)
	c.todos = NewTodosClient(c)
	c.cards = NewCardsClient(c)
	c.cardColumns = NewCardColumnsClient(c)
	c.messages = NewMessagesClient(c)
	c.comments = NewCommentsClient(c)
	c.people = NewPeopleClient(c)
	c.webhooks = NewWebhooksClient(c)
	c.events = NewEventsClient(c)
	c.schedules = NewSchedulesClient(c)
	c.documents = NewDocumentsClient(c)
}

// startOperation dispatches operation hooks for one resource operation.
func (c *Client) startOperation(ctx context.Context, info teamhub.OperationInfo) (context.Context, func(error)) {
	return c.httpClient.StartOperation(ctx, info)
}

// decode unmarshals a response body into a value of type T.
func decode[T any](resp *http.Response, what string) (*T, error) {
	var value T
	if err := json.Unmarshal(resp.Body, &value); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", what, err)
	}

	return &value, nil
}
