package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/teamhub-io/teamhub-client/internal/constants"
)

// OAuth2Config configures the OAuth2 token manager.
type OAuth2Config struct {
	// TokenURL is the token endpoint
	// ("https://launchpad.teamhub.io/authorization/token").
	TokenURL string

	// ClientID and ClientSecret identify the integration.
	ClientID     string
	ClientSecret string

	// Username and Password enable the password grant.
	Username string
	Password string

	// RefreshToken enables the refresh_token grant.
	RefreshToken string

	// AccessToken seeds the store with an already-acquired token.
	AccessToken string
}

// OAuth2TokenManager obtains and renews tokens from the token endpoint.
// Token endpoint calls go through retryablehttp: a transient failure while
// renewing should not surface as an auth error to the caller.
type OAuth2TokenManager struct {
	config     *OAuth2Config
	store      *TokenStore
	httpClient *retryablehttp.Client

	// refreshMu serializes token fetches so concurrent requests don't
	// stampede the token endpoint.
	refreshMu sync.Mutex
}

// NewOAuth2TokenManager creates a token manager for the given config.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = constants.DefaultRetryMax
	httpClient.RetryWaitMin = constants.DefaultRetryWaitMin
	httpClient.RetryWaitMax = constants.DefaultRetryWaitMax
	httpClient.HTTPClient.Timeout = constants.TokenHTTPTimeout
	httpClient.Logger = nil

	manager := &OAuth2TokenManager{
		config:     config,
		store:      NewTokenStore(),
		httpClient: httpClient,
	}

	if config.AccessToken != "" {
		manager.store.Set(&Token{
			AccessToken:  config.AccessToken,
			RefreshToken: config.RefreshToken,
			TokenType:    "bearer",
		})
	}

	return manager
}

// AccessToken returns a valid token, fetching or renewing one as needed.
func (m *OAuth2TokenManager) AccessToken(ctx context.Context) (string, error) {
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	return m.fetchToken(ctx)
}

// RefreshToken discards the current token and obtains a fresh one.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) (string, error) {
	m.store.Clear()

	return m.fetchToken(ctx)
}

// SetToken stores a token acquired out of band.
func (m *OAuth2TokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken:  token,
		RefreshToken: m.config.RefreshToken,
		TokenType:    "bearer",
		ExpiresAt:    expiresAt,
	})
}

// fetchToken runs the first grant the configured credentials support.
func (m *OAuth2TokenManager) fetchToken(ctx context.Context) (string, error) {
	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	// Another caller may have refreshed while we waited for the lock.
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	refreshToken := m.config.RefreshToken
	if stored := m.store.Get(); stored != nil && stored.RefreshToken != "" {
		refreshToken = stored.RefreshToken
	}

	var (
		token *Token
		err   error
	)

	switch {
	case refreshToken != "":
		token, err = m.requestToken(ctx, url.Values{
			"grant_type":    []string{"refresh_token"},
			"refresh_token": []string{refreshToken},
		})

	case m.config.Username != "" && m.config.Password != "":
		token, err = m.requestToken(ctx, url.Values{
			"grant_type": []string{"password"},
			"username":   []string{m.config.Username},
			"password":   []string{m.config.Password},
		})

	case m.config.ClientID != "" && m.config.ClientSecret != "":
		token, err = m.requestToken(ctx, url.Values{
			"grant_type": []string{"client_credentials"},
		})

	default:
		return "", constants.ErrUnsupportedGrant
	}

	if err != nil {
		return "", err
	}

	m.store.Set(token)

	return token.AccessToken, nil
}

// tokenError is the error payload of the token endpoint.
type tokenError struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

// requestToken posts a grant to the token endpoint.
func (m *OAuth2TokenManager) requestToken(ctx context.Context, form url.Values) (*Token, error) {
	if m.config.TokenURL == "" {
		return nil, constants.ErrNoTokenURL
	}

	req, err := retryablehttp.NewRequestWithContext(
		ctx, http.MethodPost, m.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	if m.config.ClientID != "" {
		req.SetBasicAuth(m.config.ClientID, m.config.ClientSecret)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrTokenRequestFailed, err)
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxErrorBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var tokenErr tokenError
		if jsonErr := json.Unmarshal(body, &tokenErr); jsonErr == nil && tokenErr.Error != "" {
			return nil, fmt.Errorf("%w: %s: %s", constants.ErrTokenRequestFailed, tokenErr.Error, tokenErr.Description)
		}

		return nil, fmt.Errorf("%w: status %d", constants.ErrTokenRequestFailed, resp.StatusCode)
	}

	var token Token
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}

	if token.AccessToken == "" {
		return nil, constants.ErrEmptyTokenResponse
	}

	if token.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	return &token, nil
}
