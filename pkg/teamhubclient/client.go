// Package teamhubclient provides the main entry point for creating Teamhub API clients
package teamhubclient

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/teamhub-io/teamhub-client/internal/client"
	"github.com/teamhub-io/teamhub-client/internal/constants"
	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

// New creates a new Teamhub API client with endpoint normalization and
// automatic token-endpoint derivation.
func New(ctx context.Context, config *teamhub.Config) (teamhub.Client, error) {
	if config == nil {
		return nil, teamhub.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, teamhub.ErrAPIEndpointRequired
	}

	apiEndpoint, err := normalizeEndpoint(config.APIEndpoint)
	if err != nil {
		return nil, err
	}

	config.APIEndpoint = apiEndpoint

	// If we need a token endpoint and don't have one, derive it from the
	// API endpoint host.
	if needsTokenEndpoint(config) && config.TokenURL == "" {
		tokenURL, err := deriveTokenURL(apiEndpoint)
		if err != nil {
			return nil, fmt.Errorf("deriving token endpoint: %w", err)
		}

		config.TokenURL = tokenURL
	}

	// Use the internal client implementation
	cli, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// normalizeEndpoint trims a trailing slash, defaults the scheme to https and
// rejects plain http for anything but loopback hosts.
func normalizeEndpoint(endpoint string) (string, error) {
	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parsing API endpoint: %w", err)
	}

	if parsed.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", constants.ErrNoEndpointConfigured, endpoint)
	}

	if parsed.Scheme == "http" && !isLoopbackHost(parsed.Hostname()) {
		return "", fmt.Errorf("%w: %q", constants.ErrInsecureTokenURL, endpoint)
	}

	return endpoint, nil
}

// isLoopbackHost reports whether the host resolves trivially to loopback.
func isLoopbackHost(host string) bool {
	if host == "localhost" {
		return true
	}

	ip := net.ParseIP(host)

	return ip != nil && ip.IsLoopback()
}

// needsTokenEndpoint checks if the config requires OAuth2 token requests.
func needsTokenEndpoint(config *teamhub.Config) bool {
	return config.RefreshToken != "" || config.Username != "" || config.ClientID != ""
}

// deriveTokenURL builds the launchpad token endpoint for an API endpoint.
// "https://api.teamhub.io" becomes
// "https://launchpad.teamhub.io/authorization/token"; hosts without an
// "api." prefix keep their host and gain the authorization path.
func deriveTokenURL(apiEndpoint string) (string, error) {
	parsed, err := url.Parse(apiEndpoint)
	if err != nil {
		return "", fmt.Errorf("parsing API endpoint: %w", err)
	}

	host := parsed.Host
	if strings.HasPrefix(host, "api.") {
		host = "launchpad." + strings.TrimPrefix(host, "api.")
	}

	return parsed.Scheme + "://" + host + "/authorization/token", nil
}

// NewWithToken creates a new client with an endpoint, account and access
// token. It performs no I/O.
func NewWithToken(endpoint string, accountID int64, token string) (teamhub.Client, error) {
	return New(context.Background(), &teamhub.Config{
		APIEndpoint: endpoint,
		AccountID:   accountID,
		AccessToken: token,
	})
}

// NewWithClientCredentials creates a new client using OAuth2 client credentials.
func NewWithClientCredentials(ctx context.Context, endpoint string, accountID int64, clientID, clientSecret string) (teamhub.Client, error) {
	return New(ctx, &teamhub.Config{
		APIEndpoint:  endpoint,
		AccountID:    accountID,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}

// NewWithPassword creates a new client using username/password authentication.
func NewWithPassword(ctx context.Context, endpoint string, accountID int64, username, password string) (teamhub.Client, error) {
	return New(ctx, &teamhub.Config{
		APIEndpoint: endpoint,
		AccountID:   accountID,
		Username:    username,
		Password:    password,
	})
}
