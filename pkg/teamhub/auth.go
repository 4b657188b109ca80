package teamhub

import (
	"context"
	"net/http"
)

// TokenProvider supplies bearer tokens for API requests.
// Implementations may return cached tokens or fetch fresh ones.
type TokenProvider interface {
	// AccessToken returns a token valid for the next request.
	AccessToken(ctx context.Context) (string, error)
}

// TokenRefresher is implemented by token providers that can invalidate and
// renew their token after the server rejects it.
type TokenRefresher interface {
	// RefreshToken discards the current token and obtains a new one.
	RefreshToken(ctx context.Context) (string, error)
}

// AuthStrategy applies credentials to an outgoing request.
type AuthStrategy interface {
	// Apply sets authentication headers on req.
	Apply(ctx context.Context, req *http.Request) error
	// Credential returns a stable identifier for the credential in use,
	// suitable for partitioning cached responses. It must not be sent to
	// a server or written to logs.
	Credential(ctx context.Context) (string, error)
}

// BearerAuth authenticates requests with an OAuth2 bearer token obtained
// from a TokenProvider.
type BearerAuth struct {
	Provider TokenProvider
}

var _ AuthStrategy = (*BearerAuth)(nil)

// NewBearerAuth creates a bearer token strategy backed by provider.
func NewBearerAuth(provider TokenProvider) *BearerAuth {
	return &BearerAuth{Provider: provider}
}

// Apply sets the Authorization header from the provider's current token.
func (b *BearerAuth) Apply(ctx context.Context, req *http.Request) error {
	token, err := b.Provider.AccessToken(ctx)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+token)

	return nil
}

// Credential returns the current token for cache partitioning.
func (b *BearerAuth) Credential(ctx context.Context) (string, error) {
	return b.Provider.AccessToken(ctx)
}

// Refresh renews the underlying token if the provider supports it. It
// reports whether a refresh happened.
func (b *BearerAuth) Refresh(ctx context.Context) (bool, error) {
	refresher, ok := b.Provider.(TokenRefresher)
	if !ok {
		return false, nil
	}

	if _, err := refresher.RefreshToken(ctx); err != nil {
		return false, err
	}

	return true, nil
}
