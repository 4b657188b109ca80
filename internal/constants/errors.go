package constants

import "errors"

// Configuration errors.
var (
	ErrNoEndpointConfigured = errors.New("no API endpoint configured, use 'teamhub config set endpoint <url>' to set one")
	ErrNoAccountConfigured  = errors.New("no account configured, use 'teamhub config set account <id>' to set one")
	ErrNoRefreshToken       = errors.New("no refresh token available, please run 'teamhub login' again")
	ErrNotAuthenticated     = errors.New("not authenticated, run 'teamhub login' first")
)

// Token endpoint errors.
var (
	ErrNoTokenURL          = errors.New("no token endpoint configured and unable to derive one from the API endpoint")
	ErrTokenRequestFailed  = errors.New("token request failed")
	ErrEmptyTokenResponse  = errors.New("token response contained no access token")
	ErrInsecureTokenURL    = errors.New("token endpoint must use https")
	ErrUnsupportedGrant    = errors.New("no credentials available for any supported grant")
)

// Validation errors.
var (
	ErrInvalidAccountID = errors.New("account ID must be a positive integer")
	ErrInvalidColor     = errors.New("color must be one of the supported column colors")
)
