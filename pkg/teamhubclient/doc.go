// Package teamhubclient provides the primary entry point for constructing a
// Teamhub API client that implements the teamhub.Client interface.
//
// It layers configuration, HTTP transport, authentication, conditional
// caching, and retries on top of the resource interfaces and types defined in
// the teamhub package. Most applications should import teamhubclient to build
// a client, then use the returned teamhub.Client to access resource-specific
// clients, for example Projects(), Todos(), Messages(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/teamhub-io/teamhub-client/pkg/teamhub"
//	  "github.com/teamhub-io/teamhub-client/pkg/teamhubclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // With an access token you already have:
//	  cli, err := teamhubclient.NewWithToken("https://api.teamhub.io", 1234567, "eyJhbGciOi...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with full configuration. When refresh-capable credentials are
//	  // provided and no token URL is set, teamhubclient derives the launchpad
//	  // token endpoint from the API host automatically.
//	  cli, err = teamhubclient.New(ctx, &teamhub.Config{
//	    APIEndpoint:  "https://api.teamhub.io",
//	    AccountID:    1234567,
//	    AccessToken:  "eyJhbGciOi...",
//	    RefreshToken: "def502...",
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the teamhub.Client interface
//	  projects, err := cli.Projects().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = projects
//	}
//
// # Endpoint normalization
//
// New trims a trailing slash from the endpoint and defaults the scheme to
// https when none is given. Plain http endpoints are rejected unless the host
// is a loopback address, which keeps credentials off cleartext transports
// while still allowing local test servers.
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken,
// NewWithClientCredentials, and NewWithPassword that wrap New with the
// appropriate configuration.
package teamhubclient
