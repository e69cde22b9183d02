/*
# Module: clients/token.go
Channel access token providers for the Messaging API.

## Linked Modules
- [clients/line_messaging](./line_messaging.go) - Messaging API client

## Tags
api-client, line, oauth, token

## Exports
TokenProvider, StaticTokenProvider, OAuthTokenProvider, NewOAuthTokenProvider

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "clients/token.go" ;
    code:description "Channel access token providers for the Messaging API" ;
    code:linksTo [
        code:name "clients/line_messaging" ;
        code:path "./line_messaging.go" ;
        code:relationship "Messaging API client"
    ] ;
    code:exports :TokenProvider, :StaticTokenProvider, :OAuthTokenProvider, :NewOAuthTokenProvider ;
    code:tags "api-client", "line", "oauth", "token" .
<!-- End LinkedDoc RDF -->
*/
package clients

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const channelTokenEndpoint = "https://api.line.me/v2/oauth/accessToken"

// TokenProvider supplies a channel access token for Messaging API calls.
type TokenProvider interface {
	Token() (string, error)
}

// StaticTokenProvider returns a fixed long-lived channel access token
// (the CHANNEL_ACCESS_TOKEN deployment style).
type StaticTokenProvider string

func (p StaticTokenProvider) Token() (string, error) {
	return string(p), nil
}

// OAuthTokenProvider issues short-lived channel access tokens through the
// client_credentials grant and reuses them until they expire.
type OAuthTokenProvider struct {
	source oauth2.TokenSource
}

// NewOAuthTokenProvider creates a token provider for the given Messaging
// API channel credentials.
func NewOAuthTokenProvider(ctx context.Context, channelID, channelSecret string) *OAuthTokenProvider {
	cfg := clientcredentials.Config{
		ClientID:     channelID,
		ClientSecret: channelSecret,
		TokenURL:     channelTokenEndpoint,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	return &OAuthTokenProvider{source: cfg.TokenSource(ctx)}
}

func (p *OAuthTokenProvider) Token() (string, error) {
	token, err := p.source.Token()
	if err != nil {
		return "", fmt.Errorf("failed to issue channel access token: %w", err)
	}
	return token.AccessToken, nil
}
