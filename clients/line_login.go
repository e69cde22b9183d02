/*
# Module: clients/line_login.go
LINE Login ID-token verification client.

## Linked Modules
(None - uses internal types)

## Tags
api-client, line, auth, id-token

## Exports
LoginClient, NewLoginClient, ErrTokenExpired, ErrTokenInvalid

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "clients/line_login.go" ;
    code:description "LINE Login ID-token verification client" ;
    code:exports :LoginClient, :NewLoginClient, :ErrTokenExpired, :ErrTokenInvalid ;
    code:tags "api-client", "line", "auth", "id-token" .
<!-- End LinkedDoc RDF -->
*/
package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const verifyEndpoint = "https://api.line.me/oauth2/v2.1/verify"

// Verification failures the dispatcher maps to 403.
var (
	ErrTokenExpired = errors.New("id token is expired")
	ErrTokenInvalid = errors.New("id token is invalid")
)

// LoginClient verifies LINE Login ID tokens against the verify endpoint.
// https://developers.line.biz/en/reference/line-login/#verify-id-token
type LoginClient struct {
	channelID  string
	endpoint   string
	httpClient *http.Client
}

// NewLoginClient creates a new ID-token verification client for the given
// LIFF channel.
func NewLoginClient(channelID string) *LoginClient {
	return &LoginClient{
		channelID:  channelID,
		endpoint:   verifyEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// VerifyIDToken exchanges an ID token for the verified user ID (the token's
// subject). Expired or otherwise rejected tokens return ErrTokenExpired /
// ErrTokenInvalid; transport and malformed-response failures return plain
// errors.
func (c *LoginClient) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	form := url.Values{
		"id_token":  {idToken},
		"client_id": {c.channelID},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call LINE verify API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read verify response: %w", err)
	}

	var payload struct {
		Sub              string `json:"sub"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to parse verify response: %w", err)
	}

	if payload.Error != "" {
		if strings.Contains(payload.ErrorDescription, "expired") {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %s", ErrTokenInvalid, payload.ErrorDescription)
	}
	if payload.Sub == "" {
		return "", fmt.Errorf("verify response missing subject (status %d): %s", resp.StatusCode, string(body))
	}

	return payload.Sub, nil
}
