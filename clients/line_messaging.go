/*
# Module: clients/line_messaging.go
LINE Messaging API push client.

## Linked Modules
- [clients/token](./token.go) - Channel access token providers
- [types/flex](../types/flex.go) - LINE flex message data structures

## Tags
api-client, line, messaging, push

## Exports
MessagingClient, NewMessagingClient, PushMessage

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "clients/line_messaging.go" ;
    code:description "LINE Messaging API push client" ;
    code:linksTo [
        code:name "clients/token" ;
        code:path "./token.go" ;
        code:relationship "Channel access token providers"
    ], [
        code:name "types/flex" ;
        code:path "../types/flex.go" ;
        code:relationship "LINE flex message data structures"
    ] ;
    code:exports :MessagingClient, :NewMessagingClient, :PushMessage ;
    code:tags "api-client", "line", "messaging", "push" .
<!-- End LinkedDoc RDF -->
*/
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"members-card/types"
)

const pushEndpoint = "https://api.line.me/v2/bot/message/push"

// MessagingClient delivers flex messages to users via the Messaging API
// push endpoint.
type MessagingClient struct {
	tokens     TokenProvider
	endpoint   string
	httpClient *http.Client
}

// NewMessagingClient creates a new Messaging API client.
func NewMessagingClient(tokens TokenProvider) *MessagingClient {
	return &MessagingClient{
		tokens:     tokens,
		endpoint:   pushEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// messagingError is the Messaging API error payload; details carry
// per-property diagnostics for rejected messages.
type messagingError struct {
	Message string `json:"message"`
	Details []struct {
		Message  string `json:"message"`
		Property string `json:"property"`
	} `json:"details"`
}

// PushMessage sends one flex message to userID. Each call carries a fresh
// X-Line-Retry-Key so a client-side retry could not double-deliver, though
// no retries are performed here. Non-200 responses are logged per detail
// and surfaced as an error.
func (c *MessagingClient) PushMessage(ctx context.Context, userID string, message *types.FlexMessage) error {
	token, err := c.tokens.Token()
	if err != nil {
		return err
	}

	payload := struct {
		To       string               `json:"to"`
		Messages []*types.FlexMessage `json:"messages"`
	}{
		To:       userID,
		Messages: []*types.FlexMessage{message},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal push request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	req.Header.Set("X-Line-Retry-Key", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call LINE Messaging API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		log.Printf("📨 Receipt message pushed: userId=%s", userID)
		return nil
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr == nil {
		var apiErr messagingError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			log.Printf("⚠️  LINE Messaging API error: %s", apiErr.Message)
			for _, d := range apiErr.Details {
				log.Printf("  %s: %s", d.Property, d.Message)
			}
		}
	}

	return fmt.Errorf("LINE Messaging API returned status %d", resp.StatusCode)
}
