package clients

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"members-card/types"
)

func testFlexMessage() *types.FlexMessage {
	return &types.FlexMessage{
		Type:    "flex",
		AltText: "alt",
		Contents: &types.FlexBubble{
			Type: "bubble",
			Body: &types.FlexBox{
				Type:   "box",
				Layout: "vertical",
				Contents: []types.FlexComponent{
					&types.FlexText{Type: "text", Text: "hello"},
				},
			},
		},
	}
}

func TestPushMessage(t *testing.T) {
	var (
		gotAuth  string
		gotRetry string
		gotBody  []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRetry = r.Header.Get("X-Line-Retry-Key")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c := NewMessagingClient(StaticTokenProvider("chan-token"))
	c.endpoint = srv.URL

	err := c.PushMessage(context.Background(), "U1234", testFlexMessage())
	require.NoError(t, err)

	assert.Equal(t, "Bearer chan-token", gotAuth)
	_, err = uuid.Parse(gotRetry)
	assert.NoError(t, err, "retry key must be a UUID")

	var payload struct {
		To       string            `json:"to"`
		Messages []json.RawMessage `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, "U1234", payload.To)
	require.Len(t, payload.Messages, 1)
	assert.Contains(t, string(payload.Messages[0]), `"altText":"alt"`)
}

func TestPushMessageAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"The request body has 1 error(s)","details":[{"message":"May not be empty","property":"messages[0].altText"}]}`))
	}))
	t.Cleanup(srv.Close)

	c := NewMessagingClient(StaticTokenProvider("chan-token"))
	c.endpoint = srv.URL

	err := c.PushMessage(context.Background(), "U1234", testFlexMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestPushMessageTokenFailure(t *testing.T) {
	c := NewMessagingClient(failingTokenProvider{})

	err := c.PushMessage(context.Background(), "U1234", testFlexMessage())
	assert.Error(t, err)
}

type failingTokenProvider struct{}

func (failingTokenProvider) Token() (string, error) {
	return "", assert.AnError
}
