package clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verifyServer(t *testing.T, status int, body string, gotForm *map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if gotForm != nil {
			*gotForm = map[string]string{
				"id_token":  r.PostFormValue("id_token"),
				"client_id": r.PostFormValue("client_id"),
			}
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVerifyIDToken(t *testing.T) {
	var form map[string]string
	srv := verifyServer(t, 200, `{"iss":"https://access.line.me","sub":"U1234","aud":"chan-1"}`, &form)

	c := NewLoginClient("chan-1")
	c.endpoint = srv.URL

	sub, err := c.VerifyIDToken(context.Background(), "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, "U1234", sub)
	assert.Equal(t, "tok-abc", form["id_token"])
	assert.Equal(t, "chan-1", form["client_id"])
}

func TestVerifyIDTokenExpired(t *testing.T) {
	srv := verifyServer(t, 400, `{"error":"invalid_request","error_description":"IdToken expired."}`, nil)

	c := NewLoginClient("chan-1")
	c.endpoint = srv.URL

	_, err := c.VerifyIDToken(context.Background(), "tok-abc")
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyIDTokenInvalid(t *testing.T) {
	srv := verifyServer(t, 400, `{"error":"invalid_request","error_description":"Invalid IdToken."}`, nil)

	c := NewLoginClient("chan-1")
	c.endpoint = srv.URL

	_, err := c.VerifyIDToken(context.Background(), "tok-abc")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.NotErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyIDTokenMalformedResponse(t *testing.T) {
	srv := verifyServer(t, 200, `<html>gateway error</html>`, nil)

	c := NewLoginClient("chan-1")
	c.endpoint = srv.URL

	_, err := c.VerifyIDToken(context.Background(), "tok-abc")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrTokenExpired))
	assert.False(t, errors.Is(err, ErrTokenInvalid))
}

func TestVerifyIDTokenMissingSubject(t *testing.T) {
	srv := verifyServer(t, 200, `{"iss":"https://access.line.me"}`, nil)

	c := NewLoginClient("chan-1")
	c.endpoint = srv.URL

	_, err := c.VerifyIDToken(context.Background(), "tok-abc")
	assert.Error(t, err)
}
