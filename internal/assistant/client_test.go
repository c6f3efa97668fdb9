package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientComplete(t *testing.T) {
	var captured generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/models/gemini-2.5-flash-lite:generateContent", r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_, _ = w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "I mostly ship Go and React."}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "", srv.URL)
	history := []Turn{
		{Role: RoleAssistant, Content: Greeting},
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello!"},
	}
	reply, err := c.Complete(context.Background(), history, "what do you ship?")
	require.NoError(t, err)
	assert.Equal(t, "I mostly ship Go and React.", reply)

	// System instruction rides separately from the turn history.
	require.NotNil(t, captured.SystemInstruction)
	assert.Contains(t, captured.SystemInstruction.Parts[0].Text, "portfolio")

	// History plus the new message, with assistant mapped to "model".
	require.Len(t, captured.Contents, 4)
	assert.Equal(t, "model", captured.Contents[0].Role)
	assert.Equal(t, "user", captured.Contents[1].Role)
	assert.Equal(t, "model", captured.Contents[2].Role)
	assert.Equal(t, "user", captured.Contents[3].Role)
	assert.Equal(t, "what do you ship?", captured.Contents[3].Parts[0].Text)
}

func TestClientComplete_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"code": 429, "message": "quota exceeded"}}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "", srv.URL)
	_, err := c.Complete(context.Background(), nil, "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestClientComplete_MissingKey(t *testing.T) {
	c := NewClient("", "", "")
	_, err := c.Complete(context.Background(), nil, "hi")
	assert.Error(t, err)
}
