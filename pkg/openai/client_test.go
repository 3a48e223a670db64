package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteSendsJSONObjectRequest(t *testing.T) {
	var captured completionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"message\":\"hi\"}"}}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "gpt-4o", 5*time.Second)
	client.BaseURL = server.URL

	content, err := client.Complete(context.Background(), "say hi")
	require.NoError(t, err)

	assert.Equal(t, `{"message":"hi"}`, content)
	assert.Equal(t, "gpt-4o", captured.Model)
	assert.Equal(t, "json_object", captured.ResponseFormat.Type)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Equal(t, "say hi", captured.Messages[0].Content)
}

func TestCompleteReturnsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit reached","type":"requests"}}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "gpt-4o", 5*time.Second)
	client.BaseURL = server.URL

	_, err := client.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit reached")
}

func TestCompleteRequiresAPIKey(t *testing.T) {
	client := NewClient("", "gpt-4o", time.Second)

	_, err := client.Complete(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestCompleteErrorsOnEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "gpt-4o", 5*time.Second)
	client.BaseURL = server.URL

	_, err := client.Complete(context.Background(), "prompt")
	assert.Error(t, err)
}
