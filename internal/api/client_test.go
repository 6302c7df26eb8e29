package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return NewClient(ClientConfig{
		APIKey:  "test-key",
		BaseURL: serverURL,
		Model:   "gemini-1.5-flash",
		Timeout: 5 * time.Second,
	})
}

func TestGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/models/gemini-1.5-flash:generateContent", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Equal(t, "analyze this", req.Contents[0].Parts[0].Text)

		resp := generateResponse{
			Candidates: []candidate{
				{Content: content{Parts: []part{{Text: "Here are "}, {Text: "the insights."}}}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	out, err := client.Generate(context.Background(), "analyze this")
	require.NoError(t, err)
	require.Equal(t, "Here are the insights.", out)
}

func TestGenerate_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Generate(context.Background(), "analyze this")
	require.Error(t, err)
	require.Contains(t, err.Error(), "quota exceeded")
	require.Contains(t, err.Error(), "429")
}

func TestGenerate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := generateResponse{
			Error: &apiError{Code: 400, Message: "invalid argument", Status: "INVALID_ARGUMENT"},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Generate(context.Background(), "analyze this")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid argument")
}

func TestGenerate_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(generateResponse{}))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Generate(context.Background(), "analyze this")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no completion returned")
}

func TestGenerate_MissingAPIKey(t *testing.T) {
	client := NewClient(ClientConfig{BaseURL: "http://localhost:0"})
	_, err := client.Generate(context.Background(), "analyze this")
	require.Error(t, err)
	require.Contains(t, err.Error(), "API key not configured")
}

func TestGenerate_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Generate(ctx, "analyze this")
	require.Error(t, err)
}
