package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driven"
)

func TestLLMService_Generate(t *testing.T) {
	var gotReq generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(generateResponse{Response: "generated text", Done: true})
	}))
	defer server.Close()

	svc := NewLLMService(LLMConfig{BaseURL: server.URL, Model: "test-model"})

	out, err := svc.Generate(context.Background(), "hello", driven.GenerateOptions{
		MaxTokens:   64,
		Temperature: 0.3,
	})
	require.NoError(t, err)
	assert.Equal(t, "generated text", out)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.Equal(t, "hello", gotReq.Prompt)
	assert.False(t, gotReq.Stream)
	require.NotNil(t, gotReq.Options)
	assert.Equal(t, 64, gotReq.Options.NumPredict)
}

func TestLLMService_GenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewLLMService(LLMConfig{BaseURL: server.URL})

	_, err := svc.Generate(context.Background(), "hello", driven.GenerateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestLLMService_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewLLMService(LLMConfig{BaseURL: server.URL})
	assert.NoError(t, svc.Ping(context.Background()))
}

func TestLLMService_PingUnreachable(t *testing.T) {
	svc := NewLLMService(LLMConfig{BaseURL: "http://127.0.0.1:1"})
	assert.Error(t, svc.Ping(context.Background()))
}

func TestNewLLMService_Defaults(t *testing.T) {
	svc := NewLLMService(LLMConfig{})
	assert.Equal(t, DefaultLLMModel, svc.ModelName())
	assert.Equal(t, DefaultBaseURL, svc.baseURL)
	assert.NoError(t, svc.Close())
}
