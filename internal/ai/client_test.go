package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rescue-site-server/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestConfig(clientType, baseURL string) *config.Config {
	return &config.Config{
		AIClientType: clientType,
		AIBaseURL:    baseURL,
		AIModel:      "gpt-4o-mini",
		AIAPIKey:     "sk-test",
		AITimeout:    5 * time.Second,
	}
}

func TestOpenAIClient_Complete(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"heading\":\"Hi\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 120, "completion_tokens": 12, "total_tokens": 132}
		}`))
	}))
	defer server.Close()

	client, err := NewCompletionClient(context.Background(), newTestConfig("openai", server.URL), zap.NewNop())
	require.NoError(t, err)

	text, usage, err := client.Complete(context.Background(), CompletionRequest{
		Prompt:      "Write the hero section as JSON.",
		Temperature: 0.7,
		JSONMode:    true,
		Operation:   "section_hero",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"heading":"Hi"}`, text)
	assert.Equal(t, UsageInfo{PromptTokens: 120, CompletionTokens: 12, TotalTokens: 132}, usage)

	assert.Equal(t, "gpt-4o-mini", captured["model"])
	assert.InDelta(t, 0.7, captured["temperature"], 0.0001)
	assert.Equal(t, map[string]interface{}{"type": "json_object"}, captured["response_format"])
	messages := captured["messages"].([]interface{})
	require.Len(t, messages, 2)
	assert.Equal(t, "Write the hero section as JSON.", messages[1].(map[string]interface{})["content"])
}

func TestOpenAIClient_ZeroTemperatureIsSent(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"index": 0, "message": {"role": "assistant", "content": "{}"}}], "usage": {"prompt_tokens": 5, "completion_tokens": 1, "total_tokens": 6}}`))
	}))
	defer server.Close()

	client, err := NewCompletionClient(context.Background(), newTestConfig("openai", server.URL), zap.NewNop())
	require.NoError(t, err)

	_, _, err = client.Complete(context.Background(), CompletionRequest{Prompt: "x", Temperature: 0, JSONMode: true})
	require.NoError(t, err)

	require.Contains(t, captured, "temperature")
	assert.InDelta(t, 0, captured["temperature"], 0.0001)
}

func TestOpenAIClient_ModelOverrideAndEmpty(t *testing.T) {
	var model string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&req)
		model, _ = req["model"].(string)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"index": 0, "message": {"role": "assistant", "content": "  "}}], "usage": {"prompt_tokens": 5, "completion_tokens": 0, "total_tokens": 5}}`))
	}))
	defer server.Close()

	client, err := NewCompletionClient(context.Background(), newTestConfig("openai", server.URL), zap.NewNop())
	require.NoError(t, err)

	_, _, err = client.Complete(context.Background(), CompletionRequest{Prompt: "p", Model: "gpt-4.1"})
	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.Equal(t, "gpt-4.1", model)
}

func TestOpenAIClient_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": {"message": "overloaded", "type": "server_error"}}`))
	}))
	defer server.Close()

	client, err := NewCompletionClient(context.Background(), newTestConfig("openai", server.URL), zap.NewNop())
	require.NoError(t, err)

	_, _, err = client.Complete(context.Background(), CompletionRequest{Prompt: "p"})
	assert.ErrorIs(t, err, ErrAIRequestFailed)
}

func TestOllamaClient_Complete(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"llama3.1","message":{"role":"assistant","content":"{\"pages\":[]}"},"done":true,"done_reason":"stop","prompt_eval_count":40,"eval_count":9}` + "\n"))
	}))
	defer server.Close()

	cfg := newTestConfig("ollama", server.URL+"/v1")
	cfg.AIModel = "llama3.1"
	client, err := NewCompletionClient(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	text, usage, err := client.Complete(context.Background(), CompletionRequest{Prompt: "plan", Temperature: 0.7, JSONMode: true})
	require.NoError(t, err)
	assert.Equal(t, `{"pages":[]}`, text)
	assert.Equal(t, 40, usage.PromptTokens)
	assert.Equal(t, 9, usage.CompletionTokens)
	assert.Equal(t, 49, usage.TotalTokens)

	assert.Equal(t, "json", captured["format"])
	assert.Equal(t, false, captured["stream"])
}

func TestNewCompletionClient_Unsupported(t *testing.T) {
	client, err := NewCompletionClient(context.Background(), newTestConfig("palm", ""), zap.NewNop())
	assert.Nil(t, client)
	assert.ErrorIs(t, err, config.ErrUnsupportedAIClient)
}

func TestNewCompletionClient_Gemini(t *testing.T) {
	cfg := newTestConfig("gemini", "")
	cfg.AIModel = "gemini-2.0-flash"
	client, err := NewCompletionClient(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &geminiClient{}, client)
}
