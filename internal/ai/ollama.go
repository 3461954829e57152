package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	"go.uber.org/zap"
)

const providerOllama = "ollama"

// ollamaClient реализует CompletionClient через нативный API Ollama.
type ollamaClient struct {
	client  *api.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

func newOllamaClient(baseURL, model string, timeout time.Duration, httpClient *http.Client, logger *zap.Logger) (CompletionClient, error) {
	// api.NewClient ждет адрес без суффикса /v1
	ollamaBaseURL := strings.TrimSuffix(strings.TrimSuffix(baseURL, "/"), "/v1")
	parsedURL, err := url.Parse(ollamaBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Ollama base URL '%s': %w", ollamaBaseURL, err)
	}

	logger.Info("Ollama completion client created",
		zap.String("base_url", ollamaBaseURL),
		zap.String("model", model),
		zap.Duration("timeout", timeout),
	)
	return &ollamaClient{
		client:  api.NewClient(parsedURL, httpClient),
		model:   model,
		timeout: timeout,
		logger:  logger.Named("OllamaClient"),
	}, nil
}

func (c *ollamaClient) Complete(ctx context.Context, req CompletionRequest) (string, UsageInfo, error) {
	usage := UsageInfo{}
	model := modelOrDefault(req.Model, c.model)
	operation := operationOrDefault(req.Operation)
	log := c.logger.With(zap.String("model", model), zap.String("operation", operation))

	messages := make([]api.Message, 0, 2)
	if req.JSONMode {
		messages = append(messages, api.Message{Role: "system", Content: systemInstruction})
	}
	messages = append(messages, api.Message{Role: "user", Content: req.Prompt})

	stream := false
	chatReq := &api.ChatRequest{
		Model:    model,
		Messages: messages,
		Stream:   &stream,
		Options: map[string]interface{}{
			"temperature": req.Temperature,
		},
	}
	if req.JSONMode {
		chatReq.Format = json.RawMessage(`"json"`)
	}

	requestCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		requestCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	startTime := time.Now()
	var resp api.ChatResponse
	err := c.client.Chat(requestCtx, chatReq, func(r api.ChatResponse) error {
		resp = r // без стрима приходит один финальный ответ
		return nil
	})
	duration := time.Since(startTime)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("Ollama request timed out", zap.Duration("timeout", c.timeout), zap.Duration("duration", duration))
		} else {
			log.Warn("Ollama request failed", zap.Duration("duration", duration), zap.Error(err))
		}
		observe(providerOllama, model, operation, "error", duration, usage)
		return "", usage, fmt.Errorf("%w: %v", ErrAIRequestFailed, err)
	}

	usage.PromptTokens = resp.PromptEvalCount
	usage.CompletionTokens = resp.EvalCount
	if usage.PromptTokens == 0 {
		usage.PromptTokens = estimateTokens(model, req.Prompt)
		usage.Estimated = usage.PromptTokens > 0
	}
	usage.TotalTokens = usage.PromptTokens + usage.CompletionTokens

	if strings.TrimSpace(resp.Message.Content) == "" {
		log.Warn("Ollama returned empty content", zap.Duration("duration", duration), zap.String("done_reason", resp.DoneReason))
		observe(providerOllama, model, operation, "empty", duration, usage)
		return "", usage, ErrEmptyResponse
	}

	observe(providerOllama, model, operation, "success", duration, usage)
	log.Info("Completion received",
		zap.Duration("duration", duration),
		zap.Int("response_length", len(resp.Message.Content)),
		zap.Int("prompt_tokens", usage.PromptTokens),
		zap.Int("completion_tokens", usage.CompletionTokens),
	)
	return resp.Message.Content, usage, nil
}
