package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const providerGemini = "gemini"

// geminiClient реализует CompletionClient через Gemini API.
type geminiClient struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func newGeminiClient(ctx context.Context, apiKey, model string, httpClient *http.Client, logger *zap.Logger) (CompletionClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	logger.Info("Gemini completion client created", zap.String("model", model))
	return &geminiClient{
		client: client,
		model:  model,
		logger: logger.Named("GeminiClient"),
	}, nil
}

func (c *geminiClient) Complete(ctx context.Context, req CompletionRequest) (string, UsageInfo, error) {
	usage := UsageInfo{}
	model := modelOrDefault(req.Model, c.model)
	operation := operationOrDefault(req.Operation)
	log := c.logger.With(zap.String("model", model), zap.String("operation", operation))

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.JSONMode {
		genConfig.ResponseMIMEType = "application/json"
		genConfig.SystemInstruction = genai.NewContentFromText(systemInstruction, genai.RoleUser)
	}

	startTime := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), genConfig)
	duration := time.Since(startTime)

	if err != nil {
		log.Warn("Gemini request failed", zap.Duration("duration", duration), zap.Error(err))
		observe(providerGemini, model, operation, "error", duration, usage)
		return "", usage, fmt.Errorf("%w: %v", ErrAIRequestFailed, err)
	}

	if resp.UsageMetadata != nil {
		usage.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		usage.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	if usage.PromptTokens == 0 {
		usage.PromptTokens = estimateTokens(model, req.Prompt)
		usage.Estimated = usage.PromptTokens > 0
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		log.Warn("Gemini returned empty content", zap.Duration("duration", duration))
		observe(providerGemini, model, operation, "empty", duration, usage)
		return "", usage, ErrEmptyResponse
	}

	observe(providerGemini, model, operation, "success", duration, usage)
	log.Info("Completion received",
		zap.Duration("duration", duration),
		zap.Int("response_length", len(text)),
		zap.Int("prompt_tokens", usage.PromptTokens),
	)
	return text, usage, nil
}
