package ai

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	openaigo "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const providerOpenAI = "openai"

// openAIClient реализует CompletionClient поверх go-openai.
// Подходит и для OpenAI-совместимых шлюзов (OpenRouter и т.п.) через AI_BASE_URL.
type openAIClient struct {
	client *openaigo.Client
	model  string
	logger *zap.Logger
}

func (c *openAIClient) Complete(ctx context.Context, req CompletionRequest) (string, UsageInfo, error) {
	usage := UsageInfo{}
	model := modelOrDefault(req.Model, c.model)
	operation := operationOrDefault(req.Operation)
	log := c.logger.With(zap.String("model", model), zap.String("operation", operation))

	messages := make([]openaigo.ChatCompletionMessage, 0, 2)
	if req.JSONMode {
		messages = append(messages, openaigo.ChatCompletionMessage{
			Role:    openaigo.ChatMessageRoleSystem,
			Content: systemInstruction,
		})
	}
	messages = append(messages, openaigo.ChatCompletionMessage{
		Role:    openaigo.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	request := openaigo.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: openAITemperature(req.Temperature),
	}
	if req.JSONMode {
		request.ResponseFormat = &openaigo.ChatCompletionResponseFormat{
			Type: openaigo.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	log.Debug("Sending completion request", zap.Int("prompt_bytes", len(req.Prompt)))
	startTime := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, request)
	duration := time.Since(startTime)

	if err != nil {
		log.Warn("Completion request failed", zap.Duration("duration", duration), zap.Error(err))
		observe(providerOpenAI, model, operation, "error", duration, usage)
		return "", usage, fmt.Errorf("%w: %v", ErrAIRequestFailed, err)
	}

	if resp.Usage.TotalTokens > 0 {
		usage.PromptTokens = resp.Usage.PromptTokens
		usage.CompletionTokens = resp.Usage.CompletionTokens
		usage.TotalTokens = resp.Usage.TotalTokens
	} else {
		usage.PromptTokens = estimateTokens(model, req.Prompt)
		usage.TotalTokens = usage.PromptTokens
		usage.Estimated = true
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		log.Warn("Completion returned empty content", zap.Duration("duration", duration))
		observe(providerOpenAI, model, operation, "empty", duration, usage)
		return "", usage, ErrEmptyResponse
	}

	observe(providerOpenAI, model, operation, "success", duration, usage)
	text := resp.Choices[0].Message.Content
	log.Info("Completion received",
		zap.Duration("duration", duration),
		zap.Int("response_length", len(text)),
		zap.Int("prompt_tokens", usage.PromptTokens),
		zap.Int("completion_tokens", usage.CompletionTokens),
		zap.String("finish_reason", string(resp.Choices[0].FinishReason)),
	)
	return text, usage, nil
}

// openAITemperature: go-openai опускает нулевую температуру (omitempty),
// и API подставляет 1.0. Ноль передаем как наименьшее положительное значение.
func openAITemperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}
