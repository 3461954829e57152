package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"rescue-site-server/internal/config"

	openaigo "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

var (
	// ErrAIRequestFailed - модель не ответила (сеть, HTTP статус, таймаут).
	ErrAIRequestFailed = errors.New("AI completion request failed")
	// ErrEmptyResponse - модель ответила без текста.
	ErrEmptyResponse = errors.New("AI completion returned empty content")
)

// systemInstruction добавляется к запросам в режиме JSON.
const systemInstruction = "You write website copy for animal rescue organizations. Reply with a single JSON object and nothing else."

// CompletionRequest - один запрос к модели.
type CompletionRequest struct {
	Prompt      string
	Model       string // пусто = модель клиента по умолчанию
	Temperature float32
	JSONMode    bool
	Operation   string // метка для метрик и логов, например site_plan
}

// UsageInfo - использование токенов одним запросом.
type UsageInfo struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Estimated        bool // PromptTokens посчитаны локально
}

// CompletionClient - доступ к chat-completion модели.
type CompletionClient interface {
	// Complete отправляет промпт и возвращает текст ответа.
	// Пустой ответ возвращается как ErrEmptyResponse, сбой запроса как ErrAIRequestFailed.
	Complete(ctx context.Context, req CompletionRequest) (string, UsageInfo, error)
}

// NewCompletionClient создает клиента по AI_CLIENT_TYPE.
func NewCompletionClient(ctx context.Context, cfg *config.Config, logger *zap.Logger) (CompletionClient, error) {
	httpClient := &http.Client{Timeout: cfg.AITimeout}

	switch strings.ToLower(cfg.AIClientType) {
	case config.AIClientOpenAI:
		openaiConfig := openaigo.DefaultConfig(cfg.AIAPIKey)
		openaiConfig.BaseURL = cfg.AIBaseURL
		openaiConfig.HTTPClient = httpClient
		logger.Info("OpenAI completion client created",
			zap.String("base_url", cfg.AIBaseURL),
			zap.String("model", cfg.AIModel),
			zap.Duration("timeout", cfg.AITimeout),
		)
		return &openAIClient{
			client: openaigo.NewClientWithConfig(openaiConfig),
			model:  cfg.AIModel,
			logger: logger.Named("OpenAIClient"),
		}, nil
	case config.AIClientOllama:
		return newOllamaClient(cfg.AIBaseURL, cfg.AIModel, cfg.AITimeout, httpClient, logger)
	case config.AIClientGemini:
		return newGeminiClient(ctx, cfg.AIAPIKey, cfg.AIModel, httpClient, logger)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedAIClient, cfg.AIClientType)
	}
}

func modelOrDefault(requested, fallback string) string {
	if strings.TrimSpace(requested) != "" {
		return requested
	}
	return fallback
}

func operationOrDefault(op string) string {
	if op == "" {
		return "completion"
	}
	return op
}

// observe пишет метрики одного запроса.
func observe(provider, model, operation, status string, duration time.Duration, usage UsageInfo) {
	aiRequestsTotal.WithLabelValues(provider, model, operation, status).Inc()
	aiRequestDuration.WithLabelValues(provider, model, operation).Observe(duration.Seconds())
	if usage.PromptTokens > 0 {
		aiPromptTokens.WithLabelValues(provider, model).Observe(float64(usage.PromptTokens))
	}
	if usage.CompletionTokens > 0 {
		aiCompletionTokens.WithLabelValues(provider, model).Observe(float64(usage.CompletionTokens))
	}
}
