package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rescue-site-server/internal/ai"
	"rescue-site-server/internal/schemas"

	"go.uber.org/zap"
)

const (
	// DefaultMaxRetries - дополнительные попытки после первой.
	DefaultMaxRetries = 2
	// DefaultTemperature - температура выборки для всех запросов генерации.
	DefaultTemperature float32 = 0.7
)

// ErrGenerationFailed - исчерпаны все попытки получить валидный ответ.
var ErrGenerationFailed = errors.New("generation failed")

// GenerationFailedError несет последнюю ошибку и число сделанных попыток.
type GenerationFailedError struct {
	Schema   string
	Attempts int
	LastErr  error
}

func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("%v: schema %s, %d attempts: %v", ErrGenerationFailed, e.Schema, e.Attempts, e.LastErr)
}

func (e *GenerationFailedError) Unwrap() error {
	return e.LastErr
}

func (e *GenerationFailedError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// Options - параметры одного вызова Complete.
type Options struct {
	Model      string // пусто = модель клиента
	MaxRetries *int   // nil = значение Completer
}

// Completer получает от модели JSON, прошедший проверку схемой,
// с ограниченным числом самокоррекций.
type Completer struct {
	client      ai.CompletionClient
	maxRetries  int
	temperature float32
	logger      *zap.Logger
}

// NewCompleter создает Completer. Отрицательные maxRetries и temperature
// заменяются на значения по умолчанию. Нулевая температура допустима.
func NewCompleter(client ai.CompletionClient, maxRetries int, temperature float32, logger *zap.Logger) *Completer {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	if temperature < 0 {
		temperature = DefaultTemperature
	}
	return &Completer{
		client:      client,
		maxRetries:  maxRetries,
		temperature: temperature,
		logger:      logger.Named("Completer"),
	}
}

// Complete выполняет попытки 0..maxRetries включительно. Единственный успешный
// выход - значение, прошедшее schema.Validate. Сбой сети, пустой ответ, невалидный
// JSON и нарушение схемы одинаково расходуют попытку.
func Complete[T any](ctx context.Context, c *Completer, schema schemas.Schema[T], parts []string, opts Options) (T, error) {
	var zero T
	maxRetries := c.maxRetries
	if opts.MaxRetries != nil && *opts.MaxRetries >= 0 {
		maxRetries = *opts.MaxRetries
	}
	log := c.logger.With(zap.String("schema", schema.Name()))

	current := parts
	var last Attempt[T]
	for n := 0; n <= maxRetries; n++ {
		if err := ctx.Err(); err != nil {
			generationResults.WithLabelValues(schema.Name(), "cancelled").Inc()
			return zero, err
		}

		last = runAttempt(ctx, c, schema, n, current, opts.Model)
		generationAttempts.WithLabelValues(schema.Name(), last.State.String()).Inc()

		if last.State == AttemptValidated {
			generationResults.WithLabelValues(schema.Name(), "success").Inc()
			log.Info("Generation succeeded", zap.Int("attempt", n), zap.Int("prompt_parts", len(current)))
			return last.Result, nil
		}

		log.Warn("Generation attempt failed",
			zap.Int("attempt", n),
			zap.Int("max_retries", maxRetries),
			zap.String("state", last.State.String()),
			zap.Error(last.Err()),
		)
		current = last.NextParts(current)
	}

	generationResults.WithLabelValues(schema.Name(), "exhausted").Inc()
	return zero, &GenerationFailedError{
		Schema:   schema.Name(),
		Attempts: maxRetries + 1,
		LastErr:  last.Err(),
	}
}

func runAttempt[T any](ctx context.Context, c *Completer, schema schemas.Schema[T], n int, parts []string, model string) Attempt[T] {
	attempt := Attempt[T]{Number: n, State: AttemptPending}

	text, _, err := c.client.Complete(ctx, ai.CompletionRequest{
		Prompt:      JoinParts(parts),
		Model:       model,
		Temperature: c.temperature,
		JSONMode:    true,
		Operation:   schema.Name(),
	})
	switch {
	case errors.Is(err, ai.ErrEmptyResponse), err == nil && strings.TrimSpace(text) == "":
		attempt.State = AttemptEmpty
		attempt.TransportErr = ai.ErrEmptyResponse
		return attempt
	case err != nil:
		attempt.State = AttemptTransportFailed
		attempt.TransportErr = err
		return attempt
	}
	attempt.RawText = text

	raw, err := parseJSON(text)
	if err != nil {
		attempt.State = AttemptParseFailed
		attempt.ParseErr = err
		return attempt
	}

	result, err := schema.Validate(raw)
	if err != nil {
		attempt.State = AttemptValidationFailed
		attempt.ValidationErr = err
		return attempt
	}

	attempt.State = AttemptValidated
	attempt.Result = result
	return attempt
}
