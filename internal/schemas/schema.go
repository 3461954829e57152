package schemas

import (
	"errors"
	"fmt"
	"strings"

	"rescue-site-server/internal/utils"

	"github.com/go-playground/validator/v10"
)

// Schema описывает целевую структуру ответа модели: JSON Schema для промпта
// и проверку уже разобранного JSON.
type Schema[T any] interface {
	// Name - короткое имя схемы для логов и метрик.
	Name() string
	// Definition возвращает JSON Schema. Каждый вызов отдает новую карту.
	Definition() map[string]interface{}
	// Validate декодирует JSON строго и проверяет ограничения полей.
	// При нарушениях возвращает *ValidationError.
	Validate(raw []byte) (T, error)
}

// ValidationError перечисляет все нарушения схемы в порядке полей.
type ValidationError struct {
	Schema     string
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("response does not match schema %s: %s", e.Schema, strings.Join(e.Violations, "; "))
}

// objectSchema декодирует ответ в V, прогоняет через validator и приводит к T.
type objectSchema[T any, V any] struct {
	name       string
	definition func() map[string]interface{}
	wrap       func(*V) T
}

func (s *objectSchema[T, V]) Name() string {
	return s.name
}

func (s *objectSchema[T, V]) Definition() map[string]interface{} {
	return s.definition()
}

func (s *objectSchema[T, V]) Validate(raw []byte) (T, error) {
	var zero T
	value := new(V)
	if err := utils.DecodeStrict(raw, value); err != nil {
		return zero, &ValidationError{Schema: s.name, Violations: []string{err.Error()}}
	}
	if err := Validator().Struct(value); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			violations := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				violations = append(violations, describe(fe))
			}
			return zero, &ValidationError{Schema: s.name, Violations: violations}
		}
		return zero, fmt.Errorf("failed to validate %s: %w", s.name, err)
	}
	return s.wrap(value), nil
}
