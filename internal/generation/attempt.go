package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AttemptState - состояние одной попытки получить валидный ответ.
type AttemptState int

const (
	AttemptPending AttemptState = iota
	AttemptTransportFailed
	AttemptEmpty
	AttemptParseFailed
	AttemptValidationFailed
	AttemptValidated
)

func (s AttemptState) String() string {
	switch s {
	case AttemptPending:
		return "pending"
	case AttemptTransportFailed:
		return "transport_error"
	case AttemptEmpty:
		return "empty"
	case AttemptParseFailed:
		return "parse_error"
	case AttemptValidationFailed:
		return "validation_error"
	case AttemptValidated:
		return "validated"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Attempt - результат одной итерации цикла. Значение не изменяется после
// перехода в конечное состояние.
type Attempt[T any] struct {
	Number        int
	State         AttemptState
	RawText       string
	TransportErr  error
	ParseErr      error
	ValidationErr error
	Result        T
}

// Err возвращает ошибку, из-за которой попытка провалилась.
func (a Attempt[T]) Err() error {
	switch a.State {
	case AttemptTransportFailed, AttemptEmpty:
		return a.TransportErr
	case AttemptParseFailed:
		return a.ParseErr
	case AttemptValidationFailed:
		return a.ValidationErr
	default:
		return nil
	}
}

// NextParts возвращает фрагменты промпта для следующей попытки.
// Исходный срез не изменяется.
func (a Attempt[T]) NextParts(parts []string) []string {
	fragment := a.correction()
	next := make([]string, len(parts), len(parts)+1)
	copy(next, parts)
	if fragment != "" {
		next = append(next, fragment)
	}
	return next
}

// correction формирует корректирующую инструкцию. Сетевой сбой не требует
// поправки: модель промпт не видела.
func (a Attempt[T]) correction() string {
	switch a.State {
	case AttemptEmpty:
		return "Your previous reply was empty. Reply with a single JSON object that matches the schema above."
	case AttemptParseFailed:
		return fmt.Sprintf(
			"Your previous reply was not valid JSON (%v). Reply again with ONLY a single valid JSON object that matches the schema above, without code fences or commentary.",
			a.ParseErr,
		)
	case AttemptValidationFailed:
		return fmt.Sprintf(
			"Your previous reply did not match the required schema: %v. Fix every listed problem and reply again with ONLY the corrected JSON object.",
			a.ValidationErr,
		)
	default:
		return ""
	}
}

// parseJSON проверяет синтаксис ответа и требует JSON-объект на верхнем уровне.
func parseJSON(text string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(strings.TrimSpace(string(raw)), "{") {
		return nil, fmt.Errorf("expected a JSON object at the top level")
	}
	return raw, nil
}

// JoinParts склеивает фрагменты промпта через пустую строку.
func JoinParts(parts []string) string {
	return strings.Join(parts, "\n\n")
}
