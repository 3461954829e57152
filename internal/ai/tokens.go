package ai

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	encodingsMu sync.Mutex
	encodings   = map[string]*tiktoken.Tiktoken{}
)

// estimateTokens считает токены локально, когда провайдер не вернул usage.
// Для незнакомых моделей берется cl100k_base. Ноль означает, что оценить не удалось.
func estimateTokens(model, text string) int {
	enc := encodingFor(model)
	if enc == nil {
		return 0
	}
	return len(enc.Encode(text, nil, nil))
}

func encodingFor(model string) *tiktoken.Tiktoken {
	encodingsMu.Lock()
	defer encodingsMu.Unlock()

	if enc, ok := encodings[model]; ok {
		return enc
	}
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding(tiktoken.MODEL_CL100K_BASE)
		if err != nil {
			encodings[model] = nil
			return nil
		}
	}
	encodings[model] = enc
	return enc
}
