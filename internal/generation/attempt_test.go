package generation_test

import (
	"errors"
	"testing"

	"rescue-site-server/internal/generation"

	"github.com/stretchr/testify/assert"
)

func TestAttemptState_String(t *testing.T) {
	tests := map[generation.AttemptState]string{
		generation.AttemptPending:          "pending",
		generation.AttemptTransportFailed:  "transport_error",
		generation.AttemptEmpty:            "empty",
		generation.AttemptParseFailed:      "parse_error",
		generation.AttemptValidationFailed: "validation_error",
		generation.AttemptValidated:        "validated",
	}
	for state, want := range tests {
		assert.Equal(t, want, state.String())
	}
}

func TestAttempt_NextParts(t *testing.T) {
	base := []string{"one", "two"}

	tests := []struct {
		name     string
		attempt  generation.Attempt[int]
		wantLen  int
		contains string
	}{
		{
			name:    "transport error adds nothing",
			attempt: generation.Attempt[int]{State: generation.AttemptTransportFailed, TransportErr: errors.New("timeout")},
			wantLen: 2,
		},
		{
			name:     "empty asks for object",
			attempt:  generation.Attempt[int]{State: generation.AttemptEmpty},
			wantLen:  3,
			contains: "previous reply was empty",
		},
		{
			name:     "parse error quotes parser",
			attempt:  generation.Attempt[int]{State: generation.AttemptParseFailed, ParseErr: errors.New("unexpected end of JSON input")},
			wantLen:  3,
			contains: "unexpected end of JSON input",
		},
		{
			name:     "validation lists violations",
			attempt:  generation.Attempt[int]{State: generation.AttemptValidationFailed, ValidationErr: errors.New("heading is required")},
			wantLen:  3,
			contains: "heading is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := tt.attempt.NextParts(base)
			assert.Len(t, next, tt.wantLen)
			assert.Equal(t, []string{"one", "two"}, base)
			assert.Equal(t, base, next[:2])
			if tt.contains != "" {
				assert.Contains(t, next[2], tt.contains)
			}
		})
	}
}

func TestAttempt_Err(t *testing.T) {
	parseErr := errors.New("bad json")
	a := generation.Attempt[int]{State: generation.AttemptParseFailed, ParseErr: parseErr}
	assert.Equal(t, parseErr, a.Err())

	ok := generation.Attempt[int]{State: generation.AttemptValidated, Result: 1}
	assert.NoError(t, ok.Err())
}

func TestJoinParts(t *testing.T) {
	assert.Equal(t, "a\n\nb\n\nc", generation.JoinParts([]string{"a", "b", "c"}))
}
