package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorError(t *testing.T) {
	baseErr := errors.New("base error")

	tests := []struct {
		name     string
		err      *ValidationError
		contains []string
	}{
		{
			name: "full error",
			err:  NewValidationError("models", "gemini-2.5-flash", "fallbacks", baseErr),
			contains: []string{
				"models",
				"gemini-2.5-flash",
				"fallbacks",
				"base error",
			},
		},
		{
			name: "error without field",
			err:  NewValidationError("sanitizer", "violence", "", errors.New("invalid regex")),
			contains: []string{
				"sanitizer",
				"violence",
				"invalid regex",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()
			for _, substr := range tt.contains {
				assert.Contains(t, errStr, substr)
			}
		})
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	baseErr := errors.New("base error")
	validationErr := NewValidationError("credits", "weekly_quota", "flash", baseErr)

	unwrapped := validationErr.Unwrap()
	assert.Equal(t, baseErr, unwrapped)
	assert.True(t, errors.Is(validationErr, baseErr))
}

func TestLoadErrorError(t *testing.T) {
	err := NewLoadError("fabula.yaml", errors.New("yaml: unmarshal error"))

	errStr := err.Error()
	assert.Contains(t, errStr, "failed to load")
	assert.Contains(t, errStr, "fabula.yaml")
	assert.Contains(t, errStr, "unmarshal error")
}

func TestLoadErrorUnwrap(t *testing.T) {
	baseErr := ErrInvalidYAML
	loadErr := NewLoadError("fabula.yaml", baseErr)

	assert.Equal(t, baseErr, loadErr.Unwrap())
	assert.True(t, errors.Is(loadErr, ErrInvalidYAML))
}
