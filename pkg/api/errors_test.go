package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fabula-ai/fabula/pkg/llm"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/fabula-ai/fabula/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation error",
			err:        services.NewValidationError("genre", "required"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrapped validation error",
			err:        fmt.Errorf("saving: %w", services.NewValidationError("text", "required")),
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "credits exhausted",
			err: &services.CreditsExhaustedError{
				Mode:        models.ModeFlash,
				NextResetAt: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			},
			wantStatus: http.StatusPaymentRequired,
		},
		{
			name:       "unauthorized",
			err:        services.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "forbidden",
			err:        services.ErrForbidden,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "not found",
			err:        fmt.Errorf("loading session: %w", services.ErrNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "outline frozen",
			err:        services.ErrOutlineFrozen,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "precondition failed",
			err:        fmt.Errorf("draft must be validated first: %w", services.ErrPreconditionFailed),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "task already queued",
			err:        services.ErrTaskAlreadyQueued,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "not cancellable",
			err:        services.ErrNotCancellable,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "concurrent modification",
			err:        services.ErrConcurrentModification,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "already exists",
			err:        services.ErrAlreadyExists,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "llm failure",
			err:        &llm.LLMFailure{Model: "gemini-2.5-pro", LastErr: errors.New("overloaded")},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "unknown error",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestMapServiceErrorBodies(t *testing.T) {
	t.Run("validation error names the field", func(t *testing.T) {
		_, body := mapServiceError(services.NewValidationError("recipient_email", "required"))
		assert.Equal(t, "recipient_email", body["field"])
	})

	t.Run("credits exhausted reports tier and reset", func(t *testing.T) {
		reset := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
		_, body := mapServiceError(&services.CreditsExhaustedError{Mode: models.ModePro, NextResetAt: reset})
		assert.Equal(t, "pro", body["mode"])
		assert.Equal(t, "2026-08-31T00:00:00Z", body["next_reset_at"])
	})

	t.Run("unknown errors are hidden", func(t *testing.T) {
		_, body := mapServiceError(errors.New("pq: secret dsn in message"))
		assert.Equal(t, "internal server error", body["error"])
	})

	t.Run("sentinel text is passed through", func(t *testing.T) {
		_, body := mapServiceError(fmt.Errorf("book is not finished yet: %w", services.ErrPreconditionFailed))
		assert.Contains(t, body["error"], "book is not finished yet")
	})
}
