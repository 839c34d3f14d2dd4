package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fabula-ai/fabula/pkg/llm"
	"github.com/fabula-ai/fabula/pkg/services"
)

// mapServiceError translates a service-layer error into an HTTP status and
// response body. Sentinel errors carry their own user-facing text; anything
// unrecognized is logged and hidden behind a generic 500.
func mapServiceError(err error) (int, gin.H) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, gin.H{"error": validErr.Error(), "field": validErr.Field}
	}

	var creditsErr *services.CreditsExhaustedError
	if errors.As(err, &creditsErr) {
		return http.StatusPaymentRequired, gin.H{
			"error":         creditsErr.Error(),
			"mode":          string(creditsErr.Mode),
			"next_reset_at": creditsErr.NextResetAt.UTC().Format(time.RFC3339),
		}
	}

	switch {
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized, gin.H{"error": "unauthorized"}
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden, gin.H{"error": "forbidden"}
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, gin.H{"error": "resource not found"}
	case errors.Is(err, services.ErrOutlineFrozen),
		errors.Is(err, services.ErrPreconditionFailed),
		errors.Is(err, services.ErrTaskAlreadyQueued),
		errors.Is(err, services.ErrNotCancellable),
		errors.Is(err, services.ErrConcurrentModification),
		errors.Is(err, services.ErrAlreadyExists):
		return http.StatusConflict, gin.H{"error": err.Error()}
	}

	var llmErr *llm.LLMFailure
	if errors.As(err, &llmErr) {
		return http.StatusBadGateway, gin.H{"error": llmErr.Error()}
	}

	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, gin.H{"error": "internal server error"}
}

// respondServiceError writes the mapped error to the response.
func respondServiceError(c *gin.Context, err error) {
	c.JSON(mapServiceError(err))
}

// abortServiceError is respondServiceError for middleware, where later
// handlers in the chain must not run.
func abortServiceError(c *gin.Context, err error) {
	status, body := mapServiceError(err)
	c.AbortWithStatusJSON(status, body)
}
