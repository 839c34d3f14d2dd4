package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/fabula-ai/fabula/pkg/models"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrConcurrentModification is returned when optimistic locking fails
	ErrConcurrentModification = errors.New("concurrent modification detected")

	// ErrUnauthorized is returned when no valid credentials were presented
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller may not act on this entity
	ErrForbidden = errors.New("forbidden")

	// ErrPreconditionFailed is returned when the session is not in the
	// phase the operation requires (e.g. outline before draft validation)
	ErrPreconditionFailed = errors.New("operation not allowed in current phase")

	// ErrOutlineFrozen is returned when editing the outline after writing
	// has started
	ErrOutlineFrozen = errors.New("outline is frozen once writing has started")

	// ErrTaskAlreadyQueued is returned when a session already has a live
	// generation task
	ErrTaskAlreadyQueued = errors.New("a generation task is already queued or running for this session")

	// ErrNotCancellable is returned when cancelling a task that is neither
	// queued nor running
	ErrNotCancellable = errors.New("task is not in a cancellable state")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// CreditsExhaustedError is returned when a user has no credits left for
// the requested tier this week.
type CreditsExhaustedError struct {
	Mode        models.Mode
	NextResetAt time.Time
}

func (e *CreditsExhaustedError) Error() string {
	return fmt.Sprintf("no %s credits left; next refill at %s",
		e.Mode, e.NextResetAt.UTC().Format(time.RFC3339))
}

// IsCreditsExhausted checks if an error is a credits exhaustion error
func IsCreditsExhausted(err error) bool {
	var ce *CreditsExhaustedError
	return errors.As(err, &ce)
}
