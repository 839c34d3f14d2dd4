package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/bookshare"
	"github.com/fabula-ai/fabula/ent/user"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/google/uuid"
)

// ShareService manages book shares between accounts
type ShareService struct {
	client *ent.Client
}

// NewShareService creates a new ShareService
func NewShareService(client *ent.Client) *ShareService {
	return &ShareService{client: client}
}

// ShareBook shares a finished book with another account, looked up by email.
// Returns the share and the recipient so the caller can notify them.
func (s *ShareService) ShareBook(ctx context.Context, sessionID, ownerID, recipientEmail string) (*ent.BookShare, *ent.User, error) {
	email := strings.ToLower(strings.TrimSpace(recipientEmail))
	if email == "" {
		return nil, nil, NewValidationError("recipient_email", "required")
	}

	session, err := s.client.NovelSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session.UserID != ownerID {
		return nil, nil, ErrForbidden
	}
	if DeriveStatus(session) != models.StatusCompleted {
		return nil, nil, fmt.Errorf("only completed books can be shared: %w", ErrPreconditionFailed)
	}

	recipient, err := s.client.User.Query().
		Where(
			user.EmailEQ(email),
			user.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, fmt.Errorf("no account with that email: %w", ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to look up recipient: %w", err)
	}
	if recipient.ID == ownerID {
		return nil, nil, NewValidationError("recipient_email", "cannot share a book with yourself")
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	share, err := s.client.BookShare.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetOwnerID(ownerID).
		SetRecipientID(recipient.ID).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, nil, ErrAlreadyExists
		}
		return nil, nil, fmt.Errorf("failed to create share: %w", err)
	}

	return share, recipient, nil
}

// Unshare revokes a share. Only the owner can revoke.
func (s *ShareService) Unshare(ctx context.Context, sessionID, ownerID, recipientID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.BookShare.Delete().
		Where(
			bookshare.SessionIDEQ(sessionID),
			bookshare.OwnerIDEQ(ownerID),
			bookshare.RecipientIDEQ(recipientID),
		).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to revoke share: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}

	return nil
}

// ListSharesForSession lists who a book has been shared with
func (s *ShareService) ListSharesForSession(ctx context.Context, sessionID string) ([]*ent.BookShare, error) {
	shares, err := s.client.BookShare.Query().
		Where(bookshare.SessionIDEQ(sessionID)).
		Order(ent.Desc(bookshare.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}
	return shares, nil
}

// ListSharedWithUser lists the shares where the user is the recipient
func (s *ShareService) ListSharedWithUser(ctx context.Context, recipientID string) ([]*ent.BookShare, error) {
	shares, err := s.client.BookShare.Query().
		Where(bookshare.RecipientIDEQ(recipientID)).
		Order(ent.Desc(bookshare.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}
	return shares, nil
}

// HasReadAccess reports whether the user owns the session or has it shared
// with them
func (s *ShareService) HasReadAccess(ctx context.Context, sessionID, userID string) (bool, error) {
	session, err := s.client.NovelSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to get session: %w", err)
	}
	if session.UserID == userID {
		return true, nil
	}

	shared, err := s.client.BookShare.Query().
		Where(
			bookshare.SessionIDEQ(sessionID),
			bookshare.RecipientIDEQ(userID),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check share: %w", err)
	}

	return shared, nil
}
