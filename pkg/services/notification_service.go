package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/notification"
	"github.com/google/uuid"
)

// Notification kinds
const (
	NotificationBookCompleted = "book_completed"
	NotificationBookShared    = "book_shared"
	NotificationCritiqueReady = "critique_ready"
)

// NotificationService manages in-app notifications
type NotificationService struct {
	client *ent.Client
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(client *ent.Client) *NotificationService {
	return &NotificationService{client: client}
}

// Create stores a notification for a user. SessionID may be empty for
// notifications not tied to a book.
func (s *NotificationService) Create(ctx context.Context, userID, kind, title, body, sessionID string) (*ent.Notification, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if kind == "" {
		return nil, NewValidationError("kind", "required")
	}
	if title == "" {
		return nil, NewValidationError("title", "required")
	}

	// Use background context with timeout: notifications are written from
	// task completion paths
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Notification.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetKind(kind).
		SetTitle(title)
	if body != "" {
		builder.SetBody(body)
	}
	if sessionID != "" {
		builder.SetSessionID(sessionID)
	}

	created, err := builder.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return created, nil
}

// List returns a user's notifications, newest first
func (s *NotificationService) List(ctx context.Context, userID string, onlyUnread bool, limit, offset int) ([]*ent.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := s.client.Notification.Query().
		Where(notification.UserIDEQ(userID))
	if onlyUnread {
		query = query.Where(notification.ReadEQ(false))
	}

	items, err := query.
		Order(ent.Desc(notification.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return items, nil
}

// MarkRead marks one notification read, scoped to its owner
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	count, err := s.client.Notification.Update().
		Where(
			notification.IDEQ(notificationID),
			notification.UserIDEQ(userID),
		).
		SetRead(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}

	return nil
}

// MarkAllRead marks every unread notification of a user read
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int, error) {
	count, err := s.client.Notification.Update().
		Where(
			notification.UserIDEQ(userID),
			notification.ReadEQ(false),
		).
		SetRead(true).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return count, nil
}

// CountUnread counts a user's unread notifications
func (s *NotificationService) CountUnread(ctx context.Context, userID string) (int, error) {
	count, err := s.client.Notification.Query().
		Where(
			notification.UserIDEQ(userID),
			notification.ReadEQ(false),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	return count, nil
}
