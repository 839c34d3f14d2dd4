package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/chapter"
	"github.com/fabula-ai/fabula/ent/novelsession"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/google/uuid"
)

// SessionService manages novel session lifecycle
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSession creates a new novel session from the intake form
func (s *SessionService) CreateSession(httpCtx context.Context, req models.CreateSessionRequest) (*ent.NovelSession, error) {
	// Validate input
	if len(req.FormData) == 0 {
		return nil, NewValidationError("form_data", "required")
	}
	if req.LLMModel == "" {
		return nil, NewValidationError("llm_model", "required")
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	genre := req.Genre
	if genre == "" {
		if g, ok := req.FormData["genre"].(string); ok {
			genre = g
		}
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.NovelSession.Create().
		SetID(sessionID).
		SetLlmModel(req.LLMModel).
		SetFormData(req.FormData)

	if req.UserID != "" {
		builder.SetUserID(req.UserID)
	}
	if genre != "" {
		builder.SetGenre(genre)
	}

	session, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// GetSession retrieves a session by ID with optional chapter loading
func (s *SessionService) GetSession(ctx context.Context, sessionID string, withChapters bool) (*ent.NovelSession, error) {
	query := s.client.NovelSession.Query().Where(novelsession.IDEQ(sessionID))

	if withChapters {
		query = query.WithChapters(func(q *ent.ChapterQuery) {
			q.Order(ent.Asc(chapter.FieldSectionIndex))
		})
	}

	session, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// GetSessionForUser retrieves a session and enforces ownership. Sessions
// created before accounts existed have no owner and stay readable by anyone
// authenticated.
func (s *SessionService) GetSessionForUser(ctx context.Context, sessionID, userID string) (*ent.NovelSession, error) {
	session, err := s.GetSession(ctx, sessionID, false)
	if err != nil {
		return nil, err
	}
	if session.UserID != "" && session.UserID != userID {
		return nil, ErrForbidden
	}
	return session, nil
}

// ListSessions lists sessions with filtering and pagination. The status
// filter matches the derived phase, which is not a column, so that path
// pages in memory after deriving.
func (s *SessionService) ListSessions(ctx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error) {
	query := s.client.NovelSession.Query()

	// Apply filters
	if filters.UserID != "" {
		query = query.Where(novelsession.UserIDEQ(filters.UserID))
	}
	if filters.LLMModel != "" {
		query = query.Where(novelsession.LlmModelEQ(filters.LLMModel))
	}
	if filters.Genre != "" {
		query = query.Where(novelsession.GenreEQ(filters.Genre))
	}
	if !filters.IncludeDeleted {
		query = query.Where(novelsession.DeletedAtIsNil())
	}

	// Apply pagination
	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	if filters.Status != "" {
		return s.listByDerivedStatus(ctx, query, filters.Status, limit, offset)
	}

	// Count total
	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	// Get sessions
	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(novelsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	summaries, err := s.Summaries(ctx, sessions)
	if err != nil {
		return nil, err
	}

	return &models.SessionListResponse{
		Sessions:   summaries,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

func (s *SessionService) listByDerivedStatus(ctx context.Context, query *ent.NovelSessionQuery, status models.SessionStatus, limit, offset int) (*models.SessionListResponse, error) {
	all, err := query.Order(ent.Desc(novelsession.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	matched := make([]*ent.NovelSession, 0, len(all))
	for _, sess := range all {
		if DeriveStatus(sess) == status {
			matched = append(matched, sess)
		}
	}
	totalCount := len(matched)

	if offset >= len(matched) {
		matched = nil
	} else {
		matched = matched[offset:]
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}

	summaries, err := s.Summaries(ctx, matched)
	if err != nil {
		return nil, err
	}

	return &models.SessionListResponse{
		Sessions:   summaries,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// Summaries projects sessions into the list shape. Heavy payloads stay
// behind; chapter counts come from a single grouped query.
func (s *SessionService) Summaries(ctx context.Context, sessions []*ent.NovelSession) ([]models.SessionSummary, error) {
	if len(sessions) == 0 {
		return []models.SessionSummary{}, nil
	}

	ids := make([]string, len(sessions))
	for i, sess := range sessions {
		ids[i] = sess.ID
	}

	var rows []struct {
		SessionID string `json:"session_id"`
		Count     int    `json:"count"`
	}
	err := s.client.Chapter.Query().
		Where(chapter.SessionIDIn(ids...)).
		GroupBy(chapter.FieldSessionID).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count chapters: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.SessionID] = row.Count
	}

	summaries := make([]models.SessionSummary, 0, len(sessions))
	for _, sess := range sessions {
		summaries = append(summaries, models.SessionSummary{
			SessionID:      sess.ID,
			UserID:         sess.UserID,
			Title:          sess.Draft.CurrentTitle,
			Genre:          sess.Genre,
			LLMModel:       sess.LlmModel,
			Status:         DeriveStatus(sess),
			OutlineVersion: sess.Outline.Version,
			ChapterCount:   counts[sess.ID],
			Writing:        writingProgressOrNil(sess),
			CreatedAt:      sess.CreatedAt,
			UpdatedAt:      sess.UpdatedAt,
		})
	}

	return summaries, nil
}

func writingProgressOrNil(sess *ent.NovelSession) *models.WritingProgress {
	if sess.WritingProgress == (models.WritingProgress{}) {
		return nil
	}
	wp := sess.WritingProgress
	return &wp
}

// SearchSessions performs full-text search on the book title. The custom
// predicate is added first so its placeholder stays $1.
func (s *SessionService) SearchSessions(ctx context.Context, userID, query string, limit int) ([]*ent.NovelSession, error) {
	if strings.TrimSpace(query) == "" {
		return nil, NewValidationError("q", "required")
	}
	if limit <= 0 {
		limit = 20
	}

	q := s.client.NovelSession.Query().
		Where(func(sel *sql.Selector) {
			sel.Where(sql.ExprP(
				"to_tsvector('simple', COALESCE(draft->>'current_title', '')) @@ plainto_tsquery('simple', $1)",
				query,
			))
		}).
		Where(novelsession.DeletedAtIsNil())

	if userID != "" {
		q = q.Where(novelsession.UserIDEQ(userID))
	}

	sessions, err := q.
		Limit(limit).
		Order(ent.Desc(novelsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search sessions: %w", err)
	}

	return sessions, nil
}

// DeleteSession soft deletes a session
func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	// Use background context with timeout
	deleteCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.NovelSession.UpdateOneID(sessionID).
		SetDeletedAt(time.Now()).
		Exec(deleteCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// RestoreSession restores a soft-deleted session
func (s *SessionService) RestoreSession(ctx context.Context, sessionID string) error {
	// Use background context with timeout
	restoreCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.NovelSession.UpdateOneID(sessionID).
		ClearDeletedAt().
		Exec(restoreCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}

	return nil
}

// SoftDeleteOldSessions soft deletes sessions untouched past the retention period
func (s *SessionService) SoftDeleteOldSessions(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	// Use background context with timeout
	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.NovelSession.Update().
		Where(
			novelsession.UpdatedAtLT(cutoff),
			novelsession.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete sessions: %w", err)
	}

	return count, nil
}
