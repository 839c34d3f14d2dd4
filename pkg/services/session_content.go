package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/novelsession"
	"github.com/fabula-ai/fabula/pkg/models"
)

// Field-scoped mutators for the preparation phases. Each one touches only
// its own column so concurrent phases never clobber sibling fields.

// SaveGeneratedQuestions stores the clarifying questions
func (s *SessionService) SaveGeneratedQuestions(ctx context.Context, sessionID string, questions []models.Question) error {
	if len(questions) == 0 {
		return NewValidationError("questions", "required")
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.NovelSession.UpdateOneID(sessionID).
		SetGeneratedQuestions(questions).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save questions: %w", err)
	}

	return nil
}

// SaveAnswers stores the user's answers to the clarifying questions.
// Answers are closed once the draft is validated.
func (s *SessionService) SaveAnswers(ctx context.Context, sessionID string, answers map[string]string) error {
	if len(answers) == 0 {
		return NewValidationError("answers", "required")
	}

	session, err := s.GetSession(ctx, sessionID, false)
	if err != nil {
		return err
	}
	if session.Draft.Validated {
		return fmt.Errorf("answers are frozen once the draft is validated: %w", ErrPreconditionFailed)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = s.client.NovelSession.UpdateOneID(sessionID).
		SetQuestionAnswers(answers).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save answers: %w", err)
	}

	return nil
}

// SetPhaseProgress writes the progress dict of one preparation phase
func (s *SessionService) SetPhaseProgress(ctx context.Context, sessionID, phase string, progress models.PhaseProgress) error {
	progress.UpdatedAt = time.Now()

	update := s.client.NovelSession.UpdateOneID(sessionID)
	switch phase {
	case models.PhaseQuestions:
		update.SetQuestionsProgress(progress)
	case models.PhaseDraft:
		update.SetDraftProgress(progress)
	case models.PhaseOutline:
		update.SetOutlineProgress(progress)
	default:
		return NewValidationError("phase", fmt.Sprintf("unknown phase %q", phase))
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update %s progress: %w", phase, err)
	}

	return nil
}

// UpdateDraft stores a new draft revision. The previous revision moves into
// the history and the version is bumped; an empty title keeps the current
// one (manual text edits do not re-parse the title).
func (s *SessionService) UpdateDraft(ctx context.Context, sessionID, title, text string) (*ent.NovelSession, error) {
	if strings.TrimSpace(text) == "" {
		return nil, NewValidationError("draft_text", "required")
	}

	session, err := s.GetSession(ctx, sessionID, false)
	if err != nil {
		return nil, err
	}
	if session.Draft.Validated {
		return nil, fmt.Errorf("draft is frozen once validated: %w", ErrPreconditionFailed)
	}

	draft := session.Draft
	if draft.CurrentVersion > 0 {
		draft.History = append(draft.History, models.DraftRevision{
			Version:   draft.CurrentVersion,
			Title:     draft.CurrentTitle,
			Text:      draft.CurrentText,
			CreatedAt: time.Now(),
		})
	}
	if title != "" {
		draft.CurrentTitle = title
	}
	draft.CurrentText = text
	draft.CurrentVersion++
	draft.PendingFeedback = ""

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updated, err := s.client.NovelSession.UpdateOneID(sessionID).
		SetDraft(draft).
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update draft: %w", err)
	}

	return updated, nil
}

// SetDraftFeedback stores the user's revision notes for the next draft run.
// An empty string clears previously stashed feedback.
func (s *SessionService) SetDraftFeedback(ctx context.Context, sessionID, feedback string) error {
	session, err := s.GetSession(ctx, sessionID, false)
	if err != nil {
		return err
	}
	if session.Draft.Validated {
		return fmt.Errorf("draft is frozen once validated: %w", ErrPreconditionFailed)
	}

	draft := session.Draft
	draft.PendingFeedback = strings.TrimSpace(feedback)

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = s.client.NovelSession.UpdateOneID(sessionID).
		SetDraft(draft).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set draft feedback: %w", err)
	}

	return nil
}

// ValidateDraft marks the draft as accepted. The caller passes the version
// it reviewed; a stale version means someone regenerated in between.
func (s *SessionService) ValidateDraft(ctx context.Context, sessionID string, version int) error {
	session, err := s.GetSession(ctx, sessionID, false)
	if err != nil {
		return err
	}

	draft := session.Draft
	if draft.CurrentText == "" {
		return fmt.Errorf("no draft to validate: %w", ErrPreconditionFailed)
	}
	if version != draft.CurrentVersion {
		return ErrConcurrentModification
	}
	if draft.Validated {
		return nil
	}
	draft.Validated = true

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = s.client.NovelSession.UpdateOneID(sessionID).
		SetDraft(draft).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to validate draft: %w", err)
	}

	return nil
}

// UpdateOutline stores new outline text and bumps the outline version.
// Once the chapter loop has produced at least one chapter the outline is
// frozen unless the caller explicitly opts in.
func (s *SessionService) UpdateOutline(ctx context.Context, sessionID, text string, allowIfWriting bool) (*ent.NovelSession, error) {
	if strings.TrimSpace(text) == "" {
		return nil, NewValidationError("outline_text", "required")
	}

	session, err := s.GetSession(ctx, sessionID, false)
	if err != nil {
		return nil, err
	}
	if !session.Draft.Validated {
		return nil, fmt.Errorf("draft must be validated before the outline: %w", ErrPreconditionFailed)
	}

	wp := session.WritingProgress
	if wp.TotalSteps > 0 && !wp.IsComplete && wp.CurrentStep >= 1 && !allowIfWriting {
		return nil, ErrOutlineFrozen
	}

	outline := session.Outline
	outline.CurrentText = text
	outline.Version++

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updated, err := s.client.NovelSession.UpdateOneID(sessionID).
		SetOutline(outline).
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update outline: %w", err)
	}

	return updated, nil
}

// UpdateTokenUsage accumulates one LLM call's token counts under a phase.
// At most one task runs per session, so read-modify-write is race-free here.
func (s *SessionService) UpdateTokenUsage(ctx context.Context, sessionID, phase string, inputTokens, outputTokens int, model string) error {
	session, err := s.GetSession(ctx, sessionID, false)
	if err != nil {
		return err
	}

	usage := session.TokenUsage
	usage.Add(phase, inputTokens, outputTokens, model)

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = s.client.NovelSession.UpdateOneID(sessionID).
		SetTokenUsage(usage).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update token usage: %w", err)
	}

	return nil
}

// AddRealCost accumulates actual spend in EUR. Negative amounts are ignored.
func (s *SessionService) AddRealCost(ctx context.Context, sessionID string, amountEUR float64) error {
	if amountEUR <= 0 {
		return nil
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.NovelSession.UpdateOneID(sessionID).
		AddRealCostEur(amountEUR).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to add real cost: %w", err)
	}

	return nil
}

// SetEstimatedCost stores the forward cost estimate in EUR
func (s *SessionService) SetEstimatedCost(ctx context.Context, sessionID string, amountEUR float64) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.NovelSession.UpdateOneID(sessionID).
		SetEstimatedCostEur(amountEUR).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set estimated cost: %w", err)
	}

	return nil
}

// UpdateCoverImagePath stores the blob key of the generated cover
func (s *SessionService) UpdateCoverImagePath(ctx context.Context, sessionID, path string) error {
	if path == "" {
		return NewValidationError("cover_image_path", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.NovelSession.UpdateOneID(sessionID).
		SetCoverImagePath(path).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update cover image path: %w", err)
	}

	return nil
}

// UpdatePDFPath stores the blob key of the rendered book
func (s *SessionService) UpdatePDFPath(ctx context.Context, sessionID, path string) error {
	if path == "" {
		return NewValidationError("pdf_path", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.NovelSession.UpdateOneID(sessionID).
		SetPdfPath(path).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update pdf path: %w", err)
	}

	return nil
}

// UpdateCritique stores the finished literary review and marks the critique
// phase complete
func (s *SessionService) UpdateCritique(ctx context.Context, sessionID string, critique models.Critique) error {
	if critique.CreatedAt.IsZero() {
		critique.CreatedAt = time.Now()
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.NovelSession.UpdateOneID(sessionID).
		SetCritique(critique).
		SetCritiqueStatus(novelsession.CritiqueStatusCompleted).
		ClearCritiqueError().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update critique: %w", err)
	}

	return nil
}

// UpdateCritiqueStatus moves the critique sub-pipeline through its states
func (s *SessionService) UpdateCritiqueStatus(ctx context.Context, sessionID string, status novelsession.CritiqueStatus, errMsg string) error {
	update := s.client.NovelSession.UpdateOneID(sessionID).
		SetCritiqueStatus(status)
	if errMsg != "" {
		update.SetCritiqueError(errMsg)
	} else {
		update.ClearCritiqueError()
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update critique status: %w", err)
	}

	return nil
}
