package services

import (
	"context"
	"fmt"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/ent/novelsession"
	"github.com/fabula-ai/fabula/pkg/models"
)

// GenerationService is the gate in front of the task queue. It checks that a
// session is actually in a state where the requested run makes sense, records
// the pending progress marker, and enqueues. The expensive work happens later
// on whichever worker claims the task.
//
// Writing is the only run that costs a credit, and the credit is burned here,
// at acceptance: a book that pauses, fails or gets cancelled mid-write has
// still consumed real tokens, so nothing downstream refunds it. The single
// exception is an enqueue that never made it into the queue.
type GenerationService struct {
	sessions *SessionService
	tasks    *TaskService
	credits  *CreditService
}

// NewGenerationService creates a new GenerationService
func NewGenerationService(sessions *SessionService, tasks *TaskService, credits *CreditService) *GenerationService {
	return &GenerationService{
		sessions: sessions,
		tasks:    tasks,
		credits:  credits,
	}
}

// RequestQuestions queues a clarifying-questions run against the intake form.
// Free to rerun until the draft is validated; a rerun replaces the previous
// question set.
func (s *GenerationService) RequestQuestions(ctx context.Context, sessionID string) (*ent.GenerationTask, error) {
	session, err := s.sessions.GetSession(ctx, sessionID, false)
	if err != nil {
		return nil, err
	}
	if session.Draft.Validated {
		return nil, fmt.Errorf("questions are closed once the draft is validated: %w", ErrPreconditionFailed)
	}
	if err := s.ensureNoLiveTask(ctx, sessionID); err != nil {
		return nil, err
	}

	if err := s.sessions.SetPhaseProgress(ctx, sessionID, models.PhaseQuestions, models.PhaseProgress{
		Status: models.ProgressPending,
	}); err != nil {
		return nil, err
	}
	return s.tasks.Enqueue(ctx, sessionID, generationtask.KindQuestions)
}

// RequestDraft queues a draft run. On the first pass feedback is empty; on
// revision passes it carries the user's notes, stashed on the session so the
// worker picks them up together with the previous draft text. Rejected once
// the draft is validated.
func (s *GenerationService) RequestDraft(ctx context.Context, sessionID, feedback string) (*ent.GenerationTask, error) {
	session, err := s.sessions.GetSession(ctx, sessionID, false)
	if err != nil {
		return nil, err
	}
	if session.Draft.Validated {
		return nil, fmt.Errorf("draft is frozen once validated: %w", ErrPreconditionFailed)
	}
	if err := s.ensureNoLiveTask(ctx, sessionID); err != nil {
		return nil, err
	}

	if err := s.sessions.SetDraftFeedback(ctx, sessionID, feedback); err != nil {
		return nil, err
	}
	if err := s.sessions.SetPhaseProgress(ctx, sessionID, models.PhaseDraft, models.PhaseProgress{
		Status: models.ProgressPending,
	}); err != nil {
		return nil, err
	}
	return s.tasks.Enqueue(ctx, sessionID, generationtask.KindDraft)
}

// RequestOutline queues an outline run. Requires a validated draft, and is
// refused once chapters have been written, same rule as UpdateOutline.
func (s *GenerationService) RequestOutline(ctx context.Context, sessionID string) (*ent.GenerationTask, error) {
	session, err := s.sessions.GetSession(ctx, sessionID, false)
	if err != nil {
		return nil, err
	}
	if !session.Draft.Validated {
		return nil, fmt.Errorf("draft must be validated before the outline: %w", ErrPreconditionFailed)
	}
	wp := session.WritingProgress
	if wp.TotalSteps > 0 && !wp.IsComplete && wp.CurrentStep >= 1 {
		return nil, ErrOutlineFrozen
	}
	if err := s.ensureNoLiveTask(ctx, sessionID); err != nil {
		return nil, err
	}

	if err := s.sessions.SetPhaseProgress(ctx, sessionID, models.PhaseOutline, models.PhaseProgress{
		Status: models.ProgressPending,
	}); err != nil {
		return nil, err
	}
	return s.tasks.Enqueue(ctx, sessionID, generationtask.KindOutline)
}

// StartWriting burns one credit and queues the chapter-writing run. The
// credit is consumed before the enqueue and refunded only if the enqueue
// itself fails; once the task is in the queue the work is accepted and the
// credit is spent, whatever happens to the book afterwards.
func (s *GenerationService) StartWriting(ctx context.Context, sessionID string) (*ent.GenerationTask, error) {
	session, err := s.sessions.GetSession(ctx, sessionID, false)
	if err != nil {
		return nil, err
	}
	if !session.Draft.Validated {
		return nil, fmt.Errorf("draft must be validated before writing: %w", ErrPreconditionFailed)
	}
	if session.Outline.IsEmpty() {
		return nil, fmt.Errorf("outline is required before writing: %w", ErrPreconditionFailed)
	}
	wp := session.WritingProgress
	if wp.IsComplete {
		return nil, fmt.Errorf("book is already complete: %w", ErrPreconditionFailed)
	}
	if wp.TotalSteps > 0 || wp.IsPaused {
		// An interrupted run holds a paid-for prefix; resuming is free,
		// starting over would bill a second credit for the same book.
		return nil, fmt.Errorf("writing already started, resume instead: %w", ErrPreconditionFailed)
	}
	if err := s.ensureNoLiveTask(ctx, sessionID); err != nil {
		return nil, err
	}

	// Ownerless legacy sessions have no pool to bill; they write for free.
	if session.UserID != "" {
		if _, err := s.credits.Consume(ctx, session.UserID, models.ModeOfModel(session.LlmModel)); err != nil {
			return nil, err
		}
	}

	task, err := s.tasks.Enqueue(ctx, sessionID, generationtask.KindWriting)
	if err != nil {
		if session.UserID != "" {
			if refundErr := s.credits.Refund(ctx, session.UserID, models.ModeOfModel(session.LlmModel)); refundErr != nil {
				return nil, fmt.Errorf("%w (credit refund also failed: %v)", err, refundErr)
			}
		}
		return nil, err
	}
	return task, nil
}

// ResumeWriting re-queues a paused run. No credit is involved; the prefix of
// completed chapters is kept and writing picks up at the first missing one.
// The task is enqueued before the pause flag is cleared, so a failure in
// between self-heals: the worker resets the flag when it claims the task.
func (s *GenerationService) ResumeWriting(ctx context.Context, sessionID string) (*ent.GenerationTask, error) {
	session, err := s.sessions.GetSession(ctx, sessionID, false)
	if err != nil {
		return nil, err
	}
	if !session.WritingProgress.IsPaused {
		return nil, fmt.Errorf("writing is not paused: %w", ErrPreconditionFailed)
	}
	if err := s.ensureNoLiveTask(ctx, sessionID); err != nil {
		return nil, err
	}

	task, err := s.tasks.Enqueue(ctx, sessionID, generationtask.KindWriting)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.ResumeWriting(ctx, sessionID); err != nil {
		return nil, err
	}
	return task, nil
}

// Cancel flips the session's live task to cancelled and marks the session
// state accordingly. A running task is interrupted remotely: its heartbeat
// stops matching and the owning worker tears the context down. A task still
// in the queue simply never runs, so the session-side marker written here is
// the only trace the user sees.
func (s *GenerationService) Cancel(ctx context.Context, sessionID string) error {
	live, err := s.tasks.GetLiveTask(ctx, sessionID)
	if err != nil {
		return err
	}
	if live == nil {
		return ErrNotCancellable
	}

	if err := s.tasks.CancelBySession(ctx, sessionID); err != nil {
		return err
	}

	const reason = "cancelled by user"
	switch live.Kind {
	case generationtask.KindWriting:
		return s.sessions.PauseWriting(ctx, sessionID, reason)
	case generationtask.KindQuestions:
		return s.sessions.SetPhaseProgress(ctx, sessionID, models.PhaseQuestions, models.PhaseProgress{
			Status: models.ProgressFailed,
			Error:  reason,
		})
	case generationtask.KindDraft:
		return s.sessions.SetPhaseProgress(ctx, sessionID, models.PhaseDraft, models.PhaseProgress{
			Status: models.ProgressFailed,
			Error:  reason,
		})
	case generationtask.KindOutline:
		return s.sessions.SetPhaseProgress(ctx, sessionID, models.PhaseOutline, models.PhaseProgress{
			Status: models.ProgressFailed,
			Error:  reason,
		})
	case generationtask.KindCritique:
		return s.sessions.UpdateCritiqueStatus(ctx, sessionID, novelsession.CritiqueStatusFailed, reason)
	}
	return nil
}

// RequestCritique queues a critique run for a finished book. Reruns are
// allowed, for example after a transient failure; each run replaces the
// previous verdict.
func (s *GenerationService) RequestCritique(ctx context.Context, sessionID string) (*ent.GenerationTask, error) {
	session, err := s.sessions.GetSession(ctx, sessionID, false)
	if err != nil {
		return nil, err
	}
	if !session.WritingProgress.IsComplete {
		return nil, fmt.Errorf("critique requires a completed book: %w", ErrPreconditionFailed)
	}
	if err := s.ensureNoLiveTask(ctx, sessionID); err != nil {
		return nil, err
	}

	if err := s.sessions.UpdateCritiqueStatus(ctx, sessionID, novelsession.CritiqueStatusPending, ""); err != nil {
		return nil, err
	}
	return s.tasks.Enqueue(ctx, sessionID, generationtask.KindCritique)
}

// ensureNoLiveTask front-runs the partial unique index so the common double
// submit gets a clean ErrTaskAlreadyQueued before any session state is
// touched. Races that slip past still die on the index inside Enqueue.
func (s *GenerationService) ensureNoLiveTask(ctx context.Context, sessionID string) error {
	live, err := s.tasks.GetLiveTask(ctx, sessionID)
	if err != nil {
		return err
	}
	if live != nil {
		return ErrTaskAlreadyQueued
	}
	return nil
}
