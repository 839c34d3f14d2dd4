package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/ent/novelsession"
	"github.com/fabula-ai/fabula/pkg/agent"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/fabula-ai/fabula/pkg/notify"
	"github.com/fabula-ai/fabula/pkg/render"
	"github.com/fabula-ai/fabula/pkg/services"
)

// executeCritique re-runs the review of a finished book, for example after
// a transient model failure. The PDF is laid out again from the stored
// chapters; the critique pipeline itself is shared with the writing task.
func (e *Executor) executeCritique(ctx context.Context, log *slog.Logger, session *ent.NovelSession) *ExecutionResult {
	if !session.WritingProgress.IsComplete {
		err := fmt.Errorf("critique requires a completed book")
		e.markCritiqueFailed(log, session.ID, err)
		return &ExecutionResult{Status: generationtask.StatusFailed, Error: err}
	}

	chapters, err := e.sessions.GetChapters(ctx, session.ID)
	if err != nil {
		err = fmt.Errorf("loading chapters: %w", err)
		e.markCritiqueFailed(log, session.ID, err)
		return &ExecutionResult{Status: generationtask.StatusFailed, Error: err}
	}

	data, err := render.NewPDF().Render(render.Book{
		SessionID: session.ID,
		Title:     session.Draft.CurrentTitle,
		Author:    e.authorFor(ctx, session),
		Genre:     session.Genre,
		Chapters:  services.ChapterContents(chapters),
		CreatedAt: session.CreatedAt,
	})
	if err != nil {
		err = fmt.Errorf("rendering pdf: %w", err)
		e.markCritiqueFailed(log, session.ID, err)
		return &ExecutionResult{Status: generationtask.StatusFailed, Error: err}
	}

	if err := e.runCritique(ctx, log, session, data); err != nil {
		return &ExecutionResult{Status: generationtask.StatusFailed, Error: err}
	}
	return &ExecutionResult{Status: generationtask.StatusCompleted}
}

// runCritique owns critique_status end to end: running on entry, then
// completed with the verdict or failed with the error. No placeholder
// verdict is ever written.
func (e *Executor) runCritique(ctx context.Context, log *slog.Logger, session *ent.NovelSession, pdf []byte) error {
	if err := e.sessions.UpdateCritiqueStatus(ctx, session.ID, novelsession.CritiqueStatusRunning, ""); err != nil {
		log.Warn("Failed to mark critique running", "error", err)
	}

	critCtx, cancel := context.WithTimeout(ctx, e.cfg.Timeouts.Critique())
	defer cancel()

	title := session.Draft.CurrentTitle
	critique, usage, err := e.runner.Critique(critCtx, agent.CritiqueInput{
		PDF:    pdf,
		Title:  title,
		Author: e.authorFor(ctx, session),
	})
	e.recordUsage(session.ID, models.PhaseCritique, usage)
	if err != nil {
		e.markCritiqueFailed(log, session.ID, err)
		return err
	}

	if err := e.sessions.UpdateCritique(ctx, session.ID, critique); err != nil {
		return fmt.Errorf("storing critique: %w", err)
	}

	e.notifier.NotifyCritiqueReady(ctx, notify.CritiqueReadyInput{
		UserID:    session.UserID,
		Email:     e.ownerEmail(ctx, session),
		SessionID: session.ID,
		Title:     title,
		Score:     critique.Score,
	})
	log.Info("Critique stored", "score", critique.Score)
	return nil
}

// markCritiqueFailed records the failure on a background context so the
// marker lands even when the task context is already dead.
func (e *Executor) markCritiqueFailed(log *slog.Logger, sessionID string, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.sessions.UpdateCritiqueStatus(ctx, sessionID, novelsession.CritiqueStatusFailed, cause.Error()); err != nil {
		log.Error("Failed to record critique failure", "error", err)
	}
}
