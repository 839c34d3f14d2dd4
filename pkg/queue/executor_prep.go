package queue

import (
	"context"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/pkg/agent"
	"github.com/fabula-ai/fabula/pkg/models"
)

// Percent milestones for the preparation phases. Coarse on purpose: a prep
// run is one model call, so there is little to report between start and
// persist.
const (
	prepStarted   = 10
	prepGenerated = 60
	prepPersisted = 100
)

func (e *Executor) executeQuestions(ctx context.Context, session *ent.NovelSession) *ExecutionResult {
	e.setPhase(session.ID, models.PhaseQuestions, models.PhaseProgress{
		Status: models.ProgressRunning, Percent: prepStarted,
	})

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.Timeouts.Questions())
	defer cancel()

	questions, usage, err := e.runner.Questions(callCtx, agent.QuestionsInput{
		Form:  session.FormData,
		Model: session.LlmModel,
	})
	e.recordUsage(session.ID, models.PhaseQuestions, usage)
	if err != nil {
		return e.prepFailure(ctx, session.ID, models.PhaseQuestions, prepStarted, err)
	}

	e.setPhase(session.ID, models.PhaseQuestions, models.PhaseProgress{
		Status: models.ProgressRunning, Percent: prepGenerated,
	})

	if err := e.sessions.SaveGeneratedQuestions(ctx, session.ID, questions); err != nil {
		return e.prepFailure(ctx, session.ID, models.PhaseQuestions, prepGenerated, err)
	}

	e.setPhase(session.ID, models.PhaseQuestions, models.PhaseProgress{
		Status: models.ProgressCompleted, Percent: prepPersisted,
	})
	return &ExecutionResult{Status: generationtask.StatusCompleted}
}

func (e *Executor) executeDraft(ctx context.Context, session *ent.NovelSession) *ExecutionResult {
	e.setPhase(session.ID, models.PhaseDraft, models.PhaseProgress{
		Status: models.ProgressRunning, Percent: prepStarted,
	})

	in := agent.DraftInput{
		Form:      session.FormData,
		Questions: session.GeneratedQuestions,
		Answers:   session.QuestionAnswers,
		Model:     session.LlmModel,
	}
	if session.Draft.CurrentVersion > 0 {
		// Revision pass: the previous text and the stashed feedback ride
		// along; UpdateDraft clears the feedback when the revision lands.
		prev := session.Draft
		in.Previous = &prev
		in.Feedback = session.Draft.PendingFeedback
	}

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.Timeouts.Draft())
	defer cancel()

	result, usage, err := e.runner.Draft(callCtx, in)
	e.recordUsage(session.ID, models.PhaseDraft, usage)
	if err != nil {
		return e.prepFailure(ctx, session.ID, models.PhaseDraft, prepStarted, err)
	}

	e.setPhase(session.ID, models.PhaseDraft, models.PhaseProgress{
		Status: models.ProgressRunning, Percent: prepGenerated,
	})

	if _, err := e.sessions.UpdateDraft(ctx, session.ID, result.Title, result.Text); err != nil {
		return e.prepFailure(ctx, session.ID, models.PhaseDraft, prepGenerated, err)
	}

	e.setPhase(session.ID, models.PhaseDraft, models.PhaseProgress{
		Status: models.ProgressCompleted, Percent: prepPersisted,
	})
	return &ExecutionResult{Status: generationtask.StatusCompleted}
}

func (e *Executor) executeOutline(ctx context.Context, session *ent.NovelSession) *ExecutionResult {
	e.setPhase(session.ID, models.PhaseOutline, models.PhaseProgress{
		Status: models.ProgressRunning, Percent: prepStarted,
	})

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.Timeouts.Outline())
	defer cancel()

	result, usage, err := e.runner.Outline(callCtx, agent.OutlineInput{
		Form:      session.FormData,
		Questions: session.GeneratedQuestions,
		Answers:   session.QuestionAnswers,
		Draft:     session.Draft,
		Model:     session.LlmModel,
	})
	e.recordUsage(session.ID, models.PhaseOutline, usage)
	if err != nil {
		return e.prepFailure(ctx, session.ID, models.PhaseOutline, prepStarted, err)
	}

	e.setPhase(session.ID, models.PhaseOutline, models.PhaseProgress{
		Status: models.ProgressRunning, Percent: prepGenerated,
	})

	if _, err := e.sessions.UpdateOutline(ctx, session.ID, result.Markdown, false); err != nil {
		return e.prepFailure(ctx, session.ID, models.PhaseOutline, prepGenerated, err)
	}

	e.setPhase(session.ID, models.PhaseOutline, models.PhaseProgress{
		Status: models.ProgressCompleted, Percent: prepPersisted,
	})
	return &ExecutionResult{Status: generationtask.StatusCompleted}
}

// prepFailure marks the phase failed, keeping the last milestone so the UI
// shows where the run died, and maps a cancelled context to a cancelled task.
func (e *Executor) prepFailure(ctx context.Context, sessionID, phase string, percent int, err error) *ExecutionResult {
	e.setPhase(sessionID, phase, models.PhaseProgress{
		Status:  models.ProgressFailed,
		Percent: percent,
		Error:   err.Error(),
	})

	status := generationtask.StatusFailed
	if ctx.Err() == context.Canceled {
		status = generationtask.StatusCancelled
	}
	return &ExecutionResult{Status: status, Error: err}
}
