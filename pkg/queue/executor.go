package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/pkg/agent"
	"github.com/fabula-ai/fabula/pkg/blob"
	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/llm"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/fabula-ai/fabula/pkg/notify"
	"github.com/fabula-ai/fabula/pkg/progress"
	"github.com/fabula-ai/fabula/pkg/sanitize"
	"github.com/fabula-ai/fabula/pkg/services"
)

// ImageGenerator is the slice of the LLM gateway the cover stage needs.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req llm.ImageRequest) ([]byte, error)
}

// Executor runs generation tasks end to end: it re-reads the session,
// invokes the model runners, and writes progress and results back as it
// goes. One instance is shared by all workers; per-task state lives on the
// stack of Execute.
type Executor struct {
	sessions  *services.SessionService
	users     *services.UserService
	runner    *agent.Runner
	images    ImageGenerator
	costs     *progress.CostCalculator
	store     blob.Store
	notifier  *notify.Service
	sanitizer *sanitize.Sanitizer
	cfg       *config.Config
}

// NewExecutor creates a task executor. notifier may be nil (notifications
// disabled); images may be nil (no cover stage).
func NewExecutor(
	sessions *services.SessionService,
	users *services.UserService,
	runner *agent.Runner,
	images ImageGenerator,
	costs *progress.CostCalculator,
	store blob.Store,
	notifier *notify.Service,
	sanitizer *sanitize.Sanitizer,
	cfg *config.Config,
) *Executor {
	return &Executor{
		sessions:  sessions,
		users:     users,
		runner:    runner,
		images:    images,
		costs:     costs,
		store:     store,
		notifier:  notifier,
		sanitizer: sanitizer,
		cfg:       cfg,
	}
}

// Execute dispatches a claimed task to its kind-specific run.
func (e *Executor) Execute(ctx context.Context, task *ent.GenerationTask) *ExecutionResult {
	log := slog.With("task_id", task.ID, "session_id", task.SessionID, "kind", task.Kind)

	session, err := e.sessions.GetSession(ctx, task.SessionID, false)
	if err != nil {
		return &ExecutionResult{
			Status: generationtask.StatusFailed,
			Error:  fmt.Errorf("loading session: %w", err),
		}
	}

	switch task.Kind {
	case generationtask.KindQuestions:
		return e.executeQuestions(ctx, session)
	case generationtask.KindDraft:
		return e.executeDraft(ctx, session)
	case generationtask.KindOutline:
		return e.executeOutline(ctx, session)
	case generationtask.KindWriting:
		return e.executeWriting(ctx, log, session)
	case generationtask.KindCritique:
		return e.executeCritique(ctx, log, session)
	default:
		return &ExecutionResult{
			Status: generationtask.StatusFailed,
			Error:  fmt.Errorf("unknown task kind %q", task.Kind),
		}
	}
}

// setPhase writes a phase progress dict on a background context so markers
// still land when the task context is already cancelled.
func (e *Executor) setPhase(sessionID, phase string, p models.PhaseProgress) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.sessions.SetPhaseProgress(ctx, sessionID, phase, p); err != nil {
		slog.Warn("Failed to update phase progress",
			"session_id", sessionID, "phase", phase, "error", err)
	}
}

// recordUsage books the tokens and euros of one model call on the session.
// Accounting never fails a run.
func (e *Executor) recordUsage(sessionID, phase string, usage llm.Usage) {
	if usage.InputTokens == 0 && usage.OutputTokens == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := e.sessions.UpdateTokenUsage(ctx, sessionID, phase, usage.InputTokens, usage.OutputTokens, usage.Model); err != nil {
		slog.Warn("Failed to record token usage",
			"session_id", sessionID, "phase", phase, "error", err)
	}
	if e.costs != nil {
		cost := e.costs.PhaseCostEUR(usage.Model, usage.InputTokens, usage.OutputTokens)
		if err := e.sessions.AddRealCost(ctx, sessionID, cost); err != nil {
			slog.Warn("Failed to record cost",
				"session_id", sessionID, "phase", phase, "error", err)
		}
	}
}

// ownerEmail resolves the owner's address for notifications. Anonymous
// sessions and lookup failures yield "", which the notifier treats as
// in-app only.
func (e *Executor) ownerEmail(ctx context.Context, session *ent.NovelSession) string {
	if session.UserID == "" || e.users == nil {
		return ""
	}
	u, err := e.users.GetByID(ctx, session.UserID)
	if err != nil {
		slog.Warn("Failed to load owner for notification",
			"session_id", session.ID, "user_id", session.UserID, "error", err)
		return ""
	}
	return u.Email
}

// authorFor names the book's author: the owner, or the house name for
// anonymous sessions.
func (e *Executor) authorFor(ctx context.Context, session *ent.NovelSession) string {
	if session.UserID != "" && e.users != nil {
		if u, err := e.users.GetByID(ctx, session.UserID); err == nil && u.DisplayName != "" {
			return u.DisplayName
		}
	}
	return "Fabula"
}
