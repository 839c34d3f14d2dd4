package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/ent/novelsession"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/fabula-ai/fabula/pkg/services"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned tasks.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running tasks with stale heartbeats, fails
// them, and puts their sessions back into a state the user can act on.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	orphans, err := p.tasks.FindOrphanedTasks(ctx, p.config.OrphanThreshold)
	if err != nil {
		return fmt.Errorf("failed to query orphaned tasks: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned tasks", "count", len(orphans))

	recovered := 0
	for _, task := range orphans {
		if err := p.recoverOrphanedTask(ctx, task); err != nil {
			slog.Error("Failed to recover orphaned task",
				"task_id", task.ID,
				"session_id", task.SessionID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedTask fails a single orphaned task and recovers its session.
func (p *WorkerPool) recoverOrphanedTask(ctx context.Context, task *ent.GenerationTask) error {
	log := slog.With("task_id", task.ID, "session_id", task.SessionID, "old_pod_id", task.PodID)

	lastHeartbeat := "unknown"
	if task.LastInteractionAt != nil {
		lastHeartbeat = task.LastInteractionAt.Format(time.RFC3339)
	}

	podID := "unknown"
	if task.PodID != nil {
		podID = *task.PodID
	}

	reason := fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)
	if err := p.tasks.Fail(ctx, task.ID, reason); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			// Another pod's scan got here first
			return nil
		}
		return fmt.Errorf("failed to mark task as failed: %w", err)
	}

	if err := recoverSessionState(ctx, p.sessions, task, reason); err != nil {
		return fmt.Errorf("failed to recover session state: %w", err)
	}

	log.Warn("Orphaned task recovered", "last_heartbeat", lastHeartbeat)
	return nil
}

// recoverSessionState leaves the session actionable after its task died
// without a terminal write. An interrupted book pauses so the user can
// resume; prep and critique runs surface as failed and can be rerun.
func recoverSessionState(ctx context.Context, sessions *services.SessionService, task *ent.GenerationTask, reason string) error {
	switch task.Kind {
	case generationtask.KindWriting:
		return sessions.PauseWriting(ctx, task.SessionID, reason)
	case generationtask.KindQuestions:
		return sessions.SetPhaseProgress(ctx, task.SessionID, models.PhaseQuestions, models.PhaseProgress{
			Status: models.ProgressFailed,
			Error:  reason,
		})
	case generationtask.KindDraft:
		return sessions.SetPhaseProgress(ctx, task.SessionID, models.PhaseDraft, models.PhaseProgress{
			Status: models.ProgressFailed,
			Error:  reason,
		})
	case generationtask.KindOutline:
		return sessions.SetPhaseProgress(ctx, task.SessionID, models.PhaseOutline, models.PhaseProgress{
			Status: models.ProgressFailed,
			Error:  reason,
		})
	case generationtask.KindCritique:
		return sessions.UpdateCritiqueStatus(ctx, task.SessionID, novelsession.CritiqueStatusFailed, reason)
	}
	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of tasks owned by this
// pod that were running when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, tasks *services.TaskService, sessions *services.SessionService, podID string) error {
	leftovers, err := tasks.FindRunningOnPod(ctx, podID)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(leftovers) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(leftovers))

	for _, task := range leftovers {
		reason := fmt.Sprintf("Orphaned: pod %s restarted while the task was running", podID)
		if err := tasks.Fail(ctx, task.ID, reason); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				continue
			}
			slog.Error("Failed to mark startup orphan",
				"task_id", task.ID,
				"error", err)
			continue
		}

		if err := recoverSessionState(ctx, sessions, task, reason); err != nil {
			slog.Error("Failed to recover session state for startup orphan",
				"task_id", task.ID,
				"session_id", task.SessionID,
				"error", err)
			continue
		}

		slog.Info("Startup orphan recovered", "task_id", task.ID, "session_id", task.SessionID)
	}

	return nil
}
