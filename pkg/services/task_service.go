package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/ent/novelsession"
	"github.com/google/uuid"
)

// TaskService manages the generation task queue. Tasks live in Postgres;
// workers on any replica claim them with a conditional update, so no broker
// is involved.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// Enqueue creates a queued task for a session. The partial unique index on
// live tasks turns a concurrent double enqueue into a constraint error,
// which comes back as ErrTaskAlreadyQueued.
func (s *TaskService) Enqueue(ctx context.Context, sessionID string, kind generationtask.Kind) (*ent.GenerationTask, error) {
	// Checked up front so a missing session is not misread as a duplicate
	// when the insert trips a constraint.
	exists, err := s.client.NovelSession.Query().
		Where(novelsession.IDEQ(sessionID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	task, err := s.client.GenerationTask.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetKind(kind).
		SetStatus(generationtask.StatusQueued).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrTaskAlreadyQueued
		}
		return nil, fmt.Errorf("failed to enqueue task: %w", err)
	}

	return task, nil
}

// ClaimNextQueued atomically claims the oldest queued task using
// FOR UPDATE SKIP LOCKED, so concurrent workers never fight over a row.
// Returns nil when the queue is empty.
func (s *TaskService) ClaimNextQueued(ctx context.Context, podID string) (*ent.GenerationTask, error) {
	// Use background context with timeout
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Oldest queued task, FIFO by created_at
	task, err := tx.GenerationTask.Query().
		Where(generationtask.StatusEQ(generationtask.StatusQueued)).
		Order(ent.Asc(generationtask.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // No queued tasks
		}
		return nil, fmt.Errorf("failed to query queued task: %w", err)
	}

	now := time.Now()
	task, err = task.Update().
		SetStatus(generationtask.StatusRunning).
		SetPodID(podID).
		SetClaimedAt(now).
		SetLastInteractionAt(now).
		AddAttempt(1).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return task, nil
}

// Heartbeat bumps the claim timestamp of a running task. A zero row count
// means the task is no longer running, which the worker treats as a
// cancellation signal.
func (s *TaskService) Heartbeat(ctx context.Context, taskID string) error {
	count, err := s.client.GenerationTask.Update().
		Where(
			generationtask.IDEQ(taskID),
			generationtask.StatusEQ(generationtask.StatusRunning),
		).
		SetLastInteractionAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat task: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}

	return nil
}

// Complete marks a running task completed
func (s *TaskService) Complete(ctx context.Context, taskID string) error {
	return s.finish(taskID, generationtask.StatusCompleted, "")
}

// Fail marks a live task failed with its error
func (s *TaskService) Fail(ctx context.Context, taskID, errMsg string) error {
	return s.finish(taskID, generationtask.StatusFailed, errMsg)
}

// finish writes a terminal status. Always on a background context: terminal
// writes happen while the worker's own context is being torn down.
func (s *TaskService) finish(taskID string, status generationtask.Status, errMsg string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.GenerationTask.Update().
		Where(
			generationtask.IDEQ(taskID),
			generationtask.StatusIn(generationtask.StatusQueued, generationtask.StatusRunning),
		).
		SetStatus(status).
		SetFinishedAt(time.Now())
	if errMsg != "" {
		update.SetError(errMsg)
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to finish task: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}

	return nil
}

// Cancel marks a live task cancelled. The running worker notices on its
// next heartbeat.
func (s *TaskService) Cancel(ctx context.Context, taskID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.GenerationTask.Update().
		Where(
			generationtask.IDEQ(taskID),
			generationtask.StatusIn(generationtask.StatusQueued, generationtask.StatusRunning),
		).
		SetStatus(generationtask.StatusCancelled).
		SetFinishedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to cancel task: %w", err)
	}
	if count == 0 {
		_, err := s.client.GenerationTask.Get(ctx, taskID)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get task: %w", err)
		}
		return ErrNotCancellable
	}

	return nil
}

// CancelBySession cancels the live task of a session, if any
func (s *TaskService) CancelBySession(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.GenerationTask.Update().
		Where(
			generationtask.SessionIDEQ(sessionID),
			generationtask.StatusIn(generationtask.StatusQueued, generationtask.StatusRunning),
		).
		SetStatus(generationtask.StatusCancelled).
		SetFinishedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to cancel task: %w", err)
	}
	if count == 0 {
		return ErrNotCancellable
	}

	return nil
}

// GetTask retrieves a task by ID
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*ent.GenerationTask, error) {
	task, err := s.client.GenerationTask.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// GetLiveTask returns the queued or running task of a session, or nil
func (s *TaskService) GetLiveTask(ctx context.Context, sessionID string) (*ent.GenerationTask, error) {
	task, err := s.client.GenerationTask.Query().
		Where(
			generationtask.SessionIDEQ(sessionID),
			generationtask.StatusIn(generationtask.StatusQueued, generationtask.StatusRunning),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query live task: %w", err)
	}
	return task, nil
}

// ListTasksForSession returns a session's task history, newest first
func (s *TaskService) ListTasksForSession(ctx context.Context, sessionID string) ([]*ent.GenerationTask, error) {
	tasks, err := s.client.GenerationTask.Query().
		Where(generationtask.SessionIDEQ(sessionID)).
		Order(ent.Desc(generationtask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CountRunning counts tasks currently running across all replicas
func (s *TaskService) CountRunning(ctx context.Context) (int, error) {
	count, err := s.client.GenerationTask.Query().
		Where(generationtask.StatusEQ(generationtask.StatusRunning)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count running tasks: %w", err)
	}
	return count, nil
}

// CountQueued reports the queue depth
func (s *TaskService) CountQueued(ctx context.Context) (int, error) {
	count, err := s.client.GenerationTask.Query().
		Where(generationtask.StatusEQ(generationtask.StatusQueued)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count queued tasks: %w", err)
	}
	return count, nil
}

// CountRunningOnPod counts tasks this replica is currently working
func (s *TaskService) CountRunningOnPod(ctx context.Context, podID string) (int, error) {
	count, err := s.client.GenerationTask.Query().
		Where(
			generationtask.StatusEQ(generationtask.StatusRunning),
			generationtask.PodIDEQ(podID),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count running tasks on pod: %w", err)
	}
	return count, nil
}

// FindRunningOnPod returns the tasks a replica held when it last stopped.
// Used by the startup orphan sweep: rows still marked running under this
// pod's ID can only be leftovers of a crash.
func (s *TaskService) FindRunningOnPod(ctx context.Context, podID string) ([]*ent.GenerationTask, error) {
	tasks, err := s.client.GenerationTask.Query().
		Where(
			generationtask.StatusEQ(generationtask.StatusRunning),
			generationtask.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find running tasks on pod: %w", err)
	}
	return tasks, nil
}

// FindOrphanedTasks finds running tasks whose heartbeat stopped past the
// threshold, typically after a worker crash or pod eviction
func (s *TaskService) FindOrphanedTasks(ctx context.Context, threshold time.Duration) ([]*ent.GenerationTask, error) {
	cutoff := time.Now().Add(-threshold)

	tasks, err := s.client.GenerationTask.Query().
		Where(
			generationtask.StatusEQ(generationtask.StatusRunning),
			generationtask.LastInteractionAtNotNil(),
			generationtask.LastInteractionAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned tasks: %w", err)
	}

	return tasks, nil
}

// DeleteFinishedBefore hard deletes terminal tasks older than the TTL
func (s *TaskService) DeleteFinishedBefore(ctx context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, fmt.Errorf("ttl must be positive, got %s", ttl)
	}

	cutoff := time.Now().Add(-ttl)

	// Use background context with timeout
	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.GenerationTask.Delete().
		Where(
			generationtask.StatusIn(
				generationtask.StatusCompleted,
				generationtask.StatusFailed,
				generationtask.StatusCancelled,
			),
			generationtask.FinishedAtNotNil(),
			generationtask.FinishedAtLT(cutoff),
		).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete finished tasks: %w", err)
	}

	return count, nil
}
