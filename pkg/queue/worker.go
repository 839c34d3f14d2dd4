package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes tasks.
type Worker struct {
	id       string
	podID    string
	tasks    *services.TaskService
	config   *config.QueueConfig
	executor TaskExecutor
	pool     SessionRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// SessionRegistry is the subset of WorkerPool used by Worker for cancel registration.
type SessionRegistry interface {
	RegisterSession(sessionID string, cancel context.CancelFunc)
	UnregisterSession(sessionID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, tasks *services.TaskService, cfg *config.QueueConfig, executor TaskExecutor, pool SessionRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		tasks:        tasks,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a task, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	runningCount, err := w.tasks.CountRunning(ctx)
	if err != nil {
		return fmt.Errorf("checking running tasks: %w", err)
	}
	if runningCount >= w.config.MaxConcurrentTasks {
		return ErrAtCapacity
	}

	// 2. Claim next task
	task, err := w.tasks.ClaimNextQueued(ctx, w.podID)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrNoTasksAvailable
	}

	log := slog.With("task_id", task.ID, "session_id", task.SessionID, "kind", task.Kind, "worker_id", w.id)
	log.Info("Task claimed")

	w.setStatus(WorkerStatusWorking, task.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create task context with timeout
	taskCtx, cancelTask := context.WithTimeout(ctx, w.config.TaskTimeout)
	defer cancelTask()

	// 4. Register cancel function under the session ID so API-triggered
	//    cancellation reaches the run on this pod immediately.
	w.pool.RegisterSession(task.SessionID, cancelTask)
	defer w.pool.UnregisterSession(task.SessionID)

	// 5. Start heartbeat. It doubles as the remote kill switch: a cancel on
	//    another replica flips the row, the heartbeat stops matching, and we
	//    tear the task context down from here.
	heartbeatCtx, cancelHeartbeat := context.WithCancel(taskCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, task.ID, cancelTask)

	// 6. Execute task
	result := w.executor.Execute(taskCtx, task)

	// 6a. Nil-guard: synthesize a safe result if executor returned nil
	if result == nil {
		switch {
		case errors.Is(taskCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status: generationtask.StatusFailed,
				Error:  fmt.Errorf("task timed out after %v", w.config.TaskTimeout),
			}
		case errors.Is(taskCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status: generationtask.StatusCancelled,
				Error:  context.Canceled,
			}
		default:
			result = &ExecutionResult{
				Status: generationtask.StatusFailed,
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}
	}

	// 7. Stop heartbeat
	cancelHeartbeat()

	// 8. Record terminal status (task ctx may be cancelled; the service
	//    writes terminal states on a background context)
	if err := w.finalizeTask(task, result); err != nil {
		log.Error("Failed to record terminal task status", "error", err)
		return err
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	log.Info("Task processing complete", "status", result.Status)
	return nil
}

// runHeartbeat periodically bumps last_interaction_at for orphan detection.
// A heartbeat that no longer matches a live row means the task was finished
// from outside, almost always a user cancel; the local run is torn down.
func (w *Worker) runHeartbeat(ctx context.Context, taskID string, cancelTask context.CancelFunc) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.tasks.Heartbeat(ctx, taskID); err != nil {
				if errors.Is(err, services.ErrNotFound) {
					slog.Info("Task no longer live, cancelling local execution", "task_id", taskID)
					cancelTask()
					return
				}
				slog.Warn("Heartbeat update failed", "task_id", taskID, "error", err)
			}
		}
	}
}

// finalizeTask writes the terminal task status.
func (w *Worker) finalizeTask(task *ent.GenerationTask, result *ExecutionResult) error {
	ctx := context.Background()

	var err error
	switch result.Status {
	case generationtask.StatusCompleted:
		err = w.tasks.Complete(ctx, task.ID)
	case generationtask.StatusCancelled:
		err = w.tasks.Cancel(ctx, task.ID)
		if errors.Is(err, services.ErrNotCancellable) {
			// Row already flipped by whoever cancelled us
			err = nil
		}
	default:
		msg := "task failed"
		if result.Error != nil {
			msg = result.Error.Error()
		}
		err = w.tasks.Fail(ctx, task.ID, msg)
	}
	if errors.Is(err, services.ErrNotFound) {
		// Row reached a terminal state from elsewhere (external cancel or
		// orphan recovery racing us). Nothing left to record.
		return nil
	}
	return err
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
