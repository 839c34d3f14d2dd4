package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/fabula-ai/fabula/pkg/services"
	testdb "github.com/fabula-ai/fabula/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createQueueSession creates a novel session for queue tests.
func createQueueSession(ctx context.Context, t *testing.T, client *ent.Client) *ent.NovelSession {
	t.Helper()
	session, err := client.NovelSession.Create().
		SetID(uuid.New().String()).
		SetLlmModel("gemini-2.5-flash").
		SetFormData(map[string]any{"plot": "a cartographer maps a vanishing coastline", "genre": "mystery"}).
		SetGenre("mystery").
		Save(ctx)
	require.NoError(t, err)
	return session
}

// enqueueTask queues a task for the session through the service, the same
// path the API uses.
func enqueueTask(ctx context.Context, t *testing.T, tasks *services.TaskService, sessionID string, kind generationtask.Kind) *ent.GenerationTask {
	t.Helper()
	task, err := tasks.Enqueue(ctx, sessionID, kind)
	require.NoError(t, err)
	return task
}

// createRunningTask inserts a running task row directly, simulating a claim
// by the given pod. Used by the orphan tests, which need control over the
// heartbeat timestamp.
func createRunningTask(ctx context.Context, t *testing.T, client *ent.Client, sessionID string, kind generationtask.Kind, podID string, beat time.Time) *ent.GenerationTask {
	t.Helper()
	task, err := client.GenerationTask.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetKind(kind).
		SetStatus(generationtask.StatusRunning).
		SetPodID(podID).
		SetClaimedAt(beat).
		SetLastInteractionAt(beat).
		Save(ctx)
	require.NoError(t, err)
	return task
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentTasks:      10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		TaskTimeout:             30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: 1 * time.Second,
		OrphanThreshold:         2 * time.Second,
		HeartbeatInterval:       30 * time.Second,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// TestOrphanRecovery tests that running tasks with stale heartbeats are
// failed and their sessions put back into a state the user can act on.
func TestOrphanRecovery(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	taskSvc := services.NewTaskService(client)
	sessionSvc := services.NewSessionService(client)

	// Two tasks simulate a crash (running with an old heartbeat): a book in
	// mid-write and a draft generation.
	staleBeat := time.Now().Add(-10 * time.Minute) // Way past orphan threshold
	writingSession := createQueueSession(ctx, t, client)
	writingTask := createRunningTask(ctx, t, client, writingSession.ID, generationtask.KindWriting, "crashed-pod", staleBeat)
	draftSession := createQueueSession(ctx, t, client)
	draftTask := createRunningTask(ctx, t, client, draftSession.ID, generationtask.KindDraft, "crashed-pod", staleBeat)

	// Run orphan detection
	cfg := intTestQueueConfig()
	cfg.OrphanThreshold = 1 * time.Second // Very short for test

	pool := &WorkerPool{
		podID:    "test-pod",
		tasks:    taskSvc,
		sessions: sessionSvc,
		config:   cfg,
	}

	err := pool.detectAndRecoverOrphans(ctx)
	require.NoError(t, err)

	// Both tasks are now failed with the orphan reason
	for _, id := range []string{writingTask.ID, draftTask.ID} {
		updated, err := client.GenerationTask.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, generationtask.StatusFailed, updated.Status)
		require.NotNil(t, updated.Error)
		assert.Contains(t, *updated.Error, "Orphaned")
		assert.Contains(t, *updated.Error, "crashed-pod")
	}

	// The interrupted book is paused so the user can resume
	ws, err := client.NovelSession.Get(ctx, writingSession.ID)
	require.NoError(t, err)
	assert.True(t, ws.WritingProgress.IsPaused)
	assert.Contains(t, ws.WritingProgress.Error, "Orphaned")

	// The draft run surfaces as failed and can be rerun
	ds, err := client.NovelSession.Get(ctx, draftSession.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProgressFailed, ds.DraftProgress.Status)
	assert.Contains(t, ds.DraftProgress.Error, "Orphaned")

	// Verify orphan metrics tracked
	pool.orphans.mu.Lock()
	assert.Equal(t, 2, pool.orphans.orphansRecovered)
	pool.orphans.mu.Unlock()
}

// TestStartupOrphanCleanup tests the one-time startup orphan cleanup.
func TestStartupOrphanCleanup(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	taskSvc := services.NewTaskService(client)
	sessionSvc := services.NewSessionService(client)

	podID := "startup-test-pod"

	// Create tasks that belong to this pod
	beat := time.Now()
	ownIDs := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		session := createQueueSession(ctx, t, client)
		task := createRunningTask(ctx, t, client, session.ID, generationtask.KindWriting, podID, beat)
		ownIDs = append(ownIDs, task.ID)
	}

	// Also create a task on a different pod (should not be affected)
	otherSession := createQueueSession(ctx, t, client)
	otherTask := createRunningTask(ctx, t, client, otherSession.ID, generationtask.KindWriting, "other-pod", beat)

	// Run startup cleanup
	err := CleanupStartupOrphans(ctx, taskSvc, sessionSvc, podID)
	require.NoError(t, err)

	// This pod's tasks are failed and their sessions paused
	for _, id := range ownIDs {
		task, err := client.GenerationTask.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, generationtask.StatusFailed, task.Status, "task %s should be failed", id)
		require.NotNil(t, task.Error)
		assert.Contains(t, *task.Error, "restarted")

		session, err := client.NovelSession.Get(ctx, task.SessionID)
		require.NoError(t, err)
		assert.True(t, session.WritingProgress.IsPaused, "session %s should be paused", session.ID)
	}

	// Verify the other pod's task is untouched
	other, err := client.GenerationTask.Get(ctx, otherTask.ID)
	require.NoError(t, err)
	assert.Equal(t, generationtask.StatusRunning, other.Status, "other pod's task should be untouched")
}

// mockExecutor counts executions and tracks which sessions were processed.
type mockExecutor struct {
	processed  atomic.Int64
	sessions   sync.Map // string → struct{}
	inProgress atomic.Int64
	releaseCh  chan struct{} // optional: blocks execution until closed
}

func (m *mockExecutor) Execute(ctx context.Context, task *ent.GenerationTask) *ExecutionResult {
	m.processed.Add(1)
	if task != nil {
		m.sessions.Store(task.SessionID, struct{}{})
	}

	// Track in-progress tasks
	m.inProgress.Add(1)
	defer m.inProgress.Add(-1)

	// If releaseCh is set, block until it's closed (for deterministic tests)
	if m.releaseCh != nil {
		select {
		case <-m.releaseCh:
			// Released, continue
		case <-ctx.Done():
			return &ExecutionResult{
				Status: generationtask.StatusCancelled,
				Error:  ctx.Err(),
			}
		}
	} else {
		// Default behavior: simulate short processing
		select {
		case <-time.After(50 * time.Millisecond):
		case <-ctx.Done():
			return &ExecutionResult{
				Status: generationtask.StatusCancelled,
				Error:  ctx.Err(),
			}
		}
	}

	return &ExecutionResult{Status: generationtask.StatusCompleted}
}

// TestPoolEndToEndWithMockExecutor tests the full worker pool lifecycle.
func TestPoolEndToEndWithMockExecutor(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	taskSvc := services.NewTaskService(client)
	sessionSvc := services.NewSessionService(client)

	// Create queued tasks
	wantSessions := make(map[string]struct{})
	for i := 0; i < 3; i++ {
		session := createQueueSession(ctx, t, client)
		enqueueTask(ctx, t, taskSvc, session.ID, generationtask.KindDraft)
		wantSessions[session.ID] = struct{}{}
	}

	// Create pool with mock executor
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond

	executor := &mockExecutor{}
	pool := NewWorkerPool("test-pod", taskSvc, sessionSvc, cfg, executor)

	err := pool.Start(ctx)
	require.NoError(t, err)

	// Wait for tasks to be processed
	awaitCondition(t, 10*time.Second, 100*time.Millisecond,
		fmt.Sprintf("waiting for tasks to be processed, processed: %d", executor.processed.Load()),
		func() bool { return executor.processed.Load() >= 3 })

	// Stop the pool gracefully
	pool.Stop()

	// All tasks should be completed
	completed, err := client.GenerationTask.Query().
		Where(generationtask.StatusEQ(generationtask.StatusCompleted)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, completed, 3, "all 3 tasks should be completed")

	// Every session passed through the executor
	for id := range wantSessions {
		_, ok := executor.sessions.Load(id)
		assert.True(t, ok, "session %s was never executed", id)
	}

	// Health should show all workers
	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
}

// TestCapacityLimits tests that the global max concurrent limit is enforced.
func TestCapacityLimits(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	taskSvc := services.NewTaskService(client)
	sessionSvc := services.NewSessionService(client)

	// Create multiple queued tasks
	for i := 0; i < 5; i++ {
		session := createQueueSession(ctx, t, client)
		enqueueTask(ctx, t, taskSvc, session.ID, generationtask.KindWriting)
	}

	// Configure pool: use 2 workers matching MaxConcurrentTasks to avoid races
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2        // Match MaxConcurrentTasks to avoid startup races
	cfg.MaxConcurrentTasks = 2 // Global limit
	cfg.PollInterval = 50 * time.Millisecond
	cfg.OrphanDetectionInterval = 1 * time.Hour // Disable orphan detection during test

	// Mock executor with release channel for deterministic control
	releaseCh := make(chan struct{})
	executor := &mockExecutor{
		releaseCh: releaseCh,
	}
	pool := NewWorkerPool("test-pod", taskSvc, sessionSvc, cfg, executor)

	err := pool.Start(ctx)
	require.NoError(t, err)

	// Wait until exactly MaxConcurrentTasks tasks are in progress
	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		fmt.Sprintf("waiting for %d tasks in progress, got: %d", cfg.MaxConcurrentTasks, executor.inProgress.Load()),
		func() bool { return executor.inProgress.Load() == int64(cfg.MaxConcurrentTasks) })

	// Give the system a moment to stabilize
	time.Sleep(100 * time.Millisecond)

	// Verify exactly MaxConcurrentTasks are in progress (no races with 2 workers)
	assert.Equal(t, int64(cfg.MaxConcurrentTasks), executor.inProgress.Load(),
		"should have exactly MaxConcurrentTasks in progress")

	// Verify the database also shows MaxConcurrentTasks running
	dbRunning, err := client.GenerationTask.Query().
		Where(generationtask.StatusEQ(generationtask.StatusRunning)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxConcurrentTasks, dbRunning, "DB should show MaxConcurrentTasks running")

	// Release executions to complete
	close(releaseCh)

	// Wait for first batch to complete
	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		fmt.Sprintf("waiting for first batch to complete, in progress: %d", executor.inProgress.Load()),
		func() bool { return executor.inProgress.Load() == 0 })

	// Workers should now claim remaining tasks (3 more)
	// Wait for all 5 tasks to be processed
	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		fmt.Sprintf("waiting for all tasks to be processed, processed: %d", executor.processed.Load()),
		func() bool { return executor.processed.Load() >= 5 })

	// Stop the pool
	pool.Stop()

	// Verify all 5 tasks completed
	completedCount, err := client.GenerationTask.Query().
		Where(generationtask.StatusEQ(generationtask.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, completedCount, "all 5 tasks should complete")
}

// TestHeartbeatUpdates tests that heartbeats update last_interaction_at.
func TestHeartbeatUpdates(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	taskSvc := services.NewTaskService(client)
	sessionSvc := services.NewSessionService(client)

	// Create a queued task
	session := createQueueSession(ctx, t, client)
	task := enqueueTask(ctx, t, taskSvc, session.ID, generationtask.KindWriting)

	// Configure pool with short heartbeat interval and blocking executor
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.HeartbeatInterval = 100 * time.Millisecond // Short interval for testing

	// Mock executor that blocks until released (to keep the task running)
	releaseCh := make(chan struct{})
	executor := &mockExecutor{
		releaseCh: releaseCh,
	}
	pool := NewWorkerPool("test-pod", taskSvc, sessionSvc, cfg, executor)

	err := pool.Start(ctx)
	require.NoError(t, err)

	// Wait for the task to be claimed
	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for task to be claimed",
		func() bool {
			tk, err := client.GenerationTask.Get(ctx, task.ID)
			require.NoError(t, err)
			return tk.Status == generationtask.StatusRunning && tk.LastInteractionAt != nil
		})

	// Get initial last_interaction_at
	t1, err := client.GenerationTask.Get(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, generationtask.StatusRunning, t1.Status)
	require.NotNil(t, t1.LastInteractionAt)
	initialTime := *t1.LastInteractionAt

	// Wait for at least one heartbeat to occur (heartbeat interval is 100ms)
	time.Sleep(250 * time.Millisecond)

	// Get updated last_interaction_at
	t2, err := client.GenerationTask.Get(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, generationtask.StatusRunning, t2.Status, "task should still be running")
	require.NotNil(t, t2.LastInteractionAt)

	// Verify heartbeat actually updated the timestamp
	assert.True(t, t2.LastInteractionAt.After(initialTime), "last_interaction_at should be updated by heartbeat")

	// Release executor and stop pool
	close(releaseCh)
	pool.Stop()
}

// TestExternalCancelStopsRun tests that flipping the row from outside (a
// cancel handled by another replica) tears down the local run through the
// heartbeat.
func TestExternalCancelStopsRun(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	taskSvc := services.NewTaskService(client)
	sessionSvc := services.NewSessionService(client)

	session := createQueueSession(ctx, t, client)
	task := enqueueTask(ctx, t, taskSvc, session.ID, generationtask.KindWriting)

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.HeartbeatInterval = 100 * time.Millisecond

	// Executor blocks until its context is torn down; releaseCh stays open.
	executor := &mockExecutor{
		releaseCh: make(chan struct{}),
	}
	pool := NewWorkerPool("test-pod", taskSvc, sessionSvc, cfg, executor)

	require.NoError(t, pool.Start(ctx))

	// Wait for the task to be claimed
	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for task to be claimed",
		func() bool {
			tk, err := client.GenerationTask.Get(ctx, task.ID)
			require.NoError(t, err)
			return tk.Status == generationtask.StatusRunning
		})

	// Flip the row the way the cancel endpoint on another replica would
	require.NoError(t, taskSvc.CancelBySession(ctx, session.ID))

	// The next heartbeat misses the row and cancels the local execution
	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		fmt.Sprintf("waiting for local execution to stop, in progress: %d", executor.inProgress.Load()),
		func() bool { return executor.inProgress.Load() == 0 })

	pool.Stop()

	// The row keeps the externally written status
	updated, err := client.GenerationTask.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, generationtask.StatusCancelled, updated.Status)
	require.NotNil(t, updated.FinishedAt)
	assert.Equal(t, int64(1), executor.processed.Load())
}

// nilExecutor returns a nil *ExecutionResult for testing the nil-guard.
type nilExecutor struct {
	blockUntilCtxDone bool
	processed         atomic.Int64
}

func (e *nilExecutor) Execute(ctx context.Context, _ *ent.GenerationTask) *ExecutionResult {
	e.processed.Add(1)
	if e.blockUntilCtxDone {
		<-ctx.Done()
	}
	return nil
}

// TestNilExecutionResultGuard tests that a nil *ExecutionResult from
// TaskExecutor.Execute does not panic and is translated into the correct
// terminal status.
func TestNilExecutionResultGuard(t *testing.T) {
	t.Run("nil result without context error marks task failed", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		taskSvc := services.NewTaskService(client)
		sessionSvc := services.NewSessionService(client)

		session := createQueueSession(ctx, t, client)
		task := enqueueTask(ctx, t, taskSvc, session.ID, generationtask.KindDraft)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: false}
		pool := NewWorkerPool("test-pod", taskSvc, sessionSvc, cfg, executor)

		require.NoError(t, pool.Start(ctx))

		// Wait for processing
		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for task to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		pool.Stop()

		updated, err := client.GenerationTask.Get(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, generationtask.StatusFailed, updated.Status)
		require.NotNil(t, updated.Error)
		assert.Contains(t, *updated.Error, "executor returned nil result")
	})

	t.Run("nil result past the deadline marks task failed with timeout reason", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		taskSvc := services.NewTaskService(client)
		sessionSvc := services.NewSessionService(client)

		session := createQueueSession(ctx, t, client)
		task := enqueueTask(ctx, t, taskSvc, session.ID, generationtask.KindDraft)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.TaskTimeout = 200 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", taskSvc, sessionSvc, cfg, executor)

		require.NoError(t, pool.Start(ctx))

		// Wait for processing (must exceed the 200ms timeout)
		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for task to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		// Give the worker time to persist the terminal status
		time.Sleep(100 * time.Millisecond)
		pool.Stop()

		updated, err := client.GenerationTask.Get(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, generationtask.StatusFailed, updated.Status)
		require.NotNil(t, updated.Error)
		assert.Contains(t, *updated.Error, "timed out")
		assert.Contains(t, *updated.Error, "200ms")
	})

	t.Run("nil result with cancellation marks task cancelled", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		taskSvc := services.NewTaskService(client)
		sessionSvc := services.NewSessionService(client)

		session := createQueueSession(ctx, t, client)
		task := enqueueTask(ctx, t, taskSvc, session.ID, generationtask.KindDraft)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.TaskTimeout = 30 * time.Second // Long timeout so cancellation wins

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", taskSvc, sessionSvc, cfg, executor)

		require.NoError(t, pool.Start(ctx))

		// Wait for the task to be claimed
		awaitCondition(t, 5*time.Second, 10*time.Millisecond,
			"waiting for task to be claimed",
			func() bool {
				tk, err := client.GenerationTask.Get(ctx, task.ID)
				require.NoError(t, err)
				return tk.Status == generationtask.StatusRunning
			})

		// Cancel through the pool (simulates API-triggered cancellation on this pod)
		cancelled := pool.CancelSession(session.ID)
		require.True(t, cancelled, "CancelSession should find the active task")

		// Wait for the executor to finish and status to be persisted
		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for task to reach terminal status",
			func() bool {
				tk, err := client.GenerationTask.Get(ctx, task.ID)
				require.NoError(t, err)
				return tk.Status == generationtask.StatusCancelled
			})

		pool.Stop()

		updated, err := client.GenerationTask.Get(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, generationtask.StatusCancelled, updated.Status)
	})
}
