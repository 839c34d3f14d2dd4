// Package queue provides generation task queue management and processing
// infrastructure.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/generationtask"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no queued tasks are waiting.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrAtCapacity indicates the global concurrent task limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// TaskExecutor is the interface for task processing.
//
// The executor owns the ENTIRE run internally: it re-reads the session,
// invokes the model, and writes progress and results to the session row as
// it goes. The worker only handles claiming, heartbeat and the terminal
// task status.
type TaskExecutor interface {
	Execute(ctx context.Context, task *ent.GenerationTask) *ExecutionResult
}

// ExecutionResult is lightweight, just the terminal state. Everything the
// run produced (chapters, drafts, progress dicts) was already written to
// the session by the executor during processing.
type ExecutionResult struct {
	Status generationtask.Status // completed, failed, cancelled
	Error  error                 // error details (if failed/cancelled)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveTasks      int            `json:"active_tasks"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
