// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/services"
)

// Service periodically enforces retention policies:
//   - Soft-deletes sessions untouched past the retention window
//   - Removes finished generation task rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config         *config.RetentionConfig
	sessionService *services.SessionService
	taskService    *services.TaskService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	sessionService *services.SessionService,
	taskService *services.TaskService,
) *Service {
	return &Service{
		config:         cfg,
		sessionService: sessionService,
		taskService:    taskService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"session_retention_days", s.config.SessionRetentionDays,
		"task_ttl", s.config.TaskTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.softDeleteOldSessions(ctx)
	s.deleteFinishedTasks(ctx)
}

func (s *Service) softDeleteOldSessions(ctx context.Context) {
	count, err := s.sessionService.SoftDeleteOldSessions(ctx, s.config.SessionRetentionDays)
	if err != nil {
		if ctx.Err() == nil {
			slog.Error("Retention: soft-delete sessions failed", "error", err)
		}
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old sessions", "count", count)
	}
}

func (s *Service) deleteFinishedTasks(ctx context.Context) {
	count, err := s.taskService.DeleteFinishedBefore(ctx, s.config.TaskTTL)
	if err != nil {
		if ctx.Err() == nil {
			slog.Error("Retention: task cleanup failed", "error", err)
		}
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted finished tasks", "count", count)
	}
}
