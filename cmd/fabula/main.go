// Fabula server — provides the HTTP API, manages queue workers, and runs
// the book-writing pipeline.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fabula-ai/fabula/pkg/agent"
	"github.com/fabula-ai/fabula/pkg/api"
	"github.com/fabula-ai/fabula/pkg/blob"
	"github.com/fabula-ai/fabula/pkg/cleanup"
	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/database"
	"github.com/fabula-ai/fabula/pkg/library"
	"github.com/fabula-ai/fabula/pkg/llm"
	"github.com/fabula-ai/fabula/pkg/notify"
	"github.com/fabula-ai/fabula/pkg/progress"
	"github.com/fabula-ai/fabula/pkg/queue"
	"github.com/fabula-ai/fabula/pkg/sanitize"
	"github.com/fabula-ai/fabula/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	slog.Info("Starting fabula", "pod_id", podID, "config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	sessionService := services.NewSessionService(dbClient.Client)
	taskService := services.NewTaskService(dbClient.Client)
	userService := services.NewUserService(dbClient.Client, cfg.Credits.WeeklyQuota)
	creditService := services.NewCreditService(dbClient.Client, cfg.Credits.WeeklyQuota)
	generationService := services.NewGenerationService(sessionService, taskService, creditService)
	shareService := services.NewShareService(dbClient.Client)
	notificationService := services.NewNotificationService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, taskService, sessionService, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — the periodic orphan scan will catch stragglers
	}

	// 5. LLM gateway, shared by the agent runner and cover generation
	gateway, err := llm.NewGateway(ctx, llm.Options{
		GoogleAPIKey: os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		Models:       cfg.Models,
	})
	if err != nil {
		slog.Error("Failed to initialize LLM gateway", "error", err)
		os.Exit(1)
	}
	runner := agent.NewRunner(gateway, cfg)
	slog.Info("LLM gateway initialized")

	// 6. Artifact store and notification sinks
	store, err := blob.New(ctx, cfg.Blob)
	if err != nil {
		slog.Error("Failed to initialize blob store", "base_uri", cfg.Blob.BaseURI, "error", err)
		os.Exit(1)
	}
	notifier := notify.NewService(notificationService, cfg.SMTP)

	// 7. Task executor and worker pool (before the HTTP server)
	costs := progress.NewCostCalculator(cfg.Cost)
	executor := queue.NewExecutor(
		sessionService,
		userService,
		runner,
		gateway,
		costs,
		store,
		notifier,
		sanitize.New(cfg.Sanitizer),
		cfg,
	)
	workerPool := queue.NewWorkerPool(podID, taskService, sessionService, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Retention sweep
	retention := cleanup.NewService(cfg.Retention, sessionService, taskService)
	retention.Start(ctx)

	// 9. HTTP server (non-blocking)
	projector := library.NewProjector(dbClient.Client, sessionService, cfg.Models, costs)
	httpServer := api.NewServer(api.Deps{
		Config:        cfg,
		DB:            dbClient,
		Users:         userService,
		Credits:       creditService,
		Sessions:      sessionService,
		Generation:    generationService,
		Shares:        shareService,
		Notifications: notificationService,
		Library:       projector,
		Pool:          workerPool,
		Store:         store,
		Notifier:      notifier,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Fabula started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: workers first — they hold running generations
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — running tasks will be orphan-recovered")
	}

	retention.Stop()

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
