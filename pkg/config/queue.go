package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how generation tasks are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes tasks.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentTasks is the global limit of concurrent tasks being
	// processed across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentTasks int `yaml:"max_concurrent_tasks"`

	// PollInterval is the base interval for checking queued tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// HeartbeatInterval is how often a running task refreshes its
	// last_interaction_at timestamp. Must be well below OrphanThreshold.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// TaskTimeout is the maximum time a single task can be processed.
	// Writing tasks cover a whole book and need generous ceilings.
	TaskTimeout time.Duration `yaml:"task_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active tasks
	// to reach a safe chapter boundary during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned tasks.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a task can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentTasks:      5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       30 * time.Second,
		TaskTimeout:             45 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}
