package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// SessionRetentionDays is how many days to keep completed sessions
	// before soft-deleting them (setting deleted_at).
	SessionRetentionDays int `yaml:"session_retention_days"`

	// TaskTTL is the maximum age of finished generation task rows before
	// deletion. Keeps the queue table small; finished tasks carry no state
	// the session does not already hold.
	TaskTTL time.Duration `yaml:"task_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		SessionRetentionDays: 365,
		TaskTTL:              72 * time.Hour,
		CleanupInterval:      12 * time.Hour,
	}
}
