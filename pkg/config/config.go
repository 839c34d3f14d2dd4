// Package config loads, merges, and validates the fabula.yaml configuration.
package config

// Config is the fully resolved runtime configuration. It is immutable after
// Initialize; components receive the sub-configs they need.
type Config struct {
	configDir string

	Server         *ServerConfig
	Queue          *QueueConfig
	Timeouts       *TimeoutsConfig
	Retry          *RetryConfig
	Validation     *ValidationConfig
	TimeEstimation *TimeEstimationConfig
	Cover          *CoverConfig
	Cost           *CostConfig
	Temperature    *TemperatureConfig
	Critic         *CriticConfig
	Models         *ModelsConfig
	Credits        *CreditsConfig
	Blob           *BlobConfig
	SMTP           *SMTPConfig
	Retention      *RetentionConfig
	Prompts        *PromptsConfig
	Sanitizer      *SanitizerConfig
}

// ConfigDir returns the directory the configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}
