package config

import (
	"fmt"
	"net/url"
	"regexp"
	"text/template"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: models first, then everything that references them
	if err := v.validateModels(); err != nil {
		return fmt.Errorf("models validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateCredits(); err != nil {
		return fmt.Errorf("credits validation failed: %w", err)
	}

	if err := v.validateCost(); err != nil {
		return fmt.Errorf("cost validation failed: %w", err)
	}

	if err := v.validateValidation(); err != nil {
		return fmt.Errorf("validation settings failed: %w", err)
	}

	if err := v.validateTimeEstimation(); err != nil {
		return fmt.Errorf("time estimation validation failed: %w", err)
	}

	if err := v.validateCover(); err != nil {
		return fmt.Errorf("cover generation validation failed: %w", err)
	}

	if err := v.validateCritic(); err != nil {
		return fmt.Errorf("literary critic validation failed: %w", err)
	}

	if err := v.validateBlob(); err != nil {
		return fmt.Errorf("blob storage validation failed: %w", err)
	}

	if err := v.validatePrompts(); err != nil {
		return fmt.Errorf("prompts validation failed: %w", err)
	}

	if err := v.validateSanitizer(); err != nil {
		return fmt.Errorf("sanitizer validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateModels() error {
	m := v.cfg.Models

	for alias, target := range m.Aliases {
		if target == "" {
			return NewValidationError("models", alias, "aliases", fmt.Errorf("alias target must not be empty"))
		}
	}

	for model, fallback := range m.Fallbacks {
		if fallback == "" {
			return NewValidationError("models", model, "fallbacks", fmt.Errorf("fallback model must not be empty"))
		}
		if fallback == model {
			return NewValidationError("models", model, "fallbacks", fmt.Errorf("model cannot fall back to itself"))
		}
	}

	for model, abbr := range m.Abbreviations {
		if abbr == "" {
			return NewValidationError("models", model, "abbreviations", fmt.Errorf("abbreviation must not be empty"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue

	if q == nil {
		return fmt.Errorf("queue configuration is nil")
	}

	if q.WorkerCount < 1 || q.WorkerCount > 50 {
		return fmt.Errorf("worker_count must be between 1 and 50, got %d", q.WorkerCount)
	}

	if q.MaxConcurrentTasks < 1 {
		return fmt.Errorf("max_concurrent_tasks must be at least 1, got %d", q.MaxConcurrentTasks)
	}

	if q.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %s", q.PollInterval)
	}

	if q.PollIntervalJitter < 0 {
		return fmt.Errorf("poll_interval_jitter must be non-negative, got %s", q.PollIntervalJitter)
	}

	if q.PollIntervalJitter >= q.PollInterval {
		return fmt.Errorf("poll_interval_jitter must be less than poll_interval (%s), got %s", q.PollInterval, q.PollIntervalJitter)
	}

	if q.TaskTimeout <= 0 {
		return fmt.Errorf("task_timeout must be positive, got %s", q.TaskTimeout)
	}

	if q.GracefulShutdownTimeout <= 0 {
		return fmt.Errorf("graceful_shutdown_timeout must be positive, got %s", q.GracefulShutdownTimeout)
	}

	if q.OrphanDetectionInterval <= 0 {
		return fmt.Errorf("orphan_detection_interval must be positive, got %s", q.OrphanDetectionInterval)
	}

	if q.OrphanThreshold <= 0 {
		return fmt.Errorf("orphan_threshold must be positive, got %s", q.OrphanThreshold)
	}

	if q.HeartbeatInterval <= 0 {
		return fmt.Errorf("heartbeat_interval must be positive, got %s", q.HeartbeatInterval)
	}

	// A heartbeat slower than the orphan threshold makes every running
	// task look orphaned.
	if q.HeartbeatInterval >= q.OrphanThreshold {
		return fmt.Errorf("heartbeat_interval must be less than orphan_threshold (%s), got %s", q.OrphanThreshold, q.HeartbeatInterval)
	}

	return nil
}

func (v *ConfigValidator) validateCredits() error {
	c := v.cfg.Credits

	if c.WeeklyQuota.Flash < 0 {
		return NewValidationError("credits", "weekly_quota", "flash", fmt.Errorf("must not be negative"))
	}
	if c.WeeklyQuota.Pro < 0 {
		return NewValidationError("credits", "weekly_quota", "pro", fmt.Errorf("must not be negative"))
	}
	if c.WeeklyQuota.Ultra < 0 {
		return NewValidationError("credits", "weekly_quota", "ultra", fmt.Errorf("must not be negative"))
	}

	return nil
}

func (v *ConfigValidator) validateCost() error {
	c := v.cfg.Cost

	if c.TokensPerPage <= 0 {
		return NewValidationError("cost", "cost_estimation", "tokens_per_page", fmt.Errorf("must be positive"))
	}

	if c.ExchangeRateUSDToEUR <= 0 {
		return NewValidationError("cost", "cost_estimation", "exchange_rate_usd_to_eur", fmt.Errorf("must be positive"))
	}

	for model, mc := range c.ModelCosts {
		if mc.In < 0 || mc.Out < 0 {
			return NewValidationError("cost", model, "model_costs", fmt.Errorf("token costs must not be negative"))
		}
	}

	for phase, tokens := range c.TokenEstimates {
		if tokens < 0 {
			return NewValidationError("cost", phase, "token_estimates", fmt.Errorf("must not be negative"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateValidation() error {
	val := v.cfg.Validation

	if val.WordsPerPage <= 0 {
		return NewValidationError("validation", "validation", "words_per_page", fmt.Errorf("must be positive"))
	}

	if val.TOCChaptersPerPage <= 0 {
		return NewValidationError("validation", "validation", "toc_chapters_per_page", fmt.Errorf("must be positive"))
	}

	if val.MinChapterLength < 0 {
		return NewValidationError("validation", "validation", "min_chapter_length", fmt.Errorf("must not be negative"))
	}

	return nil
}

func (v *ConfigValidator) validateTimeEstimation() error {
	te := v.cfg.TimeEstimation

	if te.FallbackSecondsPerChapter <= 0 {
		return NewValidationError("time_estimation", "time_estimation", "fallback_seconds_per_chapter", fmt.Errorf("must be positive"))
	}

	if te.MinChaptersForReliableAvg < 1 {
		return NewValidationError("time_estimation", "time_estimation", "min_chapters_for_reliable_avg", fmt.Errorf("must be at least 1"))
	}

	for method, params := range te.LinearParamsByMethod {
		if params.A < 0 || params.B < 0 {
			return NewValidationError("time_estimation", method, "linear_params", fmt.Errorf("coefficients must not be negative"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateCover() error {
	c := v.cfg.Cover

	if c.PrimaryModel == "" {
		return NewValidationError("cover", "cover_generation", "primary_model", fmt.Errorf("must not be empty"))
	}

	return nil
}

func (v *ConfigValidator) validateCritic() error {
	c := v.cfg.Critic

	if c.DefaultModel == "" {
		return NewValidationError("critic", "literary_critic", "default_model", fmt.Errorf("must not be empty"))
	}

	if c.SystemPrompt == "" {
		return NewValidationError("critic", "literary_critic", "system_prompt", fmt.Errorf("must not be empty"))
	}

	if c.UserPrompt == "" {
		return NewValidationError("critic", "literary_critic", "user_prompt", fmt.Errorf("must not be empty"))
	}

	if c.MaxRetries < 0 {
		return NewValidationError("critic", "literary_critic", "max_retries", fmt.Errorf("must not be negative"))
	}

	return nil
}

func (v *ConfigValidator) validateBlob() error {
	b := v.cfg.Blob

	if b.BaseURI == "" {
		return NewValidationError("blob", "blob", "base_uri", fmt.Errorf("must not be empty"))
	}

	u, err := url.Parse(b.BaseURI)
	if err != nil {
		return NewValidationError("blob", "blob", "base_uri", fmt.Errorf("invalid URI: %w", err))
	}

	switch u.Scheme {
	case "file", "gs":
		// supported
	default:
		return NewValidationError("blob", "blob", "base_uri", fmt.Errorf("unsupported scheme '%s' (expected file:// or gs://)", u.Scheme))
	}

	return nil
}

func (v *ConfigValidator) validatePrompts() error {
	pairs := map[string]PromptPair{
		"questions": v.cfg.Prompts.Questions,
		"draft":     v.cfg.Prompts.Draft,
		"outline":   v.cfg.Prompts.Outline,
		"chapter":   v.cfg.Prompts.Chapter,
		"cover":     v.cfg.Prompts.Cover,
	}

	for name, pair := range pairs {
		if pair.User == "" {
			return NewValidationError("prompts", name, "user", fmt.Errorf("must not be empty"))
		}

		if _, err := template.New(name + ".system").Parse(pair.System); err != nil {
			return NewValidationError("prompts", name, "system", fmt.Errorf("template parse: %w", err))
		}
		if _, err := template.New(name + ".user").Parse(pair.User); err != nil {
			return NewValidationError("prompts", name, "user", fmt.Errorf("template parse: %w", err))
		}
	}

	return nil
}

func (v *ConfigValidator) validateSanitizer() error {
	s := v.cfg.Sanitizer

	if s.MaxPromptChars <= 0 {
		return NewValidationError("sanitizer", "sanitizer", "max_prompt_chars", fmt.Errorf("must be positive"))
	}

	for _, p := range s.Patterns {
		if p.Name == "" {
			return NewValidationError("sanitizer", "pattern", "name", fmt.Errorf("must not be empty"))
		}
		if _, err := regexp.Compile(p.Pattern); err != nil {
			return NewValidationError("sanitizer", p.Name, "pattern", fmt.Errorf("invalid regex: %w", err))
		}
	}

	return nil
}
