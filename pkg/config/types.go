package config

import (
	"fmt"
	"time"
)

// Shared types used across configuration structs

// ServerConfig groups HTTP server settings.
type ServerConfig struct {
	HTTPPort     string `yaml:"http_port,omitempty"`
	DashboardURL string `yaml:"dashboard_url,omitempty"`
}

// TimeoutsConfig sets per-phase LLM call deadlines in milliseconds.
type TimeoutsConfig struct {
	QuestionsMS int `yaml:"questions_ms"`
	DraftMS     int `yaml:"draft_ms"`
	OutlineMS   int `yaml:"outline_ms"`
	ChapterMS   int `yaml:"chapter_ms"`
	CoverMS     int `yaml:"cover_ms"`
	CritiqueMS  int `yaml:"critique_ms"`
}

// Questions returns the questions-phase deadline.
func (t *TimeoutsConfig) Questions() time.Duration { return msDuration(t.QuestionsMS) }

// Draft returns the draft-phase deadline.
func (t *TimeoutsConfig) Draft() time.Duration { return msDuration(t.DraftMS) }

// Outline returns the outline-phase deadline.
func (t *TimeoutsConfig) Outline() time.Duration { return msDuration(t.OutlineMS) }

// Chapter returns the per-chapter deadline.
func (t *TimeoutsConfig) Chapter() time.Duration { return msDuration(t.ChapterMS) }

// Cover returns the cover-generation deadline.
func (t *TimeoutsConfig) Cover() time.Duration { return msDuration(t.CoverMS) }

// Critique returns the critique deadline.
func (t *TimeoutsConfig) Critique() time.Duration { return msDuration(t.CritiqueMS) }

func msDuration(ms int) time.Duration {
	if ms <= 0 {
		return 2 * time.Minute
	}
	return time.Duration(ms) * time.Millisecond
}

// RetryPolicy controls retries for one generation phase.
type RetryPolicy struct {
	MaxRetries int `yaml:"max_retries"`

	// MinChapterLength applies to chapter_generation only: chapters shorter
	// than this many words count as failed attempts.
	MinChapterLength int `yaml:"min_chapter_length,omitempty"`
}

// RetryConfig groups per-phase retry policies.
type RetryConfig struct {
	Questions         RetryPolicy `yaml:"questions"`
	Draft             RetryPolicy `yaml:"draft"`
	Outline           RetryPolicy `yaml:"outline"`
	ChapterGeneration RetryPolicy `yaml:"chapter_generation"`
}

// ValidationConfig holds book-shape constants.
type ValidationConfig struct {
	WordsPerPage       int `yaml:"words_per_page"`
	TOCChaptersPerPage int `yaml:"toc_chapters_per_page"`
	MinChapterLength   int `yaml:"min_chapter_length"`
}

// LinearParams are the coefficients of the residual-time model
// a*(remaining) + b*(done+1).
type LinearParams struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
}

// TimeEstimationConfig controls residual writing-time prediction.
type TimeEstimationConfig struct {
	LinearParamsByMethod      map[string]LinearParams `yaml:"linear_params_by_method"`
	FallbackSecondsPerChapter float64                 `yaml:"fallback_seconds_per_chapter"`
	MinChaptersForReliableAvg int                     `yaml:"min_chapters_for_reliable_avg"`
	UseSessionAvgIfAvailable  bool                    `yaml:"use_session_avg_if_available"`
}

// CoverConfig controls cover image generation.
type CoverConfig struct {
	AspectRatio   string `yaml:"aspect_ratio"`
	PrimaryModel  string `yaml:"primary_model"`
	FallbackModel string `yaml:"fallback_model"`
	ImageSize     string `yaml:"image_size,omitempty"`
}

// ModelCost is the USD price per million tokens.
type ModelCost struct {
	In  float64 `yaml:"in"`
	Out float64 `yaml:"out"`
}

// CostConfig controls cost accounting.
type CostConfig struct {
	TokensPerPage        int                  `yaml:"tokens_per_page"`
	ModelCosts           map[string]ModelCost `yaml:"model_costs"`
	ExchangeRateUSDToEUR float64              `yaml:"exchange_rate_usd_to_eur"`

	// TokenEstimates supplies per-phase token guesses, split into _in/_out
	// keys, for pricing books whose real usage was never recorded.
	TokenEstimates map[string]int `yaml:"token_estimates,omitempty"`
}

// TemperatureConfig overrides sampling temperature per agent. Absent agents
// fall back to the model-class default.
type TemperatureConfig struct {
	Agents map[string]float64 `yaml:"agents"`
}

// For returns the configured override for an agent, or nil.
func (t *TemperatureConfig) For(agent string) *float64 {
	if t == nil || t.Agents == nil {
		return nil
	}
	if v, ok := t.Agents[agent]; ok {
		return &v
	}
	return nil
}

// CriticConfig controls the literary critique of finished books.
type CriticConfig struct {
	DefaultModel     string   `yaml:"default_model"`
	FallbackModel    string   `yaml:"fallback_model"`
	Temperature      *float64 `yaml:"temperature,omitempty"`
	MaxRetries       int      `yaml:"max_retries"`
	ResponseMIMEType string   `yaml:"response_mime_type"`
	SystemPrompt     string   `yaml:"system_prompt"`
	UserPrompt       string   `yaml:"user_prompt"`
}

// ModelsConfig maps tier aliases to concrete model IDs, models to their
// same-family fallbacks, and models to filename abbreviations.
type ModelsConfig struct {
	Aliases       map[string]string `yaml:"aliases"`
	Fallbacks     map[string]string `yaml:"fallbacks"`
	Abbreviations map[string]string `yaml:"abbreviations"`
}

// Resolve normalizes an alias (or tier label) to a concrete model ID.
// Unknown names pass through unchanged.
func (m *ModelsConfig) Resolve(name string) string {
	if m != nil && m.Aliases != nil {
		if id, ok := m.Aliases[name]; ok {
			return id
		}
	}
	return name
}

// FallbackFor returns the configured fallback model, or "" when none.
func (m *ModelsConfig) FallbackFor(model string) string {
	if m == nil || m.Fallbacks == nil {
		return ""
	}
	return m.Fallbacks[model]
}

// Abbreviation returns the filename abbreviation for a model ID.
// Unknown models get a compacted slug.
func (m *ModelsConfig) Abbreviation(model string) string {
	if m != nil && m.Abbreviations != nil {
		if abbr, ok := m.Abbreviations[model]; ok {
			return abbr
		}
	}
	return abbreviateModel(model)
}

func abbreviateModel(model string) string {
	out := make([]rune, 0, 8)
	for _, r := range model {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		}
		if len(out) == 8 {
			break
		}
	}
	if len(out) == 0 {
		return "model"
	}
	return string(out)
}

// QuotaConfig is the weekly credit allotment per tier.
type QuotaConfig struct {
	Flash int `yaml:"flash"`
	Pro   int `yaml:"pro"`
	Ultra int `yaml:"ultra"`
}

// CreditsConfig controls the weekly credit pools.
type CreditsConfig struct {
	WeeklyQuota QuotaConfig `yaml:"weekly_quota"`
}

// BlobConfig selects the blob backend by base URI:
// file:///var/lib/fabula or gs://bucket.
type BlobConfig struct {
	BaseURI string `yaml:"base_uri"`
}

// SMTPConfig enables the email notification sink. Empty Host disables it.
// Username empty means the relay takes unauthenticated mail.
type SMTPConfig struct {
	Host     string `yaml:"host,omitempty"`
	Port     int    `yaml:"port,omitempty"`
	From     string `yaml:"from,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// Addr returns host:port for SMTP dialing.
func (s *SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Enabled reports whether email sending is configured.
func (s *SMTPConfig) Enabled() bool {
	return s != nil && s.Host != ""
}

// PromptPair is a system/user prompt template pair. Templates use Go
// text/template syntax over the runner's input fields.
type PromptPair struct {
	System string `yaml:"system,omitempty"`
	User   string `yaml:"user,omitempty"`
}

// PromptsConfig holds the prompt templates per runner. Empty fields fall
// back to the built-in templates.
type PromptsConfig struct {
	Questions PromptPair `yaml:"questions,omitempty"`
	Draft     PromptPair `yaml:"draft,omitempty"`
	Outline   PromptPair `yaml:"outline,omitempty"`
	Chapter   PromptPair `yaml:"chapter,omitempty"`
	Cover     PromptPair `yaml:"cover,omitempty"`

	// DefaultTitle is used when a draft carries no TITOLO: header and no H1.
	DefaultTitle string `yaml:"default_title,omitempty"`
}

// SanitizePattern is one replacement rule for cover image prompts,
// compiled at startup.
type SanitizePattern struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// SanitizerConfig controls cover prompt sanitation.
type SanitizerConfig struct {
	Patterns       []SanitizePattern `yaml:"patterns,omitempty"`
	MaxPromptChars int               `yaml:"max_prompt_chars,omitempty"`
}
