package config

// Built-in defaults. The loaded YAML is merged ON TOP of these with mergo,
// so any field the file omits keeps its default.

// DefaultConfig returns the complete built-in configuration tree.
func DefaultConfig() *Config {
	return &Config{
		Server: &ServerConfig{
			HTTPPort:     "8080",
			DashboardURL: "http://localhost:5173",
		},
		Queue: DefaultQueueConfig(),
		Timeouts: &TimeoutsConfig{
			QuestionsMS: 60_000,
			DraftMS:     120_000,
			OutlineMS:   120_000,
			ChapterMS:   300_000,
			CoverMS:     120_000,
			CritiqueMS:  180_000,
		},
		Retry: &RetryConfig{
			Questions:         RetryPolicy{MaxRetries: 2},
			Draft:             RetryPolicy{MaxRetries: 3},
			Outline:           RetryPolicy{MaxRetries: 3},
			ChapterGeneration: RetryPolicy{MaxRetries: 3, MinChapterLength: 150},
		},
		Validation: &ValidationConfig{
			WordsPerPage:       250,
			TOCChaptersPerPage: 24,
			MinChapterLength:   150,
		},
		TimeEstimation: &TimeEstimationConfig{
			LinearParamsByMethod: map[string]LinearParams{
				"standard": {A: 65, B: 2.5},
			},
			FallbackSecondsPerChapter: 75,
			MinChaptersForReliableAvg: 3,
			UseSessionAvgIfAvailable:  true,
		},
		Cover: &CoverConfig{
			AspectRatio:   "2:3",
			PrimaryModel:  "gemini-2.5-flash-image",
			FallbackModel: "imagen-3.0-generate-002",
		},
		Cost: &CostConfig{
			TokensPerPage:        420,
			ExchangeRateUSDToEUR: 0.92,
			ModelCosts: map[string]ModelCost{
				"gemini-2.5-flash": {In: 0.30, Out: 2.50},
				"gemini-2.5-pro":   {In: 1.25, Out: 10.00},
				"gemini-3-flash":   {In: 0.50, Out: 4.00},
				"gemini-3-pro":     {In: 2.00, Out: 12.00},
				"gemini-3-ultra":   {In: 5.00, Out: 25.00},
				"gpt-4o":           {In: 2.50, Out: 10.00},
			},
			// Per-phase guesses for books that predate token accounting.
			// Chapter figures are per chapter and scale with the outline.
			TokenEstimates: map[string]int{
				"questions_in":  1_500,
				"questions_out": 1_000,
				"draft_in":      3_500,
				"draft_out":     2_500,
				"outline_in":    3_000,
				"outline_out":   2_000,
				"chapter_in":    9_000,
				"chapter_out":   2_000,
			},
		},
		Temperature: &TemperatureConfig{
			Agents: map[string]float64{},
		},
		Critic: &CriticConfig{
			DefaultModel:     "gemini-2.5-pro",
			FallbackModel:    "gpt-4o",
			MaxRetries:       2,
			ResponseMIMEType: "application/json",
			SystemPrompt:     defaultCriticSystemPrompt,
			UserPrompt:       defaultCriticUserPrompt,
		},
		Models: &ModelsConfig{
			Aliases: map[string]string{
				"flash": "gemini-2.5-flash",
				"pro":   "gemini-2.5-pro",
				"ultra": "gemini-3-ultra",
			},
			Fallbacks: map[string]string{
				"gemini-2.5-flash": "gemini-2.5-pro",
				"gemini-2.5-pro":   "gemini-2.5-flash",
				"gemini-3-flash":   "gemini-2.5-flash",
				"gemini-3-pro":     "gemini-2.5-pro",
				"gemini-3-ultra":   "gemini-3-pro",
				"gpt-4o":           "gpt-4o-mini",
			},
			Abbreviations: map[string]string{
				"gemini-2.5-flash": "g25f",
				"gemini-2.5-pro":   "g25p",
				"gemini-3-flash":   "g3f",
				"gemini-3-pro":     "g3p",
				"gemini-3-ultra":   "g3u",
			},
		},
		Credits: &CreditsConfig{
			WeeklyQuota: QuotaConfig{Flash: 5, Pro: 2, Ultra: 1},
		},
		Blob: &BlobConfig{
			BaseURI: "file:///var/lib/fabula",
		},
		SMTP:      &SMTPConfig{},
		Retention: DefaultRetentionConfig(),
		Prompts:   defaultPrompts(),
		Sanitizer: &SanitizerConfig{
			MaxPromptChars: 1_800,
			Patterns:       defaultSanitizePatterns(),
		},
	}
}
