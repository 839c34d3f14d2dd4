package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateModels(t *testing.T) {
	tests := []struct {
		name    string
		models  *ModelsConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid defaults",
			models:  DefaultConfig().Models,
			wantErr: false,
		},
		{
			name: "empty alias target",
			models: &ModelsConfig{
				Aliases: map[string]string{"flash": ""},
			},
			wantErr: true,
			errMsg:  "alias target must not be empty",
		},
		{
			name: "model falls back to itself",
			models: &ModelsConfig{
				Fallbacks: map[string]string{"gemini-2.5-flash": "gemini-2.5-flash"},
			},
			wantErr: true,
			errMsg:  "cannot fall back to itself",
		},
		{
			name: "empty fallback",
			models: &ModelsConfig{
				Fallbacks: map[string]string{"gemini-2.5-flash": ""},
			},
			wantErr: true,
			errMsg:  "fallback model must not be empty",
		},
		{
			name: "empty abbreviation",
			models: &ModelsConfig{
				Abbreviations: map[string]string{"gemini-2.5-flash": ""},
			},
			wantErr: true,
			errMsg:  "abbreviation must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Models = tt.models
			err := NewValidator(cfg).validateModels()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateBlob(t *testing.T) {
	tests := []struct {
		name    string
		baseURI string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "local filesystem",
			baseURI: "file:///var/lib/fabula",
			wantErr: false,
		},
		{
			name:    "cloud storage bucket",
			baseURI: "gs://fabula-books",
			wantErr: false,
		},
		{
			name:    "empty",
			baseURI: "",
			wantErr: true,
			errMsg:  "must not be empty",
		},
		{
			name:    "unsupported scheme",
			baseURI: "ftp://somewhere",
			wantErr: true,
			errMsg:  "unsupported scheme",
		},
		{
			name:    "no scheme",
			baseURI: "/var/lib/fabula",
			wantErr: true,
			errMsg:  "unsupported scheme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Blob = &BlobConfig{BaseURI: tt.baseURI}
			err := NewValidator(cfg).validateBlob()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateCredits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Credits = &CreditsConfig{WeeklyQuota: QuotaConfig{Flash: 5, Pro: -1, Ultra: 1}}

	err := NewValidator(cfg).validateCredits()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pro")
	assert.Contains(t, err.Error(), "must not be negative")

	// Zero quotas are allowed: a tier can be switched off.
	cfg.Credits = &CreditsConfig{WeeklyQuota: QuotaConfig{}}
	require.NoError(t, NewValidator(cfg).validateCredits())
}

func TestValidateCost(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CostConfig)
		wantErr string
	}{
		{
			name:    "zero tokens per page",
			mutate:  func(c *CostConfig) { c.TokensPerPage = 0 },
			wantErr: "tokens_per_page",
		},
		{
			name:    "zero exchange rate",
			mutate:  func(c *CostConfig) { c.ExchangeRateUSDToEUR = 0 },
			wantErr: "exchange_rate",
		},
		{
			name: "negative model cost",
			mutate: func(c *CostConfig) {
				c.ModelCosts["gemini-2.5-flash"] = ModelCost{In: -1, Out: 2}
			},
			wantErr: "must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg.Cost)
			err := NewValidator(cfg).validateCost()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidatePrompts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Prompts.Chapter.User = ""

	err := NewValidator(cfg).validatePrompts()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "chapter")
	assert.Contains(t, err.Error(), "must not be empty")
}

func TestValidatePromptsBadTemplate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Prompts.Draft.User = "Intake: {{.FormSummary"

	err := NewValidator(cfg).validatePrompts()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "template parse")
}

func TestValidateSanitizer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sanitizer.Patterns = append(cfg.Sanitizer.Patterns, SanitizePattern{
		Name:        "broken",
		Pattern:     "([unclosed",
		Replacement: "x",
	})

	err := NewValidator(cfg).validateSanitizer()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Contains(t, err.Error(), "invalid regex")
}

func TestValidateCritic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Critic.DefaultModel = ""

	err := NewValidator(cfg).validateCritic()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_model")
}

func TestValidateAllFailFast(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Models.Fallbacks["gemini-2.5-flash"] = "gemini-2.5-flash"
	cfg.Blob.BaseURI = "ftp://also-bad"

	err := NewValidator(cfg).ValidateAll()

	// Models are validated first; the blob error is never reached.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "models validation failed")
	assert.NotContains(t, err.Error(), "blob")
}
