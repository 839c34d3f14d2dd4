package config

import (
	"regexp"
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsComplete(t *testing.T) {
	cfg := DefaultConfig()

	// Every section must be present so components never nil-check config.
	require.NotNil(t, cfg.Server)
	require.NotNil(t, cfg.Queue)
	require.NotNil(t, cfg.Timeouts)
	require.NotNil(t, cfg.Retry)
	require.NotNil(t, cfg.Validation)
	require.NotNil(t, cfg.TimeEstimation)
	require.NotNil(t, cfg.Cover)
	require.NotNil(t, cfg.Cost)
	require.NotNil(t, cfg.Temperature)
	require.NotNil(t, cfg.Critic)
	require.NotNil(t, cfg.Models)
	require.NotNil(t, cfg.Credits)
	require.NotNil(t, cfg.Blob)
	require.NotNil(t, cfg.SMTP)
	require.NotNil(t, cfg.Retention)
	require.NotNil(t, cfg.Prompts)
	require.NotNil(t, cfg.Sanitizer)
}

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()

	err := NewValidator(cfg).ValidateAll()
	require.NoError(t, err, "built-in defaults must pass their own validation")
}

func TestDefaultPromptsParseAsTemplates(t *testing.T) {
	prompts := defaultPrompts()

	pairs := map[string]PromptPair{
		"questions": prompts.Questions,
		"draft":     prompts.Draft,
		"outline":   prompts.Outline,
		"chapter":   prompts.Chapter,
		"cover":     prompts.Cover,
	}

	for name, pair := range pairs {
		t.Run(name, func(t *testing.T) {
			_, err := template.New(name + ".system").Parse(pair.System)
			assert.NoError(t, err)
			_, err = template.New(name + ".user").Parse(pair.User)
			assert.NoError(t, err)
			assert.NotEmpty(t, pair.User, "user prompt must not be empty")
		})
	}
}

func TestDefaultPromptPlaceholders(t *testing.T) {
	prompts := defaultPrompts()

	assert.Contains(t, prompts.Questions.User, "{{.FormSummary}}")
	assert.Contains(t, prompts.Draft.User, "{{.AnswersSummary}}")
	assert.Contains(t, prompts.Draft.System, "TITOLO:")
	assert.Contains(t, prompts.Draft.System, "TRAMA:")
	assert.Contains(t, prompts.Outline.User, "{{.Draft}}")
	assert.Contains(t, prompts.Chapter.User, "{{.SectionTitle}}")
	assert.Contains(t, prompts.Chapter.User, "{{.PreviousChapters}}")
	assert.Contains(t, prompts.Chapter.System, "{{.MinWords}}")
	assert.Contains(t, prompts.Cover.User, "{{.Title}}")
}

func TestDefaultCriticPrompts(t *testing.T) {
	assert.Contains(t, defaultCriticSystemPrompt, `"score"`)
	assert.Contains(t, defaultCriticSystemPrompt, `"pros"`)
	assert.Contains(t, defaultCriticSystemPrompt, `"cons"`)
	assert.Contains(t, defaultCriticSystemPrompt, `"summary"`)
	assert.Contains(t, defaultCriticUserPrompt, "{{.Title}}")
}

func TestDefaultSanitizePatternsCompile(t *testing.T) {
	for _, p := range defaultSanitizePatterns() {
		t.Run(p.Name, func(t *testing.T) {
			_, err := regexp.Compile(p.Pattern)
			require.NoError(t, err)
			assert.NotEmpty(t, p.Replacement)
			assert.NotEmpty(t, p.Name)

			// Case-insensitive matching is part of the contract.
			assert.True(t, strings.HasPrefix(p.Pattern, "(?i)"), "patterns match case-insensitively")
		})
	}
}

func TestDefaultModelAliasesCoverAllTiers(t *testing.T) {
	cfg := DefaultConfig()

	for _, tier := range []string{"flash", "pro", "ultra"} {
		resolved := cfg.Models.Resolve(tier)
		assert.NotEqual(t, tier, resolved, "tier %q must resolve to a concrete model", tier)

		// Every aliased model has a cost entry for estimation.
		_, ok := cfg.Cost.ModelCosts[resolved]
		assert.True(t, ok, "model %q needs a cost entry", resolved)
	}
}
