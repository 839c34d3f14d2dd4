package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeoutsConfigAccessors(t *testing.T) {
	cfg := &TimeoutsConfig{
		QuestionsMS: 60_000,
		DraftMS:     120_000,
		OutlineMS:   120_000,
		ChapterMS:   300_000,
		CoverMS:     120_000,
		CritiqueMS:  180_000,
	}

	assert.Equal(t, 1*time.Minute, cfg.Questions())
	assert.Equal(t, 2*time.Minute, cfg.Draft())
	assert.Equal(t, 2*time.Minute, cfg.Outline())
	assert.Equal(t, 5*time.Minute, cfg.Chapter())
	assert.Equal(t, 2*time.Minute, cfg.Cover())
	assert.Equal(t, 3*time.Minute, cfg.Critique())
}

func TestTimeoutsConfigZeroFallsBackToFloor(t *testing.T) {
	cfg := &TimeoutsConfig{} // nothing set

	// Unset and negative deadlines fall back to a sane floor rather
	// than producing zero-duration contexts.
	assert.Equal(t, 2*time.Minute, cfg.Questions())
	assert.Equal(t, 2*time.Minute, cfg.Chapter())

	cfg.ChapterMS = -500
	assert.Equal(t, 2*time.Minute, cfg.Chapter())
}

func TestModelsConfigResolve(t *testing.T) {
	m := &ModelsConfig{
		Aliases: map[string]string{
			"flash": "gemini-2.5-flash",
			"pro":   "gemini-2.5-pro",
			"ultra": "gemini-3-pro",
		},
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "tier alias resolves", in: "flash", want: "gemini-2.5-flash"},
		{name: "another alias resolves", in: "ultra", want: "gemini-3-pro"},
		{name: "concrete model passes through", in: "gemini-2.5-pro", want: "gemini-2.5-pro"},
		{name: "unknown name passes through", in: "gpt-4o", want: "gpt-4o"},
		{name: "empty passes through", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Resolve(tt.in))
		})
	}
}

func TestModelsConfigFallbackFor(t *testing.T) {
	m := &ModelsConfig{
		Fallbacks: map[string]string{
			"gemini-2.5-flash": "gemini-2.5-pro",
		},
	}

	assert.Equal(t, "gemini-2.5-pro", m.FallbackFor("gemini-2.5-flash"))
	assert.Equal(t, "", m.FallbackFor("gpt-4o"), "no fallback configured")

	var nilCfg *ModelsConfig
	assert.Equal(t, "", nilCfg.FallbackFor("anything"))
}

func TestModelsConfigAbbreviation(t *testing.T) {
	m := &ModelsConfig{
		Abbreviations: map[string]string{
			"gemini-2.5-flash": "g25f",
			"gemini-3-pro":     "g3p",
		},
	}

	assert.Equal(t, "g25f", m.Abbreviation("gemini-2.5-flash"))
	assert.Equal(t, "g3p", m.Abbreviation("gemini-3-pro"))

	// Unknown models get a compacted slug capped at 8 chars.
	assert.Equal(t, "gpt4o", m.Abbreviation("gpt-4o"))
	assert.Equal(t, "claudeop", m.Abbreviation("Claude-Opus-Ultra"))
	assert.Equal(t, "model", m.Abbreviation("---"))
}

func TestTemperatureConfigFor(t *testing.T) {
	cfg := &TemperatureConfig{
		Agents: map[string]float64{
			"draft":  1.2,
			"critic": 0.0,
		},
	}

	draft := cfg.For("draft")
	if assert.NotNil(t, draft) {
		assert.Equal(t, 1.2, *draft)
	}

	// A configured zero is a real override, not "unset".
	critic := cfg.For("critic")
	if assert.NotNil(t, critic) {
		assert.Equal(t, 0.0, *critic)
	}

	assert.Nil(t, cfg.For("outline"), "absent agent has no override")

	var nilCfg *TemperatureConfig
	assert.Nil(t, nilCfg.For("draft"))
}

func TestSMTPConfig(t *testing.T) {
	disabled := &SMTPConfig{}
	assert.False(t, disabled.Enabled())

	var nilCfg *SMTPConfig
	assert.False(t, nilCfg.Enabled())

	enabled := &SMTPConfig{Host: "mail.example.com", Port: 587, From: "books@example.com"}
	assert.True(t, enabled.Enabled())
	assert.Equal(t, "mail.example.com:587", enabled.Addr())
}
