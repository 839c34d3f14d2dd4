package progress

import (
	"testing"

	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/stretchr/testify/assert"
)

func testCostConfig() *config.CostConfig {
	return &config.CostConfig{
		ModelCosts: map[string]config.ModelCost{
			"gemini-2.5-flash": {In: 0.30, Out: 2.50},
			"gemini-2.5-pro":   {In: 1.25, Out: 10.00},
		},
		ExchangeRateUSDToEUR: 0.90,
		TokenEstimates: map[string]int{
			"questions_in": 1_000, "questions_out": 500,
			"draft_in": 2_000, "draft_out": 1_500,
			"outline_in": 3_000, "outline_out": 1_000,
			"chapter_in": 10_000, "chapter_out": 3_000,
		},
	}
}

func TestCostCalculator_CostEUR(t *testing.T) {
	c := NewCostCalculator(testCostConfig())

	t.Run("prices each phase at its own model", func(t *testing.T) {
		var usage models.TokenUsage
		usage.Add(models.PhaseDraft, 1_000_000, 100_000, "gemini-2.5-pro")
		usage.Add(models.PhaseChapters, 2_000_000, 400_000, "gemini-2.5-flash")

		// pro: 1.25 + 1.0 USD; flash: 0.6 + 1.0 USD; total 3.85 USD -> EUR.
		assert.InDelta(t, 3.85*0.90, c.CostEUR(usage), 1e-9)
	})

	t.Run("unknown model contributes nothing", func(t *testing.T) {
		var usage models.TokenUsage
		usage.Add(models.PhaseDraft, 1_000_000, 1_000_000, "sconosciuto-9000")
		assert.Zero(t, c.CostEUR(usage))
	})

	t.Run("empty usage", func(t *testing.T) {
		assert.Zero(t, c.CostEUR(models.TokenUsage{}))
	})

	t.Run("missing exchange rate keeps USD", func(t *testing.T) {
		cfg := testCostConfig()
		cfg.ExchangeRateUSDToEUR = 0
		var usage models.TokenUsage
		usage.Add(models.PhaseDraft, 1_000_000, 0, "gemini-2.5-pro")
		assert.InDelta(t, 1.25, NewCostCalculator(cfg).CostEUR(usage), 1e-9)
	})
}

func TestCostCalculator_PhaseCostEUR(t *testing.T) {
	c := NewCostCalculator(testCostConfig())
	assert.InDelta(t, (1.25+10.0)*0.90, c.PhaseCostEUR("gemini-2.5-pro", 1_000_000, 1_000_000), 1e-9)
	assert.Zero(t, c.PhaseCostEUR("sconosciuto", 1_000_000, 1_000_000))
	assert.Zero(t, NewCostCalculator(nil).PhaseCostEUR("gemini-2.5-pro", 1_000_000, 1_000_000))
}

func TestCostCalculator_EstimateEUR(t *testing.T) {
	c := NewCostCalculator(testCostConfig())

	t.Run("scales chapter guesses with the outline", func(t *testing.T) {
		// Fixed phases: in 6000, out 3000. Chapters x5: in 50000, out 15000.
		// flash: (56000*0.30 + 18000*2.50) / 1e6 = 0.0618 USD.
		assert.InDelta(t, 0.0618*0.90, c.EstimateEUR("gemini-2.5-flash", 5), 1e-9)
	})

	t.Run("zero chapters still counts the preparation phases", func(t *testing.T) {
		// (6000*0.30 + 3000*2.50) / 1e6 = 0.0093 USD.
		assert.InDelta(t, 0.0093*0.90, c.EstimateEUR("gemini-2.5-flash", 0), 1e-9)
		assert.InDelta(t, c.EstimateEUR("gemini-2.5-flash", 0), c.EstimateEUR("gemini-2.5-flash", -3), 1e-9)
	})

	t.Run("no estimates configured", func(t *testing.T) {
		cfg := testCostConfig()
		cfg.TokenEstimates = nil
		assert.Zero(t, NewCostCalculator(cfg).EstimateEUR("gemini-2.5-flash", 5))
	})
}
