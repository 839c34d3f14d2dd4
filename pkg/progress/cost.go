package progress

import (
	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/models"
)

// CostCalculator prices token usage in euro. Prices are configured per
// model in USD per million tokens.
type CostCalculator struct {
	cfg *config.CostConfig
}

// NewCostCalculator builds a calculator over the loaded configuration.
func NewCostCalculator(cfg *config.CostConfig) *CostCalculator {
	return &CostCalculator{cfg: cfg}
}

// CostEUR prices the accumulated real token usage. Models without a
// configured price contribute nothing.
func (c *CostCalculator) CostEUR(usage models.TokenUsage) float64 {
	if c.cfg == nil {
		return 0
	}
	usd := 0.0
	for _, phase := range usage.Phases {
		usd += c.priceUSD(phase.Model, phase.InputTokens, phase.OutputTokens)
	}
	return usd * c.exchangeRate()
}

// PhaseCostEUR prices a single call, for incremental accumulation onto the
// session's real cost as phases complete.
func (c *CostCalculator) PhaseCostEUR(model string, inputTokens, outputTokens int) float64 {
	if c.cfg == nil {
		return 0
	}
	return c.priceUSD(model, inputTokens, outputTokens) * c.exchangeRate()
}

// EstimateEUR prices a whole book from the configured per-phase token
// guesses, for sessions whose real usage was never recorded. Chapter
// guesses scale with the outline length.
func (c *CostCalculator) EstimateEUR(model string, chapterCount int) float64 {
	if c.cfg == nil || len(c.cfg.TokenEstimates) == 0 {
		return 0
	}
	if chapterCount < 0 {
		chapterCount = 0
	}

	est := c.cfg.TokenEstimates
	usd := c.priceUSD(model, est["questions_in"], est["questions_out"])
	usd += c.priceUSD(model, est["draft_in"], est["draft_out"])
	usd += c.priceUSD(model, est["outline_in"], est["outline_out"])
	usd += c.priceUSD(model, est["chapter_in"]*chapterCount, est["chapter_out"]*chapterCount)
	return usd * c.exchangeRate()
}

func (c *CostCalculator) priceUSD(model string, inputTokens, outputTokens int) float64 {
	price, ok := c.cfg.ModelCosts[model]
	if !ok {
		return 0
	}
	return float64(inputTokens)/1e6*price.In + float64(outputTokens)/1e6*price.Out
}

func (c *CostCalculator) exchangeRate() float64 {
	if c.cfg.ExchangeRateUSDToEUR > 0 {
		return c.cfg.ExchangeRateUSDToEUR
	}
	return 1
}
