package progress

import (
	"math"
	"testing"

	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/stretchr/testify/assert"
)

func testEstimationConfig() *config.TimeEstimationConfig {
	return &config.TimeEstimationConfig{
		LinearParamsByMethod: map[string]config.LinearParams{
			"flash": {A: 30, B: 2},
			"pro":   {A: 90, B: 5},
			"ultra": {A: 180, B: 10},
		},
		FallbackSecondsPerChapter: 60,
		MinChaptersForReliableAvg: 3,
		UseSessionAvgIfAvailable:  true,
	}
}

func TestEstimator_ResidualSeconds(t *testing.T) {
	e := NewEstimator(testEstimationConfig())

	t.Run("linear model per tier", func(t *testing.T) {
		// a*(N-k) + b*(k+1) with flash params: 30*8 + 2*3.
		est := e.ResidualSeconds("gemini-2.5-flash", 2, 10, nil)
		assert.Equal(t, 246.0, est.Seconds)

		// pro params: 90*8 + 5*3.
		est = e.ResidualSeconds("gemini-2.5-pro", 2, 10, nil)
		assert.Equal(t, 735.0, est.Seconds)

		// Tier aliases classify the same way as concrete IDs.
		est = e.ResidualSeconds("ultra", 2, 10, nil)
		assert.Equal(t, 180.0*8+10*3, est.Seconds)
	})

	t.Run("unknown tier falls back to flat seconds per chapter", func(t *testing.T) {
		cfg := testEstimationConfig()
		cfg.LinearParamsByMethod = nil
		est := NewEstimator(cfg).ResidualSeconds("gemini-2.5-flash", 2, 10, nil)
		assert.Equal(t, 480.0, est.Seconds)
	})

	t.Run("session average replaces the coefficient", func(t *testing.T) {
		est := e.ResidualSeconds("gemini-2.5-flash", 3, 10, []float64{40, 50, 60})
		// avg 50 * 7 remaining + b 2 * 4.
		assert.Equal(t, 358.0, est.Seconds)
	})

	t.Run("too few timings keep the configured coefficient", func(t *testing.T) {
		est := e.ResidualSeconds("gemini-2.5-flash", 3, 10, []float64{40, 50})
		assert.Equal(t, 30.0*7+2*4, est.Seconds)
	})

	t.Run("bad timings are dropped before counting", func(t *testing.T) {
		est := e.ResidualSeconds("gemini-2.5-flash", 3, 10, []float64{40, -5, math.NaN(), 50})
		// Only two valid samples remain, below the reliability minimum.
		assert.Equal(t, 30.0*7+2*4, est.Seconds)
	})

	t.Run("session average disabled by config", func(t *testing.T) {
		cfg := testEstimationConfig()
		cfg.UseSessionAvgIfAvailable = false
		est := NewEstimator(cfg).ResidualSeconds("gemini-2.5-flash", 3, 10, []float64{40, 50, 60})
		assert.Equal(t, 30.0*7+2*4, est.Seconds)
	})

	t.Run("pathological inputs are coerced to low confidence", func(t *testing.T) {
		est := e.ResidualSeconds("gemini-2.5-flash", 0, 0, nil)
		assert.Equal(t, ConfidenceLow, est.Confidence)
		assert.Equal(t, 30.0*1+2*1, est.Seconds, "zero steps coerce to a single step")

		est = e.ResidualSeconds("gemini-2.5-flash", -3, 10, nil)
		assert.Equal(t, ConfidenceLow, est.Confidence)

		est = e.ResidualSeconds("gemini-2.5-flash", 12, 10, nil)
		assert.Equal(t, ConfidenceLow, est.Confidence)
		assert.Equal(t, 2.0*11, est.Seconds, "past the end only the tail term remains")
	})

	t.Run("confidence ladder", func(t *testing.T) {
		timings := []float64{40, 50, 60}

		est := e.ResidualSeconds("gemini-2.5-flash", 1, 10, nil)
		assert.Equal(t, ConfidenceLow, est.Confidence, "early, no measurements")

		est = e.ResidualSeconds("gemini-2.5-flash", 6, 10, nil)
		assert.Equal(t, ConfidenceMedium, est.Confidence, "past halfway on config params")

		est = e.ResidualSeconds("gemini-2.5-flash", 3, 10, timings)
		assert.Equal(t, ConfidenceMedium, est.Confidence, "measured average but early")

		est = e.ResidualSeconds("gemini-2.5-flash", 6, 10, timings)
		assert.Equal(t, ConfidenceHigh, est.Confidence, "measured average past halfway")
	})

	t.Run("nil config still answers", func(t *testing.T) {
		est := NewEstimator(nil).ResidualSeconds("gemini-2.5-flash", 2, 10, nil)
		assert.Zero(t, est.Seconds)
		assert.Equal(t, ConfidenceLow, est.Confidence)
	})
}
