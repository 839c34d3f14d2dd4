package progress

import (
	"math"

	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/montanaflynn/stats"
)

// Confidence labels for residual-time estimates.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Estimator predicts the remaining writing time of an in-flight book from
// the linear model a*(remaining) + b*(done+1), with per-tier coefficients.
type Estimator struct {
	cfg *config.TimeEstimationConfig
}

// NewEstimator builds an estimator over the loaded configuration.
func NewEstimator(cfg *config.TimeEstimationConfig) *Estimator {
	return &Estimator{cfg: cfg}
}

// ResidualSeconds estimates how long the remaining chapters will take.
// chapterTimings are the session's measured per-chapter seconds; with enough
// of them the session's own average replaces the configured coefficient.
// Pathological inputs are coerced, never rejected: the caller polls this on
// every progress request and always gets a number back.
func (e *Estimator) ResidualSeconds(llmModel string, currentStep, totalSteps int, chapterTimings []float64) models.ResidualEstimate {
	coerced := false
	if totalSteps <= 0 {
		totalSteps = 1
		coerced = true
	}
	if currentStep < 0 {
		currentStep = 0
		coerced = true
	}
	if currentStep > totalSteps {
		currentStep = totalSteps
		coerced = true
	}

	timings := validTimings(chapterTimings)
	a, b := e.coefficients(llmModel)

	sessionAvg := false
	if e.cfg != nil && e.cfg.UseSessionAvgIfAvailable &&
		e.cfg.MinChaptersForReliableAvg > 0 && len(timings) >= e.cfg.MinChaptersForReliableAvg {
		if avg, err := stats.Mean(timings); err == nil {
			a = avg
			sessionAvg = true
		}
	}

	seconds := a*float64(totalSteps-currentStep) + b*float64(currentStep+1)
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		seconds = 0
		coerced = true
	}

	return models.ResidualEstimate{
		Seconds:    seconds,
		Confidence: confidence(currentStep, totalSteps, sessionAvg, coerced),
	}
}

// coefficients picks the per-tier linear parameters, falling back to a flat
// per-chapter guess when the tier is not tabulated.
func (e *Estimator) coefficients(llmModel string) (a, b float64) {
	if e.cfg == nil {
		return 0, 0
	}
	method := string(models.ModeOfModel(llmModel))
	if params, ok := e.cfg.LinearParamsByMethod[method]; ok {
		return params.A, params.B
	}
	return e.cfg.FallbackSecondsPerChapter, 0
}

// confidence grades the estimate: measured session data and visible progress
// raise it, coerced inputs floor it.
func confidence(currentStep, totalSteps int, sessionAvg, coerced bool) string {
	if coerced {
		return ConfidenceLow
	}
	ratio := float64(currentStep) / float64(totalSteps)
	switch {
	case sessionAvg && ratio >= 0.5:
		return ConfidenceHigh
	case sessionAvg || ratio >= 0.5:
		return ConfidenceMedium
	}
	return ConfidenceLow
}

func validTimings(timings []float64) []float64 {
	valid := timings[:0:0]
	for _, t := range timings {
		if t > 0 && !math.IsNaN(t) && !math.IsInf(t, 0) {
			valid = append(valid, t)
		}
	}
	return valid
}
