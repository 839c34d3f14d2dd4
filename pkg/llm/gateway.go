// Package llm routes text, image, and multimodal generation across the two
// provider families behind one gateway.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/fabula-ai/fabula/pkg/config"
)

// Family identifies a provider family.
type Family string

const (
	FamilyGoogle Family = "google"
	FamilyOpenAI Family = "openai"
)

// FamilyOf routes a model ID to its provider family by prefix. Unknown
// prefixes go to Google, which hosts the default models.
func FamilyOf(model string) Family {
	m := strings.ToLower(strings.TrimSpace(model))
	for _, prefix := range []string{"gpt", "o1", "o3"} {
		if strings.HasPrefix(m, prefix) {
			return FamilyOpenAI
		}
	}
	return FamilyGoogle
}

// DefaultTemperature is the sampling default by model class: 2.5-class
// models run deterministic, everything 3.x and newer at full creativity.
func DefaultTemperature(model string) float64 {
	if strings.Contains(model, "2.5") {
		return 0.0
	}
	return 1.0
}

// Usage is the token count of one completed call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	Model        string
}

// TextRequest is one plain text generation call. A nil Temperature takes
// the model-class default. Attempts <= 0 means a single try.
type TextRequest struct {
	System           string
	User             string
	Model            string
	Temperature      *float64
	ResponseMIMEType string
	Attempts         int
}

// Part is one binary attachment of a multimodal request.
type Part struct {
	MIME string
	Data []byte
}

// MultimodalRequest is a text call with binary parts attached. Only the
// Google family takes binary parts; callers check AcceptsPDF first.
type MultimodalRequest struct {
	System           string
	User             string
	Parts            []Part
	Model            string
	Temperature      *float64
	ResponseMIMEType string
	Attempts         int
}

// ImageRequest is one image generation call.
type ImageRequest struct {
	Prompt      string
	Model       string
	AspectRatio string
	ImageSize   string
	Attempts    int
}

// LLMFailure is the terminal error of a generation call: every attempt on
// the last model tried (primary or its fallback) failed.
type LLMFailure struct {
	Model   string
	LastErr error
}

func (e *LLMFailure) Error() string {
	return fmt.Sprintf("llm generation failed on %s: %v", e.Model, e.LastErr)
}

func (e *LLMFailure) Unwrap() error { return e.LastErr }

// provider is one model family's backend.
type provider interface {
	generateText(ctx context.Context, model string, temperature float64, req TextRequest) (string, Usage, error)
	generateMultimodal(ctx context.Context, model string, temperature float64, req MultimodalRequest) (string, Usage, error)
	generateImage(ctx context.Context, model string, req ImageRequest) ([]byte, error)
	acceptsPDF() bool
}

// Gateway owns one client per provider family and routes calls by model
// prefix, with per-call retries and a single same-family fallback.
type Gateway struct {
	providers  map[Family]provider
	models     *config.ModelsConfig
	retryDelay time.Duration
}

// Options configures the gateway. Empty API keys defer to the SDKs' own
// environment lookup (GEMINI_API_KEY / OPENAI_API_KEY).
type Options struct {
	GoogleAPIKey string
	OpenAIAPIKey string
	Models       *config.ModelsConfig
	RetryDelay   time.Duration
}

// NewGateway constructs the provider clients once. The gateway is safe for
// concurrent use.
func NewGateway(ctx context.Context, opts Options) (*Gateway, error) {
	google, err := newGoogleProvider(ctx, opts.GoogleAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create google client: %w", err)
	}

	retryDelay := opts.RetryDelay
	if retryDelay <= 0 {
		retryDelay = 2 * time.Second
	}

	return &Gateway{
		providers: map[Family]provider{
			FamilyGoogle: google,
			FamilyOpenAI: newOpenAIProvider(opts.OpenAIAPIKey),
		},
		models:     opts.Models,
		retryDelay: retryDelay,
	}, nil
}

// Normalize resolves tier labels and aliases to a concrete model ID.
func (g *Gateway) Normalize(model string) string {
	return g.models.Resolve(model)
}

// AcceptsPDF reports whether the model's family takes PDF parts natively.
func (g *Gateway) AcceptsPDF(model string) bool {
	return g.providers[FamilyOf(g.Normalize(model))].acceptsPDF()
}

// GenerateText runs one text generation with retries, then one same-family
// fallback model with a fresh attempt budget.
func (g *Gateway) GenerateText(ctx context.Context, req TextRequest) (string, Usage, error) {
	model := g.Normalize(req.Model)

	text, usage, err := g.textOn(ctx, model, req)
	if err == nil {
		return text, usage, nil
	}

	if fallback := g.fallbackFor(model); fallback != "" {
		slog.Warn("Primary model exhausted, trying fallback",
			"model", model,
			"fallback", fallback,
			"error", err)
		text, usage, fbErr := g.textOn(ctx, fallback, req)
		if fbErr == nil {
			return text, usage, nil
		}
		model, err = fallback, fbErr
	}

	return "", Usage{}, &LLMFailure{Model: model, LastErr: err}
}

// GenerateMultimodal runs one generation with binary parts attached, with
// the same retry and fallback policy as GenerateText.
func (g *Gateway) GenerateMultimodal(ctx context.Context, req MultimodalRequest) (string, Usage, error) {
	model := g.Normalize(req.Model)

	text, usage, err := g.multimodalOn(ctx, model, req)
	if err == nil {
		return text, usage, nil
	}

	if fallback := g.fallbackFor(model); fallback != "" {
		slog.Warn("Primary model exhausted, trying fallback",
			"model", model,
			"fallback", fallback,
			"error", err)
		text, usage, fbErr := g.multimodalOn(ctx, fallback, req)
		if fbErr == nil {
			return text, usage, nil
		}
		model, err = fallback, fbErr
	}

	return "", Usage{}, &LLMFailure{Model: model, LastErr: err}
}

// GenerateImage runs one image generation, retrying and falling back the
// same way the text calls do.
func (g *Gateway) GenerateImage(ctx context.Context, req ImageRequest) ([]byte, error) {
	model := g.Normalize(req.Model)

	data, err := g.imageOn(ctx, model, req)
	if err == nil {
		return data, nil
	}

	if fallback := g.fallbackFor(model); fallback != "" {
		slog.Warn("Primary model exhausted, trying fallback",
			"model", model,
			"fallback", fallback,
			"error", err)
		data, fbErr := g.imageOn(ctx, fallback, req)
		if fbErr == nil {
			return data, nil
		}
		model, err = fallback, fbErr
	}

	return nil, &LLMFailure{Model: model, LastErr: err}
}

func (g *Gateway) textOn(ctx context.Context, model string, req TextRequest) (string, Usage, error) {
	p := g.providers[FamilyOf(model)]
	temperature := resolveTemperature(model, req.Temperature)

	var text string
	var usage Usage
	err := retry.Do(
		func() error {
			var err error
			text, usage, err = p.generateText(ctx, model, temperature, req)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(attempts(req.Attempts)),
		retry.Delay(g.retryDelay),
		retry.LastErrorOnly(true),
	)
	return text, usage, err
}

func (g *Gateway) multimodalOn(ctx context.Context, model string, req MultimodalRequest) (string, Usage, error) {
	p := g.providers[FamilyOf(model)]
	temperature := resolveTemperature(model, req.Temperature)

	var text string
	var usage Usage
	err := retry.Do(
		func() error {
			var err error
			text, usage, err = p.generateMultimodal(ctx, model, temperature, req)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(attempts(req.Attempts)),
		retry.Delay(g.retryDelay),
		retry.LastErrorOnly(true),
	)
	return text, usage, err
}

func (g *Gateway) imageOn(ctx context.Context, model string, req ImageRequest) ([]byte, error) {
	p := g.providers[FamilyOf(model)]

	var data []byte
	err := retry.Do(
		func() error {
			var err error
			data, err = p.generateImage(ctx, model, req)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(attempts(req.Attempts)),
		retry.Delay(g.retryDelay),
		retry.LastErrorOnly(true),
	)
	return data, err
}

// fallbackFor returns the configured fallback model. Cross-family fallbacks
// are ignored: switching providers mid-call would change the request shape.
func (g *Gateway) fallbackFor(model string) string {
	fallback := g.models.FallbackFor(model)
	if fallback == "" || fallback == model {
		return ""
	}
	if FamilyOf(fallback) != FamilyOf(model) {
		slog.Warn("Ignoring cross-family fallback model",
			"model", model,
			"fallback", fallback)
		return ""
	}
	return fallback
}

func resolveTemperature(model string, override *float64) float64 {
	if override != nil {
		return *override
	}
	return DefaultTemperature(model)
}

func attempts(n int) uint {
	if n <= 0 {
		return 1
	}
	return uint(n)
}
