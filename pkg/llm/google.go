package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// googleProvider backs the gemini model family through the GenAI SDK.
type googleProvider struct {
	client *genai.Client
}

func newGoogleProvider(ctx context.Context, apiKey string) (*googleProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &googleProvider{client: client}, nil
}

func (p *googleProvider) acceptsPDF() bool { return true }

func (p *googleProvider) generateText(ctx context.Context, model string, temperature float64, req TextRequest) (string, Usage, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(temperature)),
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.ResponseMIMEType != "" {
		cfg.ResponseMIMEType = req.ResponseMIMEType
	}

	contents := []*genai.Content{genai.NewContentFromText(req.User, genai.RoleUser)}

	result, err := p.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", Usage{}, fmt.Errorf("gemini generation failed: %w", err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", Usage{}, fmt.Errorf("gemini returned no text for %s", model)
	}

	return text, googleUsage(result, model), nil
}

func (p *googleProvider) generateMultimodal(ctx context.Context, model string, temperature float64, req MultimodalRequest) (string, Usage, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(temperature)),
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.ResponseMIMEType != "" {
		cfg.ResponseMIMEType = req.ResponseMIMEType
	}

	parts := []*genai.Part{genai.NewPartFromText(req.User)}
	for _, part := range req.Parts {
		parts = append(parts, genai.NewPartFromBytes(part.Data, part.MIME))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := p.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", Usage{}, fmt.Errorf("gemini multimodal generation failed: %w", err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", Usage{}, fmt.Errorf("gemini returned no text for %s", model)
	}

	return text, googleUsage(result, model), nil
}

func (p *googleProvider) generateImage(ctx context.Context, model string, req ImageRequest) ([]byte, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}
	if req.AspectRatio != "" || req.ImageSize != "" {
		cfg.ImageConfig = &genai.ImageConfig{
			AspectRatio: req.AspectRatio,
			ImageSize:   req.ImageSize,
		}
	}

	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}

	result, err := p.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini image generation failed: %w", err)
	}

	data, _, err := ExtractImage(responsePartsOf(result))
	if err != nil {
		return nil, fmt.Errorf("no image in %s response: %w", model, err)
	}
	return data, nil
}

// responsePartsOf flattens the first candidate into wire-shape parts so the
// image extraction runs the same order-sensitive decode it applies to raw
// REST payloads.
func responsePartsOf(result *genai.GenerateContentResponse) []ResponsePart {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return nil
	}

	sdkParts := result.Candidates[0].Content.Parts
	parts := make([]ResponsePart, 0, len(sdkParts))
	for _, part := range sdkParts {
		if part == nil {
			continue
		}
		rp := ResponsePart{Text: part.Text}
		if part.InlineData != nil {
			rp.InlineData = &InlineData{
				MIMEType: part.InlineData.MIMEType,
				Data:     part.InlineData.Data,
			}
		}
		parts = append(parts, rp)
	}
	return parts
}

func googleUsage(result *genai.GenerateContentResponse, model string) Usage {
	u := Usage{Model: model}
	if result.UsageMetadata != nil {
		u.InputTokens = int(result.UsageMetadata.PromptTokenCount)
		u.OutputTokens = int(result.UsageMetadata.CandidatesTokenCount)
	}
	return u
}
