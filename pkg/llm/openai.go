package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// openaiProvider backs the gpt/o* model family.
type openaiProvider struct {
	client openai.Client
}

func newOpenAIProvider(apiKey string) *openaiProvider {
	var opts []option.RequestOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	return &openaiProvider{client: openai.NewClient(opts...)}
}

func (p *openaiProvider) acceptsPDF() bool { return false }

func (p *openaiProvider) generateText(ctx context.Context, model string, temperature float64, req TextRequest) (string, Usage, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(model),
		Temperature: openai.Float(temperature),
	}
	if req.System != "" {
		params.Messages = append(params.Messages, openai.SystemMessage(req.System))
	}
	params.Messages = append(params.Messages, openai.UserMessage(req.User))

	if req.ResponseMIMEType == "application/json" {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", Usage{}, fmt.Errorf("openai generation failed: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", Usage{}, fmt.Errorf("openai returned no text for %s", model)
	}

	return resp.Choices[0].Message.Content, Usage{
		InputTokens:  int(resp.Usage.PromptTokens),
		OutputTokens: int(resp.Usage.CompletionTokens),
		Model:        model,
	}, nil
}

// generateMultimodal always fails: this family has no PDF input. Callers
// check AcceptsPDF and route extracted text through generateText instead.
func (p *openaiProvider) generateMultimodal(_ context.Context, model string, _ float64, _ MultimodalRequest) (string, Usage, error) {
	return "", Usage{}, fmt.Errorf("model %s does not accept binary parts; extract text first", model)
}

func (p *openaiProvider) generateImage(ctx context.Context, model string, req ImageRequest) ([]byte, error) {
	params := openai.ImageGenerateParams{
		Prompt: req.Prompt,
		Model:  openai.ImageModel(model),
	}
	if req.ImageSize != "" {
		params.Size = openai.ImageGenerateParamsSize(req.ImageSize)
	}
	// dall-e models return URLs unless asked for base64; gpt-image models
	// always return base64 and reject the parameter
	if strings.HasPrefix(model, "dall-e") {
		params.ResponseFormat = openai.ImageGenerateParamsResponseFormatB64JSON
	}

	resp, err := p.client.Images.Generate(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai image generation failed: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("openai returned no image data for %s", model)
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}
	return data, nil
}
