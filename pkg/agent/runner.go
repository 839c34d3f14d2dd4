// Package agent implements the generation runners: questions, draft,
// outline, chapter, and critique. Each runner renders a configured prompt
// template over the session's inputs, calls the LLM gateway once, and
// parses the output into a typed result. No tool calling, no streaming.
package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/llm"
	"github.com/fabula-ai/fabula/pkg/models"
)

// Gateway is the slice of the LLM gateway the runners use.
type Gateway interface {
	GenerateText(ctx context.Context, req llm.TextRequest) (string, llm.Usage, error)
	GenerateMultimodal(ctx context.Context, req llm.MultimodalRequest) (string, llm.Usage, error)
	Normalize(model string) string
	AcceptsPDF(model string) bool
}

// Runner holds the gateway and the configuration shared by all runners.
type Runner struct {
	gw      Gateway
	prompts *config.PromptsConfig
	temps   *config.TemperatureConfig
	retry   *config.RetryConfig
	critic  *config.CriticConfig

	minChapterWords int
	defaultTitle    string
}

// NewRunner wires the runners against a gateway and the loaded config.
func NewRunner(gw Gateway, cfg *config.Config) *Runner {
	r := &Runner{
		gw:      gw,
		prompts: cfg.Prompts,
		temps:   cfg.Temperature,
		retry:   cfg.Retry,
		critic:  cfg.Critic,
	}
	if cfg.Retry != nil {
		r.minChapterWords = cfg.Retry.ChapterGeneration.MinChapterLength
	}
	if r.minChapterWords <= 0 && cfg.Validation != nil {
		r.minChapterWords = cfg.Validation.MinChapterLength
	}
	if cfg.Prompts != nil {
		r.defaultTitle = cfg.Prompts.DefaultTitle
	}
	if r.defaultTitle == "" {
		r.defaultTitle = defaultDraftTitle
	}
	return r
}

// temperature returns the per-agent override, or nil for the class default.
func (r *Runner) temperature(agent string) *float64 {
	return r.temps.For(agent)
}

// phaseAttempts is the gateway attempt budget for one phase. Zero config
// means a single try.
func (r *Runner) phaseAttempts(phase string) int {
	if r.retry == nil {
		return 0
	}
	switch phase {
	case "questions":
		return r.retry.Questions.MaxRetries
	case "draft":
		return r.retry.Draft.MaxRetries
	case "outline":
		return r.retry.Outline.MaxRetries
	case "chapter":
		return r.retry.ChapterGeneration.MaxRetries
	}
	return 0
}

// render executes one prompt template over the runner's input view.
func render(name, tmpl string, data any) (string, error) {
	t, err := template.New(name).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s prompt template: %w", name, err)
	}
	var buf strings.Builder
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s prompt: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// formatForm renders the intake form as sorted key/value lines so the same
// form always produces the same prompt.
func formatForm(form map[string]any) string {
	if len(form) == 0 {
		return "(nessuna scheda compilata)"
	}
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "- %s: %v\n", k, form[k])
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatQA pairs each question with its answer, in question order.
// Unanswered questions are skipped.
func formatQA(questions []models.Question, answers map[string]string) string {
	var b strings.Builder
	for _, q := range questions {
		answer, ok := answers[fmt.Sprintf("%d", q.ID)]
		if !ok || strings.TrimSpace(answer) == "" {
			continue
		}
		fmt.Fprintf(&b, "D: %s\nR: %s\n\n", q.Text, strings.TrimSpace(answer))
	}
	if b.Len() == 0 {
		return "(nessuna risposta fornita)"
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatChapters lays out the previously written chapters in reading order,
// full content. This is the autoregressive context of the chapter runner.
func formatChapters(chapters []models.ChapterContent) string {
	var b strings.Builder
	for i, ch := range chapters {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "### Capitolo %d: %s\n\n%s", ch.SectionIndex+1, ch.Title, ch.Content)
	}
	return b.String()
}

func countWords(s string) int {
	return len(strings.Fields(s))
}
