package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/llm"
	"github.com/fabula-ai/fabula/pkg/models"
)

// CritiqueInput is the finished book handed to the critic.
type CritiqueInput struct {
	PDF    []byte
	Title  string
	Author string
}

type critiqueView struct {
	Title  string
	Author string
}

// Critique reviews the rendered book. Models that take PDFs get the raw
// bytes as a multimodal part; the others get the extracted text inline.
// On failure the configured fallback model is tried once, even across
// provider families.
func (r *Runner) Critique(ctx context.Context, in CritiqueInput) (models.Critique, llm.Usage, error) {
	if r.critic == nil || r.critic.DefaultModel == "" {
		return models.Critique{}, llm.Usage{}, fmt.Errorf("critic model not configured")
	}

	critique, usage, err := r.critiqueOn(ctx, r.critic.DefaultModel, in)
	if err == nil {
		return critique, usage, nil
	}

	fallback := r.critic.FallbackModel
	if fallback == "" || r.gw.Normalize(fallback) == r.gw.Normalize(r.critic.DefaultModel) {
		return models.Critique{}, usage, err
	}
	slog.Warn("Critique failed on primary model, trying fallback",
		"model", r.critic.DefaultModel,
		"fallback", fallback,
		"error", err)

	critique, fbUsage, fbErr := r.critiqueOn(ctx, fallback, in)
	// Both calls burned tokens; report them together under the last model.
	fbUsage.InputTokens += usage.InputTokens
	fbUsage.OutputTokens += usage.OutputTokens
	if fbErr != nil {
		return models.Critique{}, fbUsage, fbErr
	}
	return critique, fbUsage, nil
}

func (r *Runner) critiqueOn(ctx context.Context, model string, in CritiqueInput) (models.Critique, llm.Usage, error) {
	model = r.gw.Normalize(model)

	pair := pairOrDefault(
		config.PromptPair{System: r.critic.SystemPrompt, User: r.critic.UserPrompt},
		criticSystemDefault, criticUserDefault)

	view := critiqueView{Title: in.Title, Author: in.Author}
	system, err := render("critic-system", pair.System, view)
	if err != nil {
		return models.Critique{}, llm.Usage{}, err
	}
	user, err := render("critic-user", pair.User, view)
	if err != nil {
		return models.Critique{}, llm.Usage{}, err
	}

	mime := r.critic.ResponseMIMEType
	if mime == "" {
		mime = "application/json"
	}
	temperature := r.critic.Temperature
	if temperature == nil {
		temperature = r.temperature("critic")
	}

	var raw string
	var usage llm.Usage
	if r.gw.AcceptsPDF(model) {
		raw, usage, err = r.gw.GenerateMultimodal(ctx, llm.MultimodalRequest{
			System:           system,
			User:             user,
			Parts:            []llm.Part{{MIME: "application/pdf", Data: in.PDF}},
			Model:            model,
			Temperature:      temperature,
			ResponseMIMEType: mime,
			Attempts:         r.critic.MaxRetries,
		})
	} else {
		text, exErr := llm.ExtractTextFromPDF(in.PDF, llm.DefaultPDFTextCap)
		if exErr != nil {
			return models.Critique{}, llm.Usage{}, fmt.Errorf("failed to extract book text for critique: %w", exErr)
		}
		raw, usage, err = r.gw.GenerateText(ctx, llm.TextRequest{
			System:           system,
			User:             user + "\n\nTesto del libro:\n\n" + text,
			Model:            model,
			Temperature:      temperature,
			ResponseMIMEType: mime,
			Attempts:         r.critic.MaxRetries,
		})
	}
	if err != nil {
		return models.Critique{}, usage, err
	}

	critique, err := ParseCritique(raw)
	if err != nil {
		return models.Critique{}, usage, err
	}
	critique.Model = model
	critique.CreatedAt = time.Now().UTC()
	return critique, usage, nil
}

// critiquePayload accepts both the requested English keys and the Italian
// ones some models answer with anyway.
type critiquePayload struct {
	Score     *float64 `json:"score"`
	Voto      *float64 `json:"voto"`
	Punteggio *float64 `json:"punteggio"`
	Pros      []string `json:"pros"`
	Pregi     []string `json:"pregi"`
	Cons      []string `json:"cons"`
	Difetti   []string `json:"difetti"`
	Summary   string   `json:"summary"`
	Riassunto string   `json:"riassunto"`
}

// ParseCritique decodes the critic's output. Candidates are tried in order:
// the raw text as JSON, the fenced block, the first {...} span; when no
// candidate is valid JSON the prose heuristics take over. A result without
// a score in [0,10] is never fabricated: it is an error.
func ParseCritique(raw string) (models.Critique, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.Critique{}, fmt.Errorf("empty critique output")
	}

	seen := map[string]bool{}
	for _, candidate := range []string{raw, stripCodeFences(raw), extractObject(raw)} {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" || seen[candidate] {
			continue
		}
		seen[candidate] = true
		if critique, ok := decodeCritique(candidate); ok {
			return critique, nil
		}
	}
	return critiqueFromProse(raw)
}

func decodeCritique(candidate string) (models.Critique, bool) {
	var payload critiquePayload
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return models.Critique{}, false
	}

	score := payload.Score
	if score == nil {
		score = payload.Voto
	}
	if score == nil {
		score = payload.Punteggio
	}
	if score == nil || *score < 0 || *score > 10 {
		return models.Critique{}, false
	}

	critique := models.Critique{
		Score:   *score,
		Pros:    payload.Pros,
		Cons:    payload.Cons,
		Summary: strings.TrimSpace(payload.Summary),
	}
	if len(critique.Pros) == 0 {
		critique.Pros = payload.Pregi
	}
	if len(critique.Cons) == 0 {
		critique.Cons = payload.Difetti
	}
	if critique.Summary == "" {
		critique.Summary = strings.TrimSpace(payload.Riassunto)
	}
	return critique, true
}

// extractObject pulls the first {...} span out of surrounding prose.
func extractObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return ""
	}
	return s[start : end+1]
}

var (
	labeledScoreRe = regexp.MustCompile(`(?i)(?:score|voto|punteggio)\s*[:=]?\s*\**\s*(\d+(?:[.,]\d+)?)`)
	outOfTenRe     = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*/\s*10\b`)
	bulletRe       = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s+`)
)

var sectionHeadings = []struct {
	name string
	keys []string
}{
	{"pros", []string{"pros", "pregi", "punti di forza", "aspetti positivi"}},
	{"cons", []string{"cons", "difetti", "punti deboli", "aspetti negativi"}},
	{"summary", []string{"summary", "riassunto", "giudizio", "commento"}},
}

// critiqueFromProse is the last-resort parse: a numeric score by regex plus
// pros/cons/summary collected under recognizable section headings.
func critiqueFromProse(raw string) (models.Critique, error) {
	score, ok := findScore(raw)
	if !ok {
		return models.Critique{}, fmt.Errorf("no score found in critique output")
	}

	critique := models.Critique{Score: score}
	var summary []string
	section := ""
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if name := headingName(line); name != "" {
			section = name
			continue
		}
		switch section {
		case "pros":
			if bulletRe.MatchString(line) {
				critique.Pros = append(critique.Pros, cleanBullet(line))
			}
		case "cons":
			if bulletRe.MatchString(line) {
				critique.Cons = append(critique.Cons, cleanBullet(line))
			}
		case "summary":
			summary = append(summary, line)
		}
	}
	critique.Summary = strings.Join(summary, " ")
	return critique, nil
}

func findScore(raw string) (float64, bool) {
	for _, re := range []*regexp.Regexp{labeledScoreRe, outOfTenRe} {
		if m := re.FindStringSubmatch(raw); m != nil {
			v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
			if err == nil && v >= 0 && v <= 10 {
				return v, true
			}
		}
	}
	return 0, false
}

// headingName classifies a section heading line. Plain prose that merely
// starts with a keyword ("prospettiva...") is not a heading: the line must
// be heading-marked, end with a colon, or equal the keyword outright.
func headingName(line string) string {
	marked := strings.HasPrefix(line, "#") || strings.HasPrefix(line, "**")
	normalized := strings.ToLower(cleanTitle(strings.TrimLeft(line, "# ")))
	hadColon := strings.HasSuffix(normalized, ":")
	normalized = strings.TrimSpace(strings.TrimSuffix(normalized, ":"))

	for _, section := range sectionHeadings {
		for _, h := range section.keys {
			if normalized == h || (marked || hadColon) && strings.HasPrefix(normalized, h) {
				return section.name
			}
		}
	}
	return ""
}

func cleanBullet(line string) string {
	return strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
}
