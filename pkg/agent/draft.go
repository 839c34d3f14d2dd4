package agent

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/llm"
	"github.com/fabula-ai/fabula/pkg/models"
)

// DraftInput is everything the draft runner reads. Previous and Feedback
// are set on revisions only.
type DraftInput struct {
	Form      map[string]any
	Questions []models.Question
	Answers   map[string]string
	Previous  *models.Draft
	Feedback  string
	Model     string
}

// DraftResult is the parsed plot draft.
type DraftResult struct {
	Title      string
	Text       string
	NewVersion int
}

type draftView struct {
	Form            string
	QA              string
	PreviousDraft   string
	PreviousVersion int
	Feedback        string
}

// Draft generates or revises the plot draft.
func (r *Runner) Draft(ctx context.Context, in DraftInput) (DraftResult, llm.Usage, error) {
	var configured config.PromptPair
	if r.prompts != nil {
		configured = r.prompts.Draft
	}
	pair := pairOrDefault(configured, draftSystemDefault, draftUserDefault)

	view := draftView{
		Form: formatForm(in.Form),
		QA:   formatQA(in.Questions, in.Answers),
	}
	version := 0
	if in.Previous != nil {
		view.PreviousDraft = in.Previous.CurrentText
		view.PreviousVersion = in.Previous.CurrentVersion
		view.Feedback = strings.TrimSpace(in.Feedback)
		version = in.Previous.CurrentVersion
	}

	system, err := render("draft-system", pair.System, view)
	if err != nil {
		return DraftResult{}, llm.Usage{}, err
	}
	user, err := render("draft-user", pair.User, view)
	if err != nil {
		return DraftResult{}, llm.Usage{}, err
	}

	raw, usage, err := r.gw.GenerateText(ctx, llm.TextRequest{
		System:      system,
		User:        user,
		Model:       in.Model,
		Temperature: r.temperature("draft"),
		Attempts:    r.phaseAttempts("draft"),
	})
	if err != nil {
		return DraftResult{}, usage, err
	}

	title, text := ParseDraft(raw, r.defaultTitle)
	if text == "" {
		return DraftResult{}, usage, fmt.Errorf("draft generation returned no text")
	}
	return DraftResult{Title: title, Text: text, NewVersion: version + 1}, usage, nil
}

var (
	titoloRe = regexp.MustCompile(`(?im)^[#*\s]*TITOLO\s*:[*\s]*(.+)$`)
	tramaRe  = regexp.MustCompile(`(?im)^[#*\s]*TRAMA\s*:[*\s]*`)
	h1Re     = regexp.MustCompile(`(?m)^#\s+(.+)$`)
)

// ParseDraft splits the model output into title and plot text. Precedence:
// an explicit TITOLO:/TRAMA: header pair, then the first Markdown H1, then
// the whole output under the fallback title.
func ParseDraft(raw, fallbackTitle string) (title, text string) {
	raw = strings.TrimSpace(raw)

	titleMatch := titoloRe.FindStringSubmatch(raw)
	tramaLoc := tramaRe.FindStringIndex(raw)
	if titleMatch != nil && tramaLoc != nil {
		title = cleanTitle(titleMatch[1])
		text = strings.TrimSpace(raw[tramaLoc[1]:])
		if title != "" && text != "" {
			return title, text
		}
	}

	if loc := h1Re.FindStringSubmatchIndex(raw); loc != nil {
		title = cleanTitle(raw[loc[2]:loc[3]])
		text = strings.TrimSpace(raw[:loc[0]] + raw[loc[1]:])
		if title != "" && text != "" {
			return title, text
		}
	}

	return fallbackTitle, raw
}

// cleanTitle strips markdown emphasis and surrounding quotes off a title.
func cleanTitle(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `*_"'«»`)
	return strings.TrimSpace(s)
}
