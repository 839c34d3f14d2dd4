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

// Section is one chapter entry parsed from the outline headings.
type Section struct {
	Title string `json:"title"`
}

// OutlineInput is everything the outline runner reads.
type OutlineInput struct {
	Form      map[string]any
	Questions []models.Question
	Answers   map[string]string
	Draft     models.Draft
	Model     string
}

// OutlineResult is the generated outline plus its parsed chapter list.
type OutlineResult struct {
	Markdown string
	Sections []Section
}

type outlineView struct {
	Form  string
	QA    string
	Title string
	Draft string
}

// Outline generates the chapter plan from the validated draft.
func (r *Runner) Outline(ctx context.Context, in OutlineInput) (OutlineResult, llm.Usage, error) {
	var configured config.PromptPair
	if r.prompts != nil {
		configured = r.prompts.Outline
	}
	pair := pairOrDefault(configured, outlineSystemDefault, outlineUserDefault)

	view := outlineView{
		Form:  formatForm(in.Form),
		QA:    formatQA(in.Questions, in.Answers),
		Title: in.Draft.CurrentTitle,
		Draft: in.Draft.CurrentText,
	}
	system, err := render("outline-system", pair.System, view)
	if err != nil {
		return OutlineResult{}, llm.Usage{}, err
	}
	user, err := render("outline-user", pair.User, view)
	if err != nil {
		return OutlineResult{}, llm.Usage{}, err
	}

	raw, usage, err := r.gw.GenerateText(ctx, llm.TextRequest{
		System:      system,
		User:        user,
		Model:       in.Model,
		Temperature: r.temperature("outline"),
		Attempts:    r.phaseAttempts("outline"),
	})
	if err != nil {
		return OutlineResult{}, usage, err
	}

	markdown := strings.TrimSpace(raw)
	sections := ParseSections(markdown)
	if len(sections) == 0 {
		return OutlineResult{}, usage, fmt.Errorf("outline has no chapter headings")
	}
	return OutlineResult{Markdown: markdown, Sections: sections}, usage, nil
}

var (
	headingRe = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	parteRe   = regexp.MustCompile(`(?i)^\W*part[ei]?\b`)
)

type heading struct {
	level int
	title string
}

// ParseSections extracts the ordered chapter list from outline Markdown.
// When the outline groups chapters under part headings ("## Parte ..."),
// the chapters are the H3s; otherwise the H2s. An outline using neither
// falls back to the union of H2 and H3, and last to anything below H1.
func ParseSections(markdown string) []Section {
	var headings []heading
	for _, m := range headingRe.FindAllStringSubmatch(markdown, -1) {
		title := cleanTitle(strings.TrimRight(m[2], "# "))
		if title == "" {
			continue
		}
		headings = append(headings, heading{level: len(m[1]), title: title})
	}

	hasParts := false
	for _, h := range headings {
		if h.level == 2 && parteRe.MatchString(h.title) {
			hasParts = true
			break
		}
	}

	pick := func(keep func(heading) bool) []Section {
		var sections []Section
		for _, h := range headings {
			if keep(h) {
				sections = append(sections, Section{Title: h.title})
			}
		}
		return sections
	}

	if hasParts {
		if s := pick(func(h heading) bool { return h.level == 3 }); len(s) > 0 {
			return s
		}
	} else {
		if s := pick(func(h heading) bool { return h.level == 2 }); len(s) > 0 {
			return s
		}
	}
	if s := pick(func(h heading) bool { return h.level == 2 || h.level == 3 }); len(s) > 0 {
		return s
	}
	return pick(func(h heading) bool { return h.level > 1 })
}
