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

// ChapterInput is everything the chapter runner reads. Previous MUST hold
// all finished chapters before SectionIndex, in order: chapter k is always
// generated with chapters [0..k) as context.
type ChapterInput struct {
	Form          map[string]any
	Questions     []models.Question
	Answers       map[string]string
	Draft         models.Draft
	Outline       string
	SectionIndex  int
	SectionTitle  string
	TotalSections int
	Previous      []models.ChapterContent
	Model         string
}

// ChapterTooShortError reports a generated chapter below the configured
// minimum word count. The caller may retry the generation.
type ChapterTooShortError struct {
	Words    int
	MinWords int
}

func (e *ChapterTooShortError) Error() string {
	return fmt.Sprintf("chapter too short: %d words, need at least %d", e.Words, e.MinWords)
}

type chapterView struct {
	Form             string
	QA               string
	Title            string
	Draft            string
	Outline          string
	PreviousChapters string
	SectionTitle     string
	ChapterNumber    int
	TotalChapters    int
	MinWords         int
}

// Chapter generates the prose of one chapter.
func (r *Runner) Chapter(ctx context.Context, in ChapterInput) (string, llm.Usage, error) {
	var configured config.PromptPair
	if r.prompts != nil {
		configured = r.prompts.Chapter
	}
	pair := pairOrDefault(configured, chapterSystemDefault, chapterUserDefault)

	view := chapterView{
		Form:             formatForm(in.Form),
		QA:               formatQA(in.Questions, in.Answers),
		Title:            in.Draft.CurrentTitle,
		Draft:            in.Draft.CurrentText,
		Outline:          in.Outline,
		PreviousChapters: formatChapters(in.Previous),
		SectionTitle:     in.SectionTitle,
		ChapterNumber:    in.SectionIndex + 1,
		TotalChapters:    in.TotalSections,
		MinWords:         r.minChapterWords,
	}
	system, err := render("chapter-system", pair.System, view)
	if err != nil {
		return "", llm.Usage{}, err
	}
	user, err := render("chapter-user", pair.User, view)
	if err != nil {
		return "", llm.Usage{}, err
	}

	raw, usage, err := r.gw.GenerateText(ctx, llm.TextRequest{
		System:      system,
		User:        user,
		Model:       in.Model,
		Temperature: r.temperature("chapter"),
		Attempts:    r.phaseAttempts("chapter"),
	})
	if err != nil {
		return "", usage, err
	}

	prose := CleanChapter(raw, in.SectionTitle)
	if prose == "" {
		return "", usage, fmt.Errorf("chapter generation returned no text")
	}
	if words := countWords(prose); r.minChapterWords > 0 && words < r.minChapterWords {
		return "", usage, &ChapterTooShortError{Words: words, MinWords: r.minChapterWords}
	}
	return prose, usage, nil
}

var chapterLabelRe = regexp.MustCompile(`(?i)^(capitolo|chapter)\s+\d+\s*[:.\-]?\s*`)

// CleanChapter strips heading lines the model leaked at the top of the
// chapter body: Markdown headings, "Capitolo N:" labels, and repeats of the
// section title. The PDF renderer adds the real chapter heading itself.
func CleanChapter(raw, sectionTitle string) string {
	text := strings.TrimSpace(raw)
	for text != "" {
		line, rest, found := strings.Cut(text, "\n")
		if !isLeakedHeading(line, sectionTitle) {
			break
		}
		if !found {
			return ""
		}
		text = strings.TrimSpace(rest)
	}
	return text
}

func isLeakedHeading(line, sectionTitle string) bool {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "#") {
		return true
	}
	title := cleanTitle(line)
	if remainder := chapterLabelRe.ReplaceAllString(title, ""); remainder != title {
		// A "Capitolo N" label is a heading when nothing but the section
		// title (or nothing at all) follows it.
		remainder = cleanTitle(remainder)
		return remainder == "" || strings.EqualFold(remainder, strings.TrimSpace(sectionTitle))
	}
	return sectionTitle != "" && strings.EqualFold(title, strings.TrimSpace(sectionTitle))
}
