package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/llm"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// maxQuestions caps how many clarifying questions one run may return.
// Longer model output is truncated, not rejected.
const maxQuestions = 10

// questionsSchema validates the model's JSON array before acceptance.
// IDs are reassigned sequentially after parsing, so the schema does not
// require them.
var questionsSchema = jsonschema.MustCompileString("questions.json", `{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["text", "type"],
		"properties": {
			"id": {"type": "integer"},
			"text": {"type": "string", "minLength": 1},
			"type": {"enum": ["text", "multiple_choice"]},
			"options": {"type": "array", "items": {"type": "string"}}
		}
	}
}`)

// QuestionsInput is everything the questions runner reads.
type QuestionsInput struct {
	Form  map[string]any
	Model string
}

type questionsView struct {
	Form         string
	MaxQuestions int
}

// Questions generates the clarifying questions for a fresh intake form.
func (r *Runner) Questions(ctx context.Context, in QuestionsInput) ([]models.Question, llm.Usage, error) {
	var configured config.PromptPair
	if r.prompts != nil {
		configured = r.prompts.Questions
	}
	pair := pairOrDefault(configured, questionsSystemDefault, questionsUserDefault)

	view := questionsView{Form: formatForm(in.Form), MaxQuestions: maxQuestions}
	system, err := render("questions-system", pair.System, view)
	if err != nil {
		return nil, llm.Usage{}, err
	}
	user, err := render("questions-user", pair.User, view)
	if err != nil {
		return nil, llm.Usage{}, err
	}

	raw, usage, err := r.gw.GenerateText(ctx, llm.TextRequest{
		System:           system,
		User:             user,
		Model:            in.Model,
		Temperature:      r.temperature("questions"),
		ResponseMIMEType: "application/json",
		Attempts:         r.phaseAttempts("questions"),
	})
	if err != nil {
		return nil, usage, err
	}

	questions, err := ParseQuestions(raw)
	if err != nil {
		return nil, usage, err
	}
	return questions, usage, nil
}

// ParseQuestions decodes and validates the model's question array. The raw
// output is tried as-is, then once more after tolerant re-extraction (code
// fences stripped, first [...] span).
func ParseQuestions(raw string) ([]models.Question, error) {
	candidate := strings.TrimSpace(raw)

	questions, firstErr := decodeQuestions(candidate)
	if firstErr == nil {
		return questions, nil
	}

	if extracted := extractArray(candidate); extracted != "" && extracted != candidate {
		if questions, err := decodeQuestions(extracted); err == nil {
			return questions, nil
		}
	}
	return nil, fmt.Errorf("failed to parse questions: %w", firstErr)
}

func decodeQuestions(candidate string) ([]models.Question, error) {
	var doc any
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		return nil, err
	}
	if err := questionsSchema.Validate(doc); err != nil {
		return nil, err
	}

	var questions []models.Question
	if err := json.Unmarshal([]byte(candidate), &questions); err != nil {
		return nil, err
	}
	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	for i := range questions {
		questions[i].ID = i + 1
		questions[i].Text = strings.TrimSpace(questions[i].Text)
		// A choice question without choices degrades to free text.
		if questions[i].Type == models.QuestionMultipleChoice && len(questions[i].Options) == 0 {
			questions[i].Type = models.QuestionText
		}
	}
	return questions, nil
}

// extractArray pulls the first [...] span out of surrounding prose or a
// markdown code fence.
func extractArray(s string) string {
	s = stripCodeFences(s)
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end < start {
		return ""
	}
	return strings.TrimSpace(s[start : end+1])
}

func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return trimmed
	}
	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
