package agent

import (
	"context"
	"testing"

	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/llm"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/stretchr/testify/assert"
)

// fakeGateway scripts replies per model and records every request.
type fakeGateway struct {
	pdfOK   bool
	text    string
	replies map[string]string
	fails   map[string]error
	aliases map[string]string

	textReqs []llm.TextRequest
	mmReqs   []llm.MultimodalRequest
}

func (f *fakeGateway) reply(model string) (string, error) {
	if err := f.fails[model]; err != nil {
		return "", err
	}
	if text, ok := f.replies[model]; ok {
		return text, nil
	}
	return f.text, nil
}

func (f *fakeGateway) GenerateText(_ context.Context, req llm.TextRequest) (string, llm.Usage, error) {
	f.textReqs = append(f.textReqs, req)
	text, err := f.reply(req.Model)
	return text, llm.Usage{InputTokens: 10, OutputTokens: 20, Model: req.Model}, err
}

func (f *fakeGateway) GenerateMultimodal(_ context.Context, req llm.MultimodalRequest) (string, llm.Usage, error) {
	f.mmReqs = append(f.mmReqs, req)
	text, err := f.reply(req.Model)
	return text, llm.Usage{InputTokens: 30, OutputTokens: 40, Model: req.Model}, err
}

func (f *fakeGateway) Normalize(model string) string {
	if resolved, ok := f.aliases[model]; ok {
		return resolved
	}
	return model
}

func (f *fakeGateway) AcceptsPDF(string) bool { return f.pdfOK }

func newTestRunner(gw Gateway) *Runner {
	return NewRunner(gw, &config.Config{
		Retry: &config.RetryConfig{
			Questions:         config.RetryPolicy{MaxRetries: 2},
			Draft:             config.RetryPolicy{MaxRetries: 2},
			Outline:           config.RetryPolicy{MaxRetries: 2},
			ChapterGeneration: config.RetryPolicy{MaxRetries: 3, MinChapterLength: 5},
		},
		Critic: &config.CriticConfig{
			DefaultModel: "gemini-2.5-pro",
			MaxRetries:   2,
		},
	})
}

func TestFormatForm(t *testing.T) {
	t.Run("sorted key value lines", func(t *testing.T) {
		out := formatForm(map[string]any{
			"trama_iniziale": "un faro abbandonato",
			"genere":         "giallo",
			"capitoli":       5,
		})
		assert.Equal(t, "- capitoli: 5\n- genere: giallo\n- trama_iniziale: un faro abbandonato", out)
	})

	t.Run("empty form", func(t *testing.T) {
		assert.Equal(t, "(nessuna scheda compilata)", formatForm(nil))
	})
}

func TestFormatQA(t *testing.T) {
	questions := []models.Question{
		{ID: 1, Text: "Chi è il protagonista?", Type: models.QuestionText},
		{ID: 2, Text: "Che epoca?", Type: models.QuestionText},
		{ID: 3, Text: "Tono?", Type: models.QuestionText},
	}

	t.Run("pairs in question order, unanswered skipped", func(t *testing.T) {
		out := formatQA(questions, map[string]string{
			"3": "cupo",
			"1": "  Marco, un guardiano del faro ",
			"2": "   ",
		})
		assert.Equal(t, "D: Chi è il protagonista?\nR: Marco, un guardiano del faro\n\nD: Tono?\nR: cupo", out)
	})

	t.Run("no answers at all", func(t *testing.T) {
		assert.Equal(t, "(nessuna risposta fornita)", formatQA(questions, nil))
	})
}

func TestFormatChapters(t *testing.T) {
	out := formatChapters([]models.ChapterContent{
		{SectionIndex: 0, Title: "L'arrivo", Content: "Marco arrivò al faro."},
		{SectionIndex: 1, Title: "La tempesta", Content: "Il mare si gonfiò."},
	})
	assert.Equal(t, "### Capitolo 1: L'arrivo\n\nMarco arrivò al faro.\n\n### Capitolo 2: La tempesta\n\nIl mare si gonfiò.", out)
	assert.Empty(t, formatChapters(nil))
}

func TestNewRunner_Defaults(t *testing.T) {
	r := NewRunner(&fakeGateway{}, &config.Config{})
	assert.Equal(t, defaultDraftTitle, r.defaultTitle)
	assert.Zero(t, r.minChapterWords)

	r = NewRunner(&fakeGateway{}, &config.Config{
		Validation: &config.ValidationConfig{MinChapterLength: 150},
		Prompts:    &config.PromptsConfig{DefaultTitle: "Senza nome"},
	})
	assert.Equal(t, "Senza nome", r.defaultTitle)
	assert.Equal(t, 150, r.minChapterWords, "validation default applies when the retry policy has none")

	r = NewRunner(&fakeGateway{}, &config.Config{
		Retry:      &config.RetryConfig{ChapterGeneration: config.RetryPolicy{MinChapterLength: 300}},
		Validation: &config.ValidationConfig{MinChapterLength: 150},
	})
	assert.Equal(t, 300, r.minChapterWords, "retry policy wins over the validation default")
}
