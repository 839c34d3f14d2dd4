package agent

import (
	"context"
	"fmt"
	"testing"

	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestions(t *testing.T) {
	t.Run("plain JSON array", func(t *testing.T) {
		questions, err := ParseQuestions(`[
			{"id": 1, "text": "Chi è il protagonista?", "type": "text"},
			{"id": 2, "text": "Che tono preferisci?", "type": "multiple_choice", "options": ["cupo", "ironico"]}
		]`)
		require.NoError(t, err)
		require.Len(t, questions, 2)
		assert.Equal(t, models.Question{ID: 1, Text: "Chi è il protagonista?", Type: models.QuestionText}, questions[0])
		assert.Equal(t, models.QuestionMultipleChoice, questions[1].Type)
		assert.Equal(t, []string{"cupo", "ironico"}, questions[1].Options)
	})

	t.Run("fenced array", func(t *testing.T) {
		questions, err := ParseQuestions("```json\n[{\"text\": \"Che epoca?\", \"type\": \"text\"}]\n```")
		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, "Che epoca?", questions[0].Text)
	})

	t.Run("array buried in prose", func(t *testing.T) {
		questions, err := ParseQuestions(`Ecco le domande:
[{"text": "Dove si svolge?", "type": "text"}]
Spero siano utili!`)
		require.NoError(t, err)
		require.Len(t, questions, 1)
	})

	t.Run("ids are reassigned sequentially", func(t *testing.T) {
		questions, err := ParseQuestions(`[
			{"id": 7, "text": "Prima", "type": "text"},
			{"id": 3, "text": "Seconda", "type": "text"},
			{"text": "Terza", "type": "text"}
		]`)
		require.NoError(t, err)
		for i, q := range questions {
			assert.Equal(t, i+1, q.ID)
		}
	})

	t.Run("truncated past the cap", func(t *testing.T) {
		raw := "["
		for i := 0; i < 14; i++ {
			if i > 0 {
				raw += ","
			}
			raw += fmt.Sprintf(`{"text": "Domanda %d", "type": "text"}`, i)
		}
		raw += "]"

		questions, err := ParseQuestions(raw)
		require.NoError(t, err)
		assert.Len(t, questions, maxQuestions)
	})

	t.Run("choice question without options degrades to text", func(t *testing.T) {
		questions, err := ParseQuestions(`[{"text": "Tono?", "type": "multiple_choice"}]`)
		require.NoError(t, err)
		assert.Equal(t, models.QuestionText, questions[0].Type)
	})

	t.Run("rejects unknown question type", func(t *testing.T) {
		_, err := ParseQuestions(`[{"text": "Tono?", "type": "rating"}]`)
		assert.Error(t, err)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		_, err := ParseQuestions(`[{"text": "", "type": "text"}]`)
		assert.Error(t, err)
	})

	t.Run("rejects an object instead of an array", func(t *testing.T) {
		_, err := ParseQuestions(`{"questions": []}`)
		assert.Error(t, err)
	})

	t.Run("rejects prose with no array", func(t *testing.T) {
		_, err := ParseQuestions("Non posso generare domande.")
		assert.Error(t, err)
	})
}

func TestRunner_Questions(t *testing.T) {
	ctx := context.Background()

	t.Run("builds the prompt from the form", func(t *testing.T) {
		gw := &fakeGateway{text: `[{"text": "Chi è Marco?", "type": "text"}]`}
		r := newTestRunner(gw)

		questions, usage, err := r.Questions(ctx, QuestionsInput{
			Form:  map[string]any{"genere": "giallo", "protagonista": "Marco"},
			Model: "gemini-2.5-flash",
		})
		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, 1, questions[0].ID)
		assert.Equal(t, 10, usage.InputTokens)

		require.Len(t, gw.textReqs, 1)
		req := gw.textReqs[0]
		assert.Equal(t, "gemini-2.5-flash", req.Model)
		assert.Equal(t, "application/json", req.ResponseMIMEType)
		assert.Equal(t, 2, req.Attempts)
		assert.Contains(t, req.User, "- genere: giallo")
		assert.Contains(t, req.User, "- protagonista: Marco")
		assert.NotEmpty(t, req.System)
	})

	t.Run("gateway failure propagates", func(t *testing.T) {
		gw := &fakeGateway{fails: map[string]error{"gemini-2.5-flash": fmt.Errorf("quota")}}
		r := newTestRunner(gw)

		_, _, err := r.Questions(ctx, QuestionsInput{Model: "gemini-2.5-flash"})
		assert.ErrorContains(t, err, "quota")
	})

	t.Run("unparseable reply is an error", func(t *testing.T) {
		gw := &fakeGateway{text: "non sono riuscito a generare domande"}
		r := newTestRunner(gw)

		_, _, err := r.Questions(ctx, QuestionsInput{Model: "gemini-2.5-flash"})
		assert.ErrorContains(t, err, "failed to parse questions")
	})
}
