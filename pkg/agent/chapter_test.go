package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanChapter(t *testing.T) {
	prose := "La nebbia salì dal mare prima dell'alba."

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"clean prose untouched", prose, prose},
		{"markdown heading stripped", "## La tempesta\n\n" + prose, prose},
		{"h1 book title stripped", "# Il faro di Punta Scura\n\n" + prose, prose},
		{"capitolo label stripped", "Capitolo 2: La tempesta\n\n" + prose, prose},
		{"chapter label stripped", "Chapter 2 - La tempesta\n" + prose, prose},
		{"bare label stripped", "Capitolo 2\n\n" + prose, prose},
		{"bold section title stripped", "**La tempesta**\n\n" + prose, prose},
		{"stacked headings stripped", "# Il faro\n## Capitolo 2: La tempesta\nLa tempesta\n\n" + prose, prose},
		{"prose mentioning a chapter is kept", "Capitolo 2 era il nome che i vecchi davano alla scogliera. " + prose,
			"Capitolo 2 era il nome che i vecchi davano alla scogliera. " + prose},
		{"only a heading leaves nothing", "## La tempesta", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanChapter(tt.raw, "La tempesta"))
		})
	}
}

func TestRunner_Chapter(t *testing.T) {
	ctx := context.Background()

	input := ChapterInput{
		Form:    map[string]any{"genere": "giallo"},
		Draft:   models.Draft{CurrentTitle: "Il faro", CurrentText: "La trama."},
		Outline: "## L'arrivo\n## La tempesta\n## Il relitto",
		Previous: []models.ChapterContent{
			{SectionIndex: 0, Title: "L'arrivo", Content: "Marco arrivò al faro con la corriera del mattino."},
		},
		SectionIndex:  1,
		SectionTitle:  "La tempesta",
		TotalSections: 3,
		Model:         "gemini-2.5-pro",
	}

	t.Run("autoregressive prompt carries every prior chapter", func(t *testing.T) {
		gw := &fakeGateway{text: "La nebbia salì dal mare prima dell'alba e il faro restò cieco."}
		r := newTestRunner(gw)

		prose, usage, err := r.Chapter(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "La nebbia salì dal mare prima dell'alba e il faro restò cieco.", prose)
		assert.Equal(t, "gemini-2.5-pro", usage.Model)

		req := gw.textReqs[0]
		assert.Contains(t, req.User, "Marco arrivò al faro con la corriera del mattino.", "previous chapters ride along in full")
		assert.Contains(t, req.User, "capitolo 2 di 3")
		assert.Contains(t, req.User, "La tempesta")
		assert.Contains(t, req.User, "## Il relitto", "the whole outline is in the prompt")
		assert.Equal(t, 3, req.Attempts)
	})

	t.Run("leaked heading is removed before the length check", func(t *testing.T) {
		gw := &fakeGateway{text: "## La tempesta\n\nIl vento piegava le antenne del faro quella notte."}
		r := newTestRunner(gw)

		prose, _, err := r.Chapter(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "Il vento piegava le antenne del faro quella notte.", prose)
	})

	t.Run("short chapter is a typed failure", func(t *testing.T) {
		gw := &fakeGateway{text: "Troppo corto."}
		r := newTestRunner(gw)

		_, _, err := r.Chapter(ctx, input)
		var tooShort *ChapterTooShortError
		require.ErrorAs(t, err, &tooShort)
		assert.Equal(t, 2, tooShort.Words)
		assert.Equal(t, 5, tooShort.MinWords)
		assert.Contains(t, err.Error(), "chapter too short")
	})

	t.Run("no minimum configured accepts any length", func(t *testing.T) {
		gw := &fakeGateway{text: "Brevissimo."}
		r := NewRunner(gw, &config.Config{})

		prose, _, err := r.Chapter(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "Brevissimo.", prose)
	})

	t.Run("heading-only reply is an error", func(t *testing.T) {
		gw := &fakeGateway{text: "## La tempesta"}
		r := newTestRunner(gw)

		_, _, err := r.Chapter(ctx, input)
		assert.ErrorContains(t, err, "no text")
	})
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, countWords(""))
	assert.Equal(t, 0, countWords("   \n\t"))
	assert.Equal(t, 5, countWords("uno due  tre\nquattro\tcinque"))
	assert.Equal(t, 3, countWords(strings.Repeat("parola ", 3)))
}
