package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCritique(t *testing.T) {
	t.Run("plain JSON", func(t *testing.T) {
		critique, err := ParseCritique(`{
			"score": 7.5,
			"pros": ["ritmo serrato", "ambientazione vivida"],
			"cons": ["finale frettoloso"],
			"summary": "Un giallo solido con qualche sbavatura."
		}`)
		require.NoError(t, err)
		assert.Equal(t, 7.5, critique.Score)
		assert.Equal(t, []string{"ritmo serrato", "ambientazione vivida"}, critique.Pros)
		assert.Equal(t, []string{"finale frettoloso"}, critique.Cons)
		assert.Equal(t, "Un giallo solido con qualche sbavatura.", critique.Summary)
	})

	t.Run("fenced JSON", func(t *testing.T) {
		critique, err := ParseCritique("```json\n{\"score\": 6, \"summary\": \"Discreto.\"}\n```")
		require.NoError(t, err)
		assert.Equal(t, 6.0, critique.Score)
		assert.Equal(t, "Discreto.", critique.Summary)
	})

	t.Run("JSON buried in prose", func(t *testing.T) {
		critique, err := ParseCritique(`Ecco la mia recensione:
{"score": 8, "pros": ["stile"], "cons": [], "summary": "Notevole."}
Grazie per la lettura.`)
		require.NoError(t, err)
		assert.Equal(t, 8.0, critique.Score)
	})

	t.Run("italian keys", func(t *testing.T) {
		critique, err := ParseCritique(`{"voto": 9, "pregi": ["lingua ricca"], "difetti": ["lento"], "riassunto": "Quasi un classico."}`)
		require.NoError(t, err)
		assert.Equal(t, 9.0, critique.Score)
		assert.Equal(t, []string{"lingua ricca"}, critique.Pros)
		assert.Equal(t, []string{"lento"}, critique.Cons)
		assert.Equal(t, "Quasi un classico.", critique.Summary)
	})

	t.Run("prose with labeled score and sections", func(t *testing.T) {
		critique, err := ParseCritique(`Recensione del libro.

Voto: 8,5

**Pregi:**
- prosa elegante
- personaggi credibili

**Difetti:**
- ritmo lento nella parte centrale

**Riassunto:**
Un esordio convincente nonostante qualche lungaggine.`)
		require.NoError(t, err)
		assert.Equal(t, 8.5, critique.Score)
		assert.Equal(t, []string{"prosa elegante", "personaggi credibili"}, critique.Pros)
		assert.Equal(t, []string{"ritmo lento nella parte centrale"}, critique.Cons)
		assert.Equal(t, "Un esordio convincente nonostante qualche lungaggine.", critique.Summary)
	})

	t.Run("score as a fraction of ten", func(t *testing.T) {
		critique, err := ParseCritique("Nel complesso darei a questo romanzo un 7/10 pieno.")
		require.NoError(t, err)
		assert.Equal(t, 7.0, critique.Score)
	})

	t.Run("JSON score out of range falls through and fails", func(t *testing.T) {
		_, err := ParseCritique(`{"score": 85, "summary": "percentuale, non decimi"}`)
		assert.ErrorContains(t, err, "no score")
	})

	t.Run("no score anywhere", func(t *testing.T) {
		_, err := ParseCritique("Un libro interessante, ma non saprei dare un giudizio numerico.")
		assert.ErrorContains(t, err, "no score")
	})

	t.Run("empty output", func(t *testing.T) {
		_, err := ParseCritique("   ")
		assert.ErrorContains(t, err, "empty critique")
	})
}

func criticTestConfig() *config.Config {
	return &config.Config{
		Critic: &config.CriticConfig{
			DefaultModel:  "gemini-2.5-pro",
			FallbackModel: "gpt-4o",
			MaxRetries:    2,
		},
	}
}

func TestRunner_Critique(t *testing.T) {
	ctx := context.Background()
	pdf := []byte("%PDF-1.7 finto")
	reply := `{"score": 8, "pros": ["stile"], "cons": ["ritmo"], "summary": "Buono."}`

	t.Run("multimodal path sends the PDF", func(t *testing.T) {
		gw := &fakeGateway{pdfOK: true, text: reply}
		r := NewRunner(gw, criticTestConfig())

		critique, usage, err := r.Critique(ctx, CritiqueInput{PDF: pdf, Title: "Il faro", Author: "Anna Rossi"})
		require.NoError(t, err)
		assert.Equal(t, 8.0, critique.Score)
		assert.Equal(t, "gemini-2.5-pro", critique.Model)
		assert.False(t, critique.CreatedAt.IsZero())
		assert.Equal(t, 30, usage.InputTokens)

		require.Len(t, gw.mmReqs, 1)
		req := gw.mmReqs[0]
		require.Len(t, req.Parts, 1)
		assert.Equal(t, "application/pdf", req.Parts[0].MIME)
		assert.Equal(t, pdf, req.Parts[0].Data)
		assert.Equal(t, "application/json", req.ResponseMIMEType)
		assert.Equal(t, 2, req.Attempts)
		assert.Contains(t, req.User, "Il faro")
		assert.Contains(t, req.User, "Anna Rossi")
		assert.Empty(t, gw.textReqs)
	})

	t.Run("fallback model rescues a failed critique", func(t *testing.T) {
		gw := &fakeGateway{
			pdfOK:   true,
			replies: map[string]string{"gpt-4o": reply},
			fails:   map[string]error{"gemini-2.5-pro": errors.New("overloaded")},
		}
		r := NewRunner(gw, criticTestConfig())

		critique, usage, err := r.Critique(ctx, CritiqueInput{PDF: pdf, Title: "Il faro"})
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o", critique.Model)
		assert.Len(t, gw.mmReqs, 2)
		assert.Equal(t, 60, usage.InputTokens, "both calls are accounted")
	})

	t.Run("no fallback configured returns the first error", func(t *testing.T) {
		gw := &fakeGateway{pdfOK: true, fails: map[string]error{"gemini-2.5-pro": errors.New("overloaded")}}
		cfg := criticTestConfig()
		cfg.Critic.FallbackModel = ""
		r := NewRunner(gw, cfg)

		_, _, err := r.Critique(ctx, CritiqueInput{PDF: pdf})
		assert.ErrorContains(t, err, "overloaded")
		assert.Len(t, gw.mmReqs, 1)
	})

	t.Run("fallback aliasing to the same model is skipped", func(t *testing.T) {
		gw := &fakeGateway{
			pdfOK:   true,
			aliases: map[string]string{"pro": "gemini-2.5-pro"},
			fails:   map[string]error{"gemini-2.5-pro": errors.New("overloaded")},
		}
		cfg := criticTestConfig()
		cfg.Critic.FallbackModel = "pro"
		r := NewRunner(gw, cfg)

		_, _, err := r.Critique(ctx, CritiqueInput{PDF: pdf})
		assert.ErrorContains(t, err, "overloaded")
		assert.Len(t, gw.mmReqs, 1)
	})

	t.Run("text path fails on an unreadable PDF", func(t *testing.T) {
		gw := &fakeGateway{pdfOK: false, text: reply}
		cfg := criticTestConfig()
		cfg.Critic.FallbackModel = ""
		r := NewRunner(gw, cfg)

		_, _, err := r.Critique(ctx, CritiqueInput{PDF: []byte("non è un pdf"), Title: "Il faro"})
		assert.ErrorContains(t, err, "failed to extract book text")
		assert.Empty(t, gw.mmReqs)
		assert.Empty(t, gw.textReqs)
	})

	t.Run("unparseable critique is never faked", func(t *testing.T) {
		gw := &fakeGateway{pdfOK: true, text: "Bellissimo libro!"}
		cfg := criticTestConfig()
		cfg.Critic.FallbackModel = ""
		r := NewRunner(gw, cfg)

		_, _, err := r.Critique(ctx, CritiqueInput{PDF: pdf})
		assert.ErrorContains(t, err, "no score")
	})

	t.Run("missing configuration", func(t *testing.T) {
		r := NewRunner(&fakeGateway{}, &config.Config{})

		_, _, err := r.Critique(ctx, CritiqueInput{PDF: pdf})
		assert.ErrorContains(t, err, "critic model not configured")
	})
}
