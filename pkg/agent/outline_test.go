package agent

import (
	"context"
	"testing"

	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSections(t *testing.T) {
	t.Run("H2 headings are the chapters", func(t *testing.T) {
		sections := ParseSections(`# Il faro di Punta Scura

## Capitolo 1: L'arrivo
Marco raggiunge il faro.

## Capitolo 2: La tempesta
Il mare si gonfia.

## Capitolo 3: Il relitto
Una scoperta sotto la superficie.`)
		require.Len(t, sections, 3)
		assert.Equal(t, "Capitolo 1: L'arrivo", sections[0].Title)
		assert.Equal(t, "Capitolo 3: Il relitto", sections[2].Title)
	})

	t.Run("part headings switch chapters to H3", func(t *testing.T) {
		sections := ParseSections(`# Il romanzo

## Parte Prima: La quiete

### L'arrivo
### La tempesta

## Parte Seconda: Il ritorno

### Il relitto`)
		require.Len(t, sections, 3)
		assert.Equal(t, "L'arrivo", sections[0].Title)
		assert.Equal(t, "Il relitto", sections[2].Title)
	})

	t.Run("english part headings too", func(t *testing.T) {
		sections := ParseSections("## Part One\n### First\n### Second")
		require.Len(t, sections, 2)
		assert.Equal(t, "First", sections[0].Title)
	})

	t.Run("union fallback when the preferred level is empty", func(t *testing.T) {
		// No part headings and no H2: H3s are picked up by the union.
		sections := ParseSections("# Libro\n### Uno\n### Due")
		require.Len(t, sections, 2)
		assert.Equal(t, "Uno", sections[0].Title)
	})

	t.Run("anything below H1 as a last resort", func(t *testing.T) {
		sections := ParseSections("# Libro\n#### Uno\n#### Due")
		require.Len(t, sections, 2)
	})

	t.Run("decorated headings are cleaned", func(t *testing.T) {
		sections := ParseSections("## **L'arrivo** ##\n## \"La tempesta\"")
		require.Len(t, sections, 2)
		assert.Equal(t, "L'arrivo", sections[0].Title)
		assert.Equal(t, "La tempesta", sections[1].Title)
	})

	t.Run("plain prose yields nothing", func(t *testing.T) {
		assert.Empty(t, ParseSections("Nessuna intestazione qui."))
		assert.Empty(t, ParseSections("# Solo il titolo del libro"))
	})

	t.Run("a chapter named Partenza is not a part heading", func(t *testing.T) {
		sections := ParseSections("## La partenza\n## Il viaggio")
		require.Len(t, sections, 2)
		assert.Equal(t, "La partenza", sections[0].Title)
	})
}

func TestRunner_Outline(t *testing.T) {
	ctx := context.Background()

	t.Run("returns markdown and parsed sections", func(t *testing.T) {
		gw := &fakeGateway{text: "## L'arrivo\n## La tempesta"}
		r := newTestRunner(gw)

		result, usage, err := r.Outline(ctx, OutlineInput{
			Form: map[string]any{"genere": "giallo"},
			Draft: models.Draft{
				CurrentTitle: "Il faro",
				CurrentText:  "La trama validata.",
			},
			Model: "gemini-2.5-pro",
		})
		require.NoError(t, err)
		assert.Equal(t, "## L'arrivo\n## La tempesta", result.Markdown)
		require.Len(t, result.Sections, 2)
		assert.Equal(t, "La tempesta", result.Sections[1].Title)
		assert.Equal(t, 20, usage.OutputTokens)

		req := gw.textReqs[0]
		assert.Contains(t, req.User, "La trama validata.")
		assert.Contains(t, req.User, "Il faro")
	})

	t.Run("outline without headings is an error", func(t *testing.T) {
		gw := &fakeGateway{text: "Capitolo uno, poi capitolo due."}
		r := newTestRunner(gw)

		_, _, err := r.Outline(ctx, OutlineInput{Model: "gemini-2.5-pro"})
		assert.ErrorContains(t, err, "no chapter headings")
	})
}
