package render

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabula-ai/fabula/pkg/llm"
	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/fabula-ai/fabula/pkg/progress"
)

func testBook() Book {
	return Book{
		SessionID: "0b54ae24-9d3f-4f61-8f2a-2d1f6c1a9b77",
		Title:     "La Stanza Chiusa",
		Author:    "Fabula",
		Genre:     "giallo",
		CreatedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Chapters: []models.ChapterContent{
			{
				SectionIndex: 0,
				Title:        "Il relitto",
				Content:      "Il mare restituiva sempre quello che prendeva.\n\nMarta lo sapeva da bambina, e lo sapeva adesso.",
			},
			{
				SectionIndex: 1,
				Title:        "La partenza",
				Content:      "Il treno lascia la stazione alle sei.\n\n---\n\nNessuno la saluta dal binario.",
			},
		},
	}
}

func TestPDF_RenderRoundTrip(t *testing.T) {
	data, err := NewPDF().Render(testBook())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	pages, err := ValidatePDF(data)
	require.NoError(t, err)
	assert.Equal(t, 4, pages, "title page, one TOC page, two chapter pages")

	text, err := llm.ExtractTextFromPDF(data, 0)
	require.NoError(t, err)
	assert.Contains(t, text, "La Stanza Chiusa")
	assert.Contains(t, text, "Indice")
	assert.Contains(t, text, "CAPITOLO 1")
	assert.Contains(t, text, "Il relitto")
	assert.Contains(t, text, "mare restituiva")
	assert.Contains(t, text, "Nessuno la saluta dal binario")
}

func TestPDF_PageCountMatchesEstimate(t *testing.T) {
	book := testBook()
	book.Chapters = nil
	for i := 0; i < 30; i++ {
		book.Chapters = append(book.Chapters, models.ChapterContent{
			SectionIndex: i,
			Title:        fmt.Sprintf("Sezione %d", i+1),
			Content:      "Poche righe di prova che stanno su una pagina sola.",
		})
	}

	data, err := NewPDF().Render(book)
	require.NoError(t, err)

	pages, err := ValidatePDF(data)
	require.NoError(t, err)

	// 1 title page + 2 TOC pages (25 entries each) + 30 chapter pages.
	assert.Equal(t, 33, pages)
	assert.Equal(t, progress.TotalPages(book.Chapters, 0, 0), pages)
}

func TestPDF_EmptyChapterStillRenders(t *testing.T) {
	book := testBook()
	book.Chapters = []models.ChapterContent{{SectionIndex: 0, Title: "Vuoto", Content: ""}}

	data, err := NewPDF().Render(book)
	require.NoError(t, err)

	pages, err := ValidatePDF(data)
	require.NoError(t, err)
	assert.Equal(t, 3, pages)
}

func TestValidatePDF_RejectsGarbage(t *testing.T) {
	_, err := ValidatePDF([]byte("not a pdf"))
	var rf *RenderFailure
	require.ErrorAs(t, err, &rf)
	assert.Equal(t, "pdf", rf.Format)

	_, err = ValidatePDF(nil)
	assert.Error(t, err)
}

func TestParagraphs(t *testing.T) {
	got := paragraphs("## Titolo residuo\nPrima riga.\n\n---\n\nSeconda parte.\n\n")
	assert.Equal(t, []string{"Titolo residuo\nPrima riga.", "", "Seconda parte."}, got)

	assert.Empty(t, paragraphs("   \n\n  "))
}
