package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDOCX_Render(t *testing.T) {
	data, err := NewDOCX().Render(testBook())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	_, files := readZipEntries(t, data)

	assert.Contains(t, files, "[Content_Types].xml")
	assert.Contains(t, files, "_rels/.rels")

	document := files["word/document.xml"]
	require.NotEmpty(t, document)
	assert.Contains(t, document, "La Stanza Chiusa")
	assert.Contains(t, document, "di Fabula")
	assert.Contains(t, document, "Capitolo 1: Il relitto")
	assert.Contains(t, document, "Capitolo 2: La partenza")
	assert.Contains(t, document, "* * *", "horizontal rules become scene break markers")
	assert.Contains(t, document, "<w:br/>", "paragraph breaks survive as line breaks")

	// Every placeholder must be filled.
	assert.NotContains(t, document, "FABULA_TITLE")
	assert.NotContains(t, document, "FABULA_AUTHOR")
	assert.NotContains(t, document, "FABULA_BODY")
}

func TestDOCX_EscapesMarkup(t *testing.T) {
	book := testBook()
	book.Title = "Vita & Morte"
	book.Chapters = book.Chapters[:1]
	book.Chapters[0].Content = "Testo con <parentesi> angolari."

	data, err := NewDOCX().Render(book)
	require.NoError(t, err)

	_, files := readZipEntries(t, data)
	document := files["word/document.xml"]
	assert.Contains(t, document, "Vita &amp; Morte")
	assert.Contains(t, document, "&lt;parentesi&gt;")
}
