package render

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabula-ai/fabula/pkg/models"
)

func readZipEntries(t *testing.T, data []byte) (*zip.Reader, map[string]string) {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	files := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, rc.Close())
		require.NoError(t, err)
		files[f.Name] = string(b)
	}
	return zr, files
}

func TestEPUB_Render(t *testing.T) {
	data, err := NewEPUB().Render(testBook())
	require.NoError(t, err)

	zr, files := readZipEntries(t, data)

	// The container spec wants mimetype first and stored uncompressed.
	require.NotEmpty(t, zr.File)
	assert.Equal(t, "mimetype", zr.File[0].Name)
	assert.Equal(t, zip.Store, zr.File[0].Method)
	assert.Equal(t, "application/epub+zip", files["mimetype"])

	assert.Contains(t, files, "META-INF/container.xml")

	opf := files["OEBPS/content.opf"]
	assert.Contains(t, opf, "<dc:title>La Stanza Chiusa</dc:title>")
	assert.Contains(t, opf, "urn:uuid:0b54ae24-9d3f-4f61-8f2a-2d1f6c1a9b77")
	assert.Contains(t, opf, "<dc:language>it</dc:language>")
	assert.Contains(t, opf, `<itemref idref="ch_001"/>`)
	assert.Contains(t, opf, `<itemref idref="ch_002"/>`)

	assert.Contains(t, files["OEBPS/nav.xhtml"], "Capitolo 1: Il relitto")
	assert.Contains(t, files["OEBPS/toc.ncx"], "Capitolo 2: La partenza")

	ch1 := files["OEBPS/chapters/ch_001.xhtml"]
	assert.Contains(t, ch1, "<h1>Il relitto</h1>")
	assert.Contains(t, ch1, "<p>Il mare restituiva sempre quello che prendeva.</p>")

	// The scene break in chapter two becomes a horizontal rule.
	assert.Contains(t, files["OEBPS/chapters/ch_002.xhtml"], "<hr/>")
}

func TestEPUB_EscapesAndEmphasis(t *testing.T) {
	book := testBook()
	book.Title = "Vita & Morte"
	book.Chapters = []models.ChapterContent{{
		SectionIndex: 0,
		Title:        "L'inizio <vero>",
		Content:      "Una *parola* in **grassetto**.",
	}}

	data, err := NewEPUB().Render(book)
	require.NoError(t, err)

	_, files := readZipEntries(t, data)

	assert.Contains(t, files["OEBPS/content.opf"], "<dc:title>Vita &amp; Morte</dc:title>")

	ch1 := files["OEBPS/chapters/ch_001.xhtml"]
	assert.Contains(t, ch1, "<h1>L&apos;inizio &lt;vero&gt;</h1>")
	assert.Contains(t, ch1, "<em>parola</em>")
	assert.Contains(t, ch1, "<strong>grassetto</strong>")
}

func TestEPUB_MissingSessionIDGetsUUID(t *testing.T) {
	book := testBook()
	book.SessionID = ""

	data, err := NewEPUB().Render(book)
	require.NoError(t, err)

	_, files := readZipEntries(t, data)
	assert.Contains(t, files["OEBPS/content.opf"], "urn:uuid:")
}
