package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalFilename(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	name := CanonicalFilename(created, "g25f", "La Stanza Chiusa", "0b54ae24-9d3f", "pdf")
	assert.Equal(t, "2026-03-14_g25f_La_Stanza_Chiusa.pdf", name)

	name = CanonicalFilename(created, "g3p", "Perché io no?!", "0b54ae24-9d3f", "epub")
	assert.Equal(t, "2026-03-14_g3p_Perché_io_no.epub", name)

	// A title with nothing usable falls back to the session id prefix.
	name = CanonicalFilename(created, "g25p", "???", "0b54ae24-9d3f-4f61", "pdf")
	assert.Equal(t, "2026-03-14_g25p_Libro_0b54ae24.pdf", name)

	name = CanonicalFilename(created, "g25p", "", "", "pdf")
	assert.Equal(t, "2026-03-14_g25p_Libro.pdf", name)
}

func TestSanitizeTitle(t *testing.T) {
	assert.Equal(t, "Città_di_notte", SanitizeTitle("Città di notte!"))
	assert.Equal(t, "La_Stanza", SanitizeTitle("  La   Stanza  "))
	assert.Equal(t, "gi-allo_2_0", SanitizeTitle("gi-allo 2_0!"))
	assert.Equal(t, "", SanitizeTitle("«!?»"))
}

func TestForFormat(t *testing.T) {
	for _, ext := range []string{"pdf", "epub", "docx"} {
		r, ok := ForFormat(ext)
		assert.True(t, ok, ext)
		assert.Equal(t, ext, r.Extension())
		assert.NotEmpty(t, r.ContentType())
	}

	_, ok := ForFormat("mobi")
	assert.False(t, ok)
}
