package progress

import (
	"strings"
	"testing"

	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/stretchr/testify/assert"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("parola ", n))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount("", 250))
	assert.Equal(t, 0, PageCount("   \n\t", 250))
	assert.Equal(t, 1, PageCount("poche parole", 250))
	assert.Equal(t, 1, PageCount(words(250), 250))
	assert.Equal(t, 2, PageCount(words(251), 250))
	assert.Equal(t, 4, PageCount(words(1000), 250))

	assert.Equal(t, 1, PageCount(words(200), 0), "zero config falls back to the default")
	assert.Equal(t, 2, PageCount(words(300), -5))
}

func TestTotalPages(t *testing.T) {
	chapters := []models.ChapterContent{
		{Content: words(500)},  // 2 pages
		{Content: words(100)},  // 1 page
		{Content: words(1000)}, // 4 pages
	}

	// 7 chapter pages + 1 title + 1 TOC.
	assert.Equal(t, 9, TotalPages(chapters, 250, 25))
	assert.Equal(t, 9, TotalPages(chapters, 250, 0), "TOC default kicks in")
	assert.Zero(t, TotalPages(nil, 250, 25))

	t.Run("TOC spills onto a second page", func(t *testing.T) {
		var many []models.ChapterContent
		for i := 0; i < 30; i++ {
			many = append(many, models.ChapterContent{Content: words(10)})
		}
		// 30 chapter pages + 1 title + 2 TOC pages at 25 entries each.
		assert.Equal(t, 33, TotalPages(many, 250, 25))
	})
}

func TestTotalPagesFromCounts(t *testing.T) {
	// Same book as TestTotalPages, from stored word counts.
	assert.Equal(t, 9, TotalPagesFromCounts([]int{500, 100, 1000}, 250, 25))
	assert.Equal(t, 9, TotalPagesFromCounts([]int{500, 100, 1000}, 0, 0), "defaults kick in")
	assert.Zero(t, TotalPagesFromCounts(nil, 250, 25))

	// Empty chapters contribute nothing, matching PageCount on empty text.
	assert.Equal(t, 4, TotalPagesFromCounts([]int{500, 0}, 250, 25))

	chapters := []models.ChapterContent{
		{Content: words(500), WordCount: 500},
		{Content: words(100), WordCount: 100},
	}
	counts := make([]int, len(chapters))
	for i, ch := range chapters {
		counts[i] = ch.WordCount
	}
	assert.Equal(t, TotalPages(chapters, 250, 25), TotalPagesFromCounts(counts, 250, 25))
}
