// Package progress computes book-shape numbers, residual writing time, and
// token cost. Everything here is a pure function over session data: no I/O,
// no clocks, no stored state.
package progress

import (
	"strings"

	"github.com/fabula-ai/fabula/pkg/models"
)

const (
	// DefaultWordsPerPage approximates a printed novel page.
	DefaultWordsPerPage = 250

	// DefaultTOCChaptersPerPage is how many chapter entries fit on one
	// table-of-contents page.
	DefaultTOCChaptersPerPage = 25
)

// PageCount converts prose into printed pages: ceil(words / wordsPerPage),
// at least 1 for non-empty text, 0 for empty.
func PageCount(text string, wordsPerPage int) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	if wordsPerPage <= 0 {
		wordsPerPage = DefaultWordsPerPage
	}
	pages := (words + wordsPerPage - 1) / wordsPerPage
	if pages < 1 {
		pages = 1
	}
	return pages
}

// TotalPages is the full book size: every chapter's pages plus the title
// page plus the table of contents.
func TotalPages(chapters []models.ChapterContent, wordsPerPage, tocChaptersPerPage int) int {
	if len(chapters) == 0 {
		return 0
	}
	if tocChaptersPerPage <= 0 {
		tocChaptersPerPage = DefaultTOCChaptersPerPage
	}

	pages := 1 // title page
	pages += (len(chapters) + tocChaptersPerPage - 1) / tocChaptersPerPage
	for _, ch := range chapters {
		pages += PageCount(ch.Content, wordsPerPage)
	}
	return pages
}

// TotalPagesFromCounts is TotalPages over stored per-chapter word counts,
// for callers that did not load chapter text.
func TotalPagesFromCounts(wordCounts []int, wordsPerPage, tocChaptersPerPage int) int {
	if len(wordCounts) == 0 {
		return 0
	}
	if wordsPerPage <= 0 {
		wordsPerPage = DefaultWordsPerPage
	}
	if tocChaptersPerPage <= 0 {
		tocChaptersPerPage = DefaultTOCChaptersPerPage
	}

	pages := 1 // title page
	pages += (len(wordCounts) + tocChaptersPerPage - 1) / tocChaptersPerPage
	for _, words := range wordCounts {
		if words <= 0 {
			continue
		}
		pages += (words + wordsPerPage - 1) / wordsPerPage
	}
	return pages
}
