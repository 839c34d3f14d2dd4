// Package render lays finished books out as PDF, EPUB and DOCX artifacts,
// and owns the canonical artifact filename scheme.
package render

import (
	"fmt"
	"time"

	"github.com/fabula-ai/fabula/pkg/models"
)

// Book is the renderer input. Chapters must already be in reading order.
type Book struct {
	SessionID string
	Title     string
	Author    string
	Genre     string
	Chapters  []models.ChapterContent
	CreatedAt time.Time
}

// Renderer lays a book out in one output format.
type Renderer interface {
	Render(book Book) ([]byte, error)
	ContentType() string
	Extension() string
}

// ForFormat returns the renderer for a file extension (without the dot).
func ForFormat(format string) (Renderer, bool) {
	switch format {
	case "pdf":
		return NewPDF(), true
	case "epub":
		return NewEPUB(), true
	case "docx":
		return NewDOCX(), true
	}
	return nil, false
}

// RenderFailure is the terminal error of a rendering call: the artifact
// could not be produced or did not survive validation.
type RenderFailure struct {
	Format string
	Err    error
}

func (e *RenderFailure) Error() string {
	return fmt.Sprintf("rendering %s failed: %v", e.Format, e.Err)
}

func (e *RenderFailure) Unwrap() error { return e.Err }
