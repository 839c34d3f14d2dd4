package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/fabula-ai/fabula/pkg/models"
)

// tocEntriesPerPage must stay in step with the page estimator's
// table-of-contents math (progress.DefaultTOCChaptersPerPage).
const tocEntriesPerPage = 25

// PDF lays out a title page, a table of contents and the chapters, with
// page numbers in the footer on every page but the first.
type PDF struct {
	TOCEntriesPerPage int
}

func NewPDF() *PDF { return &PDF{TOCEntriesPerPage: tocEntriesPerPage} }

func (r *PDF) ContentType() string { return "application/pdf" }

func (r *PDF) Extension() string { return "pdf" }

func (r *PDF) Render(book Book) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; the translator maps the Italian accents.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetTitle(book.Title, true)
	doc.SetAuthor(book.Author, true)
	doc.SetCreator("fabula", false)
	doc.SetMargins(20, 22, 20)
	doc.SetAutoPageBreak(true, 22)
	doc.AliasNbPages("")
	doc.SetFooterFunc(func() {
		if doc.PageNo() == 1 {
			return
		}
		doc.SetY(-16)
		doc.SetFont("Helvetica", "I", 9)
		doc.CellFormat(0, 8, fmt.Sprintf("%d / {nb}", doc.PageNo()), "", 0, "C", false, 0, "")
	})

	r.titlePage(doc, tr, book)
	r.tableOfContents(doc, tr, book)
	for i, ch := range book.Chapters {
		r.chapter(doc, tr, i+1, ch)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &RenderFailure{Format: "pdf", Err: err}
	}
	return buf.Bytes(), nil
}

func (r *PDF) titlePage(doc *fpdf.Fpdf, tr func(string) string, book Book) {
	doc.AddPage()
	doc.SetY(95)
	doc.SetFont("Times", "B", 30)
	doc.MultiCell(0, 13, tr(book.Title), "", "C", false)
	if book.Author != "" {
		doc.Ln(10)
		doc.SetFont("Times", "", 16)
		doc.CellFormat(0, 9, tr("di "+book.Author), "", 1, "C", false, 0, "")
	}
	if book.Genre != "" {
		doc.Ln(4)
		doc.SetFont("Times", "I", 12)
		doc.CellFormat(0, 8, tr(book.Genre), "", 1, "C", false, 0, "")
	}
	if !book.CreatedAt.IsZero() {
		doc.SetY(-40)
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(0, 8, book.CreatedAt.Format("02/01/2006"), "", 0, "C", false, 0, "")
	}
}

func (r *PDF) tableOfContents(doc *fpdf.Fpdf, tr func(string) string, book Book) {
	if len(book.Chapters) == 0 {
		return
	}
	perPage := r.TOCEntriesPerPage
	if perPage <= 0 {
		perPage = tocEntriesPerPage
	}
	for i, ch := range book.Chapters {
		switch {
		case i == 0:
			doc.AddPage()
			doc.SetFont("Times", "B", 20)
			doc.CellFormat(0, 12, "Indice", "", 1, "L", false, 0, "")
			doc.Ln(4)
		case i%perPage == 0:
			doc.AddPage()
		}
		doc.SetFont("Times", "", 12)
		doc.CellFormat(0, 8, tr(fmt.Sprintf("%d. %s", i+1, ch.Title)), "", 1, "L", false, 0, "")
	}
}

func (r *PDF) chapter(doc *fpdf.Fpdf, tr func(string) string, number int, ch models.ChapterContent) {
	doc.AddPage()
	doc.SetFont("Times", "B", 11)
	doc.CellFormat(0, 8, tr(fmt.Sprintf("CAPITOLO %d", number)), "", 1, "C", false, 0, "")
	doc.SetFont("Times", "B", 18)
	doc.MultiCell(0, 9, tr(ch.Title), "", "C", false)
	doc.Ln(8)

	doc.SetFont("Times", "", 12)
	for _, para := range paragraphs(ch.Content) {
		if para == "" {
			doc.Ln(6)
			continue
		}
		// Plain prose only: the PDF body drops emphasis markers.
		para = emphasisRe.ReplaceAllString(para, "$1$2$3$4")
		doc.MultiCell(0, 6.5, tr(para), "", "J", false)
		doc.Ln(3)
	}
}

var (
	emphasisRe    = regexp.MustCompile(`\*\*([^*]+)\*\*|\*([^*]+)\*|__([^_]+)__|_([^_]+)_`)
	headingLineRe = regexp.MustCompile(`^#{1,6}\s+`)
	hruleRe       = regexp.MustCompile(`^(?:-{3,}|\*{3,}|(?:\* ){2,}\*)$`)
)

// paragraphs splits chapter prose on blank lines, keeping hard line breaks
// inside a block. Heading hashes are dropped; a horizontal rule becomes an
// empty entry the caller renders as a scene break.
func paragraphs(content string) []string {
	var out []string
	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if hruleRe.MatchString(block) {
			out = append(out, "")
			continue
		}
		lines := strings.Split(block, "\n")
		for i, line := range lines {
			lines[i] = headingLineRe.ReplaceAllString(strings.TrimSpace(line), "")
		}
		out = append(out, strings.TrimSpace(strings.Join(lines, "\n")))
	}
	return out
}
