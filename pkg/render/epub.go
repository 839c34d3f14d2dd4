package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EPUB renders an ePub 3.0 container: mimetype first and uncompressed,
// then container.xml, the OPF package, nav + NCX and one XHTML per chapter.
type EPUB struct{}

func NewEPUB() *EPUB { return &EPUB{} }

func (r *EPUB) ContentType() string { return "application/epub+zip" }

func (r *EPUB) Extension() string { return "epub" }

func (r *EPUB) Render(book Book) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	if err := writeMimetype(zw); err != nil {
		return nil, &RenderFailure{Format: "epub", Err: err}
	}

	// One identifier shared by the package document and the NCX.
	id := bookIdentifier(book)

	parts := []struct {
		name    string
		content string
	}{
		{"META-INF/container.xml", epubContainer},
		{"OEBPS/content.opf", epubPackage(book, id)},
		{"OEBPS/nav.xhtml", epubNav(book)},
		{"OEBPS/toc.ncx", epubNCX(book, id)},
		{"OEBPS/styles/style.css", epubStylesheet},
	}
	for i, ch := range book.Chapters {
		parts = append(parts, struct {
			name    string
			content string
		}{chapterFile(i), chapterXHTML(i+1, ch.Title, ch.Content)})
	}

	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, &RenderFailure{Format: "epub", Err: fmt.Errorf("create %s: %w", p.name, err)}
		}
		if _, err := w.Write([]byte(p.content)); err != nil {
			return nil, &RenderFailure{Format: "epub", Err: fmt.Errorf("write %s: %w", p.name, err)}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, &RenderFailure{Format: "epub", Err: err}
	}
	return buf.Bytes(), nil
}

// writeMimetype stores the mimetype entry uncompressed, as the container
// spec requires for the first entry.
func writeMimetype(zw *zip.Writer) error {
	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:   "mimetype",
		Method: zip.Store,
	})
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("application/epub+zip"))
	return err
}

func chapterFile(index int) string {
	return fmt.Sprintf("OEBPS/chapters/ch_%03d.xhtml", index+1)
}

func chapterID(index int) string {
	return fmt.Sprintf("ch_%03d", index+1)
}

func bookIdentifier(book Book) string {
	if book.SessionID != "" {
		return "urn:uuid:" + book.SessionID
	}
	return "urn:uuid:" + uuid.New().String()
}

const epubContainer = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

func epubPackage(book Book, id string) string {
	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="3.0" unique-identifier="pub-id">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
`)
	sb.WriteString(fmt.Sprintf("    <dc:identifier id=\"pub-id\">%s</dc:identifier>\n", id))
	sb.WriteString(fmt.Sprintf("    <dc:title>%s</dc:title>\n", escapeXML(book.Title)))
	sb.WriteString(fmt.Sprintf("    <dc:creator>%s</dc:creator>\n", escapeXML(book.Author)))
	sb.WriteString("    <dc:language>it</dc:language>\n")
	if book.Genre != "" {
		sb.WriteString(fmt.Sprintf("    <dc:subject>%s</dc:subject>\n", escapeXML(book.Genre)))
	}
	modified := book.CreatedAt
	if modified.IsZero() {
		modified = time.Now()
	}
	sb.WriteString(fmt.Sprintf("    <meta property=\"dcterms:modified\">%s</meta>\n",
		modified.UTC().Format("2006-01-02T15:04:05Z")))
	sb.WriteString("  </metadata>\n\n")

	sb.WriteString("  <manifest>\n")
	sb.WriteString("    <item id=\"nav\" href=\"nav.xhtml\" media-type=\"application/xhtml+xml\" properties=\"nav\"/>\n")
	sb.WriteString("    <item id=\"ncx\" href=\"toc.ncx\" media-type=\"application/x-dtbncx+xml\"/>\n")
	sb.WriteString("    <item id=\"style\" href=\"styles/style.css\" media-type=\"text/css\"/>\n")
	for i := range book.Chapters {
		sb.WriteString(fmt.Sprintf("    <item id=\"%s\" href=\"chapters/%s.xhtml\" media-type=\"application/xhtml+xml\"/>\n",
			chapterID(i), chapterID(i)))
	}
	sb.WriteString("  </manifest>\n\n")

	sb.WriteString("  <spine toc=\"ncx\">\n")
	for i := range book.Chapters {
		sb.WriteString(fmt.Sprintf("    <itemref idref=\"%s\"/>\n", chapterID(i)))
	}
	sb.WriteString("  </spine>\n")
	sb.WriteString("</package>\n")

	return sb.String()
}

func epubNav(book Book) string {
	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops">
<head>
  <title>Indice</title>
  <link rel="stylesheet" type="text/css" href="styles/style.css"/>
</head>
<body>
  <nav epub:type="toc" id="toc">
    <h1>Indice</h1>
    <ol>
`)
	for i, ch := range book.Chapters {
		sb.WriteString(fmt.Sprintf("      <li><a href=\"chapters/%s.xhtml\">%s</a></li>\n",
			chapterID(i), escapeXML(navTitle(i+1, ch.Title))))
	}
	sb.WriteString(`    </ol>
  </nav>
</body>
</html>
`)
	return sb.String()
}

func epubNCX(book Book, id string) string {
	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">
  <head>
    <meta name="dtb:uid" content="`)
	sb.WriteString(id)
	sb.WriteString(`"/>
    <meta name="dtb:depth" content="1"/>
    <meta name="dtb:totalPageCount" content="0"/>
    <meta name="dtb:maxPageNumber" content="0"/>
  </head>
  <docTitle>
    <text>`)
	sb.WriteString(escapeXML(book.Title))
	sb.WriteString(`</text>
  </docTitle>
  <navMap>
`)
	for i, ch := range book.Chapters {
		sb.WriteString(fmt.Sprintf("    <navPoint id=\"navpoint-%d\" playOrder=\"%d\">\n", i+1, i+1))
		sb.WriteString(fmt.Sprintf("      <navLabel><text>%s</text></navLabel>\n", escapeXML(navTitle(i+1, ch.Title))))
		sb.WriteString(fmt.Sprintf("      <content src=\"chapters/%s.xhtml\"/>\n", chapterID(i)))
		sb.WriteString("    </navPoint>\n")
	}
	sb.WriteString(`  </navMap>
</ncx>
`)
	return sb.String()
}

func navTitle(number int, title string) string {
	if title == "" {
		return fmt.Sprintf("Capitolo %d", number)
	}
	return fmt.Sprintf("Capitolo %d: %s", number, title)
}

func chapterXHTML(number int, title, content string) string {
	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xml:lang="it">
<head>
  <title>`)
	sb.WriteString(escapeXML(title))
	sb.WriteString(`</title>
  <link rel="stylesheet" type="text/css" href="../styles/style.css"/>
</head>
<body>
`)
	sb.WriteString("<div class=\"chapter-title\">\n")
	sb.WriteString(fmt.Sprintf("<p class=\"chapter-number\">Capitolo %d</p>\n", number))
	sb.WriteString(fmt.Sprintf("<h1>%s</h1>\n", escapeXML(title)))
	sb.WriteString("</div>\n")

	for _, para := range paragraphs(content) {
		if para == "" {
			sb.WriteString("<hr/>\n")
			continue
		}
		sb.WriteString("<p>")
		sb.WriteString(inlineXHTML(para))
		sb.WriteString("</p>\n")
	}

	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

var (
	boldMarkRe   = regexp.MustCompile(`\*\*([^*]+)\*\*|__([^_]+)__`)
	italicMarkRe = regexp.MustCompile(`\*([^*]+)\*|_([^_]+)_`)
)

// inlineXHTML escapes a paragraph and converts the emphasis markers the PDF
// path strips into real markup. Hard line breaks survive as <br/>.
func inlineXHTML(text string) string {
	text = escapeXML(text)
	text = boldMarkRe.ReplaceAllString(text, "<strong>$1$2</strong>")
	text = italicMarkRe.ReplaceAllString(text, "<em>$1$2</em>")
	text = strings.ReplaceAll(text, "\n", "<br/>\n")
	return text
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}

const epubStylesheet = `body {
  font-family: Georgia, "Times New Roman", serif;
  line-height: 1.6;
  margin: 1em;
  text-align: justify;
}

h1 {
  font-family: Georgia, serif;
  font-size: 1.6em;
  text-align: center;
}

p {
  margin: 0.5em 0;
  text-indent: 1.5em;
}

.chapter-title {
  text-align: center;
  margin-top: 3em;
  margin-bottom: 2em;
}

.chapter-number {
  font-size: 0.9em;
  text-transform: uppercase;
  letter-spacing: 0.1em;
  text-indent: 0;
}
`
