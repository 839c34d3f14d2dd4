package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// DOCX renders the book from a minimal WordprocessingML template: the
// template carries placeholder runs, the docx library fills them in and
// turns newlines into line breaks.
type DOCX struct{}

func NewDOCX() *DOCX { return &DOCX{} }

func (r *DOCX) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

func (r *DOCX) Extension() string { return "docx" }

const (
	docxTitleMark  = "FABULA_TITLE"
	docxAuthorMark = "FABULA_AUTHOR"
	docxBodyMark   = "FABULA_BODY"
)

func (r *DOCX) Render(book Book) ([]byte, error) {
	tpl, err := docxTemplate()
	if err != nil {
		return nil, &RenderFailure{Format: "docx", Err: err}
	}

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(tpl), int64(len(tpl)))
	if err != nil {
		return nil, &RenderFailure{Format: "docx", Err: err}
	}
	defer doc.Close()

	editable := doc.Editable()
	byline := ""
	if book.Author != "" {
		byline = "di " + book.Author
	}
	for mark, value := range map[string]string{
		docxTitleMark:  book.Title,
		docxAuthorMark: byline,
		docxBodyMark:   docxBody(book),
	} {
		if err := editable.Replace(mark, value, 1); err != nil {
			return nil, &RenderFailure{Format: "docx", Err: fmt.Errorf("fill %s: %w", mark, err)}
		}
	}

	var buf bytes.Buffer
	if err := editable.Write(&buf); err != nil {
		return nil, &RenderFailure{Format: "docx", Err: err}
	}
	return buf.Bytes(), nil
}

// docxBody flattens the chapters into one text block. The library converts
// the newlines into w:br runs when it fills the placeholder.
func docxBody(book Book) string {
	var sb strings.Builder
	for i, ch := range book.Chapters {
		if i > 0 {
			sb.WriteString("\n\n\n")
		}
		sb.WriteString(fmt.Sprintf("Capitolo %d: %s\n\n", i+1, ch.Title))
		for j, para := range paragraphs(ch.Content) {
			if j > 0 {
				sb.WriteString("\n\n")
			}
			if para == "" {
				sb.WriteString("* * *")
				continue
			}
			para = emphasisRe.ReplaceAllString(para, "$1$2$3$4")
			sb.WriteString(para)
		}
	}
	return sb.String()
}

// docxTemplate assembles the minimal OPC parts the docx reader requires:
// the content types, the package rels, the document and its (empty) rels.
func docxTemplate() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxPackageRels},
		{"word/document.xml", docxDocument},
		{"word/_rels/document.xml.rels", docxDocumentRels},
	}
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("create template %s: %w", p.name, err)
		}
		if _, err := w.Write([]byte(p.content)); err != nil {
			return nil, fmt.Errorf("write template %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxPackageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`

const docxDocument = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p>
      <w:pPr><w:jc w:val="center"/></w:pPr>
      <w:r><w:rPr><w:b/><w:sz w:val="56"/></w:rPr><w:t>FABULA_TITLE</w:t></w:r>
    </w:p>
    <w:p>
      <w:pPr><w:jc w:val="center"/></w:pPr>
      <w:r><w:rPr><w:i/><w:sz w:val="32"/></w:rPr><w:t>FABULA_AUTHOR</w:t></w:r>
    </w:p>
    <w:p/>
    <w:p>
      <w:r><w:t xml:space="preserve">FABULA_BODY</w:t></w:r>
    </w:p>
    <w:sectPr>
      <w:pgSz w:w="11906" w:h="16838"/>
      <w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/>
    </w:sectPr>
  </w:body>
</w:document>`
