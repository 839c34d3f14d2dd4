package llm

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// DefaultPDFTextCap bounds extracted PDF text so the critique prompt fits a
// model context window.
const DefaultPDFTextCap = 1_500_000

// ExtractTextFromPDF pulls the plain text out of a rendered PDF for model
// families without native PDF input. maxChars <= 0 applies the default cap.
// The pdf package panics on some malformed content streams, so the
// extraction runs behind a recover.
func ExtractTextFromPDF(data []byte, maxChars int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf text extraction failed: %v", r)
		}
	}()

	if maxChars <= 0 {
		maxChars = DefaultPDFTextCap
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}

	text = sb.String()
	if len(text) > maxChars {
		cut := maxChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return strings.TrimSpace(text), nil
}
