package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextFromPDF_RejectsGarbage(t *testing.T) {
	_, err := ExtractTextFromPDF([]byte("definitely not a pdf"), DefaultPDFTextCap)
	assert.Error(t, err)
}

func TestExtractTextFromPDF_RejectsEmptyInput(t *testing.T) {
	_, err := ExtractTextFromPDF(nil, DefaultPDFTextCap)
	assert.Error(t, err)
}

func TestExtractTextFromPDF_RejectsTruncatedHeader(t *testing.T) {
	// A valid magic prefix with nothing behind it must not panic.
	_, err := ExtractTextFromPDF([]byte("%PDF-1.7\n"), DefaultPDFTextCap)
	assert.Error(t, err)
}
