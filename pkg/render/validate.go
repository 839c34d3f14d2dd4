package render

import (
	"bytes"
	"errors"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ValidatePDF checks that a rendered artifact is a structurally sound PDF
// and returns its page count. Storage must not happen without this passing.
func ValidatePDF(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, &RenderFailure{Format: "pdf", Err: errors.New("empty output")}
	}

	rs := bytes.NewReader(data)
	if err := api.Validate(rs, nil); err != nil {
		return 0, &RenderFailure{Format: "pdf", Err: err}
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, &RenderFailure{Format: "pdf", Err: err}
	}

	pages, err := api.PageCount(rs, nil)
	if err != nil {
		return 0, &RenderFailure{Format: "pdf", Err: err}
	}
	if pages == 0 {
		return 0, &RenderFailure{Format: "pdf", Err: errors.New("no pages in output")}
	}
	return pages, nil
}
