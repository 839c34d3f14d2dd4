package llm

import (
	"encoding/base64"
	"fmt"
	"regexp"
)

// InlineData is the binary payload of one response part. Both JSON casings
// appear in the wild: the REST API emits snake_case, the RPC-derived stacks
// camelCase.
type InlineData struct {
	MIMEType      string `json:"mime_type,omitempty"`
	MIMETypeCamel string `json:"mimeType,omitempty"`
	Data          []byte `json:"data,omitempty"`
}

func (d *InlineData) mime() string {
	if d.MIMEType != "" {
		return d.MIMEType
	}
	return d.MIMETypeCamel
}

// ResponsePart mirrors one candidate part of a generation response,
// tolerant of both JSON casings.
type ResponsePart struct {
	Text            string      `json:"text,omitempty"`
	InlineData      *InlineData `json:"inline_data,omitempty"`
	InlineDataCamel *InlineData `json:"inlineData,omitempty"`
}

var dataURIRe = regexp.MustCompile(`data:(image/[a-zA-Z0-9.+-]+);base64,([A-Za-z0-9+/=]+)`)

// ExtractImage returns the first image payload found across the parts.
// Each part is tried shape by shape: snake_case inline data, camelCase
// inline data, then a base64 data URI inside the text. First hit wins.
func ExtractImage(parts []ResponsePart) (data []byte, mimeType string, err error) {
	for _, part := range parts {
		if d := part.InlineData; d != nil && len(d.Data) > 0 {
			return d.Data, d.mime(), nil
		}
		if d := part.InlineDataCamel; d != nil && len(d.Data) > 0 {
			return d.Data, d.mime(), nil
		}
		if m := dataURIRe.FindStringSubmatch(part.Text); m != nil {
			decoded, decErr := base64.StdEncoding.DecodeString(m[2])
			if decErr != nil {
				continue
			}
			return decoded, m[1], nil
		}
	}
	return nil, "", fmt.Errorf("no image data in %d response parts", len(parts))
}
