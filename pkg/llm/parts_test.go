package llm

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractImage(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	jpeg := []byte{0xFF, 0xD8, 0xFF}

	t.Run("snake case field wins within a part", func(t *testing.T) {
		parts := []ResponsePart{{
			InlineData:      &InlineData{MIMEType: "image/png", Data: png},
			InlineDataCamel: &InlineData{MIMETypeCamel: "image/jpeg", Data: jpeg},
		}}

		data, mime, err := ExtractImage(parts)
		require.NoError(t, err)
		assert.Equal(t, png, data)
		assert.Equal(t, "image/png", mime)
	})

	t.Run("camel case fallback", func(t *testing.T) {
		parts := []ResponsePart{{
			InlineDataCamel: &InlineData{MIMETypeCamel: "image/jpeg", Data: jpeg},
		}}

		data, mime, err := ExtractImage(parts)
		require.NoError(t, err)
		assert.Equal(t, jpeg, data)
		assert.Equal(t, "image/jpeg", mime)
	})

	t.Run("data URI embedded in text", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString(png)
		parts := []ResponsePart{{Text: "ecco la copertina: data:image/png;base64," + encoded + " fine"}}

		data, mime, err := ExtractImage(parts)
		require.NoError(t, err)
		assert.Equal(t, png, data)
		assert.Equal(t, "image/png", mime)
	})

	t.Run("earlier part beats later part", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString(jpeg)
		parts := []ResponsePart{
			{Text: "data:image/jpeg;base64," + encoded},
			{InlineData: &InlineData{MIMEType: "image/png", Data: png}},
		}

		data, mime, err := ExtractImage(parts)
		require.NoError(t, err)
		assert.Equal(t, jpeg, data)
		assert.Equal(t, "image/jpeg", mime)
	})

	t.Run("broken data URI is skipped", func(t *testing.T) {
		parts := []ResponsePart{
			{Text: "data:image/png;base64,%%%%"},
			{InlineData: &InlineData{MIMEType: "image/png", Data: png}},
		}

		data, mime, err := ExtractImage(parts)
		require.NoError(t, err)
		assert.Equal(t, png, data)
		assert.Equal(t, "image/png", mime)
	})

	t.Run("no image anywhere", func(t *testing.T) {
		parts := []ResponsePart{{Text: "solo testo"}, {Text: "ancora testo"}}

		_, _, err := ExtractImage(parts)
		assert.EqualError(t, err, "no image data in 2 response parts")
	})
}

func TestResponsePart_Unmarshal(t *testing.T) {
	t.Run("snake case payload", func(t *testing.T) {
		raw := `{"inline_data": {"mime_type": "image/png", "data": "iVBORw=="}}`

		var part ResponsePart
		require.NoError(t, json.Unmarshal([]byte(raw), &part))
		require.NotNil(t, part.InlineData)
		assert.Equal(t, "image/png", part.InlineData.MIMEType)
		assert.NotEmpty(t, part.InlineData.Data)
	})

	t.Run("camel case payload", func(t *testing.T) {
		raw := `{"inlineData": {"mimeType": "image/jpeg", "data": "/9j/4A=="}}`

		var part ResponsePart
		require.NoError(t, json.Unmarshal([]byte(raw), &part))
		require.NotNil(t, part.InlineDataCamel)
		assert.Equal(t, "image/jpeg", part.InlineDataCamel.mime())

		data, mime, err := ExtractImage([]ResponsePart{part})
		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", mime)
		assert.NotEmpty(t, data)
	})
}
