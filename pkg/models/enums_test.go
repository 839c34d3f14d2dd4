package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"flash", "pro", "ultra"} {
		mode, err := ParseMode(valid)
		require.NoError(t, err)
		assert.Equal(t, Mode(valid), mode)
	}

	_, err := ParseMode("turbo")
	assert.ErrorContains(t, err, `unknown mode "turbo"`)
	_, err = ParseMode("Flash")
	assert.Error(t, err, "tier strings are lowercase")
}

func TestModeLabel(t *testing.T) {
	assert.Equal(t, "Flash", ModeFlash.Label())
	assert.Equal(t, "Pro", ModePro.Label())
	assert.Equal(t, "Ultra", ModeUltra.Label())
	assert.Equal(t, "boh", Mode("boh").Label())
}

func TestModeOfModel(t *testing.T) {
	tests := []struct {
		model string
		want  Mode
	}{
		{"flash", ModeFlash},
		{"pro", ModePro},
		{"ultra", ModeUltra},
		{" Ultra ", ModeUltra},
		{"gemini-2.5-flash", ModeFlash},
		{"gemini-2.5-pro", ModePro},
		{"gemini-3-pro", ModePro},
		{"gemini-3-pro-preview", ModePro},
		{"gemini-3-ultra", ModeUltra},
		{"gemini-3-flash", ModeFlash},
		{"gpt-4o", ModePro},
		{"", ModePro},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.want, ModeOfModel(tt.model))
		})
	}
}
