package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabula-ai/fabula/pkg/config"
)

func TestNew_CompilesConfiguredPatterns(t *testing.T) {
	s := New(&config.SanitizerConfig{
		Patterns: []config.SanitizePattern{
			{Name: "violence", Pattern: `(?i)\bsangue\b`, Replacement: "tensione"},
			{Name: "weapons", Pattern: `(?i)\bpistola\b`, Replacement: "oggetto"},
		},
	})

	require.Len(t, s.patterns, 2)
	assert.Equal(t, "violence", s.patterns[0].name)
	assert.Equal(t, DefaultMaxPromptChars, s.maxChars)
}

func TestNew_InvalidPatternSkipped(t *testing.T) {
	s := New(&config.SanitizerConfig{
		Patterns: []config.SanitizePattern{
			{Name: "broken", Pattern: `[invalid`, Replacement: "x"},
			{Name: "valid", Pattern: `segreto`, Replacement: "mistero"},
		},
	})

	// The broken regex is dropped, the valid one still works.
	require.Len(t, s.patterns, 1)
	assert.Equal(t, "valid", s.patterns[0].name)
	assert.Equal(t, "un mistero di famiglia", s.Clean("un segreto di famiglia"))
}

func TestNew_NilConfig(t *testing.T) {
	s := New(nil)

	assert.Empty(t, s.patterns)
	assert.Equal(t, "testo qualsiasi", s.Clean("testo qualsiasi"))
}

func TestClean_AppliesPatternsInOrder(t *testing.T) {
	s := New(&config.SanitizerConfig{
		Patterns: []config.SanitizePattern{
			{Name: "first", Pattern: `omicidio`, Replacement: "mistero violento"},
			{Name: "second", Pattern: `violento`, Replacement: "oscuro"},
		},
	})

	// The second pattern also rewrites text introduced by the first.
	assert.Equal(t, "un mistero oscuro in villa", s.Clean("un omicidio in villa"))
}

func TestClean_RemovalCollapsesWhitespace(t *testing.T) {
	s := New(&config.SanitizerConfig{
		Patterns: []config.SanitizePattern{
			{Name: "strip", Pattern: `(?i)scena esplicita`, Replacement: ""},
		},
	})

	assert.Equal(t, "una tra i due", s.Clean("una scena esplicita tra i due"))
}

func TestClean_CapsLength(t *testing.T) {
	s := New(&config.SanitizerConfig{MaxPromptChars: 10})

	got := s.Clean("una lunga trama che continua")

	assert.Equal(t, "una lunga", got)
	assert.LessOrEqual(t, len(got), 10)
}

func TestClean_CapRespectsRuneBoundary(t *testing.T) {
	s := New(&config.SanitizerConfig{MaxPromptChars: 5})

	// "città" is 6 bytes; a byte-level cut at 5 would split the à.
	got := s.Clean("città")

	assert.True(t, strings.HasPrefix("città", got))
	assert.Equal(t, "citt", got)
}

func TestClean_LongPlotCappedAtDefault(t *testing.T) {
	s := New(&config.SanitizerConfig{})

	plot := strings.Repeat("trama ", 2000)
	got := s.Clean(plot)

	assert.LessOrEqual(t, len(got), DefaultMaxPromptChars)
	assert.NotEmpty(t, got)
}
