// Package sanitize rewrites plot text before it becomes an image prompt.
// Image models reject sexually explicit input outright, so the configured
// patterns tone the plot down instead of letting the cover stage fail.
package sanitize

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fabula-ai/fabula/pkg/config"
)

// DefaultMaxPromptChars caps the sanitized prompt length.
const DefaultMaxPromptChars = 4000

// compiledPattern holds one pre-compiled replacement rule.
type compiledPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Sanitizer applies the configured replacement rules in order.
type Sanitizer struct {
	patterns []compiledPattern
	maxChars int
}

// New compiles the configured patterns. Invalid regexes are logged and
// skipped; the sanitizer still works with whatever compiled.
func New(cfg *config.SanitizerConfig) *Sanitizer {
	s := &Sanitizer{maxChars: DefaultMaxPromptChars}
	if cfg == nil {
		return s
	}
	if cfg.MaxPromptChars > 0 {
		s.maxChars = cfg.MaxPromptChars
	}
	for _, p := range cfg.Patterns {
		compiled, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile sanitizer pattern, skipping",
				"pattern", p.Name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, compiledPattern{
			name:        p.Name,
			regex:       compiled,
			replacement: p.Replacement,
		})
	}
	return s
}

// Clean applies every rule in configuration order, collapses the whitespace
// the replacements leave behind, and caps the length on a rune boundary.
func (s *Sanitizer) Clean(text string) string {
	for _, p := range s.patterns {
		text = p.regex.ReplaceAllString(text, p.replacement)
	}
	text = collapseWhitespace(text)

	if s.maxChars > 0 && len(text) > s.maxChars {
		cut := s.maxChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = strings.TrimSpace(text[:cut])
	}
	return text
}

var spaceRe = regexp.MustCompile(`[ \t]{2,}`)

func collapseWhitespace(text string) string {
	text = spaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
