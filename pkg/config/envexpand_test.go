package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution with {{.VAR}}",
			input: "api_key: {{.GOOGLE_API_KEY}}",
			env:   map[string]string{"GOOGLE_API_KEY": "secret123"},
			want:  "api_key: secret123",
		},
		{
			name:  "literal ${VAR} is NOT expanded (no collision)",
			input: "pattern: ${USER_ID}",
			env:   map[string]string{"USER_ID": "123"},
			want:  "pattern: ${USER_ID}",
		},
		{
			name:  "regex with dollar anchor survives",
			input: "pattern: ^secret.*$",
			env:   map[string]string{},
			want:  "pattern: ^secret.*$",
		},
		{
			name:  "multiple substitutions in one line",
			input: "base_uri: {{.BLOB_SCHEME}}://{{.BLOB_BUCKET}}",
			env: map[string]string{
				"BLOB_SCHEME": "gs",
				"BLOB_BUCKET": "fabula-books",
			},
			want: "base_uri: gs://fabula-books",
		},
		{
			name:  "missing variable expands to empty",
			input: "smtp_host: {{.MISSING_VAR}}",
			env:   map[string]string{},
			want:  "smtp_host: ",
		},
		{
			name:  "mixed present and missing variables",
			input: "dsn: {{.DB_USER}}:{{.MISSING}}@{{.DB_HOST}}",
			env: map[string]string{
				"DB_USER": "fabula",
				"DB_HOST": "localhost",
			},
			want: "dsn: fabula:@localhost",
		},
		{
			name:  "no substitution when no variables",
			input: "static: value",
			env:   map[string]string{"UNUSED": "value"},
			want:  "static: value",
		},
		{
			name:  "variables in nested YAML structure",
			input: "smtp:\n  host: {{.SMTP_HOST}}\n  port: {{.SMTP_PORT}}",
			env: map[string]string{
				"SMTP_HOST": "mail.example.com",
				"SMTP_PORT": "587",
			},
			want: "smtp:\n  host: mail.example.com\n  port: 587",
		},
		{
			name:  "special characters in expanded value",
			input: "password: {{.PASSWORD}}",
			env:   map[string]string{"PASSWORD": "p@ssw0rd!#$%"},
			want:  "password: p@ssw0rd!#$%",
		},
		{
			name:  "sanitize pattern with escaped dollar preserved",
			input: `pattern: "^\\$[0-9]+$"`,
			env:   map[string]string{},
			want:  `pattern: "^\\$[0-9]+$"`,
		},
		{
			name:  "adjacent variables without separator",
			input: "{{.VAR1}}{{.VAR2}}",
			env: map[string]string{
				"VAR1": "hello",
				"VAR2": "world",
			},
			want: "helloworld",
		},
		{
			name:  "empty string variable",
			input: "value: {{.EMPTY}}",
			env:   map[string]string{"EMPTY": ""},
			want:  "value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(result))
		})
	}
}

func TestExpandEnvPreservesOriginalWhenNoVariables(t *testing.T) {
	input := `
# comment
credits:
  weekly_quota:
    flash: 5
    pro: 2
models:
  aliases:
    ultra: gemini-3-pro
`

	result := ExpandEnv([]byte(input))
	assert.Equal(t, input, string(result), "content without variables should be unchanged")
}

func TestExpandEnvWithEmptyInput(t *testing.T) {
	result := ExpandEnv([]byte(""))
	assert.Equal(t, "", string(result))
}

// Malformed template syntax must be passed through unchanged rather than
// causing errors. The YAML parser then handles the content or fails with a
// clearer error message.
func TestExpandEnvMalformedTemplates(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "unclosed template",
			input: "api_key: {{.API_KEY",
		},
		{
			name:  "only opening braces",
			input: "api_key: {{",
		},
		{
			name:  "missing one closing brace",
			input: "api_key: {{.API_KEY}",
		},
		{
			name:  "reversed template syntax",
			input: "api_key: }}.API_KEY{{",
		},
		{
			name:  "variable without leading dot",
			input: "api_key: {{API_KEY}}",
		},
		{
			name:  "undefined pipeline function",
			input: "api_key: {{.API_KEY | upper}}",
		},
		{
			name:  "unclosed template in middle of valid YAML",
			input: "host: localhost\napi_key: {{.API_KEY\nport: 8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("API_KEY", "should-not-appear")

			result := ExpandEnv([]byte(tt.input))

			assert.Equal(t, tt.input, string(result),
				"malformed template should be passed through unchanged")
			assert.NotContains(t, string(result), "should-not-appear")
		})
	}
}

// When ExpandEnv passes data through on template errors, the YAML parser
// must still be able to process it (or reject it with its own error).
func TestExpandEnvPassThroughToYAMLParser(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectYAMLErr bool
	}{
		{
			name: "valid YAML without templates",
			input: `
server:
  http_port: "8080"
`,
			expectYAMLErr: false,
		},
		{
			name: "malformed template inside quoted string is valid YAML",
			input: `
server:
  http_port: "{{.HTTP_PORT"
`,
			expectYAMLErr: false,
		},
		{
			name: "malformed template plus invalid YAML",
			input: `
server:
  http_port: {{.HTTP_PORT
    bad: indentation
`,
			expectYAMLErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expanded := ExpandEnv([]byte(tt.input))

			var result map[string]any
			err := yaml.Unmarshal(expanded, &result)

			if tt.expectYAMLErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
			}
		})
	}
}

func TestExpandEnvReturnsOriginalBytesOnError(t *testing.T) {
	input := []byte("key: {{.VAR")
	result := ExpandEnv(input)

	assert.Equal(t, input, result, "must return original byte slice on parse error")
}
