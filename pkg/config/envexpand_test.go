package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("WAYPLAN_EXPAND_A", "alpha")
	t.Setenv("WAYPLAN_EXPAND_B", "beta=with=equals")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single variable",
			input:    "model: {{.WAYPLAN_EXPAND_A}}",
			expected: "model: alpha",
		},
		{
			name:     "value containing equals signs",
			input:    "key: {{.WAYPLAN_EXPAND_B}}",
			expected: "key: beta=with=equals",
		},
		{
			name:     "missing variable expands to empty",
			input:    "key: '{{.WAYPLAN_EXPAND_MISSING}}'",
			expected: "key: ''",
		},
		{
			name:     "dollar signs pass through untouched",
			input:    "password: p@ss$word",
			expected: "password: p@ss$word",
		},
		{
			name:     "no template syntax",
			input:    "plain: yaml",
			expected: "plain: yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(ExpandEnv([]byte(tt.input))))
		})
	}
}

func TestExpandEnvMalformedTemplatePassesThrough(t *testing.T) {
	input := "broken: {{.UNCLOSED"
	assert.Equal(t, input, string(ExpandEnv([]byte(input))))
}
