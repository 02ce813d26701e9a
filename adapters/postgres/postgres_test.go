package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty matches everything", "", "%%"},
		{"plain text", "CNSHA", "%CNSHA%"},
		{"percent is literal", "100%", `%100\%%`},
		{"underscore is literal", "w_m", `%w\_m%`},
		{"backslash is literal", `a\b`, `%a\\b%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, containsPattern(tt.input))
		})
	}
}

func TestPrefixPattern(t *testing.T) {
	assert.Equal(t, "CN%", prefixPattern("CN"))
	assert.Equal(t, `50\%%`, prefixPattern("50%"))
	assert.Equal(t, "%", prefixPattern(""))
}
