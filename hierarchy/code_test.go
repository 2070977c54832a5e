package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<http://x/42-10>", "42-10"},
		{"http://x/skill/311", "311"},
		{"http://x/skill/ict-4-1", "4-1"},
		{"<42-10>", "42-10"},
		{"311", "311"},
		{"http://x/abc", ""},
		{"", ""},
		{"http://x/skill/", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractCode(tt.in), "input %q", tt.in)
	}
}

func TestCodePrefixesHyphenated(t *testing.T) {
	assert.Equal(t, []string{"44-1", "44", "4"}, CodePrefixes("44-1-2"))
	assert.Equal(t, []string{"42", "4"}, CodePrefixes("42-10"))
}

func TestCodePrefixesPlain(t *testing.T) {
	assert.Equal(t, []string{"31", "3"}, CodePrefixes("311"))
	assert.Nil(t, CodePrefixes("4"))
	assert.Nil(t, CodePrefixes(""))
}

func TestCodePrefixesDeduplicated(t *testing.T) {
	prefixes := CodePrefixes("4-1")
	seen := make(map[string]bool)
	for _, p := range prefixes {
		assert.False(t, seen[p], "duplicate prefix %q", p)
		seen[p] = true
	}
	assert.Equal(t, []string{"4"}, prefixes)
}
