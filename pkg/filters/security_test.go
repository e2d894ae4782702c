package filters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/filtered/pkg/filters"
)

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt;", filters.EscapeHTML("<b>hi</b>"))
	assert.Equal(t, "a &amp; b", filters.EscapeHTML("a & b"))
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes tags",
			input:    "<p>hello <b>world</b></p>",
			expected: "hello world",
		},
		{
			name:     "unescapes entities",
			input:    "a &amp; b",
			expected: "a & b",
		},
		{
			name:     "plain text passes through",
			input:    "hello",
			expected: "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filters.StripHTML(tt.input))
		})
	}
}

func TestStripScriptTags(t *testing.T) {
	assert.Equal(t, "before after", filters.StripScriptTags(`before <script>alert(1)</script>after`))
	assert.Equal(t, "safe", filters.StripScriptTags("safe"))
}

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "replaces unsafe characters",
			input:    `report<2024>:v1.pdf`,
			expected: "report_2024__v1.pdf",
		},
		{
			name:     "trims leading and trailing dots and spaces",
			input:    " .hidden. ",
			expected: "hidden",
		},
		{
			name:     "falls back for empty results",
			input:    "...",
			expected: "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filters.SafeFilename(tt.input))
		})
	}
}
