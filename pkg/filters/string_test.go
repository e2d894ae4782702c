package filters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/filtered/pkg/filters"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes leading and trailing whitespace",
			input:    "  hello world  ",
			expected: "hello world",
		},
		{
			name:     "removes tabs and newlines",
			input:    "\t\nhello\n\t",
			expected: "hello",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "preserves internal whitespace",
			input:    "  hello  world  ",
			expected: "hello  world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filters.Trim(tt.input))
		})
	}
}

func TestCaseFilters(t *testing.T) {
	assert.Equal(t, "hello", filters.ToLower("HeLLo"))
	assert.Equal(t, "HELLO", filters.ToUpper("heLLo"))
	assert.Equal(t, "hello", filters.TrimToLower("  HeLLo  "))
	assert.Equal(t, "HELLO", filters.TrimToUpper("  heLLo  "))
	assert.Equal(t, "Hello World", filters.TitleCase("hello world"))
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses runs of spaces",
			input:    "a   b    c",
			expected: "a b c",
		},
		{
			name:     "collapses mixed whitespace",
			input:    "a \t\n b",
			expected: "a b",
		},
		{
			name:     "trims the result",
			input:    "   a b   ",
			expected: "a b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filters.CollapseWhitespace(tt.input))
		})
	}
}

func TestSingleLine(t *testing.T) {
	assert.Equal(t, "line one line two", filters.SingleLine("line one\r\nline two"))
	assert.Equal(t, "a b c", filters.SingleLine("a\nb\nc"))
}

func TestMaxRunes(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		input    string
		expected string
	}{
		{
			name:     "truncates long strings",
			n:        3,
			input:    "hello",
			expected: "hel",
		},
		{
			name:     "keeps short strings",
			n:        10,
			input:    "hello",
			expected: "hello",
		},
		{
			name:     "counts runes not bytes",
			n:        2,
			input:    "héllo",
			expected: "hé",
		},
		{
			name:     "zero limit yields empty string",
			n:        0,
			input:    "hello",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filters.MaxRunes(tt.n)(tt.input))
		})
	}
}

func TestRemoveChars(t *testing.T) {
	f := filters.RemoveChars("-() ")

	assert.Equal(t, "5551234567", f("(555) 123-4567"))
	assert.Equal(t, "abc", f("abc"))
}

func TestCharacterClassFilters(t *testing.T) {
	assert.Equal(t, "12345", filters.KeepDigits("a1b2c3d4e5"))
	assert.Equal(t, "abc def", filters.KeepAlpha("abc1 2def!"))
	assert.Equal(t, "abc 123", filters.KeepAlphanumeric("abc @123!"))
}

func TestRemoveControlChars(t *testing.T) {
	assert.Equal(t, "abc", filters.RemoveControlChars("a\x00b\x07c"))
	assert.Equal(t, "a\nb\tc", filters.RemoveControlChars("a\nb\tc"))
}
