package filters

import (
	"html"
	"strings"
)

// EscapeHTML escapes HTML special characters.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// StripHTML removes HTML tags and unescapes the remaining entities.
func StripHTML(s string) string {
	return html.UnescapeString(htmlTagRegex.ReplaceAllString(s, ""))
}

// StripScriptTags removes <script> tags together with their content.
func StripScriptTags(s string) string {
	return scriptTagRegex.ReplaceAllString(s, "")
}

// SafeFilename replaces filesystem-unsafe characters, trims problematic
// leading and trailing characters, enforces the 255-byte limit and falls
// back to "file" for names that end up empty.
func SafeFilename(name string) string {
	safe := unsafeNameRegex.ReplaceAllString(name, "_")
	safe = strings.Trim(safe, " .")

	if len(safe) > 255 {
		safe = safe[:255]
	}
	if safe == "" {
		safe = "file"
	}

	return safe
}
