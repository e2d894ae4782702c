package filters

import "regexp"

// Pre-compiled regular expressions shared across the catalog
var (
	dotRegex        = regexp.MustCompile(`\.+`)
	nonDigitRegex   = regexp.MustCompile(`\D`)
	whitespaceRegex = regexp.MustCompile(`\s+`)

	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
	scriptTagRegex  = regexp.MustCompile(`(?i)<script\b[^>]*>.*?</script>`)
	unsafeNameRegex = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
)
