package filters

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// NormalizeEmail lowercases, trims and consolidates consecutive dots in the
// local part. Input that does not look like an e-mail address is preserved
// after trimming and lowercasing rather than discarded.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := dotRegex.ReplaceAllString(parts[0], ".")
	local = strings.Trim(local, ".")

	return local + "@" + parts[1]
}

// NormalizeURL lowercases the host, defaults to HTTPS when no scheme is
// given and drops a bare trailing slash. Unparseable input is preserved to
// avoid data loss.
func NormalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	parsed.Host = strings.ToLower(parsed.Host)
	if parsed.Path == "/" {
		parsed.Path = ""
	}

	return parsed.String()
}

// CanonicalUUID rewrites any accepted UUID form (braced, URN, no hyphens)
// into the canonical lowercase hyphenated form. Input that is not a UUID is
// preserved after trimming.
func CanonicalUUID(s string) string {
	trimmed := strings.TrimSpace(s)

	u, err := uuid.Parse(trimmed)
	if err != nil {
		return trimmed
	}

	return u.String()
}

// KeepPhoneDigits strips every non-digit character, leaving the bare dial
// string for consistent storage and comparison.
func KeepPhoneDigits(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}
