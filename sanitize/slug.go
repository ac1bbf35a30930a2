package sanitize

import (
	"regexp"
	"strings"
)

var (
	slugPattern   = regexp.MustCompile(`^[a-z0-9-]+$`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	disallowed    = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRun     = regexp.MustCompile(`--+`)
)

// SanitizeSlug normalizes free text into a URL-safe slug: lowercase,
// whitespace runs collapsed to a single hyphen, anything outside
// [a-z0-9-] stripped, hyphen runs collapsed, leading/trailing hyphens
// trimmed. Idempotent; the output always satisfies ValidateSlug unless
// nothing survives the stripping.
func SanitizeSlug(text string) string {
	s := strings.ToLower(text)
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = disallowed.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ValidateSlug reports whether slug is non-empty lowercase alphanumerics
// and hyphens only.
func ValidateSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}
