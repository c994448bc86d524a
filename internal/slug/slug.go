// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"regexp"
	"strings"
)

var (
	disallowed = regexp.MustCompile(`[^\w\s-]`)
	separators = regexp.MustCompile(`[\s_-]+`)
)

// Make converts text into a URL-safe slug: lowercase, special characters
// stripped, runs of spaces/underscores/hyphens collapsed to a single hyphen,
// leading and trailing hyphens trimmed. Empty input yields an empty string;
// callers must guard.
func Make(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = disallowed.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
