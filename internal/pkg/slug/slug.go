// Package slug turns free-form titles into filename-safe tokens.
package slug

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
	disallowed    = regexp.MustCompile(`[^a-z0-9_-]+`)
)

// Make lowercases title, turns whitespace runs and repeated hyphens into a
// single underscore, drops every character outside [a-z0-9_-] and strips
// leading and trailing hyphens.
//
// Distinct titles may produce the same slug.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = whitespaceRun.ReplaceAllString(s, "_")
	s = hyphenRun.ReplaceAllString(s, "_")
	s = disallowed.ReplaceAllString(s, "")
	return strings.Trim(s, "-")
}
