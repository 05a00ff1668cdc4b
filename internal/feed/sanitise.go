package feed

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled regular expressions for HTML stripping.
var (
	htmlComments = regexp.MustCompile(`(?s)<!--.*?-->`)
	allTags      = regexp.MustCompile(`<[^>]+>`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// StripHTML removes markup from a free-text field and canonicalises its
// whitespace: tags are dropped, the text fragments between them are
// joined by single spaces, entities are decoded, and every whitespace
// run (including newlines) collapses to one space. The result is
// trimmed. Empty input yields an empty string, already-clean text passes
// through unchanged, and malformed markup degrades gracefully instead of
// failing.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}

	s = htmlComments.ReplaceAllString(s, " ")
	s = allTags.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = whitespace.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}
