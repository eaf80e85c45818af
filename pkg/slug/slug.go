package slug

import (
	"regexp"
	"strings"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	disallowed = regexp.MustCompile(`[^a-z0-9-]`)
)

// Make derives a URL-safe slug from a free-text title.
// Runs of whitespace become a single hyphen, everything outside
// [a-z0-9-] is dropped. The input is not trimmed first, so leading
// or trailing whitespace produces leading or trailing hyphens.
// Two titles can produce the same slug.
func Make(title string) string {
	s := strings.ToLower(title)
	s = whitespace.ReplaceAllString(s, "-")
	return disallowed.ReplaceAllString(s, "")
}
