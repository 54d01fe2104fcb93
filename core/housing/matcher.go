package housing

import (
	"regexp"
	"strings"
)

// dormPattern builds a case-insensitive word-boundary pattern for a dorm name.
// Internal whitespace matches zero-or-more whitespace so "Clark Kerr" also
// matches "ClarkKerr"; metacharacters in the name are escaped.
// The trailing \b keeps "Unit 1" from matching "Unit 10".
func dormPattern(dormName string) *regexp.Regexp {
	parts := strings.Fields(dormName)
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return regexp.MustCompile(`(?i)\b` + strings.Join(parts, `\s*`) + `\b`)
}

// matchPosts returns all posts mentioning the dorm, in corpus order.
func matchPosts(dormName string, posts []Post) []Post {
	pattern := dormPattern(dormName)
	matched := make([]Post, 0)
	for _, p := range posts {
		if pattern.MatchString(p.Title + " " + p.Content) {
			matched = append(matched, p)
		}
	}
	return matched
}
