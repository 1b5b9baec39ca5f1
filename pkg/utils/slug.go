package utils

import "strings"

// Slugify lowercases s and collapses whitespace runs into single hyphens,
// matching the URL style used across activity and share links.
func Slugify(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
