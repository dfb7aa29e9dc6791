package sanitize

import "strings"

// Spaces collapses every run of whitespace into a single space and trims
// both ends.
func Spaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
