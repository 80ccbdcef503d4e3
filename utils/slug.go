package utils

import (
	"strings"
	"unicode"
)

// Slugify normalizes a title into a lowercase, hyphen-separated URL slug.
// Anything outside [a-z0-9] becomes a separator and separators never repeat,
// so "Hello,  World!" and "hello world" produce the same slug.
func Slugify(text string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash

	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case r >= 'a' && r <= 'z' || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
