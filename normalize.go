package textkit

import (
	"regexp"
	"strings"
)

// specialCharPattern matches every character outside the normalized
// alphabet of ASCII letters, digits, and whitespace. The POSIX class
// covers vertical tab, which \s in Go regexp does not.
var specialCharPattern = regexp.MustCompile(`[^A-Za-z0-9[:space:]]+`)

// Normalize deletes every character that is not an ASCII letter, digit,
// or whitespace and lowercases the rest. Deletion, not substitution:
// punctuation does not separate words, so "don't" normalizes to "dont"
// rather than "don t". Already-normalized text passes through unchanged.
func Normalize(text string) string {
	return strings.ToLower(specialCharPattern.ReplaceAllString(text, ""))
}

// Words returns the ordered normalized words of text: Normalize followed
// by a split on runs of whitespace.
func Words(text string) []string {
	return strings.Fields(Normalize(text))
}
