package textutil

import (
	"strings"
	"unicode"
)

// NormalizeNewlines converts Windows (\r\n) and bare carriage-return (\r)
// line endings to Unix newlines.
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// CollapseWhitespace trims the string and replaces every interior run of
// whitespace with a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// HasLetter reports whether the string contains at least one letter rune.
func HasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// HasLowercase reports whether the string contains at least one lowercase
// letter rune.
func HasLowercase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

// DigitsOnly reports whether the trimmed string is non-empty and consists
// solely of ASCII digits.
func DigitsOnly(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
