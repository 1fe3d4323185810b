package util

import (
	"strings"
	"unicode/utf8"
)

// NormalizeKey lowercases and trims a string for use as a consistent lookup key.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Truncate shortens s to at most max runes, marking the cut with "...".
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= 3 {
		return string([]rune(s)[:max])
	}
	return string([]rune(s)[:max-3]) + "..."
}
