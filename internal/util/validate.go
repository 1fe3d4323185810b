package util

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxServerNameLength is the longest display name accepted for a server.
const MaxServerNameLength = 64

// ValidateServerName checks a server display name before it is sent:
//   - Not blank
//   - At most MaxServerNameLength characters
//   - No control characters (tabs and newlines break table output)
func ValidateServerName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("server name cannot be empty")
	}

	if n := utf8.RuneCountInString(trimmed); n > MaxServerNameLength {
		return fmt.Errorf("server name must be at most %d characters, got %d", MaxServerNameLength, n)
	}

	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return fmt.Errorf("server name %q contains control characters", name)
		}
	}

	return nil
}
