package auditlog

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/svrmgr/internal/util"
)

// MaxArgLength bounds a single stored argument. Console commands and
// server names longer than this are cut.
const MaxArgLength = 120

// redactor replaces the value of a sensitive flag.
type redactor func(value string) string

func redact(string) string { return "<redacted>" }

func byteCount(value string) string { return fmt.Sprintf("<%d bytes>", len(value)) }

// flagRedactors lists flags whose values are not stored verbatim. Mod
// config text can hold credentials, so only its size is kept.
var flagRedactors = map[string]redactor{
	"--token":   redact,
	"--secret":  redact,
	"--content": byteCount,
}

// SanitizeArgs prepares command-line arguments for audit storage. Values
// of the flags in flagRedactors are replaced in both "--flag value" and
// "--flag=value" form, and every other argument is truncated to
// MaxArgLength.
func SanitizeArgs(args []string) []string {
	sanitized := make([]string, 0, len(args))
	var pending redactor

	for _, arg := range args {
		if pending != nil {
			sanitized = append(sanitized, pending(arg))
			pending = nil
			continue
		}

		if r, ok := flagRedactors[arg]; ok {
			sanitized = append(sanitized, arg)
			pending = r
			continue
		}

		if key, value, ok := strings.Cut(arg, "="); ok {
			if r, ok := flagRedactors[key]; ok {
				sanitized = append(sanitized, key+"="+r(value))
				continue
			}
		}

		sanitized = append(sanitized, util.Truncate(arg, MaxArgLength))
	}

	return sanitized
}
