// Package plates canonicalizes NZ license plates for lookups and display.
package plates

import (
	"regexp"
	"strings"
)

var (
	nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]`)
	valid    = regexp.MustCompile(`^[A-Z0-9]{3,6}$`)
)

// Normalize strips everything outside [A-Za-z0-9] and uppercases the rest,
// e.g. "ab 12-3" -> "AB123". Idempotent.
func Normalize(raw string) string {
	return strings.ToUpper(nonAlnum.ReplaceAllString(raw, ""))
}

// Valid reports whether a normalized plate matches the NZ format
// (standard or personalised, 3-6 characters).
func Valid(plate string) bool {
	return valid.MatchString(plate)
}
