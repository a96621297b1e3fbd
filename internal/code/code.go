// Package code canonicalizes account codes so they can be used as
// fixed-width join keys between the catalog and póliza postings.
package code

import (
	"regexp"
	"strings"
)

// DefaultDigits is the standard CONTPAQi account code width.
const DefaultDigits = 8

var (
	nonDigits    = regexp.MustCompile(`[^0-9]`)
	nonCodeChars = regexp.MustCompile(`[^0-9.]`)
	trailingZero = regexp.MustCompile(`(?:\.0)+$`)
	nameWithCode = regexp.MustCompile(`^\s*([0-9]+(?:\.[0-9]+)*)\s+(.+)$`)
)

// Normalize strips every non-digit character from raw and right-pads
// the result with zeros to the given width. Empty or all-non-digit
// input yields the all-zero code. Idempotent for already-normalized
// codes of the same width.
func Normalize(raw string, digits int) string {
	clean := nonDigits.ReplaceAllString(raw, "")
	if clean == "" {
		return strings.Repeat("0", digits)
	}
	if len(clean) >= digits {
		return clean
	}
	return clean + strings.Repeat("0", digits-len(clean))
}

// Digits strips everything except decimal digits from raw.
func Digits(raw string) string {
	return nonDigits.ReplaceAllString(raw, "")
}

// Root returns the all-zero code used as the parent of top-level accounts.
func Root(digits int) string {
	return strings.Repeat("0", digits)
}

// Sanitize trims a raw code cell down to digits and dot separators and
// drops trailing ".0" runs left behind by numeric cell formatting.
func Sanitize(raw string) string {
	s := nonCodeChars.ReplaceAllString(strings.TrimSpace(raw), "")
	return trailingZero.ReplaceAllString(s, "")
}

// FromName recovers a code embedded at the start of an account name,
// like "1.05.03 Bancos". It returns the numeric prefix, the remaining
// name, and whether a code was found.
func FromName(name string) (code, rest string, ok bool) {
	m := nameWithCode.FindStringSubmatch(name)
	if m == nil {
		return "", strings.TrimSpace(name), false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}
