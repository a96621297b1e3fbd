package catalog

import (
	"strings"

	"github.com/contport-dev/contport/internal/code"
)

// recordTag is the first-column marker of a catalog account row.
const recordTag = "C"

// Merge returns the account rows of extra that are missing from base,
// comparing by normalized code, first seen wins. Both inputs are whole
// sheets; only rows tagged "C" participate, and duplicates inside
// either file collapse to their first occurrence.
func Merge(base, extra [][]string, digits int) [][]string {
	seen := make(map[string]bool)
	for _, row := range base {
		if key, ok := accountKey(row, digits); ok {
			seen[key] = true
		}
	}

	var added [][]string
	for _, row := range extra {
		key, ok := accountKey(row, digits)
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		added = append(added, row)
	}
	return added
}

// accountKey returns the normalized code of a "C" row, or false for
// template rows, non-account records, and rows without a usable code.
func accountKey(row []string, digits int) (string, bool) {
	if len(row) < 2 || strings.ToUpper(strings.TrimSpace(row[0])) != recordTag {
		return "", false
	}
	if code.Digits(row[1]) == "" {
		return "", false
	}
	return code.Normalize(row[1], digits), true
}
