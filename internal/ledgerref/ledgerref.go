// Package ledgerref matches account names against the SAT grouping
// reference table to assign ledger-group levels and agrupador codes.
package ledgerref

import (
	"strconv"
	"strings"

	"github.com/contport-dev/contport/internal/model"
)

// defaultGroup is the CtaMayor level used whenever the table gives no
// usable level.
const defaultGroup = 2

// Entry is one reference row: the grouping level and the agrupador
// code, both kept as the raw cell text.
type Entry struct {
	Level string
	Code  string
}

// Table is the reference lookup, keyed by lowercased account name.
// Immutable for the duration of a run.
type Table struct {
	byName map[string]Entry
}

// New builds a Table from name → entry pairs. Keys are lowercased.
func New(entries map[string]Entry) *Table {
	byName := make(map[string]Entry, len(entries))
	for name, e := range entries {
		byName[strings.ToLower(strings.TrimSpace(name))] = e
	}
	return &Table{byName: byName}
}

// Empty returns a table that matches nothing. Used when the reference
// source is unreadable: the batch degrades to everything unmatched
// instead of failing.
func Empty() *Table {
	return &Table{byName: map[string]Entry{}}
}

// Len reports the number of reference entries.
func (t *Table) Len() int { return len(t.byName) }

// Match resolves an account name, falling back to the parent's name.
// A direct hit yields the entry's level (default 2 when unparsable)
// and code; a parent hit inherits only the code; otherwise the account
// stays unmatched with the default group.
func (t *Table) Match(name, parentName string) (int, string, model.MatchConfidence) {
	if e, ok := t.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return parseLevel(e.Level), e.Code, model.MatchConfident
	}
	if parentName != "" {
		if e, ok := t.byName[strings.ToLower(strings.TrimSpace(parentName))]; ok {
			return defaultGroup, e.Code, model.MatchInherited
		}
	}
	return defaultGroup, "", model.MatchUnmatched
}

func parseLevel(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return defaultGroup
	}
	return n
}

// FromRows builds a Table from a sheet whose first row is a header.
// Column names are fuzzy-matched: "nombre" for the account name,
// "nivel" for the level, "codigo"/"código" for the agrupador code.
// Rows without a name are skipped.
func FromRows(rows [][]string) *Table {
	if len(rows) < 2 {
		return Empty()
	}

	nameIdx, levelIdx, codeIdx := -1, -1, -1
	for i, h := range rows[0] {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case nameIdx < 0 && strings.Contains(l, "nombre"):
			nameIdx = i
		case levelIdx < 0 && strings.Contains(l, "nivel"):
			levelIdx = i
		case codeIdx < 0 && (strings.Contains(l, "codigo") || strings.Contains(l, "código")):
			codeIdx = i
		}
	}
	if nameIdx < 0 {
		return Empty()
	}

	entries := make(map[string]Entry)
	for _, row := range rows[1:] {
		name := cell(row, nameIdx)
		if name == "" {
			continue
		}
		entries[name] = Entry{Level: cell(row, levelIdx), Code: cell(row, codeIdx)}
	}
	return New(entries)
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
