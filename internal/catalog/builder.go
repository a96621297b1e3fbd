// Package catalog reconstructs the account hierarchy from an
// indentation-flattened export and emits CONTPAQi "C" catalog rows.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/contport-dev/contport/internal/code"
	"github.com/contport-dev/contport/internal/model"
)

// RawRow is one line of the source export before resolution. Indent is
// the 1-based depth; Code may be empty when the code is embedded in
// the name. Debit and Credit are the period totals, used only to pick
// the nature letter.
type RawRow struct {
	Indent int
	Code   string
	Name   string
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// Matcher resolves an account name (and, as fallback, its parent's
// name) against the grouping reference table.
type Matcher interface {
	Match(name, parentName string) (group int, classID string, conf model.MatchConfidence)
}

// stackEntry is the most recently seen node at one indent level.
type stackEntry struct {
	code string
	name string
}

// Build resolves rows in file order into AccountNodes. Rows with no
// recoverable code are skipped; duplicate codes pass through untouched
// (deduplication belongs to Merge, which works on built catalogs).
func Build(rows []RawRow, ref Matcher, digits int) []model.AccountNode {
	parents := make(map[int]stackEntry)
	var nodes []model.AccountNode

	for _, row := range rows {
		raw := code.Sanitize(row.Code)
		name := strings.TrimSpace(row.Name)

		if raw == "" {
			extracted, rest, ok := code.FromName(name)
			if !ok {
				continue
			}
			raw = code.Sanitize(extracted)
			name = rest
		} else {
			name = stripDuplicateCode(name, raw)
		}
		if raw == "" {
			continue
		}

		nature := Nature(raw, name, row.Debit, row.Credit)

		level := row.Indent
		if level < 1 {
			level = 1
		}

		var parentRaw, parentName string
		if level > 1 {
			if p, ok := parents[level-1]; ok {
				parentRaw = p.code
				parentName = p.name
			}
		}
		parentCode := code.Root(digits)
		if parentRaw != "" {
			parentCode = code.Normalize(parentRaw, digits)
		}

		// This row becomes the ancestor at its level; anything deeper
		// belongs to an earlier branch and is discarded.
		parents[level] = stackEntry{code: raw, name: name}
		for k := range parents {
			if k > level {
				delete(parents, k)
			}
		}

		group, classID, conf := ref.Match(name, parentName)

		nodes = append(nodes, model.AccountNode{
			Code:        code.Normalize(raw, digits),
			ParentCode:  parentCode,
			Name:        name,
			Nature:      nature,
			LedgerGroup: group,
			ClassID:     classID,
			Match:       conf,
		})
	}
	return nodes
}

// stripDuplicateCode removes the code from the front of the name when
// the name cell repeats it, like "1.1 Caja" with code "1.1".
func stripDuplicateCode(name, rawCode string) string {
	trimmed := strings.TrimSpace(name)
	rest, ok := strings.CutPrefix(trimmed, rawCode)
	if !ok {
		return name
	}
	cleaned := strings.TrimLeft(rest, " \t")
	if cleaned == rest || cleaned == "" {
		// No separating whitespace, or nothing left: not a duplicate.
		return name
	}
	return cleaned
}

// IndentLevel derives the 1-based depth of a row from the cell's style
// indent, falling back to leading spaces (two per level) when the
// style carries no indent.
func IndentLevel(styleIndent int, rawText string) int {
	leading := len(rawText) - len(strings.TrimLeft(rawText, " "))
	if styleIndent == 0 && leading > 0 {
		level := leading / 2
		if level < 1 {
			level = 1
		}
		return level
	}
	return styleIndent + 1
}

// FindColumns locates the code and name columns in a header row by
// fuzzy match, defaulting to the first two columns.
func FindColumns(header []string) (codeIdx, nameIdx int) {
	codeIdx, nameIdx = 0, 1
	if len(header) < 2 {
		nameIdx = 0
	}
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		if strings.Contains(l, "cod") || strings.Contains(l, "cód") || strings.Contains(l, "clave") {
			codeIdx = i
			break
		}
	}
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		if strings.Contains(l, "nombre") || strings.Contains(l, "cuenta") {
			nameIdx = i
			break
		}
	}
	return codeIdx, nameIdx
}
