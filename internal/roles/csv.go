package roles

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/contport-dev/contport/internal/code"
)

// ReadRules reads the exported "Grupos de cuentas" CSV. Column names
// are fuzzy-matched: "inicio" marks the code-prefix start column and
// "nombre" the group name. Rows without a numeric prefix are skipped.
func ReadRules(r io.Reader) ([]Rule, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading account groups CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	prefixIdx, nameIdx := -1, -1
	for i, h := range records[0] {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case prefixIdx < 0 && strings.Contains(l, "inicio"):
			prefixIdx = i
		case nameIdx < 0 && strings.Contains(l, "nombre"):
			nameIdx = i
		}
	}
	if prefixIdx < 0 {
		return nil, fmt.Errorf("account groups CSV has no start-prefix column")
	}

	var rules []Rule
	for _, rec := range records[1:] {
		prefix := ""
		if prefixIdx < len(rec) {
			prefix = code.Digits(rec[prefixIdx])
		}
		if prefix == "" {
			continue
		}
		name := ""
		if nameIdx >= 0 && nameIdx < len(rec) {
			name = strings.TrimSpace(rec[nameIdx])
		}
		rules = append(rules, Rule{Prefix: prefix, Name: name})
	}
	return rules, nil
}
