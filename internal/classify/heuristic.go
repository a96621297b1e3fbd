package classify

import (
	"strings"

	"github.com/contport-dev/contport/internal/model"
)

// Heuristic is the historical keyword-based policy. The rule order is
// first-match-wins and reproduces the legacy output exactly, including
// the overlapping conditions; do not reorder.
func Heuristic(p model.Poliza) Kind {
	sourceID := strings.ToUpper(p.SourceID)
	concept := strings.ToLower(p.Concept)

	texts := make([]string, len(p.Movs))
	for i, m := range p.Movs {
		texts[i] = strings.ToLower(m.Concept) + " " + strings.ToLower(m.AccountDesc)
	}

	// Invoice-type references in the source id are always journal.
	if strings.Contains(sourceID, "INV/") || strings.Contains(sourceID, "FACTU/") {
		return General
	}

	if strings.Contains(concept, "operaciones varias") {
		return General
	}

	// Electronic payments: tax-collected means income, tax-creditable
	// means expense.
	if strings.Contains(concept, "effectively paid") {
		if anyContains(texts, "iva traslad") {
			return Income
		}
		if anyContains(texts, "iva acredit") {
			return Expense
		}
	}

	if strings.Contains(sourceID, "BNK") {
		if anyContains(texts, "clientes") {
			return Income
		}
		if anyContains(texts, "proveedores", "gastos", "comisiones") {
			return Expense
		}
		if anyContainsBoth(texts, "banco", "factu") {
			return Expense
		}
		if anyContainsBoth(texts, "banco", "inv") {
			return Income
		}
		if anyContainsBoth(texts, "banco", "sat impuestos") {
			return Expense
		}
	}

	if anyContainsBoth(texts, "banco", "iva acredit") {
		return Expense
	}

	return General
}

// anyContains reports whether any text contains any of the substrings.
func anyContains(texts []string, subs ...string) bool {
	for _, t := range texts {
		for _, s := range subs {
			if strings.Contains(t, s) {
				return true
			}
		}
	}
	return false
}

// anyContainsBoth reports whether a single text contains both substrings.
func anyContainsBoth(texts []string, a, b string) bool {
	for _, t := range texts {
		if strings.Contains(t, a) && strings.Contains(t, b) {
			return true
		}
	}
	return false
}
