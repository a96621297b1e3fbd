// Package roles infers accounting roles (bank, customer, supplier,
// income, expense) for accounts from the exported account-group
// catalog, so journal entries can be classified without free-text
// heuristics.
package roles

import (
	"sort"
	"strings"

	"github.com/contport-dev/contport/internal/code"
)

// Role is one accounting nature an account group can carry.
type Role string

const (
	Bank     Role = "bank"
	Customer Role = "customer"
	Supplier Role = "supplier"
	Income   Role = "income"
	Expense  Role = "expense"
)

// Set is a set of roles.
type Set map[Role]bool

// Has reports whether r is in the set.
func (s Set) Has(r Role) bool { return s[r] }

// Rule maps a numeric code prefix to the roles of its account group.
type Rule struct {
	Prefix string // digits only
	Name   string
	Roles  Set
}

// Infer derives the role set of a group from keywords in its name and
// from the leading digit of its code prefix.
func Infer(prefixDigits, groupName string) Set {
	roles := make(Set)
	name := strings.ToLower(groupName)
	var first byte
	if prefixDigits != "" {
		first = prefixDigits[0]
	}

	if strings.Contains(name, "banco") || strings.Contains(name, "caja") {
		roles[Bank] = true
	}
	if strings.Contains(name, "clientes") {
		roles[Customer] = true
	}
	if strings.Contains(name, "proveedores") || strings.Contains(name, "acreedores") {
		roles[Supplier] = true
	}
	if first == '4' || strings.Contains(name, "ingresos") {
		roles[Income] = true
	}
	if first == '5' || first == '6' || first == '7' {
		roles[Expense] = true
	}
	if strings.Contains(name, "gastos") || strings.Contains(name, "costo") {
		roles[Expense] = true
	}
	return roles
}

// Index answers role lookups by account code. Rules are held sorted by
// descending prefix length so the longest matching prefix wins.
type Index struct {
	rules []Rule
}

// NewIndex builds an Index, inferring roles for any rule that has none
// and pre-sorting by prefix length.
func NewIndex(rules []Rule) *Index {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	for i := range sorted {
		if sorted[i].Roles == nil {
			sorted[i].Roles = Infer(sorted[i].Prefix, sorted[i].Name)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Prefix) > len(sorted[j].Prefix)
	})
	return &Index{rules: sorted}
}

// RolesFor returns the role set for an account code reference. With no
// matching prefix, the leading digit decides: 4 → income, 5–7 →
// expense, anything else → no roles.
func (ix *Index) RolesFor(rawCode string) Set {
	clean := code.Digits(rawCode)
	if clean == "" {
		return Set{}
	}

	for _, r := range ix.rules {
		if strings.HasPrefix(clean, r.Prefix) {
			out := make(Set, len(r.Roles))
			for role := range r.Roles {
				out[role] = true
			}
			return out
		}
	}

	fallback := Set{}
	switch clean[0] {
	case '4':
		fallback[Income] = true
	case '5', '6', '7':
		fallback[Expense] = true
	}
	return fallback
}
