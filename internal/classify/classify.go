// Package classify decides whether a póliza is an income, expense, or
// general-journal entry. Two policies exist: a keyword heuristic kept
// for compatibility with historical output, and the preferred
// role-based one driven by the account-group catalog. They are never
// blended; the suspense-account exclusion applies before either.
package classify

import (
	"fmt"
	"strings"

	"github.com/contport-dev/contport/internal/model"
	"github.com/contport-dev/contport/internal/roles"
)

// Kind is the CONTPAQi póliza type.
type Kind int

const (
	Income  Kind = 1
	Expense Kind = 2
	General Kind = 3
)

// SuspenseMarker flags entries that must never reach the target
// ledger, in any classification.
const SuspenseMarker = "cuenta transitoria"

// Policy classifies one póliza. Implementations are pure functions;
// callers run IsSuspense first.
type Policy func(p model.Poliza) Kind

// IsSuspense reports whether the entry touches a transitory account:
// the marker phrase in the entry concept or in any movement's concept
// or account description.
func IsSuspense(p model.Poliza) bool {
	if strings.Contains(strings.ToLower(p.Concept), SuspenseMarker) {
		return true
	}
	for _, m := range p.Movs {
		if strings.Contains(strings.ToLower(m.Concept), SuspenseMarker) ||
			strings.Contains(strings.ToLower(m.AccountDesc), SuspenseMarker) {
			return true
		}
	}
	return false
}

// ForName returns the policy selected by configuration: "roles"
// (preferred) or "heuristic" (compat).
func ForName(name string, ix *roles.Index) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "roles":
		return RolePolicy(ix), nil
	case "heuristic":
		return Heuristic, nil
	default:
		return nil, fmt.Errorf("unknown classification policy %q", name)
	}
}

// RolePolicy classifies from the aggregated roles of the accounts the
// entry posts to: bank plus customer/income means income, bank plus
// supplier/expense means expense, anything else is general journal.
func RolePolicy(ix *roles.Index) Policy {
	return func(p model.Poliza) Kind {
		var hasBank, hasCustomer, hasSupplier, hasIncome, hasExpense bool
		for _, m := range p.Movs {
			rs := ix.RolesFor(m.AccountCode)
			hasBank = hasBank || rs.Has(roles.Bank)
			hasCustomer = hasCustomer || rs.Has(roles.Customer)
			hasSupplier = hasSupplier || rs.Has(roles.Supplier)
			hasIncome = hasIncome || rs.Has(roles.Income)
			hasExpense = hasExpense || rs.Has(roles.Expense)
		}

		if hasBank && (hasCustomer || hasIncome) {
			return Income
		}
		if hasBank && (hasSupplier || hasExpense) {
			return Expense
		}
		return General
	}
}
