package model

// MatchConfidence records how an account was resolved against the
// grouping reference table.
type MatchConfidence string

const (
	// MatchConfident means the account name itself was found in the table.
	MatchConfident MatchConfidence = "confident"
	// MatchInherited means the name missed but the parent's name hit, and
	// the parent's grouping code was inherited.
	MatchInherited MatchConfidence = "inherited"
	// MatchUnmatched means neither the name nor the parent's name was found.
	MatchUnmatched MatchConfidence = "unmatched"
)

// AccountNode is one resolved row of the chart of accounts, ready for
// the catalog row emitter. Codes are already normalized to the
// configured digit width.
type AccountNode struct {
	Code       string
	ParentCode string
	Name       string
	Nature     string // single-letter balance nature (A..L)

	LedgerGroup int    // CtaMayor level, default 2
	ClassID     string // SAT agrupador code, empty when unmatched
	Match       MatchConfidence
}
