package catalog

import "github.com/shopspring/decimal"

// section holds the nature letters for one chart section (leading
// digit 1..8). CONTPAQi letters: A/B activo, C/D pasivo, E/F capital,
// G/H resultados, K/L orden.
type section struct {
	debit   string
	credit  string
	neutral string
}

var sections = map[int]section{
	1: {"A", "B", "A"},
	2: {"C", "D", "D"},
	3: {"E", "F", "F"},
	4: {"G", "H", "H"},
	5: {"G", "H", "G"},
	6: {"G", "H", "G"},
	7: {"G", "H", "G"},
	8: {"K", "L", "L"},
}

// Nature computes the single-letter balance nature for an account. The
// section comes from the first digit appearing in the name, falling
// back to the first digit of the code; the letter within the section
// from comparing the debit and credit totals.
func Nature(rawCode, name string, debit, credit decimal.Decimal) string {
	d := firstDigit(name)
	if d == 0 {
		d = firstDigit(rawCode)
	}
	s, ok := sections[d]
	if !ok {
		return "A"
	}
	switch debit.Cmp(credit) {
	case 1:
		return s.debit
	case -1:
		return s.credit
	default:
		return s.neutral
	}
}

// firstDigit returns the first decimal digit in s, or 0 if none.
func firstDigit(s string) int {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return int(r - '0')
		}
	}
	return 0
}
