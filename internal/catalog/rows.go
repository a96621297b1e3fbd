package catalog

import (
	"time"

	"github.com/contport-dev/contport/internal/model"
	"github.com/contport-dev/contport/internal/sheet"
)

const dateStamp = "20060102"

// Row converts a resolved account into the 17-column CONTPAQi "C"
// record. The match confidence only drives the review highlight.
func Row(n model.AccountNode, today time.Time) sheet.Row {
	h := sheet.HighlightNone
	switch n.Match {
	case model.MatchInherited:
		h = sheet.HighlightWarn
	case model.MatchUnmatched:
		h = sheet.HighlightError
	}

	return sheet.Row{
		Cells: []any{
			"C",
			n.Code,
			n.Name,
			n.Name,
			n.ParentCode,
			n.Nature,
			0,
			n.LedgerGroup,
			0,
			today.Format(dateStamp),
			11, // SistOrig
			1,
			0, 0, 0, 0,
			n.ClassID,
		},
		Highlight: h,
	}
}

// Rows emits one catalog record per node, in input order.
func Rows(nodes []model.AccountNode, today time.Time) []sheet.Row {
	rows := make([]sheet.Row, len(nodes))
	for i, n := range nodes {
		rows[i] = Row(n, today)
	}
	return rows
}
