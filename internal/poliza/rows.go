package poliza

import (
	"strings"
	"time"

	"github.com/contport-dev/contport/internal/classify"
	"github.com/contport-dev/contport/internal/code"
	"github.com/contport-dev/contport/internal/model"
	"github.com/contport-dev/contport/internal/sheet"
)

const (
	// cashPaymentConcept replaces the whole header concept with just
	// the source id when matched exactly.
	cashPaymentConcept = "Pago efectivo"
	// cashPaymentPrefix is boilerplate stripped from movement concepts.
	cashPaymentPrefix = "Pago efectivo - "

	refMaxLen = 30
	sistOrig  = 11
)

// BuildRows turns parsed pólizas into the P/M1/AM/AD record sequence.
// Suspense entries are dropped before classification and consume no
// folio; folios run from 1 with no gaps over the emitted entries.
// Returns the rows and the number of pólizas emitted.
func BuildRows(polizas []model.Poliza, policy classify.Policy, digits int) ([]sheet.Row, int) {
	var rows []sheet.Row
	folio := 0

	for _, p := range polizas {
		if classify.IsSuspense(p) {
			continue
		}
		folio++
		kind := policy(p)

		concept := p.Concept + " - " + p.SourceID
		if strings.TrimSpace(p.Concept) == cashPaymentConcept {
			concept = p.SourceID
		}

		// P, Fecha, TipoPol, Folio, Clase, IdDiario, Concepto, SistOrig, Impresa, Ajuste, Guid
		rows = append(rows, sheet.Row{Cells: []any{
			"P", formatDate(p.Date), int(kind), folio, 1, 0, concept, sistOrig, 0, 0, "",
		}})

		var trailerIDs []string
		seenIDs := make(map[string]bool)

		for _, m := range p.Movs {
			tipoMov := 0
			amount := m.Debit.Abs()
			if !m.Credit.IsZero() {
				tipoMov = 1
				amount = m.Credit.Abs()
			}
			amountVal, _ := amount.Round(2).Float64()

			movConcept := strings.ReplaceAll(m.Concept, cashPaymentPrefix, "")

			// M1, NumCta, Referencia, TipoMovto, Importe, IdDiario, ImporteME, Concepto, IdSegNeg, Guid, FechaAplicacion
			rows = append(rows, sheet.Row{Cells: []any{
				"M1",
				code.Normalize(m.AccountCode, digits),
				truncateRef(p.SourceID),
				tipoMov,
				amountVal,
				0, 0,
				movConcept,
				"", "", "",
			}})

			for _, id := range m.Attachments {
				rows = append(rows, sheet.Row{Cells: padRecord("AM", id)})
				if !seenIDs[id] {
					seenIDs[id] = true
					trailerIDs = append(trailerIDs, id)
				}
			}
		}

		// AD trailers go after every movement of the entry, one per
		// unique attached identifier.
		for _, id := range trailerIDs {
			rows = append(rows, sheet.Row{Cells: padRecord("AD", id)})
		}
	}
	return rows, folio
}

// formatDate reformats YYYY-MM-DD to YYYYMMDD, degrading to separator
// stripping for anything else.
func formatDate(s string) string {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("20060102")
	}
	return strings.NewReplacer("-", "", "/", "").Replace(s)
}

// truncateRef caps a reference at the CONTPAQi 30-character limit.
func truncateRef(ref string) string {
	r := []rune(ref)
	if len(r) <= refMaxLen {
		return ref
	}
	return string(r[:refMaxLen])
}

// padRecord builds a tag + identifier row padded to the 11-column layout.
func padRecord(tag, id string) []any {
	cells := make([]any, 11)
	cells[0] = tag
	cells[1] = id
	for i := 2; i < len(cells); i++ {
		cells[i] = ""
	}
	return cells
}
