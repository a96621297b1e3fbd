package poliza

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contport-dev/contport/internal/classify"
	"github.com/contport-dev/contport/internal/model"
	"github.com/contport-dev/contport/internal/sheet"
)

// always classifies everything as general journal.
func generalPolicy(model.Poliza) classify.Kind { return classify.General }

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func tags(rows []sheet.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Cells[0].(string)
	}
	return out
}

func TestBuildRowsShape(t *testing.T) {
	polizas := []model.Poliza{{
		Date:     "2026-08-15",
		Concept:  "Cobro cliente",
		SourceID: "BNK1/2026/0100",
		Movs: []model.Movimiento{
			{
				AccountCode: "1.02.01",
				Concept:     "Deposito",
				Debit:       d("1160.005"),
				Attachments: []string{"AAAA-1111"},
			},
			{
				AccountCode: "1.05.01",
				Concept:     "Pago efectivo - Cobro",
				Credit:      d("1160.00"),
				Attachments: []string{"AAAA-1111", "BBBB-2222"},
			},
		},
	}}

	rows, emitted := BuildRows(polizas, generalPolicy, 8)
	assert.Equal(t, 1, emitted)
	require.Equal(t, []string{"P", "M1", "AM", "M1", "AM", "AM", "AD", "AD"}, tags(rows))

	header := rows[0].Cells
	assert.Equal(t, "20260815", header[1])
	assert.Equal(t, 3, header[2])
	assert.Equal(t, 1, header[3])
	assert.Equal(t, "Cobro cliente - BNK1/2026/0100", header[6])
	assert.Equal(t, 11, header[7])

	debitRow := rows[1].Cells
	assert.Equal(t, "10201000", debitRow[1])
	assert.Equal(t, "BNK1/2026/0100", debitRow[2])
	assert.Equal(t, 0, debitRow[3]) // cargo
	assert.Equal(t, 1160.01, debitRow[4])
	assert.Equal(t, "Deposito", debitRow[7])

	creditRow := rows[3].Cells
	assert.Equal(t, 1, creditRow[3]) // abono takes precedence when credit is non-zero
	assert.Equal(t, 1160.00, creditRow[4])
	// Boilerplate prefix stripped from the movement concept.
	assert.Equal(t, "Cobro", creditRow[7])

	// AD trailers come after all movements, one per unique identifier.
	assert.Equal(t, "AAAA-1111", rows[6].Cells[1])
	assert.Equal(t, "BBBB-2222", rows[7].Cells[1])
}

func TestBuildRowsSuspenseConsumesNoFolio(t *testing.T) {
	polizas := []model.Poliza{
		{Date: "2026-08-01", SourceID: "A/1", Movs: []model.Movimiento{{AccountCode: "102"}}},
		{Date: "2026-08-02", SourceID: "A/2", Movs: []model.Movimiento{
			{AccountCode: "199", AccountDesc: "Cuenta transitoria"},
		}},
		{Date: "2026-08-03", SourceID: "A/3", Movs: []model.Movimiento{{AccountCode: "102"}}},
	}

	rows, emitted := BuildRows(polizas, generalPolicy, 8)
	assert.Equal(t, 2, emitted)

	var folios []int
	var ids []string
	for _, r := range rows {
		if r.Cells[0] == "P" {
			folios = append(folios, r.Cells[3].(int))
			ids = append(ids, r.Cells[6].(string))
		}
	}
	// Strictly sequential from 1, no gap for the excluded entry.
	assert.Equal(t, []int{1, 2}, folios)
	assert.Equal(t, []string{" - A/1", " - A/3"}, ids)
}

func TestBuildRowsCashPaymentConcept(t *testing.T) {
	polizas := []model.Poliza{{
		Date:     "2026-08-01",
		Concept:  "Pago efectivo",
		SourceID: "CASH/0001",
		Movs:     []model.Movimiento{{AccountCode: "101"}},
	}}

	rows, _ := BuildRows(polizas, generalPolicy, 8)
	assert.Equal(t, "CASH/0001", rows[0].Cells[6])
}

func TestBuildRowsDateFallback(t *testing.T) {
	polizas := []model.Poliza{{
		Date:     "2026/08/01",
		SourceID: "X/1",
		Movs:     []model.Movimiento{{AccountCode: "101"}},
	}}

	rows, _ := BuildRows(polizas, generalPolicy, 8)
	assert.Equal(t, "20260801", rows[0].Cells[1])
}

func TestTruncateRef(t *testing.T) {
	long := strings.Repeat("x", 45)
	assert.Len(t, truncateRef(long), 30)
	assert.Equal(t, long[:30], truncateRef(long))

	exact := strings.Repeat("y", 30)
	assert.Equal(t, exact, truncateRef(exact))
	assert.Equal(t, "corta", truncateRef("corta"))
}
