package ledgerref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contport-dev/contport/internal/model"
)

func TestMatchConfident(t *testing.T) {
	table := New(map[string]Entry{
		"Bancos": {Level: "1", Code: "102"},
		"caja":   {Level: "", Code: "101"},
	})

	group, classID, conf := table.Match("bancos", "")
	assert.Equal(t, 1, group)
	assert.Equal(t, "102", classID)
	assert.Equal(t, model.MatchConfident, conf)

	// Empty level falls back to 2.
	group, _, _ = table.Match("Caja", "")
	assert.Equal(t, 2, group)
}

func TestMatchUnparsableLevel(t *testing.T) {
	table := New(map[string]Entry{"Clientes": {Level: "n/a", Code: "105"}})

	group, _, conf := table.Match("Clientes", "")
	assert.Equal(t, 2, group)
	assert.Equal(t, model.MatchConfident, conf)
}

func TestMatchInheritedFromParent(t *testing.T) {
	table := New(map[string]Entry{"Bancos": {Level: "1", Code: "102"}})

	group, classID, conf := table.Match("Banco Azteca", "Bancos")
	assert.Equal(t, 2, group)
	assert.Equal(t, "102", classID)
	assert.Equal(t, model.MatchInherited, conf)
}

func TestMatchUnmatched(t *testing.T) {
	table := New(map[string]Entry{"Bancos": {Level: "1", Code: "102"}})

	group, classID, conf := table.Match("Otra", "Tampoco")
	assert.Equal(t, 2, group)
	assert.Equal(t, "", classID)
	assert.Equal(t, model.MatchUnmatched, conf)
}

func TestEmptyTableDegradesGracefully(t *testing.T) {
	table := Empty()
	_, _, conf := table.Match("Bancos", "Activo")
	assert.Equal(t, model.MatchUnmatched, conf)
}

func TestFromRows(t *testing.T) {
	rows := [][]string{
		{"Nivel", "Código agrupador", "Nombre de la cuenta"},
		{"1", "102", "Bancos"},
		{"2", "102.01", "Bancos nacionales"},
		{"", "", ""},
	}

	table := FromRows(rows)
	require.Equal(t, 2, table.Len())

	group, classID, conf := table.Match("bancos nacionales", "")
	assert.Equal(t, 2, group)
	assert.Equal(t, "102.01", classID)
	assert.Equal(t, model.MatchConfident, conf)
}

func TestFromRowsWithoutNameColumn(t *testing.T) {
	rows := [][]string{
		{"a", "b"},
		{"1", "2"},
	}
	assert.Equal(t, 0, FromRows(rows).Len())
}

func TestFromRowsTooShort(t *testing.T) {
	assert.Equal(t, 0, FromRows(nil).Len())
	assert.Equal(t, 0, FromRows([][]string{{"Nombre"}}).Len())
}
