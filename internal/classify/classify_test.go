package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contport-dev/contport/internal/model"
	"github.com/contport-dev/contport/internal/roles"
)

func testIndex() *roles.Index {
	return roles.NewIndex([]roles.Rule{
		{Prefix: "102", Name: "Bancos"},
		{Prefix: "105", Name: "Clientes"},
		{Prefix: "201", Name: "Proveedores"},
		{Prefix: "401", Name: "Ingresos"},
		{Prefix: "601", Name: "Gastos"},
	})
}

func mov(code string) model.Movimiento {
	return model.Movimiento{AccountCode: code}
}

func TestRolePolicy(t *testing.T) {
	policy := RolePolicy(testIndex())

	tests := []struct {
		name  string
		codes []string
		want  Kind
	}{
		{"bank + customer is income", []string{"10200001", "10500001"}, Income},
		{"bank + income account is income", []string{"10200001", "40100001"}, Income},
		{"bank + supplier is expense", []string{"10200001", "20100001"}, Expense},
		{"bank + expense account is expense", []string{"10200001", "60100001"}, Expense},
		{"expenses without bank are journal", []string{"60100001", "60100002"}, General},
		{"customer without bank is journal", []string{"10500001", "40100001"}, General},
		{"no postings is journal", nil, General},
		{"income wins over expense when both present", []string{"10200001", "10500001", "20100001"}, Income},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.Poliza{}
			for _, c := range tt.codes {
				p.Movs = append(p.Movs, mov(c))
			}
			assert.Equal(t, tt.want, policy(p))
		})
	}
}

func TestRolePolicyUsesFallbackDigits(t *testing.T) {
	// Empty catalog: classification still works off leading digits for
	// income/expense, but nothing can be a bank.
	policy := RolePolicy(roles.NewIndex(nil))

	p := model.Poliza{Movs: []model.Movimiento{mov("40100001"), mov("60100001")}}
	assert.Equal(t, General, policy(p))
}

func TestHeuristic(t *testing.T) {
	tests := []struct {
		name     string
		sourceID string
		concept  string
		movs     []model.Movimiento
		want     Kind
	}{
		{
			name:     "invoice reference is journal",
			sourceID: "INV/2026/0042",
			movs:     []model.Movimiento{{Concept: "Clientes"}},
			want:     General,
		},
		{
			name:     "factura reference is journal",
			sourceID: "FACTU/2026/0001",
			want:     General,
		},
		{
			name:    "miscellaneous operations is journal",
			concept: "Operaciones varias agosto",
			want:    General,
		},
		{
			name:    "effectively paid with tax collected is income",
			concept: "Effectively Paid",
			movs:    []model.Movimiento{{AccountDesc: "IVA trasladado cobrado"}},
			want:    Income,
		},
		{
			name:    "effectively paid with tax creditable is expense",
			concept: "Effectively Paid",
			movs:    []model.Movimiento{{AccountDesc: "IVA acreditable pagado"}},
			want:    Expense,
		},
		{
			name:     "bank entry touching clients is income",
			sourceID: "BNK1/2026/0100",
			movs:     []model.Movimiento{{AccountDesc: "Clientes nacionales"}},
			want:     Income,
		},
		{
			name:     "bank entry touching suppliers is expense",
			sourceID: "BNK1/2026/0101",
			movs:     []model.Movimiento{{AccountDesc: "Proveedores"}},
			want:     Expense,
		},
		{
			name:     "bank entry with commissions is expense",
			sourceID: "BNK1/2026/0102",
			movs:     []model.Movimiento{{Concept: "Comisiones bancarias"}},
			want:     Expense,
		},
		{
			name:     "bank plus factu in one movement is expense",
			sourceID: "BNK1/2026/0103",
			movs:     []model.Movimiento{{Concept: "Banco pago FACTU/001", AccountDesc: ""}},
			want:     Expense,
		},
		{
			name:     "bank plus inv in one movement is income",
			sourceID: "BNK1/2026/0104",
			movs:     []model.Movimiento{{Concept: "Banco cobro INV/055"}},
			want:     Income,
		},
		{
			name:     "bank plus tax authority is expense",
			sourceID: "BNK1/2026/0105",
			movs:     []model.Movimiento{{Concept: "Banco SAT impuestos julio"}},
			want:     Expense,
		},
		{
			name: "bank with creditable tax outside BNK is expense",
			movs: []model.Movimiento{{Concept: "Banco", AccountDesc: "IVA acreditable"}},
			want: Expense,
		},
		{
			name: "nothing recognizable is journal",
			movs: []model.Movimiento{{Concept: "Depreciación"}},
			want: General,
		},
		{
			name:     "clients rule beats supplier rule inside BNK",
			sourceID: "BNK1/2026/0106",
			movs: []model.Movimiento{
				{AccountDesc: "Clientes"},
				{AccountDesc: "Proveedores"},
			},
			want: Income,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.Poliza{SourceID: tt.sourceID, Concept: tt.concept, Movs: tt.movs}
			assert.Equal(t, tt.want, Heuristic(p))
		})
	}
}

func TestIsSuspense(t *testing.T) {
	assert.True(t, IsSuspense(model.Poliza{Concept: "Traspaso a Cuenta Transitoria"}))
	assert.True(t, IsSuspense(model.Poliza{
		Movs: []model.Movimiento{{AccountDesc: "Cuenta transitoria MXN"}},
	}))
	assert.True(t, IsSuspense(model.Poliza{
		Movs: []model.Movimiento{{Concept: "abono cuenta transitoria"}},
	}))
	assert.False(t, IsSuspense(model.Poliza{
		Concept: "Pago efectivo",
		Movs:    []model.Movimiento{{AccountDesc: "Bancos"}},
	}))
}

func TestForName(t *testing.T) {
	ix := testIndex()

	p, err := ForName("roles", ix)
	require.NoError(t, err)
	require.NotNil(t, p)

	p, err = ForName("", ix)
	require.NoError(t, err)
	require.NotNil(t, p)

	p, err = ForName("heuristic", ix)
	require.NoError(t, err)
	require.NotNil(t, p)

	_, err = ForName("blended", ix)
	assert.Error(t, err)
}
