package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/ledger"
)

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ventaEn(ts time.Time) entity.Sale {
	return entity.Sale{ID: "v", Total: dec("10"), DTFCost: dec("0"), Status: entity.StatusPendiente, CreatedAt: ts}
}

// ──────────────────────────────────────────────────────────────────────────────
// Alcance de un día: la comparación trunca a fecha calendario ANTES de
// comparar. Una venta a las 23:59:59 del día D pertenece a D y nunca a D+1.
// ──────────────────────────────────────────────────────────────────────────────

func TestScope_Dia_LimiteDeMedianoche(t *testing.T) {
	d := fecha(2026, 3, 10)
	casiMedianoche := time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)
	pasadaMedianoche := time.Date(2026, 3, 11, 0, 0, 1, 0, time.UTC)

	sales := []entity.Sale{ventaEn(casiMedianoche), ventaEn(pasadaMedianoche)}

	dia, dropped := ledger.Day(d).FilterSales(sales)
	require.Zero(t, dropped)
	require.Len(t, dia, 1, "solo la venta de las 23:59:59 pertenece al día D")
	assert.Equal(t, casiMedianoche, dia[0].CreatedAt)

	diaSiguiente, _ := ledger.Day(fecha(2026, 3, 11)).FilterSales(sales)
	require.Len(t, diaSiguiente, 1, "la venta de las 00:00:01 pertenece a D+1")
	assert.Equal(t, pasadaMedianoche, diaSiguiente[0].CreatedAt)
}

func TestScope_Dia_EquivaleARangoFromToIguales(t *testing.T) {
	d := fecha(2026, 3, 10)
	sales := []entity.Sale{
		ventaEn(time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)),
		ventaEn(time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)),
		ventaEn(time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)),
	}

	porDia, _ := ledger.Day(d).FilterSales(sales)
	porRango, _ := ledger.Range(&d, &d).FilterSales(sales)

	assert.Equal(t, porDia, porRango, "day D y rango [D, D] deben producir el mismo conjunto")
}

// ──────────────────────────────────────────────────────────────────────────────
// Rangos abiertos
// ──────────────────────────────────────────────────────────────────────────────

func TestScope_RangoSoloDesde(t *testing.T) {
	from := fecha(2026, 3, 10)
	sales := []entity.Sale{
		ventaEn(time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC)),
		ventaEn(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)),
		ventaEn(time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)),
	}

	in, dropped := ledger.Range(&from, nil).FilterSales(sales)
	require.Zero(t, dropped)
	require.Len(t, in, 2, "sin límite superior entran todas las ventas desde `from` inclusive")
}

func TestScope_RangoSoloHasta(t *testing.T) {
	to := fecha(2026, 3, 10)
	expenses := []entity.Expense{
		{Amount: dec("1"), ExpenseDate: fecha(2026, 3, 10)},
		{Amount: dec("2"), ExpenseDate: fecha(2026, 3, 11)},
	}

	in, dropped := ledger.Range(nil, &to).FilterExpenses(expenses)
	require.Zero(t, dropped)
	require.Len(t, in, 1)
	assert.True(t, in[0].Amount.Equal(dec("1")))
}

func TestScope_SinLimites_IncluyeTodo(t *testing.T) {
	sales := []entity.Sale{
		ventaEn(time.Time{}), // incluso fecha cero: sin filtro no se excluye nada
		ventaEn(fecha(2026, 1, 1)),
	}

	in, dropped := ledger.Unbounded().FilterSales(sales)
	assert.Len(t, in, 2)
	assert.Zero(t, dropped)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fechas inválidas: fail closed
// ──────────────────────────────────────────────────────────────────────────────

func TestScope_FechaCero_ExcluidaDeAlcanceAcotado(t *testing.T) {
	d := fecha(2026, 3, 10)
	sales := []entity.Sale{
		ventaEn(time.Time{}),
		ventaEn(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)),
	}

	in, dropped := ledger.Day(d).FilterSales(sales)

	require.Len(t, in, 1, "la venta sin fecha jamás entra a un alcance acotado")
	assert.Equal(t, 1, dropped, "la exclusión se cuenta para reportarla como defecto de datos")
}

func TestScope_GastoSinFecha_ExcluidoYContado(t *testing.T) {
	to := fecha(2026, 3, 10)
	expenses := []entity.Expense{
		{Amount: dec("5")}, // sin expense_date
		{Amount: dec("7"), ExpenseDate: fecha(2026, 3, 1)},
	}

	in, dropped := ledger.Range(nil, &to).FilterExpenses(expenses)
	require.Len(t, in, 1)
	assert.Equal(t, 1, dropped)
}

// El filtro preserva el orden y no deduplica.
func TestScope_PreservaOrden(t *testing.T) {
	d := fecha(2026, 3, 10)
	primera := ventaEn(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))
	segunda := ventaEn(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	repetida := primera

	in, _ := ledger.Day(d).FilterSales([]entity.Sale{primera, segunda, repetida})

	require.Len(t, in, 3, "el filtro no deduplica")
	assert.Equal(t, primera.CreatedAt, in[0].CreatedAt)
	assert.Equal(t, segunda.CreatedAt, in[1].CreatedAt)
	assert.Equal(t, repetida.CreatedAt, in[2].CreatedAt)
}
