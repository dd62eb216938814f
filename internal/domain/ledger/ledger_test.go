package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func venta(total, dtf string, status entity.SaleStatus, items ...entity.SaleItem) entity.Sale {
	return entity.Sale{
		ID:           "v-test",
		CustomerName: "Cliente",
		Total:        dec(total),
		DTFCost:      dec(dtf),
		Status:       status,
		CreatedAt:    time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
		Items:        items,
	}
}

func item(qty int64, unitCost string) entity.SaleItem {
	return entity.SaleItem{Qty: qty, UnitCost: dec(unitCost), UnitPrice: dec("0")}
}

// ──────────────────────────────────────────────────────────────────────────────
// SaleProfit
// ──────────────────────────────────────────────────────────────────────────────

// Vector de referencia: total 100, DTF 5, 2 unidades a costo 10
// → COGS 20, ganancia 100 − 20 − 5 = 75.
func TestSaleProfit_VectorReferencia(t *testing.T) {
	s := venta("100", "5", entity.StatusPendiente, item(2, "10"))

	require.True(t, ledger.ItemsCost(s.Items).Equal(dec("20")),
		"el COGS de la venta debe ser qty × unit_cost = 20")
	assert.True(t, ledger.SaleProfit(s).Equal(dec("75")),
		"ganancia = 100 − 20 − 5 = 75")
}

func TestSaleProfit_SinItems(t *testing.T) {
	s := venta("50", "8.25", entity.StatusEnviado)
	assert.True(t, ledger.SaleProfit(s).Equal(dec("41.75")),
		"una venta sin líneas solo descuenta el DTF")
}

func TestSaleProfit_PuedeSerNegativa(t *testing.T) {
	// El total es autoritativo aunque sea menor que los costos (descuento
	// agresivo); la ganancia negativa se muestra, no se corrige.
	s := venta("10", "5", entity.StatusPendiente, item(3, "10"))
	assert.True(t, ledger.SaleProfit(s).Equal(dec("-25")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Rollup
// ──────────────────────────────────────────────────────────────────────────────

func TestRollup_Vacio_TodoCero(t *testing.T) {
	tot := ledger.Rollup(nil, nil)

	assert.True(t, tot.Revenue.IsZero())
	assert.True(t, tot.CostOfGoods.IsZero())
	assert.True(t, tot.DTFTotal.IsZero())
	assert.True(t, tot.ExpenseTotal.IsZero())
	assert.True(t, tot.NetProfit.IsZero(), "sin registros todos los totales son cero, nunca error")
}

// Vector de referencia del dashboard: dos ventas + un gasto.
func TestRollup_VectorReferencia(t *testing.T) {
	sales := []entity.Sale{
		venta("100", "5", entity.StatusPendiente, item(2, "10")),
		venta("50", "0", entity.StatusEnviado, item(1, "7.50")),
	}
	expenses := []entity.Expense{
		{Description: "tinta", Amount: dec("30"), ExpenseDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
	}

	tot := ledger.Rollup(sales, expenses)

	assert.True(t, tot.Revenue.Equal(dec("150")), "revenue = 100 + 50")
	assert.True(t, tot.CostOfGoods.Equal(dec("27.50")), "cogs = 20 + 7.50")
	assert.True(t, tot.DTFTotal.Equal(dec("5")))
	assert.True(t, tot.ExpenseTotal.Equal(dec("30")))
	assert.True(t, tot.NetProfit.Equal(dec("87.50")), "ganancia = 150 − 27.50 − 5 − 30")
}

// Propiedad central del motor: la suma de ganancias por venta (libro
// diario) coincide exactamente con el NetProfit agregado sin gastos.
func TestRollup_ConsistenteConGananciaPorVenta(t *testing.T) {
	sales := []entity.Sale{
		venta("100", "5", entity.StatusPendiente, item(2, "10"), item(1, "3.33")),
		venta("259.99", "12.50", entity.StatusEnviado, item(4, "18.75")),
		venta("0", "0", entity.StatusPendiente),
		venta("45.10", "1.01", entity.StatusEnviado, item(7, "2.07")),
	}

	suma := decimal.Zero
	for _, s := range sales {
		suma = suma.Add(ledger.SaleProfit(s))
	}

	tot := ledger.Rollup(sales, nil)
	assert.True(t, suma.Equal(tot.NetProfit),
		"Σ SaleProfit debe igualar NetProfit con cero gastos: %s vs %s", suma, tot.NetProfit)
}

// El resultado no puede depender del orden de los registros.
func TestRollup_InvarianteAnteOrden(t *testing.T) {
	sales := []entity.Sale{
		venta("100.01", "5.55", entity.StatusPendiente, item(2, "10.10")),
		venta("50.02", "0.01", entity.StatusEnviado, item(3, "7.77")),
		venta("19.99", "2.22", entity.StatusPendiente, item(1, "0.03")),
	}
	expenses := []entity.Expense{
		{Amount: dec("30.30")},
		{Amount: dec("0.70")},
	}

	directo := ledger.Rollup(sales, expenses)

	invertidas := []entity.Sale{sales[2], sales[0], sales[1]}
	invertidos := []entity.Expense{expenses[1], expenses[0]}
	permutado := ledger.Rollup(invertidas, invertidos)

	assert.True(t, directo.Revenue.Equal(permutado.Revenue))
	assert.True(t, directo.CostOfGoods.Equal(permutado.CostOfGoods))
	assert.True(t, directo.DTFTotal.Equal(permutado.DTFTotal))
	assert.True(t, directo.ExpenseTotal.Equal(permutado.ExpenseTotal))
	assert.True(t, directo.NetProfit.Equal(permutado.NetProfit))
}

// ──────────────────────────────────────────────────────────────────────────────
// StatusBuckets
// ──────────────────────────────────────────────────────────────────────────────

func TestStatusBuckets_ParticionaIngresos(t *testing.T) {
	sales := []entity.Sale{
		venta("100", "0", entity.StatusPendiente),
		venta("50", "0", entity.StatusEnviado),
		venta("25.25", "0", entity.StatusPendiente),
	}

	b := ledger.StatusBuckets(sales)

	assert.True(t, b.PendingTotal.Equal(dec("125.25")))
	assert.True(t, b.ShippedTotal.Equal(dec("50")))
}

// Invariante: pendiente + enviado = revenue sobre el mismo conjunto.
func TestStatusBuckets_SumaIgualRevenue(t *testing.T) {
	sales := []entity.Sale{
		venta("100.10", "1", entity.StatusPendiente, item(1, "2")),
		venta("50.05", "2", entity.StatusEnviado),
		venta("0.85", "0", entity.StatusEnviado),
		venta("999.99", "3", entity.StatusPendiente),
	}

	b := ledger.StatusBuckets(sales)
	tot := ledger.Rollup(sales, nil)

	assert.True(t, b.PendingTotal.Add(b.ShippedTotal).Equal(tot.Revenue),
		"pendiente + enviado debe igualar el revenue del mismo conjunto")
}

func TestStatusBuckets_Vacio(t *testing.T) {
	b := ledger.StatusBuckets(nil)
	assert.True(t, b.PendingTotal.IsZero())
	assert.True(t, b.ShippedTotal.IsZero())
}
