// Package ledger contiene el motor de agregación financiera del negocio:
// la fórmula de ganancia, los totales de caja/dashboard y la partición de
// ingresos por estado de envío.
//
// Todo es puro y read-only: las funciones nunca mutan las ventas ni los
// gastos recibidos, y la misma fórmula de ganancia alimenta tanto la vista
// por venta (libro diario) como los totales agregados (caja y dashboard),
// de modo que ambos caminos no pueden divergir numéricamente.
package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

// ItemsCost devuelve Σ qty × unit_cost de las líneas de una venta: su
// aporte al costo de productos (COGS).
func ItemsCost(items []entity.SaleItem) decimal.Decimal {
	cost := decimal.Zero
	for _, it := range items {
		cost = cost.Add(it.UnitCost.Mul(decimal.NewFromInt(it.Qty)))
	}
	return cost
}

// SaleProfit ganancia real de una venta:
//
//	total − Σ(qty × unit_cost) − dtf_cost
//
// El total de la venta es la cifra de ingreso autoritativa (puede incluir
// descuentos ya aplicados); no se reconstruye desde los precios de línea.
// Esta función es la única definición de la fórmula en todo el sistema.
func SaleProfit(s entity.Sale) decimal.Decimal {
	return s.Total.Sub(ItemsCost(s.Items)).Sub(s.DTFCost)
}

// Totals totales nombrados de un conjunto de ventas y gastos ya filtrados.
type Totals struct {
	Revenue      decimal.Decimal // Σ total de ventas
	CostOfGoods  decimal.Decimal // Σ qty × unit_cost de todas las líneas
	DTFTotal     decimal.Decimal // Σ recargo DTF por venta
	ExpenseTotal decimal.Decimal // Σ monto de gastos
	NetProfit    decimal.Decimal // Revenue − CostOfGoods − DTFTotal − ExpenseTotal
}

// Rollup pliega las colecciones en los totales de la vista de caja y del
// dashboard. El conjunto vacío produce totales en cero, nunca un error, y
// el resultado no depende del orden de los registros.
//
// NetProfit se acumula como Σ SaleProfit(venta) − gastos, exactamente la
// misma función que usa el libro diario por fila; con aritmética decimal
// eso coincide dígito a dígito con revenue − cogs − dtf − gastos.
func Rollup(sales []entity.Sale, expenses []entity.Expense) Totals {
	t := Totals{
		Revenue:      decimal.Zero,
		CostOfGoods:  decimal.Zero,
		DTFTotal:     decimal.Zero,
		ExpenseTotal: decimal.Zero,
		NetProfit:    decimal.Zero,
	}
	for _, s := range sales {
		t.Revenue = t.Revenue.Add(s.Total)
		t.CostOfGoods = t.CostOfGoods.Add(ItemsCost(s.Items))
		t.DTFTotal = t.DTFTotal.Add(s.DTFCost)
		t.NetProfit = t.NetProfit.Add(SaleProfit(s))
	}
	for _, e := range expenses {
		t.ExpenseTotal = t.ExpenseTotal.Add(e.Amount)
	}
	t.NetProfit = t.NetProfit.Sub(t.ExpenseTotal)
	return t
}

// Buckets ingresos particionados por estado de envío.
type Buckets struct {
	PendingTotal decimal.Decimal // Σ total con status = pendiente
	ShippedTotal decimal.Decimal // Σ total con status = enviado
}

// StatusBuckets particiona el ingreso de un conjunto ya filtrado de ventas.
// Invariante: PendingTotal + ShippedTotal = Revenue del mismo conjunto;
// toda venta tiene exactamente uno de los dos estados.
func StatusBuckets(sales []entity.Sale) Buckets {
	b := Buckets{PendingTotal: decimal.Zero, ShippedTotal: decimal.Zero}
	for _, s := range sales {
		if s.Status == entity.StatusEnviado {
			b.ShippedTotal = b.ShippedTotal.Add(s.Total)
		} else {
			b.PendingTotal = b.PendingTotal.Add(s.Total)
		}
	}
	return b
}
