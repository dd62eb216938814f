package dto

import "github.com/shopspring/decimal"

// CajaResumenDTO respuesta de GET /api/caja: los totales del día más la
// lista de gastos registrados ese día.
type CajaResumenDTO struct {
	Date string `json:"date"` // YYYY-MM-DD

	Revenue      decimal.Decimal `json:"revenue"`       // ingresos del día
	CostOfGoods  decimal.Decimal `json:"cost_of_goods"` // Σ qty × unit_cost
	DTFTotal     decimal.Decimal `json:"dtf_total"`     // recargos DTF del día
	ExpenseTotal decimal.Decimal `json:"expense_total"` // gastos del día
	NetProfit    decimal.Decimal `json:"net_profit"`    // caja neta

	Expenses []GastoResponse `json:"expenses"`
}
