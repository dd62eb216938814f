package dto

import "github.com/shopspring/decimal"

// DashboardResumenDTO respuesta de GET /api/dashboard.
// Totales del rango pedido (from/to opcionales; ambos ausentes = histórico
// completo) más la partición de ingresos por estado de envío.
type DashboardResumenDTO struct {
	From string `json:"from,omitempty"` // YYYY-MM-DD, vacío = sin límite
	To   string `json:"to,omitempty"`   // YYYY-MM-DD, vacío = sin límite

	Revenue      decimal.Decimal `json:"revenue"`
	PendingTotal decimal.Decimal `json:"pending_total"` // Σ total con status pendiente
	ShippedTotal decimal.Decimal `json:"shipped_total"` // Σ total con status enviado
	CostOfGoods  decimal.Decimal `json:"cost_of_goods"`
	DTFTotal     decimal.Decimal `json:"dtf_total"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`
	NetProfit    decimal.Decimal `json:"net_profit"`
}
