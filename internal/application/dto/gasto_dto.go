package dto

import "github.com/shopspring/decimal"

// CreateGastoRequest alta de un gasto de caja.
type CreateGastoRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate string          `json:"expense_date"` // YYYY-MM-DD
}

// GastoResponse un gasto tal como lo muestra la caja diaria.
type GastoResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate string          `json:"expense_date"` // YYYY-MM-DD
}
