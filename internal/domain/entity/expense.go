package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense un gasto de caja. Se crea y se elimina por acción explícita del
// usuario; no existe edición en el sistema.
type Expense struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	ExpenseDate time.Time // solo fecha (sin hora); clave de todos los filtros de gastos
	CreatedAt   time.Time
}
