package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

// ExpenseRepository puerto de persistencia para gastos de caja.
// No hay operación de edición: un gasto se crea y se elimina, nunca se
// modifica en sitio.
type ExpenseRepository interface {
	// Create persiste un gasto nuevo.
	Create(ctx context.Context, expense *entity.Expense) error

	// ListByDate devuelve los gastos con expense_date = day (solo fecha),
	// del más reciente al más antiguo.
	ListByDate(ctx context.Context, day time.Time) ([]entity.Expense, error)

	// ListAll devuelve todos los gastos (el dashboard filtra en memoria).
	ListAll(ctx context.Context) ([]entity.Expense, error)

	// Delete elimina un gasto por ID.
	Delete(ctx context.Context, id string) error
}
