package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación de ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un gasto nuevo.
func (r *ExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	query := `
		INSERT INTO expenses (id, description, amount, expense_date, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		expense.ID, expense.Description, expense.Amount, expense.ExpenseDate, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// ListByDate devuelve los gastos con expense_date = day, más recientes
// primero.
func (r *ExpenseRepo) ListByDate(ctx context.Context, day time.Time) ([]entity.Expense, error) {
	query := `
		SELECT id, description, amount, expense_date, created_at
		FROM expenses
		WHERE expense_date = $1
		ORDER BY created_at DESC`
	return r.list(ctx, query, day)
}

// ListAll devuelve todos los gastos, más recientes primero.
func (r *ExpenseRepo) ListAll(ctx context.Context) ([]entity.Expense, error) {
	query := `
		SELECT id, description, amount, expense_date, created_at
		FROM expenses
		ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *ExpenseRepo) list(ctx context.Context, query string, args ...any) ([]entity.Expense, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	out := []entity.Expense{}
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.ExpenseDate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("list expenses scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list expenses rows: %w", err)
	}
	return out, nil
}

// Delete elimina un gasto por ID.
func (r *ExpenseRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
