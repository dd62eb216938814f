package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	domledger "github.com/tu-usuario/ventas-api/internal/domain/ledger"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// ExpenseUseCase alta, listado y baja de gastos de caja. No hay edición:
// un gasto registrado solo puede eliminarse.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create valida y persiste un gasto. El monto debe ser estrictamente
// positivo y la fecha un YYYY-MM-DD válido.
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.CreateGastoRequest) (*dto.GastoResponse, error) {
	if in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	day, err := time.Parse(dto.DateLayout, in.ExpenseDate)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	expense := entity.Expense{
		ID:          uuid.New().String(),
		Description: in.Description,
		Amount:      in.Amount,
		ExpenseDate: domledger.CivilDate(day),
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, &expense); err != nil {
		return nil, fmt.Errorf("crear gasto: %w", err)
	}

	return &dto.GastoResponse{
		ID:          expense.ID,
		Description: expense.Description,
		Amount:      expense.Amount,
		ExpenseDate: expense.ExpenseDate.Format(dto.DateLayout),
	}, nil
}

// ListByDate lista los gastos de un día, del más reciente al más antiguo.
func (uc *ExpenseUseCase) ListByDate(ctx context.Context, day time.Time) ([]dto.GastoResponse, error) {
	expenses, err := uc.repo.ListByDate(ctx, domledger.CivilDate(day))
	if err != nil {
		return nil, fmt.Errorf("listar gastos: %w", err)
	}
	out := make([]dto.GastoResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, dto.GastoResponse{
			ID:          e.ID,
			Description: e.Description,
			Amount:      e.Amount,
			ExpenseDate: e.ExpenseDate.Format(dto.DateLayout),
		})
	}
	return out, nil
}

// Delete elimina un gasto por ID.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar gasto: %w", err)
	}
	return nil
}
