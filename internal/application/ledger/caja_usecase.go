// Package ledger contiene los casos de uso de las tres vistas financieras
// del negocio: caja diaria, dashboard y libro diario de ventas.
//
// Los tres delegan TODO el cálculo en internal/domain/ledger; aquí solo se
// decide qué registros se traen del almacén y cómo se arma la respuesta.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/ventas-api/internal/application/dto"
	domledger "github.com/tu-usuario/ventas-api/internal/domain/ledger"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// CajaUseCase la vista de caja diaria: ingresos, costos, gastos y caja
// neta de un solo día calendario.
type CajaUseCase struct {
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
}

// NewCajaUseCase construye el caso de uso.
func NewCajaUseCase(saleRepo repository.SaleRepository, expenseRepo repository.ExpenseRepository) *CajaUseCase {
	return &CajaUseCase{saleRepo: saleRepo, expenseRepo: expenseRepo}
}

// GetResumen arma el resumen de caja del día indicado.
//
// Las ventas se piden al almacén por rango [00:00, 24:00) del día y los
// gastos por igualdad exacta de expense_date; los totales salen del mismo
// Rollup que usa el dashboard, así que ambas vistas nunca difieren para el
// mismo conjunto de registros.
func (uc *CajaUseCase) GetResumen(ctx context.Context, day time.Time) (*dto.CajaResumenDTO, error) {
	dayStart := domledger.CivilDate(day)
	dayEnd := dayStart.Add(24 * time.Hour)

	sales, err := uc.saleRepo.ListByCreatedBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("caja: ventas del día: %w", err)
	}
	expenses, err := uc.expenseRepo.ListByDate(ctx, dayStart)
	if err != nil {
		return nil, fmt.Errorf("caja: gastos del día: %w", err)
	}

	totals := domledger.Rollup(sales, expenses)

	out := &dto.CajaResumenDTO{
		Date:         dayStart.Format(dto.DateLayout),
		Revenue:      totals.Revenue,
		CostOfGoods:  totals.CostOfGoods,
		DTFTotal:     totals.DTFTotal,
		ExpenseTotal: totals.ExpenseTotal,
		NetProfit:    totals.NetProfit,
		Expenses:     make([]dto.GastoResponse, 0, len(expenses)),
	}
	for _, e := range expenses {
		out.Expenses = append(out.Expenses, dto.GastoResponse{
			ID:          e.ID,
			Description: e.Description,
			Amount:      e.Amount,
			ExpenseDate: e.ExpenseDate.Format(dto.DateLayout),
		})
	}
	return out, nil
}
