package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	domledger "github.com/tu-usuario/ventas-api/internal/domain/ledger"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// DashboardUseCase el resumen general del negocio con filtro opcional de
// fechas y la partición pendiente/enviado.
type DashboardUseCase struct {
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(saleRepo repository.SaleRepository, expenseRepo repository.ExpenseRepository) *DashboardUseCase {
	return &DashboardUseCase{saleRepo: saleRepo, expenseRepo: expenseRepo}
}

// GetResumen arma el resumen del dashboard para el rango [from, to].
// Cualquiera de los dos extremos puede ser nil (sin límite); ambos nil
// significa el histórico completo.
//
// Se trae el snapshot completo de ventas y gastos (dos consultas en
// paralelo) y el recorte por fecha se hace en memoria con domain/ledger,
// que trunca created_at a fecha calendario antes de comparar.
func (uc *DashboardUseCase) GetResumen(ctx context.Context, from, to *time.Time) (*dto.DashboardResumenDTO, error) {
	type salesResult struct {
		sales []entity.Sale
		err   error
	}
	type expensesResult struct {
		expenses []entity.Expense
		err      error
	}

	salesCh := make(chan salesResult, 1)
	expensesCh := make(chan expensesResult, 1)

	go func() {
		sales, err := uc.saleRepo.ListAll(ctx)
		salesCh <- salesResult{sales, err}
	}()
	go func() {
		expenses, err := uc.expenseRepo.ListAll(ctx)
		expensesCh <- expensesResult{expenses, err}
	}()

	sr := <-salesCh
	er := <-expensesCh

	if sr.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", sr.err)
	}
	if er.err != nil {
		return nil, fmt.Errorf("dashboard: gastos: %w", er.err)
	}

	scope := domledger.Range(from, to)
	sales, droppedSales := scope.FilterSales(sr.sales)
	expenses, droppedExpenses := scope.FilterExpenses(er.expenses)
	if droppedSales > 0 || droppedExpenses > 0 {
		// Registros sin fecha válida: excluidos del rango (fail closed),
		// se reportan como defecto de datos en lugar de sumarse.
		log.Warn().
			Int("ventas_excluidas", droppedSales).
			Int("gastos_excluidos", droppedExpenses).
			Msg("dashboard: registros sin fecha válida excluidos del rango")
	}

	totals := domledger.Rollup(sales, expenses)
	buckets := domledger.StatusBuckets(sales)

	out := &dto.DashboardResumenDTO{
		Revenue:      totals.Revenue,
		PendingTotal: buckets.PendingTotal,
		ShippedTotal: buckets.ShippedTotal,
		CostOfGoods:  totals.CostOfGoods,
		DTFTotal:     totals.DTFTotal,
		ExpenseTotal: totals.ExpenseTotal,
		NetProfit:    totals.NetProfit,
	}
	if from != nil {
		out.From = domledger.CivilDate(*from).Format(dto.DateLayout)
	}
	if to != nil {
		out.To = domledger.CivilDate(*to).Format(dto.DateLayout)
	}
	return out, nil
}
