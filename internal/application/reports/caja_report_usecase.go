package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/ventas-api/internal/domain/ledger"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// CajaReportUseCase arma el PDF del cierre de caja de un día.
type CajaReportUseCase struct {
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
	generator   CajaPDFGenerator
}

// NewCajaReportUseCase construye el caso de uso.
func NewCajaReportUseCase(
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	generator CajaPDFGenerator,
) *CajaReportUseCase {
	return &CajaReportUseCase{saleRepo: saleRepo, expenseRepo: expenseRepo, generator: generator}
}

// DownloadCajaPDF trae el snapshot del día, calcula los totales con el
// mismo Rollup de las vistas y genera el PDF.
//
// Retorna (pdfBytes, filename, nil) o el error de la capa que falló.
func (uc *CajaReportUseCase) DownloadCajaPDF(
	ctx context.Context,
	day time.Time,
) (pdfBytes []byte, filename string, err error) {
	dayStart := ledger.CivilDate(day)
	dayEnd := dayStart.Add(24 * time.Hour)

	sales, err := uc.saleRepo.ListByCreatedBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, "", fmt.Errorf("reporte caja: ventas: %w", err)
	}
	expenses, err := uc.expenseRepo.ListByDate(ctx, dayStart)
	if err != nil {
		return nil, "", fmt.Errorf("reporte caja: gastos: %w", err)
	}

	totals := ledger.Rollup(sales, expenses)

	pdfBytes, err = uc.generator.GenerateCajaPDF(ctx, dayStart, totals, sales, expenses)
	if err != nil {
		return nil, "", fmt.Errorf("reporte caja: generar PDF: %w", err)
	}

	filename = fmt.Sprintf("caja-%s.pdf", dayStart.Format("2006-01-02"))
	return pdfBytes, filename, nil
}
