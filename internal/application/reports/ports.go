// Package reports genera el reporte imprimible de la caja diaria.
package reports

import (
	"context"
	"time"

	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/ledger"
)

// CajaPDFGenerator puerto del generador del reporte de caja en PDF.
// La implementación vive en infrastructure/pdf.
type CajaPDFGenerator interface {
	GenerateCajaPDF(
		ctx context.Context,
		day time.Time,
		totals ledger.Totals,
		sales []entity.Sale,
		expenses []entity.Expense,
	) ([]byte, error)
}
