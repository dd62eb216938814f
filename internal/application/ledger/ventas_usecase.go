package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	domledger "github.com/tu-usuario/ventas-api/internal/domain/ledger"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// VentasUseCase el libro diario: todas las ventas con sus líneas y la
// ganancia por fila.
type VentasUseCase struct {
	saleRepo repository.SaleRepository
}

// NewVentasUseCase construye el caso de uso.
func NewVentasUseCase(saleRepo repository.SaleRepository) *VentasUseCase {
	return &VentasUseCase{saleRepo: saleRepo}
}

// ListLedger devuelve todas las ventas (más recientes primero) con la
// ganancia calculada por la fórmula compartida del motor. Sin filtro de
// fechas: el libro diario siempre muestra el histórico completo.
func (uc *VentasUseCase) ListLedger(ctx context.Context) ([]dto.SaleLedgerDTO, error) {
	sales, err := uc.saleRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("ventas: listar libro diario: %w", err)
	}

	out := make([]dto.SaleLedgerDTO, 0, len(sales))
	for _, s := range sales {
		out = append(out, SaleToDTO(s))
	}
	return out, nil
}

// SaleToDTO proyecta una venta a su fila del libro diario. La ganancia sale
// de domledger.SaleProfit, la misma función que acumula el Rollup; por
// construcción la suma de las filas coincide con el NetProfit agregado.
func SaleToDTO(s entity.Sale) dto.SaleLedgerDTO {
	items := make([]dto.SaleItemDTO, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemDTO{
			ID:          it.ID,
			ProductName: it.ProductName,
			Qty:         it.Qty,
			UnitPrice:   it.UnitPrice,
			UnitCost:    it.UnitCost,
		})
	}
	return dto.SaleLedgerDTO{
		ID:            s.ID,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		Total:         s.Total,
		DTFCost:       s.DTFCost,
		Status:        string(s.Status),
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
		Items:         items,
		Profit:        domledger.SaleProfit(s),
	}
}
