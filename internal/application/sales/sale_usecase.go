package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	appledger "github.com/tu-usuario/ventas-api/internal/application/ledger"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// SaleUseCase mutaciones sobre ventas: crear, cambiar estado y eliminar.
type SaleUseCase struct {
	saleRepo repository.SaleRepository
	tx       TxRunner
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(saleRepo repository.SaleRepository, tx TxRunner) *SaleUseCase {
	return &SaleUseCase{saleRepo: saleRepo, tx: tx}
}

// Create valida y persiste una venta nueva con todas sus líneas en una
// sola transacción. Los montos negativos se rechazan aquí, en el borde del
// almacén: el motor de agregación asume entradas ya validadas.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleLedgerDTO, error) {
	if in.CustomerName == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Total.IsNegative() || in.DTFCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.ProductName == "" || it.Qty <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if it.UnitPrice.IsNegative() || it.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	sale := entity.Sale{
		ID:            uuid.New().String(),
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Total:         in.Total,
		DTFCost:       in.DTFCost,
		Status:        entity.StatusPendiente,
		CreatedAt:     now,
		Items:         make([]entity.SaleItem, 0, len(in.Items)),
	}
	for _, it := range in.Items {
		sale.Items = append(sale.Items, entity.SaleItem{
			ID:          uuid.New().String(),
			SaleID:      sale.ID,
			ProductName: it.ProductName,
			Qty:         it.Qty,
			UnitPrice:   it.UnitPrice,
			UnitCost:    it.UnitCost,
		})
	}

	err := uc.tx.Run(ctx, func(saleRepo repository.SaleRepository) error {
		if err := saleRepo.Create(ctx, &sale); err != nil {
			return err
		}
		for i := range sale.Items {
			if err := saleRepo.CreateItem(ctx, &sale.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("crear venta: %w", err)
	}

	out := appledger.SaleToDTO(sale)
	return &out, nil
}

// ToggleStatus invierte el estado de envío de la venta. La operación es
// reversible: pendiente → enviado y enviado → pendiente son igual de
// válidos, sin validación de transición.
func (uc *SaleUseCase) ToggleStatus(ctx context.Context, id string) (*dto.SaleStatusResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cambiar estado: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	next := sale.Status.Toggle()
	if err := uc.saleRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, fmt.Errorf("cambiar estado: actualizar: %w", err)
	}
	return &dto.SaleStatusResponse{ID: id, Status: string(next)}, nil
}

// Delete elimina la venta y todas sus líneas en una transacción. Las
// líneas se borran primero: una línea huérfana volvería a contarse en el
// COGS de rollups posteriores.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("eliminar venta: obtener: %w", err)
	}
	if sale == nil {
		return domain.ErrNotFound
	}

	err = uc.tx.Run(ctx, func(saleRepo repository.SaleRepository) error {
		if err := saleRepo.DeleteItemsBySale(ctx, id); err != nil {
			return err
		}
		return saleRepo.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("eliminar venta: %w", err)
	}
	return nil
}
