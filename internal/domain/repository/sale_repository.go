package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas y sus líneas.
// Las lecturas devuelven las ventas con sus items anidados; el motor de
// agregación (domain/ledger) trabaja siempre sobre estos snapshots ya
// materializados y nunca vuelve a consultar el almacén.
type SaleRepository interface {
	// Create persiste la cabecera de la venta.
	Create(ctx context.Context, sale *entity.Sale) error

	// CreateItem persiste una línea de la venta.
	CreateItem(ctx context.Context, item *entity.SaleItem) error

	// GetByID devuelve la venta con sus items, o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Sale, error)

	// ListAll devuelve todas las ventas con items, de más reciente a más
	// antigua (orden del libro diario).
	ListAll(ctx context.Context) ([]entity.Sale, error)

	// ListByCreatedBetween devuelve las ventas con created_at en
	// [start, end), con items, para la vista de caja de un día.
	ListByCreatedBetween(ctx context.Context, start, end time.Time) ([]entity.Sale, error)

	// UpdateStatus cambia el estado de envío (pendiente ↔ enviado).
	UpdateStatus(ctx context.Context, id string, status entity.SaleStatus) error

	// DeleteItemsBySale elimina todas las líneas de la venta.
	DeleteItemsBySale(ctx context.Context, saleID string) error

	// Delete elimina la cabecera de la venta.
	Delete(ctx context.Context, id string) error
}
