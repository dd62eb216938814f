// Package sales contiene los casos de uso de mutación del almacén de
// registros: alta de ventas con líneas, cambio de estado, eliminación y
// el ABM de gastos. El motor de agregación no participa aquí; tras cada
// mutación las vistas se recalculan sobre un snapshot fresco.
package sales

import (
	"context"

	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con un SaleRepository atado a una
// transacción: o se persisten cabecera y líneas juntas, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(saleRepo repository.SaleRepository) error) error
}
