package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus estado de entrega de una venta. Solo existen dos variantes
// (pendiente/enviado) y el cambio de estado es reversible en ambas
// direcciones; no es una máquina de estados de un solo sentido.
type SaleStatus string

const (
	StatusPendiente SaleStatus = "pendiente" // aún no entregada al cliente
	StatusEnviado   SaleStatus = "enviado"   // entregada / despachada
)

// IsValid reporta si el estado es una de las dos variantes permitidas.
func (s SaleStatus) IsValid() bool {
	return s == StatusPendiente || s == StatusEnviado
}

// Toggle devuelve el estado contrario (pendiente ↔ enviado).
func (s SaleStatus) Toggle() SaleStatus {
	if s == StatusPendiente {
		return StatusEnviado
	}
	return StatusPendiente
}

// SaleItem línea de producto dentro de una venta. Pertenece a exactamente
// una venta; no tiene identidad fuera de ella.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductName string
	Qty         int64           // unidades vendidas, siempre > 0
	UnitPrice   decimal.Decimal // precio de venta por unidad (solo informativo)
	UnitCost    decimal.Decimal // costo por unidad; qty × unit_cost alimenta el COGS
}

// Sale una venta completada. Total es la cifra de ingreso autoritativa:
// puede diferir de Σ qty × unit_price porque ya incluye descuentos o
// redondeos aplicados al cobrar.
type Sale struct {
	ID            string
	CustomerName  string
	CustomerPhone string // opcional
	Total         decimal.Decimal
	DTFCost       decimal.Decimal // recargo de producción DTF por venta, no asignable a un ítem
	Status        SaleStatus
	CreatedAt     time.Time // inmutable; única clave temporal para filtros de fecha
	Items         []SaleItem
}
