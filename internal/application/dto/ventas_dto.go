package dto

import "github.com/shopspring/decimal"

// SaleItemDTO línea de producto dentro de una venta.
type SaleItemDTO struct {
	ID          string          `json:"id"`
	ProductName string          `json:"product_name"`
	Qty         int64           `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// SaleLedgerDTO una fila del libro diario: los campos almacenados de la
// venta más su ganancia calculada con la fórmula compartida del motor.
type SaleLedgerDTO struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	Total         decimal.Decimal `json:"total"`
	DTFCost       decimal.Decimal `json:"dtf_cost"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at"` // RFC 3339
	Items         []SaleItemDTO   `json:"items"`
	Profit        decimal.Decimal `json:"profit"` // total − Σ qty×unit_cost − dtf_cost
}

// CreateSaleItemRequest línea de una venta nueva.
type CreateSaleItemRequest struct {
	ProductName string          `json:"product_name"`
	Qty         int64           `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// CreateSaleRequest alta de una venta con sus líneas.
type CreateSaleRequest struct {
	CustomerName  string                  `json:"customer_name"`
	CustomerPhone string                  `json:"customer_phone"`
	Total         decimal.Decimal         `json:"total"`
	DTFCost       decimal.Decimal         `json:"dtf_cost"`
	Items         []CreateSaleItemRequest `json:"items"`
}

// SaleStatusResponse respuesta del toggle de estado.
type SaleStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
