package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	appledger "github.com/tu-usuario/ventas-api/internal/application/ledger"
	"github.com/tu-usuario/ventas-api/internal/application/sales"
	"github.com/tu-usuario/ventas-api/internal/domain"
)

// VentasHandler maneja el libro diario y las mutaciones sobre ventas.
type VentasHandler struct {
	ledgerUC *appledger.VentasUseCase
	saleUC   *sales.SaleUseCase
}

// NewVentasHandler construye el handler.
func NewVentasHandler(ledgerUC *appledger.VentasUseCase, saleUC *sales.SaleUseCase) *VentasHandler {
	return &VentasHandler{ledgerUC: ledgerUC, saleUC: saleUC}
}

// List devuelve el libro diario completo con ganancia por venta.
// GET /api/ventas
func (h *VentasHandler) List(c *fiber.Ctx) error {
	list, err := h.ledgerUC.ListLedger(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(list)
}

// Create crea una venta con sus líneas.
// POST /api/ventas
func (h *VentasHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	sale, err := h.saleUC.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "customer_name requerido; montos no negativos; qty > 0",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// ToggleStatus invierte el estado de envío de la venta (pendiente ↔ enviado).
// PATCH /api/ventas/:id/status
func (h *VentasHandler) ToggleStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "id requerido",
		})
	}
	status, err := h.saleUC.ToggleStatus(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "venta no encontrada",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(status)
}

// Delete elimina la venta y todas sus líneas.
// DELETE /api/ventas/:id
func (h *VentasHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "id requerido",
		})
	}
	if err := h.saleUC.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "venta no encontrada",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
