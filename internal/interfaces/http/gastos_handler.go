package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/application/sales"
	"github.com/tu-usuario/ventas-api/internal/domain"
)

// GastosHandler maneja el ABM de gastos de caja.
type GastosHandler struct {
	uc *sales.ExpenseUseCase
}

// NewGastosHandler construye el handler.
func NewGastosHandler(uc *sales.ExpenseUseCase) *GastosHandler {
	return &GastosHandler{uc: uc}
}

// Create registra un gasto.
// POST /api/gastos
func (h *GastosHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	gasto, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "description y amount > 0 son requeridos",
			})
		}
		if errors.Is(err, domain.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_DATE", Message: "expense_date debe tener formato YYYY-MM-DD",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(gasto)
}

// List lista los gastos de un día.
// GET /api/gastos?date=YYYY-MM-DD (sin date = hoy)
func (h *GastosHandler) List(c *fiber.Ctx) error {
	day, err := parseDateQuery(c, "date")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_DATE", Message: "date debe tener formato YYYY-MM-DD",
		})
	}
	if day == nil {
		now := time.Now()
		day = &now
	}
	list, err := h.uc.ListByDate(c.Context(), *day)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(list)
}

// Delete elimina un gasto.
// DELETE /api/gastos/:id
func (h *GastosHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "id requerido",
		})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "gasto no encontrado",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
