package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	appledger "github.com/tu-usuario/ventas-api/internal/application/ledger"
)

// DashboardHandler maneja el resumen general del negocio.
type DashboardHandler struct {
	uc *appledger.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appledger.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetResumen devuelve los totales del rango pedido más la partición
// pendiente/enviado. from y to son opcionales; sin ambos se devuelve el
// histórico completo.
// GET /api/dashboard?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *DashboardHandler) GetResumen(c *fiber.Ctx) error {
	from, err := parseDateQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_DATE", Message: "from debe tener formato YYYY-MM-DD",
		})
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_DATE", Message: "to debe tener formato YYYY-MM-DD",
		})
	}

	resumen, err := h.uc.GetResumen(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(resumen)
}
