package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	appledger "github.com/tu-usuario/ventas-api/internal/application/ledger"
	"github.com/tu-usuario/ventas-api/internal/application/reports"
)

// CajaHandler maneja los endpoints de la caja diaria.
type CajaHandler struct {
	uc     *appledger.CajaUseCase
	report *reports.CajaReportUseCase
}

// NewCajaHandler construye el handler.
func NewCajaHandler(uc *appledger.CajaUseCase, report *reports.CajaReportUseCase) *CajaHandler {
	return &CajaHandler{uc: uc, report: report}
}

// GetResumen devuelve ingresos, costos, gastos y caja neta de un día.
// GET /api/caja?date=YYYY-MM-DD (sin date = hoy)
func (h *CajaHandler) GetResumen(c *fiber.Ctx) error {
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

	resumen, err := h.uc.GetResumen(c.Context(), *day)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(resumen)
}

// DownloadReporte devuelve el cierre de caja del día como PDF.
// GET /api/caja/reporte?date=YYYY-MM-DD (sin date = hoy)
func (h *CajaHandler) DownloadReporte(c *fiber.Ctx) error {
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

	pdfBytes, filename, err := h.report.DownloadCajaPDF(c.Context(), *day)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
