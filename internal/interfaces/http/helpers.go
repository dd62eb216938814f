package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
)

// parseDateQuery lee un query param de fecha YYYY-MM-DD. Devuelve nil si
// el parámetro está ausente y error si el formato no es válido.
func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
