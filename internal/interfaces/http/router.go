package http

import (
	"github.com/gofiber/fiber/v2"
	appledger "github.com/tu-usuario/ventas-api/internal/application/ledger"
	"github.com/tu-usuario/ventas-api/internal/application/reports"
	"github.com/tu-usuario/ventas-api/internal/application/sales"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CajaUC      *appledger.CajaUseCase
	DashboardUC *appledger.DashboardUseCase
	VentasUC    *appledger.VentasUseCase
	SaleUC      *sales.SaleUseCase
	ExpenseUC   *sales.ExpenseUseCase
	CajaReport  *reports.CajaReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Caja diaria
	caja := api.Group("/caja")
	cajaHandler := NewCajaHandler(deps.CajaUC, deps.CajaReport)
	caja.Get("/", cajaHandler.GetResumen)
	caja.Get("/reporte", cajaHandler.DownloadReporte)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.GetResumen)

	// Ventas (libro diario + mutaciones)
	ventas := api.Group("/ventas")
	ventasHandler := NewVentasHandler(deps.VentasUC, deps.SaleUC)
	ventas.Get("/", ventasHandler.List)
	ventas.Post("/", ventasHandler.Create)
	ventas.Patch("/:id/status", ventasHandler.ToggleStatus)
	ventas.Delete("/:id", ventasHandler.Delete)

	// Gastos
	gastos := api.Group("/gastos")
	gastosHandler := NewGastosHandler(deps.ExpenseUC)
	gastos.Post("/", gastosHandler.Create)
	gastos.Get("/", gastosHandler.List)
	gastos.Delete("/:id", gastosHandler.Delete)
}
