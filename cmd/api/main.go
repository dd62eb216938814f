package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appledger "github.com/tu-usuario/ventas-api/internal/application/ledger"
	"github.com/tu-usuario/ventas-api/internal/application/reports"
	"github.com/tu-usuario/ventas-api/internal/application/sales"
	infrapdf "github.com/tu-usuario/ventas-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/ventas-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/ventas-api/internal/interfaces/http"
	"github.com/tu-usuario/ventas-api/pkg/config"
	"github.com/tu-usuario/ventas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones de esquema")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	saleRepo := postgres.NewSaleRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	cajaUC := appledger.NewCajaUseCase(saleRepo, expenseRepo)
	dashboardUC := appledger.NewDashboardUseCase(saleRepo, expenseRepo)
	ventasUC := appledger.NewVentasUseCase(saleRepo)
	saleUC := sales.NewSaleUseCase(saleRepo, txRunner)
	expenseUC := sales.NewExpenseUseCase(expenseRepo)

	pdfGenerator := infrapdf.NewMarotoCajaGenerator()
	cajaReportUC := reports.NewCajaReportUseCase(saleRepo, expenseRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CajaUC:      cajaUC,
		DashboardUC: dashboardUC,
		VentasUC:    ventasUC,
		SaleUC:      saleUC,
		ExpenseUC:   expenseUC,
		CajaReport:  cajaReportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
