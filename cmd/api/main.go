package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Comparador-api/docs"
	"github.com/jhoicas/Comparador-api/internal/application/insights"
	"github.com/jhoicas/Comparador-api/internal/application/migration"
	"github.com/jhoicas/Comparador-api/internal/application/pricing"
	"github.com/jhoicas/Comparador-api/internal/application/usecase"
	"github.com/jhoicas/Comparador-api/internal/infrastructure/medium"
	"github.com/jhoicas/Comparador-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Comparador-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Comparador-api/internal/interfaces/http"
	"github.com/jhoicas/Comparador-api/pkg/config"
	"github.com/jhoicas/Comparador-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("medium", cfg.Store.Medium).
		Msg("iniciando aplicación")

	ctx := context.Background()
	m, closeMedium, err := medium.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("medio de persistencia")
	}
	defer closeMedium()

	store, err := memory.Open(ctx, m, log.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir entity store")
	}

	// PDF: reporte imprimible del resumen global de precios
	reportRenderer := infrapdf.NewMarotoPriceReport(cfg.App.Name)
	pricingUC := pricing.NewUseCase(store, reportRenderer)
	insightsEngine := insights.NewEngine(store, cfg.Insights)
	marketplaceUC := usecase.NewMarketplaceUseCase(store, log.Component("marketplace"))
	recordsUC := usecase.NewRecordsUseCase(store)
	migrationSvc := migration.NewService(store, log.Component("migration"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    64 * 1024 * 1024, // documentos de importación completos
		ErrorHandler: httpRouter.ErrorHandler(log.Component("http")),
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comparador API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PricingUC:     pricingUC,
		Insights:      insightsEngine,
		MarketplaceUC: marketplaceUC,
		RecordsUC:     recordsUC,
		Migration:     migrationSvc,
		Log:           log.Component("http"),
		JWTSecret:     cfg.JWT.Secret,
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
