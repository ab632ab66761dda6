package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comparador-api/internal/application/insights"
	"github.com/jhoicas/Comparador-api/internal/application/migration"
	"github.com/jhoicas/Comparador-api/internal/application/pricing"
	"github.com/jhoicas/Comparador-api/internal/application/usecase"
	"github.com/jhoicas/Comparador-api/internal/domain/entity"
	"github.com/jhoicas/Comparador-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PricingUC     *pricing.UseCase
	Insights      *insights.Engine
	MarketplaceUC *usecase.MarketplaceUseCase
	RecordsUC     *usecase.RecordsUseCase
	Migration     *migration.Service
	Log           *logger.Logger
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	// Comparador (público)
	pricingHandler := NewPricingHandler(deps.PricingUC, log)
	api.Get("/prices/summary", pricingHandler.Summary)
	api.Get("/prices/report", pricingHandler.Report)
	api.Get("/products/:id/offers", pricingHandler.Offers)

	insightsHandler := NewInsightsHandler(deps.Insights, log)
	ins := api.Group("/insights")
	ins.Get("/popular-shops", insightsHandler.PopularShops)
	ins.Get("/trending", insightsHandler.Trending)
	ins.Get("/deals", insightsHandler.Deals)

	// Rutas protegidas (requieren Bearer Token)
	auth := AuthMiddleware(deps.JWTSecret)
	staff := RequireRole(entity.RoleAdmin, entity.RoleStaff)
	marketplaceHandler := NewMarketplaceHandler(deps.MarketplaceUC, log)

	me := api.Group("/me", auth)
	me.Get("/favorites", marketplaceHandler.Favorites)
	me.Get("/shop-products", marketplaceHandler.OwnerShopProducts)
	me.Get("/notifications", marketplaceHandler.Notifications)
	me.Post("/notifications/:id/read", marketplaceHandler.MarkNotificationRead)
	me.Post("/recommendations", insightsHandler.Recommendations)

	priceUpdates := api.Group("/price-updates", auth)
	priceUpdates.Post("/", marketplaceHandler.CreatePriceUpdate)
	priceUpdates.Patch("/:id/payment-status", staff, marketplaceHandler.SetPaymentStatus)

	api.Post("/favorites/toggle", auth, marketplaceHandler.ToggleFavorite)

	shops := api.Group("/shops", auth)
	shops.Post("/:id/rate", marketplaceHandler.RateShop)
	shops.Post("/:id/goodwill", staff, marketplaceHandler.AdjustGoodwill)

	subs := api.Group("/subscriptions", auth)
	subs.Post("/", marketplaceHandler.Subscribe)
	subs.Post("/expire", staff, marketplaceHandler.ExpireSubscriptions)

	// CRUD genérico (admin/staff)
	recordsHandler := NewRecordsHandler(deps.RecordsUC, log)
	records := api.Group("/records", auth, staff)
	records.Get("/:kind", recordsHandler.List)
	records.Put("/:kind", recordsHandler.Save)
	records.Post("/:kind", recordsHandler.Save)
	records.Get("/:kind/:id", recordsHandler.Get)
	records.Delete("/:kind/:id", recordsHandler.Delete)

	// Migración (solo admin)
	migrationHandler := NewMigrationHandler(deps.Migration, log)
	mig := api.Group("/migration", auth, RequireRole(entity.RoleAdmin))
	mig.Get("/export", migrationHandler.Export)
	mig.Post("/import", migrationHandler.Import)
}
