package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comparador-api/internal/application/insights"
	"github.com/jhoicas/Comparador-api/internal/application/migration"
	"github.com/jhoicas/Comparador-api/internal/application/pricing"
	"github.com/jhoicas/Comparador-api/internal/application/usecase"
	"github.com/jhoicas/Comparador-api/internal/domain/entity"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
	"github.com/jhoicas/Comparador-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Comparador-api/internal/interfaces/http"
	"github.com/jhoicas/Comparador-api/pkg/config"
	"github.com/jhoicas/Comparador-api/pkg/logger"
)

var t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func seedStore(t *testing.T) *memory.Store {
	t.Helper()
	price := decimal.NewFromInt(70)
	s := memory.New()
	require.NoError(t, s.Update(context.Background(), func(w repository.Writer) error {
		for _, err := range []error{
			w.MutUsers().Put(entity.User{ID: "owner-1", PhoneNumber: "300", Name: "Dueña", Role: entity.RoleShopOwner, IsActive: true, CreatedAt: t0}),
			w.MutUsers().Put(entity.User{ID: "owner-2", PhoneNumber: "301", Name: "Otro", Role: entity.RoleShopOwner, IsActive: true, CreatedAt: t0}),
			w.MutUsers().Put(entity.User{ID: "u1", PhoneNumber: "310", Name: "Cliente", Role: entity.RoleEndUser, IsActive: true, CreatedAt: t0}),
			w.MutShops().Put(entity.Shop{ID: "s1", OwnerID: "owner-1", Name: "La Esquina", IsActive: true, CreatedAt: t0}),
			w.MutShops().Put(entity.Shop{ID: "s2", OwnerID: "owner-2", Name: "El Centro", IsActive: true, CreatedAt: t0}),
			w.MutProducts().Put(entity.Product{ID: "p1", Name: "Arroz", Category: "granos", Unit: "kg", IsActive: true, CreatedAt: t0}),
			w.MutProducts().Put(entity.Product{ID: "p2", Name: "Leche", Category: "lácteos", Unit: "litro", IsActive: true, CreatedAt: t0}),
			w.MutShopProducts().Put(entity.ShopProduct{ID: "sp_1", ShopID: "s1", ProductID: "p1", IsAvailable: true, CurrentPrice: &price, CreatedAt: t0}),
		} {
			if err != nil {
				return err
			}
		}
		return nil
	}))
	return s
}

func newApp(s *memory.Store) *fiber.App {
	log := logger.Nop()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	apphttp.Router(app, apphttp.RouterDeps{
		PricingUC:     pricing.NewUseCase(s, nil),
		Insights:      insights.NewEngine(s, config.InsightsConfig{RecentWindowDays: 7, PriorWindowDays: 14}),
		MarketplaceUC: usecase.NewMarketplaceUseCase(s, log),
		RecordsUC:     usecase.NewRecordsUseCase(s),
		Migration:     migration.NewService(s, log),
		Log:           log,
		JWTSecret:     testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, auth, body string) (int, map[string]any, []byte) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var obj map[string]any
	_ = json.Unmarshal(raw, &obj)
	return resp.StatusCode, obj, raw
}

func TestRouter_ResumenPublico(t *testing.T) {
	app := newApp(seedStore(t))
	status, _, raw := call(t, app, http.MethodGet, "/api/prices/summary", "", "")
	require.Equal(t, http.StatusOK, status)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(raw, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Arroz", items[0]["product_name"])
	assert.Equal(t, "70", items[0]["min_price"])
	assert.Nil(t, items[1]["min_price"])
	assert.Nil(t, items[1]["best_shop"])
}

func TestRouter_OfertasDeProductoInexistente404(t *testing.T) {
	app := newApp(seedStore(t))
	status, body, _ := call(t, app, http.MethodGet, "/api/products/nope/offers", "", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestRouter_PrecioRequiereToken(t *testing.T) {
	app := newApp(seedStore(t))
	status, _, _ := call(t, app, http.MethodPost, "/api/price-updates", "", `{"shop_product_id":"sp_1","price":60}`)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRouter_DuenoRegistraPrecioYSeReflejaEnElResumen(t *testing.T) {
	app := newApp(seedStore(t))
	status, body, _ := call(t, app, http.MethodPost, "/api/price-updates",
		tokenAs(t, "owner-1", entity.RoleShopOwner), `{"shop_product_id":"sp_1","price":60}`)
	require.Equal(t, http.StatusCreated, status, "%v", body)
	assert.Equal(t, "sp_1", body["shop_product_id"])
	assert.Equal(t, "pending", body["payment_status"])

	_, _, raw := call(t, app, http.MethodGet, "/api/prices/summary", "", "")
	var items []map[string]any
	require.NoError(t, json.Unmarshal(raw, &items))
	assert.Equal(t, "60", items[0]["min_price"])
}

func TestRouter_DuenoAjenoNoPuedeCambiarPrecio(t *testing.T) {
	app := newApp(seedStore(t))
	status, body, _ := call(t, app, http.MethodPost, "/api/price-updates",
		tokenAs(t, "owner-2", entity.RoleShopOwner), `{"shop_product_id":"sp_1","price":60}`)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", body["code"])
}

func TestRouter_PrecioNoPositivoEsValidacion(t *testing.T) {
	app := newApp(seedStore(t))
	status, body, _ := call(t, app, http.MethodPost, "/api/price-updates",
		tokenAs(t, "owner-1", entity.RoleShopOwner), `{"shop_product_id":"sp_1","price":0}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Contains(t, body["message"], "price")
}

func TestRouter_PrecioDePublicacionInexistente404(t *testing.T) {
	app := newApp(seedStore(t))
	status, _, _ := call(t, app, http.MethodPost, "/api/price-updates",
		tokenAs(t, "owner-1", entity.RoleShopOwner), `{"shop_product_id":"sp_x","price":10}`)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_ToggleFavoritoUsaElUsuarioDelToken(t *testing.T) {
	app := newApp(seedStore(t))
	auth := tokenAs(t, "u1", entity.RoleEndUser)

	status, body, _ := call(t, app, http.MethodPost, "/api/favorites/toggle", auth,
		`{"user_id":"owner-2","type":"product","item_id":"p1"}`)
	require.Equal(t, http.StatusOK, status, "%v", body)
	assert.Equal(t, true, body["favorited"])

	_, _, raw := call(t, app, http.MethodGet, "/api/me/favorites", auth, "")
	var favs []map[string]any
	require.NoError(t, json.Unmarshal(raw, &favs))
	require.Len(t, favs, 1)
	assert.Equal(t, "u1", favs[0]["user_id"])
}

func TestRouter_RecordsSoloAdminOStaff(t *testing.T) {
	app := newApp(seedStore(t))

	status, _, _ := call(t, app, http.MethodGet, "/api/records/users", tokenAs(t, "u1", entity.RoleEndUser), "")
	assert.Equal(t, http.StatusForbidden, status)

	status, body, _ := call(t, app, http.MethodGet, "/api/records/users?limit=2", tokenAs(t, "adm", entity.RoleAdmin), "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "users", body["kind"])
	assert.Len(t, body["items"], 2)
	page := body["page"].(map[string]any)
	assert.EqualValues(t, 3, page["total"])

	status, body, _ = call(t, app, http.MethodGet, "/api/records/widgets", tokenAs(t, "adm", entity.RoleAdmin), "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestRouter_BorrarRegistroInexistente404(t *testing.T) {
	app := newApp(seedStore(t))
	auth := tokenAs(t, "adm", entity.RoleStaff)
	status, _, _ := call(t, app, http.MethodDelete, "/api/records/products/p2", auth, "")
	assert.Equal(t, http.StatusNoContent, status)
	status, _, _ = call(t, app, http.MethodDelete, "/api/records/products/p2", auth, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_IntegridadRotaEs500(t *testing.T) {
	s := seedStore(t)
	price := decimal.NewFromInt(5)
	require.NoError(t, s.Update(context.Background(), func(w repository.Writer) error {
		return w.MutShopProducts().Put(entity.ShopProduct{ID: "sp_ghost", ShopID: "ghost", ProductID: "p2",
			IsAvailable: true, CurrentPrice: &price, CreatedAt: t0})
	}))
	app := newApp(s)
	status, body, _ := call(t, app, http.MethodGet, "/api/prices/summary", "", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTEGRITY", body["code"])
}

func TestRouter_ErrorInternoNoExponeDetalles(t *testing.T) {
	app := newApp(seedStore(t))
	status, body, _ := call(t, app, http.MethodGet, "/api/prices/report", "", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body["code"])
	assert.Equal(t, "error interno del servidor", body["message"])
}

func TestRouter_BorrarTiendaConPublicacionesEs400(t *testing.T) {
	s := seedStore(t)
	app := newApp(s)
	status, body, _ := call(t, app, http.MethodDelete, "/api/records/shops/s1", tokenAs(t, "adm", entity.RoleAdmin), "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])

	status, _, _ = call(t, app, http.MethodGet, "/api/prices/summary", "", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestRouter_ImportacionMalFormadaEs400(t *testing.T) {
	app := newApp(seedStore(t))
	auth := tokenAs(t, "adm", entity.RoleAdmin)
	status, body, _ := call(t, app, http.MethodPost, "/api/migration/import", auth, `{"data":{"users":{}}}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "IMPORT_FORMAT", body["code"])

	status, _, _ = call(t, app, http.MethodPost, "/api/migration/import", tokenAs(t, "st", entity.RoleStaff), `{"data":{}}`)
	assert.Equal(t, http.StatusForbidden, status, "solo admin importa")
}

func TestRouter_ExportacionBackend(t *testing.T) {
	app := newApp(seedStore(t))
	status, body, _ := call(t, app, http.MethodGet, "/api/migration/export?format=backend", tokenAs(t, "adm", entity.RoleAdmin), "")
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Contains(t, data, "shop_products")
	assert.Len(t, data["shop_products"], 1)
}
