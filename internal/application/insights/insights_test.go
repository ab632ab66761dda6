package insights_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comparador-api/internal/application/dto"
	"github.com/jhoicas/Comparador-api/internal/application/insights"
	"github.com/jhoicas/Comparador-api/internal/domain"
	"github.com/jhoicas/Comparador-api/internal/domain/entity"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
	"github.com/jhoicas/Comparador-api/internal/infrastructure/memory"
	"github.com/jhoicas/Comparador-api/pkg/config"
)

var now = time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

var windows = config.InsightsConfig{RecentWindowDays: 7, PriorWindowDays: 14}

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func ptr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

// fixture construye datos dentro de una sola transacción.
type fixture struct {
	w   repository.Writer
	err error
}

func (f *fixture) put(err error) {
	if f.err == nil {
		f.err = err
	}
}

func (f *fixture) shop(id, name, rating, goodwill string) {
	f.put(f.w.MutShops().Put(entity.Shop{
		ID: id, OwnerID: "owner-" + id, Name: name, IsActive: true, CreatedAt: now,
		AverageRating: dec(rating), GoodwillScore: dec(goodwill),
	}))
}

func (f *fixture) product(id, name, category string) {
	f.put(f.w.MutProducts().Put(entity.Product{
		ID: id, Name: name, Category: category, Unit: "kg", IsActive: true, CreatedAt: now,
	}))
}

func (f *fixture) offer(id, shopID, productID string, price *decimal.Decimal) {
	f.put(f.w.MutShopProducts().Put(entity.ShopProduct{
		ID: id, ShopID: shopID, ProductID: productID, IsAvailable: true, CurrentPrice: price, CreatedAt: now,
	}))
}

func (f *fixture) update(id, spID, price string, at time.Time) {
	f.put(f.w.MutPriceUpdates().Put(entity.PriceUpdate{
		ID: id, ShopProductID: spID, Price: dec(price), PaymentStatus: entity.PaymentPending,
		UpdatedBy: entity.Actor{ID: "u-owner", Role: entity.RoleShopOwner}, CreatedAt: at,
	}))
}

func (f *fixture) user(id string) {
	f.put(f.w.MutUsers().Put(entity.User{
		ID: id, PhoneNumber: "tel-" + id, Name: id, Role: entity.RoleEndUser, IsActive: true, CreatedAt: now,
	}))
}

func (f *fixture) favorite(userID, productID string) {
	f.put(f.w.MutFavorites().Put(entity.Favorite{
		ID: "fav-" + userID + "-" + productID, UserID: userID, Type: entity.FavoriteProduct, ItemID: productID, CreatedAt: now,
	}))
}

func build(t *testing.T, fn func(f *fixture)) *insights.Engine {
	t.Helper()
	s := memory.New()
	require.NoError(t, s.Update(context.Background(), func(w repository.Writer) error {
		f := &fixture{w: w}
		fn(f)
		return f.err
	}))
	return insights.NewEngine(s, windows).WithClock(func() time.Time { return now })
}

func TestPopularidad_EjemploDeReferencia(t *testing.T) {
	e := build(t, func(f *fixture) {
		f.shop("s1", "Tienda Estrella", "4.5", "95")
		for i := 0; i < 10; i++ {
			pid, spid := fmt.Sprintf("p%d", i), fmt.Sprintf("sp%d", i)
			f.product(pid, "Producto "+pid, "varios")
			f.offer(spid, "s1", pid, ptr("10"))
			f.update(spid+"-a", spid, "10", now.Add(-time.Hour))
			f.update(spid+"-b", spid, "11", now.Add(-2*time.Hour))
		}
	})

	shops, err := e.GetPopularShops(0)
	require.NoError(t, err)
	require.Len(t, shops, 1)
	s := shops[0]
	assert.Equal(t, 10, s.ProductCount)
	assert.Equal(t, 20, s.TotalPriceUpdates)
	assert.True(t, s.RatingScore.Equal(dec("90")))
	assert.True(t, s.ProductScore.Equal(dec("20")))
	assert.True(t, s.UpdateScore.Equal(dec("40")))
	assert.Equal(t, "67.00", s.Popularity.StringFixed(2))
}

func TestInsights_HistorialDePublicacionBorradaNoCuenta(t *testing.T) {
	e := build(t, func(f *fixture) {
		f.shop("s1", "Tienda", "4", "50")
		f.product("p1", "Arroz", "granos")
		f.offer("sp1", "s1", "p1", ptr("10"))
		f.update("pu1", "sp1", "10", now.Add(-time.Hour))
		f.update("pu2", "sp1", "11", now.Add(-2*time.Hour))
		f.update("pu-huerfana", "sp-borrada", "9", now.Add(-time.Hour))
	})

	shops, err := e.GetPopularShops(0)
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, 2, shops[0].TotalPriceUpdates)

	trends, err := e.GetTrendingProducts(0)
	require.NoError(t, err)
	require.Len(t, trends, 1)
	assert.Equal(t, 2, trends[0].RecentUpdateCount)
}

func TestPopularidad_OrdenDescendenteYSoloActivas(t *testing.T) {
	e := build(t, func(f *fixture) {
		f.shop("s1", "Baja", "1", "10")
		f.shop("s2", "Alta", "5", "100")
		f.put(f.w.MutShops().Put(entity.Shop{ID: "s3", OwnerID: "o3", Name: "Cerrada", CreatedAt: now,
			AverageRating: dec("5"), GoodwillScore: dec("100")}))
	})

	shops, err := e.GetPopularShops(0)
	require.NoError(t, err)
	require.Len(t, shops, 2)
	assert.Equal(t, "s2", shops[0].Shop.ID)
	assert.Equal(t, "s1", shops[1].Shop.ID)

	top, err := e.GetPopularShops(1)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestOfertas_EjemploDeReferencia(t *testing.T) {
	e := build(t, func(f *fixture) {
		f.shop("s1", "Uno", "0", "0")
		f.shop("s2", "Dos", "0", "0")
		f.shop("s3", "Tres", "0", "0")
		f.product("p1", "Arroz", "granos")
		f.offer("sp1", "s1", "p1", ptr("80"))
		f.offer("sp2", "s2", "p1", ptr("100"))
		f.offer("sp3", "s3", "p1", ptr("120"))

		// Ahorro del 1%: se descarta.
		f.product("p2", "Frijol", "granos")
		f.offer("sp4", "s1", "p2", ptr("99"))
		f.offer("sp5", "s2", "p2", ptr("101"))

		// Todos iguales: nadie mejora el promedio.
		f.product("p3", "Lenteja", "granos")
		f.offer("sp6", "s1", "p3", ptr("50"))
		f.offer("sp7", "s2", "p3", ptr("50"))
	})

	ds, err := e.GetDeals(0)
	require.NoError(t, err)
	require.Len(t, ds, 1)
	d := ds[0]
	assert.Equal(t, "p1", d.ProductID)
	assert.Equal(t, "s1", d.BestShop.ID)
	assert.True(t, d.Savings.Equal(dec("20")))
	assert.True(t, d.SavingsPct.Equal(dec("20")))
	assert.Equal(t, 3, d.ShopCount)
	assert.Equal(t, "220.00", d.DealScore.StringFixed(2))
}

func TestTendencia_VentanasYDireccion(t *testing.T) {
	day := 24 * time.Hour
	e := build(t, func(f *fixture) {
		f.shop("s1", "Uno", "0", "0")
		f.product("p1", "Arroz", "granos")
		f.offer("sp1", "s1", "p1", ptr("110"))
		f.update("pu1", "sp1", "100", now.Add(-10*day))
		f.update("pu2", "sp1", "100", now.Add(-7*day)) // borde: ventana anterior
		f.update("pu3", "sp1", "110", now.Add(-2*day))
		f.update("pu4", "sp1", "500", now.Add(-20*day)) // fuera de ambas ventanas

		f.product("p2", "Sin ofertas", "granos")
		f.offer("sp2", "s1", "p2", nil)

		f.product("p3", "Estable", "granos")
		f.offer("sp3", "s1", "p3", ptr("5"))
	})

	trends, err := e.GetTrendingProducts(0)
	require.NoError(t, err)
	require.Len(t, trends, 2, "los productos sin oferta vigente se excluyen")

	up := trends[0]
	assert.Equal(t, "p1", up.ProductID)
	assert.Equal(t, dto.TrendUp, up.Direction)
	assert.True(t, up.PriceChangePct.Equal(dec("10")))
	assert.True(t, up.RecentAvg.Equal(dec("110")))
	assert.True(t, up.PriorAvg.Equal(dec("100")))
	assert.Equal(t, 1, up.RecentUpdateCount)
	assert.Equal(t, 15, up.ViewCount)
	assert.Equal(t, "47.50", up.TrendScore.StringFixed(2))

	stable := trends[1]
	assert.Equal(t, "p3", stable.ProductID)
	assert.Equal(t, dto.TrendStable, stable.Direction)
	assert.Nil(t, stable.RecentAvg)
	assert.True(t, stable.PriceChangePct.IsZero())
	assert.Equal(t, "6.00", stable.TrendScore.StringFixed(2))
}

func TestTendencia_Bajada(t *testing.T) {
	day := 24 * time.Hour
	e := build(t, func(f *fixture) {
		f.shop("s1", "Uno", "0", "0")
		f.product("p1", "Arroz", "granos")
		f.offer("sp1", "s1", "p1", ptr("90"))
		f.update("pu1", "sp1", "100", now.Add(-9*day))
		f.update("pu2", "sp1", "90", now.Add(-1*day))
	})
	trends, err := e.GetTrendingProducts(0)
	require.NoError(t, err)
	require.Len(t, trends, 1)
	assert.Equal(t, dto.TrendDown, trends[0].Direction)
	assert.True(t, trends[0].PriceChangePct.Equal(dec("-10")))
}

func TestInsights_AlmacenVacioDevuelveSecuenciasVacias(t *testing.T) {
	e := build(t, func(f *fixture) {})

	shops, err := e.GetPopularShops(0)
	require.NoError(t, err)
	assert.NotNil(t, shops)
	assert.Empty(t, shops)

	trends, err := e.GetTrendingProducts(5)
	require.NoError(t, err)
	assert.Empty(t, trends)

	ds, err := e.GetDeals(5)
	require.NoError(t, err)
	assert.Empty(t, ds)
}

func recommendationFixture(f *fixture) {
	f.user("u1")
	f.shop("s1", "Estrella", "5", "100")
	f.shop("s2", "Vecina", "1", "10")
	f.shop("s3", "Lejana", "1", "10")
	f.product("p1", "Arroz", "granos")
	f.product("p2", "Frijol", "granos")
	f.product("p3", "Leche", "lácteos")
	f.product("p4", "Queso", "lácteos")
	f.offer("sp1", "s1", "p1", ptr("80"))
	f.offer("sp2", "s2", "p1", ptr("100"))
	f.offer("sp3", "s3", "p1", ptr("120"))
	f.offer("sp4", "s2", "p2", ptr("50"))
	f.offer("sp5", "s2", "p3", ptr("30"))
	f.offer("sp6", "s3", "p4", ptr("20"))
	f.favorite("u1", "p1")
}

func TestRecomendaciones_PrecedenciaYPrioridad(t *testing.T) {
	e := build(t, recommendationFixture)

	recs, err := e.GetRecommendations(dto.RecommendationRequest{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, recs, 5)

	types := make([]string, len(recs))
	for i, r := range recs {
		types[i] = r.Type
	}
	assert.Equal(t, []string{
		dto.RecommendFavorite, // high
		dto.RecommendDeal,     // high: 20% de ahorro
		dto.RecommendShop,     // medium
		dto.RecommendTrending, // low: estable
		dto.RecommendCategory, // low
	}, types)

	assert.Equal(t, "s1", recs[0].ShopID)
	assert.Equal(t, dto.PriorityHigh, recs[1].Priority)
	assert.Equal(t, "s1", recs[2].ShopID)
	assert.Equal(t, dto.PriorityLow, recs[3].Priority)
	assert.Equal(t, "p2", recs[4].ProductID, "sugiere el granos más barato que no es favorito")
	assert.Equal(t, "granos", recs[4].Category)
}

func TestRecomendaciones_HistorialDeComprasDefineLaCategoria(t *testing.T) {
	e := build(t, recommendationFixture)

	recs, err := e.GetRecommendations(dto.RecommendationRequest{
		UserID: "u1",
		PurchaseHistory: []dto.PurchaseItem{
			{ProductID: "p3"},
			{ProductID: "p1", Category: "granos"},
			{ProductID: "p3"},
		},
	})
	require.NoError(t, err)
	last := recs[len(recs)-1]
	assert.Equal(t, dto.RecommendCategory, last.Type)
	assert.Equal(t, "lácteos", last.Category)
	assert.Equal(t, "p4", last.ProductID)
}

func TestRecomendaciones_SinFavoritosNiHistorial(t *testing.T) {
	e := build(t, func(f *fixture) {
		f.user("u2")
	})
	recs, err := e.GetRecommendations(dto.RecommendationRequest{UserID: "u2"})
	require.NoError(t, err)
	assert.Empty(t, recs)

	_, err = e.GetRecommendations(dto.RecommendationRequest{UserID: "nadie"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecomendaciones_FavoritoColganteEsErrorDeIntegridad(t *testing.T) {
	e := build(t, func(f *fixture) {
		f.user("u1")
		f.favorite("u1", "borrado")
	})
	_, err := e.GetRecommendations(dto.RecommendationRequest{UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrReferentialIntegrity)
}
