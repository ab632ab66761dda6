package pricing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comparador-api/internal/application/dto"
	"github.com/jhoicas/Comparador-api/internal/application/pricing"
	"github.com/jhoicas/Comparador-api/internal/domain"
	"github.com/jhoicas/Comparador-api/internal/domain/entity"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
	"github.com/jhoicas/Comparador-api/internal/infrastructure/memory"
)

var t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func price(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func shop(id, name string) entity.Shop {
	return entity.Shop{ID: id, OwnerID: "owner-" + id, Name: name, IsActive: true, CreatedAt: t0}
}

func product(id, name string) entity.Product {
	return entity.Product{ID: id, Name: name, Category: "granos", Unit: "kg", IsActive: true, CreatedAt: t0}
}

func offer(id, shopID, productID string, p *decimal.Decimal) entity.ShopProduct {
	return entity.ShopProduct{ID: id, ShopID: shopID, ProductID: productID, IsAvailable: true, CurrentPrice: p, CreatedAt: t0}
}

func seed(t *testing.T, fn func(w repository.Writer) error) *memory.Store {
	t.Helper()
	s := memory.New()
	require.NoError(t, s.Update(context.Background(), fn))
	return s
}

func must(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func TestSummary_SinOfertasPreciosNulos(t *testing.T) {
	s := seed(t, func(w repository.Writer) error {
		unpriced := offer("sp1", "s1", "p1", nil)
		unavailable := offer("sp2", "s2", "p1", price("10"))
		unavailable.IsAvailable = false
		return must(
			w.MutShops().Put(shop("s1", "Uno")),
			w.MutShops().Put(shop("s2", "Dos")),
			w.MutProducts().Put(product("p1", "Arroz")),
			w.MutShopProducts().Put(unpriced),
			w.MutShopProducts().Put(unavailable),
		)
	})

	items, err := pricing.NewUseCase(s, nil).GetGlobalPriceSummary()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].ShopCount)
	assert.Nil(t, items[0].MinPrice)
	assert.Nil(t, items[0].MaxPrice)
	assert.Nil(t, items[0].AvgPrice)
	assert.Nil(t, items[0].BestShop)
}

func TestSummary_MinPromedioMaxYDesempate(t *testing.T) {
	s := seed(t, func(w repository.Writer) error {
		return must(
			w.MutShops().Put(shop("s1", "Primera")),
			w.MutShops().Put(shop("s2", "Segunda")),
			w.MutShops().Put(shop("s3", "Tercera")),
			w.MutProducts().Put(product("p1", "Arroz")),
			w.MutShopProducts().Put(offer("sp1", "s1", "p1", price("120"))),
			w.MutShopProducts().Put(offer("sp2", "s2", "p1", price("80"))),
			w.MutShopProducts().Put(offer("sp3", "s3", "p1", price("80"))),
		)
	})
	uc := pricing.NewUseCase(s, nil)

	for i := 0; i < 3; i++ {
		items, err := uc.GetGlobalPriceSummary()
		require.NoError(t, err)
		require.Len(t, items, 1)
		it := items[0]
		assert.Equal(t, 3, it.ShopCount)
		assert.True(t, it.MinPrice.Equal(decimal.NewFromInt(80)))
		assert.True(t, it.MaxPrice.Equal(decimal.NewFromInt(120)))
		assert.Equal(t, "93.33", it.AvgPrice.StringFixed(2))
		assert.True(t, it.MinPrice.LessThanOrEqual(*it.AvgPrice) && it.AvgPrice.LessThanOrEqual(*it.MaxPrice))
		require.NotNil(t, it.BestShop)
		assert.Equal(t, "s2", it.BestShop.ID, "el empate lo gana la primera publicación del almacén")
	}
}

func TestSummary_SoloActivosOrdenadosPorNombre(t *testing.T) {
	s := seed(t, func(w repository.Writer) error {
		inactive := product("p4", "Aceite")
		inactive.IsActive = false
		return must(
			w.MutProducts().Put(product("p1", "café")),
			w.MutProducts().Put(product("p2", "Banano")),
			w.MutProducts().Put(product("p3", "Azúcar")),
			w.MutProducts().Put(inactive),
		)
	})

	items, err := pricing.NewUseCase(s, nil).GetGlobalPriceSummary()
	require.NoError(t, err)
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.ProductName
	}
	assert.Equal(t, []string{"Azúcar", "Banano", "café"}, names)
}

func TestSummary_ReflejaNuevoPrecioAlInstante(t *testing.T) {
	s := seed(t, func(w repository.Writer) error {
		return must(
			w.MutShops().Put(shop("s1", "Uno")),
			w.MutProducts().Put(product("p1", "Arroz")),
			w.MutShopProducts().Put(offer("sp1", "s1", "p1", price("70"))),
		)
	})
	uc := pricing.NewUseCase(s, nil)

	require.NoError(t, s.Update(context.Background(), func(w repository.Writer) error {
		sp, _ := w.ShopProducts().Get("sp1")
		sp.CurrentPrice = price("50")
		return w.MutShopProducts().Put(sp)
	}))

	items, err := uc.GetGlobalPriceSummary()
	require.NoError(t, err)
	assert.True(t, items[0].MinPrice.Equal(decimal.NewFromInt(50)))
}

func TestSummary_TiendaInexistenteEsErrorDeIntegridad(t *testing.T) {
	s := seed(t, func(w repository.Writer) error {
		return must(
			w.MutProducts().Put(product("p1", "Arroz")),
			w.MutShopProducts().Put(offer("sp1", "ghost", "p1", price("10"))),
		)
	})

	_, err := pricing.NewUseCase(s, nil).GetGlobalPriceSummary()
	var ierr *domain.ReferentialIntegrityError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "ghost", ierr.RefID)
}

func TestGetProductOffers_OrdenPorPrecio(t *testing.T) {
	s := seed(t, func(w repository.Writer) error {
		return must(
			w.MutShops().Put(shop("s1", "Uno")),
			w.MutShops().Put(shop("s2", "Dos")),
			w.MutShops().Put(shop("s3", "Tres")),
			w.MutProducts().Put(product("p1", "Arroz")),
			w.MutShopProducts().Put(offer("sp1", "s1", "p1", price("30"))),
			w.MutShopProducts().Put(offer("sp2", "s2", "p1", price("10"))),
			w.MutShopProducts().Put(offer("sp3", "s3", "p1", price("30"))),
		)
	})
	uc := pricing.NewUseCase(s, nil)

	res, err := uc.GetProductOffers("p1")
	require.NoError(t, err)
	require.Len(t, res.Offers, 3)
	assert.Equal(t, []string{"sp2", "sp1", "sp3"},
		[]string{res.Offers[0].ShopProductID, res.Offers[1].ShopProductID, res.Offers[2].ShopProductID})

	_, err = uc.GetProductOffers("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type fakeRenderer struct {
	items []dto.PriceSummaryItem
}

func (f *fakeRenderer) RenderPriceReport(_ context.Context, _ time.Time, items []dto.PriceSummaryItem) ([]byte, error) {
	f.items = items
	return []byte("%PDF-fake"), nil
}

func TestGetPriceReportPDF_UsaElResumen(t *testing.T) {
	s := seed(t, func(w repository.Writer) error {
		return w.MutProducts().Put(product("p1", "Arroz"))
	})
	r := &fakeRenderer{}
	uc := pricing.NewUseCase(s, r).WithClock(func() time.Time { return t0 })

	raw, name, err := uc.GetPriceReportPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(raw))
	assert.Equal(t, "precios_20260301.pdf", name)
	assert.Len(t, r.items, 1)

	_, _, err = pricing.NewUseCase(s, nil).GetPriceReportPDF(context.Background())
	assert.Error(t, err)
}
