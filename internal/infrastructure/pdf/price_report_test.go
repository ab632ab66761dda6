package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comparador-api/internal/application/dto"
)

func TestFormatPrice(t *testing.T) {
	d := func(s string) *decimal.Decimal {
		v := decimal.RequireFromString(s)
		return &v
	}
	assert.Equal(t, "—", formatPrice(nil))
	assert.Equal(t, "$70,00", formatPrice(d("70")))
	assert.Equal(t, "$1.234,50", formatPrice(d("1234.5")))
	assert.Equal(t, "$1.000.000,99", formatPrice(d("1000000.99")))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "999", formatMoney("999"))
	assert.Equal(t, "25.000", formatMoney("25000"))
	assert.Equal(t, "1.000.000", formatMoney("1000000"))
}

func TestRenderPriceReport_GeneraPDF(t *testing.T) {
	price := decimal.NewFromInt(70)
	items := []dto.PriceSummaryItem{
		{ProductID: "p1", ProductName: "Arroz", Category: "granos", Unit: "kg", ShopCount: 1,
			MinPrice: &price, MaxPrice: &price, AvgPrice: &price, BestShop: &dto.ShopRef{ID: "s1", Name: "La Esquina"}},
		{ProductID: "p2", ProductName: "Leche", Category: "lácteos"},
	}
	out, err := NewMarotoPriceReport("").RenderPriceReport(context.Background(), time.Now(), items)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderPriceReport_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMarotoPriceReport("x").RenderPriceReport(ctx, time.Now(), nil)
	require.ErrorIs(t, err, context.Canceled)
}
