package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceSummaryItem vista de mercado de un producto. Los precios son nil cuando ShopCount = 0.
type PriceSummaryItem struct {
	ProductID   string           `json:"product_id"`
	ProductName string           `json:"product_name"`
	Category    string           `json:"category"`
	Unit        string           `json:"unit"`
	ShopCount   int              `json:"shop_count"`
	MinPrice    *decimal.Decimal `json:"min_price"`
	MaxPrice    *decimal.Decimal `json:"max_price"`
	AvgPrice    *decimal.Decimal `json:"avg_price"`
	BestShop    *ShopRef         `json:"best_shop"`
}

// OfferItem oferta vigente de una tienda para un producto.
type OfferItem struct {
	ShopProductID     string          `json:"shop_product_id"`
	Shop              ShopRef         `json:"shop"`
	Price             decimal.Decimal `json:"price"`
	LastPriceUpdateAt *time.Time      `json:"last_price_update_at"`
	GoodwillScore     decimal.Decimal `json:"goodwill_score"`
	AverageRating     decimal.Decimal `json:"average_rating"`
}

// ProductOffersResponse ofertas de un producto ordenadas por precio ascendente.
type ProductOffersResponse struct {
	ProductID   string      `json:"product_id"`
	ProductName string      `json:"product_name"`
	Offers      []OfferItem `json:"offers"`
}
