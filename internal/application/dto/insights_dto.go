package dto

import "github.com/shopspring/decimal"

// Direcciones de tendencia.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// Prioridades de recomendación.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Tipos de recomendación.
const (
	RecommendFavorite = "favorite_product"
	RecommendShop     = "popular_shop"
	RecommendDeal     = "deal"
	RecommendTrending = "trending_product"
	RecommendCategory = "category"
)

// PopularShop puntaje de popularidad con sus componentes.
type PopularShop struct {
	Shop              ShopRef         `json:"shop"`
	Category          string          `json:"category"`
	AverageRating     decimal.Decimal `json:"average_rating"`
	GoodwillScore     decimal.Decimal `json:"goodwill_score"`
	ProductCount      int             `json:"product_count"`
	TotalPriceUpdates int             `json:"total_price_updates"`
	RatingScore       decimal.Decimal `json:"rating_score"`
	ProductScore      decimal.Decimal `json:"product_score"`
	UpdateScore       decimal.Decimal `json:"update_score"`
	Popularity        decimal.Decimal `json:"popularity"`
}

// TrendingProduct tendencia de precio de un producto entre la ventana reciente y la anterior.
type TrendingProduct struct {
	ProductID         string           `json:"product_id"`
	ProductName       string           `json:"product_name"`
	Category          string           `json:"category"`
	ShopCount         int              `json:"shop_count"`
	RecentAvg         *decimal.Decimal `json:"recent_avg"`
	PriorAvg          *decimal.Decimal `json:"prior_avg"`
	PriceChangePct    decimal.Decimal  `json:"price_change_pct"`
	Direction         string           `json:"direction"`
	RecentUpdateCount int              `json:"recent_update_count"`
	ViewCount         int              `json:"view_count"`
	TrendScore        decimal.Decimal  `json:"trend_score"`
}

// Deal oferta que mejora el precio promedio del mercado.
type Deal struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	BestShop    ShopRef         `json:"best_shop"`
	MinPrice    decimal.Decimal `json:"min_price"`
	AvgPrice    decimal.Decimal `json:"avg_price"`
	Savings     decimal.Decimal `json:"savings"`
	SavingsPct  decimal.Decimal `json:"savings_pct"`
	ShopCount   int             `json:"shop_count"`
	DealScore   decimal.Decimal `json:"deal_score"`
}

// PurchaseItem compra histórica del usuario. Category se resuelve desde el producto si viene vacía.
type PurchaseItem struct {
	ProductID string `json:"product_id"`
	Category  string `json:"category,omitempty"`
}

// RecommendationRequest entrada del feed de recomendaciones.
type RecommendationRequest struct {
	UserID          string         `json:"user_id"`
	PurchaseHistory []PurchaseItem `json:"purchase_history"`
}

// Recommendation elemento del feed.
type Recommendation struct {
	Type      string `json:"type"`
	Priority  string `json:"priority"`
	Title     string `json:"title"`
	Reason    string `json:"reason"`
	ProductID string `json:"product_id,omitempty"`
	ShopID    string `json:"shop_id,omitempty"`
	Category  string `json:"category,omitempty"`
}
