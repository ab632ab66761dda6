package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePriceUpdateRequest cuerpo para registrar un nuevo precio.
// PaymentStatus vacío equivale a "pending"; PaymentAmount nil a cero.
type CreatePriceUpdateRequest struct {
	ShopProductID string           `json:"shop_product_id"`
	Price         decimal.Decimal  `json:"price"`
	PaymentStatus string           `json:"payment_status,omitempty"`
	PaymentAmount *decimal.Decimal `json:"payment_amount,omitempty"`
}

// PaymentStatusRequest transición del estado de pago de un PriceUpdate.
type PaymentStatusRequest struct {
	Status string `json:"status"`
}

// ToggleFavoriteRequest alterna un favorito.
type ToggleFavoriteRequest struct {
	UserID string `json:"user_id"`
	Type   string `json:"type"`
	ItemID string `json:"item_id"`
}

// ToggleFavoriteResponse nuevo estado tras el toggle.
type ToggleFavoriteResponse struct {
	Favorited bool `json:"favorited"`
}

// OwnerShopProduct publicación del catálogo de un dueño con los datos del producto.
type OwnerShopProduct struct {
	ShopProductID     string           `json:"shop_product_id"`
	ShopID            string           `json:"shop_id"`
	ProductID         string           `json:"product_id"`
	ProductName       string           `json:"product_name"`
	Category          string           `json:"category"`
	Unit              string           `json:"unit"`
	IsAvailable       bool             `json:"is_available"`
	CurrentPrice      *decimal.Decimal `json:"current_price"`
	LastPriceUpdateAt *time.Time       `json:"last_price_update_at"`
}

// RateShopRequest calificación 1..5.
type RateShopRequest struct {
	Rating int `json:"rating"`
}

// GoodwillRequest ajuste relativo del goodwill.
type GoodwillRequest struct {
	Delta decimal.Decimal `json:"delta"`
}

// SubscribeRequest alta de suscripción premium.
type SubscribeRequest struct {
	UserID       string          `json:"user_id"`
	Amount       decimal.Decimal `json:"amount"`
	DurationDays int             `json:"duration_days"`
	AutoRenew    bool            `json:"auto_renew"`
}

// ExpireResponse resultado del barrido de suscripciones vencidas.
type ExpireResponse struct {
	Expired int `json:"expired"`
}
