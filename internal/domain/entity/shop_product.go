package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShopProduct publicación de un Product en el catálogo de una Shop.
// Hay a lo sumo una fila por par (ShopID, ProductID). CurrentPrice solo cambia vía PriceUpdate.
type ShopProduct struct {
	ID                string           `json:"id" validate:"required"`
	ShopID            string           `json:"shop_id" validate:"required"`
	ProductID         string           `json:"product_id" validate:"required"`
	IsAvailable       bool             `json:"is_available"`
	CurrentPrice      *decimal.Decimal `json:"current_price"`
	LastPriceUpdateAt *time.Time       `json:"last_price_update_at"`
	CreatedAt         time.Time        `json:"created_at" validate:"required"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// Priced indica si la publicación está disponible y tiene precio vigente.
func (sp ShopProduct) Priced() bool {
	return sp.IsAvailable && sp.CurrentPrice != nil
}

func (sp ShopProduct) check() error {
	if sp.CurrentPrice != nil && !sp.CurrentPrice.IsPositive() {
		return rangeError(KindShopProduct, "current_price", "debe ser mayor que 0")
	}
	return nil
}
