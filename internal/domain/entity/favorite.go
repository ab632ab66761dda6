package entity

import "time"

// Tipos de Favorite.
const (
	FavoriteProduct = "product"
	FavoriteShop    = "shop"
)

// Favorite a lo sumo uno por (UserID, Type, ItemID).
type Favorite struct {
	ID        string    `json:"id" validate:"required"`
	UserID    string    `json:"user_id" validate:"required"`
	Type      string    `json:"type" validate:"required,oneof=product shop"`
	ItemID    string    `json:"item_id" validate:"required"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
}
