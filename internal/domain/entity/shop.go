package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shop tienda de un shop_owner. GoodwillScore (0–100) y el agregado de calificaciones
// los mantiene el sistema; nunca se editan directamente.
type Shop struct {
	ID            string          `json:"id" validate:"required"`
	OwnerID       string          `json:"owner_id" validate:"required"`
	Name          string          `json:"name" validate:"required"`
	Category      string          `json:"category"`
	Address       string          `json:"address,omitempty"`
	GoodwillScore decimal.Decimal `json:"goodwill_score"`
	AverageRating decimal.Decimal `json:"average_rating"`
	TotalRatings  int             `json:"total_ratings" validate:"gte=0"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at" validate:"required"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

var (
	maxGoodwill = decimal.NewFromInt(100)
	maxRating   = decimal.NewFromInt(5)
)

func (s Shop) check() error {
	if s.GoodwillScore.IsNegative() || s.GoodwillScore.GreaterThan(maxGoodwill) {
		return rangeError(KindShop, "goodwill_score", "debe estar entre 0 y 100")
	}
	if s.AverageRating.IsNegative() || s.AverageRating.GreaterThan(maxRating) {
		return rangeError(KindShop, "average_rating", "debe estar entre 0 y 5")
	}
	return nil
}
