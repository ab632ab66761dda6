package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Subscription.
const (
	SubscriptionActive    = "active"
	SubscriptionExpired   = "expired"
	SubscriptionCancelled = "cancelled"
)

// Subscription suscripción premium. A lo sumo una activa por usuario.
type Subscription struct {
	ID        string          `json:"id" validate:"required"`
	UserID    string          `json:"user_id" validate:"required"`
	Status    string          `json:"status" validate:"required,oneof=active expired cancelled"`
	Amount    decimal.Decimal `json:"amount"`
	StartedAt time.Time       `json:"started_at" validate:"required"`
	ExpiresAt time.Time       `json:"expires_at" validate:"required"`
	AutoRenew bool            `json:"auto_renew"`
	CreatedAt time.Time       `json:"created_at" validate:"required"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Active indica si la suscripción está marcada como activa.
func (s Subscription) Active() bool { return s.Status == SubscriptionActive }

func (s Subscription) check() error {
	if s.Amount.IsNegative() {
		return rangeError(KindSubscription, "amount", "no puede ser negativo")
	}
	if s.ExpiresAt.Before(s.StartedAt) {
		return rangeError(KindSubscription, "expires_at", "es anterior a started_at")
	}
	return nil
}
