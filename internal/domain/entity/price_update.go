package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de un PriceUpdate.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
	PaymentWaived  = "waived"
)

// Actor quien registró la actualización (id + rol).
type Actor struct {
	ID   string `json:"id" validate:"required"`
	Role string `json:"role" validate:"required"`
}

// PriceUpdate registro inmutable de un cambio de precio; solo PaymentStatus puede transicionar.
type PriceUpdate struct {
	ID            string          `json:"id" validate:"required"`
	ShopProductID string          `json:"shop_product_id" validate:"required"`
	Price         decimal.Decimal `json:"price"`
	UpdatedBy     Actor           `json:"updated_by"`
	PaymentStatus string          `json:"payment_status" validate:"required,oneof=pending paid failed waived"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
	CreatedAt     time.Time       `json:"created_at" validate:"required"`
}

func (pu PriceUpdate) check() error {
	if !pu.Price.IsPositive() {
		return rangeError(KindPriceUpdate, "price", "debe ser mayor que 0")
	}
	if pu.PaymentAmount.IsNegative() {
		return rangeError(KindPriceUpdate, "payment_amount", "no puede ser negativo")
	}
	return nil
}

// CanTransition reglas de transición de PaymentStatus.
func CanTransition(from, to string) bool {
	switch from {
	case PaymentPending:
		return to == PaymentPaid || to == PaymentFailed || to == PaymentWaived
	case PaymentFailed:
		return to == PaymentPaid
	}
	return false
}
