package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos y estados de Payment. Los pagos se registran, no se procesan.
const (
	PaymentTypeSubscription = "subscription"
	PaymentTypePriceUpdate  = "price_update"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Payment pago registrado de un usuario.
type Payment struct {
	ID        string          `json:"id" validate:"required"`
	UserID    string          `json:"user_id" validate:"required"`
	Type      string          `json:"type" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status" validate:"required,oneof=pending completed failed refunded"`
	Reference string          `json:"reference,omitempty"`
	CreatedAt time.Time       `json:"created_at" validate:"required"`
}

func (p Payment) check() error {
	if p.Amount.IsNegative() {
		return rangeError(KindPayment, "amount", "no puede ser negativo")
	}
	return nil
}
