package entity

import "time"

// Tipos de Notification emitidos por el núcleo.
const (
	NotificationPriceDrop    = "price_drop"
	NotificationSubscription = "subscription"
)

// Notification aviso dirigido a un usuario.
type Notification struct {
	ID        string         `json:"id" validate:"required"`
	UserID    string         `json:"user_id" validate:"required"`
	Type      string         `json:"type" validate:"required"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	IsRead    bool           `json:"is_read"`
	ActionURL string         `json:"action_url,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at" validate:"required"`
}
