package entity

import "time"

// Roles válidos para User.
const (
	RoleShopOwner = "shop_owner"
	RoleEndUser   = "end_user"
	RoleStaff     = "staff"
	RoleAdmin     = "admin"
)

// User representa un usuario del marketplace. El teléfono es único entre todos los usuarios.
type User struct {
	ID          string    `json:"id" validate:"required"`
	PhoneNumber string    `json:"phone_number" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Role        string    `json:"role" validate:"required,oneof=shop_owner end_user staff admin"`
	IsPremium   bool      `json:"is_premium"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at" validate:"required"`
	UpdatedAt   time.Time `json:"updated_at"`
}
