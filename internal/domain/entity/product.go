package entity

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Product producto del catálogo global. El nombre es único sin distinguir mayúsculas
// y es la llave natural durante una importación con merge.
type Product struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Unit        string    `json:"unit" validate:"required"` // kg, litro, unidad...
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at" validate:"required"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductNameKey llave natural del producto: nombre sin espacios extremos y con case folding Unicode.
func ProductNameKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
