package entity

import "time"

// DocumentVersion versión del formato de exportación.
const DocumentVersion = "1.0.0"

// Document formato portable de exportación/importación (llaves camelCase).
type Document struct {
	Version    string       `json:"version"`
	ExportedAt time.Time    `json:"exportedAt"`
	Counts     map[Kind]int `json:"counts"`
	Data       Dataset      `json:"data"`
}

// NewDocument envuelve un Dataset con versión, fecha y conteos.
func NewDocument(d *Dataset, at time.Time) *Document {
	return &Document{
		Version:    DocumentVersion,
		ExportedAt: at.UTC(),
		Counts:     d.Counts(),
		Data:       *d,
	}
}

// Set reemplaza en d la colección k con la de src.
func (d *Dataset) Set(k Kind, src *Dataset) {
	switch k {
	case KindUser:
		d.Users = src.Users
	case KindShop:
		d.Shops = src.Shops
	case KindProduct:
		d.Products = src.Products
	case KindShopProduct:
		d.ShopProducts = src.ShopProducts
	case KindPriceUpdate:
		d.PriceUpdates = src.PriceUpdates
	case KindSubscription:
		d.Subscriptions = src.Subscriptions
	case KindPayment:
		d.Payments = src.Payments
	case KindFavorite:
		d.Favorites = src.Favorites
	case KindNotification:
		d.Notifications = src.Notifications
	}
}
