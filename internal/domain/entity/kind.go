package entity

import "strings"

// Kind identifica una de las nueve colecciones del almacén.
// El valor es la llave del documento de exportación (camelCase).
type Kind string

const (
	KindUser         Kind = "users"
	KindShop         Kind = "shops"
	KindProduct      Kind = "products"
	KindShopProduct  Kind = "shopProducts"
	KindPriceUpdate  Kind = "priceUpdates"
	KindSubscription Kind = "subscriptions"
	KindPayment      Kind = "payments"
	KindFavorite     Kind = "favorites"
	KindNotification Kind = "notifications"
)

// Kinds lista las colecciones en orden de dependencia (referenciadas antes que referentes).
var Kinds = []Kind{
	KindUser,
	KindShop,
	KindProduct,
	KindShopProduct,
	KindPriceUpdate,
	KindSubscription,
	KindPayment,
	KindFavorite,
	KindNotification,
}

var tableNames = map[Kind]string{
	KindUser:         "users",
	KindShop:         "shops",
	KindProduct:      "products",
	KindShopProduct:  "shop_products",
	KindPriceUpdate:  "price_updates",
	KindSubscription: "subscriptions",
	KindPayment:      "payments",
	KindFavorite:     "favorites",
	KindNotification: "notifications",
}

// Table devuelve el nombre de tabla snake_case usado por el formato de migración al backend.
func (k Kind) Table() string {
	return tableNames[k]
}

// Label nombre singular legible, usado en mensajes de error.
func (k Kind) Label() string {
	switch k {
	case KindUser:
		return "user"
	case KindShop:
		return "shop"
	case KindProduct:
		return "product"
	case KindShopProduct:
		return "shop_product"
	case KindPriceUpdate:
		return "price_update"
	case KindSubscription:
		return "subscription"
	case KindPayment:
		return "payment"
	case KindFavorite:
		return "favorite"
	case KindNotification:
		return "notification"
	}
	return string(k)
}

// ParseKind acepta tanto la llave camelCase como el nombre de tabla snake_case.
func ParseKind(s string) (Kind, bool) {
	s = strings.TrimSpace(s)
	for _, k := range Kinds {
		if string(k) == s || k.Table() == s {
			return k, true
		}
	}
	return "", false
}
