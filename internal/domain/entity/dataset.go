package entity

// Dataset contenido completo del almacén: una colección por Kind, en orden de inserción.
// Es la sección "data" del documento de exportación y lo que recibe/entrega el medio de persistencia.
type Dataset struct {
	Users         []User         `json:"users"`
	Shops         []Shop         `json:"shops"`
	Products      []Product      `json:"products"`
	ShopProducts  []ShopProduct  `json:"shopProducts"`
	PriceUpdates  []PriceUpdate  `json:"priceUpdates"`
	Subscriptions []Subscription `json:"subscriptions"`
	Payments      []Payment      `json:"payments"`
	Favorites     []Favorite     `json:"favorites"`
	Notifications []Notification `json:"notifications"`
}

// Counts número de registros por Kind.
func (d *Dataset) Counts() map[Kind]int {
	return map[Kind]int{
		KindUser:         len(d.Users),
		KindShop:         len(d.Shops),
		KindProduct:      len(d.Products),
		KindShopProduct:  len(d.ShopProducts),
		KindPriceUpdate:  len(d.PriceUpdates),
		KindSubscription: len(d.Subscriptions),
		KindPayment:      len(d.Payments),
		KindFavorite:     len(d.Favorites),
		KindNotification: len(d.Notifications),
	}
}

// Records devuelve la colección de un Kind como []Record (para codificadores genéricos).
func (d *Dataset) Records(k Kind) []Record {
	switch k {
	case KindUser:
		return toRecords(d.Users)
	case KindShop:
		return toRecords(d.Shops)
	case KindProduct:
		return toRecords(d.Products)
	case KindShopProduct:
		return toRecords(d.ShopProducts)
	case KindPriceUpdate:
		return toRecords(d.PriceUpdates)
	case KindSubscription:
		return toRecords(d.Subscriptions)
	case KindPayment:
		return toRecords(d.Payments)
	case KindFavorite:
		return toRecords(d.Favorites)
	case KindNotification:
		return toRecords(d.Notifications)
	}
	return nil
}

func toRecords[T Record](items []T) []Record {
	out := make([]Record, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}
