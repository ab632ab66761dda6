package entity

import "maps"

// Clone copia los punteros de precio/fecha para que el almacén no comparta memoria con el llamador.
func (sp ShopProduct) Clone() ShopProduct {
	if sp.CurrentPrice != nil {
		p := *sp.CurrentPrice
		sp.CurrentPrice = &p
	}
	if sp.LastPriceUpdateAt != nil {
		t := *sp.LastPriceUpdateAt
		sp.LastPriceUpdateAt = &t
	}
	return sp
}

// Clone copia el mapa de metadata.
func (n Notification) Clone() Notification {
	if n.Metadata != nil {
		n.Metadata = maps.Clone(n.Metadata)
	}
	return n
}
