package entity

// Record es el contrato mínimo que cumple toda entidad persistida.
type Record interface {
	RecordID() string
	RecordKind() Kind
}

func (u User) RecordID() string         { return u.ID }
func (s Shop) RecordID() string         { return s.ID }
func (p Product) RecordID() string      { return p.ID }
func (sp ShopProduct) RecordID() string { return sp.ID }
func (pu PriceUpdate) RecordID() string { return pu.ID }
func (s Subscription) RecordID() string { return s.ID }
func (p Payment) RecordID() string      { return p.ID }
func (f Favorite) RecordID() string     { return f.ID }
func (n Notification) RecordID() string { return n.ID }

func (User) RecordKind() Kind         { return KindUser }
func (Shop) RecordKind() Kind         { return KindShop }
func (Product) RecordKind() Kind      { return KindProduct }
func (ShopProduct) RecordKind() Kind  { return KindShopProduct }
func (PriceUpdate) RecordKind() Kind  { return KindPriceUpdate }
func (Subscription) RecordKind() Kind { return KindSubscription }
func (Payment) RecordKind() Kind      { return KindPayment }
func (Favorite) RecordKind() Kind     { return KindFavorite }
func (Notification) RecordKind() Kind { return KindNotification }
