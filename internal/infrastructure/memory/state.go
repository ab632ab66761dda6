package memory

import (
	"github.com/jhoicas/Comparador-api/internal/domain/entity"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
)

var (
	_ repository.Reader = (*state)(nil)
	_ repository.Writer = (*state)(nil)
)

// Nombres de índices secundarios.
const (
	ixPhone   = "phone"
	ixOwner   = "owner"
	ixName    = "name"
	ixShop    = "shop"
	ixProduct = "product"
	ixPair    = "pair"
	ixListing = "listing"
	ixUser    = "user"
	ixActive  = "active"
	ixFavKey  = "favorite"
)

// state conjunto de las nueve tablas. En una transacción las tablas se clonan
// la primera vez que se piden mutables (copy-on-write) y se marcan sucias.
type state struct {
	users         *table[entity.User]
	shops         *table[entity.Shop]
	products      *table[entity.Product]
	shopProducts  *table[entity.ShopProduct]
	priceUpdates  *table[entity.PriceUpdate]
	subscriptions *table[entity.Subscription]
	payments      *table[entity.Payment]
	favorites     *table[entity.Favorite]
	notifications *table[entity.Notification]

	dirty map[entity.Kind]bool
}

func always(id string) (string, bool) { return id, id != "" }

func newState() *state {
	return &state{
		users: newTable(entity.KindUser,
			&index[entity.User]{name: ixPhone, field: "phone_number", unique: true,
				key: func(u entity.User) (string, bool) { return always(u.PhoneNumber) }},
		),
		shops: newTable(entity.KindShop,
			&index[entity.Shop]{name: ixOwner, field: "owner_id", unique: true,
				key: func(s entity.Shop) (string, bool) { return always(s.OwnerID) }},
		),
		products: newTable(entity.KindProduct,
			&index[entity.Product]{name: ixName, field: "name", unique: true,
				key: func(p entity.Product) (string, bool) { return always(entity.ProductNameKey(p.Name)) }},
		),
		shopProducts: newTable(entity.KindShopProduct,
			&index[entity.ShopProduct]{name: ixShop,
				key: func(sp entity.ShopProduct) (string, bool) { return always(sp.ShopID) }},
			&index[entity.ShopProduct]{name: ixProduct,
				key: func(sp entity.ShopProduct) (string, bool) { return always(sp.ProductID) }},
			&index[entity.ShopProduct]{name: ixPair, field: "product_id", unique: true,
				key: func(sp entity.ShopProduct) (string, bool) { return pairKey(sp.ShopID, sp.ProductID), true }},
		),
		priceUpdates: newTable(entity.KindPriceUpdate,
			&index[entity.PriceUpdate]{name: ixListing,
				key: func(pu entity.PriceUpdate) (string, bool) { return always(pu.ShopProductID) }},
		),
		subscriptions: newTable(entity.KindSubscription,
			&index[entity.Subscription]{name: ixUser,
				key: func(s entity.Subscription) (string, bool) { return always(s.UserID) }},
			&index[entity.Subscription]{name: ixActive, field: "status", unique: true,
				key: func(s entity.Subscription) (string, bool) { return s.UserID, s.Active() }},
		),
		payments: newTable(entity.KindPayment,
			&index[entity.Payment]{name: ixUser,
				key: func(p entity.Payment) (string, bool) { return always(p.UserID) }},
		),
		favorites: newTable(entity.KindFavorite,
			&index[entity.Favorite]{name: ixUser,
				key: func(f entity.Favorite) (string, bool) { return always(f.UserID) }},
			&index[entity.Favorite]{name: ixFavKey, field: "item_id", unique: true,
				key: func(f entity.Favorite) (string, bool) { return favoriteKey(f.UserID, f.Type, f.ItemID), true }},
		),
		notifications: newTable(entity.KindNotification,
			&index[entity.Notification]{name: ixUser,
				key: func(n entity.Notification) (string, bool) { return always(n.UserID) }},
		),
	}
}

func pairKey(shopID, productID string) string { return shopID + "\x00" + productID }

func favoriteKey(userID, favType, itemID string) string {
	return userID + "\x00" + favType + "\x00" + itemID
}

// fork prepara el estado de una transacción compartiendo todas las tablas con el base.
func (s *state) fork() *state {
	c := *s
	c.dirty = make(map[entity.Kind]bool)
	return &c
}

// mut clona la tabla la primera vez que la transacción la pide mutable.
func mut[T entity.Record](s *state, t **table[T]) *table[T] {
	k := (*t).kind
	if !s.dirty[k] {
		*t = (*t).clone()
		s.dirty[k] = true
	}
	return *t
}

func (s *state) dirtyKinds() []entity.Kind {
	out := make([]entity.Kind, 0, len(s.dirty))
	for _, k := range entity.Kinds {
		if s.dirty[k] {
			out = append(out, k)
		}
	}
	return out
}

// dataset copia de las colecciones pedidas (todas si kinds está vacío).
func (s *state) dataset(kinds ...entity.Kind) *entity.Dataset {
	want := func(k entity.Kind) bool {
		if len(kinds) == 0 {
			return true
		}
		for _, x := range kinds {
			if x == k {
				return true
			}
		}
		return false
	}
	d := &entity.Dataset{}
	if want(entity.KindUser) {
		d.Users = s.users.All()
	}
	if want(entity.KindShop) {
		d.Shops = s.shops.All()
	}
	if want(entity.KindProduct) {
		d.Products = s.products.All()
	}
	if want(entity.KindShopProduct) {
		d.ShopProducts = s.shopProducts.All()
	}
	if want(entity.KindPriceUpdate) {
		d.PriceUpdates = s.priceUpdates.All()
	}
	if want(entity.KindSubscription) {
		d.Subscriptions = s.subscriptions.All()
	}
	if want(entity.KindPayment) {
		d.Payments = s.payments.All()
	}
	if want(entity.KindFavorite) {
		d.Favorites = s.favorites.All()
	}
	if want(entity.KindNotification) {
		d.Notifications = s.notifications.All()
	}
	return d
}

// load carga un Dataset completo validando cada registro.
func (s *state) load(d *entity.Dataset) error {
	if err := s.users.Replace(d.Users); err != nil {
		return err
	}
	if err := s.shops.Replace(d.Shops); err != nil {
		return err
	}
	if err := s.products.Replace(d.Products); err != nil {
		return err
	}
	if err := s.shopProducts.Replace(d.ShopProducts); err != nil {
		return err
	}
	if err := s.priceUpdates.Replace(d.PriceUpdates); err != nil {
		return err
	}
	if err := s.subscriptions.Replace(d.Subscriptions); err != nil {
		return err
	}
	if err := s.payments.Replace(d.Payments); err != nil {
		return err
	}
	if err := s.favorites.Replace(d.Favorites); err != nil {
		return err
	}
	return s.notifications.Replace(d.Notifications)
}

// ── Reader ────────────────────────────────────────────────────────────────────

func (s *state) Users() repository.Table[entity.User]                 { return s.users }
func (s *state) Shops() repository.Table[entity.Shop]                 { return s.shops }
func (s *state) Products() repository.Table[entity.Product]           { return s.products }
func (s *state) ShopProducts() repository.Table[entity.ShopProduct]   { return s.shopProducts }
func (s *state) PriceUpdates() repository.Table[entity.PriceUpdate]   { return s.priceUpdates }
func (s *state) Subscriptions() repository.Table[entity.Subscription] { return s.subscriptions }
func (s *state) Payments() repository.Table[entity.Payment]           { return s.payments }
func (s *state) Favorites() repository.Table[entity.Favorite]         { return s.favorites }
func (s *state) Notifications() repository.Table[entity.Notification] { return s.notifications }

func (s *state) UserByPhone(phone string) (entity.User, bool) {
	return s.users.first(ixPhone, phone)
}

func (s *state) ShopByOwner(ownerID string) (entity.Shop, bool) {
	return s.shops.first(ixOwner, ownerID)
}

func (s *state) ShopProductsByShop(shopID string) []entity.ShopProduct {
	return s.shopProducts.lookup(ixShop, shopID)
}

func (s *state) ShopProductsByProduct(productID string) []entity.ShopProduct {
	return s.shopProducts.lookup(ixProduct, productID)
}

func (s *state) ShopProductByPair(shopID, productID string) (entity.ShopProduct, bool) {
	return s.shopProducts.first(ixPair, pairKey(shopID, productID))
}

func (s *state) PriceUpdatesByShopProduct(shopProductID string) []entity.PriceUpdate {
	return s.priceUpdates.lookup(ixListing, shopProductID)
}

func (s *state) SubscriptionsByUser(userID string) []entity.Subscription {
	return s.subscriptions.lookup(ixUser, userID)
}

func (s *state) ActiveSubscription(userID string) (entity.Subscription, bool) {
	return s.subscriptions.first(ixActive, userID)
}

func (s *state) PaymentsByUser(userID string) []entity.Payment {
	return s.payments.lookup(ixUser, userID)
}

func (s *state) FavoritesByUser(userID string) []entity.Favorite {
	return s.favorites.lookup(ixUser, userID)
}

func (s *state) Favorite(userID, favType, itemID string) (entity.Favorite, bool) {
	return s.favorites.first(ixFavKey, favoriteKey(userID, favType, itemID))
}

func (s *state) NotificationsByUser(userID string) []entity.Notification {
	return s.notifications.lookup(ixUser, userID)
}

// ── Writer ────────────────────────────────────────────────────────────────────

func (s *state) MutUsers() repository.MutableTable[entity.User] { return mut(s, &s.users) }
func (s *state) MutShops() repository.MutableTable[entity.Shop] { return mut(s, &s.shops) }
func (s *state) MutProducts() repository.MutableTable[entity.Product] {
	return mut(s, &s.products)
}
func (s *state) MutShopProducts() repository.MutableTable[entity.ShopProduct] {
	return mut(s, &s.shopProducts)
}
func (s *state) MutPriceUpdates() repository.MutableTable[entity.PriceUpdate] {
	return mut(s, &s.priceUpdates)
}
func (s *state) MutSubscriptions() repository.MutableTable[entity.Subscription] {
	return mut(s, &s.subscriptions)
}
func (s *state) MutPayments() repository.MutableTable[entity.Payment] {
	return mut(s, &s.payments)
}
func (s *state) MutFavorites() repository.MutableTable[entity.Favorite] {
	return mut(s, &s.favorites)
}
func (s *state) MutNotifications() repository.MutableTable[entity.Notification] {
	return mut(s, &s.notifications)
}
