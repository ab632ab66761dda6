package repository

import (
	"context"

	"github.com/jhoicas/Comparador-api/internal/domain/entity"
)

// Table vista de solo lectura de una colección. All preserva el orden de inserción
// y nunca falla: una colección sin inicializar devuelve una secuencia vacía.
type Table[T entity.Record] interface {
	All() []T
	Get(id string) (T, bool)
	Count() int
}

// MutableTable colección dentro de una transacción de escritura.
// Put es upsert por id: reemplaza completo si existe, si no agrega al final.
type MutableTable[T entity.Record] interface {
	Table[T]
	Put(v T) error
	Remove(id string) bool
	Replace(items []T) error
	Clear()
}

// Reader lectura consistente de todas las colecciones más las búsquedas indexadas.
type Reader interface {
	Users() Table[entity.User]
	Shops() Table[entity.Shop]
	Products() Table[entity.Product]
	ShopProducts() Table[entity.ShopProduct]
	PriceUpdates() Table[entity.PriceUpdate]
	Subscriptions() Table[entity.Subscription]
	Payments() Table[entity.Payment]
	Favorites() Table[entity.Favorite]
	Notifications() Table[entity.Notification]

	UserByPhone(phone string) (entity.User, bool)
	ShopByOwner(ownerID string) (entity.Shop, bool)
	ShopProductsByShop(shopID string) []entity.ShopProduct
	ShopProductsByProduct(productID string) []entity.ShopProduct
	ShopProductByPair(shopID, productID string) (entity.ShopProduct, bool)
	PriceUpdatesByShopProduct(shopProductID string) []entity.PriceUpdate
	SubscriptionsByUser(userID string) []entity.Subscription
	ActiveSubscription(userID string) (entity.Subscription, bool)
	PaymentsByUser(userID string) []entity.Payment
	FavoritesByUser(userID string) []entity.Favorite
	Favorite(userID, favType, itemID string) (entity.Favorite, bool)
	NotificationsByUser(userID string) []entity.Notification
}

// Writer transacción de escritura: lecturas indexadas sobre el estado en curso
// más las colecciones mutables.
type Writer interface {
	Reader

	MutUsers() MutableTable[entity.User]
	MutShops() MutableTable[entity.Shop]
	MutProducts() MutableTable[entity.Product]
	MutShopProducts() MutableTable[entity.ShopProduct]
	MutPriceUpdates() MutableTable[entity.PriceUpdate]
	MutSubscriptions() MutableTable[entity.Subscription]
	MutPayments() MutableTable[entity.Payment]
	MutFavorites() MutableTable[entity.Favorite]
	MutNotifications() MutableTable[entity.Notification]
}

// Store puerto del Entity Store: fuente única de verdad para las nueve entidades.
type Store interface {
	// View ejecuta fn con un lock de lectura compartido durante toda la pasada.
	View(fn func(r Reader) error) error
	// Update ejecuta fn de forma atómica: si fn o el medio de persistencia fallan no queda rastro.
	Update(ctx context.Context, fn func(w Writer) error) error
	// Snapshot copia puntual de todas las colecciones.
	Snapshot() *entity.Dataset
}

// Medium medio de persistencia bajo el Entity Store (archivo, PostgreSQL...).
// La política de reintentos, si existe, vive en la implementación.
type Medium interface {
	Load(ctx context.Context) (*entity.Dataset, error)
	// Write persiste las colecciones indicadas tomando su contenido de d.
	Write(ctx context.Context, kinds []entity.Kind, d *entity.Dataset) error
}
