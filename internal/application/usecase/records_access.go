package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comparador-api/internal/domain"
	"github.com/jhoicas/Comparador-api/internal/domain/entity"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
)

var decimalZero = decimal.Zero

func allOf(r repository.Reader, k entity.Kind) []entity.Record {
	switch k {
	case entity.KindUser:
		return records(r.Users().All())
	case entity.KindShop:
		return records(r.Shops().All())
	case entity.KindProduct:
		return records(r.Products().All())
	case entity.KindShopProduct:
		return records(r.ShopProducts().All())
	case entity.KindPriceUpdate:
		return records(r.PriceUpdates().All())
	case entity.KindSubscription:
		return records(r.Subscriptions().All())
	case entity.KindPayment:
		return records(r.Payments().All())
	case entity.KindFavorite:
		return records(r.Favorites().All())
	case entity.KindNotification:
		return records(r.Notifications().All())
	}
	return []entity.Record{}
}

func getOf(r repository.Reader, k entity.Kind, id string) (entity.Record, bool) {
	switch k {
	case entity.KindUser:
		return found(r.Users().Get(id))
	case entity.KindShop:
		return found(r.Shops().Get(id))
	case entity.KindProduct:
		return found(r.Products().Get(id))
	case entity.KindShopProduct:
		return found(r.ShopProducts().Get(id))
	case entity.KindPriceUpdate:
		return found(r.PriceUpdates().Get(id))
	case entity.KindSubscription:
		return found(r.Subscriptions().Get(id))
	case entity.KindPayment:
		return found(r.Payments().Get(id))
	case entity.KindFavorite:
		return found(r.Favorites().Get(id))
	case entity.KindNotification:
		return found(r.Notifications().Get(id))
	}
	return nil, false
}

// removeOf elimina por id. Solo pide la tabla mutable si el registro existe, para no volcar
// la colección en un delete sin efecto.
func removeOf(w repository.Writer, k entity.Kind, id string) (bool, error) {
	if _, ok := getOf(w, k, id); !ok {
		return false, nil
	}
	if err := checkDependents(w, k, id); err != nil {
		return false, err
	}
	switch k {
	case entity.KindUser:
		return w.MutUsers().Remove(id), nil
	case entity.KindShop:
		return w.MutShops().Remove(id), nil
	case entity.KindProduct:
		return w.MutProducts().Remove(id), nil
	case entity.KindShopProduct:
		return w.MutShopProducts().Remove(id), nil
	case entity.KindPriceUpdate:
		return w.MutPriceUpdates().Remove(id), nil
	case entity.KindSubscription:
		return w.MutSubscriptions().Remove(id), nil
	case entity.KindPayment:
		return w.MutPayments().Remove(id), nil
	case entity.KindFavorite:
		return w.MutFavorites().Remove(id), nil
	case entity.KindNotification:
		return w.MutNotifications().Remove(id), nil
	}
	return false, nil
}

// checkDependents rechaza borrar un usuario, tienda o producto que todavía es referenciado.
// Un ShopProduct sí se puede borrar: su historial de precios se conserva.
func checkDependents(r repository.Reader, k entity.Kind, id string) error {
	var blocking []string
	add := func(n int, kind entity.Kind) {
		if n > 0 {
			blocking = append(blocking, kind.Table())
		}
	}
	favoritesOf := func(favType string) int {
		n := 0
		for _, f := range r.Favorites().All() {
			if f.Type == favType && f.ItemID == id {
				n++
			}
		}
		return n
	}
	switch k {
	case entity.KindUser:
		if _, ok := r.ShopByOwner(id); ok {
			add(1, entity.KindShop)
		}
		add(len(r.SubscriptionsByUser(id)), entity.KindSubscription)
		add(len(r.PaymentsByUser(id)), entity.KindPayment)
		add(len(r.FavoritesByUser(id)), entity.KindFavorite)
		add(len(r.NotificationsByUser(id)), entity.KindNotification)
	case entity.KindShop:
		add(len(r.ShopProductsByShop(id)), entity.KindShopProduct)
		add(favoritesOf(entity.FavoriteShop), entity.KindFavorite)
	case entity.KindProduct:
		add(len(r.ShopProductsByProduct(id)), entity.KindShopProduct)
		add(favoritesOf(entity.FavoriteProduct), entity.KindFavorite)
	}
	if len(blocking) == 0 {
		return nil
	}
	return domain.NewValidation(k.Label(), "id", "tiene registros dependientes en "+strings.Join(blocking, ", "))
}

func records[T entity.Record](items []T) []entity.Record {
	out := make([]entity.Record, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

func found[T entity.Record](v T, ok bool) (entity.Record, bool) {
	if !ok {
		return nil, false
	}
	return v, true
}
