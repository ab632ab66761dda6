package migration

import (
	"github.com/jhoicas/Comparador-api/internal/domain"
	"github.com/jhoicas/Comparador-api/internal/domain/entity"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
)

// naturalKey llave secundaria usada solo durante el merge; "" si el tipo no tiene.
type naturalKey[T entity.Record] func(v T) string

func userKey(u entity.User) string       { return u.PhoneNumber }
func productKey(p entity.Product) string { return entity.ProductNameKey(p.Name) }
func shopKey(s entity.Shop) string       { return s.OwnerID }
func listingKey(sp entity.ShopProduct) string {
	return sp.ShopID + "\x00" + sp.ProductID
}
func favoriteKey(f entity.Favorite) string {
	return f.UserID + "\x00" + f.Type + "\x00" + f.ItemID
}

// remaps id entrante -> id existente por colección, para reescribir referencias de las siguientes.
type remaps map[entity.Kind]map[string]string

func (r remaps) id(k entity.Kind, id string) string {
	if to, ok := r[k][id]; ok {
		return to
	}
	return id
}

// apply aplica la colección entrante sobre la tabla en un solo Replace: o entra completa o no entra.
// En merge, un registro que coincide por id o por llave natural se reemplaza en su posición
// conservando el id existente; si no, se agrega al final.
func apply[T entity.Record, P interface {
	*T
	entity.Stampable
}](t repository.MutableTable[T], incoming []T, merge bool, key naturalKey[T]) (map[string]string, error) {
	if !merge {
		return nil, t.Replace(incoming)
	}

	out := t.All()
	byID := make(map[string]int, len(out))
	byKey := make(map[string]int, len(out))
	keyAt := make(map[int]string, len(out))
	index := func(i int) {
		byID[out[i].RecordID()] = i
		if key == nil {
			return
		}
		if old, ok := keyAt[i]; ok {
			delete(byKey, old)
		}
		if k := key(out[i]); k != "" {
			byKey[k] = i
			keyAt[i] = k
		}
	}
	for i := range out {
		index(i)
	}

	moved := make(map[string]string)
	for _, v := range incoming {
		i, ok := byID[v.RecordID()]
		if !ok && key != nil {
			if k := key(v); k != "" {
				i, ok = byKey[k]
			}
		}
		if !ok {
			out = append(out, v)
			index(len(out) - 1)
			continue
		}
		if existing := out[i].RecordID(); existing != v.RecordID() {
			moved[v.RecordID()] = existing
			P(&v).SetID(existing)
		}
		out[i] = v
		index(i)
	}
	if err := t.Replace(out); err != nil {
		return nil, err
	}
	return moved, nil
}

// rewrite reescribe en d las referencias a registros que el merge emparejó con otro id.
func (r remaps) rewrite(d *entity.Dataset, k entity.Kind) {
	user := func(id string) string { return r.id(entity.KindUser, id) }
	switch k {
	case entity.KindShop:
		for i := range d.Shops {
			d.Shops[i].OwnerID = user(d.Shops[i].OwnerID)
		}
	case entity.KindShopProduct:
		for i := range d.ShopProducts {
			sp := &d.ShopProducts[i]
			sp.ShopID = r.id(entity.KindShop, sp.ShopID)
			sp.ProductID = r.id(entity.KindProduct, sp.ProductID)
		}
	case entity.KindPriceUpdate:
		for i := range d.PriceUpdates {
			pu := &d.PriceUpdates[i]
			pu.ShopProductID = r.id(entity.KindShopProduct, pu.ShopProductID)
			pu.UpdatedBy.ID = user(pu.UpdatedBy.ID)
		}
	case entity.KindSubscription:
		for i := range d.Subscriptions {
			d.Subscriptions[i].UserID = user(d.Subscriptions[i].UserID)
		}
	case entity.KindPayment:
		for i := range d.Payments {
			d.Payments[i].UserID = user(d.Payments[i].UserID)
		}
	case entity.KindFavorite:
		for i := range d.Favorites {
			f := &d.Favorites[i]
			f.UserID = user(f.UserID)
			switch f.Type {
			case entity.FavoriteProduct:
				f.ItemID = r.id(entity.KindProduct, f.ItemID)
			case entity.FavoriteShop:
				f.ItemID = r.id(entity.KindShop, f.ItemID)
			}
		}
	case entity.KindNotification:
		for i := range d.Notifications {
			d.Notifications[i].UserID = user(d.Notifications[i].UserID)
		}
	}
}

// checkRefs exige que cada referencia entrante (ya reescrita) exista en el almacén.
// Se llama antes de aplicar la colección: si el padre no se importó, la colección falla completa.
// El historial de precios no se valida contra ShopProduct porque sobrevive a su borrado.
func checkRefs(r repository.Reader, d *entity.Dataset, k entity.Kind) error {
	missing := func(field, id string) error {
		return domain.NewValidation(k.Label(), field, "referencia inexistente: "+id)
	}
	user := func(id string) error {
		if _, ok := r.Users().Get(id); !ok {
			return missing("user_id", id)
		}
		return nil
	}
	switch k {
	case entity.KindShop:
		for _, s := range d.Shops {
			if _, ok := r.Users().Get(s.OwnerID); !ok {
				return missing("owner_id", s.OwnerID)
			}
		}
	case entity.KindShopProduct:
		for _, sp := range d.ShopProducts {
			if _, ok := r.Shops().Get(sp.ShopID); !ok {
				return missing("shop_id", sp.ShopID)
			}
			if _, ok := r.Products().Get(sp.ProductID); !ok {
				return missing("product_id", sp.ProductID)
			}
		}
	case entity.KindSubscription:
		for _, s := range d.Subscriptions {
			if err := user(s.UserID); err != nil {
				return err
			}
		}
	case entity.KindPayment:
		for _, p := range d.Payments {
			if err := user(p.UserID); err != nil {
				return err
			}
		}
	case entity.KindFavorite:
		for _, f := range d.Favorites {
			if err := user(f.UserID); err != nil {
				return err
			}
			var ok bool
			switch f.Type {
			case entity.FavoriteProduct:
				_, ok = r.Products().Get(f.ItemID)
			case entity.FavoriteShop:
				_, ok = r.Shops().Get(f.ItemID)
			}
			if !ok {
				return missing("item_id", f.ItemID)
			}
		}
	case entity.KindNotification:
		for _, n := range d.Notifications {
			if err := user(n.UserID); err != nil {
				return err
			}
		}
	}
	return nil
}
