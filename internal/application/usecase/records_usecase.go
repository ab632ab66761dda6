package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Comparador-api/internal/application/dto"
	"github.com/jhoicas/Comparador-api/internal/domain"
	"github.com/jhoicas/Comparador-api/internal/domain/entity"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
)

// RecordsUseCase CRUD genérico por colección para los colaboradores externos.
// Los campos que mantiene el sistema (precio vigente, goodwill, calificaciones) no se pueden escribir aquí.
type RecordsUseCase struct {
	store repository.Store
	now   func() time.Time
	newID func() string
}

// NewRecordsUseCase construye el caso de uso.
func NewRecordsUseCase(store repository.Store) *RecordsUseCase {
	return &RecordsUseCase{store: store, now: time.Now, newID: uuid.NewString}
}

// WithClock reemplaza el reloj (tests).
func (uc *RecordsUseCase) WithClock(now func() time.Time) *RecordsUseCase {
	uc.now = now
	return uc
}

func parseKind(name string) (entity.Kind, error) {
	k, ok := entity.ParseKind(name)
	if !ok {
		return "", domain.NewNotFound("kind", name)
	}
	return k, nil
}

// List lista una colección en orden de inserción con paginación.
func (uc *RecordsUseCase) List(kind string, page dto.PageRequest) (*dto.RecordListResponse, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}
	page.DefaultPage()

	var records []entity.Record
	_ = uc.store.View(func(r repository.Reader) error {
		records = allOf(r, k)
		return nil
	})

	total := len(records)
	from := min(page.Offset, total)
	to := min(from+page.Limit, total)
	items := make([]any, 0, to-from)
	for _, rec := range records[from:to] {
		items = append(items, rec)
	}
	return &dto.RecordListResponse{
		Kind:  string(k),
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Get obtiene un registro por id.
func (uc *RecordsUseCase) Get(kind, id string) (entity.Record, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}
	var (
		rec entity.Record
		ok  bool
	)
	_ = uc.store.View(func(r repository.Reader) error {
		rec, ok = getOf(r, k, id)
		return nil
	})
	if !ok {
		return nil, domain.NewNotFound(k.Label(), id)
	}
	return rec, nil
}

// Save upsert desde JSON. Asigna id y fechas, valida referencias y conserva los campos del sistema.
// Los PriceUpdate solo se crean con MarketplaceUseCase.CreatePriceUpdate.
func (uc *RecordsUseCase) Save(ctx context.Context, kind string, raw []byte) (entity.Record, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}
	switch k {
	case entity.KindUser:
		return save[entity.User](ctx, uc, raw, repository.Writer.MutUsers, nil)
	case entity.KindShop:
		return save[entity.Shop](ctx, uc, raw, repository.Writer.MutShops, keepShopAggregates)
	case entity.KindProduct:
		return save[entity.Product](ctx, uc, raw, repository.Writer.MutProducts, nil)
	case entity.KindShopProduct:
		return save[entity.ShopProduct](ctx, uc, raw, repository.Writer.MutShopProducts, keepCurrentPrice)
	case entity.KindSubscription:
		return save[entity.Subscription](ctx, uc, raw, repository.Writer.MutSubscriptions, nil)
	case entity.KindPayment:
		return save[entity.Payment](ctx, uc, raw, repository.Writer.MutPayments, nil)
	case entity.KindFavorite:
		return save[entity.Favorite](ctx, uc, raw, repository.Writer.MutFavorites, nil)
	case entity.KindNotification:
		return save[entity.Notification](ctx, uc, raw, repository.Writer.MutNotifications, nil)
	}
	return nil, domain.NewValidation(k.Label(), "", "solo se crea registrando un nuevo precio")
}

// Delete elimina por id; false si no existía. No hay borrado en cascada: un usuario, tienda o
// producto con registros dependientes devuelve ValidationError.
func (uc *RecordsUseCase) Delete(ctx context.Context, kind, id string) (bool, error) {
	k, err := parseKind(kind)
	if err != nil {
		return false, err
	}
	var removed bool
	err = uc.store.Update(ctx, func(w repository.Writer) error {
		var err error
		removed, err = removeOf(w, k, id)
		return err
	})
	return removed, err
}

// save decodifica raw en T y lo guarda en una transacción. keep recibe el registro previo (nil si es nuevo).
func save[T entity.Record, P interface {
	*T
	entity.Stampable
}](
	ctx context.Context,
	uc *RecordsUseCase,
	raw []byte,
	table func(repository.Writer) repository.MutableTable[T],
	keep func(in P, old *T),
) (entity.Record, error) {
	var v T
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return nil, domain.NewValidation(v.RecordKind().Label(), "", "JSON inválido: "+err.Error())
	}
	p := P(&v)
	now := uc.now().UTC()

	err := uc.store.Update(ctx, func(w repository.Writer) error {
		t := table(w)
		if v.RecordID() == "" {
			p.SetID(uc.newID())
		}
		var old *T
		created := p.Created()
		if prev, ok := t.Get(v.RecordID()); ok {
			old = &prev
			created = P(&prev).Created()
		}
		if created.IsZero() {
			created = now
		}
		p.Stamp(created, now)
		if keep != nil {
			keep(p, old)
		}
		if err := checkRefs(w, v); err != nil {
			return err
		}
		return t.Put(v)
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func keepShopAggregates(in *entity.Shop, old *entity.Shop) {
	if old == nil {
		in.GoodwillScore, in.AverageRating, in.TotalRatings = decimalZero, decimalZero, 0
		return
	}
	in.GoodwillScore, in.AverageRating, in.TotalRatings = old.GoodwillScore, old.AverageRating, old.TotalRatings
}

func keepCurrentPrice(in *entity.ShopProduct, old *entity.ShopProduct) {
	if old == nil {
		in.CurrentPrice, in.LastPriceUpdateAt = nil, nil
		return
	}
	in.CurrentPrice, in.LastPriceUpdateAt = old.CurrentPrice, old.LastPriceUpdateAt
}

// checkRefs reglas referenciales básicas al guardar: el referente debe existir.
func checkRefs(r repository.Reader, rec entity.Record) error {
	need := func(ok bool, kind entity.Kind, id string) error {
		if !ok {
			return domain.NewNotFound(kind.Label(), id)
		}
		return nil
	}
	user := func(id string) error {
		_, ok := r.Users().Get(id)
		return need(ok, entity.KindUser, id)
	}
	switch v := rec.(type) {
	case entity.Shop:
		return user(v.OwnerID)
	case entity.ShopProduct:
		if _, ok := r.Shops().Get(v.ShopID); !ok {
			return domain.NewNotFound(entity.KindShop.Label(), v.ShopID)
		}
		_, ok := r.Products().Get(v.ProductID)
		return need(ok, entity.KindProduct, v.ProductID)
	case entity.Subscription:
		return user(v.UserID)
	case entity.Payment:
		return user(v.UserID)
	case entity.Notification:
		return user(v.UserID)
	case entity.Favorite:
		if err := user(v.UserID); err != nil {
			return err
		}
		return favoriteItemExists(r, v.Type, v.ItemID)
	}
	return nil
}

func favoriteItemExists(r repository.Reader, favType, itemID string) error {
	switch favType {
	case entity.FavoriteProduct:
		if _, ok := r.Products().Get(itemID); !ok {
			return domain.NewNotFound(entity.KindProduct.Label(), itemID)
		}
	case entity.FavoriteShop:
		if _, ok := r.Shops().Get(itemID); !ok {
			return domain.NewNotFound(entity.KindShop.Label(), itemID)
		}
	default:
		return domain.NewValidation(entity.KindFavorite.Label(), "type", "debe ser uno de: product shop")
	}
	return nil
}
