// Package migration implementa el servicio de exportación/importación del Entity Store:
// documento portable camelCase, forma snake_case para el backend e importación con replace o merge.
package migration

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jhoicas/Comparador-api/internal/application/dto"
	"github.com/jhoicas/Comparador-api/internal/domain/entity"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
	"github.com/jhoicas/Comparador-api/pkg/logger"
)

// BackendDocument forma de migración al backend: llaves de data con nombres de tabla snake_case.
type BackendDocument struct {
	Version    string                     `json:"version"`
	ExportedAt time.Time                  `json:"exported_at"`
	Counts     map[string]int             `json:"counts"`
	Data       map[string][]entity.Record `json:"data"`
}

// Service exportación e importación completas.
type Service struct {
	store repository.Store
	log   *logger.Logger
	now   func() time.Time
}

// NewService construye el servicio.
func NewService(store repository.Store, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{store: store, log: log, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ExportAll documento con versión, fecha, conteos y todas las colecciones.
func (s *Service) ExportAll() *entity.Document {
	return entity.NewDocument(s.store.Snapshot(), s.now())
}

// ExportBackend mismo contenido que ExportAll con llaves snake_case.
func (s *Service) ExportBackend() *BackendDocument {
	d := s.store.Snapshot()
	doc := &BackendDocument{
		Version:    entity.DocumentVersion,
		ExportedAt: s.now().UTC(),
		Counts:     make(map[string]int, len(entity.Kinds)),
		Data:       make(map[string][]entity.Record, len(entity.Kinds)),
	}
	for _, k := range entity.Kinds {
		recs := d.Records(k)
		doc.Counts[k.Table()] = len(recs)
		doc.Data[k.Table()] = recs
	}
	return doc
}

// ImportAll valida la estructura completa antes de escribir; luego aplica cada colección presente
// en orden de dependencia, todo o nada por colección, dentro de una sola transacción del almacén.
// Una colección con referencias a registros inexistentes (por ejemplo porque su padre falló) no se aplica.
// Las colecciones ausentes del documento no se tocan salvo con ClearBeforeImport.
func (s *Service) ImportAll(ctx context.Context, raw []byte, opts dto.ImportOptions) (*dto.ImportResult, error) {
	doc, err := parseDocument(raw)
	if err != nil {
		s.log.Error().Err(err).Msg("importación rechazada")
		return nil, err
	}

	res := &dto.ImportResult{Kinds: make(map[string]dto.KindResult, len(entity.Kinds))}
	err = s.store.Update(ctx, func(w repository.Writer) error {
		if opts.ClearBeforeImport {
			clearAll(w)
		}
		incoming := &entity.Dataset{}
		failed := make(map[entity.Kind]error)
		for k, items := range doc.kinds {
			if err := decodeInto(incoming, k, items); err != nil {
				failed[k] = err
			}
		}

		moved := remaps{}
		for _, k := range entity.Kinds {
			items, present := doc.kinds[k]
			if !present {
				res.Kinds[string(k)] = dto.KindResult{Count: countOf(w, k)}
				continue
			}
			err := failed[k]
			if err == nil {
				moved.rewrite(incoming, k)
				if err = checkRefs(w, incoming, k); err == nil {
					var m map[string]string
					m, err = applyKind(w, incoming, k, opts.Merge)
					if len(m) > 0 {
						moved[k] = m
					}
				}
			}
			kr := dto.KindResult{Count: countOf(w, k)}
			if err != nil {
				kr.Error = err.Error()
				s.log.Warn().Err(err).Str("kind", string(k)).Msg("colección no importada")
			} else {
				kr.Imported = len(items)
				s.log.Info().Str("kind", string(k)).Int("imported", kr.Imported).Int("count", kr.Count).Msg("colección importada")
			}
			res.Kinds[string(k)] = kr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func decodeInto(d *entity.Dataset, k entity.Kind, items []json.RawMessage) error {
	var err error
	switch k {
	case entity.KindUser:
		d.Users, err = decodeAll[entity.User](k, items)
	case entity.KindShop:
		d.Shops, err = decodeAll[entity.Shop](k, items)
	case entity.KindProduct:
		d.Products, err = decodeAll[entity.Product](k, items)
	case entity.KindShopProduct:
		d.ShopProducts, err = decodeAll[entity.ShopProduct](k, items)
	case entity.KindPriceUpdate:
		d.PriceUpdates, err = decodeAll[entity.PriceUpdate](k, items)
	case entity.KindSubscription:
		d.Subscriptions, err = decodeAll[entity.Subscription](k, items)
	case entity.KindPayment:
		d.Payments, err = decodeAll[entity.Payment](k, items)
	case entity.KindFavorite:
		d.Favorites, err = decodeAll[entity.Favorite](k, items)
	case entity.KindNotification:
		d.Notifications, err = decodeAll[entity.Notification](k, items)
	}
	return err
}

func applyKind(w repository.Writer, d *entity.Dataset, k entity.Kind, merge bool) (map[string]string, error) {
	switch k {
	case entity.KindUser:
		return apply[entity.User](w.MutUsers(), d.Users, merge, userKey)
	case entity.KindShop:
		return apply[entity.Shop](w.MutShops(), d.Shops, merge, shopKey)
	case entity.KindProduct:
		return apply[entity.Product](w.MutProducts(), d.Products, merge, productKey)
	case entity.KindShopProduct:
		return apply[entity.ShopProduct](w.MutShopProducts(), d.ShopProducts, merge, listingKey)
	case entity.KindPriceUpdate:
		return apply[entity.PriceUpdate](w.MutPriceUpdates(), d.PriceUpdates, merge, nil)
	case entity.KindSubscription:
		return apply[entity.Subscription](w.MutSubscriptions(), d.Subscriptions, merge, nil)
	case entity.KindPayment:
		return apply[entity.Payment](w.MutPayments(), d.Payments, merge, nil)
	case entity.KindFavorite:
		return apply[entity.Favorite](w.MutFavorites(), d.Favorites, merge, favoriteKey)
	case entity.KindNotification:
		return apply[entity.Notification](w.MutNotifications(), d.Notifications, merge, nil)
	}
	return nil, nil
}

func clearAll(w repository.Writer) {
	w.MutUsers().Clear()
	w.MutShops().Clear()
	w.MutProducts().Clear()
	w.MutShopProducts().Clear()
	w.MutPriceUpdates().Clear()
	w.MutSubscriptions().Clear()
	w.MutPayments().Clear()
	w.MutFavorites().Clear()
	w.MutNotifications().Clear()
}

func countOf(r repository.Reader, k entity.Kind) int {
	switch k {
	case entity.KindUser:
		return r.Users().Count()
	case entity.KindShop:
		return r.Shops().Count()
	case entity.KindProduct:
		return r.Products().Count()
	case entity.KindShopProduct:
		return r.ShopProducts().Count()
	case entity.KindPriceUpdate:
		return r.PriceUpdates().Count()
	case entity.KindSubscription:
		return r.Subscriptions().Count()
	case entity.KindPayment:
		return r.Payments().Count()
	case entity.KindFavorite:
		return r.Favorites().Count()
	case entity.KindNotification:
		return r.Notifications().Count()
	}
	return 0
}
