package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comparador-api/internal/application/dto"
	"github.com/jhoicas/Comparador-api/internal/domain"
	"github.com/jhoicas/Comparador-api/internal/domain/entity"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
	"github.com/jhoicas/Comparador-api/pkg/logger"
)

const defaultSubscriptionDays = 30

var maxGoodwill = decimal.NewFromInt(100)

// MarketplaceUseCase operaciones de los colaboradores que mutan varias colecciones a la vez.
// Cada operación es una única transacción del Entity Store.
type MarketplaceUseCase struct {
	store repository.Store
	log   *logger.Logger
	now   func() time.Time
	newID func() string
}

// NewMarketplaceUseCase construye el caso de uso.
func NewMarketplaceUseCase(store repository.Store, log *logger.Logger) *MarketplaceUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MarketplaceUseCase{store: store, log: log, now: time.Now, newID: uuid.NewString}
}

// WithClock reemplaza el reloj (tests).
func (uc *MarketplaceUseCase) WithClock(now func() time.Time) *MarketplaceUseCase {
	uc.now = now
	return uc
}

// CreatePriceUpdate registra un precio y actualiza current_price y last_price_update_at del ShopProduct.
// Si el precio baja, notifica a los usuarios que tienen el producto en favoritos.
// El lock de escritura del almacén serializa las actualizaciones de un mismo ShopProduct.
func (uc *MarketplaceUseCase) CreatePriceUpdate(ctx context.Context, actor entity.Actor, in dto.CreatePriceUpdateRequest) (*entity.PriceUpdate, error) {
	if !in.Price.IsPositive() {
		return nil, domain.NewValidation(entity.KindPriceUpdate.Label(), "price", "debe ser mayor que 0")
	}
	status := in.PaymentStatus
	if status == "" {
		status = entity.PaymentPending
	}
	amount := decimal.Zero
	if in.PaymentAmount != nil {
		amount = *in.PaymentAmount
	}
	now := uc.now().UTC()

	var pu entity.PriceUpdate
	err := uc.store.Update(ctx, func(w repository.Writer) error {
		sp, ok := w.ShopProducts().Get(in.ShopProductID)
		if !ok {
			return domain.NewNotFound(entity.KindShopProduct.Label(), in.ShopProductID)
		}
		shop, ok := w.Shops().Get(sp.ShopID)
		if !ok {
			return domain.NewIntegrity(entity.KindShopProduct.Label(), sp.ID, entity.KindShop.Label(), sp.ShopID)
		}
		if err := authorizeListing(actor, shop); err != nil {
			return err
		}
		product, ok := w.Products().Get(sp.ProductID)
		if !ok {
			return domain.NewIntegrity(entity.KindShopProduct.Label(), sp.ID, entity.KindProduct.Label(), sp.ProductID)
		}

		pu = entity.PriceUpdate{
			ID:            uc.newID(),
			ShopProductID: sp.ID,
			Price:         in.Price,
			UpdatedBy:     actor,
			PaymentStatus: status,
			PaymentAmount: amount,
			CreatedAt:     now,
		}
		if err := w.MutPriceUpdates().Put(pu); err != nil {
			return err
		}

		previous := sp.CurrentPrice
		price := in.Price
		sp.CurrentPrice = &price
		sp.LastPriceUpdateAt = &now
		sp.UpdatedAt = now
		if err := w.MutShopProducts().Put(sp); err != nil {
			return err
		}

		if amount.IsPositive() && status != entity.PaymentWaived {
			if err := w.MutPayments().Put(entity.Payment{
				ID:        uc.newID(),
				UserID:    actor.ID,
				Type:      entity.PaymentTypePriceUpdate,
				Amount:    amount,
				Status:    paymentStatusFor(status),
				Reference: pu.ID,
				CreatedAt: now,
			}); err != nil {
				return err
			}
		}

		if previous != nil && price.LessThan(*previous) {
			return uc.notifyPriceDrop(w, product, shop, sp, *previous, price, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pu, nil
}

// authorizeListing un shop_owner solo actualiza su propia tienda; staff y admin cualquiera.
func authorizeListing(actor entity.Actor, shop entity.Shop) error {
	switch actor.Role {
	case entity.RoleAdmin, entity.RoleStaff:
		return nil
	case entity.RoleShopOwner:
		if shop.OwnerID == actor.ID {
			return nil
		}
	}
	return fmt.Errorf("%w: %s no puede actualizar precios de la tienda %s", domain.ErrForbidden, actor.ID, shop.ID)
}

func (uc *MarketplaceUseCase) notifyPriceDrop(w repository.Writer, p entity.Product, shop entity.Shop, sp entity.ShopProduct, before, after decimal.Decimal, now time.Time) error {
	notified := 0
	for _, f := range w.Favorites().All() {
		if f.Type != entity.FavoriteProduct || f.ItemID != p.ID {
			continue
		}
		n := entity.Notification{
			ID:        uc.newID(),
			UserID:    f.UserID,
			Type:      entity.NotificationPriceDrop,
			Title:     "Bajó el precio de " + p.Name,
			Message:   fmt.Sprintf("%s ahora a %s en %s (antes %s)", p.Name, after.StringFixed(2), shop.Name, before.StringFixed(2)),
			ActionURL: "/products/" + p.ID,
			Metadata: map[string]any{
				"product_id":      p.ID,
				"shop_id":         shop.ID,
				"shop_product_id": sp.ID,
				"old_price":       before.StringFixed(2),
				"new_price":       after.StringFixed(2),
			},
			CreatedAt: now,
		}
		if err := w.MutNotifications().Put(n); err != nil {
			return err
		}
		notified++
	}
	if notified > 0 {
		uc.log.Debug().Str("product_id", p.ID).Int("users", notified).Msg("notificación de bajada de precio")
	}
	return nil
}

func paymentStatusFor(priceUpdateStatus string) string {
	switch priceUpdateStatus {
	case entity.PaymentPaid:
		return entity.PaymentStatusCompleted
	case entity.PaymentFailed:
		return entity.PaymentStatusFailed
	}
	return entity.PaymentStatusPending
}

// SetPaymentStatus única mutación permitida sobre un PriceUpdate: pending→paid|failed|waived, failed→paid.
func (uc *MarketplaceUseCase) SetPaymentStatus(ctx context.Context, priceUpdateID, status string) (*entity.PriceUpdate, error) {
	var pu entity.PriceUpdate
	err := uc.store.Update(ctx, func(w repository.Writer) error {
		var ok bool
		pu, ok = w.PriceUpdates().Get(priceUpdateID)
		if !ok {
			return domain.NewNotFound(entity.KindPriceUpdate.Label(), priceUpdateID)
		}
		if !entity.CanTransition(pu.PaymentStatus, status) {
			return domain.NewValidation(entity.KindPriceUpdate.Label(), "payment_status",
				fmt.Sprintf("transición %s -> %s no permitida", pu.PaymentStatus, status))
		}
		pu.PaymentStatus = status
		if err := w.MutPriceUpdates().Put(pu); err != nil {
			return err
		}
		for _, pay := range w.PaymentsByUser(pu.UpdatedBy.ID) {
			if pay.Type != entity.PaymentTypePriceUpdate || pay.Reference != pu.ID {
				continue
			}
			if status == entity.PaymentWaived {
				pay.Status = entity.PaymentStatusRefunded
			} else {
				pay.Status = paymentStatusFor(status)
			}
			if err := w.MutPayments().Put(pay); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pu, nil
}

// ToggleFavorite alterna el favorito y devuelve el nuevo estado. Nunca duplica la fila.
func (uc *MarketplaceUseCase) ToggleFavorite(ctx context.Context, in dto.ToggleFavoriteRequest) (bool, error) {
	var favorited bool
	err := uc.store.Update(ctx, func(w repository.Writer) error {
		if _, ok := w.Users().Get(in.UserID); !ok {
			return domain.NewNotFound(entity.KindUser.Label(), in.UserID)
		}
		if err := favoriteItemExists(w, in.Type, in.ItemID); err != nil {
			return err
		}
		if f, ok := w.Favorite(in.UserID, in.Type, in.ItemID); ok {
			w.MutFavorites().Remove(f.ID)
			favorited = false
			return nil
		}
		favorited = true
		return w.MutFavorites().Put(entity.Favorite{
			ID:        uc.newID(),
			UserID:    in.UserID,
			Type:      in.Type,
			ItemID:    in.ItemID,
			CreatedAt: uc.now().UTC(),
		})
	})
	return favorited, err
}

// GetUserFavorites favoritos del usuario en orden de alta.
func (uc *MarketplaceUseCase) GetUserFavorites(userID string) ([]entity.Favorite, error) {
	var out []entity.Favorite
	err := uc.store.View(func(r repository.Reader) error {
		out = r.FavoritesByUser(userID)
		return nil
	})
	return out, err
}

// GetShopProductsForOwner catálogo de la tienda del dueño con los datos de cada producto.
// Vacío si el dueño no tiene tienda.
func (uc *MarketplaceUseCase) GetShopProductsForOwner(ownerID string) ([]dto.OwnerShopProduct, error) {
	out := []dto.OwnerShopProduct{}
	err := uc.store.View(func(r repository.Reader) error {
		shop, ok := r.ShopByOwner(ownerID)
		if !ok {
			return nil
		}
		for _, sp := range r.ShopProductsByShop(shop.ID) {
			p, ok := r.Products().Get(sp.ProductID)
			if !ok {
				return domain.NewIntegrity(entity.KindShopProduct.Label(), sp.ID, entity.KindProduct.Label(), sp.ProductID)
			}
			out = append(out, dto.OwnerShopProduct{
				ShopProductID:     sp.ID,
				ShopID:            shop.ID,
				ProductID:         p.ID,
				ProductName:       p.Name,
				Category:          p.Category,
				Unit:              p.Unit,
				IsAvailable:       sp.IsAvailable,
				CurrentPrice:      sp.CurrentPrice,
				LastPriceUpdateAt: sp.LastPriceUpdateAt,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RateShop agrega una calificación 1..5 al promedio acumulado de la tienda.
func (uc *MarketplaceUseCase) RateShop(ctx context.Context, shopID string, rating int) (*entity.Shop, error) {
	if rating < 1 || rating > 5 {
		return nil, domain.NewValidation(entity.KindShop.Label(), "rating", "debe estar entre 1 y 5")
	}
	return uc.updateShop(ctx, shopID, func(s *entity.Shop) {
		n := decimal.NewFromInt(int64(s.TotalRatings))
		total := s.AverageRating.Mul(n).Add(decimal.NewFromInt(int64(rating)))
		s.TotalRatings++
		s.AverageRating = total.Div(decimal.NewFromInt(int64(s.TotalRatings))).Round(2)
	})
}

// AdjustGoodwill suma delta al goodwill limitado a 0..100.
func (uc *MarketplaceUseCase) AdjustGoodwill(ctx context.Context, shopID string, delta decimal.Decimal) (*entity.Shop, error) {
	return uc.updateShop(ctx, shopID, func(s *entity.Shop) {
		g := s.GoodwillScore.Add(delta)
		switch {
		case g.IsNegative():
			g = decimal.Zero
		case g.GreaterThan(maxGoodwill):
			g = maxGoodwill
		}
		s.GoodwillScore = g
	})
}

func (uc *MarketplaceUseCase) updateShop(ctx context.Context, shopID string, apply func(s *entity.Shop)) (*entity.Shop, error) {
	var shop entity.Shop
	err := uc.store.Update(ctx, func(w repository.Writer) error {
		var ok bool
		shop, ok = w.Shops().Get(shopID)
		if !ok {
			return domain.NewNotFound(entity.KindShop.Label(), shopID)
		}
		apply(&shop)
		shop.UpdatedAt = uc.now().UTC()
		return w.MutShops().Put(shop)
	})
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

// Subscribe vence la suscripción activa (si hay), crea la nueva, registra el pago y marca al usuario premium.
func (uc *MarketplaceUseCase) Subscribe(ctx context.Context, in dto.SubscribeRequest) (*entity.Subscription, error) {
	if in.Amount.IsNegative() {
		return nil, domain.NewValidation(entity.KindSubscription.Label(), "amount", "no puede ser negativo")
	}
	days := in.DurationDays
	if days == 0 {
		days = defaultSubscriptionDays
	}
	if days < 0 {
		return nil, domain.NewValidation(entity.KindSubscription.Label(), "duration_days", "debe ser mayor que 0")
	}
	now := uc.now().UTC()

	var sub entity.Subscription
	err := uc.store.Update(ctx, func(w repository.Writer) error {
		user, ok := w.Users().Get(in.UserID)
		if !ok {
			return domain.NewNotFound(entity.KindUser.Label(), in.UserID)
		}
		if current, ok := w.ActiveSubscription(user.ID); ok {
			current.Status = entity.SubscriptionExpired
			current.UpdatedAt = now
			if err := w.MutSubscriptions().Put(current); err != nil {
				return err
			}
		}
		sub = entity.Subscription{
			ID:        uc.newID(),
			UserID:    user.ID,
			Status:    entity.SubscriptionActive,
			Amount:    in.Amount,
			StartedAt: now,
			ExpiresAt: now.AddDate(0, 0, days),
			AutoRenew: in.AutoRenew,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := w.MutSubscriptions().Put(sub); err != nil {
			return err
		}
		if err := w.MutPayments().Put(entity.Payment{
			ID:        uc.newID(),
			UserID:    user.ID,
			Type:      entity.PaymentTypeSubscription,
			Amount:    in.Amount,
			Status:    entity.PaymentStatusCompleted,
			Reference: sub.ID,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		user.IsPremium = true
		user.UpdatedAt = now
		if err := w.MutUsers().Put(user); err != nil {
			return err
		}
		return w.MutNotifications().Put(entity.Notification{
			ID:        uc.newID(),
			UserID:    user.ID,
			Type:      entity.NotificationSubscription,
			Title:     "Suscripción premium activa",
			Message:   "Vence el " + sub.ExpiresAt.Format("2006-01-02"),
			ActionURL: "/subscription",
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// ExpireSubscriptions vence las suscripciones activas cuyo expires_at ya pasó y quita el premium.
func (uc *MarketplaceUseCase) ExpireSubscriptions(ctx context.Context) (int, error) {
	now := uc.now().UTC()
	expired := 0
	err := uc.store.Update(ctx, func(w repository.Writer) error {
		for _, s := range w.Subscriptions().All() {
			if !s.Active() || s.ExpiresAt.After(now) {
				continue
			}
			s.Status = entity.SubscriptionExpired
			s.UpdatedAt = now
			if err := w.MutSubscriptions().Put(s); err != nil {
				return err
			}
			expired++
			if u, ok := w.Users().Get(s.UserID); ok && u.IsPremium {
				u.IsPremium = false
				u.UpdatedAt = now
				if err := w.MutUsers().Put(u); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		uc.log.Info().Int("expired", expired).Msg("suscripciones vencidas")
	}
	return expired, nil
}

// MarkNotificationRead marca como leída una notificación del usuario.
func (uc *MarketplaceUseCase) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	return uc.store.Update(ctx, func(w repository.Writer) error {
		n, ok := w.Notifications().Get(notificationID)
		if !ok {
			return domain.NewNotFound(entity.KindNotification.Label(), notificationID)
		}
		if n.UserID != userID {
			return domain.ErrForbidden
		}
		if n.IsRead {
			return nil
		}
		n.IsRead = true
		return w.MutNotifications().Put(n)
	})
}

// GetUserNotifications notificaciones del usuario, la más reciente primero.
func (uc *MarketplaceUseCase) GetUserNotifications(userID string, unreadOnly bool) ([]entity.Notification, error) {
	var out []entity.Notification
	err := uc.store.View(func(r repository.Reader) error {
		all := r.NotificationsByUser(userID)
		out = make([]entity.Notification, 0, len(all))
		for _, n := range all {
			if unreadOnly && n.IsRead {
				continue
			}
			out = append(out, n)
		}
		return nil
	})
	slices.Reverse(out)
	return out, err
}
