package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comparador-api/internal/domain"
	"github.com/jhoicas/Comparador-api/internal/domain/entity"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
	"github.com/jhoicas/Comparador-api/internal/infrastructure/memory"
	"github.com/jhoicas/Comparador-api/pkg/logger"
)

var t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func user(id, phone string) entity.User {
	return entity.User{ID: id, PhoneNumber: phone, Name: "U " + id, Role: entity.RoleEndUser, IsActive: true, CreatedAt: t0}
}

func listing(id, shopID, productID string) entity.ShopProduct {
	return entity.ShopProduct{ID: id, ShopID: shopID, ProductID: productID, IsAvailable: true, CreatedAt: t0}
}

func putUsers(t *testing.T, s *memory.Store, users ...entity.User) {
	t.Helper()
	err := s.Update(context.Background(), func(w repository.Writer) error {
		for _, u := range users {
			if err := w.MutUsers().Put(u); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestStore_AllVacioSinInicializar(t *testing.T) {
	s := memory.New()
	_ = s.View(func(r repository.Reader) error {
		assert.NotNil(t, r.Users().All())
		assert.Empty(t, r.Users().All())
		_, ok := r.Shops().Get("nope")
		assert.False(t, ok)
		return nil
	})
}

func TestStore_PreservaOrdenDeInsercionYUpsert(t *testing.T) {
	s := memory.New()
	putUsers(t, s, user("u3", "300"), user("u1", "100"), user("u2", "200"))

	renamed := user("u1", "100")
	renamed.Name = "Renombrado"
	putUsers(t, s, renamed)

	_ = s.View(func(r repository.Reader) error {
		all := r.Users().All()
		require.Len(t, all, 3)
		assert.Equal(t, []string{"u3", "u1", "u2"}, []string{all[0].ID, all[1].ID, all[2].ID})
		assert.Equal(t, "Renombrado", all[1].Name, "el upsert reemplaza en su posición")
		return nil
	})
}

func TestStore_DeleteNoOpSiNoExiste(t *testing.T) {
	s := memory.New()
	putUsers(t, s, user("u1", "100"), user("u2", "200"))

	err := s.Update(context.Background(), func(w repository.Writer) error {
		assert.False(t, w.MutUsers().Remove("zzz"))
		assert.True(t, w.MutUsers().Remove("u1"))
		return nil
	})
	require.NoError(t, err)

	_ = s.View(func(r repository.Reader) error {
		all := r.Users().All()
		require.Len(t, all, 1)
		u, ok := r.Users().Get("u2")
		assert.True(t, ok)
		assert.Equal(t, "u2", u.ID)
		return nil
	})
}

func TestStore_ValidationErrorNombraElCampo(t *testing.T) {
	s := memory.New()
	bad := user("u1", "")

	err := s.Update(context.Background(), func(w repository.Writer) error {
		return w.MutUsers().Put(bad)
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "phone_number", verr.Field)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStore_ValidationErrorCampoAnidado(t *testing.T) {
	s := memory.New()
	pu := entity.PriceUpdate{
		ID: "pu1", ShopProductID: "sp1", Price: decimal.NewFromInt(10),
		PaymentStatus: entity.PaymentPending, CreatedAt: t0,
		UpdatedBy: entity.Actor{ID: "u1"},
	}
	err := s.Update(context.Background(), func(w repository.Writer) error {
		return w.MutPriceUpdates().Put(pu)
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "updated_by.role", verr.Field)
}

func TestStore_PrecioNoPositivoEsInvalido(t *testing.T) {
	s := memory.New()
	pu := entity.PriceUpdate{
		ID: "pu1", ShopProductID: "sp1", Price: decimal.Zero,
		PaymentStatus: entity.PaymentPending, CreatedAt: t0,
		UpdatedBy: entity.Actor{ID: "u1", Role: entity.RoleShopOwner},
	}
	err := s.Update(context.Background(), func(w repository.Writer) error {
		return w.MutPriceUpdates().Put(pu)
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)
}

func TestStore_TelefonoUnico(t *testing.T) {
	s := memory.New()
	putUsers(t, s, user("u1", "555"))

	err := s.Update(context.Background(), func(w repository.Writer) error {
		return w.MutUsers().Put(user("u2", "555"))
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "phone_number", verr.Field)

	// El mismo usuario puede volver a guardarse con su propio teléfono.
	putUsers(t, s, user("u1", "555"))
}

func TestStore_UnaPublicacionPorPar(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	require.NoError(t, s.Update(ctx, func(w repository.Writer) error {
		return w.MutShopProducts().Put(listing("sp1", "s1", "p1"))
	}))

	err := s.Update(ctx, func(w repository.Writer) error {
		return w.MutShopProducts().Put(listing("sp2", "s1", "p1"))
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	_ = s.View(func(r repository.Reader) error {
		sp, ok := r.ShopProductByPair("s1", "p1")
		require.True(t, ok)
		assert.Equal(t, "sp1", sp.ID)
		_, ok = r.ShopProductByPair("s1", "p2")
		assert.False(t, ok)
		return nil
	})
}

func TestStore_UnaSuscripcionActivaPorUsuario(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	sub := func(id, status string) entity.Subscription {
		return entity.Subscription{ID: id, UserID: "u1", Status: status, Amount: decimal.NewFromInt(99),
			StartedAt: t0, ExpiresAt: t0.AddDate(0, 1, 0), CreatedAt: t0}
	}
	require.NoError(t, s.Update(ctx, func(w repository.Writer) error {
		if err := w.MutSubscriptions().Put(sub("s1", entity.SubscriptionExpired)); err != nil {
			return err
		}
		return w.MutSubscriptions().Put(sub("s2", entity.SubscriptionActive))
	}))

	err := s.Update(ctx, func(w repository.Writer) error {
		return w.MutSubscriptions().Put(sub("s3", entity.SubscriptionActive))
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	_ = s.View(func(r repository.Reader) error {
		active, ok := r.ActiveSubscription("u1")
		require.True(t, ok)
		assert.Equal(t, "s2", active.ID)
		assert.Len(t, r.SubscriptionsByUser("u1"), 2)
		return nil
	})
}

func TestStore_UpdateFallidoNoDejaRastro(t *testing.T) {
	s := memory.New()
	putUsers(t, s, user("u1", "100"))

	boom := errors.New("boom")
	err := s.Update(context.Background(), func(w repository.Writer) error {
		require.NoError(t, w.MutUsers().Put(user("u2", "200")))
		require.True(t, w.MutUsers().Remove("u1"))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_ = s.View(func(r repository.Reader) error {
		all := r.Users().All()
		require.Len(t, all, 1)
		assert.Equal(t, "u1", all[0].ID)
		return nil
	})
}

func TestStore_BusquedasIndexadasEnOrden(t *testing.T) {
	s := memory.New()
	require.NoError(t, s.Update(context.Background(), func(w repository.Writer) error {
		for _, sp := range []entity.ShopProduct{
			listing("sp1", "s1", "p1"),
			listing("sp2", "s2", "p1"),
			listing("sp3", "s1", "p2"),
			listing("sp4", "s3", "p1"),
		} {
			if err := w.MutShopProducts().Put(sp); err != nil {
				return err
			}
		}
		return nil
	}))

	_ = s.View(func(r repository.Reader) error {
		byProduct := r.ShopProductsByProduct("p1")
		require.Len(t, byProduct, 3)
		assert.Equal(t, "sp1", byProduct[0].ID)
		assert.Equal(t, "sp2", byProduct[1].ID)
		assert.Equal(t, "sp4", byProduct[2].ID)

		byShop := r.ShopProductsByShop("s1")
		require.Len(t, byShop, 2)
		assert.Equal(t, "sp3", byShop[1].ID)
		assert.Empty(t, r.ShopProductsByShop("zzz"))
		return nil
	})
}

func TestStore_NoCompartePunterosConElLlamador(t *testing.T) {
	s := memory.New()
	price := decimal.NewFromInt(50)
	sp := listing("sp1", "s1", "p1")
	sp.CurrentPrice = &price
	require.NoError(t, s.Update(context.Background(), func(w repository.Writer) error {
		return w.MutShopProducts().Put(sp)
	}))

	*sp.CurrentPrice = decimal.NewFromInt(1)

	_ = s.View(func(r repository.Reader) error {
		got, _ := r.ShopProducts().Get("sp1")
		assert.True(t, got.CurrentPrice.Equal(decimal.NewFromInt(50)))
		return nil
	})
}

// fakeMedium medio en memoria que puede forzar errores de escritura.
type fakeMedium struct {
	loaded  *entity.Dataset
	failing bool
	writes  [][]entity.Kind
}

func (m *fakeMedium) Load(context.Context) (*entity.Dataset, error) { return m.loaded, nil }

func (m *fakeMedium) Write(_ context.Context, kinds []entity.Kind, _ *entity.Dataset) error {
	if m.failing {
		return errors.New("disco lleno")
	}
	m.writes = append(m.writes, kinds)
	return nil
}

func TestStore_OpenCargaDelMedioYVuelcaSoloLoSucio(t *testing.T) {
	medium := &fakeMedium{loaded: &entity.Dataset{Users: []entity.User{user("u1", "100")}}}
	s, err := memory.Open(context.Background(), medium, logger.Nop())
	require.NoError(t, err)

	putUsers(t, s, user("u2", "200"))
	require.Len(t, medium.writes, 1)
	assert.Equal(t, []entity.Kind{entity.KindUser}, medium.writes[0])
	assert.Len(t, s.Snapshot().Users, 2)
}

func TestStore_FalloDelMedioRevierteLaEscritura(t *testing.T) {
	medium := &fakeMedium{}
	s, err := memory.Open(context.Background(), medium, logger.Nop())
	require.NoError(t, err)

	medium.failing = true
	err = s.Update(context.Background(), func(w repository.Writer) error {
		return w.MutUsers().Put(user("u1", "100"))
	})
	require.Error(t, err)
	assert.Empty(t, s.Snapshot().Users)
}

func TestStore_OpenRechazaDatosPersistidosInvalidos(t *testing.T) {
	medium := &fakeMedium{loaded: &entity.Dataset{Users: []entity.User{user("u1", "1"), user("u2", "1")}}}
	_, err := memory.Open(context.Background(), medium, logger.Nop())
	require.ErrorIs(t, err, domain.ErrValidation)
}
