package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comparador-api/internal/domain/entity"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
	"github.com/jhoicas/Comparador-api/internal/infrastructure/memory"
)

var t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return t0 }

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func ptr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

// marketplace tienda s1 de owner-1 con el producto p1 publicado en sp_1 a 70.
func marketplace(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.New()
	require.NoError(t, s.Update(context.Background(), func(w repository.Writer) error {
		for _, err := range []error{
			w.MutUsers().Put(entity.User{ID: "owner-1", PhoneNumber: "300", Name: "Dueña", Role: entity.RoleShopOwner, IsActive: true, CreatedAt: t0}),
			w.MutUsers().Put(entity.User{ID: "owner-2", PhoneNumber: "301", Name: "Otro", Role: entity.RoleShopOwner, IsActive: true, CreatedAt: t0}),
			w.MutUsers().Put(entity.User{ID: "u1", PhoneNumber: "310", Name: "Cliente", Role: entity.RoleEndUser, IsActive: true, CreatedAt: t0}),
			w.MutUsers().Put(entity.User{ID: "u2", PhoneNumber: "311", Name: "Cliente 2", Role: entity.RoleEndUser, IsActive: true, CreatedAt: t0}),
			w.MutShops().Put(entity.Shop{ID: "s1", OwnerID: "owner-1", Name: "La Esquina", IsActive: true, CreatedAt: t0}),
			w.MutShops().Put(entity.Shop{ID: "s2", OwnerID: "owner-2", Name: "El Centro", IsActive: true, CreatedAt: t0}),
			w.MutProducts().Put(entity.Product{ID: "p1", Name: "Arroz", Category: "granos", Unit: "kg", IsActive: true, CreatedAt: t0}),
			w.MutProducts().Put(entity.Product{ID: "p2", Name: "Leche", Category: "lácteos", Unit: "litro", IsActive: true, CreatedAt: t0}),
			w.MutShopProducts().Put(entity.ShopProduct{ID: "sp_1", ShopID: "s1", ProductID: "p1", IsAvailable: true, CurrentPrice: ptr("70"), CreatedAt: t0}),
			w.MutShopProducts().Put(entity.ShopProduct{ID: "sp_2", ShopID: "s1", ProductID: "p2", IsAvailable: true, CreatedAt: t0}),
		} {
			if err != nil {
				return err
			}
		}
		return nil
	}))
	return s
}

var owner = entity.Actor{ID: "owner-1", Role: entity.RoleShopOwner}
