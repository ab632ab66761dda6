package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pkgerrors "github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comparador-api/internal/domain/entity"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
	"github.com/jhoicas/Comparador-api/pkg/logger"
)

var _ repository.Medium = (*Medium)(nil)

// Medium persiste el Entity Store en PostgreSQL. Cada volcado reescribe las colecciones
// sucias dentro de una sola transacción; si falla, la base queda como estaba.
type Medium struct {
	pool *pgxpool.Pool
	tx   *TxRunner
	log  *logger.Logger
}

// NewMedium construye el medio. retryAttempts aplica a fallos de conexión seguros de repetir.
func NewMedium(pool *pgxpool.Pool, retryAttempts int, log *logger.Logger) *Medium {
	return &Medium{pool: pool, tx: NewTxRunner(pool, retryAttempts), log: log}
}

// Load lee todas las colecciones en orden de inserción.
func (m *Medium) Load(ctx context.Context) (*entity.Dataset, error) {
	d := &entity.Dataset{}
	var err error
	if d.Users, err = loadKind[entity.User](ctx, m.pool, entity.KindUser); err != nil {
		return nil, err
	}
	if d.Shops, err = loadKind[entity.Shop](ctx, m.pool, entity.KindShop); err != nil {
		return nil, err
	}
	if d.Products, err = loadKind[entity.Product](ctx, m.pool, entity.KindProduct); err != nil {
		return nil, err
	}
	if d.ShopProducts, err = loadKind[entity.ShopProduct](ctx, m.pool, entity.KindShopProduct); err != nil {
		return nil, err
	}
	if d.PriceUpdates, err = loadKind[entity.PriceUpdate](ctx, m.pool, entity.KindPriceUpdate); err != nil {
		return nil, err
	}
	if d.Subscriptions, err = loadKind[entity.Subscription](ctx, m.pool, entity.KindSubscription); err != nil {
		return nil, err
	}
	if d.Payments, err = loadKind[entity.Payment](ctx, m.pool, entity.KindPayment); err != nil {
		return nil, err
	}
	if d.Favorites, err = loadKind[entity.Favorite](ctx, m.pool, entity.KindFavorite); err != nil {
		return nil, err
	}
	if d.Notifications, err = loadKind[entity.Notification](ctx, m.pool, entity.KindNotification); err != nil {
		return nil, err
	}
	return d, nil
}

func loadKind[T entity.Record](ctx context.Context, q Querier, k entity.Kind) ([]T, error) {
	rows, err := q.Query(ctx, fmt.Sprintf(`SELECT payload FROM %s ORDER BY position`, k.Table()))
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "leer %s", k.Table())
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, pkgerrors.Wrapf(err, "scan %s", k.Table())
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, pkgerrors.Wrapf(err, "decodificar %s", k.Table())
		}
		out = append(out, v)
	}
	return out, pkgerrors.Wrapf(rows.Err(), "leer %s", k.Table())
}

// Write reemplaza el contenido de las colecciones indicadas.
func (m *Medium) Write(ctx context.Context, kinds []entity.Kind, d *entity.Dataset) error {
	return m.tx.Run(ctx, func(q Querier) error {
		for _, k := range kinds {
			if err := writeKind(ctx, q, k, d.Records(k)); err != nil {
				if isUniqueViolation(err) && m.log != nil {
					m.log.Error().Err(err).Str("table", k.Table()).Msg("id duplicado al volcar colección")
				}
				return err
			}
		}
		return nil
	})
}

func writeKind(ctx context.Context, q Querier, k entity.Kind, records []entity.Record) error {
	table := k.Table()
	if _, err := q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
		return pkgerrors.Wrapf(err, "vaciar %s", table)
	}
	if len(records) == 0 {
		return nil
	}

	col, priced := priceColumn[k]
	insert := fmt.Sprintf(`INSERT INTO %s (id, position, payload, updated_at) VALUES ($1, $2, $3, now())`, table)
	if priced {
		insert = fmt.Sprintf(`INSERT INTO %s (id, position, payload, updated_at, %s) VALUES ($1, $2, $3, now(), $4)`, table, col)
	}

	batch := &pgx.Batch{}
	for i, r := range records {
		payload, err := json.Marshal(r)
		if err != nil {
			return pkgerrors.Wrapf(err, "codificar %s %s", k.Label(), r.RecordID())
		}
		args := []any{r.RecordID(), i, payload}
		if priced {
			args = append(args, priceOf(r))
		}
		batch.Queue(insert, args...)
	}
	br := q.SendBatch(ctx, batch)
	for range records {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return pkgerrors.Wrapf(err, "insertar en %s", table)
		}
	}
	return pkgerrors.Wrapf(br.Close(), "insertar en %s", table)
}

// priceOf valor para la columna de precio; nil se guarda como NULL.
func priceOf(r entity.Record) *decimal.Decimal {
	switch v := r.(type) {
	case entity.ShopProduct:
		return v.CurrentPrice
	case entity.PriceUpdate:
		p := v.Price
		return &p
	}
	return nil
}
