package postgres

import (
	"context"
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/jhoicas/Comparador-api/internal/domain/entity"
)

// priceColumn columna NUMERIC desnormalizada por Kind para consultas SQL directas sobre precios.
var priceColumn = map[entity.Kind]string{
	entity.KindShopProduct: "current_price",
	entity.KindPriceUpdate: "price",
}

// EnsureSchema crea (si no existen) una tabla por colección: id, posición de inserción y el
// registro completo en JSONB. Idempotente; se ejecuta al arrancar con medium=postgres.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, k := range entity.Kinds {
		table := k.Table()
		stmts := []string{
			fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
				id         TEXT PRIMARY KEY,
				position   INTEGER NOT NULL,
				payload    JSONB NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, table),
			fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_position_idx ON %s (position)`, table, table),
		}
		if col, ok := priceColumn[k]; ok {
			stmts = append(stmts, fmt.Sprintf(`ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s NUMERIC(14,2)`, table, col))
		}
		for _, stmt := range stmts {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return pkgerrors.Wrapf(err, "schema %s", table)
			}
		}
	}
	return nil
}
