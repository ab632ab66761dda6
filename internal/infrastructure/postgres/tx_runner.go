package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	pkgerrors "github.com/pkg/errors"
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL y reintenta
// cuando el fallo es de conexión y es seguro repetir.
type TxRunner struct {
	pool     *pgxpool.Pool
	attempts int
	backoff  time.Duration
}

// NewTxRunner construye el runner. attempts < 1 equivale a un solo intento.
func NewTxRunner(pool *pgxpool.Pool, attempts int) *TxRunner {
	if attempts < 1 {
		attempts = 1
	}
	return &TxRunner{pool: pool, attempts: attempts, backoff: 200 * time.Millisecond}
}

// Run inicia una transacción, ejecuta fn con la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(q Querier) error) error {
	var err error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		err = r.runOnce(ctx, fn)
		if err == nil || !retryable(err) || attempt == r.attempts {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * r.backoff):
		}
	}
	return err
}

func (r *TxRunner) runOnce(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return pkgerrors.Wrap(err, "begin transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	return pkgerrors.Wrap(tx.Commit(ctx), "commit transaction")
}
