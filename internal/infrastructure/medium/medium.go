// Package medium elige el medio de persistencia del Entity Store según la configuración.
package medium

import (
	"context"
	"fmt"

	"github.com/jhoicas/Comparador-api/internal/domain/repository"
	"github.com/jhoicas/Comparador-api/internal/infrastructure/filestore"
	"github.com/jhoicas/Comparador-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Comparador-api/pkg/config"
	"github.com/jhoicas/Comparador-api/pkg/logger"
)

// Open construye el medio configurado. El medio memory devuelve nil (sin persistencia).
// closeFn libera los recursos del medio; siempre es distinto de nil.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (m repository.Medium, closeFn func(), err error) {
	noop := func() {}
	switch cfg.Store.Medium {
	case config.MediumMemory:
		log.Warn().Msg("entity store sin persistencia: los datos se pierden al reiniciar")
		return nil, noop, nil
	case config.MediumFile:
		log.Info().Str("path", cfg.Store.FilePath).Msg("entity store sobre archivo JSON")
		return filestore.New(cfg.Store.FilePath), noop, nil
	case config.MediumPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("esquema PostgreSQL: %w", err)
		}
		log.Info().Int("max_conns", cfg.DB.MaxConns).Msg("entity store sobre PostgreSQL")
		return postgres.NewMedium(pool, cfg.DB.RetryAttempts, log.Component("postgres")), pool.Close, nil
	}
	return nil, noop, fmt.Errorf("medio desconocido: %q", cfg.Store.Medium)
}
