// Package memory implementa el Entity Store embebido: colecciones en memoria con orden
// de inserción, índices secundarios y escritura atómica con volcado síncrono al medio de persistencia.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/Comparador-api/internal/domain/entity"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
	"github.com/jhoicas/Comparador-api/pkg/logger"
)

var _ repository.Store = (*Store)(nil)

// Store Entity Store con un único RWMutex: las escrituras son atómicas respecto de las lecturas
// y todas las actualizaciones (incluidas las de precio de un mismo ShopProduct) quedan serializadas.
type Store struct {
	mu     sync.RWMutex
	cur    *state
	medium repository.Medium
	log    *logger.Logger
}

// New construye un Store vacío sin medio de persistencia (útil en tests).
func New() *Store {
	return &Store{cur: newState()}
}

// Open construye el Store y carga el contenido del medio. medium puede ser nil.
func Open(ctx context.Context, medium repository.Medium, log *logger.Logger) (*Store, error) {
	s := &Store{cur: newState(), medium: medium, log: log}
	if medium == nil {
		return s, nil
	}
	d, err := medium.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar medio: %w", err)
	}
	if d != nil {
		if err := s.cur.load(d); err != nil {
			return nil, fmt.Errorf("datos persistidos inválidos: %w", err)
		}
	}
	if log != nil {
		c := d
		if c == nil {
			c = &entity.Dataset{}
		}
		ev := log.Info()
		for k, n := range c.Counts() {
			ev = ev.Int(string(k), n)
		}
		ev.Msg("entity store cargado")
	}
	return s, nil
}

// View ejecuta fn bajo el lock de lectura: la pasada completa ve un estado consistente.
func (s *Store) View(fn func(r repository.Reader) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.cur)
}

// Update ejecuta fn sobre un estado copy-on-write. Solo si fn y el volcado al medio tienen
// éxito el nuevo estado reemplaza al actual; en otro caso se descarta completo.
func (s *Store) Update(ctx context.Context, fn func(w repository.Writer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.cur.fork()
	if err := fn(tx); err != nil {
		return err
	}
	kinds := tx.dirtyKinds()
	if len(kinds) == 0 {
		return nil
	}
	if s.medium != nil {
		if err := s.medium.Write(ctx, kinds, tx.dataset(kinds...)); err != nil {
			if s.log != nil {
				s.log.Error().Err(err).Interface("kinds", kinds).Msg("volcado al medio de persistencia")
			}
			return fmt.Errorf("persistir cambios: %w", err)
		}
	}
	tx.dirty = nil
	s.cur = tx
	return nil
}

// Snapshot copia puntual de todas las colecciones.
func (s *Store) Snapshot() *entity.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.dataset()
}
