// Package filestore persiste el Entity Store como un documento JSON en disco.
package filestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/jhoicas/Comparador-api/internal/domain/entity"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
)

var _ repository.Medium = (*Medium)(nil)

// Medium guarda el documento de exportación completo en un archivo.
// Cada escritura reemplaza el archivo de forma atómica (archivo temporal + rename).
type Medium struct {
	path string
	now  func() time.Time

	mu   sync.Mutex
	data entity.Dataset
}

// New construye el medio sobre path. El directorio se crea si no existe.
func New(path string) *Medium {
	return &Medium{path: path, now: time.Now}
}

// Load lee el documento; un archivo inexistente equivale a un almacén vacío.
func (m *Medium) Load(_ context.Context) (*entity.Dataset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, err := os.ReadFile(m.path)
	if errors.Is(err, os.ErrNotExist) {
		m.data = entity.Dataset{}
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "leer %s", m.path)
	}
	var doc entity.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "decodificar %s", m.path)
	}
	m.data = doc.Data
	d := doc.Data
	return &d, nil
}

// Write actualiza las colecciones indicadas y reescribe el archivo.
func (m *Medium) Write(_ context.Context, kinds []entity.Kind, d *entity.Dataset) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.data
	for _, k := range kinds {
		next.Set(k, d)
	}
	raw, err := json.MarshalIndent(entity.NewDocument(&next, m.now()), "", "  ")
	if err != nil {
		return errors.Wrap(err, "codificar documento")
	}
	if err := writeAtomic(m.path, raw); err != nil {
		return err
	}
	m.data = next
	return nil
}

func writeAtomic(path string, raw []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "crear directorio %s", dir)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "crear archivo temporal")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return errors.Wrap(err, "escribir archivo temporal")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "sync archivo temporal")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "cerrar archivo temporal")
	}
	return errors.Wrapf(os.Rename(tmp.Name(), path), "reemplazar %s", path)
}
