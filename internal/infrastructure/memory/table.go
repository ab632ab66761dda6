package memory

import (
	"maps"
	"sort"

	"github.com/jhoicas/Comparador-api/internal/domain"
	"github.com/jhoicas/Comparador-api/internal/domain/entity"
)

// keyFunc extrae la llave de índice; ok=false excluye la fila del índice.
type keyFunc[T entity.Record] func(v T) (key string, ok bool)

// index índice secundario llave -> ids. Si unique, una llave no puede apuntar a dos ids.
type index[T entity.Record] struct {
	name   string
	field  string // campo reportado en el ValidationError de unicidad
	unique bool
	key    keyFunc[T]
	m      map[string]map[string]struct{}
}

func (ix *index[T]) clone() *index[T] {
	c := *ix
	c.m = make(map[string]map[string]struct{}, len(ix.m))
	for k, ids := range ix.m {
		c.m[k] = maps.Clone(ids)
	}
	return &c
}

func (ix *index[T]) add(v T) {
	k, ok := ix.key(v)
	if !ok {
		return
	}
	ids := ix.m[k]
	if ids == nil {
		ids = make(map[string]struct{}, 1)
		ix.m[k] = ids
	}
	ids[v.RecordID()] = struct{}{}
}

func (ix *index[T]) remove(v T) {
	k, ok := ix.key(v)
	if !ok {
		return
	}
	ids := ix.m[k]
	delete(ids, v.RecordID())
	if len(ids) == 0 {
		delete(ix.m, k)
	}
}

// conflict indica si v chocaría con otra fila en un índice único.
func (ix *index[T]) conflict(v T) bool {
	if !ix.unique {
		return false
	}
	k, ok := ix.key(v)
	if !ok {
		return false
	}
	for id := range ix.m[k] {
		if id != v.RecordID() {
			return true
		}
	}
	return false
}

// table colección en orden de inserción con mapa id -> posición e índices secundarios.
type table[T entity.Record] struct {
	kind    entity.Kind
	rows    []T
	pos     map[string]int
	indexes map[string]*index[T]
}

func newTable[T entity.Record](kind entity.Kind, indexes ...*index[T]) *table[T] {
	t := &table[T]{
		kind:    kind,
		pos:     make(map[string]int),
		indexes: make(map[string]*index[T], len(indexes)),
	}
	for _, ix := range indexes {
		ix.m = make(map[string]map[string]struct{})
		t.indexes[ix.name] = ix
	}
	return t
}

// clone copia profunda para copy-on-write dentro de una transacción.
func (t *table[T]) clone() *table[T] {
	c := &table[T]{
		kind:    t.kind,
		rows:    make([]T, len(t.rows)),
		pos:     maps.Clone(t.pos),
		indexes: make(map[string]*index[T], len(t.indexes)),
	}
	copy(c.rows, t.rows)
	for name, ix := range t.indexes {
		c.indexes[name] = ix.clone()
	}
	return c
}

// All devuelve copias en orden de inserción; nunca nil.
func (t *table[T]) All() []T {
	out := make([]T, len(t.rows))
	for i, v := range t.rows {
		out[i] = cloneOf(v)
	}
	return out
}

func (t *table[T]) Get(id string) (T, bool) {
	i, ok := t.pos[id]
	if !ok {
		var zero T
		return zero, false
	}
	return cloneOf(t.rows[i]), true
}

func (t *table[T]) Count() int { return len(t.rows) }

// Put upsert por id. Valida el esquema y la unicidad antes de tocar nada.
func (t *table[T]) Put(v T) error {
	if err := entity.Validate(v); err != nil {
		return err
	}
	for _, ix := range t.indexes {
		if ix.conflict(v) {
			return domain.NewValidation(t.kind.Label(), ix.field, "duplicado")
		}
	}
	v = cloneOf(v)
	if i, ok := t.pos[v.RecordID()]; ok {
		old := t.rows[i]
		for _, ix := range t.indexes {
			ix.remove(old)
			ix.add(v)
		}
		t.rows[i] = v
		return nil
	}
	t.pos[v.RecordID()] = len(t.rows)
	t.rows = append(t.rows, v)
	for _, ix := range t.indexes {
		ix.add(v)
	}
	return nil
}

// Remove elimina por id; false si no existía.
func (t *table[T]) Remove(id string) bool {
	i, ok := t.pos[id]
	if !ok {
		return false
	}
	old := t.rows[i]
	for _, ix := range t.indexes {
		ix.remove(old)
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	delete(t.pos, id)
	for j := i; j < len(t.rows); j++ {
		t.pos[t.rows[j].RecordID()] = j
	}
	return true
}

// Replace sustituye la colección completa. Si algún registro es inválido la tabla queda intacta.
func (t *table[T]) Replace(items []T) error {
	staged := newTable[T](t.kind)
	for name, ix := range t.indexes {
		c := *ix
		c.m = make(map[string]map[string]struct{})
		staged.indexes[name] = &c
	}
	for _, v := range items {
		if _, dup := staged.pos[v.RecordID()]; dup {
			return domain.NewValidation(t.kind.Label(), "id", "duplicado: "+v.RecordID())
		}
		if err := staged.Put(v); err != nil {
			return err
		}
	}
	*t = *staged
	return nil
}

func (t *table[T]) Clear() {
	t.rows = nil
	t.pos = make(map[string]int)
	for _, ix := range t.indexes {
		ix.m = make(map[string]map[string]struct{})
	}
}

// lookup filas con la llave dada en el índice, en orden de inserción.
func (t *table[T]) lookup(indexName, key string) []T {
	ix := t.indexes[indexName]
	if ix == nil {
		return []T{}
	}
	ids := ix.m[key]
	positions := make([]int, 0, len(ids))
	for id := range ids {
		positions = append(positions, t.pos[id])
	}
	sort.Ints(positions)
	out := make([]T, len(positions))
	for i, p := range positions {
		out[i] = cloneOf(t.rows[p])
	}
	return out
}

// first primera fila (por orden de inserción) con la llave dada.
func (t *table[T]) first(indexName, key string) (T, bool) {
	rows := t.lookup(indexName, key)
	if len(rows) == 0 {
		var zero T
		return zero, false
	}
	return rows[0], true
}

// cloneOf aplica Clone() cuando la entidad tiene campos por referencia.
func cloneOf[T entity.Record](v T) T {
	if c, ok := any(v).(interface{ Clone() T }); ok {
		return c.Clone()
	}
	return v
}
