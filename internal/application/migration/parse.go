package migration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/Comparador-api/internal/domain"
	"github.com/jhoicas/Comparador-api/internal/domain/entity"
)

// parsed documento validado estructuralmente: por colección, la lista de objetos sin decodificar.
type parsed struct {
	version string
	kinds   map[entity.Kind][]json.RawMessage
}

// parseDocument valida la forma del documento antes de cualquier escritura. Acepta llaves
// camelCase (exportación) o snake_case (migración al backend) en "data".
func parseDocument(raw []byte) (*parsed, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil || top == nil {
		return nil, domain.NewImportFormat("", "el documento no es un objeto JSON")
	}

	p := &parsed{kinds: make(map[entity.Kind][]json.RawMessage)}
	if v, ok := top["version"]; ok {
		if err := json.Unmarshal(v, &p.version); err != nil {
			return nil, domain.NewImportFormat("version", "debe ser texto")
		}
		if major, _, _ := strings.Cut(p.version, "."); major != "" && major != majorVersion() {
			return nil, domain.NewImportFormat("version", fmt.Sprintf("versión %s no soportada", p.version))
		}
	}

	rawData, ok := top["data"]
	if !ok {
		return nil, domain.NewImportFormat("data", "requerido")
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal(rawData, &data); err != nil || data == nil {
		return nil, domain.NewImportFormat("data", "debe ser un objeto")
	}

	for key, value := range data {
		path := "data." + key
		k, ok := entity.ParseKind(key)
		if !ok {
			return nil, domain.NewImportFormat(path, "colección desconocida")
		}
		if _, dup := p.kinds[k]; dup {
			return nil, domain.NewImportFormat(path, "colección repetida en ambos formatos de llave")
		}
		if !isArray(value) {
			return nil, domain.NewImportFormat(path, "debe ser una lista")
		}
		var items []json.RawMessage
		if err := json.Unmarshal(value, &items); err != nil {
			return nil, domain.NewImportFormat(path, "debe ser una lista")
		}
		for i, it := range items {
			if !isObject(it) {
				return nil, domain.NewImportFormat(fmt.Sprintf("%s[%d]", path, i), "debe ser un objeto")
			}
		}
		p.kinds[k] = items
	}
	return p, nil
}

func majorVersion() string {
	major, _, _ := strings.Cut(entity.DocumentVersion, ".")
	return major
}

func isArray(raw json.RawMessage) bool {
	b := bytes.TrimSpace(raw)
	return len(b) > 0 && b[0] == '['
}

func isObject(raw json.RawMessage) bool {
	b := bytes.TrimSpace(raw)
	return len(b) > 0 && b[0] == '{'
}

// decodeAll decodifica los objetos de una colección en su tipo de entidad.
func decodeAll[T entity.Record](k entity.Kind, items []json.RawMessage) ([]T, error) {
	out := make([]T, len(items))
	for i, it := range items {
		if err := json.Unmarshal(it, &out[i]); err != nil {
			return nil, domain.NewValidation(k.Label(), fmt.Sprintf("[%d]", i), "no se pudo decodificar: "+err.Error())
		}
	}
	return out, nil
}
