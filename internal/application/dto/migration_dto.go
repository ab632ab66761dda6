package dto

// ImportOptions modo de importación.
type ImportOptions struct {
	Merge             bool `json:"merge" query:"merge"`
	ClearBeforeImport bool `json:"clear_before_import" query:"clear"`
}

// KindResult resultado de importar una colección: conteo tras la importación o el error que la dejó intacta.
type KindResult struct {
	Imported int    `json:"imported"`
	Count    int    `json:"count"`
	Error    string `json:"error,omitempty"`
}

// ImportResult resultado por colección (llaves camelCase).
type ImportResult struct {
	Kinds map[string]KindResult `json:"kinds"`
}

// Failed indica si alguna colección no se pudo aplicar.
func (r *ImportResult) Failed() bool {
	for _, k := range r.Kinds {
		if k.Error != "" {
			return true
		}
	}
	return false
}
