package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrValidation           = errors.New("entidad inválida")
	ErrReferentialIntegrity = errors.New("referencia rota entre entidades")
	ErrImportFormat         = errors.New("documento de importación inválido")
	ErrForbidden            = errors.New("acceso denegado")
)

// NotFoundError indica que el id referenciado no existe.
// Para búsquedas es un resultado normal; para operaciones que requieren el referente es un fallo.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q no encontrado", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFound construye un NotFoundError.
func NewNotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// ValidationError entidad mal formada al guardar: campo requerido ausente, fuera de rango o duplicado.
type ValidationError struct {
	Kind   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: campo %q inválido", e.Kind, e.Field)
	}
	return fmt.Sprintf("%s: campo %q %s", e.Kind, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidation construye un ValidationError.
func NewValidation(kind, field, reason string) error {
	return &ValidationError{Kind: kind, Field: field, Reason: reason}
}

// ReferentialIntegrityError un join en lectura encontró una llave foránea colgante.
// Indica corrupción previa, no un error de la operación actual.
type ReferentialIntegrityError struct {
	Kind  string // entidad que contiene la referencia
	ID    string
	Ref   string // entidad referenciada
	RefID string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s %q referencia %s %q inexistente", e.Kind, e.ID, e.Ref, e.RefID)
}

func (e *ReferentialIntegrityError) Unwrap() error { return ErrReferentialIntegrity }

// NewIntegrity construye un ReferentialIntegrityError.
func NewIntegrity(kind, id, ref, refID string) error {
	return &ReferentialIntegrityError{Kind: kind, ID: id, Ref: ref, RefID: refID}
}

// ImportFormatError el documento de importación es estructuralmente inválido.
type ImportFormatError struct {
	Path   string
	Reason string
}

func (e *ImportFormatError) Error() string {
	if e.Path == "" {
		return "importación: " + e.Reason
	}
	return fmt.Sprintf("importación: %s: %s", e.Path, e.Reason)
}

func (e *ImportFormatError) Unwrap() error { return ErrImportFormat }

// NewImportFormat construye un ImportFormatError.
func NewImportFormat(path, reason string) error {
	return &ImportFormatError{Path: path, Reason: reason}
}
