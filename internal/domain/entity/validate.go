package entity

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Comparador-api/internal/domain"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func schema() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Los errores nombran el campo como aparece en el documento (tag json).
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

// checker reglas de rango que no se expresan con tags.
type checker interface {
	check() error
}

// Validate verifica el esquema de la entidad antes de persistirla.
// Devuelve *domain.ValidationError nombrando el primer campo inválido.
func Validate(r Record) error {
	if err := schema().Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return domain.NewValidation(r.RecordKind().Label(), fieldPath(fe.Namespace()), reason(fe))
		}
		return domain.NewValidation(r.RecordKind().Label(), "", err.Error())
	}
	if c, ok := r.(checker); ok {
		return c.check()
	}
	return nil
}

// fieldPath quita el nombre del struct raíz: "PriceUpdate.updated_by.id" -> "updated_by.id".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	case "gte":
		return "debe ser >= " + fe.Param()
	}
	return "no cumple la regla " + fe.Tag()
}

func rangeError(k Kind, field, why string) error {
	return domain.NewValidation(k.Label(), field, why)
}
