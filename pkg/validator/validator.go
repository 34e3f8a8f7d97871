package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tu-usuario/inventario-control/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct valida un struct por sus tags `validate` y devuelve TODOS los campos
// violados como domain.FieldError (no solo el primero). Nil si el struct es válido.
// Usa el nombre del tag json como nombre de campo para que el error sea legible
// desde el cliente HTTP.
func ValidateStruct(data any) []domain.FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []domain.FieldError{{Field: "body", Message: err.Error()}}
	}
	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:   fieldName(fe),
			Message: messageFor(fe),
			Value:   fe.Value(),
		})
	}
	return fields
}

func fieldName(fe validator.FieldError) string {
	// StructNamespace viene como "RegisterMovementRequest.ProductID"; nos quedamos
	// con el campo final en snake_case aproximado por el nombre Go.
	parts := strings.Split(fe.StructNamespace(), ".")
	return toSnake(parts[len(parts)-1])
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo requerido"
	case "gt":
		return "debe ser mayor a " + fe.Param()
	case "min":
		return "valor mínimo: " + fe.Param()
	case "max":
		return "valor máximo: " + fe.Param()
	case "oneof":
		return "valores válidos: " + fe.Param()
	case "email":
		return "email inválido"
	default:
		return "inválido (regla: " + fe.Tag() + ")"
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z' {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
