package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de infraestructura y acceso (sentinelas, sin datos adicionales).
var (
	ErrLockTimeout  = errors.New("timeout esperando el bloqueo de fila")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrUserInactive = errors.New("usuario inactivo")
)

// FieldError describe un campo inválido de una solicitud.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// ValidationError agrupa todos los campos inválidos de una solicitud.
// Se reporta completo, no solo el primer error, para que el caller corrija todo de una vez.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("solicitud inválida: campos [%s]", strings.Join(names, ", "))
}

// ProductNotFoundError producto inexistente o inactivo.
type ProductNotFoundError struct {
	ID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("producto con ID %d no encontrado", e.ID)
}

// UserNotFoundError usuario inexistente o inactivo.
type UserNotFoundError struct {
	ID int64
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("usuario con ID %d no encontrado", e.ID)
}

// InsufficientStockError una salida dejaría el stock negativo.
type InsufficientStockError struct {
	ProductID int64
	Available int64
	Required  int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %d. Disponible: %d, Requerido: %d",
		e.ProductID, e.Available, e.Required)
}

// StockExceedsMaximumError una entrada superaría el stock máximo configurado.
type StockExceedsMaximumError struct {
	ProductID int64
	Current   int64
	Max       int64
}

func (e *StockExceedsMaximumError) Error() string {
	return fmt.Sprintf("stock excede el máximo permitido para producto %d. Resultante: %d, Máximo: %d",
		e.ProductID, e.Current, e.Max)
}

// InvalidMovementTypeError tipo de movimiento desconocido.
type InvalidMovementTypeError struct {
	Type string
}

func (e *InvalidMovementTypeError) Error() string {
	return fmt.Sprintf("tipo de movimiento inválido: %q (válidos: IN, OUT)", e.Type)
}

// StockInconsistencyError el new_stock entregado no coincide con previous_stock +/- quantity.
// Indica que alguien construyó el registro por fuera del motor de stock: se trata como
// error de programación, se loguea fuerte y nunca se corrige en silencio.
type StockInconsistencyError struct {
	MovementType  string
	PreviousStock int64
	Quantity      int64
	ExpectedNew   int64
	ActualNew     int64
}

func (e *StockInconsistencyError) Error() string {
	return fmt.Sprintf("inconsistencia en cálculo de stock (%s): previo=%d cantidad=%d esperado=%d recibido=%d",
		e.MovementType, e.PreviousStock, e.Quantity, e.ExpectedNew, e.ActualNew)
}
