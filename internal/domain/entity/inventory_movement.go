package entity

import (
	"math"
	"strings"
	"time"

	"github.com/tu-usuario/inventario-control/internal/domain"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// InventoryMovement registro de auditoría de un cambio de stock.
// Inmutable una vez construido: no existen operaciones de actualización; la
// persistencia solo asigna ID y CreatedAt definitivos.
type InventoryMovement struct {
	ID            int64
	TransactionID string // correlación de la operación que lo originó
	ProductID     int64
	Quantity      int64 // siempre positiva; el signo lo da MovementType
	MovementType  string
	Reason        string
	PreviousStock int64
	NewStock      int64
	UserID        int64
	CreatedAt     time.Time
}

// NewInventoryMovement construye el registro de auditoría de un movimiento ya aplicado.
// Además de validar campos, recalcula el stock esperado desde previousStock, quantity y
// movementType: es un doble chequeo independiente del motor de stock, contra callers
// que armen registros por fuera del protocolo. Un now cero se reemplaza por la hora actual.
func NewInventoryMovement(
	productID, quantity int64,
	movementType, reason string,
	previousStock, newStock int64,
	userID int64,
	now time.Time,
) (*InventoryMovement, error) {
	var fields []domain.FieldError
	if quantity <= 0 {
		fields = append(fields, domain.FieldError{Field: "quantity", Message: "la cantidad del movimiento debe ser positiva", Value: quantity})
	}
	if strings.TrimSpace(reason) == "" {
		fields = append(fields, domain.FieldError{Field: "reason", Message: "la razón del movimiento es requerida para auditoría"})
	}
	if productID <= 0 {
		fields = append(fields, domain.FieldError{Field: "product_id", Message: "ID de producto inválido", Value: productID})
	}
	if userID <= 0 {
		fields = append(fields, domain.FieldError{Field: "user_id", Message: "ID de usuario inválido", Value: userID})
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	if movementType != MovementTypeIN && movementType != MovementTypeOUT {
		return nil, &domain.InvalidMovementTypeError{Type: movementType}
	}

	// Mismo guard de desborde que el motor de stock: sin él, el recálculo
	// envolvería igual que una suma corrupta y la validaría.
	if movementType == MovementTypeIN && quantity > math.MaxInt64-previousStock {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "quantity", Message: "la cantidad desborda el stock representable", Value: quantity},
		}}
	}
	expected := previousStock + quantity
	if movementType == MovementTypeOUT {
		expected = previousStock - quantity
	}
	if newStock != expected {
		return nil, &domain.StockInconsistencyError{
			MovementType:  movementType,
			PreviousStock: previousStock,
			Quantity:      quantity,
			ExpectedNew:   expected,
			ActualNew:     newStock,
		}
	}

	if now.IsZero() {
		now = time.Now()
	}
	return &InventoryMovement{
		ProductID:     productID,
		Quantity:      quantity,
		MovementType:  movementType,
		Reason:        strings.TrimSpace(reason),
		PreviousStock: previousStock,
		NewStock:      newStock,
		UserID:        userID,
		CreatedAt:     now,
	}, nil
}

// IsEntry true si el movimiento aumenta stock.
func (m *InventoryMovement) IsEntry() bool {
	return m.MovementType == MovementTypeIN
}
