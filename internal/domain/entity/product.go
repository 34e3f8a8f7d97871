package entity

import (
	"math"
	"strings"
	"time"

	"github.com/tu-usuario/inventario-control/internal/domain"
)

// Product representa un ítem del inventario con stock acotado.
// El stock se muta únicamente vía ApplyStockMovement dentro del protocolo de
// movimientos; asignar CurrentStock directamente por fuera es un bypass.
type Product struct {
	ID           int64
	Code         string // código único
	Name         string
	Description  string
	CurrentStock int64
	MinStock     int64
	MaxStock     int64 // 0 = sin tope superior
	Unit         string
	Version      int64 // contador de revisión, solo auditoría/diagnóstico (el guard de concurrencia es el lock pesimista)
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StockChange evento emitido por ApplyStockMovement en caso de éxito.
// Reemplaza al buffer mutable de domain events: el caller decide qué hacer con él
// (respuesta, logs); la entidad no acumula estado de eventos.
type StockChange struct {
	ProductID     int64
	MovementType  string
	Quantity      int64
	PreviousStock int64
	NewStock      int64
	Version       int64
	OccurredAt    time.Time
}

// NewProduct crea un producto validando sus invariantes iniciales.
func NewProduct(code, name, description, unit string, currentStock, minStock, maxStock int64) (*Product, error) {
	var fields []domain.FieldError
	if strings.TrimSpace(code) == "" {
		fields = append(fields, domain.FieldError{Field: "code", Message: "el código del producto es requerido"})
	}
	if strings.TrimSpace(name) == "" {
		fields = append(fields, domain.FieldError{Field: "name", Message: "el nombre del producto es requerido"})
	}
	if strings.TrimSpace(unit) == "" {
		fields = append(fields, domain.FieldError{Field: "unit", Message: "la unidad de medida es requerida"})
	}
	if currentStock < 0 {
		fields = append(fields, domain.FieldError{Field: "current_stock", Message: "el stock no puede ser negativo", Value: currentStock})
	}
	if minStock < 0 {
		fields = append(fields, domain.FieldError{Field: "min_stock", Message: "el stock mínimo no puede ser negativo", Value: minStock})
	}
	if maxStock < minStock {
		fields = append(fields, domain.FieldError{Field: "max_stock", Message: "el stock máximo debe ser mayor o igual al mínimo", Value: maxStock})
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	now := time.Now()
	return &Product{
		Code:         strings.TrimSpace(code),
		Name:         strings.TrimSpace(name),
		Description:  description,
		CurrentStock: currentStock,
		MinStock:     minStock,
		MaxStock:     maxStock,
		Unit:         strings.TrimSpace(unit),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ApplyStockMovement aplica una entrada (IN) o salida (OUT) al stock del producto.
// Valida los invariantes (stock >= 0, stock <= MaxStock si MaxStock > 0) y solo
// muta el producto si todos pasan. En caso de error el producto queda intacto.
// Determinista y sin I/O; el orden entre movimientos concurrentes lo garantiza el
// lock de fila del coordinador, no esta función.
func (p *Product) ApplyStockMovement(quantity int64, movementType string) (StockChange, error) {
	if quantity <= 0 {
		return StockChange{}, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "quantity", Message: "la cantidad debe ser mayor a cero", Value: quantity},
		}}
	}
	if movementType != MovementTypeIN && movementType != MovementTypeOUT {
		return StockChange{}, &domain.InvalidMovementTypeError{Type: movementType}
	}

	previous := p.CurrentStock
	var newStock int64
	switch movementType {
	case MovementTypeIN:
		// La suma no puede desbordar int64: el valor envuelto sería negativo y
		// pasaría el chequeo de máximo dejando stock negativo.
		if quantity > math.MaxInt64-previous {
			return StockChange{}, &domain.ValidationError{Fields: []domain.FieldError{
				{Field: "quantity", Message: "la cantidad desborda el stock representable", Value: quantity},
			}}
		}
		newStock = previous + quantity
		if p.MaxStock > 0 && newStock > p.MaxStock {
			return StockChange{}, &domain.StockExceedsMaximumError{
				ProductID: p.ID,
				Current:   newStock,
				Max:       p.MaxStock,
			}
		}
	case MovementTypeOUT:
		newStock = previous - quantity
		if newStock < 0 {
			return StockChange{}, &domain.InsufficientStockError{
				ProductID: p.ID,
				Available: previous,
				Required:  quantity,
			}
		}
	}

	now := time.Now()
	p.CurrentStock = newStock
	p.Version++
	p.UpdatedAt = now

	return StockChange{
		ProductID:     p.ID,
		MovementType:  movementType,
		Quantity:      quantity,
		PreviousStock: previous,
		NewStock:      newStock,
		Version:       p.Version,
		OccurredAt:    now,
	}, nil
}

// IsStockLow indica si el stock está por debajo del mínimo configurado.
func (p *Product) IsStockLow() bool {
	return p.CurrentStock < p.MinStock
}

// NeedsReorder indica si el stock está en o por debajo del mínimo más un buffer
// porcentual (alerta temprana).
func (p *Product) NeedsReorder(bufferPercentage float64) bool {
	threshold := float64(p.MinStock) * (1 + bufferPercentage)
	return float64(p.CurrentStock) <= threshold
}

// StockPercentage porcentaje de stock relativo al máximo (0 si no hay tope).
func (p *Product) StockPercentage() float64 {
	if p.MaxStock <= 0 {
		return 0
	}
	return float64(p.CurrentStock) / float64(p.MaxStock) * 100
}

// ReorderQuantity cantidad sugerida para llegar al porcentaje objetivo del máximo.
func (p *Product) ReorderQuantity(targetPercentage float64) int64 {
	if p.MaxStock <= 0 {
		return 0
	}
	target := int64(targetPercentage / 100 * float64(p.MaxStock))
	if target <= p.CurrentStock {
		return 0
	}
	return target - p.CurrentStock
}

// Deactivate marca el producto como inactivo (borrado lógico).
// Los productos nunca se eliminan físicamente mientras existan movimientos que los referencien.
func (p *Product) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now()
}
