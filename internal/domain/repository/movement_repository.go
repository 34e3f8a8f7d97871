package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/inventario-control/internal/domain/entity"
)

// MovementRepository puerto de persistencia de movimientos de inventario.
// Solo inserción: los movimientos son historia de auditoría y no se actualizan ni borran.
// Create asigna ID y CreatedAt definitivos sobre el registro recibido.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	GetByID(ctx context.Context, id int64) (*entity.InventoryMovement, error)
	ListByProduct(ctx context.Context, productID int64, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error)
	List(ctx context.Context, limit, offset int) ([]*entity.InventoryMovement, error)
}
