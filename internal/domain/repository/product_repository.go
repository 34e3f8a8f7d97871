package repository

import (
	"context"

	"github.com/tu-usuario/inventario-control/internal/domain/entity"
)

// ProductRepository puerto de persistencia de productos.
// GetByIDForUpdate debe traducirse a un bloqueo exclusivo de fila en el backend
// (SELECT ... FOR UPDATE o equivalente) y solo tiene sentido dentro de una transacción.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Product, error)
	Deactivate(ctx context.Context, id int64) error
}
