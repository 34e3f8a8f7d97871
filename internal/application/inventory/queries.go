package inventory

import (
	"context"
	"time"

	"github.com/tu-usuario/inventario-control/internal/application/dto"
	"github.com/tu-usuario/inventario-control/internal/domain"
	"github.com/tu-usuario/inventario-control/internal/domain/entity"
	"github.com/tu-usuario/inventario-control/internal/domain/repository"
)

// MovementQueryUseCase consultas de solo lectura sobre el historial de movimientos.
// No toma locks: lecturas read-committed directas al pool, pueden ver estado pre o
// post-commit de mutaciones en vuelo.
type MovementQueryUseCase struct {
	movRepo     repository.MovementRepository
	productRepo repository.ProductRepository
}

// NewMovementQueryUseCase construye el caso de uso de consultas.
func NewMovementQueryUseCase(movRepo repository.MovementRepository, productRepo repository.ProductRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo, productRepo: productRepo}
}

// GetMovement obtiene un movimiento por ID.
func (uc *MovementQueryUseCase) GetMovement(ctx context.Context, id int64) (*dto.MovementResponse, error) {
	mov, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, nil
	}
	return toMovementResponse(mov), nil
}

// ListMovements lista el historial completo paginado (más reciente primero).
func (uc *MovementQueryUseCase) ListMovements(ctx context.Context, page dto.PageRequest) ([]*dto.MovementResponse, error) {
	page.DefaultPage()
	list, err := uc.movRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

// ListByProduct lista los movimientos de un producto, opcionalmente acotados por fechas.
func (uc *MovementQueryUseCase) ListByProduct(ctx context.Context, productID int64, from, to *time.Time, page dto.PageRequest) ([]*dto.MovementResponse, error) {
	page.DefaultPage()
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &domain.ProductNotFoundError{ID: productID}
	}
	list, err := uc.movRepo.ListByProduct(ctx, productID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

func toMovementResponse(m *entity.InventoryMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		ProductID:     m.ProductID,
		Quantity:      m.Quantity,
		MovementType:  m.MovementType,
		Reason:        m.Reason,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		UserID:        m.UserID,
		CreatedAt:     m.CreatedAt,
	}
}

func toMovementResponses(list []*entity.InventoryMovement) []*dto.MovementResponse {
	out := make([]*dto.MovementResponse, len(list))
	for i, m := range list {
		out[i] = toMovementResponse(m)
	}
	return out
}
