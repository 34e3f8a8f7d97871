package inventory

import (
	"context"

	"github.com/tu-usuario/inventario-control/internal/application/dto"
)

// RegisterMovementFromRequest adapta el request HTTP al caso de uso
// RegisterMovement(ctx, RegisterMovementInput). El userID viene del token JWT, nunca
// del body. Usar desde handlers HTTP o desde jobs batch que ya tengan el userID.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, userID int64, in dto.RegisterMovementRequest) (*dto.RegisterMovementResponse, error) {
	result, err := uc.RegisterMovement(ctx, RegisterMovementInput{
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
		MovementType: in.Type,
		Reason:       in.Reason,
		UserID:       userID,
	})
	if err != nil {
		return nil, err
	}
	return &dto.RegisterMovementResponse{
		Success:       true,
		MovementID:    result.MovementID,
		TransactionID: result.TransactionID,
		ProductID:     result.ProductID,
		ProductCode:   result.ProductCode,
		ProductName:   result.ProductName,
		MovementType:  result.MovementType,
		Quantity:      result.Quantity,
		PreviousStock: result.PreviousStock,
		NewStock:      result.NewStock,
		UserID:        result.UserID,
		Username:      result.Username,
		Timestamp:     result.Timestamp,
		Message:       result.Message,
	}, nil
}
