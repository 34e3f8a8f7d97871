package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-control/internal/domain"
	"github.com/tu-usuario/inventario-control/internal/domain/entity"
	"github.com/tu-usuario/inventario-control/internal/domain/repository"
	"github.com/tu-usuario/inventario-control/pkg/logger"
)

// RegisterMovementUseCase registra movimientos de inventario (IN/OUT) de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
//
// Flujo:
//  1. Validar la solicitud acumulando todos los campos inválidos
//  2. Verificar que el usuario exista y esté activo
//  3. Obtener el producto con bloqueo exclusivo de fila
//  4. Aplicar el movimiento en la entidad (dominio puro)
//  5. Construir el registro de auditoría
//  6. Persistir producto y movimiento en la misma transacción
//  7. Retornar la respuesta
type RegisterMovementUseCase struct {
	txRunner TxRunner
	userRepo repository.UserRepository
	log      *logger.Logger
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, userRepo repository.UserRepository, log *logger.Logger) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, userRepo: userRepo, log: log}
}

// RegisterMovementInput entrada del caso de uso.
type RegisterMovementInput struct {
	ProductID    int64
	Quantity     int64
	MovementType string // "IN" | "OUT"
	Reason       string
	UserID       int64
}

// RegisterMovementResult salida del caso de uso.
type RegisterMovementResult struct {
	MovementID    int64
	TransactionID string
	ProductID     int64
	ProductCode   string
	ProductName   string
	MovementType  string
	Quantity      int64
	PreviousStock int64
	NewStock      int64
	UserID        int64
	Username      string
	Timestamp     time.Time
	Message       string
}

// RegisterMovement ejecuta el protocolo completo. Los errores de negocio
// (InsufficientStock, StockExceedsMaximum, InvalidMovementType) se propagan sin
// enmascarar; cualquier fallo después de tomar el lock provoca rollback de ambas
// escrituras. El lock nunca se mantiene más allá de esta llamada.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input RegisterMovementInput) (*RegisterMovementResult, error) {
	// 1. Validación de forma: se acumulan todos los errores, no solo el primero.
	// Falla antes de tocar la BD: con solicitud inválida no se toma ningún lock.
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	// 2. Usuario existente y activo.
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, &domain.UserNotFoundError{ID: input.UserID}
	}

	txID := uuid.New().String()
	var result *RegisterMovementResult

	// 3-6. Transacción: lock de fila, aplicar, auditar, persistir ambos.
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetByIDForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil || !product.IsActive {
			return &domain.ProductNotFoundError{ID: input.ProductID}
		}

		// Dominio puro: valida invariantes y muta el stock solo si pasan.
		change, err := product.ApplyStockMovement(input.Quantity, input.MovementType)
		if err != nil {
			return err
		}

		movement, err := entity.NewInventoryMovement(
			product.ID, input.Quantity, input.MovementType, input.Reason,
			change.PreviousStock, change.NewStock, input.UserID, change.OccurredAt,
		)
		if err != nil {
			return err
		}
		movement.TransactionID = txID

		// Ambas escrituras en la misma tx: o las dos quedan o ninguna.
		if err := productRepo.Update(ctx, product); err != nil {
			return err
		}
		if err := movRepo.Create(ctx, movement); err != nil {
			return err
		}

		result = &RegisterMovementResult{
			MovementID:    movement.ID,
			TransactionID: txID,
			ProductID:     product.ID,
			ProductCode:   product.Code,
			ProductName:   product.Name,
			MovementType:  input.MovementType,
			Quantity:      input.Quantity,
			PreviousStock: change.PreviousStock,
			NewStock:      change.NewStock,
			UserID:        user.ID,
			Username:      user.Username,
			Timestamp:     movement.CreatedAt,
			Message:       fmt.Sprintf("Movimiento de %d unidades registrado exitosamente", input.Quantity),
		}
		return nil
	})
	if err != nil {
		uc.logMovementError(err, input, txID)
		return nil, err
	}

	uc.log.Info().
		Str("transaction_id", txID).
		Int64("movement_id", result.MovementID).
		Int64("product_id", result.ProductID).
		Str("type", result.MovementType).
		Int64("quantity", result.Quantity).
		Int64("previous_stock", result.PreviousStock).
		Int64("new_stock", result.NewStock).
		Int64("user_id", result.UserID).
		Msg("movimiento registrado")
	return result, nil
}

func (uc *RegisterMovementUseCase) validateInput(input RegisterMovementInput) error {
	var fields []domain.FieldError
	if input.Quantity <= 0 {
		fields = append(fields, domain.FieldError{
			Field: "quantity", Message: "la cantidad debe ser mayor a cero", Value: input.Quantity,
		})
	}
	if input.MovementType != entity.MovementTypeIN && input.MovementType != entity.MovementTypeOUT {
		fields = append(fields, domain.FieldError{
			Field: "movement_type", Message: "tipo de movimiento debe ser 'IN' o 'OUT'", Value: input.MovementType,
		})
	}
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		fields = append(fields, domain.FieldError{
			Field: "reason", Message: "la razón del movimiento es requerida",
		})
	} else if len(reason) < 3 {
		fields = append(fields, domain.FieldError{
			Field: "reason", Message: "la razón debe tener al menos 3 caracteres", Value: input.Reason,
		})
	}
	if input.ProductID <= 0 {
		fields = append(fields, domain.FieldError{
			Field: "product_id", Message: "ID de producto inválido", Value: input.ProductID,
		})
	}
	if input.UserID <= 0 {
		fields = append(fields, domain.FieldError{
			Field: "user_id", Message: "ID de usuario inválido", Value: input.UserID,
		})
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// logMovementError una inconsistencia de stock es un error de programación (alguien
// construyó el registro por fuera del motor): se loguea a nivel error. Los rechazos de
// negocio son operación normal y van a debug.
func (uc *RegisterMovementUseCase) logMovementError(err error, input RegisterMovementInput, txID string) {
	var inconsistency *domain.StockInconsistencyError
	if errors.As(err, &inconsistency) {
		uc.log.Error().
			Str("transaction_id", txID).
			Int64("product_id", input.ProductID).
			Err(err).
			Msg("inconsistencia de stock detectada: registro construido fuera del motor")
		return
	}
	uc.log.Debug().
		Str("transaction_id", txID).
		Int64("product_id", input.ProductID).
		Str("type", input.MovementType).
		Int64("quantity", input.Quantity).
		Err(err).
		Msg("movimiento rechazado")
}
