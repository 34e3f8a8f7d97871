package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-control/internal/application/dto"
	"github.com/tu-usuario/inventario-control/internal/domain"
)

// writeDomainError traduce un error de dominio a una respuesta HTTP.
//
// Mapeo:
//   - ValidationError            -> 400 con la lista completa de campos
//   - ProductNotFound / UserNotFound -> 404
//   - InsufficientStock / StockExceedsMaximum / InvalidMovementType -> 409
//     (rechazo de regla de negocio: el estado no cambió, el caller decide)
//   - ErrLockTimeout             -> 409 (transitorio: seguro reintentar completo)
//   - StockInconsistencyError    -> 500 (clase error de programación)
//   - ErrDuplicate -> 409, ErrUnauthorized -> 401, ErrForbidden/ErrUserInactive -> 403
func writeDomainError(c *fiber.Ctx, err error) error {
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "errores de validación en la solicitud", Fields: validation.Fields,
		})
	}
	var productNotFound *domain.ProductNotFoundError
	if errors.As(err, &productNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: err.Error()})
	}
	var userNotFound *domain.UserNotFoundError
	if errors.As(err, &userNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: err.Error()})
	}
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	}
	var exceedsMax *domain.StockExceedsMaximumError
	if errors.As(err, &exceedsMax) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_EXCEEDS_MAXIMUM", Message: err.Error()})
	}
	var invalidType *domain.InvalidMovementTypeError
	if errors.As(err, &invalidType) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_MOVEMENT_TYPE", Message: err.Error()})
	}
	var inconsistency *domain.StockInconsistencyError
	if errors.As(err, &inconsistency) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STOCK_INCONSISTENCY", Message: err.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrLockTimeout):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LOCK_TIMEOUT", Message: "conflicto de concurrencia, reintente la operación"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrUserInactive):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
