package inventory

import (
	"context"

	"github.com/tu-usuario/inventario-control/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Commit si fn retorna nil, Rollback en cualquier otro caso (incluida
// la cancelación del ctx). Garantiza la atomicidad producto+movimiento del ledger:
// el bloqueo de fila tomado dentro de fn nunca sobrevive al retorno de Run.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error) error
}
