package entity_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-control/internal/domain"
	"github.com/tu-usuario/inventario-control/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests NewInventoryMovement — construcción del registro de auditoría
// ──────────────────────────────────────────────────────────────────────────────

func TestNewInventoryMovement_EntradaConsistente(t *testing.T) {
	ts := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	m, err := entity.NewInventoryMovement(1, 5, entity.MovementTypeIN, "compra a proveedor", 10, 15, 7, ts)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, int64(1), m.ProductID)
	assert.Equal(t, int64(5), m.Quantity)
	assert.Equal(t, int64(10), m.PreviousStock)
	assert.Equal(t, int64(15), m.NewStock)
	assert.Equal(t, int64(7), m.UserID)
	assert.Equal(t, ts, m.CreatedAt)
	assert.True(t, m.IsEntry())
}

func TestNewInventoryMovement_SalidaConsistente(t *testing.T) {
	m, err := entity.NewInventoryMovement(1, 4, entity.MovementTypeOUT, "despacho orden 42", 10, 6, 7, time.Time{})
	require.NoError(t, err)

	assert.False(t, m.IsEntry())
	assert.False(t, m.CreatedAt.IsZero(), "un now cero se reemplaza por la hora actual")
}

// La aritmética declarada no cuadra → StockInconsistencyError con el esperado y el recibido.
func TestNewInventoryMovement_AritmeticaInconsistente(t *testing.T) {
	cases := []struct {
		name          string
		movementType  string
		previous, qty int64
		declaredNew   int64
		expectedNew   int64
	}{
		{"entrada mal sumada", entity.MovementTypeIN, 10, 5, 14, 15},
		{"salida mal restada", entity.MovementTypeOUT, 10, 4, 7, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := entity.NewInventoryMovement(1, tc.qty, tc.movementType, "ajuste", tc.previous, tc.declaredNew, 7, time.Time{})
			require.Error(t, err)

			var incErr *domain.StockInconsistencyError
			require.True(t, errors.As(err, &incErr))
			assert.Equal(t, tc.expectedNew, incErr.ExpectedNew)
			assert.Equal(t, tc.declaredNew, incErr.ActualNew)
			assert.Equal(t, tc.movementType, incErr.MovementType)
		})
	}
}

// Los errores de campo se acumulan todos antes de reportar.
func TestNewInventoryMovement_AcumulaErroresDeCampo(t *testing.T) {
	_, err := entity.NewInventoryMovement(0, 0, entity.MovementTypeIN, "  ", 10, 10, 0, time.Time{})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))

	gotFields := make(map[string]bool)
	for _, f := range verr.Fields {
		gotFields[f.Field] = true
	}
	for _, want := range []string{"quantity", "reason", "product_id", "user_id"} {
		assert.True(t, gotFields[want], "falta el error del campo %s", want)
	}
}

// Una entrada que desbordaría int64 no se valida ni aunque el new_stock declarado
// coincida con la suma envuelta (negativa).
func TestNewInventoryMovement_EntradaDesbordaInt64(t *testing.T) {
	qty := int64(math.MaxInt64 - 5)
	wrapped := int64(10) + qty // desborda y queda negativo

	_, err := entity.NewInventoryMovement(1, qty, entity.MovementTypeIN, "carga masiva", 10, wrapped, 7, time.Time{})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "quantity", verr.Fields[0].Field)
}

func TestNewInventoryMovement_TipoInvalido(t *testing.T) {
	_, err := entity.NewInventoryMovement(1, 5, "ADJUST", "ajuste manual", 10, 15, 7, time.Time{})
	require.Error(t, err)

	var typeErr *domain.InvalidMovementTypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "ADJUST", typeErr.Type)
}

func TestNewInventoryMovement_RecortaRazon(t *testing.T) {
	m, err := entity.NewInventoryMovement(1, 5, entity.MovementTypeIN, "  compra  ", 10, 15, 7, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "compra", m.Reason)
}
