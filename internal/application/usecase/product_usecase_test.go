package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-control/internal/application/dto"
	"github.com/tu-usuario/inventario-control/internal/application/usecase"
	"github.com/tu-usuario/inventario-control/internal/domain"
	"github.com/tu-usuario/inventario-control/internal/domain/entity"
)

// memProductRepo repositorio de productos en memoria para los tests.
type memProductRepo struct {
	products map[int64]*entity.Product
	seq      int64
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[int64]*entity.Product)}
}

func (r *memProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.seq++
	product.ID = r.seq
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *memProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return &domain.ProductNotFoundError{ID: product.ID}
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *memProductRepo) List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if onlyActive && !p.IsActive {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) Deactivate(ctx context.Context, id int64) error {
	p, ok := r.products[id]
	if !ok {
		return &domain.ProductNotFoundError{ID: id}
	}
	p.IsActive = false
	return nil
}

func crearRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Code:         "LAP001",
		Name:         "Laptop Dell",
		Description:  "Laptop de oficina",
		CurrentStock: 25,
		MinStock:     3,
		MaxStock:     50,
		Unit:         "unidad",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_Exitoso(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	resp, err := uc.Create(context.Background(), crearRequest())
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "LAP001", resp.Code)
	assert.Equal(t, int64(25), resp.CurrentStock)
	assert.True(t, resp.IsActive)
	assert.False(t, resp.IsStockLow)
	assert.InDelta(t, 50.0, resp.StockPercentage, 0.001)
}

func TestProductCreate_CodigoDuplicado(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Create(context.Background(), crearRequest())
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), crearRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_DatosInvalidos(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	req := crearRequest()
	req.Code = ""
	req.CurrentStock = -1

	_, err := uc.Create(context.Background(), req)
	require.Error(t, err)
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

// Update no toca el stock aunque el producto tenga movimientos: el DTO ni
// siquiera tiene campos de stock actual.
func TestProductUpdate_NoTocaStock(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), crearRequest())
	require.NoError(t, err)

	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		Name:        "Laptop Dell Renovada",
		Description: "nueva descripción",
		MinStock:    5,
		MaxStock:    100,
		Unit:        "unidad",
	})
	require.NoError(t, err)

	assert.Equal(t, "Laptop Dell Renovada", resp.Name)
	assert.Equal(t, int64(25), resp.CurrentStock, "el stock no debe cambiar en un update")
	assert.Equal(t, int64(100), resp.MaxStock)
}

func TestProductUpdate_MaxMenorQueMin(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	created, err := uc.Create(context.Background(), crearRequest())
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		Name: "X", MinStock: 10, MaxStock: 5, Unit: "unidad",
	})
	require.Error(t, err)
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestProductGetByID_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	resp, err := uc.GetByID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestProductListLowStock(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	bajo := crearRequest()
	bajo.Code = "BAJO1"
	bajo.CurrentStock = 1 // por debajo del mínimo 3
	_, err := uc.Create(context.Background(), bajo)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), crearRequest()) // stock sano
	require.NoError(t, err)

	list, err := uc.ListLowStock(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "BAJO1", list[0].Code)
	assert.True(t, list[0].IsStockLow)
}

// El resumen agrega conteos y clasifica las alertas: bajo mínimo y en/sobre máximo.
func TestProductStatus(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	bajo := crearRequest()
	bajo.Code = "BAJO1"
	bajo.CurrentStock = 1 // mínimo 3
	_, err := uc.Create(context.Background(), bajo)
	require.NoError(t, err)

	lleno := crearRequest()
	lleno.Code = "LLENO1"
	lleno.CurrentStock = 50 // igual al máximo
	_, err = uc.Create(context.Background(), lleno)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), crearRequest()) // stock sano
	require.NoError(t, err)

	status, err := uc.Status(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, status.TotalProducts)
	assert.Equal(t, int64(1+50+25), status.TotalStock)
	assert.Equal(t, 1, status.LowStockCount)
	require.Len(t, status.LowStockProducts, 1)
	assert.Equal(t, "BAJO1", status.LowStockProducts[0].Code)
	assert.Equal(t, 1, status.HighStockCount)
	require.Len(t, status.HighStockProducts, 1)
	assert.Equal(t, "LLENO1", status.HighStockProducts[0].Code)
}

func TestProductDeactivate(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), crearRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(context.Background(), created.ID))
	assert.False(t, repo.products[created.ID].IsActive)

	// Desactivar un inexistente reporta el error tipado
	err = uc.Deactivate(context.Background(), 404)
	var nfErr *domain.ProductNotFoundError
	assert.ErrorAs(t, err, &nfErr)
}
